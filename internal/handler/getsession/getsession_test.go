// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package getsession

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curioswitch/campuscopilot/internal/campusapi"
	"github.com/curioswitch/campuscopilot/internal/session"
)

func TestGetSession(t *testing.T) {
	store := session.NewStore(session.ResponderFunc(func(_ context.Context, q string) string { return q }))
	s := store.Create()
	_, err := s.Submit(t.Context(), "hello").Wait(t.Context())
	require.NoError(t, err)

	h := NewHandler(store)
	res, err := h.GetSession(t.Context(), &campusapi.GetSessionRequest{SessionID: s.ID()})
	require.NoError(t, err)
	assert.Equal(t, s.ID(), res.Session.ID)
	assert.Len(t, res.Session.Messages, 3)

	_, err = h.GetSession(t.Context(), &campusapi.GetSessionRequest{SessionID: "missing"})
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}
