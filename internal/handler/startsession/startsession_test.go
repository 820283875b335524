// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package startsession

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curioswitch/campuscopilot/internal/campusapi"
	"github.com/curioswitch/campuscopilot/internal/session"
)

func TestStartSession(t *testing.T) {
	store := session.NewStore(session.ResponderFunc(func(context.Context, string) string { return "" }), session.WithDemoReminder())
	h := NewHandler(store)

	res, err := h.StartSession(t.Context(), &campusapi.StartSessionRequest{})
	require.NoError(t, err)
	require.Len(t, res.Session.Messages, 1)
	assert.Equal(t, session.GreetingMessage, res.Session.Messages[0].Content)
	assert.Len(t, res.Session.Reminders, 1)

	_, err = store.Get(res.Session.ID)
	assert.NoError(t, err)
}
