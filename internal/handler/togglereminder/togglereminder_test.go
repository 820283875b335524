// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package togglereminder

import (
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curioswitch/campuscopilot/internal/campusapi"
	"github.com/curioswitch/campuscopilot/internal/session"
)

func TestToggleReminder(t *testing.T) {
	store := session.NewStore(nil)
	s := store.Create()
	r, err := s.CreateReminder("Lab report", "", time.Now())
	require.NoError(t, err)
	h := NewHandler(store)

	res, err := h.ToggleReminder(t.Context(), &campusapi.ToggleReminderRequest{SessionID: s.ID(), ReminderID: r.ID})
	require.NoError(t, err)
	assert.True(t, res.Reminder.Completed)

	res, err = h.ToggleReminder(t.Context(), &campusapi.ToggleReminderRequest{SessionID: s.ID(), ReminderID: r.ID})
	require.NoError(t, err)
	assert.False(t, res.Reminder.Completed)

	_, err = h.ToggleReminder(t.Context(), &campusapi.ToggleReminderRequest{SessionID: s.ID(), ReminderID: "missing"})
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	_, err = h.ToggleReminder(t.Context(), &campusapi.ToggleReminderRequest{SessionID: "missing", ReminderID: r.ID})
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}
