// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package addreminder

import (
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curioswitch/campuscopilot/internal/campusapi"
	"github.com/curioswitch/campuscopilot/internal/session"
)

func TestAddReminder(t *testing.T) {
	store := session.NewStore(nil)
	s := store.Create()
	h := NewHandler(store)
	due := time.Date(2025, 5, 15, 9, 0, 0, 0, time.UTC)

	res, err := h.AddReminder(t.Context(), &campusapi.AddReminderRequest{
		SessionID:   s.ID(),
		Title:       "Internal exams",
		Description: "Revise chapters 1-4",
		DueDate:     due,
	})
	require.NoError(t, err)
	assert.Equal(t, "Internal exams", res.Reminder.Title)
	assert.Equal(t, due, res.Reminder.DueDate)
	assert.False(t, res.Reminder.Completed)
	assert.Equal(t, []session.Reminder{res.Reminder}, s.Reminders())
}

func TestAddReminderErrors(t *testing.T) {
	store := session.NewStore(nil)
	s := store.Create()
	h := NewHandler(store)

	_, err := h.AddReminder(t.Context(), &campusapi.AddReminderRequest{SessionID: s.ID(), Title: "   ", DueDate: time.Now()})
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = h.AddReminder(t.Context(), &campusapi.AddReminderRequest{SessionID: "missing", Title: "Essay", DueDate: time.Now()})
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}
