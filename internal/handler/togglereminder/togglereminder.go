// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package togglereminder

import (
	"context"
	"errors"
	"fmt"

	"connectrpc.com/connect"

	"github.com/curioswitch/campuscopilot/internal/campusapi"
	"github.com/curioswitch/campuscopilot/internal/session"
)

// NewHandler returns a Handler.
func NewHandler(store *session.Store) *Handler {
	return &Handler{
		store: store,
	}
}

// Handler flips the completion state of a reminder.
type Handler struct {
	store *session.Store
}

func (h *Handler) ToggleReminder(_ context.Context, req *campusapi.ToggleReminderRequest) (*campusapi.ToggleReminderResponse, error) {
	s, err := h.store.Get(req.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, err)
		}
		return nil, fmt.Errorf("togglereminder: getting session: %w", err)
	}

	r, err := s.ToggleReminderDone(req.ReminderID)
	if err != nil {
		if errors.Is(err, session.ErrReminderNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, err)
		}
		return nil, fmt.Errorf("togglereminder: toggling reminder: %w", err)
	}

	return &campusapi.ToggleReminderResponse{
		Reminder: r,
	}, nil
}
