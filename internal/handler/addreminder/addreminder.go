// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package addreminder

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

// Handler adds a reminder to a session.
type Handler struct {
	store *session.Store
}

func (h *Handler) AddReminder(_ context.Context, req *campusapi.AddReminderRequest) (*campusapi.AddReminderResponse, error) {
	s, err := h.store.Get(req.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, err)
		}
		return nil, fmt.Errorf("addreminder: getting session: %w", err)
	}

	r, err := s.CreateReminder(req.Title, req.Description, req.DueDate)
	if err != nil {
		if errors.Is(err, session.ErrEmptyTitle) {
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		return nil, fmt.Errorf("addreminder: creating reminder: %w", err)
	}

	return &campusapi.AddReminderResponse{
		Reminder: r,
	}, nil
}
