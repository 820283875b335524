// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package getsession

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

// Handler returns the messages and reminders of a conversation.
type Handler struct {
	store *session.Store
}

func (h *Handler) GetSession(_ context.Context, req *campusapi.GetSessionRequest) (*campusapi.GetSessionResponse, error) {
	s, err := h.store.Get(req.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, err)
		}
		return nil, fmt.Errorf("getsession: getting session: %w", err)
	}
	return &campusapi.GetSessionResponse{
		Session: campusapi.SessionOf(s),
	}, nil
}
