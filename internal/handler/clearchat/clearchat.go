// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package clearchat

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

// Handler resets a conversation to its greeting.
type Handler struct {
	store *session.Store
}

func (h *Handler) ClearChat(_ context.Context, req *campusapi.ClearChatRequest) (*campusapi.ClearChatResponse, error) {
	s, err := h.store.Get(req.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, err)
		}
		return nil, fmt.Errorf("clearchat: getting session: %w", err)
	}

	s.ClearAll()
	return &campusapi.ClearChatResponse{
		Messages: s.Messages(),
	}, nil
}
