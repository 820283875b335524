// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package startsession

import (
	"context"
	"log/slog"

	"github.com/curioswitch/campuscopilot/internal/campusapi"
	"github.com/curioswitch/campuscopilot/internal/session"
)

// NewHandler returns a Handler.
func NewHandler(store *session.Store) *Handler {
	return &Handler{
		store: store,
	}
}

// Handler starts a new conversation.
type Handler struct {
	store *session.Store
}

func (h *Handler) StartSession(ctx context.Context, _ *campusapi.StartSessionRequest) (*campusapi.StartSessionResponse, error) {
	s := h.store.Create()
	slog.InfoContext(ctx, "startsession: created session", "session", s.ID())
	return &campusapi.StartSessionResponse{
		Session: campusapi.SessionOf(s),
	}, nil
}
