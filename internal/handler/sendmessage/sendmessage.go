// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package sendmessage

import (
	"context"
	"errors"
	"fmt"

	"connectrpc.com/connect"

	"github.com/curioswitch/campuscopilot/internal/campusapi"
	"github.com/curioswitch/campuscopilot/internal/responder"
	"github.com/curioswitch/campuscopilot/internal/session"
)

// NewHandler returns a Handler.
func NewHandler(store *session.Store) *Handler {
	return &Handler{
		store: store,
	}
}

// Handler submits a student's message to a conversation.
type Handler struct {
	store *session.Store
}

func (h *Handler) SendMessage(ctx context.Context, req *campusapi.SendMessageRequest) (*campusapi.SendMessageResponse, error) {
	s, err := h.store.Get(req.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, err)
		}
		return nil, fmt.Errorf("sendmessage: getting session: %w", err)
	}

	p := s.Submit(ctx, req.Content)
	reply := p.Placeholder
	if req.Wait {
		reply, err = p.Wait(ctx)
		if err != nil {
			return nil, fmt.Errorf("sendmessage: waiting for reply: %w", err)
		}
	}

	return &campusapi.SendMessageResponse{
		UserMessage: p.User,
		Reply:       reply,
		ChaiBreak:   responder.DetectChaiBreak(req.Content),
	}, nil
}
