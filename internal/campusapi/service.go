// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package campusapi defines the RPC surface of the assistant, served with the connect
// protocol and JSON messages.
package campusapi

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/go-playground/validator/v10"
)

// ServiceName is the fully-qualified name of the service.
const ServiceName = "campuscopilot.v1.CopilotService"

const (
	StartSessionProcedure   = "/" + ServiceName + "/StartSession"
	GetSessionProcedure     = "/" + ServiceName + "/GetSession"
	SendMessageProcedure    = "/" + ServiceName + "/SendMessage"
	ClearChatProcedure      = "/" + ServiceName + "/ClearChat"
	AddReminderProcedure    = "/" + ServiceName + "/AddReminder"
	ToggleReminderProcedure = "/" + ServiceName + "/ToggleReminder"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Unary returns a connect handler for a unary procedure implemented by fn. Requests are
// validated with their validate struct tags before fn is called.
func Unary[Req, Res any](procedure string, fn func(context.Context, *Req) (*Res, error), opts ...connect.HandlerOption) http.Handler {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec())}, opts...)
	return connect.NewUnaryHandler(procedure, func(ctx context.Context, req *connect.Request[Req]) (*connect.Response[Res], error) {
		if err := validate.StructCtx(ctx, req.Msg); err != nil {
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		res, err := fn(ctx, req.Msg)
		if err != nil {
			return nil, err
		}
		return connect.NewResponse(res), nil
	}, opts...)
}
