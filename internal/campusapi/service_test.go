// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package campusapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingRequest struct {
	Text string `json:"text" validate:"required"`
}

type pingResponse struct {
	Text string `json:"text"`
}

const pingProcedure = "/" + ServiceName + "/Ping"

func ping(_ context.Context, req *pingRequest) (*pingResponse, error) {
	if req.Text == "fail" {
		return nil, connect.NewError(connect.CodeNotFound, errors.New("no such thing"))
	}
	return &pingResponse{Text: "pong: " + req.Text}, nil
}

func newPingClient(t *testing.T) *connect.Client[pingRequest, pingResponse] {
	t.Helper()

	mux := http.NewServeMux()
	mux.Handle(pingProcedure, Unary(pingProcedure, ping))
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return connect.NewClient[pingRequest, pingResponse](srv.Client(), srv.URL+pingProcedure, connect.WithCodec(Codec()))
}

func TestUnary(t *testing.T) {
	client := newPingClient(t)

	res, err := client.CallUnary(t.Context(), connect.NewRequest(&pingRequest{Text: "hello"}))
	require.NoError(t, err)
	assert.Equal(t, "pong: hello", res.Msg.Text)
}

func TestUnaryErrors(t *testing.T) {
	client := newPingClient(t)

	_, err := client.CallUnary(t.Context(), connect.NewRequest(&pingRequest{}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = client.CallUnary(t.Context(), connect.NewRequest(&pingRequest{Text: "fail"}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}

func TestCodec(t *testing.T) {
	c := Codec()
	assert.Equal(t, "json", c.Name())

	b, err := c.Marshal(&pingResponse{Text: "hi"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"hi"}`, string(b))

	var req pingRequest
	require.NoError(t, c.Unmarshal(nil, &req))
	assert.Error(t, c.Unmarshal([]byte("{"), &req))
}
