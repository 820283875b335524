// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	functions "github.com/supabase-community/functions-go"

	"github.com/curioswitch/campuscopilot/internal/i18n"
)

// The supabase Functions client is the production invoker.
var _ FunctionInvoker = (*functions.Client)(nil)

func TestSystemPromptLanguage(t *testing.T) {
	assert.Contains(t, SystemPrompt(t.Context()), "Reply in the same language as the question.")
	assert.Contains(t, SystemPrompt(i18n.WithUserLanguage(t.Context(), "hi")), "Reply in Hindi.")
	assert.Contains(t, SystemPrompt(i18n.WithUserLanguage(t.Context(), "xx")), "Reply in the same language as the question.")
}

type fakeInvoker struct {
	payload any
	body    string
	err     error
}

func (f *fakeInvoker) Invoke(functionName string, payload interface{}) (string, error) {
	if functionName != EdgeFunctionName {
		return "", errors.New("unknown function")
	}
	f.payload = payload
	return f.body, f.err
}

func TestEdgeFunction(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		err     error
		want    string
		wantErr bool
	}{
		{name: "reply", body: `{"response": " Why did the student eat his homework? "}`, want: "Why did the student eat his homework?"},
		{name: "empty", body: `{"response": ""}`, wantErr: true},
		{name: "error payload", body: `{"error": "quota"}`, wantErr: true},
		{name: "malformed", body: `oops`, wantErr: true},
		{name: "transport", err: errors.New("dial tcp"), wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inv := &fakeInvoker{body: tc.body, err: tc.err}
			got, err := NewEdgeFunction(inv).Generate(t.Context(), "tell me a joke")
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			req, ok := inv.payload.(edgeFunctionRequest)
			require.True(t, ok)
			assert.Equal(t, "tell me a joke", req.Prompt)
		})
	}
}

type countingClient struct {
	calls int
	err   error
}

func (c *countingClient) Generate(context.Context, string) (string, error) {
	c.calls++
	if c.err != nil {
		return "", c.err
	}
	return "answer", nil
}

func TestWithBreaker(t *testing.T) {
	ok := &countingClient{}
	c := WithBreaker(ok, gobreaker.NewCircuitBreaker(gobreaker.Settings{Name: "llm"}))
	got, err := c.Generate(t.Context(), "q")
	require.NoError(t, err)
	assert.Equal(t, "answer", got)

	failing := &countingClient{err: errors.New("503")}
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "llm",
		Timeout: time.Hour,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 1
		},
	})
	c = WithBreaker(failing, cb)
	for range 3 {
		_, err := c.Generate(t.Context(), "q")
		assert.Error(t, err)
	}
	assert.Equal(t, 1, failing.calls)
}

func TestUnavailable(t *testing.T) {
	_, err := Unavailable{}.Generate(t.Context(), "q")
	assert.ErrorIs(t, err, ErrUnavailable)
}
