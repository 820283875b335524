// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/sony/gobreaker"
)

// Client generates a natural language answer for a free-text question.
type Client interface {
	Generate(ctx context.Context, query string) (string, error)
}

// ErrEmptyReply is returned when the model produced no text.
var ErrEmptyReply = errors.New("llm: empty reply")

// ErrUnavailable is returned by a Client that has no backing model.
var ErrUnavailable = errors.New("llm: no model configured")

// Unavailable is a Client that always fails, used when no provider is configured.
type Unavailable struct{}

func (Unavailable) Generate(context.Context, string) (string, error) {
	return "", ErrUnavailable
}

// WithBreaker wraps c with a circuit breaker. While the breaker is open, Generate fails
// immediately without calling the model.
func WithBreaker(c Client, cb *gobreaker.CircuitBreaker) Client {
	return &breakerClient{next: c, cb: cb}
}

type breakerClient struct {
	next Client
	cb   *gobreaker.CircuitBreaker
}

func (b *breakerClient) Generate(ctx context.Context, query string) (string, error) {
	res, err := b.cb.Execute(func() (any, error) {
		return b.next.Generate(ctx, query)
	})
	if err != nil {
		return "", fmt.Errorf("llm: %s: %w", b.cb.Name(), err)
	}
	text, _ := res.(string)
	return text, nil
}
