// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
)

// DefaultOpenAIModel is used when no model is configured.
const DefaultOpenAIModel = "gpt-4o-mini"

// NewOpenAI returns a Client backed by OpenAI chat completions.
func NewOpenAI(client *openai.Client, model string) *OpenAI {
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &OpenAI{
		client: client,
		model:  model,
	}
}

// OpenAI answers questions with the OpenAI API.
type OpenAI struct {
	client *openai.Client
	model  string
}

func (o *OpenAI) Generate(ctx context.Context, query string) (string, error) {
	res, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(SystemPrompt(ctx)),
			openai.UserMessage(query),
		},
	})
	if err != nil {
		return "", fmt.Errorf("llm: creating chat completion: %w", err)
	}
	if len(res.Choices) == 0 {
		return "", fmt.Errorf("llm: no choices from openai: %w", ErrEmptyReply)
	}
	text := strings.TrimSpace(res.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("llm: unexpected response from openai: %w", ErrEmptyReply)
	}
	return text, nil
}
