// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-2.5-flash"

// NewGemini returns a Client backed by Gemini.
func NewGemini(genAI *genai.Client, model string) *Gemini {
	if model == "" {
		model = DefaultGeminiModel
	}
	return &Gemini{
		genAI: genAI,
		model: model,
	}
}

// Gemini answers questions with the Gemini API.
type Gemini struct {
	genAI *genai.Client
	model string
}

func (g *Gemini) Generate(ctx context.Context, query string) (string, error) {
	res, err := g.genAI.Models.GenerateContent(ctx, g.model, []*genai.Content{
		genai.NewContentFromText(query, genai.RoleUser),
	}, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(SystemPrompt(ctx), genai.RoleModel),
	})
	if err != nil {
		return "", fmt.Errorf("llm: calling GenerateContent: %w", err)
	}
	text := strings.TrimSpace(res.Text())
	if text == "" {
		return "", fmt.Errorf("llm: unexpected response from gemini: %w", ErrEmptyReply)
	}
	return text, nil
}
