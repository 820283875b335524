// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// FunctionInvoker invokes a deployed edge function, e.g. the Functions client of a
// supabase.Client.
type FunctionInvoker interface {
	Invoke(functionName string, payload interface{}) (string, error)
}

// EdgeFunctionName is the name of the deployed function that proxies Gemini.
const EdgeFunctionName = "gemini"

// NewEdgeFunction returns a Client that calls the gemini edge function.
func NewEdgeFunction(fn FunctionInvoker) *EdgeFunction {
	return &EdgeFunction{fn: fn}
}

// EdgeFunction answers questions through an edge function holding the model credentials.
type EdgeFunction struct {
	fn FunctionInvoker
}

type edgeFunctionRequest struct {
	Prompt string `json:"prompt"`
	System string `json:"system,omitempty"`
}

type edgeFunctionResponse struct {
	Response string `json:"response"`
	Error    string `json:"error"`
}

func (e *EdgeFunction) Generate(ctx context.Context, query string) (string, error) {
	body, err := e.fn.Invoke(EdgeFunctionName, edgeFunctionRequest{
		Prompt: query,
		System: SystemPrompt(ctx),
	})
	if err != nil {
		return "", fmt.Errorf("llm: invoking edge function: %w", err)
	}
	var res edgeFunctionResponse
	if err := json.Unmarshal([]byte(body), &res); err != nil {
		return "", fmt.Errorf("llm: decoding edge function response: %w", err)
	}
	if res.Error != "" {
		return "", fmt.Errorf("llm: edge function failed: %s", res.Error) //nolint:err113
	}
	text := strings.TrimSpace(res.Response)
	if text == "" {
		return "", fmt.Errorf("llm: unexpected response from edge function: %w", ErrEmptyReply)
	}
	return text, nil
}
