// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package places

import (
	"context"
	"fmt"
)

// FunctionInvoker invokes a deployed edge function, e.g. the Functions client of a
// supabase.Client.
type FunctionInvoker interface {
	Invoke(functionName string, payload interface{}) (string, error)
}

// EdgeFunctionName is the name of the deployed places function.
const EdgeFunctionName = "places"

// NewEdgeFunction returns a Searcher that calls the places edge function, which proxies
// Google Places Nearby Search.
func NewEdgeFunction(fn FunctionInvoker) *EdgeFunction {
	return &EdgeFunction{fn: fn}
}

// EdgeFunction searches venues through an edge function.
type EdgeFunction struct {
	fn FunctionInvoker
}

type edgeFunctionRequest struct {
	MaxPrice int    `json:"maxprice"`
	Keyword  string `json:"keyword"`
	Radius   int    `json:"radius"`
}

func (e *EdgeFunction) Search(_ context.Context, req Request) ([]Recommendation, error) {
	body, err := e.fn.Invoke(EdgeFunctionName, edgeFunctionRequest{
		MaxPrice: req.MaxTier,
		Keyword:  req.Keyword,
		Radius:   req.Radius,
	})
	if err != nil {
		return nil, fmt.Errorf("places: invoking edge function: %w", err)
	}
	return decodeSearchResponse([]byte(body))
}
