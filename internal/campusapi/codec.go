// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package campusapi

import (
	"encoding/json"
	"fmt"

	"connectrpc.com/connect"
)

type jsonCodec struct{}

// Codec returns the codec for API messages. Messages are plain structs encoded with
// encoding/json and registered under the standard "json" name so browsers can call the
// API with Content-Type application/json.
func Codec() connect.Codec {
	return jsonCodec{}
}

func (jsonCodec) Name() string {
	return "json"
}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("campusapi: marshal %T: %w", v, err)
	}
	return b, nil
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("campusapi: unmarshal %T: %w", v, err)
	}
	return nil
}
