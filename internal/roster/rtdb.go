// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package roster

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// ValueGetter reads the JSON value at a database location, e.g. a *db.Ref of the Firebase
// Realtime Database.
type ValueGetter interface {
	Get(ctx context.Context, v interface{}) error
}

// RealtimeDatabasePath is where the roster lives in the Realtime Database.
const RealtimeDatabasePath = "students"

// NewRealtimeDatabase returns a Source reading the roster from a Realtime Database
// location.
func NewRealtimeDatabase(ref ValueGetter) *RealtimeDatabase {
	return &RealtimeDatabase{ref: ref}
}

// RealtimeDatabase reads students stored either as an object keyed by ID or as an array.
type RealtimeDatabase struct {
	ref ValueGetter
}

func (r *RealtimeDatabase) Students(ctx context.Context) ([]Student, error) {
	var raw json.RawMessage
	if err := r.ref.Get(ctx, &raw); err != nil {
		return nil, fmt.Errorf("roster: reading realtime database: %w", err)
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var byID map[string]*Student
	if err := json.Unmarshal(raw, &byID); err == nil {
		var out []Student
		for _, id := range slices.Sorted(maps.Keys(byID)) {
			if s := byID[id]; s != nil {
				out = append(out, *s)
			}
		}
		return out, nil
	}

	var list []*Student
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, decodeError(err)
	}
	var out []Student
	for _, s := range list {
		// Arrays with deleted entries have null holes.
		if s != nil {
			out = append(out, *s)
		}
	}
	return out, nil
}
