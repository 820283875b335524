// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package roster

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/cenkalti/backoff/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	students []Student
	errs     []error
	calls    int
}

func (f *fakeSource) Students(context.Context) ([]Student, error) {
	f.calls++
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		return nil, err
	}
	return f.students, nil
}

func quietLoader(src Source) *Loader {
	return &Loader{
		Source:  src,
		BackOff: &backoff.ZeroBackOff{},
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestLoadRetriesThenSucceeds(t *testing.T) {
	src := &fakeSource{
		students: []Student{{Name: "Asha Rao", Course: "Physics", Year: 1}},
		errs:     []error{errors.New("unavailable")},
	}
	got := quietLoader(src).Load(t.Context())
	assert.Equal(t, []Student{{Name: "Asha Rao", Course: "Physics", Year: 1}}, got)
	assert.Equal(t, 2, src.calls)
}

func TestLoadFallsBackToDemo(t *testing.T) {
	src := &fakeSource{errs: []error{errors.New("a"), errors.New("b"), errors.New("c"), errors.New("d")}}
	got := quietLoader(src).Load(t.Context())
	assert.Equal(t, Demo(), got)
	assert.Equal(t, DefaultMaxTries, src.calls)
}

func TestLoadPermanentErrorIsNotRetried(t *testing.T) {
	src := &fakeSource{errs: []error{decodeError(errors.New("bad shape"))}}
	got := quietLoader(src).Load(t.Context())
	assert.Equal(t, Demo(), got)
	assert.Equal(t, 1, src.calls)
}

func TestLoadWithoutSource(t *testing.T) {
	assert.Equal(t, Demo(), (&Loader{}).Load(t.Context()))
}

type fakeRef struct {
	data string
	err  error
}

func (f fakeRef) Get(_ context.Context, v interface{}) error {
	if f.err != nil {
		return f.err
	}
	return json.Unmarshal([]byte(f.data), v)
}

func TestRealtimeDatabase(t *testing.T) {
	tests := []struct {
		name string
		data string
		want []Student
	}{
		{
			name: "object",
			data: `{"s2": {"name": "Raj Kumar", "course": "Mechanical Engineering", "year": 2}, "s1": {"name": "Priya Sharma", "course": "Computer Science", "year": 3}}`,
			want: []Student{
				{Name: "Priya Sharma", Course: "Computer Science", Year: 3},
				{Name: "Raj Kumar", Course: "Mechanical Engineering", Year: 2},
			},
		},
		{
			name: "array with holes",
			data: `[null, {"name": "Vikram Singh", "course": "Civil Engineering", "year": 1}]`,
			want: []Student{{Name: "Vikram Singh", Course: "Civil Engineering", Year: 1}},
		},
		{
			name: "empty",
			data: `null`,
			want: nil,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewRealtimeDatabase(fakeRef{data: tc.data}).Students(t.Context())
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRealtimeDatabaseErrors(t *testing.T) {
	_, err := NewRealtimeDatabase(fakeRef{err: errors.New("permission denied")}).Students(t.Context())
	assert.Error(t, err)

	_, err = NewRealtimeDatabase(fakeRef{data: `"just a string"`}).Students(t.Context())
	var perm *backoff.PermanentError
	assert.ErrorAs(t, err, &perm)
}
