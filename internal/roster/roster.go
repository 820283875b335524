// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package roster loads the read-only student roster the assistant answers roster and
// course questions from.
package roster

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/cenkalti/backoff/v5"
)

// Student is a roster entry.
type Student struct {
	// Name is the student's full name.
	Name string `firestore:"name" json:"name"`

	// Course is the program the student is enrolled in.
	Course string `firestore:"course" json:"course"`

	// Year is the student's year of study.
	Year int `firestore:"year" json:"year"`
}

// Source fetches the roster from a data store.
type Source interface {
	Students(ctx context.Context) ([]Student, error)
}

var demoStudents = []Student{
	{Name: "Priya Sharma", Course: "Computer Science", Year: 3},
	{Name: "Raj Kumar", Course: "Mechanical Engineering", Year: 2},
	{Name: "Ananya Patel", Course: "Electrical Engineering", Year: 4},
	{Name: "Vikram Singh", Course: "Civil Engineering", Year: 1},
	{Name: "Meera Gupta", Course: "Computer Science", Year: 3},
}

// Demo returns the local demo roster.
func Demo() []Student {
	return slices.Clone(demoStudents)
}

// DemoSource serves the demo roster.
type DemoSource struct{}

func (DemoSource) Students(context.Context) ([]Student, error) {
	return Demo(), nil
}

// DefaultMaxTries bounds the attempts made against a remote source.
const DefaultMaxTries = 3

// Loader loads a roster snapshot, retrying a remote source before falling back to the
// demo roster.
type Loader struct {
	// Source is the store to read from.
	Source Source

	// MaxTries is the number of attempts, DefaultMaxTries if zero.
	MaxTries uint

	// BackOff is the delay policy between attempts, exponential if nil.
	BackOff backoff.BackOff

	// Logger records failed loads, slog.Default() if nil.
	Logger *slog.Logger
}

// Load returns the roster. It never fails: if the source cannot be read the demo roster
// is returned.
func (l *Loader) Load(ctx context.Context) []Student {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if l.Source == nil {
		return Demo()
	}

	tries := l.MaxTries
	if tries == 0 {
		tries = DefaultMaxTries
	}
	b := l.BackOff
	if b == nil {
		b = backoff.NewExponentialBackOff()
	}

	students, err := backoff.Retry(ctx, func() ([]Student, error) {
		return l.Source.Students(ctx)
	}, backoff.WithBackOff(b), backoff.WithMaxTries(tries))
	if err != nil {
		logger.WarnContext(ctx, "roster: loading students, using demo roster", "error", err)
		return Demo()
	}
	logger.InfoContext(ctx, "roster: loaded students", "count", len(students))
	return students
}

func decodeError(err error) error {
	return backoff.Permanent(fmt.Errorf("roster: decoding students: %w", err))
}
