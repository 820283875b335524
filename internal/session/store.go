// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned for an unknown session ID.
var ErrNotFound = errors.New("session: not found")

// Option configures a Store.
type Option func(*Store)

// WithDemoReminder seeds every new session with a sample reminder due in two days.
func WithDemoReminder() Option {
	return func(s *Store) {
		s.demoReminder = true
	}
}

// DefaultMaxSessions is the number of sessions kept before the oldest is evicted.
const DefaultMaxSessions = 10000

// WithMaxSessions bounds the number of sessions kept. When a new session exceeds the bound,
// the oldest session is evicted.
func WithMaxSessions(n int) Option {
	return func(s *Store) {
		s.maxSessions = n
	}
}

// WithClock sets the time source for message and reminder timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore returns an empty Store whose sessions reply with responder.
func NewStore(responder Responder, opts ...Option) *Store {
	s := &Store{
		responder:   responder,
		now:         time.Now,
		maxSessions: DefaultMaxSessions,
		sessions:    map[string]*Session{},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Store keeps sessions in memory for the lifetime of the process.
type Store struct {
	responder    Responder
	now          func() time.Time
	demoReminder bool
	maxSessions  int

	mu       sync.RWMutex
	sessions map[string]*Session
	// order holds session IDs oldest first.
	order []string
}

// Create starts a new session, evicting the oldest one if the store is full.
func (s *Store) Create() *Session {
	sess := newSession(uuid.NewString(), s.responder, s.now)
	if s.demoReminder {
		// Title is never blank.
		_, _ = sess.CreateReminder("Submit Math Assignment", "Chapter 5 problems 1-10", s.now().Add(48*time.Hour))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.id] = sess
	s.order = append(s.order, sess.id)
	for s.maxSessions > 0 && len(s.order) > s.maxSessions {
		delete(s.sessions, s.order[0])
		s.order = s.order[1:]
	}
	return sess
}

// Get returns the session with id.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return sess, nil
}
