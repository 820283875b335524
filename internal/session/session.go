// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package session holds the state of a chat with the assistant: the exchanged messages and
// the student's reminders.
package session

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Role is the author of a message.
type Role string

const (
	// RoleUser is a message typed by the student.
	RoleUser Role = "user"
	// RoleAssistant is a reply from the assistant.
	RoleAssistant Role = "assistant"
)

const (
	// GreetingMessage opens every conversation.
	GreetingMessage = "Hi there! I'm CampusCopilot, your AI assistant for college life. How can I help you today?"

	// PlaceholderMessage is shown while a reply is being composed.
	PlaceholderMessage = "Thinking..."
)

var (
	// ErrEmptyTitle is returned when creating a reminder without a title.
	ErrEmptyTitle = errors.New("session: reminder title is required")

	// ErrReminderNotFound is returned for an unknown reminder ID.
	ErrReminderNotFound = errors.New("session: reminder not found")
)

// Message is an entry in the conversation.
type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Reminder is a task the student wants to keep track of.
type Reminder struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	DueDate     time.Time `json:"dueDate"`
	Completed   bool      `json:"completed"`
}

// Responder composes the assistant's reply to a query.
type Responder interface {
	Reply(ctx context.Context, query string) string
}

// ResponderFunc adapts a function to Responder.
type ResponderFunc func(ctx context.Context, query string) string

func (f ResponderFunc) Reply(ctx context.Context, query string) string {
	return f(ctx, query)
}

// Session is a single conversation. It is safe for concurrent use.
type Session struct {
	id        string
	responder Responder
	now       func() time.Time

	mu        sync.Mutex
	messages  []Message
	reminders []Reminder
}

func newSession(id string, responder Responder, now func() time.Time) *Session {
	s := &Session{
		id:        id,
		responder: responder,
		now:       now,
	}
	s.messages = []Message{s.greeting()}
	return s
}

// ID returns the session's identifier.
func (s *Session) ID() string {
	return s.id
}

func (s *Session) greeting() Message {
	return Message{
		ID:        uuid.NewString(),
		Content:   GreetingMessage,
		Role:      RoleAssistant,
		CreatedAt: s.now(),
	}
}

// Messages returns a copy of the conversation in insertion order.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.messages)
}

// Reminders returns a copy of the reminders in insertion order.
func (s *Session) Reminders() []Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.reminders)
}

// Pending is a reply being composed.
type Pending struct {
	// User is the submitted message.
	User Message

	// Placeholder is the assistant message that will hold the reply.
	Placeholder Message

	done  chan struct{}
	reply Message
}

// Wait blocks until the reply is ready or ctx is done.
func (p *Pending) Wait(ctx context.Context) (Message, error) {
	select {
	case <-p.done:
		return p.reply, nil
	case <-ctx.Done():
		return Message{}, ctx.Err()
	}
}

// Submit adds the query and a placeholder reply to the conversation, then composes the
// reply in the background. The placeholder is replaced in place once the reply is ready,
// unless the conversation was cleared in the meantime. Composition is not cancelled when
// ctx is.
func (s *Session) Submit(ctx context.Context, query string) *Pending {
	s.mu.Lock()
	now := s.now()
	p := &Pending{
		User: Message{
			ID:        uuid.NewString(),
			Content:   query,
			Role:      RoleUser,
			CreatedAt: now,
		},
		Placeholder: Message{
			ID:        uuid.NewString(),
			Content:   PlaceholderMessage,
			Role:      RoleAssistant,
			CreatedAt: now,
		},
		done: make(chan struct{}),
	}
	s.messages = append(s.messages, p.User, p.Placeholder)
	s.mu.Unlock()

	go func() {
		reply := s.responder.Reply(context.WithoutCancel(ctx), query)
		p.reply = s.resolve(p.Placeholder, reply)
		close(p.done)
	}()

	return p
}

func (s *Session) resolve(placeholder Message, content string) Message {
	resolved := placeholder
	resolved.Content = content

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.messages {
		if s.messages[i].ID == placeholder.ID {
			s.messages[i].Content = content
			break
		}
	}
	return resolved
}

// ClearAll resets the conversation to a single greeting. Reminders are kept. Each call
// creates a new greeting message, so repeated calls yield the same content and role but a
// fresh ID and timestamp.
func (s *Session) ClearAll() {
	g := s.greeting()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = []Message{g}
}

// CreateReminder adds a reminder. The title must not be blank.
func (s *Session) CreateReminder(title, description string, due time.Time) (Reminder, error) {
	if strings.TrimSpace(title) == "" {
		return Reminder{}, ErrEmptyTitle
	}
	r := Reminder{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		DueDate:     due,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reminders = append(s.reminders, r)
	return r, nil
}

// ToggleReminderDone flips the completion state of a reminder.
func (s *Session) ToggleReminderDone(id string) (Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reminders {
		if s.reminders[i].ID == id {
			s.reminders[i].Completed = !s.reminders[i].Completed
			return s.reminders[i], nil
		}
	}
	return Reminder{}, ErrReminderNotFound
}
