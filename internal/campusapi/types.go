// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package campusapi

import (
	"time"

	"github.com/curioswitch/campuscopilot/internal/session"
)

// Session is the state of a conversation.
type Session struct {
	ID        string             `json:"id"`
	Messages  []session.Message  `json:"messages"`
	Reminders []session.Reminder `json:"reminders"`
}

// SessionOf returns the current state of s.
func SessionOf(s *session.Session) Session {
	return Session{
		ID:        s.ID(),
		Messages:  s.Messages(),
		Reminders: s.Reminders(),
	}
}

type StartSessionRequest struct{}

type StartSessionResponse struct {
	Session Session `json:"session"`
}

type GetSessionRequest struct {
	SessionID string `json:"sessionId" validate:"required"`
}

type GetSessionResponse struct {
	Session Session `json:"session"`
}

type SendMessageRequest struct {
	SessionID string `json:"sessionId" validate:"required"`
	Content   string `json:"content" validate:"required"`

	// Wait makes the call return only once the reply has been composed.
	Wait bool `json:"wait,omitempty"`
}

type SendMessageResponse struct {
	// UserMessage is the stored copy of the submitted content.
	UserMessage session.Message `json:"userMessage"`

	// Reply is the assistant's reply, or its placeholder if the call did not wait.
	Reply session.Message `json:"reply"`

	// ChaiBreak is set when the message asks for a break.
	ChaiBreak bool `json:"chaiBreak,omitempty"`
}

type ClearChatRequest struct {
	SessionID string `json:"sessionId" validate:"required"`
}

type ClearChatResponse struct {
	Messages []session.Message `json:"messages"`
}

type AddReminderRequest struct {
	SessionID   string    `json:"sessionId" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description,omitempty"`
	DueDate     time.Time `json:"dueDate" validate:"required"`
}

type AddReminderResponse struct {
	Reminder session.Reminder `json:"reminder"`
}

type ToggleReminderRequest struct {
	SessionID  string `json:"sessionId" validate:"required"`
	ReminderID string `json:"reminderId" validate:"required"`
}

type ToggleReminderResponse struct {
	Reminder session.Reminder `json:"reminder"`
}
