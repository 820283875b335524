// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package config

import (
	"time"

	"github.com/curioswitch/go-curiostack/config"
)

type LLM struct {
	// Provider is the language model backend, one of gemini, openai or edge.
	Provider string `koanf:"provider"`

	// Model is the model name, empty for the provider's default.
	Model string `koanf:"model"`
}

type Places struct {
	// Provider is the venue lookup backend, one of edge, direct or none.
	Provider string `koanf:"provider"`

	// Location is the "lat,lng" searched around by the direct provider.
	Location string `koanf:"location"`

	// APIKey is the Google Places API key for the direct provider.
	APIKey string `koanf:"apikey"`
}

type Supabase struct {
	// URL is the project URL, e.g. https://abcd.supabase.co.
	URL string `koanf:"url"`

	// Key is the anon key used for edge function calls.
	Key string `koanf:"key"`
}

type Roster struct {
	// Source is where the roster is read from, one of rtdb, firestore or demo.
	Source string `koanf:"source"`

	// DatabaseURL is the Realtime Database URL for the rtdb source.
	DatabaseURL string `koanf:"databaseurl"`

	// MaxTries bounds the attempts to read a remote source.
	MaxTries uint `koanf:"maxtries"`
}

type Session struct {
	// DemoReminder seeds new sessions with a sample reminder.
	DemoReminder bool `koanf:"demoreminder"`
}

type Breaker struct {
	// Enabled guards the gateways with circuit breakers.
	Enabled bool `koanf:"enabled"`

	// Failures is the number of consecutive failures that opens a breaker.
	Failures uint32 `koanf:"failures"`

	// Timeout is how long a breaker stays open before retrying.
	Timeout time.Duration `koanf:"timeout"`
}

type Config struct {
	config.Common

	LLM      LLM      `koanf:"llm"`
	Places   Places   `koanf:"places"`
	Supabase Supabase `koanf:"supabase"`
	Roster   Roster   `koanf:"roster"`
	Session  Session  `koanf:"session"`
	Breaker  Breaker  `koanf:"breaker"`
}
