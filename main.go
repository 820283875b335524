// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/curioswitch/go-curiostack/server"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/openai/openai-go/v3"
	"github.com/sony/gobreaker"
	"github.com/supabase-community/supabase-go"
	"golang.org/x/sync/errgroup"
	"google.golang.org/genai"
	"googlemaps.github.io/maps"

	"github.com/curioswitch/campuscopilot/internal/campusapi"
	"github.com/curioswitch/campuscopilot/internal/config"
	"github.com/curioswitch/campuscopilot/internal/handler/addreminder"
	"github.com/curioswitch/campuscopilot/internal/handler/clearchat"
	"github.com/curioswitch/campuscopilot/internal/handler/getsession"
	"github.com/curioswitch/campuscopilot/internal/handler/sendmessage"
	"github.com/curioswitch/campuscopilot/internal/handler/startsession"
	"github.com/curioswitch/campuscopilot/internal/handler/togglereminder"
	"github.com/curioswitch/campuscopilot/internal/i18n"
	"github.com/curioswitch/campuscopilot/internal/llm"
	"github.com/curioswitch/campuscopilot/internal/places"
	"github.com/curioswitch/campuscopilot/internal/responder"
	"github.com/curioswitch/campuscopilot/internal/roster"
	"github.com/curioswitch/campuscopilot/internal/session"
)

//go:embed conf/*.yaml
var confFiles embed.FS

func main() {
	conf, _ := fs.Sub(confFiles, "conf")
	os.Exit(server.Main(&config.Config{}, conf, setupServer))
}

func setupServer(ctx context.Context, conf *config.Config, s *server.Server) error {
	mux := server.Mux(s)

	fbApp, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:   conf.Google.Project,
		DatabaseURL: conf.Roster.DatabaseURL,
	})
	if err != nil {
		return fmt.Errorf("main: create firebase app: %w", err)
	}

	var sb *supabase.Client
	if conf.Supabase.URL != "" {
		sb, err = supabase.NewClient(conf.Supabase.URL, conf.Supabase.Key, nil)
		if err != nil {
			return fmt.Errorf("main: create supabase client: %w", err)
		}
	}

	var (
		model    llm.Client
		students []roster.Student
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := newLLMClient(gctx, conf, sb)
		if err != nil {
			return err
		}
		model = c
		return nil
	})
	g.Go(func() error {
		src, closeSrc, err := newRosterSource(gctx, conf, fbApp)
		if err != nil {
			return err
		}
		defer closeSrc()
		loader := &roster.Loader{Source: src, MaxTries: conf.Roster.MaxTries, Logger: slog.Default()}
		students = loader.Load(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if conf.Breaker.Enabled {
		model = llm.WithBreaker(model, newBreaker("llm", conf.Breaker))
	}

	opts := []responder.Option{
		responder.WithLLM(model),
		responder.WithLogger(slog.Default()),
	}
	searcher, err := newPlacesSearcher(conf, sb)
	if err != nil {
		return err
	}
	if searcher != nil {
		var gwOpts []places.Option
		if conf.Breaker.Enabled {
			gwOpts = append(gwOpts, places.WithBreaker(newBreaker("places", conf.Breaker)))
		}
		opts = append(opts, responder.WithPlaces(places.NewGateway(searcher, gwOpts...)))
	}
	resp := responder.New(opts...)

	snap := responder.Snapshot{CatalogAvailable: true, Roster: students}
	var storeOpts []session.Option
	if conf.Session.DemoReminder {
		storeOpts = append(storeOpts, session.WithDemoReminder())
	}
	store := session.NewStore(session.ResponderFunc(func(ctx context.Context, query string) string {
		return resp.Respond(ctx, query, snap)
	}), storeOpts...)

	mux.Use(i18n.Middleware())
	mux.Use(middleware.NoCache)

	mux.Handle(campusapi.StartSessionProcedure,
		campusapi.Unary(campusapi.StartSessionProcedure, startsession.NewHandler(store).StartSession))
	mux.Handle(campusapi.GetSessionProcedure,
		campusapi.Unary(campusapi.GetSessionProcedure, getsession.NewHandler(store).GetSession))
	mux.Handle(campusapi.SendMessageProcedure,
		campusapi.Unary(campusapi.SendMessageProcedure, sendmessage.NewHandler(store).SendMessage))
	mux.Handle(campusapi.ClearChatProcedure,
		campusapi.Unary(campusapi.ClearChatProcedure, clearchat.NewHandler(store).ClearChat))
	mux.Handle(campusapi.AddReminderProcedure,
		campusapi.Unary(campusapi.AddReminderProcedure, addreminder.NewHandler(store).AddReminder))
	mux.Handle(campusapi.ToggleReminderProcedure,
		campusapi.Unary(campusapi.ToggleReminderProcedure, togglereminder.NewHandler(store).ToggleReminder))

	if err := server.Start(ctx, s); err != nil {
		return fmt.Errorf("main: starting server: %w", err)
	}
	return nil
}

func newLLMClient(ctx context.Context, conf *config.Config, sb *supabase.Client) (llm.Client, error) {
	switch conf.LLM.Provider {
	case "", "gemini":
		genAI, err := genai.NewClient(ctx, &genai.ClientConfig{
			Backend: genai.BackendGeminiAPI,
			Project: conf.Google.Project,
		})
		if err != nil {
			return nil, fmt.Errorf("main: create genai client: %w", err)
		}
		return llm.NewGemini(genAI, conf.LLM.Model), nil
	case "openai":
		oai := openai.NewClient()
		return llm.NewOpenAI(&oai, conf.LLM.Model), nil
	case "edge":
		if sb == nil {
			slog.WarnContext(ctx, "main: edge llm provider without supabase config, model disabled")
			return llm.Unavailable{}, nil
		}
		return llm.NewEdgeFunction(sb.Functions), nil
	}
	return nil, fmt.Errorf("main: unknown llm provider %q", conf.LLM.Provider) //nolint:err113
}

func newRosterSource(ctx context.Context, conf *config.Config, fbApp *firebase.App) (roster.Source, func(), error) {
	noop := func() {}
	switch conf.Roster.Source {
	case "", "demo":
		return roster.DemoSource{}, noop, nil
	case "rtdb":
		db, err := fbApp.Database(ctx)
		if err != nil {
			return nil, noop, fmt.Errorf("main: create realtime database client: %w", err)
		}
		return roster.NewRealtimeDatabase(db.NewRef(roster.RealtimeDatabasePath)), noop, nil
	case "firestore":
		store, err := fbApp.Firestore(ctx)
		if err != nil {
			return nil, noop, fmt.Errorf("main: create firestore client: %w", err)
		}
		return roster.NewFirestore(store), func() {
			if err := store.Close(); err != nil {
				slog.ErrorContext(ctx, "main: close firestore client", "error", err)
			}
		}, nil
	}
	return nil, noop, fmt.Errorf("main: unknown roster source %q", conf.Roster.Source) //nolint:err113
}

func newPlacesSearcher(conf *config.Config, sb *supabase.Client) (places.Searcher, error) {
	switch conf.Places.Provider {
	case "edge":
		if sb == nil {
			return nil, nil
		}
		return places.NewEdgeFunction(sb.Functions), nil
	case "direct":
		loc := places.DefaultLocation
		if conf.Places.Location != "" {
			parsed, err := maps.ParseLatLng(conf.Places.Location)
			if err != nil {
				return nil, fmt.Errorf("main: parse places location: %w", err)
			}
			loc = parsed
		}
		client, err := maps.NewClient(
			maps.WithAPIKey(conf.Places.APIKey),
			maps.WithHTTPClient(&http.Client{Timeout: 10 * time.Second}),
		)
		if err != nil {
			return nil, fmt.Errorf("main: create maps client: %w", err)
		}
		return places.NewDirect(client, loc), nil
	case "", "none":
		return nil, nil
	}
	return nil, fmt.Errorf("main: unknown places provider %q", conf.Places.Provider) //nolint:err113
}

func newBreaker(name string, conf config.Breaker) *gobreaker.CircuitBreaker {
	failures := conf.Failures
	if failures == 0 {
		failures = 3
	}
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    name,
		Timeout: conf.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			slog.Info("main: circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})
}
