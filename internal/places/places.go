// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sony/gobreaker"

	"github.com/curioswitch/campuscopilot/internal/budget"
)

const (
	// DefaultRadius is the search radius in meters.
	DefaultRadius = 2000

	// DefaultKeyword is the generic search keyword for eateries.
	DefaultKeyword = "food"

	// MaxResults is the maximum number of venues returned by a lookup.
	MaxResults = 5
)

// Request is a nearby venue lookup.
type Request struct {
	// MaxTier is the highest acceptable price tier, 0-4.
	MaxTier int

	// Keyword is the free-text search keyword.
	Keyword string

	// Radius is the search radius in meters.
	Radius int
}

// Recommendation is a venue returned by a lookup.
type Recommendation struct {
	// Name is the venue name.
	Name string

	// Address is the short address of the venue.
	Address string

	// PriceTier is the venue's price tier, 0-4.
	PriceTier int

	// Rating is the average user rating out of 5, if known.
	Rating *float64

	// IsOpenNow is whether the venue is currently open, if known.
	IsOpenNow *bool
}

// Searcher looks up venues from an upstream service.
type Searcher interface {
	Search(ctx context.Context, req Request) ([]Recommendation, error)
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithBreaker guards upstream calls with a circuit breaker. When the breaker is open,
// lookups return no venues without calling upstream.
func WithBreaker(cb *gobreaker.CircuitBreaker) Option {
	return func(g *Gateway) {
		g.breaker = cb
	}
}

// WithLogger sets the logger used to record upstream failures.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Gateway) {
		g.logger = logger
	}
}

// NewGateway returns a Gateway backed by searcher.
func NewGateway(searcher Searcher, opts ...Option) *Gateway {
	g := &Gateway{
		searcher: searcher,
		logger:   slog.Default(),
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Gateway returns nearby venues. It never fails: any upstream problem results in no venues.
type Gateway struct {
	searcher Searcher
	breaker  *gobreaker.CircuitBreaker
	logger   *slog.Logger
}

// Nearby returns up to MaxResults venues no pricier than req.MaxTier. Venues with a tier
// outside 0-4 are dropped.
func (g *Gateway) Nearby(ctx context.Context, req Request) []Recommendation {
	if g == nil || g.searcher == nil {
		return nil
	}
	if req.Radius <= 0 {
		req.Radius = DefaultRadius
	}
	if req.Keyword == "" {
		req.Keyword = DefaultKeyword
	}

	recs, err := g.search(ctx, req)
	if err != nil {
		g.logger.WarnContext(ctx, "places: lookup failed", "error", err, "keyword", req.Keyword, "maxTier", req.MaxTier)
		return nil
	}

	out := make([]Recommendation, 0, MaxResults)
	for _, r := range recs {
		if !budget.ValidTier(r.PriceTier) || r.PriceTier > req.MaxTier {
			continue
		}
		out = append(out, r)
		if len(out) == MaxResults {
			break
		}
	}
	return out
}

func (g *Gateway) search(ctx context.Context, req Request) ([]Recommendation, error) {
	if g.breaker == nil {
		return g.searcher.Search(ctx, req)
	}
	res, err := g.breaker.Execute(func() (any, error) {
		return g.searcher.Search(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	recs, _ := res.([]Recommendation)
	return recs, nil
}

// StatusOK is the upstream status of a successful search.
const StatusOK = "OK"

var errMalformed = errors.New("places: malformed response")

type searchResponse struct {
	Results      []searchResult `json:"results"`
	Status       string         `json:"status"`
	ErrorMessage string         `json:"error_message"`
}

type searchResult struct {
	Name         string        `json:"name"`
	Vicinity     string        `json:"vicinity"`
	PriceLevel   *int          `json:"price_level"`
	Rating       *float64      `json:"rating"`
	OpeningHours *openingHours `json:"opening_hours"`
}

type openingHours struct {
	OpenNow *bool `json:"open_now"`
}

func decodeSearchResponse(body []byte) ([]Recommendation, error) {
	var res searchResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("%w: %w", errMalformed, err)
	}
	if res.Status != StatusOK {
		return nil, fmt.Errorf("places: search failed with status %q: %s", res.Status, res.ErrorMessage) //nolint:err113
	}

	recs := make([]Recommendation, 0, len(res.Results))
	for _, r := range res.Results {
		if r.Name == "" {
			return nil, fmt.Errorf("%w: result without name", errMalformed)
		}
		rec := Recommendation{
			Name:    r.Name,
			Address: r.Vicinity,
			Rating:  r.Rating,
		}
		if r.PriceLevel != nil {
			if !budget.ValidTier(*r.PriceLevel) {
				return nil, fmt.Errorf("%w: price level %d for %s", errMalformed, *r.PriceLevel, r.Name)
			}
			rec.PriceTier = *r.PriceLevel
		}
		if r.OpeningHours != nil {
			rec.IsOpenNow = r.OpeningHours.OpenNow
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
