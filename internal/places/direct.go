// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package places

import (
	"context"
	"fmt"
	"strconv"

	"googlemaps.github.io/maps"

	"github.com/curioswitch/campuscopilot/internal/budget"
)

// DefaultLocation is the search center used when none is configured.
var DefaultLocation = maps.LatLng{Lat: 28.6139, Lng: 77.2090}

// NewDirect returns a Searcher that calls Google Places Nearby Search directly around
// location.
func NewDirect(client *maps.Client, location maps.LatLng) *Direct {
	return &Direct{
		client:   client,
		location: location,
	}
}

// Direct searches venues with the Places API.
type Direct struct {
	client   *maps.Client
	location maps.LatLng
}

func (d *Direct) Search(ctx context.Context, req Request) ([]Recommendation, error) {
	loc := d.location
	res, err := d.client.NearbySearch(ctx, &maps.NearbySearchRequest{
		Location: &loc,
		Radius:   uint(max(req.Radius, 0)),
		Keyword:  req.Keyword,
		Type:     maps.PlaceTypeRestaurant,
		MaxPrice: maps.PriceLevel(strconv.Itoa(req.MaxTier)),
	})
	if err != nil {
		return nil, fmt.Errorf("places: nearby search: %w", err)
	}

	recs := make([]Recommendation, 0, len(res.Results))
	for _, r := range res.Results {
		if r.Name == "" || !budget.ValidTier(r.PriceLevel) {
			return nil, fmt.Errorf("%w: result %q with price level %d", errMalformed, r.Name, r.PriceLevel)
		}
		rec := Recommendation{
			Name:      r.Name,
			Address:   r.Vicinity,
			PriceTier: r.PriceLevel,
		}
		if r.Rating > 0 {
			rating := float64(r.Rating)
			rec.Rating = &rating
		}
		if r.OpeningHours != nil {
			rec.IsOpenNow = r.OpeningHours.OpenNow
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
