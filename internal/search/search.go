// Package search finds events around a point or around a place named in free text.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"saaf/internal/models"
	"saaf/internal/proximity"
)

var ErrInvalidInput = errors.New("invalid input")

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventLister
type EventLister interface {
	ListEventsWithCoordinates(ctx context.Context) ([]models.Event, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Geocoder
type Geocoder interface {
	Resolve(ctx context.Context, query string) (models.Coordinates, bool, error)
}

type Service struct {
	log      *slog.Logger
	events   EventLister
	geocoder Geocoder
	radiusKm float64
}

func New(log *slog.Logger, events EventLister, geocoder Geocoder, radiusKm float64) *Service {
	if radiusKm <= 0 {
		radiusKm = proximity.DefaultRadiusKm
	}

	return &Service{
		log:      log,
		events:   events,
		geocoder: geocoder,
		radiusKm: radiusKm,
	}
}

// Nearby returns the geocoded events within the search radius of ref.
func (s *Service) Nearby(ctx context.Context, ref models.Coordinates) ([]models.Event, error) {
	const op = "search.Nearby"

	if err := ref.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrInvalidInput, err)
	}

	events, err := s.events.ListEventsWithCoordinates(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	nearby := proximity.Within(ref, events, s.radiusKm)

	s.log.Debug("proximity scan done",
		slog.String("op", op),
		slog.Int("scanned", len(events)),
		slog.Int("matched", len(nearby)),
		slog.Float64("radius_km", s.radiusKm),
	)

	return nearby, nil
}

// ByLocation geocodes query and searches around the result. A place the geocoder
// does not know yields an empty result, not an error.
func (s *Service) ByLocation(ctx context.Context, query string) ([]models.Event, error) {
	const op = "search.ByLocation"

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%s: %w: empty location", op, ErrInvalidInput)
	}

	ref, found, err := s.geocoder.Resolve(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !found {
		s.log.Info("location not found", slog.String("op", op), slog.String("location", query))
		return []models.Event{}, nil
	}

	return s.Nearby(ctx, ref)
}
