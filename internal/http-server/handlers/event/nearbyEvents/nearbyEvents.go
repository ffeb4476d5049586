package nearbyEvents

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"saaf/internal/geocoder"
	"saaf/internal/lib/api/response"
	"saaf/internal/lib/logger/sl"
	"saaf/internal/models"
	"saaf/internal/search"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

var (
	errMissingReference = errors.New("location or lat and lng are required")
	errMissingLocation  = errors.New("location is required")
)

type Query struct {
	Location  string   `json:"location,omitempty"`
	Latitude  *float64 `json:"lat,omitempty"`
	Longitude *float64 `json:"lng,omitempty"`
}

type Result struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Date         time.Time `json:"date"`
	LocationName string    `json:"location_name"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
}

type SearchResponse struct {
	response.Response
	Query  Query    `json:"query"`
	Events []Result `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventSearcher
type EventSearcher interface {
	Nearby(ctx context.Context, ref models.Coordinates) ([]models.Event, error)
	ByLocation(ctx context.Context, query string) ([]models.Event, error)
}

// New serves both coordinate and free-text search. A non-empty location
// parameter takes precedence over lat and lng.
func New(log *slog.Logger, searcher EventSearcher) http.HandlerFunc {
	return handler(log, searcher, "handlers.event.nearbyEvents.New", true)
}

// NewByLocation serves free-text search only; lat and lng are ignored.
func NewByLocation(log *slog.Logger, searcher EventSearcher) http.HandlerFunc {
	return handler(log, searcher, "handlers.event.nearbyEvents.NewByLocation", false)
}

func handler(log *slog.Logger, searcher EventSearcher, op string, withCoordinates bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var (
			q      Query
			events []models.Event
			err    error
		)

		if location := strings.TrimSpace(r.URL.Query().Get("location")); location != "" {
			q.Location = location
			events, err = searcher.ByLocation(r.Context(), location)
		} else if !withCoordinates {
			log.Error("missing location")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(errMissingLocation.Error()))
			return
		} else {
			var ref models.Coordinates
			ref, err = parseCoordinates(r)
			if err != nil {
				log.Error("invalid coordinates", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}
			q.Latitude, q.Longitude = &ref.Latitude, &ref.Longitude
			events, err = searcher.Nearby(r.Context(), ref)
		}

		if err != nil {
			log.Error("search failed", sl.Err(err))

			switch {
			case errors.Is(err, search.ErrInvalidInput):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid search parameters"))
			case errors.Is(err, geocoder.ErrServiceUnavailable):
				render.Status(r, http.StatusServiceUnavailable)
				render.JSON(w, r, response.Error("location service unavailable"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to search events"))
			}
			return
		}

		log.Info("search done", slog.Any("query", q), slog.Int("found", len(events)))

		responseOK(w, r, q, events)
	}
}

func parseCoordinates(r *http.Request) (models.Coordinates, error) {
	rawLat := r.URL.Query().Get("lat")
	rawLng := r.URL.Query().Get("lng")
	if rawLat == "" || rawLng == "" {
		return models.Coordinates{}, errMissingReference
	}

	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return models.Coordinates{}, errors.New("lat must be a number")
	}

	lng, err := strconv.ParseFloat(rawLng, 64)
	if err != nil {
		return models.Coordinates{}, errors.New("lng must be a number")
	}

	return models.Coordinates{Latitude: lat, Longitude: lng}, nil
}

func responseOK(w http.ResponseWriter, r *http.Request, q Query, events []models.Event) {
	results := make([]Result, 0, len(events))
	for _, e := range events {
		c, ok := e.Coordinates()
		if !ok {
			continue
		}
		results = append(results, Result{
			ID:           e.ID,
			Title:        e.Title,
			Date:         e.Date,
			LocationName: e.LocationName,
			Latitude:     c.Latitude,
			Longitude:    c.Longitude,
		})
	}

	render.JSON(w, r, SearchResponse{
		Response: response.OK(),
		Query:    q,
		Events:   results,
	})
}
