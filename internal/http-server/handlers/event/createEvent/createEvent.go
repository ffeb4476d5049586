package createEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"saaf/internal/lib/api/request"
	"saaf/internal/lib/api/response"
	"saaf/internal/lib/logger/sl"
	"saaf/internal/models"
	"saaf/internal/storage"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type EventRequest struct {
	Title        string    `json:"title" validate:"required,max=200"`
	Description  string    `json:"description" validate:"required"`
	Date         time.Time `json:"date" validate:"required"`
	LocationName string    `json:"location_name" validate:"required,max=255"`
}

type EventResponse struct {
	response.Response
	EventId  int  `json:"event_id"`
	Geocoded bool `json:"geocoded"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	GetPost(ctx context.Context, id int) (*models.Post, error)
	CreateEvent(ctx context.Context, event models.Event) (int, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=LocationResolver
type LocationResolver interface {
	Resolve(ctx context.Context, query string) (models.Coordinates, bool, error)
}

func New(log *slog.Logger, events EventCreator, locations LocationResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		postID, err := request.IDParam(r)
		if err != nil {
			log.Error("bad post id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			if errors.Is(err, request.ErrMissingID) {
				render.JSON(w, r, response.Error("post id is required"))
			} else {
				render.JSON(w, r, response.Error("invalid post id format"))
			}
			return
		}

		var req EventRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		if _, err = events.GetPost(r.Context(), postID); err != nil {
			if errors.Is(err, storage.ErrPostNotFound) {
				log.Warn("post not found", slog.Int("post_id", postID))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("post not found"))
				return
			}

			log.Error("failed to get post", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add event"))

			return
		}

		event := models.Event{
			PostID:       postID,
			Title:        req.Title,
			Description:  req.Description,
			Date:         req.Date,
			LocationName: req.LocationName,
		}

		coords, found, err := locations.Resolve(r.Context(), req.LocationName)
		if err != nil {
			log.Error("failed to geocode location", sl.Err(err))
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error("location service unavailable"))

			return
		}
		if found {
			event.SetCoordinates(coords)
		} else {
			log.Warn("location not found, storing event without coordinates",
				slog.String("location", req.LocationName))
		}

		eventId, err := events.CreateEvent(r.Context(), event)
		if err != nil {
			log.Error("failed to add event", sl.Err(err))

			if errors.Is(err, storage.ErrPostNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("post not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add event"))

			return
		}

		log.Info("event added", slog.Int("id", eventId), slog.Bool("geocoded", found))

		responseOK(w, r, eventId, found)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, eventId int, geocoded bool) {
	render.JSON(w, r, EventResponse{
		Response: response.OK(),
		EventId:  eventId,
		Geocoded: geocoded,
	})
}
