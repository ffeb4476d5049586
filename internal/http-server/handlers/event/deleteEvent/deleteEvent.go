package deleteEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"saaf/internal/lib/api/request"
	"saaf/internal/lib/api/response"
	"saaf/internal/lib/logger/sl"
	"saaf/internal/storage"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	UserId string `json:"user_id" validate:"required,max=150"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventDeleter
type EventDeleter interface {
	DeleteEvent(ctx context.Context, eventID int, userID string) error
}

func New(log *slog.Logger, events EventDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.deleteEvent.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		eventID, err := request.IDParam(r)
		if err != nil {
			log.Error("bad event id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		var req Request

		if err = render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		err = events.DeleteEvent(r.Context(), eventID, req.UserId)
		switch {
		case errors.Is(err, storage.ErrEventNotFound):
			log.Info("event not found", slog.Int("event_id", eventID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("event not found"))
			return
		case errors.Is(err, storage.ErrForbidden):
			log.Warn("delete attempt by non-author", slog.Int("event_id", eventID), slog.String("user_id", req.UserId))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("only the post author can delete this event"))
			return
		case err != nil:
			log.Error("failed to delete event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete event"))
			return
		}

		log.Info("event deleted", slog.Int("event_id", eventID))

		render.JSON(w, r, response.OK())
	}
}
