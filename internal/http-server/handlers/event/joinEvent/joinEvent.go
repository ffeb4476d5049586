package joinEvent

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

type ParticipationRequest struct {
	UserId string `json:"user_id" validate:"required,max=150"`
}

type ParticipationResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventJoiner
type EventJoiner interface {
	JoinEvent(ctx context.Context, eventID int, userID string) error
}

func New(log *slog.Logger, participation EventJoiner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.joinEvent.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		eventID, err := request.IDParam(r)
		if err != nil {
			log.Error("bad event id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			if errors.Is(err, request.ErrMissingID) {
				render.JSON(w, r, response.Error("event id is required"))
			} else {
				render.JSON(w, r, response.Error("invalid event id format"))
			}
			return
		}

		log = log.With(slog.Int("event_id", eventID))

		var req ParticipationRequest

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

		err = participation.JoinEvent(r.Context(), eventID, req.UserId)
		if err != nil {
			log.Error("failed to join event", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, storage.ErrEventInPast):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("you can't modify participation for past events"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to join event"))
			}
			return
		}

		log.Info("event joined", slog.String("user_id", req.UserId))

		responseOK(w, r)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, ParticipationResponse{
		Response: response.OK(),
	})
}
