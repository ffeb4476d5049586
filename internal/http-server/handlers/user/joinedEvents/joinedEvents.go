package joinedEvents

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"saaf/internal/lib/api/response"
	"saaf/internal/lib/logger/sl"
	"saaf/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type JoinedEventsResponse struct {
	response.Response
	UserId string               `json:"user_id"`
	Events []models.JoinedEvent `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=JoinedEventsGetter
type JoinedEventsGetter interface {
	GetJoinedEvents(ctx context.Context, userID string) ([]models.JoinedEvent, error)
}

func New(log *slog.Logger, participations JoinedEventsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.joinedEvents.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		userID := strings.TrimSpace(chi.URLParam(r, "id"))
		if userID == "" {
			log.Error("user id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("user id is required"))
			return
		}

		events, err := participations.GetJoinedEvents(r.Context(), userID)
		if err != nil {
			log.Error("failed to get joined events", sl.Err(err), slog.String("user_id", userID))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get joined events"))
			return
		}

		if events == nil {
			events = []models.JoinedEvent{}
		}

		log.Info("joined events retrieved", slog.String("user_id", userID), slog.Int("count", len(events)))

		render.JSON(w, r, JoinedEventsResponse{
			Response: response.OK(),
			UserId:   userID,
			Events:   events,
		})
	}
}
