package getEventInfo

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
)

type EventInfoResponse struct {
	response.Response
	Event         *models.Event          `json:"event"`
	Participants  []models.Participation `json:"participants"`
	IsPast        bool                   `json:"is_past"`
	UserHasJoined bool                   `json:"user_has_joined"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGetter
type EventGetter interface {
	GetEvent(ctx context.Context, eventID int) (*models.Event, error)
	GetParticipants(ctx context.Context, eventID int) ([]models.Participation, error)
}

func New(log *slog.Logger, info EventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEventInfo.New"

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

		event, err := info.GetEvent(r.Context(), eventID)
		if err != nil {
			log.Error("failed to get event information", sl.Err(err))

			if errors.Is(err, storage.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get event information"))
			return
		}

		participants, err := info.GetParticipants(r.Context(), eventID)
		if err != nil {
			log.Error("failed to get participants", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get event information"))
			return
		}

		userID := r.URL.Query().Get("user_id")

		log.Info("event info successfully received", slog.Int("participants", len(participants)))

		responseOK(w, r, event, participants, userID)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, event *models.Event, participants []models.Participation, userID string) {
	if participants == nil {
		participants = []models.Participation{}
	}

	resp := EventInfoResponse{
		Response:     response.OK(),
		Event:        event,
		Participants: participants,
	}

	if event != nil {
		resp.IsPast = event.IsPast(time.Now())
	}

	if userID != "" {
		for _, p := range participants {
			if p.UserID == userID {
				resp.UserHasJoined = true
				break
			}
		}
	}

	render.JSON(w, r, resp)
}
