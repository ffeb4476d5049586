package getPost

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"saaf/internal/lib/api/request"
	"saaf/internal/lib/api/response"
	"saaf/internal/lib/logger/sl"
	"saaf/internal/models"
	"saaf/internal/storage"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type PostResponse struct {
	response.Response
	Post     *models.Post     `json:"post"`
	Comments []models.Comment `json:"comments"`
	Events   []models.Event   `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PostGetter
type PostGetter interface {
	GetPost(ctx context.Context, postID int) (*models.Post, error)
	GetComments(ctx context.Context, postID int) ([]models.Comment, error)
	GetEventsByPost(ctx context.Context, postID int) ([]models.Event, error)
}

func New(log *slog.Logger, posts PostGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.post.getPost.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		postID, err := request.IDParam(r)
		if err != nil {
			log.Error("bad post id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid post id format"))
			return
		}

		log = log.With(slog.Int("post_id", postID))

		post, err := posts.GetPost(r.Context(), postID)
		if err != nil {
			log.Error("failed to get post", sl.Err(err))

			if errors.Is(err, storage.ErrPostNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("post not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get post"))
			return
		}

		comments, err := posts.GetComments(r.Context(), postID)
		if err != nil {
			log.Error("failed to get comments", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get post"))
			return
		}

		events, err := posts.GetEventsByPost(r.Context(), postID)
		if err != nil {
			log.Error("failed to get post events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get post"))
			return
		}

		if comments == nil {
			comments = []models.Comment{}
		}
		if events == nil {
			events = []models.Event{}
		}

		log.Info("post retrieved", slog.Int("comments", len(comments)), slog.Int("events", len(events)))

		render.JSON(w, r, PostResponse{
			Response: response.OK(),
			Post:     post,
			Comments: comments,
			Events:   events,
		})
	}
}
