package createPost

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"saaf/internal/lib/api/response"
	"saaf/internal/lib/logger/sl"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type PostRequest struct {
	UserId  string `json:"user_id" validate:"required,max=150"`
	Title   string `json:"title" validate:"required,max=100"`
	Content string `json:"content" validate:"required"`
}

type PostResponse struct {
	response.Response
	PostId int `json:"post_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PostCreator
type PostCreator interface {
	CreatePost(ctx context.Context, authorID, title, content string) (int, error)
}

func New(log *slog.Logger, posts PostCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.post.createPost.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req PostRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.String("user_id", req.UserId), slog.String("title", req.Title))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		postId, err := posts.CreatePost(r.Context(), req.UserId, req.Title, req.Content)
		if err != nil {
			log.Error("failed to add post", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add post"))

			return
		}

		log.Info("post added", slog.Int("id", postId))

		render.JSON(w, r, PostResponse{
			Response: response.OK(),
			PostId:   postId,
		})
	}
}
