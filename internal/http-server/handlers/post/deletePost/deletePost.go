package deletePost

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PostDeleter
type PostDeleter interface {
	DeletePost(ctx context.Context, postID int, userID string) error
}

func New(log *slog.Logger, posts PostDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.post.deletePost.New"

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

		err = posts.DeletePost(r.Context(), postID, req.UserId)
		if err != nil {
			log.Error("failed to delete post", sl.Err(err), slog.Int("post_id", postID))

			switch {
			case errors.Is(err, storage.ErrPostNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("post not found"))
			case errors.Is(err, storage.ErrForbidden):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("you are not allowed to delete this post"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to delete post"))
			}
			return
		}

		log.Info("post deleted", slog.Int("post_id", postID))

		render.JSON(w, r, response.OK())
	}
}
