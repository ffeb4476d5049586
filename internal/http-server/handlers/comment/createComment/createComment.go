package createComment

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

type CommentRequest struct {
	UserId  string `json:"user_id" validate:"required,max=150"`
	Content string `json:"content" validate:"required"`
}

type CommentResponse struct {
	response.Response
	CommentId int `json:"comment_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CommentCreator
type CommentCreator interface {
	CreateComment(ctx context.Context, postID int, authorID, content string) (int, error)
}

func New(log *slog.Logger, comments CommentCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.comment.createComment.New"

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

		var req CommentRequest

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

		commentId, err := comments.CreateComment(r.Context(), postID, req.UserId, req.Content)
		if err != nil {
			log.Error("failed to add comment", sl.Err(err), slog.Int("post_id", postID))

			if errors.Is(err, storage.ErrPostNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("post not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add comment"))
			return
		}

		log.Info("comment added", slog.Int("id", commentId), slog.Int("post_id", postID))

		render.JSON(w, r, CommentResponse{
			Response:  response.OK(),
			CommentId: commentId,
		})
	}
}
