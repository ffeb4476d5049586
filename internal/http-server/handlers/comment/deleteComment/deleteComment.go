package deleteComment

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

type DeleteResponse struct {
	response.Response
	PostId int `json:"post_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CommentDeleter
type CommentDeleter interface {
	DeleteComment(ctx context.Context, commentID int, userID string) (int, error)
}

// New deletes a comment on behalf of its author and reports the post it belonged to.
func New(log *slog.Logger, comments CommentDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.comment.deleteComment.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		commentID, err := request.IDParam(r)
		if err != nil {
			log.Error("bad comment id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid comment id format"))
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

		postID, err := comments.DeleteComment(r.Context(), commentID, req.UserId)
		if err != nil {
			log.Error("failed to delete comment", sl.Err(err), slog.Int("comment_id", commentID))

			switch {
			case errors.Is(err, storage.ErrCommentNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("comment not found"))
			case errors.Is(err, storage.ErrForbidden):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("you are not allowed to delete this comment"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to delete comment"))
			}
			return
		}

		log.Info("comment deleted", slog.Int("comment_id", commentID), slog.Int("post_id", postID))

		render.JSON(w, r, DeleteResponse{
			Response: response.OK(),
			PostId:   postID,
		})
	}
}
