package getPosts

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"saaf/internal/lib/api/response"
	"saaf/internal/lib/logger/sl"
	"saaf/internal/models"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type PostsResponse struct {
	response.Response
	Posts []models.Post `json:"posts"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PostsGetter
type PostsGetter interface {
	GetPosts(ctx context.Context, authorID string) ([]models.Post, error)
}

// New lists posts newest first, narrowed to one author by the optional author query parameter.
func New(log *slog.Logger, posts PostsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.post.getPosts.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		author := strings.TrimSpace(r.URL.Query().Get("author"))

		list, err := posts.GetPosts(r.Context(), author)
		if err != nil {
			log.Error("failed to get posts", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get posts"))
			return
		}

		if list == nil {
			list = []models.Post{}
		}

		log.Info("posts retrieved", slog.String("author", author), slog.Int("count", len(list)))

		render.JSON(w, r, PostsResponse{
			Response: response.OK(),
			Posts:    list,
		})
	}
}
