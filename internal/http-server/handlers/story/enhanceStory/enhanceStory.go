package enhanceStory

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"saaf/internal/lib/api/response"
	"saaf/internal/lib/logger/sl"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type StoryRequest struct {
	Content string `json:"content" validate:"max=20000"`
}

type StoryResponse struct {
	response.Response
	Enhanced string `json:"enhanced"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StoryEnhancer
type StoryEnhancer interface {
	Enhance(ctx context.Context, content string) (string, error)
}

// New rewrites the posted content with the model. Model failures are not
// surfaced to the caller: the original content comes back instead.
func New(log *slog.Logger, enhancer StoryEnhancer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.story.enhanceStory.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req StoryRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
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

		if strings.TrimSpace(req.Content) == "" {
			responseOK(w, r, req.Content)
			return
		}

		enhanced, err := enhancer.Enhance(r.Context(), req.Content)
		switch {
		case err != nil:
			log.Warn("story enhancement failed, returning original content", sl.Err(err))
			enhanced = req.Content
		case strings.TrimSpace(enhanced) == "":
			log.Warn("model returned empty text, returning original content")
			enhanced = req.Content
		default:
			log.Info("story enhanced", slog.Int("in_len", len(req.Content)), slog.Int("out_len", len(enhanced)))
		}

		responseOK(w, r, enhanced)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, enhanced string) {
	render.JSON(w, r, StoryResponse{
		Response: response.OK(),
		Enhanced: enhanced,
	})
}
