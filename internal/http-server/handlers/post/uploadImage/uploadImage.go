package uploadImage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"saaf/internal/lib/api/request"
	"saaf/internal/lib/api/response"
	"saaf/internal/lib/logger/sl"
	"saaf/internal/storage"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"
)

// URLPrefix is where the router serves the uploads directory.
const URLPrefix = "/uploads/"

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// sniffLen is how much of the file http.DetectContentType looks at.
const sniffLen = 512

type ImageResponse struct {
	response.Response
	Image string `json:"image"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ImageSetter
type ImageSetter interface {
	SetPostImage(ctx context.Context, postID int, userID, image string) error
}

// New accepts a multipart form with user_id and image fields and stores the
// image under dir with a random name.
func New(log *slog.Logger, posts ImageSetter, dir string, maxSize int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.post.uploadImage.New"

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

		if r.ContentLength > maxSize {
			log.Error("upload too large", slog.Int64("content_length", r.ContentLength))
			render.Status(r, http.StatusRequestEntityTooLarge)
			render.JSON(w, r, response.Error("image is too large"))
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxSize)
		if err = r.ParseMultipartForm(maxSize); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				log.Error("upload too large", sl.Err(err))
				render.Status(r, http.StatusRequestEntityTooLarge)
				render.JSON(w, r, response.Error("image is too large"))
				return
			}

			log.Error("failed to parse multipart form", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}
		defer r.MultipartForm.RemoveAll()

		userID := strings.TrimSpace(r.FormValue("user_id"))
		if userID == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("field UserId is a required field"))
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			log.Error("image field missing", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("field Image is a required field"))
			return
		}
		defer file.Close()

		ext := strings.ToLower(filepath.Ext(header.Filename))
		if !allowedExtensions[ext] {
			log.Warn("rejected image type", slog.String("filename", header.Filename))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("unsupported image type"))
			return
		}

		contentType, err := sniff(file)
		if err != nil {
			log.Error("failed to read image", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}
		if !allowedContentTypes[contentType] {
			log.Warn("rejected image content",
				slog.String("filename", header.Filename),
				slog.String("content_type", contentType))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("unsupported image type"))
			return
		}

		name := uuid.NewString() + ext
		dst := filepath.Join(dir, name)

		if err = save(file, dst); err != nil {
			log.Error("failed to save image", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save image"))
			return
		}

		image := path.Join(URLPrefix, name)

		err = posts.SetPostImage(r.Context(), postID, userID, image)
		if err != nil {
			if rmErr := os.Remove(dst); rmErr != nil {
				log.Warn("failed to remove orphaned image", sl.Err(rmErr))
			}

			log.Error("failed to attach image", sl.Err(err), slog.Int("post_id", postID))

			switch {
			case errors.Is(err, storage.ErrPostNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("post not found"))
			case errors.Is(err, storage.ErrForbidden):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("you are not allowed to edit this post"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to attach image"))
			}
			return
		}

		log.Info("image attached", slog.Int("post_id", postID), slog.String("image", image))

		render.JSON(w, r, ImageResponse{
			Response: response.OK(),
			Image:    image,
		})
	}
}

// sniff detects the content type from the head of the file and rewinds it.
func sniff(file io.ReadSeeker) (string, error) {
	const op = "handlers.post.uploadImage.sniff"

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if _, err = file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return http.DetectContentType(head[:n]), nil
}

func save(src io.Reader, dst string) error {
	const op = "handlers.post.uploadImage.save"

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err = io.Copy(f, src); err != nil {
		f.Close()
		os.Remove(dst)
		return fmt.Errorf("%s: %w", op, err)
	}

	return f.Close()
}
