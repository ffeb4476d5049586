package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"saaf/internal/config"
	"saaf/internal/geocoder/nominatim"
	"saaf/internal/geocoder/rediscache"
	"saaf/internal/http-server/handlers/comment/createComment"
	"saaf/internal/http-server/handlers/comment/deleteComment"
	"saaf/internal/http-server/handlers/event/cancelEvent"
	"saaf/internal/http-server/handlers/event/createEvent"
	"saaf/internal/http-server/handlers/event/deleteEvent"
	"saaf/internal/http-server/handlers/event/getAllEvents"
	"saaf/internal/http-server/handlers/event/getEventInfo"
	"saaf/internal/http-server/handlers/event/joinEvent"
	"saaf/internal/http-server/handlers/event/nearbyEvents"
	"saaf/internal/http-server/handlers/post/createPost"
	"saaf/internal/http-server/handlers/post/deletePost"
	"saaf/internal/http-server/handlers/post/getPost"
	"saaf/internal/http-server/handlers/post/getPosts"
	"saaf/internal/http-server/handlers/post/uploadImage"
	"saaf/internal/http-server/handlers/story/enhanceStory"
	"saaf/internal/http-server/handlers/user/joinedEvents"
	"saaf/internal/http-server/middleware/mwlogger"
	"saaf/internal/lib/api/response"
	"saaf/internal/lib/logger/handlers/slogpretty"
	"saaf/internal/lib/logger/sl"
	"saaf/internal/search"
	"saaf/internal/storage/postgres"
	"saaf/internal/storyteller/gemini"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/redis/go-redis/v9"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting saaf", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	locations, rdb := setupGeocoder(log, cfg)

	searcher := search.New(log, storage, locations, cfg.Search.RadiusKm)

	storyteller := setupStoryteller(log, cfg)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	fs := http.FileServer(http.Dir("./static/"))
	router.Handle("/static/*", http.StripPrefix("/static/", fs))

	uploads := http.FileServer(http.Dir(cfg.Uploads.Dir))
	router.Handle(uploadImage.URLPrefix+"*", http.StripPrefix(uploadImage.URLPrefix, uploads))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusFound)
	})

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, response.OK())
	})

	router.Route("/posts", func(r chi.Router) {
		r.Post("/", createPost.New(log, storage))
		r.Get("/", getPosts.New(log, storage))
		r.Get("/{id}", getPost.New(log, storage))
		r.Delete("/{id}", deletePost.New(log, storage))
		r.Post("/{id}/image", uploadImage.New(log, storage, cfg.Uploads.Dir, cfg.Uploads.MaxSize))
		r.Post("/{id}/comments", createComment.New(log, storage))
		r.Post("/{id}/events", createEvent.New(log, storage, locations))
	})

	router.Delete("/comments/{id}", deleteComment.New(log, storage))

	router.Route("/events", func(r chi.Router) {
		r.Get("/", getAllEvents.New(log, storage))
		r.Get("/nearby", nearbyEvents.New(log, searcher))
		r.Get("/search", nearbyEvents.NewByLocation(log, searcher))
		r.Get("/{id}", getEventInfo.New(log, storage))
		r.Delete("/{id}", deleteEvent.New(log, storage))
		r.Post("/{id}/join", joinEvent.New(log, storage))
		r.Post("/{id}/cancel", cancelEvent.New(log, storage))
	})

	router.Get("/users/{id}/events", joinedEvents.New(log, storage))

	if storyteller != nil {
		router.Post("/enhance_story", enhanceStory.New(log, storyteller))
	}

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if storyteller != nil {
		if err = storyteller.Close(); err != nil {
			log.Error("failed to close gemini client", sl.Err(err))
		}
	}

	if rdb != nil {
		if err = rdb.Close(); err != nil {
			log.Error("failed to close redis connection", sl.Err(err))
		}
	}

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

// setupGeocoder returns Nominatim, behind the Redis cache when an address is configured.
// The returned client is nil when the cache is disabled.
func setupGeocoder(log *slog.Logger, cfg *config.Config) (search.Geocoder, *redis.Client) {
	nom := nominatim.New(cfg.Geocoder.BaseURL, cfg.Geocoder.UserAgent, cfg.Geocoder.Timeout)

	if cfg.Redis.Address == "" {
		log.Info("geocoder cache disabled")
		return nom, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("redis is not reachable, geocoder cache will be bypassed until it is", sl.Err(err))
	}

	return rediscache.New(log, rdb, nom, cfg.Redis.TTL), rdb
}

func setupStoryteller(log *slog.Logger, cfg *config.Config) *gemini.Client {
	if cfg.Gemini.APIKey == "" {
		log.Warn("GEMINI_API_KEY is not set, /enhance_story is disabled")
		return nil
	}

	client, err := gemini.New(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Timeout)
	if err != nil {
		log.Error("failed to init gemini client, /enhance_story is disabled", sl.Err(err))
		return nil
	}

	return client
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
