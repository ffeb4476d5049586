// Package rediscache memoizes geocoder answers in Redis, misses included.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"saaf/internal/geocoder"
	"saaf/internal/lib/logger/sl"
	"saaf/internal/models"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "geocode:"

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Resolver
type Resolver interface {
	Resolve(ctx context.Context, query string) (models.Coordinates, bool, error)
}

type Cache struct {
	log  *slog.Logger
	rdb  redis.Cmdable
	next Resolver
	ttl  time.Duration
}

type entry struct {
	Found     bool    `json:"found"`
	Latitude  float64 `json:"lat,omitempty"`
	Longitude float64 `json:"lng,omitempty"`
}

func New(log *slog.Logger, rdb redis.Cmdable, next Resolver, ttl time.Duration) *Cache {
	return &Cache{
		log:  log.With(slog.String("component", "geocoder/rediscache")),
		rdb:  rdb,
		next: next,
		ttl:  ttl,
	}
}

// Resolve answers from Redis when possible. Redis trouble is logged and bypassed;
// errors of the wrapped resolver are returned as is and never cached.
func (c *Cache) Resolve(ctx context.Context, query string) (models.Coordinates, bool, error) {
	key := keyPrefix + geocoder.NormalizeQuery(query)

	if cached, ok := c.lookup(ctx, key); ok {
		return models.Coordinates{Latitude: cached.Latitude, Longitude: cached.Longitude}, cached.Found, nil
	}

	coords, found, err := c.next.Resolve(ctx, query)
	if err != nil {
		return models.Coordinates{}, false, err
	}

	c.store(ctx, key, entry{Found: found, Latitude: coords.Latitude, Longitude: coords.Longitude})

	return coords, found, nil
}

func (c *Cache) lookup(ctx context.Context, key string) (entry, bool) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Error("failed to read geocode cache", slog.String("key", key), sl.Err(err))
		}
		return entry{}, false
	}

	var cached entry
	if err = json.Unmarshal(raw, &cached); err != nil {
		c.log.Warn("dropping malformed geocode cache entry", slog.String("key", key), sl.Err(err))
		c.rdb.Del(ctx, key)
		return entry{}, false
	}

	if cached.Found {
		coords := models.Coordinates{Latitude: cached.Latitude, Longitude: cached.Longitude}
		if err = coords.Validate(); err != nil {
			c.log.Warn("dropping geocode cache entry with bad coordinates", slog.String("key", key), sl.Err(err))
			c.rdb.Del(ctx, key)
			return entry{}, false
		}
	}

	c.log.Debug("geocode cache hit", slog.String("key", key), slog.Bool("found", cached.Found))

	return cached, true
}

func (c *Cache) store(ctx context.Context, key string, e entry) {
	raw, err := json.Marshal(e)
	if err != nil {
		c.log.Error("failed to encode geocode cache entry", sl.Err(fmt.Errorf("marshal: %w", err)))
		return
	}

	if err = c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Error("failed to write geocode cache", slog.String("key", key), sl.Err(err))
	}
}
