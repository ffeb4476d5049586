package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
env: "dev"
database:
  user: "saaf"
  dbname: "saaf"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "localhost:8080", cfg.HTTPServer.Address)
	assert.Equal(t, 4*time.Second, cfg.HTTPServer.Timeout)
	assert.Equal(t, 40*time.Second, cfg.HTTPServer.WriteTimeout)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "https://nominatim.openstreetmap.org", cfg.Geocoder.BaseURL)
	assert.Equal(t, 24*time.Hour, cfg.Redis.TTL)
	assert.Equal(t, "gemini-flash-latest", cfg.Gemini.Model)
	assert.InDelta(t, 10.0, cfg.Search.RadiusKm, 1e-9)
	assert.Equal(t, int64(10<<20), cfg.Uploads.MaxSize)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("REDIS_ADDR", "redis:6379")

	path := writeConfig(t, `
database:
  user: "saaf"
  dbname: "saaf"
redis:
  address: "localhost:6379"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Gemini.APIKey)
	assert.Equal(t, "redis:6379", cfg.Redis.Address)
}

func TestLoadErrors(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		_, err := Load("")
		assert.ErrorIs(t, err, ErrConfigPathNotSet)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorContains(t, err, "config file does not exist")
	})

	t.Run("non-positive radius", func(t *testing.T) {
		path := writeConfig(t, `
database:
  user: "saaf"
  dbname: "saaf"
search:
  radius_km: -1
`)

		_, err := Load(path)
		assert.ErrorIs(t, err, ErrInvalidRadius)
	})
}
