package nominatim

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"saaf/internal/geocoder"
	"saaf/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		status      int
		body        string
		wantCoords  models.Coordinates
		wantFound   bool
		wantUnavail bool
	}{
		{
			name:       "Match",
			status:     http.StatusOK,
			body:       `[{"lat":"40.7127281","lon":"-74.0060152","display_name":"New York, United States"}]`,
			wantCoords: models.Coordinates{Latitude: 40.7127281, Longitude: -74.0060152},
			wantFound:  true,
		},
		{
			name:   "No match",
			status: http.StatusOK,
			body:   `[]`,
		},
		{
			name:        "Server error",
			status:      http.StatusBadGateway,
			body:        `oops`,
			wantUnavail: true,
		},
		{
			name:        "Rate limited",
			status:      http.StatusTooManyRequests,
			body:        `{}`,
			wantUnavail: true,
		},
		{
			name:        "Garbage body",
			status:      http.StatusOK,
			body:        `<html>`,
			wantUnavail: true,
		},
		{
			name:        "Non numeric latitude",
			status:      http.StatusOK,
			body:        `[{"lat":"north","lon":"-74.0"}]`,
			wantUnavail: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := New(srv.URL, "saaf-test", time.Second)

			coords, found, err := client.Resolve(context.Background(), "New York")

			if tc.wantUnavail {
				require.Error(t, err)
				assert.ErrorIs(t, err, geocoder.ErrServiceUnavailable)
				assert.False(t, found)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantFound, found)
			assert.InDelta(t, tc.wantCoords.Latitude, coords.Latitude, 1e-9)
			assert.InDelta(t, tc.wantCoords.Longitude, coords.Longitude, 1e-9)
		})
	}
}

func TestResolveSendsQuery(t *testing.T) {
	t.Parallel()

	var gotPath, gotQuery, gotFormat, gotLimit, gotUA string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("q")
		gotFormat = r.URL.Query().Get("format")
		gotLimit = r.URL.Query().Get("limit")
		gotUA = r.UserAgent()
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := New(srv.URL+"/", "saaf-event-locator", time.Second)

	_, _, err := client.Resolve(context.Background(), "Brooklyn Bridge, NY")
	require.NoError(t, err)

	assert.Equal(t, "/search", gotPath)
	assert.Equal(t, "Brooklyn Bridge, NY", gotQuery)
	assert.Equal(t, "jsonv2", gotFormat)
	assert.Equal(t, "1", gotLimit)
	assert.Equal(t, "saaf-event-locator", gotUA)
}

func TestResolveTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	client := New(srv.URL, "saaf-test", 50*time.Millisecond)

	_, found, err := client.Resolve(context.Background(), "Paris")

	assert.False(t, found)
	assert.ErrorIs(t, err, geocoder.ErrServiceUnavailable)
}

func TestResolveUnreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := New(url, "saaf-test", time.Second)

	_, _, err := client.Resolve(context.Background(), "Paris")

	assert.ErrorIs(t, err, geocoder.ErrServiceUnavailable)
}
