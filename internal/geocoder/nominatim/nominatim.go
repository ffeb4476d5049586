// Package nominatim resolves free-text locations with an OpenStreetMap Nominatim server.
package nominatim

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"saaf/internal/geocoder"
	"saaf/internal/models"

	"github.com/go-chi/render"
)

type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

type place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func New(baseURL, userAgent string, timeout time.Duration) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Resolve returns the coordinates of the best match for query. found is false when
// the server knows no such place.
func (c *Client) Resolve(ctx context.Context, query string) (models.Coordinates, bool, error) {
	const op = "geocoder.nominatim.Resolve"

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "jsonv2")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return models.Coordinates{}, false, fmt.Errorf("%s: %w", op, err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.Coordinates{}, false, fmt.Errorf("%s: %w: %v", op, geocoder.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return models.Coordinates{}, false, fmt.Errorf("%s: %w: unexpected status %d", op, geocoder.ErrServiceUnavailable, resp.StatusCode)
	}

	var places []place
	if err = render.DecodeJSON(resp.Body, &places); err != nil {
		return models.Coordinates{}, false, fmt.Errorf("%s: %w: decode response: %v", op, geocoder.ErrServiceUnavailable, err)
	}

	if len(places) == 0 {
		return models.Coordinates{}, false, nil
	}

	coords, err := places[0].coordinates()
	if err != nil {
		return models.Coordinates{}, false, fmt.Errorf("%s: %w: %v", op, geocoder.ErrServiceUnavailable, err)
	}

	return coords, true, nil
}

func (p place) coordinates() (models.Coordinates, error) {
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("bad latitude %q: %w", p.Lat, err)
	}

	lng, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("bad longitude %q: %w", p.Lon, err)
	}

	coords := models.Coordinates{Latitude: lat, Longitude: lng}
	if err = coords.Validate(); err != nil {
		return models.Coordinates{}, err
	}

	return coords, nil
}
