package proximity

import (
	"testing"

	"saaf/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var newYork = models.Coordinates{Latitude: 40.7128, Longitude: -74.0060}

func eventAt(id int, lat, lng float64) models.Event {
	e := models.Event{ID: id, Title: "event"}
	e.SetCoordinates(models.Coordinates{Latitude: lat, Longitude: lng})

	return e
}

func ids(events []models.Event) []int {
	res := make([]int, 0, len(events))
	for _, e := range events {
		res = append(res, e.ID)
	}

	return res
}

func TestDistanceKm(t *testing.T) {
	t.Parallel()

	williamsburg := models.Coordinates{Latitude: 40.7306, Longitude: -73.9352}
	losAngeles := models.Coordinates{Latitude: 34.0522, Longitude: -118.2437}

	assert.InDelta(t, 6.29, DistanceKm(newYork, williamsburg), 0.05)
	assert.InDelta(t, 3940, DistanceKm(newYork, losAngeles), 10)
	assert.InDelta(t, DistanceKm(newYork, losAngeles), DistanceKm(losAngeles, newYork), 1e-9)
	assert.Zero(t, DistanceKm(newYork, newYork))
}

func TestWithin(t *testing.T) {
	t.Parallel()

	noCoords := models.Event{ID: 3, Title: "no coordinates"}

	events := []models.Event{
		eventAt(1, 40.7306, -73.9352),
		eventAt(2, 34.0522, -118.2437),
		noCoords,
		eventAt(4, 40.7128, -74.0060),
	}

	got := Within(newYork, events, DefaultRadiusKm)

	assert.Equal(t, []int{1, 4}, ids(got))
}

func TestWithinRadiusEdges(t *testing.T) {
	t.Parallel()

	equator := models.Coordinates{}

	// 0.08 deg of latitude is ~8.9 km, 0.1 deg is ~11.1 km.
	inside := eventAt(1, 0.08, 0)
	outside := eventAt(2, 0.1, 0)

	got := Within(equator, []models.Event{inside, outside}, DefaultRadiusKm)
	assert.Equal(t, []int{1}, ids(got))

	coords, ok := outside.Coordinates()
	require.True(t, ok)

	exact := DistanceKm(equator, coords)
	got = Within(equator, []models.Event{outside}, exact)
	assert.Equal(t, []int{2}, ids(got), "radius is inclusive")
}

func TestWithinSkipsHalfGeocodedEvents(t *testing.T) {
	t.Parallel()

	lat := newYork.Latitude
	onlyLat := models.Event{ID: 1, Latitude: &lat}

	got := Within(newYork, []models.Event{onlyLat}, DefaultRadiusKm)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestWithinIsIdempotent(t *testing.T) {
	t.Parallel()

	events := []models.Event{
		eventAt(1, 40.7306, -73.9352),
		eventAt(2, 40.80, -73.95),
		eventAt(3, 41.5, -74.0),
	}

	first := Within(newYork, events, DefaultRadiusKm)
	second := Within(newYork, events, DefaultRadiusKm)

	assert.Equal(t, first, second)
	assert.Len(t, events, 3, "input is not modified")
}

func TestWithinEmptyInput(t *testing.T) {
	t.Parallel()

	got := Within(newYork, nil, DefaultRadiusKm)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}
