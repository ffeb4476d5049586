package search

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"saaf/internal/geocoder"
	"saaf/internal/lib/logger/handlers/slogdiscard"
	"saaf/internal/models"
	"saaf/internal/search/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var newYork = models.Coordinates{Latitude: 40.7128, Longitude: -74.0060}

func eventAt(id int, lat, lng float64) models.Event {
	e := models.Event{ID: id, Title: fmt.Sprintf("event %d", id)}
	e.SetCoordinates(models.Coordinates{Latitude: lat, Longitude: lng})

	return e
}

func storedEvents() []models.Event {
	return []models.Event{
		eventAt(1, 40.7306, -73.9352),
		eventAt(2, 34.0522, -118.2437),
		eventAt(3, 40.7580, -73.9855),
	}
}

func TestNearby(t *testing.T) {
	t.Parallel()

	events := mocks.NewEventLister(t)
	events.On("ListEventsWithCoordinates", mock.Anything).Return(storedEvents(), nil).Once()

	svc := New(slogdiscard.NewDiscardLogger(), events, mocks.NewGeocoder(t), 10)

	got, err := svc.Nearby(context.Background(), newYork)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
}

func TestNearbyInvalidInput(t *testing.T) {
	t.Parallel()

	testCases := []models.Coordinates{
		{Latitude: 95, Longitude: 0},
		{Latitude: 0, Longitude: -200},
		{Latitude: math.NaN(), Longitude: 0},
	}

	for _, ref := range testCases {
		ref := ref
		t.Run(fmt.Sprintf("%v", ref), func(t *testing.T) {
			t.Parallel()

			events := mocks.NewEventLister(t)
			svc := New(slogdiscard.NewDiscardLogger(), events, mocks.NewGeocoder(t), 10)

			_, err := svc.Nearby(context.Background(), ref)
			assert.ErrorIs(t, err, ErrInvalidInput)
			events.AssertNotCalled(t, "ListEventsWithCoordinates", mock.Anything)
		})
	}
}

func TestNearbyStorageError(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("connection refused")

	events := mocks.NewEventLister(t)
	events.On("ListEventsWithCoordinates", mock.Anything).Return(nil, dbErr).Once()

	svc := New(slogdiscard.NewDiscardLogger(), events, mocks.NewGeocoder(t), 10)

	_, err := svc.Nearby(context.Background(), newYork)
	assert.ErrorIs(t, err, dbErr)
}

func TestByLocation(t *testing.T) {
	t.Parallel()

	events := mocks.NewEventLister(t)
	events.On("ListEventsWithCoordinates", mock.Anything).Return(storedEvents(), nil).Once()

	geo := mocks.NewGeocoder(t)
	geo.On("Resolve", mock.Anything, "New York").Return(newYork, true, nil).Once()

	svc := New(slogdiscard.NewDiscardLogger(), events, geo, 10)

	got, err := svc.ByLocation(context.Background(), "  New York ")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestByLocationNotFoundIsEmpty(t *testing.T) {
	t.Parallel()

	events := mocks.NewEventLister(t)

	geo := mocks.NewGeocoder(t)
	geo.On("Resolve", mock.Anything, "Atlantis").Return(models.Coordinates{}, false, nil).Once()

	svc := New(slogdiscard.NewDiscardLogger(), events, geo, 10)

	got, err := svc.ByLocation(context.Background(), "Atlantis")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	events.AssertNotCalled(t, "ListEventsWithCoordinates", mock.Anything)
}

func TestByLocationGeocoderUnavailable(t *testing.T) {
	t.Parallel()

	events := mocks.NewEventLister(t)

	geo := mocks.NewGeocoder(t)
	geo.On("Resolve", mock.Anything, "Paris").
		Return(models.Coordinates{}, false, fmt.Errorf("nominatim: %w", geocoder.ErrServiceUnavailable)).Once()

	svc := New(slogdiscard.NewDiscardLogger(), events, geo, 10)

	_, err := svc.ByLocation(context.Background(), "Paris")
	assert.ErrorIs(t, err, geocoder.ErrServiceUnavailable)
}

func TestByLocationBlank(t *testing.T) {
	t.Parallel()

	svc := New(slogdiscard.NewDiscardLogger(), mocks.NewEventLister(t), mocks.NewGeocoder(t), 10)

	_, err := svc.ByLocation(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNewDefaultsRadius(t *testing.T) {
	t.Parallel()

	svc := New(slogdiscard.NewDiscardLogger(), mocks.NewEventLister(t), mocks.NewGeocoder(t), 0)

	assert.InDelta(t, 10.0, svc.radiusKm, 1e-9)
}
