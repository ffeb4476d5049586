// Package proximity selects events within a great-circle radius of a point.
//
// The scan is linear over whatever the caller passes in; there is no spatial index
// or bounding-box pre-filter.
package proximity

import (
	"saaf/internal/models"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const DefaultRadiusKm = 10.0

// DistanceKm is the haversine distance between a and b in kilometers.
func DistanceKm(a, b models.Coordinates) float64 {
	return geo.DistanceHaversine(toPoint(a), toPoint(b)) / 1000
}

// Within returns the events whose distance to ref is at most radiusKm, in input order.
// Events without coordinates are skipped. The result is never nil.
func Within(ref models.Coordinates, events []models.Event, radiusKm float64) []models.Event {
	nearby := make([]models.Event, 0)

	for _, event := range events {
		coords, ok := event.Coordinates()
		if !ok {
			continue
		}

		if DistanceKm(ref, coords) <= radiusKm {
			nearby = append(nearby, event)
		}
	}

	return nearby
}

// orb points are [lon, lat].
func toPoint(c models.Coordinates) orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}
