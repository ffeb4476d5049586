package models

import "time"

// Event is owned by a Post. Latitude and Longitude are either both set or both nil.
type Event struct {
	ID           int       `json:"id"`
	PostID       int       `json:"post_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Date         time.Time `json:"date"`
	LocationName string    `json:"location_name"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Coordinates reports the event position, ok is false unless both parts are stored.
func (e *Event) Coordinates() (Coordinates, bool) {
	if e.Latitude == nil || e.Longitude == nil {
		return Coordinates{}, false
	}

	return Coordinates{Latitude: *e.Latitude, Longitude: *e.Longitude}, true
}

func (e *Event) SetCoordinates(c Coordinates) {
	lat, lng := c.Latitude, c.Longitude
	e.Latitude = &lat
	e.Longitude = &lng
}

func (e *Event) IsPast(now time.Time) bool {
	return e.Date.Before(now)
}
