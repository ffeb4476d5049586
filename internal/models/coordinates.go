package models

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidCoordinates = errors.New("invalid coordinates")

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (c Coordinates) Validate() error {
	if math.IsNaN(c.Latitude) || math.IsInf(c.Latitude, 0) ||
		math.IsNaN(c.Longitude) || math.IsInf(c.Longitude, 0) {
		return fmt.Errorf("%w: not a finite number", ErrInvalidCoordinates)
	}

	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("%w: latitude %v out of range", ErrInvalidCoordinates, c.Latitude)
	}

	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: longitude %v out of range", ErrInvalidCoordinates, c.Longitude)
	}

	return nil
}
