// Package geocoder holds what the geocoding clients share.
package geocoder

import (
	"errors"
	"strings"
)

// ErrServiceUnavailable marks failures of the remote geocoding service
// (transport errors, timeouts, unexpected responses). A query without a match is not an error.
var ErrServiceUnavailable = errors.New("geocoding service unavailable")

// NormalizeQuery trims and lower-cases free text so equivalent queries share a cache entry.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.Join(strings.Fields(query), " "))
}
