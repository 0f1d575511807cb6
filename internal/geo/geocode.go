package geo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kelvins/geocoder"
)

// Resolver turns free-text place names into "lat,lon" strings via the Google
// geocoding API. The timeline endpoint accepts both forms, but coordinates
// avoid upstream ambiguity between same-named cities.
type Resolver struct{}

// New installs the API key and returns a Resolver. The geocoder package keys
// off a package-level variable, so the key is set once here instead of being
// threaded through each call.
func New(apiKey string) *Resolver {
	geocoder.ApiKey = apiKey
	return &Resolver{}
}

// Resolve geocodes location to "lat,lon". Strings that already look like
// coordinates pass through untouched.
func (r *Resolver) Resolve(location string) (string, error) {
	if looksLikeCoordinates(location) {
		return location, nil
	}

	loc, err := geocoder.Geocoding(geocoder.Address{City: location})
	if err != nil {
		return "", fmt.Errorf("geocode %q: %w", location, err)
	}

	return fmt.Sprintf("%f,%f", loc.Latitude, loc.Longitude), nil
}

func looksLikeCoordinates(s string) bool {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return false
	}
	for _, part := range parts {
		if _, err := strconv.ParseFloat(strings.TrimSpace(part), 64); err != nil {
			return false
		}
	}
	return true
}
