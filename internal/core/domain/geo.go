package domain

import (
	"math"
	"strconv"
	"strings"
)

// GeoPoint is a validated latitude/longitude pair. It is produced only by
// ParseLocation; never construct one from untrusted input directly.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ParseLocation turns a loosely formatted "lat,lng" string into a GeoPoint.
// It requires exactly two comma-separated numeric tokens, both finite, with
// surrounding whitespace tolerated. Any other shape (empty input, one token,
// three tokens, non-numeric values, NaN/Inf) yields nil. Malformed location
// data is an expected condition (the field is free text server-side), so this
// is a total function: it never returns an error.
func ParseLocation(raw string) *GeoPoint {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return nil
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil
	}
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return nil
	}

	return &GeoPoint{Lat: lat, Lng: lng}
}
