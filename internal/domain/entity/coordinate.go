// Package entity contains the core business objects of the project.
package entity

import (
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Coordinate is a geographic position in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// IsValid reports whether the coordinate is finite and inside Earth bounds.
func (c Coordinate) IsValid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) ||
		math.IsInf(c.Lat, 0) || math.IsInf(c.Lng, 0) {
		return false
	}

	return c.Lat >= -90 && c.Lat <= 90 &&
		c.Lng >= -180 && c.Lng <= 180
}

// Point converts the coordinate to an orb point (longitude first).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

// DistanceTo returns the great-circle distance in meters.
func (c Coordinate) DistanceTo(other Coordinate) float64 {
	return geo.DistanceHaversine(c.Point(), other.Point())
}

// CoordinateFromPoint converts an orb point (longitude first) to a Coordinate.
func CoordinateFromPoint(p orb.Point) Coordinate {
	return Coordinate{Lat: p.Lat(), Lng: p.Lon()}
}

// ParseQueryCoordinate parses a lat/lng pair taken from query parameters.
// Both values must be present and parse as finite numbers inside Earth bounds.
func ParseQueryCoordinate(lat, lng string) (Coordinate, bool) {
	lat, lng = strings.TrimSpace(lat), strings.TrimSpace(lng)
	if lat == "" || lng == "" {
		return Coordinate{}, false
	}

	latValue, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return Coordinate{}, false
	}

	lngValue, err := strconv.ParseFloat(lng, 64)
	if err != nil {
		return Coordinate{}, false
	}

	coord := Coordinate{Lat: latValue, Lng: lngValue}
	if !coord.IsValid() {
		return Coordinate{}, false
	}

	return coord, true
}
