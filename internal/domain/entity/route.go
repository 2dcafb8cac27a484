package entity

import (
	"fmt"
	"math"
	"time"

	"github.com/paulmach/orb"
)

// Provider identifies which routing service produced a route.
type Provider string

const (
	ProviderPrimary  Provider = "primary"
	ProviderFallback Provider = "fallback"
)

// RouteRequest asks for a route between two coordinates.
type RouteRequest struct {
	Origin      Coordinate `json:"origin"`
	Destination Coordinate `json:"destination"`
	Profile     Profile    `json:"profile"`
}

// IsValid reports whether both endpoints and the profile are usable.
func (r RouteRequest) IsValid() bool {
	return r.Origin.IsValid() && r.Destination.IsValid() && r.Profile.IsValid()
}

// Instruction is one turn-by-turn step of a route.
type Instruction struct {
	Text            string  `json:"text"`
	DistanceMeters  float64 `json:"distance_meters"`
	DurationSeconds float64 `json:"duration_seconds"`
}

// RouteResult is a normalized route regardless of which provider computed it.
type RouteResult struct {
	Geometry        []Coordinate  `json:"geometry"`
	DistanceMeters  float64       `json:"distance_meters"`
	DurationSeconds float64       `json:"duration_seconds"`
	Instructions    []Instruction `json:"instructions"`
	ProviderUsed    Provider      `json:"provider_used"`
	Profile         Profile       `json:"profile"`
	ComputedAt      time.Time     `json:"computed_at"`
}

// IsValid checks the route invariants: at least two in-range points and
// non-negative totals.
func (r *RouteResult) IsValid() bool {
	if r == nil || len(r.Geometry) < 2 {
		return false
	}
	for _, vertex := range r.Geometry {
		if !vertex.IsValid() {
			return false
		}
	}

	if math.IsNaN(r.DistanceMeters) || math.IsNaN(r.DurationSeconds) {
		return false
	}

	return r.DistanceMeters >= 0 && r.DurationSeconds >= 0
}

// LineString returns the geometry as an orb line string.
func (r *RouteResult) LineString() orb.LineString {
	ls := make(orb.LineString, 0, len(r.Geometry))
	for _, c := range r.Geometry {
		ls = append(ls, c.Point())
	}

	return ls
}

// DistanceToNearestVertex returns the great-circle distance from position to the
// closest geometry vertex. Segments between vertices are not considered.
func (r *RouteResult) DistanceToNearestVertex(position Coordinate) float64 {
	minDistance := math.Inf(1)
	for _, vertex := range r.Geometry {
		if d := position.DistanceTo(vertex); d < minDistance {
			minDistance = d
		}
	}

	return minDistance
}

// DistanceText formats the distance the way the route card shows it, e.g. "1.2 km".
func (r *RouteResult) DistanceText() string {
	return fmt.Sprintf("%.1f km", r.DistanceMeters/1000)
}

// DurationText formats the duration, e.g. "12 min walk" or "1h 5m drive".
func (r *RouteResult) DurationText() string {
	suffix := "drive"
	if r.Profile == ProfileWalking {
		suffix = "walk"
	}

	minutes := int(math.Round(r.DurationSeconds / 60))
	if minutes < 60 {
		return fmt.Sprintf("%d min %s", minutes, suffix)
	}

	return fmt.Sprintf("%dh %dm %s", minutes/60, minutes%60, suffix)
}
