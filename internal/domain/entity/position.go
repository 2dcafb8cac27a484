package entity

import "time"

// PositionSample is a single fix delivered by a location sensor.
type PositionSample struct {
	Coordinate     Coordinate `json:"coordinate"`
	AccuracyMeters float64    `json:"accuracy_meters"`
	CapturedAt     time.Time  `json:"captured_at"`
}

// Age returns how old the sample is relative to now.
func (s PositionSample) Age(now time.Time) time.Duration {
	if s.CapturedAt.IsZero() {
		return 0
	}

	return now.Sub(s.CapturedAt)
}
