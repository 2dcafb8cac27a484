package entity

import (
	"github.com/pkg/errors"
)

// BufferDistance is the allowed deviation from the planned route, in meters.
type BufferDistance int

const (
	MinBufferDistance  BufferDistance = 10
	MaxBufferDistance  BufferDistance = 130
	BufferDistanceStep BufferDistance = 10
)

// ErrInvalidBufferDistance is returned for values outside [10,130] or off the 10 m step.
var ErrInvalidBufferDistance = errors.New("buffer distance must be between 10 and 130 meters in steps of 10")

// NewBufferDistance validates an operator supplied value.
func NewBufferDistance(meters int) (BufferDistance, error) {
	b := BufferDistance(meters)
	if !b.IsValid() {
		return 0, errors.Wrapf(ErrInvalidBufferDistance, "got %d", meters)
	}

	return b, nil
}

// IsValid reports whether the value is inside the control's range and step.
func (b BufferDistance) IsValid() bool {
	return b >= MinBufferDistance && b <= MaxBufferDistance && b%BufferDistanceStep == 0
}

// Meters returns the buffer as a float for distance comparisons.
func (b BufferDistance) Meters() float64 {
	return float64(b)
}
