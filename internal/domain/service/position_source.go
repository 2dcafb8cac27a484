package service

import (
	"context"
	"time"

	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
)

// WatchOptions configures a continuous position subscription
type WatchOptions struct {
	HighAccuracy bool
	// Timeout is the longest wait for the next sample before a Timeout error is emitted
	Timeout time.Duration
	// MaxSampleAge is the oldest cached sample accepted, zero forces a fresh fix
	MaxSampleAge time.Duration
}

// PositionEvent carries either a sample or a classified sensor failure
type PositionEvent struct {
	Sample entity.PositionSample
	Err    *domainerrors.LocationError
}

// Subscription is a cancellable stream of position events.
// Cancel is idempotent and the events channel is closed once it returns.
type Subscription interface {
	Events() <-chan PositionEvent
	Cancel()
}

// PositionSource abstracts the device's continuous location sensor
type PositionSource interface {
	// Watch opens a new subscription. It returns ErrSensorUnsupported when no sensor is available.
	Watch(ctx context.Context, opts WatchOptions) (Subscription, error)
}

// PositionFeed is implemented by sources that the device pushes samples into
type PositionFeed interface {
	Publish(sample entity.PositionSample)
	Fail(err *domainerrors.LocationError)
	SetSupported(supported bool)
}

// PositionSourceFactory creates the position source for a new session
type PositionSourceFactory interface {
	NewSource(sessionID string) PositionSource
}
