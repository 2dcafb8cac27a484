package service

import (
	"context"
	"time"

	"wayfinder/internal/domain/entity"
)

// NavigationEvent is a lifecycle notification of a navigation session
type NavigationEvent struct {
	EventID         string             `json:"event_id"`
	EventType       string             `json:"event_type"`
	SessionID       string             `json:"session_id"`
	Profile         entity.Profile     `json:"profile,omitempty"`
	Provider        entity.Provider    `json:"provider,omitempty"`
	Origin          *entity.Coordinate `json:"origin,omitempty"`
	Destination     *entity.Coordinate `json:"destination,omitempty"`
	DistanceMeters  float64            `json:"distance_meters,omitempty"`
	DurationSeconds float64            `json:"duration_seconds,omitempty"`
	DeviationMeters float64            `json:"deviation_meters,omitempty"`
	Error           string             `json:"error,omitempty"`
	OccurredAt      time.Time          `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNavigationEvent hands over a navigation lifecycle event. Sessions
	// call it inline, so implementations must not block on the broker
	PublishNavigationEvent(ctx context.Context, event *NavigationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
