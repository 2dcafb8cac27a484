package entity

import (
	"time"

	"github.com/google/uuid"
)

// SessionState is the phase of one navigation attempt.
type SessionState string

const (
	SessionIdle              SessionState = "idle"
	SessionAcquiringLocation SessionState = "acquiring_location"
	SessionRouteComputing    SessionState = "route_computing"
	SessionRouteReady        SessionState = "route_ready"
	SessionTracking          SessionState = "tracking"
	SessionRecalculating     SessionState = "recalculating"
	SessionError             SessionState = "error"
)

// String returns the string representation of the SessionState.
func (s SessionState) String() string {
	return string(s)
}

// AcquisitionState is the phase of the start-point acquisition.
type AcquisitionState string

const (
	AcquisitionIdle          AcquisitionState = "idle"
	AcquisitionRequesting    AcquisitionState = "requesting"
	AcquisitionSuccess       AcquisitionState = "success"
	AcquisitionError         AcquisitionState = "error"
	AcquisitionTimedOut      AcquisitionState = "timed_out"
	AcquisitionManualPending AcquisitionState = "manual_pending"
	AcquisitionManualSet     AcquisitionState = "manual_set"
)

// IsTerminal reports whether acquisition produced an origin.
func (s AcquisitionState) IsTerminal() bool {
	return s == AcquisitionSuccess || s == AcquisitionManualSet
}

// OriginSource tells where the starting point came from.
type OriginSource string

const (
	OriginFromSensor OriginSource = "sensor"
	OriginFromMap    OriginSource = "map"
)

// TrackingContext is the state live tracking works against.
type TrackingContext struct {
	CurrentRoute        *RouteResult   `json:"current_route"`
	CurrentOrigin       Coordinate     `json:"current_origin"`
	Destination         Coordinate     `json:"destination"`
	Profile             Profile        `json:"profile"`
	BufferDistance      BufferDistance `json:"buffer_distance"`
	LastRecalculationAt time.Time      `json:"last_recalculation_at"`
}

// SessionSnapshot is a read-only view of a navigation session.
type SessionSnapshot struct {
	ID                  uuid.UUID        `json:"id"`
	State               SessionState     `json:"state"`
	AcquisitionState    AcquisitionState `json:"acquisition_state"`
	AwaitingDestination bool             `json:"awaiting_destination"`
	Destination         *Coordinate      `json:"destination,omitempty"`
	Origin              *Coordinate      `json:"origin,omitempty"`
	Profile             Profile          `json:"profile"`
	BufferDistance      BufferDistance   `json:"buffer_distance"`
	BufferOverridden    bool             `json:"buffer_overridden"`
	Route               *RouteResult     `json:"route,omitempty"`
	Tracking            bool             `json:"tracking"`
	LastRecalculationAt *time.Time       `json:"last_recalculation_at,omitempty"`
	LastError           string           `json:"last_error,omitempty"`
}
