package errors

import (
	"net/http"
	"strings"
)

// LocationErrorKind classifies location sensor failures.
type LocationErrorKind string

const (
	LocationPermissionDenied LocationErrorKind = "permission_denied"
	LocationUnavailable      LocationErrorKind = "unavailable"
	LocationTimeout          LocationErrorKind = "timeout"
)

// ParseLocationErrorKind maps a sensor error name or numeric code to a kind.
// Unknown values are treated as unavailable.
func ParseLocationErrorKind(value string) LocationErrorKind {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "permission_denied", "permissiondenied", "denied", "1":
		return LocationPermissionDenied
	case "timeout", "3":
		return LocationTimeout
	default:
		return LocationUnavailable
	}
}

// LocationError is a classified location sensor failure.
type LocationError struct {
	Kind LocationErrorKind
}

// NewLocationError creates a location error of the given kind.
func NewLocationError(kind LocationErrorKind) *LocationError {
	return &LocationError{Kind: kind}
}

// Error implements the error interface
func (e *LocationError) Error() string {
	return "location error: " + string(e.Kind)
}

// HTTPCode returns the HTTP status code
func (e *LocationError) HTTPCode() int {
	if e.Kind == LocationTimeout {
		return http.StatusGatewayTimeout
	}

	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *LocationError) ErrorCode() string {
	return "LOCATION_" + strings.ToUpper(string(e.Kind))
}

// Message returns the user-facing text shown in dialogs and toasts.
func (e *LocationError) Message() string {
	switch e.Kind {
	case LocationPermissionDenied:
		return "Location access was denied. Please enable location permissions."
	case LocationUnavailable:
		return "Location information is unavailable. Please check your GPS signal."
	case LocationTimeout:
		return "Location request timed out. Please try again."
	default:
		return "Could not get your location."
	}
}

// Details returns detailed error information
func (e *LocationError) Details() string {
	return ""
}
