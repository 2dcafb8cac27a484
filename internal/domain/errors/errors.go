package errors

import (
	"net/http"
)

// AppError is an error the HTTP layer can render without further mapping.
// RoutingError and LocationError implement it as well.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string
}

// BaseError is a sentinel with a fixed status and code.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	// set on copies made by WithDetails
	origin *BaseError
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// Unwrap lets errors.Is match a detailed copy against its sentinel.
func (e *BaseError) Unwrap() error {
	if e.origin == nil {
		return nil
	}

	return e.origin
}

// WithDetails returns a copy of the sentinel carrying details.
func (e *BaseError) WithDetails(details string) error {
	origin := e
	if e.origin != nil {
		origin = e.origin
	}

	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
		origin:    origin,
	}
}

func conflict(code, message string) *BaseError {
	return NewBaseError(http.StatusConflict, code, message, "")
}

func badRequest(code, message string) *BaseError {
	return NewBaseError(http.StatusBadRequest, code, message, "")
}

// session lifecycle
var (
	ErrSessionNotFound = NewBaseError(http.StatusNotFound, "SESSION_NOT_FOUND", "navigation session not found", "")
	ErrSessionClosed   = NewBaseError(http.StatusGone, "SESSION_CLOSED", "navigation session is closed", "")
)

// navigation state; the request is valid but the session is not ready for it
var (
	ErrDestinationAlreadySet = conflict("DESTINATION_ALREADY_SET", "destination is already set for this session")
	ErrDestinationNotSet     = conflict("DESTINATION_NOT_SET", "click on the map to set a destination first")
	ErrOriginNotSet          = conflict("ORIGIN_NOT_SET", "please set your location first")
	ErrNotAwaitingClick      = conflict("NOT_AWAITING_CLICK", "the session is not waiting for a map click")
	ErrRecalculationInFlight = conflict("RECALCULATION_IN_FLIGHT", "a route recalculation is already in progress")
	ErrRouteSuperseded       = conflict("ROUTE_SUPERSEDED", "a newer route request replaced this one")

	ErrSensorUnsupported = NewBaseError(http.StatusServiceUnavailable, "SENSOR_UNSUPPORTED",
		"location sensor is not available on this device", "")
)

// input validation
var (
	ErrValidationFailed      = badRequest("VALIDATION_FAILED", "input validation failed")
	ErrInvalidCoordinate     = badRequest("INVALID_COORDINATE", "coordinate is outside valid bounds")
	ErrInvalidBufferDistance = badRequest("INVALID_BUFFER_DISTANCE", "buffer distance must be between 10 and 130 meters in steps of 10")
	ErrInvalidProfile        = badRequest("INVALID_PROFILE", "unknown routing profile")
)

var ErrInternalError = NewBaseError(http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error", "")
