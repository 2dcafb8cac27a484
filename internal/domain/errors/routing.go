package errors

import (
	"net/http"
	"strings"
)

// RoutingErrorKind classifies routing service failures.
type RoutingErrorKind string

const (
	RoutingInvalidParams      RoutingErrorKind = "invalid_params"
	RoutingRateLimited        RoutingErrorKind = "rate_limited"
	RoutingServiceUnavailable RoutingErrorKind = "service_unavailable"
	RoutingNoRouteFound       RoutingErrorKind = "no_route_found"
	RoutingNetworkError       RoutingErrorKind = "network_error"
	RoutingServiceError       RoutingErrorKind = "service_error"
	RoutingGeneric            RoutingErrorKind = "generic"
)

// RoutingError is a classified failure from a routing backend.
type RoutingError struct {
	Kind       RoutingErrorKind
	Provider   string
	StatusCode int
	Detail     string
	cause      error
}

// NewRoutingError creates a routing error. cause may be nil.
func NewRoutingError(kind RoutingErrorKind, provider, detail string, cause error) *RoutingError {
	return &RoutingError{
		Kind:     kind,
		Provider: provider,
		Detail:   detail,
		cause:    cause,
	}
}

// ClassifyStatus maps a non-2xx HTTP status of a routing service to a kind.
func ClassifyStatus(status int) RoutingErrorKind {
	switch {
	case status == http.StatusBadRequest:
		return RoutingInvalidParams
	case status == http.StatusTooManyRequests:
		return RoutingRateLimited
	case status >= http.StatusInternalServerError:
		return RoutingServiceUnavailable
	default:
		return RoutingGeneric
	}
}

// Error implements the error interface
func (e *RoutingError) Error() string {
	var b strings.Builder
	b.WriteString("routing error")
	if e.Provider != "" {
		b.WriteString(" (" + e.Provider + ")")
	}
	b.WriteString(": " + string(e.Kind))
	if e.Detail != "" {
		b.WriteString(": " + e.Detail)
	}
	if e.cause != nil {
		b.WriteString(": " + e.cause.Error())
	}

	return b.String()
}

// Unwrap returns the underlying cause.
func (e *RoutingError) Unwrap() error {
	return e.cause
}

// HTTPCode returns the HTTP status code
func (e *RoutingError) HTTPCode() int {
	switch e.Kind {
	case RoutingInvalidParams:
		return http.StatusBadRequest
	case RoutingRateLimited:
		return http.StatusTooManyRequests
	case RoutingNoRouteFound:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

// ErrorCode returns the business error code
func (e *RoutingError) ErrorCode() string {
	return "ROUTING_" + strings.ToUpper(string(e.Kind))
}

// Message returns the user-facing text for the failure.
func (e *RoutingError) Message() string {
	switch e.Kind {
	case RoutingInvalidParams, RoutingNoRouteFound:
		return "No route found between these locations. Please try different start/end points."
	case RoutingRateLimited:
		return "Too many routing requests. Please wait a moment before trying again."
	default:
		return "Routing service unavailable."
	}
}

// Details returns detailed error information
func (e *RoutingError) Details() string {
	return e.Detail
}
