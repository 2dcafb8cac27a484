package errors

import (
	"net/http"
	"strings"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDetails_MatchesSentinel(t *testing.T) {
	err := ErrInvalidCoordinate.WithDetails("lat 91 out of range")
	again := ErrInvalidCoordinate.WithDetails("first").(*BaseError).WithDetails("second")

	assert.ErrorIs(t, err, ErrInvalidCoordinate)
	assert.ErrorIs(t, again, ErrInvalidCoordinate)
	assert.ErrorIs(t, pkgerrors.Wrap(err, "map click"), ErrInvalidCoordinate)
	assert.NotErrorIs(t, err, ErrInvalidProfile)

	var appErr AppError
	require.True(t, pkgerrors.As(again, &appErr))
	assert.Equal(t, "second", appErr.Details())
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "coordinate is outside valid bounds: lat 91 out of range", err.Error())
	assert.Empty(t, ErrInvalidCoordinate.Details())
}

func TestRoutingError_Classification(t *testing.T) {
	tests := []struct {
		status   int
		kind     RoutingErrorKind
		httpCode int
	}{
		{status: http.StatusBadRequest, kind: RoutingInvalidParams, httpCode: http.StatusBadRequest},
		{status: http.StatusTooManyRequests, kind: RoutingRateLimited, httpCode: http.StatusTooManyRequests},
		{status: http.StatusServiceUnavailable, kind: RoutingServiceUnavailable, httpCode: http.StatusBadGateway},
		{status: http.StatusForbidden, kind: RoutingGeneric, httpCode: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			err := NewRoutingError(ClassifyStatus(tt.status), "primary", "", nil)

			assert.Equal(t, tt.kind, err.Kind)
			assert.Equal(t, tt.httpCode, err.HTTPCode())
			assert.Equal(t, "ROUTING_"+strings.ToUpper(string(tt.kind)), err.ErrorCode())
		})
	}
}

func TestRoutingError_UnwrapsCause(t *testing.T) {
	cause := pkgerrors.New("dial tcp: refused")
	err := NewRoutingError(RoutingNetworkError, "fallback", "post", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "routing error (fallback): network_error: post: dial tcp: refused", err.Error())
	assert.Equal(t, "Routing service unavailable.", err.Message())
}

func TestParseLocationErrorKind(t *testing.T) {
	assert.Equal(t, LocationPermissionDenied, ParseLocationErrorKind("1"))
	assert.Equal(t, LocationPermissionDenied, ParseLocationErrorKind(" PermissionDenied "))
	assert.Equal(t, LocationTimeout, ParseLocationErrorKind("timeout"))
	assert.Equal(t, LocationUnavailable, ParseLocationErrorKind("2"))
	assert.Equal(t, LocationUnavailable, ParseLocationErrorKind("gibberish"))

	assert.Equal(t, http.StatusGatewayTimeout, NewLocationError(LocationTimeout).HTTPCode())
	assert.Equal(t, "LOCATION_PERMISSION_DENIED", NewLocationError(LocationPermissionDenied).ErrorCode())
}
