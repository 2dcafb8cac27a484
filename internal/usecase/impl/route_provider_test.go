package impl

import (
	"context"
	"net/http"
	"testing"

	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/domain/service"
	mockService "wayfinder/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestBackends(t *testing.T) (*mockService.MockRouteBackend, *mockService.MockRouteBackend) {
	primary := mockService.NewMockRouteBackend(t)
	primary.EXPECT().Name().Return("primary").Maybe()
	fallback := mockService.NewMockRouteBackend(t)
	fallback.EXPECT().Name().Return("fallback").Maybe()

	return primary, fallback
}

func TestRouteProvider_PrimarySuccess(t *testing.T) {
	primary, fallback := newTestBackends(t)
	provider := NewRouteProvider(primary, fallback, discardLogger())
	sink := newFakeChannel()

	req := entity.RouteRequest{Origin: campusGate, Destination: campusLibrary, Profile: entity.ProfileDriving}
	primary.EXPECT().Route(mock.Anything, req).Return(testRoute(entity.ProviderPrimary, entity.ProfileDriving), nil).Once()

	route, err := provider.Compute(context.Background(), req, sink)
	require.NoError(t, err)

	assert.Equal(t, entity.ProviderPrimary, route.ProviderUsed)
	assert.True(t, sink.hasToast(service.ToastInfo, "Calculating vehicle route..."))
	fallback.AssertNotCalled(t, "Route", mock.Anything, mock.Anything)
}

func TestRouteProvider_RateLimitedPrimaryFallsBack(t *testing.T) {
	primary, fallback := newTestBackends(t)
	provider := NewRouteProvider(primary, fallback, discardLogger())
	sink := newFakeChannel()

	req := entity.RouteRequest{Origin: campusGate, Destination: campusLibrary, Profile: entity.ProfileWalking}
	rateLimited := domainerrors.NewRoutingError(domainerrors.ClassifyStatus(http.StatusTooManyRequests), "primary", "status 429", nil)
	primary.EXPECT().Route(mock.Anything, req).Return(nil, rateLimited).Once()
	fallback.EXPECT().Route(mock.Anything, req).Return(testRoute(entity.ProviderFallback, entity.ProfileWalking), nil).Once()

	route, err := provider.Compute(context.Background(), req, sink)
	require.NoError(t, err)

	assert.Equal(t, entity.ProviderFallback, route.ProviderUsed)
	assert.Empty(t, route.Instructions)
	assert.True(t, sink.hasToast(service.ToastInfo, "Calculating walking route..."))
	assert.True(t, sink.hasToast(service.ToastWarning, "Too many routing requests. Please wait a moment before trying again."))
}

func TestRouteProvider_FallbackFailurePropagates(t *testing.T) {
	primary, fallback := newTestBackends(t)
	provider := NewRouteProvider(primary, fallback, discardLogger())

	req := entity.RouteRequest{Origin: campusGate, Destination: campusLibrary, Profile: entity.ProfileDriving}
	primary.EXPECT().Route(mock.Anything, req).
		Return(nil, domainerrors.NewRoutingError(domainerrors.RoutingServiceUnavailable, "primary", "status 503", nil)).Once()
	fallback.EXPECT().Route(mock.Anything, req).
		Return(nil, domainerrors.NewRoutingError(domainerrors.RoutingNoRouteFound, "fallback", "NoRoute", nil)).Once()

	route, err := provider.Compute(context.Background(), req, newFakeChannel())
	assert.Nil(t, route)

	var routingErr *domainerrors.RoutingError
	require.True(t, errors.As(err, &routingErr))
	assert.Equal(t, domainerrors.RoutingNoRouteFound, routingErr.Kind)
}

func TestRouteProvider_InvalidRequestMakesNoCall(t *testing.T) {
	primary, fallback := newTestBackends(t)
	provider := NewRouteProvider(primary, fallback, discardLogger())

	req := entity.RouteRequest{Origin: entity.Coordinate{Lat: 123, Lng: 0}, Destination: campusLibrary, Profile: entity.ProfileDriving}
	_, err := provider.Compute(context.Background(), req, newFakeChannel())

	var routingErr *domainerrors.RoutingError
	require.True(t, errors.As(err, &routingErr))
	assert.Equal(t, domainerrors.RoutingInvalidParams, routingErr.Kind)
}

func TestRouteProvider_InvalidPrimaryResultFallsBack(t *testing.T) {
	primary, fallback := newTestBackends(t)
	provider := NewRouteProvider(primary, fallback, discardLogger())

	req := entity.RouteRequest{Origin: campusGate, Destination: campusLibrary, Profile: entity.ProfileDriving}
	broken := &entity.RouteResult{Geometry: []entity.Coordinate{campusGate}, ProviderUsed: entity.ProviderPrimary}
	primary.EXPECT().Route(mock.Anything, req).Return(broken, nil).Once()
	fallback.EXPECT().Route(mock.Anything, req).Return(testRoute(entity.ProviderFallback, entity.ProfileDriving), nil).Once()

	route, err := provider.Compute(context.Background(), req, newFakeChannel())
	require.NoError(t, err)
	assert.Equal(t, entity.ProviderFallback, route.ProviderUsed)
}

func TestRouteProvider_PanickingBackendIsClassified(t *testing.T) {
	primary, fallback := newTestBackends(t)
	provider := NewRouteProvider(primary, fallback, discardLogger())

	req := entity.RouteRequest{Origin: campusGate, Destination: campusLibrary, Profile: entity.ProfileDriving}
	primary.EXPECT().Route(mock.Anything, req).RunAndReturn(func(context.Context, entity.RouteRequest) (*entity.RouteResult, error) {
		panic("decoder exploded")
	}).Once()
	fallback.EXPECT().Route(mock.Anything, req).
		Return(nil, domainerrors.NewRoutingError(domainerrors.RoutingNetworkError, "fallback", "dial tcp", nil)).Once()

	assert.NotPanics(t, func() {
		_, err := provider.Compute(context.Background(), req, newFakeChannel())

		var routingErr *domainerrors.RoutingError
		require.True(t, errors.As(err, &routingErr))
		assert.Equal(t, domainerrors.RoutingNetworkError, routingErr.Kind)
	})
}

func TestRouteProvider_CancelledContextSkipsFallback(t *testing.T) {
	primary, fallback := newTestBackends(t)
	provider := NewRouteProvider(primary, fallback, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	req := entity.RouteRequest{Origin: campusGate, Destination: campusLibrary, Profile: entity.ProfileDriving}
	primary.EXPECT().Route(mock.Anything, req).RunAndReturn(func(context.Context, entity.RouteRequest) (*entity.RouteResult, error) {
		cancel()

		return nil, domainerrors.NewRoutingError(domainerrors.RoutingNetworkError, "primary", "context canceled", context.Canceled)
	}).Once()

	_, err := provider.Compute(ctx, req, newFakeChannel())
	assert.ErrorIs(t, err, context.Canceled)
}
