package impl

import (
	"context"
	"fmt"
	"log/slog"

	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/domain/service"
	"wayfinder/internal/infra/metrics"

	"github.com/pkg/errors"
)

// RouteProvider computes routes on the primary backend and retries any
// primary failure on the fallback backend.
type RouteProvider struct {
	primary  service.RouteBackend
	fallback service.RouteBackend
	logger   *slog.Logger
}

// NewRouteProvider creates a route provider
func NewRouteProvider(primary, fallback service.RouteBackend, logger *slog.Logger) *RouteProvider {
	return &RouteProvider{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// Compute returns a valid route or a *errors.RoutingError. Progress and the
// reason for falling back are reported on sink.
func (p *RouteProvider) Compute(ctx context.Context, req entity.RouteRequest, sink service.NotificationSink) (*entity.RouteResult, error) {
	sink.Toast(ctx, service.ToastInfo, fmt.Sprintf("Calculating %s route...", req.Profile.Label()))

	if !req.IsValid() {
		return nil, domainerrors.NewRoutingError(domainerrors.RoutingInvalidParams, "", "origin, destination or profile is invalid", nil)
	}

	result, err := p.attempt(ctx, p.primary, req)
	if err == nil {
		return result, nil
	}

	routingErr := asRoutingError(err, p.primary.Name())
	metrics.RouteErrors.WithLabelValues(p.primary.Name(), string(routingErr.Kind)).Inc()

	if ctx.Err() != nil {
		return nil, errors.Wrap(ctx.Err(), "route request cancelled")
	}

	p.logger.Warn("Primary routing failed, falling back",
		slog.String("kind", string(routingErr.Kind)),
		slog.String("profile", req.Profile.String()),
		slog.Any("error", err),
	)
	sink.Toast(ctx, service.ToastWarning, routingErr.Message())
	metrics.RouteFallbacks.Inc()

	result, err = p.attempt(ctx, p.fallback, req)
	if err != nil {
		fallbackErr := asRoutingError(err, p.fallback.Name())
		metrics.RouteErrors.WithLabelValues(p.fallback.Name(), string(fallbackErr.Kind)).Inc()
		if ctx.Err() != nil {
			return nil, errors.Wrap(ctx.Err(), "route request cancelled")
		}

		p.logger.Error("Fallback routing failed",
			slog.String("kind", string(fallbackErr.Kind)),
			slog.Any("error", err),
		)

		return nil, fallbackErr
	}

	return result, nil
}

func (p *RouteProvider) attempt(ctx context.Context, backend service.RouteBackend, req entity.RouteRequest) (result *entity.RouteResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = domainerrors.NewRoutingError(domainerrors.RoutingServiceError, backend.Name(), fmt.Sprintf("backend panic: %v", r), nil)
		}
	}()

	result, err = backend.Route(ctx, req)
	if err != nil {
		return nil, err
	}

	if !result.IsValid() {
		return nil, domainerrors.NewRoutingError(domainerrors.RoutingServiceError, backend.Name(), "route violates geometry or totals invariants", nil)
	}

	return result, nil
}

func asRoutingError(err error, provider string) *domainerrors.RoutingError {
	var routingErr *domainerrors.RoutingError
	if errors.As(err, &routingErr) {
		return routingErr
	}

	return domainerrors.NewRoutingError(domainerrors.RoutingGeneric, provider, err.Error(), err)
}
