package service

import (
	"context"

	"wayfinder/internal/domain/entity"
)

// RouteBackend is one HTTP routing service
type RouteBackend interface {
	// Name identifies the backend in logs and metrics
	Name() string

	// Route computes a route. Failures are returned as *errors.RoutingError.
	Route(ctx context.Context, req entity.RouteRequest) (*entity.RouteResult, error)
}
