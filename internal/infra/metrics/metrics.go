// Package metrics registers the Prometheus collectors of the navigation engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RouteRequests counts route computations per backend and outcome ("success", "failure", "rejected")
	RouteRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfinder_route_requests_total",
			Help: "Total number of routing backend requests",
		},
		[]string{"backend", "outcome"},
	)

	RouteRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wayfinder_route_request_duration_seconds",
			Help:    "Duration of routing backend requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend"},
	)

	RouteErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfinder_route_errors_total",
			Help: "Routing failures by backend and classification",
		},
		[]string{"backend", "kind"},
	)

	RouteFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wayfinder_route_fallbacks_total",
			Help: "Route computations served by the fallback backend",
		},
	)

	Recalculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfinder_recalculations_total",
			Help: "Route recalculations by outcome (started, coalesced, stale)",
		},
		[]string{"outcome"},
	)

	OffRouteDetections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wayfinder_off_route_total",
			Help: "Number of times a tracked position left the route buffer",
		},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wayfinder_active_sessions",
			Help: "Current number of open navigation sessions",
		},
	)

	WebSocketConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wayfinder_websocket_connections",
			Help: "Current number of attached device websockets",
		},
	)

	// Circuit breaker metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "wayfinder_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfinder_circuit_breaker_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	// NavigationEvents counts lifecycle events per outcome ("published", "failed", "dropped")
	NavigationEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfinder_navigation_events_total",
			Help: "Navigation lifecycle events handed to the event publisher",
		},
		[]string{"event_type", "outcome"},
	)
)
