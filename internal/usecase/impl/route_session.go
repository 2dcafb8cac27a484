package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/domain/service"
	"wayfinder/internal/infra/metrics"

	"github.com/pkg/errors"
)

// routeHooks connects the route session to the owning session
type routeHooks struct {
	// tracking reports whether live tracking is running
	tracking func() bool
	// onRoute runs after a route was stored and rendered
	onRoute func(ctx context.Context, route *entity.RouteResult, recalculated bool)
	// onFailure runs after a computation failed for a reason other than cancellation
	onFailure func(ctx context.Context, err error)
	// onChange runs after every state transition
	onChange func(ctx context.Context)
}

// routeInputs is a consistent view of what the next computation uses
type routeInputs struct {
	origin           *entity.Coordinate
	destination      *entity.Coordinate
	profile          entity.Profile
	buffer           entity.BufferDistance
	bufferOverridden bool
	route            *entity.RouteResult
	lastRecalcAt     time.Time
}

// RouteSession holds the inputs of a navigation attempt and computes routes
// for them. Every computation takes a new generation; a computation started
// later cancels the earlier one and only the latest result is stored.
type RouteSession struct {
	ctx      context.Context
	provider *RouteProvider
	sink     service.NotificationSink
	renderer service.MapRenderer
	phase    *sessionPhase
	hooks    routeHooks
	logger   *slog.Logger
	now      func() time.Time
	wg       *sync.WaitGroup

	mu            sync.Mutex
	inputs        routeInputs
	generation    uint64
	cancelRunning context.CancelFunc
	recalculating bool
	retryOpen     bool
	failedGen     uint64
	tracking      *trackingContext
}

func newRouteSession(
	ctx context.Context,
	provider *RouteProvider,
	channel service.SessionChannel,
	profile entity.Profile,
	phase *sessionPhase,
	hooks routeHooks,
	wg *sync.WaitGroup,
	logger *slog.Logger,
) *RouteSession {
	return &RouteSession{
		ctx:      ctx,
		provider: provider,
		sink:     channel,
		renderer: channel,
		phase:    phase,
		hooks:    hooks,
		logger:   logger,
		now:      time.Now,
		wg:       wg,
		inputs: routeInputs{
			profile: profile,
			buffer:  profile.DefaultBuffer(),
		},
	}
}

// Inputs returns a copy of the current inputs
func (s *RouteSession) Inputs() routeInputs {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.inputs
}

// Tracking returns the tracking context, nil until the first route exists
func (s *RouteSession) Tracking() *trackingContext {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tracking
}

// ClearTracking drops the tracking context
func (s *RouteSession) ClearTracking() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tracking = nil
}

// SetDestination sets the immutable end point
func (s *RouteSession) SetDestination(destination entity.Coordinate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inputs.destination != nil {
		return domainerrors.ErrDestinationAlreadySet
	}
	s.inputs.destination = &destination

	return nil
}

// SetOrigin replaces the start point used by the next computation
func (s *RouteSession) SetOrigin(origin entity.Coordinate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inputs.origin = &origin
}

// SetProfile switches the travel mode and recomputes. The buffer follows the
// profile default unless the operator overrode it in this session.
func (s *RouteSession) SetProfile(ctx context.Context, profile entity.Profile) (*entity.RouteResult, error) {
	if !profile.IsValid() {
		return nil, domainerrors.ErrInvalidProfile
	}

	s.mu.Lock()
	s.inputs.profile = profile
	if !s.inputs.bufferOverridden {
		s.inputs.buffer = profile.DefaultBuffer()
	}
	ready := s.inputs.origin != nil && s.inputs.destination != nil
	s.mu.Unlock()

	if !ready {
		s.sink.Toast(ctx, service.ToastWarning, "Please set your location first")
		s.changed(ctx)

		return nil, domainerrors.ErrOriginNotSet
	}

	return s.Compute(ctx)
}

// SetBufferDistance overrides the deviation buffer until cleared
func (s *RouteSession) SetBufferDistance(ctx context.Context, buffer entity.BufferDistance) error {
	if !buffer.IsValid() {
		return domainerrors.ErrInvalidBufferDistance
	}

	s.mu.Lock()
	s.inputs.buffer = buffer
	s.inputs.bufferOverridden = true
	if s.tracking != nil {
		s.tracking.setBuffer(buffer)
	}
	s.mu.Unlock()

	s.changed(ctx)

	return nil
}

// ClearBufferOverride restores the profile default buffer
func (s *RouteSession) ClearBufferOverride(ctx context.Context) {
	s.mu.Lock()
	s.inputs.bufferOverridden = false
	s.inputs.buffer = s.inputs.profile.DefaultBuffer()
	if s.tracking != nil {
		s.tracking.setBuffer(s.inputs.buffer)
	}
	s.mu.Unlock()

	s.changed(ctx)
}

// Compute requests a route for the current inputs
func (s *RouteSession) Compute(ctx context.Context) (*entity.RouteResult, error) {
	return s.run(ctx, false)
}

// Recalculate computes a route from newOrigin to the destination with the
// current profile. A call made while another recalculation is pending is
// coalesced into it and returns ErrRecalculationInFlight.
func (s *RouteSession) Recalculate(ctx context.Context, newOrigin entity.Coordinate) (*entity.RouteResult, error) {
	s.mu.Lock()
	if s.recalculating {
		s.mu.Unlock()
		metrics.Recalculations.WithLabelValues("coalesced").Inc()

		return nil, domainerrors.ErrRecalculationInFlight
	}
	if s.inputs.destination == nil {
		s.mu.Unlock()

		return nil, domainerrors.ErrDestinationNotSet
	}
	s.recalculating = true
	s.inputs.origin = &newOrigin
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.recalculating = false
		s.mu.Unlock()
	}()

	s.sink.Toast(ctx, service.ToastInfo, "Recalculating route from current position...")

	route, err := s.run(ctx, true)
	switch {
	case err == nil:
		metrics.Recalculations.WithLabelValues("success").Inc()
	case errors.Is(err, domainerrors.ErrRouteSuperseded):
		metrics.Recalculations.WithLabelValues("superseded").Inc()
	default:
		metrics.Recalculations.WithLabelValues("failure").Inc()
	}

	return route, err
}

// Cancel aborts the running computation, if any
func (s *RouteSession) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	if s.cancelRunning != nil {
		s.cancelRunning()
		s.cancelRunning = nil
	}
}

func (s *RouteSession) run(ctx context.Context, recalculation bool) (*entity.RouteResult, error) {
	s.mu.Lock()
	if s.inputs.destination == nil {
		s.mu.Unlock()

		return nil, domainerrors.ErrDestinationNotSet
	}
	if s.inputs.origin == nil {
		s.mu.Unlock()

		return nil, domainerrors.ErrOriginNotSet
	}

	s.generation++
	gen := s.generation
	if s.cancelRunning != nil {
		s.cancelRunning()
	}
	runCtx, cancel := context.WithCancel(s.ctx)
	stop := context.AfterFunc(ctx, cancel)
	s.cancelRunning = cancel

	req := entity.RouteRequest{
		Origin:      *s.inputs.origin,
		Destination: *s.inputs.destination,
		Profile:     s.inputs.profile,
	}
	if recalculation {
		s.phase.set(entity.SessionRecalculating, nil)
	} else {
		s.phase.set(entity.SessionRouteComputing, nil)
	}
	s.mu.Unlock()

	defer stop()
	defer cancel()

	s.changed(ctx)

	route, err := s.provider.Compute(runCtx, req, s.sink)

	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		s.logger.Debug("Discarding superseded route result", slog.Uint64("generation", gen))

		return nil, domainerrors.ErrRouteSuperseded
	}
	s.cancelRunning = nil

	if err != nil {
		s.phase.set(entity.SessionError, err)
		s.failedGen = gen
		s.mu.Unlock()
		s.changed(ctx)

		if runCtx.Err() != nil {
			return nil, errors.Wrap(err, "route computation cancelled")
		}

		s.hooks.failed(ctx, err)
		s.offerRetry(ctx, err)

		return nil, err
	}

	route.ComputedAt = s.now()
	s.inputs.route = route
	var recalculatedAt time.Time
	if recalculation {
		recalculatedAt = route.ComputedAt
		s.inputs.lastRecalcAt = recalculatedAt
	}
	if s.tracking == nil {
		s.tracking = newTrackingContext(route, req.Origin, req.Destination, req.Profile, s.inputs.buffer)
	} else {
		s.tracking.setRoute(route, req.Profile, s.inputs.buffer, recalculatedAt)
	}
	if s.hooks.isTracking() {
		s.phase.set(entity.SessionTracking, nil)
	} else {
		s.phase.set(entity.SessionRouteReady, nil)
	}
	s.mu.Unlock()

	s.logger.Info("Route ready",
		slog.String("provider", string(route.ProviderUsed)),
		slog.String("profile", route.Profile.String()),
		slog.Float64("distance_m", route.DistanceMeters),
		slog.Bool("recalculated", recalculation),
	)

	s.renderer.RenderRoute(ctx, route)
	s.sink.Toast(ctx, service.ToastSuccess, capitalize(req.Profile.Label())+" route calculated!")
	s.changed(ctx)
	if s.hooks.onRoute != nil {
		s.hooks.onRoute(ctx, route, recalculation)
	}

	return route, nil
}

// offerRetry shows the blocking retry dialog on its own goroutine. At most one
// is open; failures while it is shown become warning toasts. Confirming
// recomputes with the inputs current at that time, as long as the latest
// computation is the one that failed.
func (s *RouteSession) offerRetry(ctx context.Context, cause error) {
	if s.ctx.Err() != nil {
		return
	}

	s.mu.Lock()
	alreadyOpen := s.retryOpen
	s.retryOpen = true
	s.mu.Unlock()

	if alreadyOpen {
		s.sink.Toast(ctx, service.ToastWarning, retryMessage(cause))

		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		confirmed := s.sink.Confirm(s.ctx, service.ConfirmOptions{
			Title:       "Route Calculation Failed",
			Message:     retryMessage(cause),
			ConfirmText: "Try Again",
			CancelText:  "Cancel",
			Icon:        "danger",
		})

		s.mu.Lock()
		s.retryOpen = false
		latestFailed := s.failedGen == s.generation
		s.mu.Unlock()
		if !confirmed || !latestFailed {
			return
		}

		if _, err := s.Compute(s.ctx); err != nil {
			s.logger.Warn("Route retry failed", slog.Any("error", err))
		}
	}()
}

func (s *RouteSession) changed(ctx context.Context) {
	if s.hooks.onChange != nil {
		s.hooks.onChange(ctx)
	}
}

func (h routeHooks) isTracking() bool {
	return h.tracking != nil && h.tracking()
}

func (h routeHooks) failed(ctx context.Context, err error) {
	if h.onFailure != nil {
		h.onFailure(ctx, err)
	}
}

func retryMessage(err error) string {
	var routingErr *domainerrors.RoutingError
	if errors.As(err, &routingErr) {
		switch routingErr.Kind {
		case domainerrors.RoutingNoRouteFound, domainerrors.RoutingInvalidParams:
			return "No route found between these locations. They might be too far apart or inaccessible."
		case domainerrors.RoutingRateLimited:
			return "Too many routing requests. Please wait a moment."
		}
	}

	return "Could not calculate a route."
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
