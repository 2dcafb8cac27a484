package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"wayfinder/config"
	"wayfinder/internal/domain/constants"
	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sessionDeps are the collaborators shared by every session
type sessionDeps struct {
	provider  *RouteProvider
	publisher service.EventPublisher
	cfg       *config.NavigationConfig
	logger    *slog.Logger
}

// NavigationSession is the single owner of one navigation attempt. It wires
// the acquisition controller, the route session and the live tracker together
// and relays their state to the device channel.
type NavigationSession struct {
	id        uuid.UUID
	ctx       context.Context
	cancel    context.CancelFunc
	channel   service.SessionChannel
	source    service.PositionSource
	publisher service.EventPublisher
	logger    *slog.Logger

	phase       *sessionPhase
	acquisition *AcquisitionController
	route       *RouteSession
	tracker     *LiveTracker

	// work tracks dialog and retry goroutines
	work sync.WaitGroup

	mu                  sync.Mutex
	awaitingDestination bool
	closed              bool
}

func newNavigationSession(
	id uuid.UUID,
	destination *entity.Coordinate,
	profile entity.Profile,
	channel service.SessionChannel,
	source service.PositionSource,
	deps sessionDeps,
) *NavigationSession {
	ctx, cancel := context.WithCancel(context.Background())
	logger := deps.logger.With(slog.String("session_id", id.String()))

	s := &NavigationSession{
		id:                  id,
		ctx:                 ctx,
		cancel:              cancel,
		channel:             channel,
		source:              source,
		publisher:           deps.publisher,
		logger:              logger,
		phase:               newSessionPhase(),
		awaitingDestination: destination == nil,
	}

	s.route = newRouteSession(ctx, deps.provider, channel, profile, s.phase, routeHooks{
		tracking:  func() bool { return s.tracker.Running() },
		onRoute:   s.onRoute,
		onFailure: s.onRouteFailure,
		onChange:  s.pushState,
	}, &s.work, logger)

	s.acquisition = newAcquisitionController(ctx, source, channel, deps.cfg.Acquisition, s.phase, acquisitionHooks{
		onOrigin: s.onOrigin,
		onChange: s.pushState,
	}, &s.work, logger)

	s.tracker = newLiveTracker(ctx, source, channel, deps.cfg.Tracking, trackerHooks{
		recalculate: func(ctx context.Context, origin entity.Coordinate) error {
			_, err := s.route.Recalculate(ctx, origin)

			return err
		},
		onLocationError: s.acquisition.ReportLocationError,
		onOffRoute:      s.onOffRoute,
		onChange:        s.onTrackingChange,
	}, logger)

	if destination != nil {
		_ = s.route.SetDestination(*destination)
	}

	return s
}

// ID returns the session identifier
func (s *NavigationSession) ID() uuid.UUID {
	return s.id
}

// Begin shows the destination and starts acquisition, or asks for a
// destination click when none was given.
func (s *NavigationSession) Begin(ctx context.Context) {
	destination := s.route.Inputs().destination
	if destination == nil {
		s.channel.Toast(ctx, service.ToastInfo, "Click anywhere on the map to set your destination")
		s.pushState(ctx)

		return
	}

	s.channel.ShowDestination(ctx, *destination)
	if err := s.acquisition.Start(ctx); err != nil {
		s.logger.Warn("Failed to start acquisition", slog.Any("error", err))
	}
}

// Snapshot returns a read-only view of the session
func (s *NavigationSession) Snapshot() *entity.SessionSnapshot {
	inputs := s.route.Inputs()
	state, lastErr := s.phase.get()
	tracking := s.tracker.Running()

	s.mu.Lock()
	awaiting := s.awaitingDestination
	s.mu.Unlock()

	snapshot := &entity.SessionSnapshot{
		ID:                  s.id,
		State:               state,
		AcquisitionState:    s.acquisition.State(),
		AwaitingDestination: awaiting,
		Destination:         inputs.destination,
		Origin:              inputs.origin,
		Profile:             inputs.profile,
		BufferDistance:      inputs.buffer,
		BufferOverridden:    inputs.bufferOverridden,
		Route:               inputs.route,
		Tracking:            tracking,
		LastError:           lastErr,
	}

	if tc := s.route.Tracking(); tc != nil && tracking {
		origin := tc.Snapshot().CurrentOrigin
		snapshot.Origin = &origin
	}
	if !inputs.lastRecalcAt.IsZero() {
		at := inputs.lastRecalcAt
		snapshot.LastRecalculationAt = &at
	}

	return snapshot
}

// MapClick sets the destination while awaiting one, else the manual origin
func (s *NavigationSession) MapClick(ctx context.Context, at entity.Coordinate) error {
	if !at.IsValid() {
		return domainerrors.ErrInvalidCoordinate
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return domainerrors.ErrSessionClosed
	}
	awaiting := s.awaitingDestination
	s.awaitingDestination = false
	s.mu.Unlock()

	if !awaiting {
		return s.acquisition.MapClick(ctx, at)
	}

	if err := s.route.SetDestination(at); err != nil {
		return err
	}
	s.logger.Info("Destination picked on map", slog.Float64("lat", at.Lat), slog.Float64("lng", at.Lng))
	s.channel.ShowDestination(ctx, at)

	return s.acquisition.Start(ctx)
}

// StartAcquisition starts, or restarts, start point acquisition
func (s *NavigationSession) StartAcquisition(ctx context.Context) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}
	if s.route.Inputs().destination == nil {
		return domainerrors.ErrDestinationNotSet
	}

	return s.acquisition.Start(ctx)
}

// UseManualLocation switches acquisition to a manual map pick
func (s *NavigationSession) UseManualLocation(ctx context.Context) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}
	s.acquisition.UseManualLocation(ctx)

	return nil
}

// CancelAcquisition stops acquisition and returns it to idle
func (s *NavigationSession) CancelAcquisition(ctx context.Context) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}
	s.acquisition.Cancel(ctx)

	return nil
}

// ReportPosition feeds a device sample to the session's position source
func (s *NavigationSession) ReportPosition(_ context.Context, sample entity.PositionSample) error {
	feed, err := s.feed()
	if err != nil {
		return err
	}
	if !sample.Coordinate.IsValid() {
		return domainerrors.ErrInvalidCoordinate
	}
	if sample.CapturedAt.IsZero() {
		sample.CapturedAt = time.Now()
	}
	feed.Publish(sample)

	return nil
}

// ReportPositionError feeds a device sensor failure to the position source
func (s *NavigationSession) ReportPositionError(_ context.Context, kind domainerrors.LocationErrorKind) error {
	feed, err := s.feed()
	if err != nil {
		return err
	}
	feed.Fail(domainerrors.NewLocationError(kind))

	return nil
}

// ReportSensorUnsupported marks the device as having no location sensor. A
// running acquisition is restarted so that it fails visibly.
func (s *NavigationSession) ReportSensorUnsupported(ctx context.Context) error {
	feed, err := s.feed()
	if err != nil {
		return err
	}
	feed.SetSupported(false)

	if s.acquisition.State() == entity.AcquisitionRequesting {
		if err := s.acquisition.Start(ctx); err != nil {
			s.logger.Info("Acquisition stopped, sensor unsupported")
		}
	}

	return nil
}

// SetProfile switches the travel mode and recomputes the route
func (s *NavigationSession) SetProfile(ctx context.Context, profile entity.Profile) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	return ignoreSuperseded(s.route.SetProfile(ctx, profile))
}

// SetBufferDistance overrides the deviation buffer
func (s *NavigationSession) SetBufferDistance(ctx context.Context, buffer entity.BufferDistance) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	return s.route.SetBufferDistance(ctx, buffer)
}

// ClearBufferOverride restores the profile default buffer
func (s *NavigationSession) ClearBufferOverride(ctx context.Context) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}
	s.route.ClearBufferOverride(ctx)

	return nil
}

// Recalculate recomputes from the tracked position, or from the origin when
// not tracking
func (s *NavigationSession) Recalculate(ctx context.Context) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	var origin *entity.Coordinate
	if tc := s.route.Tracking(); tc != nil && s.tracker.Running() {
		current := tc.Snapshot().CurrentOrigin
		origin = &current
	} else {
		origin = s.route.Inputs().origin
	}
	if origin == nil {
		return domainerrors.ErrOriginNotSet
	}

	return ignoreSuperseded(s.route.Recalculate(ctx, *origin))
}

// StopTracking stops live tracking and drops the tracking context
func (s *NavigationSession) StopTracking(ctx context.Context) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}
	s.tracker.Stop(ctx)
	s.route.ClearTracking()

	return nil
}

// SetPushToken registers the device push token for toasts sent while detached
func (s *NavigationSession) SetPushToken(token string) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}
	s.channel.SetPushToken(token)

	return nil
}

// Close releases every subscription, timer and pending dialog. It is idempotent.
func (s *NavigationSession) Close(ctx context.Context) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return
	}
	s.closed = true
	s.mu.Unlock()

	s.acquisition.Cancel(ctx)
	s.tracker.Stop(ctx)
	s.cancel()
	s.route.Cancel()
	s.route.ClearTracking()

	s.work.Wait()
	s.channel.Close()

	s.logger.Info("Navigation session closed")
}

// onOrigin computes the first route, detached from the caller's context. Only
// closing the session cancels it.
func (s *NavigationSession) onOrigin(ctx context.Context, origin entity.Coordinate, source entity.OriginSource) {
	ctx = context.WithoutCancel(ctx)
	s.route.SetOrigin(origin)
	s.channel.MovePositionMarker(ctx, origin)

	if _, err := s.route.Compute(ctx); err != nil && !errors.Is(err, domainerrors.ErrRouteSuperseded) {
		s.logger.Warn("Route computation failed", slog.String("origin_source", string(source)), slog.Any("error", err))
	}
}

// onRoute publishes the route and starts live tracking after a fresh
// computation. A recalculation never restarts a tracker that was stopped.
func (s *NavigationSession) onRoute(ctx context.Context, route *entity.RouteResult, recalculated bool) {
	inputs := s.route.Inputs()
	eventType := constants.EventRouteComputed
	if recalculated {
		eventType = constants.EventRouteRecalculated
	}
	s.publish(eventType, func(event *service.NavigationEvent) {
		event.Profile = route.Profile
		event.Provider = route.ProviderUsed
		event.Origin = inputs.origin
		event.Destination = inputs.destination
		event.DistanceMeters = route.DistanceMeters
		event.DurationSeconds = route.DurationSeconds
	})

	if recalculated || s.isClosed() {
		return
	}

	if _, err := s.tracker.Start(ctx, s.route.Tracking()); err != nil {
		s.logger.Warn("Failed to start live tracking", slog.Any("error", err))
	}
}

func (s *NavigationSession) onRouteFailure(_ context.Context, err error) {
	inputs := s.route.Inputs()
	s.publish(constants.EventRouteFailed, func(event *service.NavigationEvent) {
		event.Profile = inputs.profile
		event.Origin = inputs.origin
		event.Destination = inputs.destination
		event.Error = err.Error()
	})
}

func (s *NavigationSession) onOffRoute(_ context.Context, origin entity.Coordinate, deviation float64) {
	inputs := s.route.Inputs()
	s.publish(constants.EventOffRoute, func(event *service.NavigationEvent) {
		event.Profile = inputs.profile
		event.Origin = &origin
		event.Destination = inputs.destination
		event.DeviationMeters = deviation
	})
}

func (s *NavigationSession) onTrackingChange(ctx context.Context, running bool) {
	eventType := constants.EventTrackingStopped
	if running {
		eventType = constants.EventTrackingStarted
		s.phase.set(entity.SessionTracking, nil)
	} else if state, _ := s.phase.get(); state == entity.SessionTracking || state == entity.SessionRecalculating || state == entity.SessionError {
		if s.route.Inputs().route != nil {
			s.phase.set(entity.SessionRouteReady, nil)
		}
	}

	inputs := s.route.Inputs()
	s.publish(eventType, func(event *service.NavigationEvent) {
		event.Profile = inputs.profile
		event.Destination = inputs.destination
	})
	s.pushState(ctx)
}

func (s *NavigationSession) pushState(ctx context.Context) {
	s.channel.PushState(ctx, *s.Snapshot())
}

// publish hands a lifecycle event to the publisher, which queues it
func (s *NavigationSession) publish(eventType string, fill func(event *service.NavigationEvent)) {
	if s.publisher == nil {
		return
	}

	event := &service.NavigationEvent{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		SessionID:  s.id.String(),
		OccurredAt: time.Now().UTC(),
	}
	fill(event)

	if err := s.publisher.PublishNavigationEvent(context.WithoutCancel(s.ctx), event); err != nil {
		s.logger.Warn("Failed to publish navigation event",
			slog.String("event_type", eventType),
			slog.Any("error", err),
		)
	}
}

func (s *NavigationSession) feed() (service.PositionFeed, error) {
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}

	feed, ok := s.source.(service.PositionFeed)
	if !ok {
		return nil, domainerrors.ErrSensorUnsupported.WithDetails("this session does not accept device reports")
	}

	return feed, nil
}

func (s *NavigationSession) ensureOpen() error {
	if s.isClosed() {
		return domainerrors.ErrSessionClosed
	}

	return nil
}

func (s *NavigationSession) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closed
}

func ignoreSuperseded(_ *entity.RouteResult, err error) error {
	if errors.Is(err, domainerrors.ErrRouteSuperseded) {
		return nil
	}

	return err
}

// userMessage returns the text shown to the user for err
func userMessage(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return err.Error()
}
