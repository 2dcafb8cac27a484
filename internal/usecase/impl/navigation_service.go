package impl

import (
	"context"
	"log/slog"
	"sync"

	"wayfinder/config"
	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/domain/service"
	"wayfinder/internal/infra/metrics"
	"wayfinder/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type navigationService struct {
	deps     sessionDeps
	channels service.SessionChannelFactory
	sources  service.PositionSourceFactory
	logger   *slog.Logger

	mu       sync.RWMutex
	sessions map[uuid.UUID]*NavigationSession
}

// NavigationServiceParams holds dependencies for NavigationService, injected by Fx.
type NavigationServiceParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Primary   service.RouteBackend `name:"primaryRouteBackend"`
	Fallback  service.RouteBackend `name:"fallbackRouteBackend"`
	Channels  service.SessionChannelFactory
	Sources   service.PositionSourceFactory
	Publisher service.EventPublisher `optional:"true"`
}

// NewNavigationService creates a new navigation service instance
func NewNavigationService(params NavigationServiceParams) usecase.NavigationUsecase {
	navCfg := &config.NavigationConfig{}
	if params.Config != nil && params.Config.Navigation != nil {
		navCfg = params.Config.Navigation
	}

	return &navigationService{
		deps: sessionDeps{
			provider:  NewRouteProvider(params.Primary, params.Fallback, params.Logger),
			publisher: params.Publisher,
			cfg:       navCfg,
			logger:    params.Logger,
		},
		channels: params.Channels,
		sources:  params.Sources,
		logger:   params.Logger,
		sessions: make(map[uuid.UUID]*NavigationSession),
	}
}

// CreateSession opens a session. With a destination, acquisition starts at once.
func (s *navigationService) CreateSession(ctx context.Context, input *usecase.CreateSessionInput) (*entity.SessionSnapshot, error) {
	profile := entity.ProfileDriving
	var destination *entity.Coordinate
	if input != nil {
		if input.Profile != "" {
			if !input.Profile.IsValid() {
				return nil, domainerrors.ErrInvalidProfile
			}
			profile = input.Profile
		}
		if input.Destination != nil {
			if !input.Destination.IsValid() {
				return nil, domainerrors.ErrInvalidCoordinate
			}
			d := *input.Destination
			destination = &d
		}
	}

	id := uuid.New()
	channel := s.channels.Open(id.String())
	session := newNavigationSession(id, destination, profile, channel, s.sources.NewSource(id.String()), s.deps)

	s.mu.Lock()
	s.sessions[id] = session
	s.mu.Unlock()
	metrics.ActiveSessions.Inc()

	s.logger.Info("Navigation session created",
		slog.String("session_id", id.String()),
		slog.String("profile", profile.String()),
		slog.Bool("awaiting_destination", destination == nil),
	)

	session.Begin(ctx)

	return session.Snapshot(), nil
}

// GetSession returns the current snapshot of a session
func (s *navigationService) GetSession(_ context.Context, sessionID uuid.UUID) (*entity.SessionSnapshot, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	return session.Snapshot(), nil
}

// CloseSession ends a session and releases everything it holds
func (s *navigationService) CloseSession(ctx context.Context, sessionID uuid.UUID) error {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	if !ok {
		return domainerrors.ErrSessionNotFound
	}

	session.Close(ctx)
	metrics.ActiveSessions.Dec()

	return nil
}

// MapClick relays a map click to the session
func (s *navigationService) MapClick(ctx context.Context, sessionID uuid.UUID, at entity.Coordinate) (*entity.SessionSnapshot, error) {
	return s.apply(sessionID, func(session *NavigationSession) error {
		return session.MapClick(ctx, at)
	})
}

// StartAcquisition starts or retries start point acquisition
func (s *navigationService) StartAcquisition(ctx context.Context, sessionID uuid.UUID) (*entity.SessionSnapshot, error) {
	return s.apply(sessionID, func(session *NavigationSession) error {
		return session.StartAcquisition(ctx)
	})
}

// UseManualLocation switches to a manual start point pick
func (s *navigationService) UseManualLocation(ctx context.Context, sessionID uuid.UUID) (*entity.SessionSnapshot, error) {
	return s.apply(sessionID, func(session *NavigationSession) error {
		return session.UseManualLocation(ctx)
	})
}

// CancelAcquisition stops start point acquisition
func (s *navigationService) CancelAcquisition(ctx context.Context, sessionID uuid.UUID) (*entity.SessionSnapshot, error) {
	return s.apply(sessionID, func(session *NavigationSession) error {
		return session.CancelAcquisition(ctx)
	})
}

// ReportPosition feeds a device sample
func (s *navigationService) ReportPosition(ctx context.Context, sessionID uuid.UUID, sample entity.PositionSample) error {
	session, err := s.session(sessionID)
	if err != nil {
		return err
	}

	return session.ReportPosition(ctx, sample)
}

// ReportPositionError feeds a device sensor failure
func (s *navigationService) ReportPositionError(ctx context.Context, sessionID uuid.UUID, kind domainerrors.LocationErrorKind) error {
	session, err := s.session(sessionID)
	if err != nil {
		return err
	}

	return session.ReportPositionError(ctx, kind)
}

// ReportSensorUnsupported marks the session's device as having no sensor
func (s *navigationService) ReportSensorUnsupported(ctx context.Context, sessionID uuid.UUID) error {
	session, err := s.session(sessionID)
	if err != nil {
		return err
	}

	return session.ReportSensorUnsupported(ctx)
}

// SetProfile switches the travel mode
func (s *navigationService) SetProfile(ctx context.Context, sessionID uuid.UUID, profile entity.Profile) (*entity.SessionSnapshot, error) {
	return s.apply(sessionID, func(session *NavigationSession) error {
		return session.SetProfile(ctx, profile)
	})
}

// SetBufferDistance overrides the deviation buffer
func (s *navigationService) SetBufferDistance(ctx context.Context, sessionID uuid.UUID, buffer entity.BufferDistance) (*entity.SessionSnapshot, error) {
	return s.apply(sessionID, func(session *NavigationSession) error {
		return session.SetBufferDistance(ctx, buffer)
	})
}

// ClearBufferOverride restores the profile default buffer
func (s *navigationService) ClearBufferOverride(ctx context.Context, sessionID uuid.UUID) (*entity.SessionSnapshot, error) {
	return s.apply(sessionID, func(session *NavigationSession) error {
		return session.ClearBufferOverride(ctx)
	})
}

// Recalculate recomputes the route from the current position
func (s *navigationService) Recalculate(ctx context.Context, sessionID uuid.UUID) (*entity.SessionSnapshot, error) {
	return s.apply(sessionID, func(session *NavigationSession) error {
		return session.Recalculate(ctx)
	})
}

// StopTracking stops live tracking
func (s *navigationService) StopTracking(ctx context.Context, sessionID uuid.UUID) (*entity.SessionSnapshot, error) {
	return s.apply(sessionID, func(session *NavigationSession) error {
		return session.StopTracking(ctx)
	})
}

// SetPushToken registers the device push token
func (s *navigationService) SetPushToken(_ context.Context, sessionID uuid.UUID, token string) error {
	session, err := s.session(sessionID)
	if err != nil {
		return err
	}

	return session.SetPushToken(token)
}

// Close ends every open session
func (s *navigationService) Close() {
	s.mu.Lock()
	sessions := make([]*NavigationSession, 0, len(s.sessions))
	for id, session := range s.sessions {
		sessions = append(sessions, session)
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	ctx := context.Background()
	for _, session := range sessions {
		session.Close(ctx)
		metrics.ActiveSessions.Dec()
	}
}

func (s *navigationService) session(sessionID uuid.UUID) (*NavigationSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, domainerrors.ErrSessionNotFound
	}

	return session, nil
}

// apply runs fn on the session and returns the snapshot taken afterwards
func (s *navigationService) apply(sessionID uuid.UUID, fn func(session *NavigationSession) error) (*entity.SessionSnapshot, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	if err := fn(session); err != nil {
		return nil, err
	}

	return session.Snapshot(), nil
}
