// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"

	"github.com/google/uuid"
)

// NavigationUsecase defines the operations of a navigation attempt, from
// acquiring the start point to live re-routing.
type NavigationUsecase interface {
	CreateSession(ctx context.Context, input *CreateSessionInput) (*entity.SessionSnapshot, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (*entity.SessionSnapshot, error)
	CloseSession(ctx context.Context, sessionID uuid.UUID) error

	// MapClick sets the destination while the session waits for one, or the
	// origin once a manual pick was requested.
	MapClick(ctx context.Context, sessionID uuid.UUID, at entity.Coordinate) (*entity.SessionSnapshot, error)

	StartAcquisition(ctx context.Context, sessionID uuid.UUID) (*entity.SessionSnapshot, error)
	UseManualLocation(ctx context.Context, sessionID uuid.UUID) (*entity.SessionSnapshot, error)
	CancelAcquisition(ctx context.Context, sessionID uuid.UUID) (*entity.SessionSnapshot, error)

	ReportPosition(ctx context.Context, sessionID uuid.UUID, sample entity.PositionSample) error
	ReportPositionError(ctx context.Context, sessionID uuid.UUID, kind domainerrors.LocationErrorKind) error
	ReportSensorUnsupported(ctx context.Context, sessionID uuid.UUID) error

	SetProfile(ctx context.Context, sessionID uuid.UUID, profile entity.Profile) (*entity.SessionSnapshot, error)
	SetBufferDistance(ctx context.Context, sessionID uuid.UUID, buffer entity.BufferDistance) (*entity.SessionSnapshot, error)
	ClearBufferOverride(ctx context.Context, sessionID uuid.UUID) (*entity.SessionSnapshot, error)

	Recalculate(ctx context.Context, sessionID uuid.UUID) (*entity.SessionSnapshot, error)
	StopTracking(ctx context.Context, sessionID uuid.UUID) (*entity.SessionSnapshot, error)

	SetPushToken(ctx context.Context, sessionID uuid.UUID, token string) error

	// Close ends every open session
	Close()
}

// CreateSessionInput defines the input for opening a navigation session.
// A nil destination puts the session in click-to-set mode.
type CreateSessionInput struct {
	Destination *entity.Coordinate
	Profile     entity.Profile
}
