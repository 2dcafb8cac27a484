package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"wayfinder/internal/delivery/http/response"
	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/domain/service"
	"wayfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

var (
	errInvalidSessionID = domainerrors.NewBaseError(http.StatusBadRequest, "INVALID_SESSION_ID", "invalid session ID", "")
	errInvalidInput     = domainerrors.NewBaseError(http.StatusBadRequest, "INVALID_INPUT", "invalid request body", "")
)

// NavigationHandlerParams holds dependencies for NavigationHandler, injected by Fx.
type NavigationHandlerParams struct {
	fx.In

	NavigationUC usecase.NavigationUsecase
	QRCode       service.QRCodeService `optional:"true"`
	Logger       *slog.Logger
}

// NavigationHandler serves the navigation session endpoints
type NavigationHandler struct {
	navigationUC usecase.NavigationUsecase
	qrcode       service.QRCodeService
	logger       *slog.Logger
}

// NewNavigationHandler is the constructor for NavigationHandler
func NewNavigationHandler(params NavigationHandlerParams) *NavigationHandler {
	return &NavigationHandler{
		navigationUC: params.NavigationUC,
		qrcode:       params.QRCode,
		logger:       params.Logger,
	}
}

// CreateSessionRequest is the optional body of a session creation
type CreateSessionRequest struct {
	Profile string `json:"profile"`
	// Link is a scanned destination deep link, used when lat/lng are absent
	Link string `json:"link"`
}

// CoordinateRequest is a map click
type CoordinateRequest struct {
	Lat *float64 `json:"lat" validate:"required,latitude"`
	Lng *float64 `json:"lng" validate:"required,longitude"`
}

// PositionRequest is a device sensor fix
type PositionRequest struct {
	Lat        *float64   `json:"lat" validate:"required,latitude"`
	Lng        *float64   `json:"lng" validate:"required,longitude"`
	Accuracy   float64    `json:"accuracy" validate:"gte=0"`
	CapturedAt *time.Time `json:"captured_at"`
}

// PositionErrorRequest is a device sensor failure
type PositionErrorRequest struct {
	Kind string `json:"kind" validate:"required"`
}

// ProfileRequest switches the travel mode
type ProfileRequest struct {
	Profile string `json:"profile" validate:"required"`
}

// BufferRequest overrides the deviation buffer
type BufferRequest struct {
	Meters int `json:"meters" validate:"required"`
}

// PushTokenRequest registers a device push token
type PushTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// CreateSession opens a navigation session. A destination that does not parse
// strictly puts the session in click-to-set mode.
func (h *NavigationHandler) CreateSession(c echo.Context) error {
	var req CreateSessionRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return errInvalidInput.WithDetails(err.Error())
		}
	}

	input := &usecase.CreateSessionInput{}
	if req.Profile != "" {
		profile, err := entity.ParseProfile(req.Profile)
		if err != nil {
			return response.HandleAppError(c, domainerrors.ErrInvalidProfile.WithDetails(err.Error()))
		}
		input.Profile = profile
	}

	if destination, ok := entity.ParseQueryCoordinate(c.QueryParam("lat"), c.QueryParam("lng")); ok {
		input.Destination = &destination
	} else if req.Link != "" && h.qrcode != nil {
		destination, err := h.qrcode.ParseDestinationQR(req.Link)
		if err != nil {
			return err
		}
		input.Destination = &destination
	}

	snapshot, err := h.navigationUC.CreateSession(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	message := "Navigation session created"
	if snapshot.AwaitingDestination {
		message = "Click anywhere on the map to set your destination"
	}

	return response.Success(c, http.StatusCreated, snapshot, message)
}

// GetSession returns the session snapshot
func (h *NavigationHandler) GetSession(c echo.Context) error {
	sessionID, err := parseSessionID(c)
	if err != nil {
		return err
	}

	snapshot, err := h.navigationUC.GetSession(c.Request().Context(), sessionID)

	return respond(c, snapshot, err, "")
}

// CloseSession ends the session
func (h *NavigationHandler) CloseSession(c echo.Context) error {
	sessionID, err := parseSessionID(c)
	if err != nil {
		return err
	}

	if err := h.navigationUC.CloseSession(c.Request().Context(), sessionID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// MapClick handles a click on the map
func (h *NavigationHandler) MapClick(c echo.Context) error {
	sessionID, err := parseSessionID(c)
	if err != nil {
		return err
	}

	var req CoordinateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	snapshot, err := h.navigationUC.MapClick(c.Request().Context(), sessionID, entity.Coordinate{Lat: *req.Lat, Lng: *req.Lng})

	return respond(c, snapshot, err, "")
}

// StartAcquisition starts or retries start point acquisition
func (h *NavigationHandler) StartAcquisition(c echo.Context) error {
	return h.sessionAction(c, h.navigationUC.StartAcquisition, "Acquiring your location")
}

// UseManualLocation switches to a manual start point pick
func (h *NavigationHandler) UseManualLocation(c echo.Context) error {
	return h.sessionAction(c, h.navigationUC.UseManualLocation, "Click on the map to set your starting location")
}

// CancelAcquisition stops start point acquisition
func (h *NavigationHandler) CancelAcquisition(c echo.Context) error {
	return h.sessionAction(c, h.navigationUC.CancelAcquisition, "")
}

// ReportPosition feeds a sensor fix from the device
func (h *NavigationHandler) ReportPosition(c echo.Context) error {
	sessionID, err := parseSessionID(c)
	if err != nil {
		return err
	}

	var req PositionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	sample := entity.PositionSample{
		Coordinate:     entity.Coordinate{Lat: *req.Lat, Lng: *req.Lng},
		AccuracyMeters: req.Accuracy,
	}
	if req.CapturedAt != nil {
		sample.CapturedAt = *req.CapturedAt
	}

	if err := h.navigationUC.ReportPosition(c.Request().Context(), sessionID, sample); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusAccepted)
}

// ReportPositionError feeds a sensor failure from the device
func (h *NavigationHandler) ReportPositionError(c echo.Context) error {
	sessionID, err := parseSessionID(c)
	if err != nil {
		return err
	}

	var req PositionErrorRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	kind := domainerrors.ParseLocationErrorKind(req.Kind)
	if err := h.navigationUC.ReportPositionError(c.Request().Context(), sessionID, kind); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusAccepted)
}

// SetProfile switches the travel mode
func (h *NavigationHandler) SetProfile(c echo.Context) error {
	sessionID, err := parseSessionID(c)
	if err != nil {
		return err
	}

	var req ProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := entity.ParseProfile(req.Profile)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidProfile.WithDetails(err.Error()))
	}

	snapshot, err := h.navigationUC.SetProfile(c.Request().Context(), sessionID, profile)

	return respond(c, snapshot, err, "")
}

// SetBufferDistance overrides the deviation buffer
func (h *NavigationHandler) SetBufferDistance(c echo.Context) error {
	sessionID, err := parseSessionID(c)
	if err != nil {
		return err
	}

	var req BufferRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	buffer, err := entity.NewBufferDistance(req.Meters)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidBufferDistance.WithDetails(err.Error()))
	}

	snapshot, err := h.navigationUC.SetBufferDistance(c.Request().Context(), sessionID, buffer)

	return respond(c, snapshot, err, "")
}

// ClearBufferOverride restores the profile default buffer
func (h *NavigationHandler) ClearBufferOverride(c echo.Context) error {
	return h.sessionAction(c, h.navigationUC.ClearBufferOverride, "")
}

// Recalculate recomputes the route from the current position
func (h *NavigationHandler) Recalculate(c echo.Context) error {
	return h.sessionAction(c, h.navigationUC.Recalculate, "")
}

// StopTracking stops live tracking
func (h *NavigationHandler) StopTracking(c echo.Context) error {
	return h.sessionAction(c, h.navigationUC.StopTracking, "Live tracking stopped")
}

// SetPushToken registers the device push token
func (h *NavigationHandler) SetPushToken(c echo.Context) error {
	sessionID, err := parseSessionID(c)
	if err != nil {
		return err
	}

	var req PushTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.navigationUC.SetPushToken(c.Request().Context(), sessionID, req.Token); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

type sessionOperation func(ctx context.Context, sessionID uuid.UUID) (*entity.SessionSnapshot, error)

func (h *NavigationHandler) sessionAction(c echo.Context, op sessionOperation, message string) error {
	sessionID, err := parseSessionID(c)
	if err != nil {
		return err
	}

	snapshot, err := op(c.Request().Context(), sessionID)

	return respond(c, snapshot, err, message)
}

func respond(c echo.Context, snapshot *entity.SessionSnapshot, err error, message string) error {
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snapshot, message)
}

func parseSessionID(c echo.Context) (uuid.UUID, error) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errInvalidSessionID.WithDetails(c.Param("id"))
	}

	return sessionID, nil
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errInvalidInput.WithDetails(err.Error())
	}

	return c.Validate(req)
}
