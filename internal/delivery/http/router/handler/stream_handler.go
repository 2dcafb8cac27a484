package handler

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"wayfinder/config"
	deliverycontext "wayfinder/internal/delivery/context"
	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/infra/notification"
	"wayfinder/internal/usecase"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const handshakeTimeout = 10 * time.Second

// StreamHandlerParams holds dependencies for StreamHandler, injected by Fx.
type StreamHandlerParams struct {
	fx.In

	Config       *config.Config
	NavigationUC usecase.NavigationUsecase
	Hub          *notification.Hub
	Logger       *slog.Logger
}

// StreamHandler attaches device websockets to navigation sessions
type StreamHandler struct {
	navigationUC usecase.NavigationUsecase
	hub          *notification.Hub
	upgrader     websocket.Upgrader
	logger       *slog.Logger
}

// NewStreamHandler is the constructor for StreamHandler
func NewStreamHandler(params StreamHandlerParams) *StreamHandler {
	h := &StreamHandler{
		navigationUC: params.NavigationUC,
		hub:          params.Hub,
		logger:       params.Logger,
	}

	var allowed []string
	if params.Config != nil {
		allowed = params.Config.HTTP.AllowOrigins
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		HandshakeTimeout: handshakeTimeout,
		CheckOrigin:      originChecker(allowed),
	}

	return h
}

// Stream upgrades the request and serves the session channel until the device disconnects
func (h *StreamHandler) Stream(c echo.Context) error {
	sessionID, err := parseSessionID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.navigationUC.GetSession(ctx, sessionID); err != nil {
		return err
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// the upgrader already wrote the handshake failure
		h.logger.Warn("WebSocket upgrade failed", slog.String("session_id", sessionID.String()), slog.Any("error", err))

		return nil
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	// inbound work outlives the socket so a dropped connection does not abort a route computation
	dispatchCtx := context.WithoutCancel(ctx)
	var inflight sync.WaitGroup
	err = h.hub.Attach(ctx, sessionID.String(), conn, func(_ context.Context, _ string, msg notification.InboundMessage) {
		inflight.Add(1)
		go func() {
			defer inflight.Done()
			if err := h.dispatch(dispatchCtx, sessionID, msg); err != nil {
				logger.Warn("Device message rejected", slog.String("type", msg.Type), slog.Any("error", err))
			}
		}()
	})
	inflight.Wait()

	if err != nil {
		logger.Warn("WebSocket attach failed", slog.Any("error", err))
	}

	return nil
}

// dispatch applies a device frame to the session
func (h *StreamHandler) dispatch(ctx context.Context, sessionID uuid.UUID, msg notification.InboundMessage) error {
	switch msg.Type {
	case notification.MessageTypePosition:
		var payload notification.PositionPayload
		if err := json.Unmarshal(msg.Data, &payload); err != nil {
			return errInvalidInput.WithDetails(err.Error())
		}

		return h.navigationUC.ReportPosition(ctx, sessionID, payload.Sample())

	case notification.MessageTypePositionError:
		var payload notification.PositionErrorPayload
		if err := json.Unmarshal(msg.Data, &payload); err != nil {
			return errInvalidInput.WithDetails(err.Error())
		}

		return h.navigationUC.ReportPositionError(ctx, sessionID, domainerrors.ParseLocationErrorKind(payload.Kind))

	case notification.MessageTypeSensorUnsupported:
		return h.navigationUC.ReportSensorUnsupported(ctx, sessionID)

	case notification.MessageTypeClick:
		var payload notification.ClickPayload
		if err := json.Unmarshal(msg.Data, &payload); err != nil {
			return errInvalidInput.WithDetails(err.Error())
		}
		_, err := h.navigationUC.MapClick(ctx, sessionID, entity.Coordinate{Lat: payload.Lat, Lng: payload.Lng})

		return err

	default:
		return errInvalidInput.WithDetails("unknown message type " + msg.Type)
	}
}

// originChecker accepts requests without an Origin header, which native
// device clients omit, and browser origins on the allow list
func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || len(allowed) == 0 {
			return true
		}

		for _, candidate := range allowed {
			if candidate == "*" || candidate == origin {
				return true
			}
		}

		return false
	}
}
