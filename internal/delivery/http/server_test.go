package http

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wayfinder/config"
	"wayfinder/internal/delivery/http/response"
	"wayfinder/internal/delivery/http/router"
	"wayfinder/internal/delivery/http/router/handler"
	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	mockUsecase "wayfinder/internal/mocks/usecase"
	"wayfinder/internal/infra/notification"
	"wayfinder/internal/infra/qrcode"
	"wayfinder/internal/usecase"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixture struct {
	echo       *echo.Echo
	navigation *mockUsecase.MockNavigationUsecase
	hub        *notification.Hub
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()

	cfg := &config.Config{Navigation: &config.NavigationConfig{DialogTimeout: time.Second}}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	navigation := mockUsecase.NewMockNavigationUsecase(t)
	hub := notification.NewHub(notification.HubParams{Config: cfg, Logger: logger})
	t.Cleanup(hub.Close)

	qr := qrcode.NewQRCodeService(config.QRCodeConfig{Size: 128, BaseURL: "http://localhost/directions"})
	params := router.RouterParams{
		NavigationHandler: handler.NewNavigationHandler(handler.NavigationHandlerParams{
			NavigationUC: navigation,
			QRCode:       qr,
			Logger:       logger,
		}),
		StreamHandler: handler.NewStreamHandler(handler.StreamHandlerParams{
			Config:       cfg,
			NavigationUC: navigation,
			Hub:          hub,
			Logger:       logger,
		}),
		DestinationHandler: handler.NewDestinationHandler(handler.DestinationHandlerParams{QRCode: qr}),
	}

	return &serverFixture{
		echo:       NewEcho(cfg, logger, params),
		navigation: navigation,
		hub:        hub,
	}
}

func (f *serverFixture) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	response.Response
	Data json.RawMessage `json:"data"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var out envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())

	return out
}

func TestServer_CreateSessionWithDestination(t *testing.T) {
	f := newServerFixture(t)

	id := uuid.New()
	destination := entity.Coordinate{Lat: 4.5935, Lng: 101.1302}
	f.navigation.EXPECT().CreateSession(mock.Anything, mock.MatchedBy(func(input *usecase.CreateSessionInput) bool {
		return input.Destination != nil && *input.Destination == destination && input.Profile == entity.ProfileWalking
	})).Return(&entity.SessionSnapshot{ID: id, Profile: entity.ProfileWalking, Destination: &destination}, nil).Once()

	rec := f.do(http.MethodPost, "/navigation/sessions?lat=4.5935&lng=101.1302", `{"profile":"foot-walking"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.True(t, body.Success)
	assert.Contains(t, string(body.Data), id.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestServer_CreateSessionNonNumericDestinationWaitsForClick(t *testing.T) {
	f := newServerFixture(t)

	f.navigation.EXPECT().CreateSession(mock.Anything, mock.MatchedBy(func(input *usecase.CreateSessionInput) bool {
		return input.Destination == nil
	})).Return(&entity.SessionSnapshot{ID: uuid.New(), AwaitingDestination: true}, nil).Once()

	rec := f.do(http.MethodPost, "/navigation/sessions?lat=north&lng=101.13", "")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Click anywhere on the map to set your destination", decode(t, rec).Message)
}

func TestServer_CreateSessionFromScannedLink(t *testing.T) {
	f := newServerFixture(t)

	f.navigation.EXPECT().CreateSession(mock.Anything, mock.MatchedBy(func(input *usecase.CreateSessionInput) bool {
		return input.Destination != nil && input.Destination.Lat == 4.5935
	})).Return(&entity.SessionSnapshot{ID: uuid.New()}, nil).Once()

	rec := f.do(http.MethodPost, "/navigation/sessions", `{"link":"http://localhost/directions?lat=4.5935&lng=101.1302"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestServer_InvalidSessionID(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(http.MethodGet, "/navigation/sessions/not-a-uuid", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.False(t, body.Success)
	assert.Equal(t, "INVALID_SESSION_ID", body.Error.Code)
}

func TestServer_UnknownSessionMapsAppError(t *testing.T) {
	f := newServerFixture(t)

	id := uuid.New()
	f.navigation.EXPECT().GetSession(mock.Anything, id).Return(nil, domainerrors.ErrSessionNotFound).Once()

	rec := f.do(http.MethodGet, "/navigation/sessions/"+id.String(), "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "SESSION_NOT_FOUND", body.Error.Code)
	assert.Equal(t, rec.Header().Get("X-Request-Id"), body.Error.RequestID)
}

func TestServer_UnexpectedErrorHidesCause(t *testing.T) {
	f := newServerFixture(t)

	id := uuid.New()
	f.navigation.EXPECT().GetSession(mock.Anything, id).Return(nil, pkgerrors.New("registry corrupted")).Once()

	rec := f.do(http.MethodGet, "/navigation/sessions/"+id.String(), "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.Nil(t, body.Error.Details)
	assert.NotContains(t, rec.Body.String(), "registry corrupted")
}

func TestServer_ClickValidation(t *testing.T) {
	f := newServerFixture(t)
	id := uuid.New()

	rec := f.do(http.MethodPost, "/navigation/sessions/"+id.String()+"/clicks", `{"lat":4.59}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Contains(t, rec.Body.String(), `"field":"lng"`)
}

func TestServer_ClickForwardsCoordinate(t *testing.T) {
	f := newServerFixture(t)
	id := uuid.New()

	click := entity.Coordinate{Lat: 4.589, Lng: 101.125}
	f.navigation.EXPECT().MapClick(mock.Anything, id, click).
		Return(&entity.SessionSnapshot{ID: id, AcquisitionState: entity.AcquisitionManualSet}, nil).Once()

	rec := f.do(http.MethodPost, "/navigation/sessions/"+id.String()+"/clicks", `{"lat":4.589,"lng":101.125}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_BufferOutsideStepIsRejected(t *testing.T) {
	f := newServerFixture(t)
	id := uuid.New()

	rec := f.do(http.MethodPut, "/navigation/sessions/"+id.String()+"/buffer", `{"meters":75}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_BUFFER_DISTANCE", decode(t, rec).Error.Code)
}

func TestServer_UnknownProfileIsRejected(t *testing.T) {
	f := newServerFixture(t)
	id := uuid.New()

	rec := f.do(http.MethodPut, "/navigation/sessions/"+id.String()+"/profile", `{"profile":"cycling"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_PROFILE", decode(t, rec).Error.Code)
}

func TestServer_PositionErrorIsClassified(t *testing.T) {
	f := newServerFixture(t)
	id := uuid.New()

	f.navigation.EXPECT().ReportPositionError(mock.Anything, id, domainerrors.LocationPermissionDenied).Return(nil).Once()

	rec := f.do(http.MethodPost, "/navigation/sessions/"+id.String()+"/positions/errors", `{"kind":"1"}`)
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestServer_CloseSession(t *testing.T) {
	f := newServerFixture(t)
	id := uuid.New()

	f.navigation.EXPECT().CloseSession(mock.Anything, id).Return(nil).Once()

	rec := f.do(http.MethodDelete, "/navigation/sessions/"+id.String(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestServer_DestinationQRCode(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(http.MethodGet, "/destinations/qr?lat=4.5935&lng=101.1302", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))

	rec = f.do(http.MethodGet, "/destinations/qr?lat=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Health(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "wayfinder_active_sessions")
}

func TestServer_WebSocketDispatchesClicks(t *testing.T) {
	f := newServerFixture(t)
	srv := httptest.NewServer(f.echo)
	t.Cleanup(srv.Close)

	id := uuid.New()
	f.hub.Open(id.String())
	f.navigation.EXPECT().GetSession(mock.Anything, id).Return(&entity.SessionSnapshot{ID: id}, nil).Once()

	clicked := make(chan entity.Coordinate, 1)
	f.navigation.EXPECT().MapClick(mock.Anything, id, mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, at entity.Coordinate) (*entity.SessionSnapshot, error) {
			clicked <- at

			return &entity.SessionSnapshot{ID: id}, nil
		}).Once()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/navigation/sessions/" + id.String() + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	defer conn.Close()

	// a pong proves the socket is attached to the session
	require.NoError(t, conn.WriteJSON(map[string]string{"type": "ping"}))
	var pong notification.Message
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&pong))
	assert.Equal(t, notification.MessageTypePong, pong.Type)

	require.NoError(t, conn.WriteJSON(map[string]any{
		"type": "click",
		"data": map[string]float64{"lat": 4.589, "lng": 101.125},
	}))

	select {
	case at := <-clicked:
		assert.Equal(t, entity.Coordinate{Lat: 4.589, Lng: 101.125}, at)
	case <-time.After(2 * time.Second):
		t.Fatal("click was not dispatched")
	}
}
