package notification

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wayfinder/config"
	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/domain/service"
	mockService "wayfinder/internal/mocks/service"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type outbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

func newTestHub(push service.ToastPusher, dialogTimeout time.Duration) *Hub {
	cfg := &config.Config{Navigation: &config.NavigationConfig{DialogTimeout: dialogTimeout}}

	return NewHub(HubParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Push:   push,
	})
}

// dial serves the hub for sessionID and returns the device side of the websocket
func dial(t *testing.T, hub *Hub, sessionID string, inbound chan<- InboundMessage) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		_ = hub.Attach(context.Background(), sessionID, conn, func(_ context.Context, _ string, msg InboundMessage) {
			if inbound != nil {
				inbound <- msg
			}
		})
	}))
	t.Cleanup(server.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) outbound {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg outbound
	require.NoError(t, conn.ReadJSON(&msg))

	return msg
}

// waitAttached sends a ping and waits for the pong, which proves the pumps are running
func waitAttached(t *testing.T, conn *websocket.Conn) {
	t.Helper()

	require.NoError(t, conn.WriteJSON(map[string]string{"type": MessageTypePing}))
	assert.Equal(t, MessageTypePong, readMessage(t, conn).Type)
}

func TestHub_ConfirmRoundTrip(t *testing.T) {
	hub := newTestHub(nil, time.Minute)
	channel := hub.Open("s1")
	conn := dial(t, hub, "s1", nil)
	waitAttached(t, conn)

	result := make(chan bool, 1)
	go func() {
		result <- channel.Confirm(context.Background(), service.ConfirmOptions{
			Title:       "Location Error",
			ConfirmText: "Set Manually",
			CancelText:  "Cancel",
		})
	}()

	msg := readMessage(t, conn)
	require.Equal(t, MessageTypeDialog, msg.Type)

	var dialog DialogPayload
	require.NoError(t, json.Unmarshal(msg.Data, &dialog))
	assert.Equal(t, "Set Manually", dialog.ConfirmText)

	require.NoError(t, conn.WriteJSON(map[string]any{
		"type": MessageTypeDialogResult,
		"data": DialogResultPayload{ID: dialog.ID, Confirmed: true},
	}))

	select {
	case confirmed := <-result:
		assert.True(t, confirmed)
	case <-time.After(2 * time.Second):
		t.Fatal("confirm did not resolve")
	}
}

func TestHub_ConfirmWithoutDeviceIsDismissed(t *testing.T) {
	hub := newTestHub(nil, time.Minute)
	channel := hub.Open("s1")

	assert.False(t, channel.Confirm(context.Background(), service.ConfirmOptions{Title: "Route Calculation Failed"}))
}

func TestHub_ConfirmTimesOut(t *testing.T) {
	hub := newTestHub(nil, 30*time.Millisecond)
	channel := hub.Open("s1")
	conn := dial(t, hub, "s1", nil)
	waitAttached(t, conn)

	assert.False(t, channel.Confirm(context.Background(), service.ConfirmOptions{Title: "Location Timeout"}))
}

func TestHub_DisconnectDismissesPendingDialog(t *testing.T) {
	hub := newTestHub(nil, time.Minute)
	channel := hub.Open("s1")
	conn := dial(t, hub, "s1", nil)
	waitAttached(t, conn)

	result := make(chan bool, 1)
	go func() {
		result <- channel.Confirm(context.Background(), service.ConfirmOptions{Title: "Location Error"})
	}()

	assert.Equal(t, MessageTypeDialog, readMessage(t, conn).Type)
	require.NoError(t, conn.Close())

	select {
	case confirmed := <-result:
		assert.False(t, confirmed)
	case <-time.After(2 * time.Second):
		t.Fatal("confirm did not resolve after disconnect")
	}
}

func TestHub_RelaysToastRouteAndInbound(t *testing.T) {
	hub := newTestHub(nil, time.Minute)
	channel := hub.Open("s1")
	inbound := make(chan InboundMessage, 1)
	conn := dial(t, hub, "s1", inbound)
	waitAttached(t, conn)

	channel.Toast(context.Background(), service.ToastWarning, "You're off route! Recalculating...")
	msg := readMessage(t, conn)
	require.Equal(t, MessageTypeToast, msg.Type)
	var toast ToastPayload
	require.NoError(t, json.Unmarshal(msg.Data, &toast))
	assert.Equal(t, service.ToastWarning, toast.Level)

	channel.RenderRoute(context.Background(), &entity.RouteResult{
		Geometry:        []entity.Coordinate{{Lat: 4.589, Lng: 101.125}, {Lat: 4.590, Lng: 101.126}},
		DistanceMeters:  1200,
		DurationSeconds: 720,
		Profile:         entity.ProfileWalking,
		ProviderUsed:    entity.ProviderFallback,
	})
	msg = readMessage(t, conn)
	require.Equal(t, MessageTypeRoute, msg.Type)
	var route RoutePayload
	require.NoError(t, json.Unmarshal(msg.Data, &route))
	assert.Equal(t, [2]float64{4.589, 101.125}, route.Geometry[0], "route is sent in lat,lng order")
	assert.Equal(t, "12 min walk", route.Duration)

	require.NoError(t, conn.WriteJSON(map[string]any{
		"type": MessageTypeClick,
		"data": ClickPayload{Lat: 4.59, Lng: 101.12},
	}))
	select {
	case msg := <-inbound:
		assert.Equal(t, MessageTypeClick, msg.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("inbound click not delivered")
	}
}

func TestHub_ToastFallsBackToPush(t *testing.T) {
	push := mockService.NewMockToastPusher(t)
	push.EXPECT().PushToast(mock.Anything, "device-token", service.PushToast{
		SessionID: "s1",
		Level:     service.ToastInfo,
		Message:   "Live tracking stopped",
	}).Return(nil).Once()

	hub := newTestHub(push, time.Minute)
	channel := hub.Open("s1")
	channel.SetPushToken("device-token")

	channel.Toast(context.Background(), service.ToastInfo, "Live tracking stopped")
}

func TestHub_InvalidPushTokenIsCleared(t *testing.T) {
	push := mockService.NewMockToastPusher(t)
	push.EXPECT().PushToast(mock.Anything, "stale", mock.Anything).
		Return(errors.Wrap(ErrInvalidPushToken, "unregistered")).Once()

	hub := newTestHub(push, time.Minute)
	channel := hub.Open("s1")
	channel.SetPushToken("stale")

	channel.Toast(context.Background(), service.ToastInfo, "first")
	channel.Toast(context.Background(), service.ToastInfo, "second")

	push.AssertNumberOfCalls(t, "PushToast", 1)
}

func TestHub_AttachUnknownSession(t *testing.T) {
	hub := newTestHub(nil, time.Minute)
	err := hub.Attach(context.Background(), "missing", nil, nil)

	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}

func TestHub_CloseRemovesChannel(t *testing.T) {
	hub := newTestHub(nil, time.Minute)
	first := hub.Open("s1")
	assert.Same(t, first, hub.Open("s1"))

	first.Close()
	first.Close()

	assert.NotSame(t, first, hub.Open("s1"))
}
