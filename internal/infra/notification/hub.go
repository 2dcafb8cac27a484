package notification

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"wayfinder/config"
	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/domain/service"
	"wayfinder/internal/infra/metrics"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultDialogTimeout = 2 * time.Minute

// InboundHandler receives device frames other than dialog results and pings
type InboundHandler func(ctx context.Context, sessionID string, msg InboundMessage)

// HubParams holds dependencies for Hub, injected by Fx
type HubParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Push   service.ToastPusher `optional:"true"`
}

// Hub owns the per-session channels and the device websockets attached to them
type Hub struct {
	mu            sync.Mutex
	channels      map[string]*sessionChannel
	push          service.ToastPusher
	dialogTimeout time.Duration
	logger        *slog.Logger
}

// NewHub creates the session channel registry
func NewHub(params HubParams) *Hub {
	dialogTimeout := defaultDialogTimeout
	if params.Config != nil && params.Config.Navigation != nil && params.Config.Navigation.DialogTimeout > 0 {
		dialogTimeout = params.Config.Navigation.DialogTimeout
	}

	return &Hub{
		channels:      make(map[string]*sessionChannel),
		push:          params.Push,
		dialogTimeout: dialogTimeout,
		logger:        params.Logger,
	}
}

// Open implements service.SessionChannelFactory
func (h *Hub) Open(sessionID string) service.SessionChannel {
	h.mu.Lock()
	defer h.mu.Unlock()

	if existing, ok := h.channels[sessionID]; ok {
		return existing
	}

	channel := &sessionChannel{
		id:      sessionID,
		hub:     h,
		pending: make(map[string]chan bool),
		logger:  h.logger.With(slog.String("session_id", sessionID)),
	}
	h.channels[sessionID] = channel

	return channel
}

// Attach binds a websocket to a session channel and serves it until the
// connection ends. A newer connection replaces the previous one.
func (h *Hub) Attach(ctx context.Context, sessionID string, conn *websocket.Conn, handle InboundHandler) error {
	h.mu.Lock()
	channel, ok := h.channels[sessionID]
	h.mu.Unlock()
	if !ok {
		return domainerrors.ErrSessionNotFound
	}

	client := newClient(conn, channel.logger)
	if !channel.attach(client) {
		_ = conn.Close()

		return domainerrors.ErrSessionClosed
	}
	defer channel.detach(client)

	metrics.WebSocketConnections.Inc()
	defer metrics.WebSocketConnections.Dec()

	channel.logger.Info("Device websocket attached")

	go client.writePump()
	client.readPump(func(msg InboundMessage) {
		if msg.Type == MessageTypeDialogResult {
			var result DialogResultPayload
			if err := json.Unmarshal(msg.Data, &result); err != nil {
				channel.logger.Warn("Malformed dialog result", slog.Any("error", err))

				return
			}
			channel.resolve(result.ID, result.Confirmed)

			return
		}

		if handle != nil {
			handle(ctx, sessionID, msg)
		}
	})

	channel.logger.Info("Device websocket detached")

	return nil
}

// Close closes every channel, resolving pending dialogs as dismissed
func (h *Hub) Close() {
	h.mu.Lock()
	channels := make([]*sessionChannel, 0, len(h.channels))
	for _, channel := range h.channels {
		channels = append(channels, channel)
	}
	h.mu.Unlock()

	for _, channel := range channels {
		channel.Close()
	}
}

func (h *Hub) remove(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.channels, sessionID)
}

// sessionChannel implements service.SessionChannel over an optional websocket
type sessionChannel struct {
	id     string
	hub    *Hub
	logger *slog.Logger

	mu        sync.Mutex
	client    *Client
	pushToken string
	pending   map[string]chan bool
	dialogSeq uint64
	closed    bool
}

func (c *sessionChannel) attach(client *Client) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}

	if c.client != nil {
		c.client.close()
		c.dismissPendingLocked()
	}
	c.client = client

	return true
}

func (c *sessionChannel) detach(client *Client) {
	c.mu.Lock()
	defer c.mu.Unlock()

	client.close()
	if c.client == client {
		c.client = nil
		c.dismissPendingLocked()
	}
}

// dismissPendingLocked resolves open dialogs as if the overlay was clicked
func (c *sessionChannel) dismissPendingLocked() {
	for id, answer := range c.pending {
		answer <- false
		delete(c.pending, id)
	}
}

func (c *sessionChannel) resolve(id string, confirmed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	answer, ok := c.pending[id]
	if !ok {
		return
	}
	delete(c.pending, id)
	answer <- confirmed
}

// sendLocked queues a message to the attached client, false when detached or congested
func (c *sessionChannel) sendLocked(msg Message) bool {
	if c.client == nil {
		return false
	}
	if !c.client.enqueue(msg) {
		c.logger.Warn("Websocket send buffer full, dropping message", slog.String("type", msg.Type))

		return false
	}

	return true
}

func (c *sessionChannel) send(msg Message) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.sendLocked(msg)
}

// Toast implements service.NotificationSink. Without a websocket the toast is
// pushed when a token is registered and logged otherwise.
func (c *sessionChannel) Toast(ctx context.Context, level service.ToastLevel, message string) {
	c.mu.Lock()
	delivered := c.sendLocked(Message{Type: MessageTypeToast, Data: ToastPayload{Level: level, Message: message}})
	token := c.pushToken
	c.mu.Unlock()

	if delivered {
		return
	}

	if token == "" || c.hub.push == nil {
		c.logger.Info("Toast", slog.String("level", string(level)), slog.String("message", message))

		return
	}

	err := c.hub.push.PushToast(ctx, token, service.PushToast{SessionID: c.id, Level: level, Message: message})
	if err == nil {
		return
	}

	c.logger.Warn("Failed to push toast", slog.Any("error", err))
	if errors.Is(err, ErrInvalidPushToken) {
		c.SetPushToken("")
	}
}

// Confirm implements service.NotificationSink
func (c *sessionChannel) Confirm(ctx context.Context, opts service.ConfirmOptions) bool {
	c.mu.Lock()
	if c.closed || c.client == nil {
		c.mu.Unlock()
		c.logger.Info("Dialog dismissed, no device attached", slog.String("title", opts.Title))

		return false
	}

	c.dialogSeq++
	id := strconv.FormatUint(c.dialogSeq, 10)
	answer := make(chan bool, 1)
	c.pending[id] = answer

	if !c.sendLocked(Message{Type: MessageTypeDialog, Data: DialogPayload{ID: id, ConfirmOptions: opts}}) {
		delete(c.pending, id)
		c.mu.Unlock()

		return false
	}
	c.mu.Unlock()

	timer := time.NewTimer(c.hub.dialogTimeout)
	defer timer.Stop()

	select {
	case confirmed := <-answer:
		return confirmed
	case <-ctx.Done():
	case <-timer.C:
		c.logger.Info("Dialog timed out", slog.String("title", opts.Title))
	}

	c.mu.Lock()
	delete(c.pending, id)
	c.mu.Unlock()

	return false
}

// RenderRoute implements service.MapRenderer
func (c *sessionChannel) RenderRoute(_ context.Context, route *entity.RouteResult) {
	if route == nil {
		return
	}
	c.send(Message{Type: MessageTypeRoute, Data: newRoutePayload(route)})
}

// MovePositionMarker implements service.MapRenderer
func (c *sessionChannel) MovePositionMarker(_ context.Context, position entity.Coordinate) {
	c.send(Message{Type: MessageTypeMarker, Data: position})
}

// ShowDestination implements service.MapRenderer
func (c *sessionChannel) ShowDestination(_ context.Context, destination entity.Coordinate) {
	c.send(Message{Type: MessageTypeDestination, Data: destination})
}

// PushState implements service.SessionChannel
func (c *sessionChannel) PushState(_ context.Context, snapshot entity.SessionSnapshot) {
	c.send(Message{Type: MessageTypeState, Data: snapshot})
}

// SetPushToken implements service.SessionChannel
func (c *sessionChannel) SetPushToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pushToken = token
}

// Close implements service.SessionChannel
func (c *sessionChannel) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()

		return
	}
	c.closed = true
	if c.client != nil {
		c.client.close()
		c.client = nil
	}
	c.dismissPendingLocked()
	c.mu.Unlock()

	c.hub.remove(c.id)
}
