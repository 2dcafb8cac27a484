package notification

import (
	"context"
	"log/slog"

	"wayfinder/internal/domain/entity"
	"wayfinder/internal/domain/service"
)

// LogChannel is a session channel for headless runs. Everything is logged and
// dialogs are answered with a fixed choice.
type LogChannel struct {
	logger      *slog.Logger
	autoConfirm bool
}

// NewLogChannel creates a channel answering every dialog with autoConfirm
func NewLogChannel(logger *slog.Logger, autoConfirm bool) *LogChannel {
	return &LogChannel{logger: logger, autoConfirm: autoConfirm}
}

// Toast implements service.NotificationSink
func (l *LogChannel) Toast(_ context.Context, level service.ToastLevel, message string) {
	l.logger.Info("Toast", slog.String("level", string(level)), slog.String("message", message))
}

// Confirm implements service.NotificationSink
func (l *LogChannel) Confirm(_ context.Context, opts service.ConfirmOptions) bool {
	l.logger.Info("Dialog",
		slog.String("title", opts.Title),
		slog.String("message", opts.Message),
		slog.Bool("confirmed", l.autoConfirm),
	)

	return l.autoConfirm
}

// RenderRoute implements service.MapRenderer
func (l *LogChannel) RenderRoute(_ context.Context, route *entity.RouteResult) {
	if route == nil {
		return
	}
	l.logger.Info("Route rendered",
		slog.String("provider", string(route.ProviderUsed)),
		slog.String("distance", route.DistanceText()),
		slog.String("duration", route.DurationText()),
		slog.Int("points", len(route.Geometry)),
		slog.Int("instructions", len(route.Instructions)),
	)
}

// MovePositionMarker implements service.MapRenderer
func (l *LogChannel) MovePositionMarker(_ context.Context, position entity.Coordinate) {
	l.logger.Debug("Position marker moved", slog.Float64("lat", position.Lat), slog.Float64("lng", position.Lng))
}

// ShowDestination implements service.MapRenderer
func (l *LogChannel) ShowDestination(_ context.Context, destination entity.Coordinate) {
	l.logger.Info("Destination shown", slog.Float64("lat", destination.Lat), slog.Float64("lng", destination.Lng))
}

// PushState implements service.SessionChannel
func (l *LogChannel) PushState(_ context.Context, snapshot entity.SessionSnapshot) {
	l.logger.Debug("Session state",
		slog.String("state", snapshot.State.String()),
		slog.String("acquisition", string(snapshot.AcquisitionState)),
	)
}

// SetPushToken implements service.SessionChannel
func (l *LogChannel) SetPushToken(string) {}

// Close implements service.SessionChannel
func (l *LogChannel) Close() {}

// Open implements service.SessionChannelFactory with a single shared channel
func (l *LogChannel) Open(string) service.SessionChannel {
	return l
}
