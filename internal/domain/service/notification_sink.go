package service

import (
	"context"

	"wayfinder/internal/domain/entity"
)

// ToastLevel is the severity of a non-blocking notification
type ToastLevel string

const (
	ToastInfo    ToastLevel = "info"
	ToastSuccess ToastLevel = "success"
	ToastWarning ToastLevel = "warning"
	ToastError   ToastLevel = "error"
)

// ConfirmOptions describes a blocking two-button dialog
type ConfirmOptions struct {
	Title       string `json:"title"`
	Message     string `json:"message"`
	ConfirmText string `json:"confirm_text"`
	CancelText  string `json:"cancel_text,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// NotificationSink shows toasts and awaitable dialogs to the user
type NotificationSink interface {
	Toast(ctx context.Context, level ToastLevel, message string)

	// Confirm blocks until the user answers. It resolves false on cancel,
	// escape, overlay click, timeout, a detached client or a cancelled ctx.
	Confirm(ctx context.Context, opts ConfirmOptions) bool
}

// MapRenderer draws navigation state on the device map
type MapRenderer interface {
	RenderRoute(ctx context.Context, route *entity.RouteResult)
	MovePositionMarker(ctx context.Context, position entity.Coordinate)
	ShowDestination(ctx context.Context, destination entity.Coordinate)
}

// SessionChannel is the per-session link to the device
type SessionChannel interface {
	NotificationSink
	MapRenderer

	PushState(ctx context.Context, snapshot entity.SessionSnapshot)
	SetPushToken(token string)
	Close()
}

// SessionChannelFactory opens a channel for a new session
type SessionChannelFactory interface {
	Open(sessionID string) SessionChannel
}
