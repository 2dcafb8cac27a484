package service

import (
	"context"
)

// PushToast is a toast delivered as a push notification to a device that has
// no live connection
type PushToast struct {
	SessionID string
	Level     ToastLevel
	Message   string
}

// ToastPusher delivers toasts to devices by push token
type ToastPusher interface {
	PushToast(ctx context.Context, token string, toast PushToast) error
}
