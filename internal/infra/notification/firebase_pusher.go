package notification

import (
	"context"
	"strconv"
	"time"

	"wayfinder/config"
	"wayfinder/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

const (
	defaultPushTitle = "Campus Navigation"
	defaultToastTTL  = time.Minute
)

// ErrInvalidPushToken is returned when the device token is no longer registered
var ErrInvalidPushToken = errors.New("push token is invalid or unregistered")

type firebasePusher struct {
	client *messaging.Client
	title  string
	ttl    time.Duration
	now    func() time.Time
}

// NewFirebasePusher creates a ToastPusher backed by Firebase Cloud Messaging
func NewFirebasePusher(ctx context.Context, cfg config.FirebaseConfig) (service.ToastPusher, error) {
	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	pusher := &firebasePusher{
		client: client,
		title:  cfg.Title,
		ttl:    cfg.ToastTTL,
		now:    time.Now,
	}
	if pusher.title == "" {
		pusher.title = defaultPushTitle
	}
	if pusher.ttl <= 0 {
		pusher.ttl = defaultToastTTL
	}

	return pusher, nil
}

// PushToast sends the toast to one device
func (p *firebasePusher) PushToast(ctx context.Context, token string, toast service.PushToast) error {
	message := toastMessage(token, toast, p.title, p.ttl, p.now())

	if _, err := p.client.Send(ctx, message); err != nil {
		if messaging.IsInvalidArgument(err) || messaging.IsUnregistered(err) {
			return errors.Wrap(ErrInvalidPushToken, err.Error())
		}

		return errors.Wrap(err, "failed to send toast")
	}

	return nil
}

// toastMessage builds the FCM message. Toasts of a session collapse into one
// notification and expire after ttl; warnings and errors are sent with high
// priority.
func toastMessage(token string, toast service.PushToast, title string, ttl time.Duration, now time.Time) *messaging.Message {
	androidPriority, apnsPriority := "normal", "5"
	if toast.Level == service.ToastWarning || toast.Level == service.ToastError {
		androidPriority, apnsPriority = "high", "10"
	}
	collapseKey := "navigation-" + toast.SessionID

	return &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  toast.Message,
		},
		Data: map[string]string{
			"session_id": toast.SessionID,
			"level":      string(toast.Level),
		},
		Android: &messaging.AndroidConfig{
			CollapseKey: collapseKey,
			Priority:    androidPriority,
			TTL:         &ttl,
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-collapse-id": collapseKey,
				"apns-priority":    apnsPriority,
				"apns-expiration":  strconv.FormatInt(now.Add(ttl).Unix(), 10),
			},
		},
	}
}
