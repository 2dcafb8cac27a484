package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"time"

	"wayfinder/internal/domain/service"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// PushEnvelope is the body Google Pub/Sub posts to push subscriptions. The
// local publisher writes the same shape so a consumer works against both.
type PushEnvelope struct {
	Message      PushMessage `json:"message"`
	Subscription string      `json:"subscription"`
}

// PushMessage is the message part of a PushEnvelope
type PushMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	OrderingKey string            `json:"orderingKey,omitempty"`
	PublishTime string            `json:"publishTime"`
}

// localHTTPPublisher posts push envelopes straight to an HTTP endpoint
type localHTTPPublisher struct {
	endpoint     string
	subscription string
	httpClient   *http.Client
	logger       *slog.Logger
}

// NewLocalHTTPPublisher creates a publisher for development setups without a broker
func NewLocalHTTPPublisher(endpoint, subscription string, timeout time.Duration, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:     endpoint,
		subscription: subscription,
		httpClient:   &http.Client{Timeout: timeout},
		logger:       logger,
	}
}

// PublishNavigationEvent posts the event and expects a 2xx answer
func (p *localHTTPPublisher) PublishNavigationEvent(ctx context.Context, event *service.NavigationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	body, err := json.Marshal(PushEnvelope{
		Subscription: p.subscription,
		Message: PushMessage{
			Data:        base64.StdEncoding.EncodeToString(data),
			Attributes:  eventAttributes(event),
			MessageID:   event.EventID,
			OrderingKey: event.SessionID,
			PublishTime: event.OccurredAt.UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "post %s", event.EventType)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("event endpoint answered %d for %s", resp.StatusCode, event.EventType)
	}

	p.logger.Debug("Navigation event posted",
		slog.String("event_type", event.EventType),
		slog.String("session_id", event.SessionID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}
