// Package pubsub publishes navigation lifecycle events to a broker.
package pubsub

import (
	"context"
	"log/slog"
	"time"

	"wayfinder/config"
	"wayfinder/internal/domain/constants"
	"wayfinder/internal/domain/lifecycle"
	"wayfinder/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultQueueSize         = 256
	defaultPublishTimeout    = 10 * time.Second
	defaultLocalSubscription = "projects/local/subscriptions/navigation-events-sub"
)

// noopPublisher drops every event when no broker is configured
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishNavigationEvent(_ context.Context, event *service.NavigationEvent) error {
	p.logger.Debug("Navigation event not published",
		slog.String("event_type", event.EventType),
		slog.String("session_id", event.SessionID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the broker from configuration and puts a queue in
// front of it. The queue is drained when the application stops.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger.With(slog.String("component", "event_publisher"))

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, navigation events are dropped")

		return &noopPublisher{logger: logger}, nil
	}
	settings := *cfg
	if settings.QueueSize <= 0 {
		settings.QueueSize = defaultQueueSize
	}
	if settings.PublishTimeout <= 0 {
		settings.PublishTimeout = defaultPublishTimeout
	}
	if settings.LocalSubscription == "" {
		settings.LocalSubscription = defaultLocalSubscription
	}

	backend, err := newBackend(params.Ctx, &settings, logger)
	if err != nil {
		return nil, err
	}

	queue := newQueuedPublisher(backend, settings.QueueSize, settings.PublishTimeout, logger)
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Draining navigation events", slog.Int("pending", len(queue.events)))

			drainCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			return queue.Shutdown(drainCtx)
		},
	})

	return queue, nil
}

func newBackend(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Publishing navigation events to local endpoint",
			slog.String("endpoint", cfg.LocalEndpoint),
			slog.String("subscription", cfg.LocalSubscription),
		)

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, cfg.LocalSubscription, cfg.PublishTimeout, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// eventAttributes are the message attributes subscribers filter on
func eventAttributes(event *service.NavigationEvent) map[string]string {
	attributes := map[string]string{
		"event_type": event.EventType,
		"session_id": event.SessionID,
	}
	if event.Profile != "" {
		attributes["profile"] = event.Profile.String()
	}
	if event.Provider != "" {
		attributes["provider"] = string(event.Provider)
	}

	return attributes
}
