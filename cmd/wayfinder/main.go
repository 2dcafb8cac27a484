package main

import (
	"context"
	"log/slog"
	"os"

	"wayfinder/config"
	"wayfinder/internal/delivery"
	"wayfinder/internal/delivery/http"
	"wayfinder/internal/delivery/http/router/handler"
	"wayfinder/internal/domain/service"
	"wayfinder/internal/infra/location"
	logs "wayfinder/internal/infra/log"
	"wayfinder/internal/infra/notification"
	"wayfinder/internal/infra/pubsub"
	"wayfinder/internal/infra/qrcode"
	"wayfinder/internal/infra/routing/ors"
	"wayfinder/internal/infra/routing/osrm"
	"wayfinder/internal/usecase"
	"wayfinder/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				newPrimaryBackend,
				fx.ResultTags(`name:"primaryRouteBackend"`),
			),
			fx.Annotate(
				newFallbackBackend,
				fx.ResultTags(`name:"fallbackRouteBackend"`),
			),
			newToastPusher,
			newQRCodeService,
			pubsub.NewEventPublisher,
			newHub,
			func(hub *notification.Hub) service.SessionChannelFactory { return hub },
			fx.Annotate(
				location.NewDeviceSourceFactory,
				fx.As(new(service.PositionSourceFactory)),
			),
		),
	)
}

func newPrimaryBackend(cfg *config.Config, logger *slog.Logger) service.RouteBackend {
	return ors.NewClient(cfg.Routing.Primary, logger)
}

func newFallbackBackend(cfg *config.Config, logger *slog.Logger) service.RouteBackend {
	return osrm.NewClient(cfg.Routing.Fallback, logger)
}

// newToastPusher creates the push service, or nil when Firebase is not configured
func newToastPusher(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.ToastPusher, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		logger.Info("Firebase not configured, toasts for detached devices are only logged")

		return nil, nil
	}

	pusher, err := notification.NewFirebasePusher(ctx, *cfg.Firebase)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase pusher")
	}

	return pusher, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(config.QRCodeConfig{})
	}

	return qrcode.NewQRCodeService(*cfg.QRCode)
}

func newHub(lc fx.Lifecycle, params notification.HubParams) *notification.Hub {
	hub := notification.NewHub(params)
	lc.Append(fx.StopHook(hub.Close))

	return hub
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNavigationService,
		),
		fx.Invoke(func(lc fx.Lifecycle, navigation usecase.NavigationUsecase) {
			lc.Append(fx.StopHook(navigation.Close))
		}),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewNavigationHandler,
			handler.NewStreamHandler,
			handler.NewDestinationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
