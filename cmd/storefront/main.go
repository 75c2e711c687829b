package main

import (
	"context"
	"log/slog"
	"os"

	"mycomart/config"
	"mycomart/internal/delivery"
	"mycomart/internal/delivery/http"
	httphandler "mycomart/internal/delivery/http/router/handler"
	"mycomart/internal/domain/constants"
	"mycomart/internal/domain/repository"
	"mycomart/internal/domain/service"
	"mycomart/internal/infra/api"
	"mycomart/internal/infra/auth"
	"mycomart/internal/infra/localstore"
	logs "mycomart/internal/infra/log"
	"mycomart/internal/infra/pubsub"
	"mycomart/internal/infra/qrcode"
	"mycomart/internal/infra/telemetry"
	"mycomart/internal/usecase"
	"mycomart/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			restoreSession,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		localstore.New,
		api.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			localstore.NewGuestCartRepository,
			localstore.NewSessionRepository,
			api.NewAuthAPI,
			api.NewCartAPI,
			api.NewCatalogAPI,
			api.NewOrderAPI,
			api.NewRoomAPI,
		),
	)
}

// asTokenCarrier exposes the backend client's bearer-token state to the
// session service.
func asTokenCarrier(client *api.Client) service.AuthTokenCarrier {
	return client
}

// asUnauthorizedWatcher exposes the backend client's global 401 hook.
func asUnauthorizedWatcher(client *api.Client) service.UnauthorizedWatcher {
	return client
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newTelemetrySource selects the sensor feed: the backend's live readings, or
// the simulated walk for development.
func newTelemetrySource(cfg *config.Config, roomAPI repository.RoomAPI, logger *slog.Logger) service.TelemetrySource {
	if cfg.Telemetry != nil && cfg.Telemetry.Source == constants.TelemetrySourceBackend {
		return telemetry.NewBackendSource(roomAPI, logger)
	}

	return telemetry.NewSimulatedSource(logger)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			asTokenCarrier,
			asUnauthorizedWatcher,
			auth.NewTokenInspector,
			newQRCodeService,
			newTelemetrySource,
			telemetry.NewPoller,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCartService,
			impl.NewSessionService,
			impl.NewCheckoutService,
			impl.NewCatalogService,
			impl.NewRoomService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			httphandler.NewSessionHandler,
			httphandler.NewCartHandler,
			httphandler.NewCheckoutHandler,
			httphandler.NewCatalogHandler,
			httphandler.NewRoomHandler,
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

// restoreSession rehydrates a persisted session before the server accepts
// traffic, and tears down the 401 watch on shutdown.
func restoreSession(lc fx.Lifecycle, sessionUsecase usecase.SessionUsecase, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if _, err := sessionUsecase.Restore(ctx); err != nil {
				logger.Warn("Session restore failed, starting as guest", slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return sessionUsecase.Close()
		},
	})
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
