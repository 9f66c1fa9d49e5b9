package main

import (
	"context"
	"log/slog"
	"os"

	"bizhub/config"
	"bizhub/internal/delivery"
	"bizhub/internal/delivery/api"
	"bizhub/internal/delivery/api/middleware"
	"bizhub/internal/delivery/api/router/handler"
	"bizhub/internal/domain/identifier"
	"bizhub/internal/domain/service"
	"bizhub/internal/errors"
	"bizhub/internal/infra/auth"
	"bizhub/internal/infra/cache"
	"bizhub/internal/infra/export"
	"bizhub/internal/infra/gateway"
	logs "bizhub/internal/infra/log"
	"bizhub/internal/infra/notification"
	"bizhub/internal/infra/persistence/postgres"
	"bizhub/internal/infra/pubsub"
	"bizhub/internal/infra/qrcode"
	"bizhub/internal/infra/storage"
	"bizhub/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		postgres.Module,
		pubsub.Module,
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
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
		cache.NewRedisClient,
		storage.NewBlobStore,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			gateway.NewRazorpayGateway,
			cache.NewWebhookGuard,
			export.NewPayoutExporter,
			newFirebaseService,
			newQRCodeService,
			newIdentifierGenerator,
		),
	)
}

// newFirebaseService creates a Firebase service with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase service")
	}

	return svc, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func newIdentifierGenerator() *identifier.Generator {
	return identifier.New()
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCheckoutService,
			impl.NewReferralService,
			impl.NewLeadService,
			impl.NewListingService,
			impl.NewSessionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCheckoutHandler,
			handler.NewWebhookHandler,
			handler.NewLeadHandler,
			handler.NewSessionHandler,
			handler.NewListingHandler,
			handler.NewReferralHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
