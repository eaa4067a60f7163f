package main

import (
	"context"
	"log/slog"
	"os"

	"pricemap/config"
	"pricemap/internal/delivery"
	"pricemap/internal/delivery/api"
	"pricemap/internal/delivery/api/middleware"
	"pricemap/internal/delivery/api/router/handler"
	"pricemap/internal/domain/geo"
	"pricemap/internal/domain/pricing"
	"pricemap/internal/domain/service"
	"pricemap/internal/infra/auth"
	"pricemap/internal/infra/catalog"
	logs "pricemap/internal/infra/log"
	"pricemap/internal/infra/persistence"
	"pricemap/internal/infra/pubsub"
	"pricemap/internal/infra/qrcode"
	"pricemap/internal/usecase/impl"

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
		injectDomain(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
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
		persistence.New,
	)
}

func injectDomain() fx.Option {
	return fx.Provide(
		newVerifier,
		newEngine,
	)
}

// newVerifier builds the location trust verifier from the reporting rules
func newVerifier(cfg *config.Config) *geo.Verifier {
	reporting := cfg.ReportingOrDefault()

	return geo.NewVerifier(geo.VerifierConfig{
		MaxReportDistanceMeters: reporting.MaxReportDistanceMeters,
		MaxGPSAccuracyMeters:    reporting.MaxGPSAccuracyMeters,
		AtShopDistanceMeters:    reporting.AtShopDistanceMeters,
	})
}

// newEngine builds the consensus engine from the consensus section
func newEngine(cfg *config.Config, logger *slog.Logger) *pricing.Engine {
	consensus := cfg.ConsensusOrDefault()

	return pricing.NewEngine(pricing.Config{
		MinReports:         consensus.MinReports,
		RecentWindowDays:   consensus.RecentWindowDays,
		TolerancePct:       consensus.TolerancePct,
		CredibilityTimeout: consensus.CredibilityTimeout,
	}, logger)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			catalog.NewProductCatalog,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewShopService,
			impl.NewReportService,
			impl.NewPriceService,
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
			handler.NewShopHandler,
			handler.NewReportHandler,
			handler.NewPriceHandler,
			handler.NewAdminHandler,
			handler.NewTestHandler,
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
