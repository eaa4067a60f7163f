package main

import (
	"context"
	"log/slog"
	"os"

	"pricemap/config"
	"pricemap/internal/delivery"
	"pricemap/internal/delivery/scheduler"
	"pricemap/internal/delivery/worker"
	"pricemap/internal/delivery/worker/handler"
	"pricemap/internal/domain/pricing"
	logs "pricemap/internal/infra/log"
	"pricemap/internal/infra/persistence"
	"pricemap/internal/infra/pubsub"
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
		persistence.New,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			pubsub.NewEventPublisher,
			newEngine,
		),
	)
}

// newEngine builds the consensus engine used by the refresh job
func newEngine(cfg *config.Config, logger *slog.Logger) *pricing.Engine {
	consensus := cfg.ConsensusOrDefault()

	return pricing.NewEngine(pricing.Config{
		MinReports:         consensus.MinReports,
		RecentWindowDays:   consensus.RecentWindowDays,
		TolerancePct:       consensus.TolerancePct,
		CredibilityTimeout: consensus.CredibilityTimeout,
	}, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuditService,
			impl.NewPriceService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewScheduler,
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
