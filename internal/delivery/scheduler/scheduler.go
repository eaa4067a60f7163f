// Package scheduler runs periodic maintenance jobs as a delivery.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"pricemap/config"
	"pricemap/internal/delivery"
	deliverycontext "pricemap/internal/delivery/context"
	"pricemap/internal/domain/lifecycle"
	"pricemap/internal/errors"
	"pricemap/internal/usecase"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// SchedulerParams holds dependencies for the scheduler, injected by Fx.
type SchedulerParams struct {
	fx.In

	Lc      fx.Lifecycle
	Cfg     *config.Config
	Logger  *slog.Logger
	PriceUC usecase.PriceUsecase
}

type scheduler struct {
	cron    *cron.Cron
	refresh config.RefreshConfig
	priceUC usecase.PriceUsecase
	logger  *slog.Logger
}

// NewScheduler registers the stale price refresh job.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	refresh := params.Cfg.RefreshOrDefault()
	cronLog := &slogCronLogger{logger: params.Logger}

	s := &scheduler{
		cron: cron.New(
			cron.WithParser(cronParser),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
			cron.WithLogger(cronLog),
		),
		refresh: refresh,
		priceUC: params.PriceUC,
		logger:  params.Logger,
	}

	if refresh.Enabled {
		if _, err := s.cron.AddFunc(refresh.Schedule, s.runRefresh); err != nil {
			return nil, errors.Wrapf(err, "invalid refresh schedule %q", refresh.Schedule)
		}
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve runs the cron loop until the scheduler is stopped.
func (s *scheduler) Serve(_ context.Context) error {
	if !s.refresh.Enabled {
		s.logger.Info("Price refresh job disabled")

		return nil
	}

	s.logger.Info("Starting scheduler",
		slog.String("refresh_schedule", s.refresh.Schedule),
		slog.Duration("stale_after", s.refresh.StaleAfter),
	)
	s.cron.Run()

	return nil
}

func (s *scheduler) runRefresh() {
	requestID := uuid.NewString()
	logger := s.logger.With(slog.String("request_id", requestID), slog.String("job", "price_refresh"))
	ctx := deliverycontext.WithLogger(deliverycontext.WithRequestID(context.Background(), requestID), logger)

	start := time.Now()
	result, err := s.priceUC.RefreshStalePrices(ctx, s.refresh.StaleAfter)
	if err != nil {
		logger.Error("Price refresh failed", slog.Any("error", err))

		return
	}

	logger.Info("Price refresh finished",
		slog.Int("scanned", result.Scanned),
		slog.Int("updated", result.Updated),
		slog.Int("unchanged", result.Unchanged),
		slog.Int("failed", result.Failed),
		slog.Duration("took", time.Since(start)),
	)
}

func (s *scheduler) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down scheduler")

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-shutdownCtx.Done():
		return errors.Wrap(shutdownCtx.Err(), "running jobs did not finish")
	}
}

// slogCronLogger adapts slog to cron.Logger.
type slogCronLogger struct {
	logger *slog.Logger
}

func (l *slogCronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("[Cron] "+msg, keysAndValues...)
}

func (l *slogCronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("[Cron] "+msg, append([]any{slog.Any("error", err)}, keysAndValues...)...)
}
