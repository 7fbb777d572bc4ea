package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"library-backend/internal/pkg/config"
	"library-backend/internal/pkg/errs"
	"library-backend/internal/usecase/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartOverdueScheduler),
)

const sweepTimeout = 5 * time.Minute

func StartOverdueScheduler(lc fx.Lifecycle, cfg config.Config, overdue commands.OverdueCommands, logger *slog.Logger) error {
	if !cfg.Sweep.Enabled {
		logger.Info("延滞スイープは無効です")
		return nil
	}

	loc, err := time.LoadLocation(cfg.Sweep.TimeZone)
	if err != nil {
		return errs.Wrapf(err, "invalid SWEEP_TIMEZONE %q", cfg.Sweep.TimeZone)
	}

	c := cron.New(cron.WithLocation(loc))
	if _, err := c.AddFunc(cfg.Sweep.Schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()

		if _, err := overdue.RunScheduled(ctx); err != nil {
			logger.Error("延滞スイープに失敗しました", "error", err)
		}
	}); err != nil {
		return errs.Wrapf(err, "invalid SWEEP_SCHEDULE %q", cfg.Sweep.Schedule)
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			c.Start()
			logger.Info("⏰ 延滞スイープを登録しました", "schedule", cfg.Sweep.Schedule, "timezone", cfg.Sweep.TimeZone)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			done := c.Stop().Done()
			select {
			case <-done:
			case <-ctx.Done():
			}
			return nil
		},
	})
	return nil
}
