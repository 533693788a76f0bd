package core_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"ecoquest/internal/config"
	"ecoquest/pkg/logger"
	"ecoquest/pkg/utils"
)

var Module = fx.Provide(
	config.Load,
	provideLogger,
	provideReportLocation,
)

func provideLogger(lc fx.Lifecycle, cfg *config.Config) (*zap.Logger, error) {
	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			_ = log.Sync()
			return nil
		},
	})
	return log, nil
}

func provideReportLocation(cfg *config.Config) *time.Location {
	return utils.ReportLocation(cfg.ReportTimezone)
}
