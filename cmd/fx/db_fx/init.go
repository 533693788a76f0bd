package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ecoquest/internal/config"
	"ecoquest/internal/infra"
	"ecoquest/internal/repositories"
)

var Module = fx.Provide(
	provideDB,
	repositories.NewTransactionManager,
)

func provideDB(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(cfg.Postgres.URL, cfg.Postgres.AutoMigrate, log)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db, log)
			return nil
		},
	})
	return db, nil
}
