package db_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"covoit/internal/config"
	"covoit/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB(lc fx.Lifecycle, cfg config.Config) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(cfg.PostgresURL, cfg.AutoMigrate)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})
	return db, nil
}
