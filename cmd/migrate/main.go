package main

import (
	"context"
	"log/slog"

	"bizhub/config"
	logs "bizhub/internal/infra/log"
	"bizhub/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(migrate),
	).Run()
}

// migrate applies the schema and stops the application.
func migrate(lc fx.Lifecycle, shutdowner fx.Shutdowner, db *gorm.DB, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := postgres.Migrate(ctx, db); err != nil {
				logger.Error("Migration failed", slog.Any("error", err))

				return err
			}
			logger.Info("Migration completed")

			return shutdowner.Shutdown()
		},
	})
}
