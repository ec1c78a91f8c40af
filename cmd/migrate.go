package main

import (
	"context"
	"database/sql"
	"io/fs"

	root "careerguide"
	"careerguide/internal/config"
	"careerguide/pkg/logger"
	"careerguide/pkg/storage/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand applies the listing and saved item tables followed by the
// River queue schema. It always targets Postgres, whatever storage.driver says.
func migrateCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			migrations, err := fs.Sub(root.Migrations, "migrations")
			if err != nil {
				logger.Fatal(ctx, "could not open embedded migrations", zap.Error(err))
			}

			if err := postgres.Migrate(ctx, strg.DB.(*sql.DB), migrations); err != nil {
				logger.Fatal(ctx, "could not migrate database", zap.Error(err))
			}
			logger.Info(ctx, "database is up to date")
		},
	}
}
