package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"careerguide/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"go.uber.org/zap"
)

// Migrate applies the goose migrations found at the root of fsys and then
// brings the River queue schema to its latest version.
func Migrate(ctx context.Context, db *sql.DB, fsys fs.FS) error {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return fmt.Errorf("could not create goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("could not apply table migrations: %w", err)
	}
	for _, r := range results {
		logger.Info(ctx, "applied migration",
			zap.Int64("version", r.Source.Version), zap.Duration("took", r.Duration))
	}

	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create river migrator: %w", err)
	}

	res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
	if err != nil {
		return fmt.Errorf("could not apply river migrations: %w", err)
	}
	if len(res.Versions) > 0 {
		logger.Info(ctx, "river queue migrated",
			zap.Int("to", res.Versions[len(res.Versions)-1].Version))
	}

	return nil
}
