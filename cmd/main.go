// Package main provides the CLI entrypoint for the career guide service.
// It wires subcommands (serve, migrate, jwt, validate, path, match), loads
// configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"careerguide/internal/config"
	"careerguide/pkg/logger"
	"careerguide/pkg/storage/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:          "careerguide",
		Short:        "Career paths, interest matching and a job board",
		SilenceUsage: true,
	}

	// cobra does not expose flags before command execution, so the config
	// path is parsed with the standard flags package as well. The persistent
	// flag only keeps cobra from rejecting -c.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	configPath := fs.String("c", "config.yml", "The config file path")
	_ = fs.Parse(configArgs(os.Args[1:]))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config: ", err)
	}

	logger.Setup(cfg.Environment)

	ctx := context.Background()
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		logger.Fatal(ctx, "could not set log level", zap.Error(err))
	}
	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		JWTCommand(cfg),
		validateCommand(cfg),
		pathCommand(cfg),
		matchCommand(cfg),
	)

	err = rootCmd.Execute()
	logger.Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// configArgs picks the -c/--config flag out of args so subcommand flags do
// not trip the standard flag parser.
func configArgs(args []string) []string {
	var out []string
	for i := 0; i < len(args); i++ {
		switch a := args[i]; {
		case a == "-c" || a == "--config":
			if i+1 < len(args) {
				out = append(out, "-c", args[i+1])
				i++
			}
		case strings.HasPrefix(a, "-c="):
			out = append(out, a)
		case strings.HasPrefix(a, "--config="):
			out = append(out, "-c="+strings.TrimPrefix(a, "--config="))
		}
	}

	return out
}
