package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"careerguide/internal/api"
	"careerguide/internal/api/handler/v1handler"
	"careerguide/internal/careermap"
	"careerguide/internal/config"
	"careerguide/internal/jobboard"
	"careerguide/internal/saved"
	"careerguide/internal/worker"
	"careerguide/pkg/catalog"
	"careerguide/pkg/controller"
	"careerguide/pkg/logger"
	"careerguide/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			mp, err := metrics.Setup(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not setup metrics", zap.Error(err))
			}

			strg, pool, closeStrg := getStorage(ctx, cfg)
			defer closeStrg()

			c, closeCache := getCache(ctx, cfg)
			defer closeCache()

			publisher, closePublisher, err := getPublisher(ctx, cfg)
			if err != nil {
				logger.Fatal(ctx, "could not create event publisher", zap.Error(err))
			}
			defer closePublisher()

			store, reloader := loadCatalog(ctx, cfg)

			guide, err := careermap.New(store, c, &careermap.Options{
				CacheTTL:       cfg.Guide.CacheTTL,
				MeterProvider:  mp,
				TracerProvider: otel.GetTracerProvider(),
			})
			if err != nil {
				logger.Fatal(ctx, "could not create career guide", zap.Error(err))
			}

			board, err := jobboard.New(strg, publisher, jobboard.NewOptions(cfg), getProviders(cfg)...)
			if err != nil {
				logger.Fatal(ctx, "could not create job board", zap.Error(err))
			}

			deps := v1handler.Deps{
				Guide: guide,
				Board: board,
				Saved: saved.New(strg, guide, board),
			}
			if reloader != nil {
				deps.Reloader = reloader
			}

			limiter := controller.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.IdleTTL)
			limiter.StartJanitor(ctx, cfg.RateLimit.IdleTTL)

			server, err := api.NewServer(api.Deps{
				Deps:        deps,
				Gatherer:    prometheus.DefaultGatherer,
				RateLimiter: limiter,
			}, api.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create webserver", zap.Error(err))
			}

			g, gctx := errgroup.WithContext(ctx)

			if cfg.Dataset.Watch && reloader != nil {
				g.Go(func() error {
					return catalog.Watch(gctx, cfg.Dataset.Path, func(ctx context.Context) {
						if _, err := reloader.Reload(ctx); err != nil {
							logger.Error(ctx, "could not reload dataset, keeping previous version", zap.Error(err))
						}
					})
				})
			}

			workerOpts := worker.NewOptions(cfg)
			if pool != nil {
				riverClient, err := worker.Start(gctx, pool, board, workerOpts)
				if err != nil {
					logger.Fatal(ctx, "could not start workers", zap.Error(err))
				}
				g.Go(func() error {
					<-gctx.Done()
					logger.Info(ctx, "stopping workers...")
					shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
					defer cancel()

					return riverClient.Stop(shutdownCtx) //nolint: contextcheck
				})
			} else {
				g.Go(func() error {
					worker.Schedule(gctx, board, workerOpts.RefreshInterval)

					return nil
				})
			}

			g.Go(func() error {
				logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}

				return nil
			})
			g.Go(func() error {
				<-gctx.Done()
				logger.Info(ctx, "stopping webserver...")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
				defer cancel()

				return server.Shutdown(shutdownCtx) //nolint: contextcheck
			})

			if err := g.Wait(); err != nil {
				logger.Error(ctx, "service stopped with error", zap.Error(err))
			}
		},
	}

	return cmd
}
