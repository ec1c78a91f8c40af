package main

import (
	"context"
	"fmt"
	"net/http"

	root "careerguide"
	"careerguide/internal/config"
	"careerguide/pkg/cache"
	"careerguide/pkg/cache/redis"
	"careerguide/pkg/catalog"
	"careerguide/pkg/jobfeed"
	"careerguide/pkg/jobfeed/httpfeed"
	"careerguide/pkg/jobfeed/static"
	"careerguide/pkg/logger"
	"careerguide/pkg/notify"
	"careerguide/pkg/notify/amqp"
	"careerguide/pkg/storage"
	"careerguide/pkg/storage/memory"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// getStorage returns the configured storage. The pool is only set for
// postgres, which is the only driver with a job queue.
func getStorage(ctx context.Context, cfg *config.Config) (storage.Storage, *pgxpool.Pool, func()) {
	if cfg.Storage.Driver == config.StoragePostgres {
		pgsql, closeFn := getPostgres(ctx, cfg)

		return pgsql, pgsql.Pool, closeFn
	}

	logger.Info(ctx, "using in-memory storage, listings and saved items are lost on restart")

	return memory.New(), nil, func() {}
}

// getDatasetSource picks the dataset source: a local file, an S3 object, or
// the embedded default dataset.
func getDatasetSource(ctx context.Context, cfg *config.Config) (catalog.Source, error) {
	switch {
	case cfg.Dataset.Path != "":
		return catalog.File{Path: cfg.Dataset.Path}, nil
	case cfg.Dataset.S3.Bucket != "":
		client, err := catalog.NewS3Client(ctx, catalog.S3Options{
			Region:    cfg.Dataset.S3.Region,
			Endpoint:  cfg.Dataset.S3.Endpoint,
			AccessKey: cfg.Dataset.S3.AccessKeyID,
			SecretKey: cfg.Dataset.S3.SecretAccessKey,
		})
		if err != nil {
			return nil, err
		}

		return catalog.S3{Client: client, Bucket: cfg.Dataset.S3.Bucket, Key: cfg.Dataset.S3.Key}, nil
	default:
		return catalog.Bytes{Name: root.DefaultDatasetName, Data: root.DefaultDataset}, nil
	}
}

// loadCatalog loads the dataset into a new store. A failed load is logged and
// leaves the store empty.
func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Store, *catalog.Reloader) {
	store := catalog.NewStore(nil)

	src, err := getDatasetSource(ctx, cfg)
	if err != nil {
		logger.Error(ctx, "could not create dataset source", zap.Error(err))

		return store, nil
	}

	reloader := &catalog.Reloader{Store: store, Source: src}
	if _, err := reloader.Reload(ctx); err != nil {
		logger.Error(ctx, "could not load dataset, catalog endpoints are unavailable", zap.Error(err))
	}

	return store, reloader
}

// getCache returns a Redis cache when configured and cache.Nop otherwise.
func getCache(ctx context.Context, cfg *config.Config) (cache.Cache, func()) {
	if cfg.Cache.Redis.Addr == "" {
		return cache.Nop{}, func() {}
	}

	c, err := redis.New(ctx, redis.Options{
		Addr:     cfg.Cache.Redis.Addr,
		Password: cfg.Cache.Redis.Password,
		DB:       cfg.Cache.Redis.DB,
		Prefix:   cfg.Cache.Redis.Prefix,
	})
	if err != nil {
		logger.Warn(ctx, "redis unavailable, caching disabled", zap.Error(err))

		return cache.Nop{}, func() {}
	}

	return c, func() {
		if err := c.Close(); err != nil {
			logger.Warn(ctx, "could not close redis client", zap.Error(err))
		}
	}
}

// getPublisher returns an AMQP publisher when configured and notify.Nop otherwise.
func getPublisher(ctx context.Context, cfg *config.Config) (notify.Publisher, func(), error) {
	if cfg.AMQP.URL == "" {
		return notify.Nop{}, func() {}, nil
	}

	p, err := amqp.New(amqp.Options{URL: cfg.AMQP.URL, Exchange: cfg.AMQP.Exchange})
	if err != nil {
		return nil, nil, fmt.Errorf("could not create amqp publisher: %w", err)
	}

	return p, func() {
		if err := p.Close(); err != nil {
			logger.Warn(ctx, "could not close amqp connection", zap.Error(err))
		}
	}, nil
}

// getProviders returns the mock feed and, when a URL is configured, an HTTP
// mirror of it.
func getProviders(cfg *config.Config) []jobfeed.Provider {
	providers := []jobfeed.Provider{
		static.New(root.MockJobFeed, static.Options{Latency: cfg.JobFeed.Latency}),
	}
	if cfg.JobFeed.HTTP.URL != "" {
		providers = append(providers, httpfeed.New(
			&http.Client{Timeout: cfg.HTTP.RequestTimeout},
			cfg.JobFeed.HTTP.Name,
			cfg.JobFeed.HTTP.URL,
			cfg.JobFeed.HTTP.Token,
		))
	}

	return providers
}
