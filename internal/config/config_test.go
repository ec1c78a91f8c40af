package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"careerguide/internal/config"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load("missing.yml")
	require.NoError(t, err)
	require.Equal(t, config.StorageMemory, cfg.Storage.Driver)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, time.Hour, cfg.JobFeed.RefreshInterval)
	require.Equal(t, 10*time.Minute, cfg.Guide.CacheTTL)
	require.False(t, cfg.HTTP.Pprof)
	require.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	require.Empty(t, cfg.HTTP.TrustedProxies)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
storage:
  driver: postgres
jobFeed:
  retention: 48h
dataset:
  path: data/careermap.yaml
  watch: true
`), 0o600))
	t.Setenv("JOB_FEED_MAX_ATTEMPTS", "9")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://app.example,https://admin.example")
	t.Setenv("HTTP_TRUSTED_PROXIES", "10.0.0.0/8,192.168.1.1")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, config.StoragePostgres, cfg.Storage.Driver)
	require.Equal(t, 48*time.Hour, cfg.JobFeed.Retention)
	require.Equal(t, 9, cfg.JobFeed.MaxAttempts)
	require.True(t, cfg.Dataset.Watch)
	require.Equal(t, []string{"https://app.example", "https://admin.example"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, []string{"10.0.0.0/8", "192.168.1.1"}, cfg.HTTP.TrustedProxies)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("REDIS_ADDR=cache:6379\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("REDIS_ADDR") })

	cfg, err := config.Load("config.yml")
	require.NoError(t, err)
	require.Equal(t, "cache:6379", cfg.Cache.Redis.Addr)
}

func TestLoad_Invalid(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv("STORAGE_DRIVER", "sqlite")
	_, err := config.Load("config.yml")
	require.ErrorContains(t, err, "unknown storage driver")

	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("DATASET_WATCH", "true")
	_, err = config.Load("config.yml")
	require.ErrorContains(t, err, "dataset watch requires")
}
