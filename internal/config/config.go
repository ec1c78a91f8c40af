package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Storage drivers.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config represents the application configuration structure.
// Values are read from a YAML file and can be overridden by environment
// variables.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// Pprof mounts the profiling handlers under /debug/pprof/
		Pprof bool `env:"HTTP_PPROF" env-default:"false" yaml:"pprof"`
		// AllowedOrigins lists the origins allowed to call the API from a browser, "*" allows any
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-separator:"," env-default:"*" yaml:"allowedOrigins"`
		// TrustedProxies lists CIDRs of reverse proxies whose X-Forwarded-For is believed; empty trusts none
		TrustedProxies []string `env:"HTTP_TRUSTED_PROXIES" env-separator:"," yaml:"trustedProxies"`
	} `yaml:"http"`

	// RateLimit configures the per-client token bucket in front of the API
	RateLimit struct {
		// RPS is the sustained number of requests per second per client; zero disables the limit
		RPS float64 `env:"RATE_LIMIT_RPS" env-default:"20" yaml:"rps"`
		// Burst is the bucket size
		Burst int `env:"RATE_LIMIT_BURST" env-default:"40" yaml:"burst"`
		// IdleTTL is how long an unused client bucket is kept
		IdleTTL time.Duration `env:"RATE_LIMIT_IDLE_TTL" env-default:"10m" yaml:"idleTTL"`
	} `yaml:"rateLimit"`

	// Storage selects where job listings and saved items live
	Storage struct {
		// Driver is "memory" or "postgres"
		Driver string `env:"STORAGE_DRIVER" env-default:"memory" yaml:"driver"`
	} `yaml:"storage"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"careerguide" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Dataset describes where the career dataset is loaded from. With neither
	// Path nor S3.Bucket set the embedded dataset is used.
	Dataset struct {
		// Path is a local JSON or YAML dataset file
		Path string `env:"DATASET_PATH" yaml:"path"`
		// Watch reloads the dataset when the file at Path changes
		Watch bool `env:"DATASET_WATCH" env-default:"false" yaml:"watch"`
		// S3 points at a dataset object in an S3 compatible bucket (AWS, R2, MinIO)
		S3 struct {
			Bucket          string `env:"DATASET_S3_BUCKET" yaml:"bucket"`
			Key             string `env:"DATASET_S3_KEY" env-default:"careermap.json" yaml:"key"`
			Region          string `env:"DATASET_S3_REGION" env-default:"auto" yaml:"region"`
			Endpoint        string `env:"DATASET_S3_ENDPOINT" yaml:"endpoint"`
			AccessKeyID     string `env:"DATASET_S3_ACCESS_KEY_ID" yaml:"accessKeyID"`
			SecretAccessKey string `env:"DATASET_S3_SECRET_ACCESS_KEY" yaml:"secretAccessKey"`
		} `yaml:"s3"`
	} `yaml:"dataset"`

	// Guide tunes path generation and interest matching
	Guide struct {
		// CacheTTL is how long generated paths and matches are cached; zero disables caching
		CacheTTL time.Duration `env:"GUIDE_CACHE_TTL" env-default:"10m" yaml:"cacheTTL"`
	} `yaml:"guide"`

	// Cache configures the shared result cache
	Cache struct {
		Redis struct {
			// Addr enables the Redis cache when set
			Addr     string `env:"REDIS_ADDR" yaml:"addr"`
			Password string `env:"REDIS_PASSWORD" yaml:"password"`
			DB       int    `env:"REDIS_DB" env-default:"0" yaml:"db"`
			Prefix   string `env:"REDIS_PREFIX" env-default:"careerguide:" yaml:"prefix"`
		} `yaml:"redis"`
	} `yaml:"cache"`

	// JobFeed configures job feed imports
	JobFeed struct {
		// RefreshInterval is how often every provider is re-imported
		RefreshInterval time.Duration `env:"JOB_FEED_REFRESH_INTERVAL" env-default:"1h" yaml:"refreshInterval"`
		// MaxAttempts is the maximum number of attempts for a refresh job
		MaxAttempts int `env:"JOB_FEED_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
		// Retention drops listings posted longer ago than this after each import
		Retention time.Duration `env:"JOB_FEED_RETENTION" env-default:"720h" yaml:"retention"`
		// Latency is the simulated fetch delay of the static feed
		Latency time.Duration `env:"JOB_FEED_LATENCY" env-default:"0s" yaml:"latency"`
		// HTTP adds a provider mirroring a feed in the static feed format over HTTP
		HTTP struct {
			Name  string `env:"JOB_FEED_HTTP_NAME" env-default:"mirror" yaml:"name"`
			URL   string `env:"JOB_FEED_HTTP_URL" yaml:"url"`
			Token string `env:"JOB_FEED_HTTP_TOKEN" yaml:"token"`
		} `yaml:"http"`
	} `yaml:"jobFeed"`

	// AMQP enables publishing feed events when URL is set
	AMQP struct {
		URL      string `env:"AMQP_URL" yaml:"url"`
		Exchange string `env:"AMQP_EXCHANGE" env-default:"careerguide.events" yaml:"exchange"`
	} `yaml:"amqp"`

	// Worker configures background job processing
	Worker struct {
		// MaxWorkers is the number of refresh jobs processed concurrently
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
	} `yaml:"worker"`

	// JWT holds the RS256 key pair used for bearer authentication
	JWT struct {
		// PublicKey verifies bearer tokens (PEM)
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey signs tokens in the jwt command (PEM)
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
// Variables from a .env file in the working directory are exported first. When
// the config file does not exist the configuration is read from the
// environment alone.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not read .env file: %w", err)
	}

	var cfg Config
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	if c.Dataset.Watch && c.Dataset.Path == "" {
		return errors.New("dataset watch requires a dataset path")
	}

	return nil
}
