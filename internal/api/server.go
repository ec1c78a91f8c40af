// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the career guide service.
package api

import (
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"careerguide/internal/api/handler/v1handler"
	"careerguide/internal/config"
	"careerguide/pkg/controller"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// timeoutBody is written by http.TimeoutHandler when RequestTimeout elapses.
const timeoutBody = `{"code":"TIMEOUT","message":"request timed out"}`

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	// SecHandlerOptions configures the bearer authentication of v1 endpoints.
	SecHandlerOptions *v1handler.SecHandlerOptions

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// Pprof mounts net/http/pprof under /debug/pprof/.
	Pprof bool
	// AllowedOrigins configures CORS. Empty allows any origin.
	AllowedOrigins []string
	// TrustedProxies lists CIDRs or addresses of reverse proxies whose
	// X-Forwarded-For is used to identify rate limited clients.
	TrustedProxies []string
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		Pprof:             cfg.HTTP.Pprof,
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
		TrustedProxies:    cfg.HTTP.TrustedProxies,
	}
}

type Deps struct {
	v1handler.Deps

	// Gatherer backs the metrics endpoint. Defaults to prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
	// RateLimiter limits requests per client. Nil disables limiting.
	RateLimiter *controller.RateLimiter
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes
// - pprof endpoints for profiling, when enabled
// - a liveness probe on /healthz
// The mux is wrapped with CORS, rate limiting and logging middlewares and a request timeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewHandler(deps, opts)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}

// NewHandler builds the root handler served by NewServer.
func NewHandler(deps Deps, opts Options) (http.Handler, error) {
	mux := http.NewServeMux()

	// prometheus metrics server
	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	metricsPath := opts.MetricsPath
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	mux.Handle("GET "+metricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// v1 specs file
	mux.HandleFunc("GET /specs/v1.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("/v1/docs/", v5emb.New(
		"Career Guide Service",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	// v1 api
	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	v1handler.New(deps.Deps).Routes(mux, secHandler)

	if opts.Pprof {
		mux.Handle(controller.PprofPrefix, controller.PprofMux())
	}
	mux.HandleFunc("GET /healthz", controller.Healthz)

	handler := controller.WithCORS(opts.AllowedOrigins, mux)
	if deps.RateLimiter != nil {
		proxies, err := controller.ParseTrustedProxies(opts.TrustedProxies)
		if err != nil {
			return nil, err //nolint: wrapcheck
		}
		handler = controller.WithRateLimit(deps.RateLimiter, proxies, handler)
	}
	handler = controller.WithLogger(handler)

	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, timeoutBody)
	}

	return handler, nil
}
