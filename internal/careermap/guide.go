// Package careermap answers questions about the career dataset: which stages
// and careers exist, how to get from a stage to a goal and which careers fit a
// set of interests.
package careermap

import (
	"context"
	"slices"
	"strings"
	"time"

	"careerguide/pkg/cache"
	"careerguide/pkg/catalog"
	"careerguide/pkg/domain"
	"careerguide/pkg/logger"
	"careerguide/pkg/metrics"
	"careerguide/pkg/serrors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const instrumentationName = "careerguide/careermap"

// Options configures a Guide.
type Options struct {
	// CacheTTL is how long computed paths and matches stay cached. Zero
	// disables caching.
	CacheTTL       time.Duration
	MeterProvider  metric.MeterProvider
	TracerProvider trace.TracerProvider
}

// NewOptions returns Options with the global otel providers.
func NewOptions(cacheTTL time.Duration) *Options {
	return &Options{
		CacheTTL:       cacheTTL,
		MeterProvider:  otel.GetMeterProvider(),
		TracerProvider: otel.GetTracerProvider(),
	}
}

type guide struct {
	store   *catalog.Store
	cache   cache.Cache
	options *Options

	tracer   trace.Tracer
	calls    metric.Int64Counter
	failures metric.Int64Counter
	latency  metric.Float64Histogram
}

var _ Guide = (*guide)(nil)

// New creates a Guide reading the dataset from store. A nil c disables caching.
func New(store *catalog.Store, c cache.Cache, options *Options) (Guide, error) {
	if options == nil {
		options = NewOptions(0)
	}
	if options.MeterProvider == nil {
		options.MeterProvider = otel.GetMeterProvider()
	}
	if options.TracerProvider == nil {
		options.TracerProvider = otel.GetTracerProvider()
	}
	if c == nil {
		c = cache.Nop{}
	}

	meter := options.MeterProvider.Meter(instrumentationName)

	calls, err := meter.Int64Counter("careermap.calls",
		metric.WithDescription("Number of guide operations served."))
	if err != nil {
		return nil, err
	}

	failures, err := meter.Int64Counter("careermap.failures",
		metric.WithDescription("Number of guide operations that returned an error."))
	if err != nil {
		return nil, err
	}

	latency, err := meter.Float64Histogram("careermap.duration",
		metric.WithDescription("Duration of guide operations."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, err
	}

	return &guide{
		store:    store,
		cache:    c,
		options:  options,
		tracer:   options.TracerProvider.Tracer(instrumentationName),
		calls:    calls,
		failures: failures,
		latency:  latency,
	}, nil
}

// observe starts a span for op and returns a func recording its outcome.
func (g *guide) observe(ctx context.Context, op string) (context.Context, func(error)) {
	start := time.Now()
	ctx, span := g.tracer.Start(ctx, "careermap."+op)

	return ctx, func(err error) {
		attrs := metric.WithAttributes(attribute.String("op", op))
		g.calls.Add(ctx, 1, attrs)
		g.latency.Record(ctx, time.Since(start).Seconds(), attrs)
		if err != nil {
			kind := serrors.ErrInternal.Error()
			if k := serrors.KindOf(err); k != nil {
				kind = k.Error()
			}
			g.failures.Add(ctx, 1, metric.WithAttributes(
				attribute.String("op", op),
				attribute.String("kind", kind),
			))
			span.RecordError(err)
			span.SetStatus(codes.Error, serrors.MessageOf(err))
		}
		span.End()
	}
}

func (g *guide) snapshot() (*catalog.Snapshot, error) {
	snap := g.store.Current()
	if snap == nil {
		return nil, serrors.With(serrors.ErrUnavailable, "career dataset is not loaded")
	}

	return snap, nil
}

func (g *guide) cacheKey(snap *catalog.Snapshot, op string, parts ...string) string {
	return "careermap:" + snap.Version + ":" + op + ":" + strings.Join(parts, "|")
}

// cacheGet reports whether key was found and decoded into out. Cache errors
// are logged and treated as misses.
func (g *guide) cacheGet(ctx context.Context, key string, out any) bool {
	if g.options.CacheTTL <= 0 {
		return false
	}

	found, err := cache.GetJSON(ctx, g.cache, key, out)
	if err != nil {
		logger.Warn(ctx, "could not read from cache", zap.String("key", key), zap.Error(err))

		return false
	}

	return found
}

func (g *guide) cacheSet(ctx context.Context, key string, v any) {
	if g.options.CacheTTL <= 0 {
		return
	}

	if err := cache.SetJSON(ctx, g.cache, key, v, g.options.CacheTTL); err != nil {
		logger.Warn(ctx, "could not write to cache", zap.String("key", key), zap.Error(err))
	}
}

func (g *guide) Stages(context.Context) ([]domain.Stage, error) {
	snap, err := g.snapshot()
	if err != nil {
		return nil, err
	}

	return slices.Clone(snap.Dataset.Stages), nil
}

func (g *guide) Goals(context.Context) ([]domain.Goal, error) {
	snap, err := g.snapshot()
	if err != nil {
		return nil, err
	}

	return slices.Clone(snap.Dataset.Goals), nil
}

func (g *guide) Interests(context.Context) ([]domain.InterestCategory, error) {
	snap, err := g.snapshot()
	if err != nil {
		return nil, err
	}

	return slices.Clone(snap.Dataset.Interests), nil
}

// Careers lists careers, optionally restricted to one stream (case-insensitive).
func (g *guide) Careers(_ context.Context, stream string) ([]domain.Career, error) {
	snap, err := g.snapshot()
	if err != nil {
		return nil, err
	}

	stream = strings.TrimSpace(stream)
	out := make([]domain.Career, 0, len(snap.Dataset.Careers))
	for _, c := range snap.Dataset.Careers {
		if stream != "" && !strings.EqualFold(c.Stream, stream) {
			continue
		}
		out = append(out, c)
	}

	return out, nil
}

func (g *guide) Career(_ context.Context, id string) (*domain.Career, error) {
	snap, err := g.snapshot()
	if err != nil {
		return nil, err
	}

	c, ok := snap.Career(catalog.NormalizeID(id))
	if !ok {
		return nil, serrors.With(serrors.ErrNotFound, "career %q not found", id)
	}

	return &c, nil
}

func (g *guide) Idea(_ context.Context, id string) (*domain.BusinessIdea, error) {
	snap, err := g.snapshot()
	if err != nil {
		return nil, err
	}

	idea, ok := snap.Idea(catalog.NormalizeID(id))
	if !ok {
		return nil, serrors.With(serrors.ErrNotFound, "business idea %q not found", id)
	}

	return &idea, nil
}
