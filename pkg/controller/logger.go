package controller

import (
	"context"
	"net/http"
	"time"

	"careerguide/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-Id"

// maxRequestIDLen bounds client supplied request IDs before they reach logs.
const maxRequestIDLen = 128

type requestIDKey struct{}

// RequestID returns the ID WithLogger assigned to the request, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)

	return id
}

type responseRecorder struct {
	http.ResponseWriter

	status int
	bytes  int
}

func (rec *responseRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *responseRecorder) Write(b []byte) (int, error) {
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += n

	return n, err //nolint: wrapcheck
}

func requestIDFrom(r *http.Request) string {
	id := r.Header.Get(RequestIDHeader)
	if id == "" || len(id) > maxRequestIDLen {
		return uuid.NewString()
	}
	for _, c := range id {
		if c < 0x21 || c > 0x7e {
			return uuid.NewString()
		}
	}

	return id
}

// WithLogger tags the request with an ID, echoes it in the response and binds
// a logger carrying it to the request context. One access line is logged per
// request; 5xx responses are logged at error level.
func WithLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := requestIDFrom(r)
		w.Header().Set(RequestIDHeader, requestID)

		ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
		ctx = logger.WithFields(ctx, zap.String("request_id", requestID))

		start := time.Now()
		rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctx))

		fields := []zap.Field{
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Int("bytes", rec.bytes),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", ClientIP(r)),
			zap.String("user_agent", r.UserAgent()),
		}
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			fields = append(fields, zap.String("forwarded_for", fwd))
		}
		if rec.status >= http.StatusInternalServerError {
			logger.Error(ctx, "request failed", fields...)

			return
		}
		logger.Info(ctx, "request served", fields...)
	})
}
