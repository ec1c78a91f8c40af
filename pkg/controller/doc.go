// Package controller holds the HTTP middlewares and small handlers the API
// server is assembled from.
//
// Middlewares, outermost first as the server applies them: WithLogger tags
// requests with an ID and writes access logs, WithRateLimit throttles each
// client IP, WithCORS answers cross-origin requests.
//
// Handlers: Healthz for liveness probes and PprofMux, which serves
// net/http/pprof under PprofPrefix.
package controller
