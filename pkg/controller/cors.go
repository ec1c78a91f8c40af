package controller

import (
	"net/http"
	"slices"
)

const (
	corsAllowHeaders = "Content-Type, Authorization, Accept, Origin, Cache-Control, X-Request-Id"
	corsAllowMethods = "GET, POST, DELETE, OPTIONS"
)

// WithCORS answers cross-origin requests from the allowed origins. An empty
// list or one containing "*" allows any origin without credentials; a named
// origin is echoed back and may send credentials. Preflight requests end here
// with 204.
func WithCORS(allowed []string, next http.Handler) http.Handler {
	anyOrigin := len(allowed) == 0 || slices.Contains(allowed, "*")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		origin := r.Header.Get("Origin")

		switch {
		case anyOrigin:
			h.Set("Access-Control-Allow-Origin", "*")
		case origin != "" && slices.Contains(allowed, origin):
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Add("Vary", "Origin")
		}

		if h.Get("Access-Control-Allow-Origin") != "" {
			h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
			h.Set("Access-Control-Allow-Methods", corsAllowMethods)
			h.Set("Access-Control-Expose-Headers", RequestIDHeader)
		}

		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			w.WriteHeader(http.StatusNoContent)

			return
		}

		next.ServeHTTP(w, r)
	})
}
