// Package v1handler implements the v1 HTTP API.
package v1handler

import (
	"context"
	"net/http"
	"strconv"

	"careerguide/internal/careermap"
	"careerguide/internal/jobboard"
	"careerguide/internal/saved"
	"careerguide/pkg/catalog"
	"careerguide/pkg/logger"
	"careerguide/pkg/serrors"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// CatalogReloader reloads the career dataset.
type CatalogReloader interface {
	Reload(ctx context.Context) (*catalog.Snapshot, error)
}

// Deps are the services behind the API.
type Deps struct {
	Guide    careermap.Guide
	Board    jobboard.Board
	Saved    saved.Service
	Reloader CatalogReloader
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Response is the body of every error response.
type Response struct {
	Code    string
	Message string
}

// ErrorResponse is an error mapped to its HTTP representation.
type ErrorResponse struct {
	StatusCode int
	Response   Response
}

// defaultMessages answer errors whose kind carries no message of its own.
//
//nolint:gochecknoglobals
var defaultMessages = map[serrors.Kind]string{
	serrors.ErrNotFound:     "resource not found",
	serrors.ErrUnauthorized: "unauthorized",
	serrors.ErrForbidden:    "forbidden",
	serrors.ErrBadRequest:   "bad request",
	serrors.ErrConflict:     "conflict",
	serrors.ErrInternal:     "internal error",
	serrors.ErrTimeout:      "request timed out",
	serrors.ErrUnavailable:  "service unavailable",
	serrors.ErrRateLimited:  "too many requests",
}

// NewError maps err to a status code and a response body. Errors without a
// semantic kind, and internal errors, never expose their message.
func (h Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	kind := serrors.KindOf(err)
	if kind == nil {
		kind = serrors.ErrInternal
	}

	message := defaultMessages[kind]
	if msg := serrors.MessageOf(err); msg != "" && kind != serrors.ErrInternal {
		message = msg
	}
	if message == "" {
		message = kind.Error()
	}

	status := kind.Status()
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	return &ErrorResponse{
		StatusCode: status,
		Response:   Response{Code: kind.Error(), Message: message},
	}
}

func (h Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	if res.StatusCode == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.Obj(func(e *jx.Encoder) {
		e.Field("code", func(e *jx.Encoder) { e.Str(res.Response.Code) })
		e.Field("message", func(e *jx.Encoder) { e.Str(res.Response.Message) })
	})
	writeJSON(w, res.StatusCode, e)
}

// Routes registers the v1 endpoints on mux. Paths include the /v1 prefix.
func (h Handler) Routes(mux *http.ServeMux, sec *SecHandler) {
	mux.HandleFunc("GET /v1/stages", h.ListStages)
	mux.HandleFunc("GET /v1/goals", h.ListGoals)
	mux.HandleFunc("GET /v1/interests", h.ListInterests)
	mux.HandleFunc("GET /v1/paths", h.GeneratePath)
	mux.HandleFunc("GET /v1/careers", h.ListCareers)
	mux.HandleFunc("GET /v1/careers/match", h.MatchCareersQuery)
	mux.HandleFunc("POST /v1/careers/match", h.MatchCareers)
	mux.HandleFunc("GET /v1/careers/{id}", h.GetCareer)
	mux.HandleFunc("GET /v1/careers/{id}/path", h.PathToCareer)
	mux.HandleFunc("GET /v1/ideas", h.ListIdeas)
	mux.HandleFunc("GET /v1/ideas/{id}", h.GetIdea)
	mux.HandleFunc("GET /v1/jobs", h.ListJobs)
	mux.HandleFunc("GET /v1/jobs/{id}", h.GetJob)

	mux.Handle("GET /v1/saved", sec.Authenticate(http.HandlerFunc(h.ListSaved)))
	mux.Handle("POST /v1/saved", sec.Authenticate(http.HandlerFunc(h.CreateSaved)))
	mux.Handle("DELETE /v1/saved/{id}", sec.Authenticate(http.HandlerFunc(h.DeleteSaved)))

	mux.Handle("POST /v1/admin/catalog/reload", sec.Authenticate(sec.RequireAdmin(http.HandlerFunc(h.ReloadCatalog))))
	mux.Handle("POST /v1/admin/jobs/refresh", sec.Authenticate(sec.RequireAdmin(http.HandlerFunc(h.RefreshJobs))))
}

// queryInt parses an optional non-negative integer query parameter.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, serrors.With(serrors.ErrBadRequest, "%s must be a non-negative integer", name)
	}

	return n, nil
}
