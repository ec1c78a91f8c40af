package v1handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"careerguide/internal/api/handler/v1handler"
	"careerguide/pkg/logger"
	"careerguide/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func TestNewError(t *testing.T) {
	teapot := serrors.NewKind("TEAPOT", http.StatusTeapot, false)

	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{
			name:    "plain error is internal",
			err:     errors.New("pq: connection refused"),
			status:  http.StatusInternalServerError,
			code:    "INTERNAL",
			message: "internal error",
		},
		{
			name:    "bare sentinel",
			err:     serrors.ErrNotFound,
			status:  http.StatusNotFound,
			code:    "NOT_FOUND",
			message: "resource not found",
		},
		{
			name:    "message is exposed",
			err:     serrors.With(serrors.ErrBadRequest, "invalid payload: missing interests"),
			status:  http.StatusBadRequest,
			code:    "BAD_REQUEST",
			message: "invalid payload: missing interests",
		},
		{
			name:    "cause is not exposed",
			err:     serrors.Wrap(serrors.ErrUnauthorized, errors.New("token is expired"), "invalid bearer token"),
			status:  http.StatusUnauthorized,
			code:    "UNAUTHORIZED",
			message: "invalid bearer token",
		},
		{
			name:    "internal message is hidden",
			err:     serrors.With(serrors.ErrInternal, "db password is hunter2"),
			status:  http.StatusInternalServerError,
			code:    "INTERNAL",
			message: "internal error",
		},
		{
			name:    "wrapped kind",
			err:     fmt.Errorf("importing feed: %w", serrors.KindOnly(serrors.ErrRateLimited)),
			status:  http.StatusTooManyRequests,
			code:    "RATE_LIMITED",
			message: "too many requests",
		},
		{
			name:    "dataset not loaded",
			err:     serrors.With(serrors.ErrUnavailable, "career dataset is not loaded"),
			status:  http.StatusServiceUnavailable,
			code:    "UNAVAILABLE",
			message: "career dataset is not loaded",
		},
		{
			name:    "kind without default message",
			err:     serrors.KindOnly(teapot),
			status:  http.StatusTeapot,
			code:    "TEAPOT",
			message: "TEAPOT",
		},
	}

	h := v1handler.New(v1handler.Deps{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := h.NewError(context.Background(), tt.err)
			require.Equal(t, tt.status, res.StatusCode)
			require.Equal(t, tt.code, res.Response.Code)
			require.Equal(t, tt.message, res.Response.Message)
		})
	}
}

func TestNewError_StatusFollowsKind(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	for _, kind := range []serrors.Kind{
		serrors.ErrForbidden, serrors.ErrConflict, serrors.ErrTimeout, serrors.ErrUnavailable,
	} {
		res := h.NewError(context.Background(), serrors.KindOnly(kind))
		require.Equal(t, kind.Status(), res.StatusCode, kind.Error())
	}
}
