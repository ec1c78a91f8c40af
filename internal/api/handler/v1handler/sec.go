package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"

	"careerguide/internal/config"
	"careerguide/pkg/domain"
	"careerguide/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type ctxKey string

const (
	// UserIDKey holds the domain.UserID of an authenticated request.
	UserIDKey ctxKey = "UserID"
	// AdminKey holds whether the bearer token carries the admin claim.
	AdminKey ctxKey = "Admin"
)

// Claims are the JWT claims accepted by the API.
type Claims struct {
	jwt.RegisteredClaims
	// Admin grants access to the /v1/admin endpoints.
	Admin bool `json:"adm,omitempty"`
}

// BearerAuth is the token of an Authorization: Bearer header.
type BearerAuth struct {
	Token string
}

type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key verifying RS256 tokens. Without
	// one every authenticated request is rejected.
	PublicKey string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

type SecHandler struct {
	publicKey *rsa.PublicKey
	parser    *jwt.Parser
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	s := &SecHandler{
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
	if opts == nil || opts.PublicKey == "" {
		return s, nil
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}
	s.publicKey = key

	return s, nil
}

// HandleBearerAuth verifies t and stores the subject as the user ID in ctx.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, t BearerAuth) (context.Context, error) {
	if s.publicKey == nil {
		return ctx, serrors.With(serrors.ErrUnauthorized, "authentication is not configured")
	}

	var claims Claims
	_, err := s.parser.ParseWithClaims(t.Token, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	})
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	ctx = context.WithValue(ctx, UserIDKey, domain.UserID(userID))
	ctx = context.WithValue(ctx, AdminKey, claims.Admin)

	return ctx, nil
}

// Authenticate rejects requests without a valid bearer token.
func (s *SecHandler) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			Handler{}.fail(w, r, serrors.With(serrors.ErrUnauthorized, "bearer token is required"))

			return
		}

		ctx, err := s.HandleBearerAuth(r.Context(), BearerAuth{Token: strings.TrimSpace(token)})
		if err != nil {
			Handler{}.fail(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin rejects authenticated requests without the admin claim. It
// must run after Authenticate.
func (s *SecHandler) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if admin, _ := r.Context().Value(AdminKey).(bool); !admin {
			Handler{}.fail(w, r, serrors.With(serrors.ErrForbidden, "admin token required"))

			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetUserIDFromContext returns the authenticated user, or the zero ID.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	userID, _ := ctx.Value(UserIDKey).(domain.UserID)

	return userID
}
