package main

import (
	"context"
	"fmt"
	"time"

	"careerguide/internal/api/handler/v1handler"
	"careerguide/internal/config"
	"careerguide/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// JWTCommand constructs the 'jwt' subcommand that generates a signed RS256 JWT
// for a given subject (user ID) and TTL using the configured private key.
// Without --subject a random user ID is used.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates JWT token for given user ID",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			subject, _ := cmd.Flags().GetString("subject")
			ttl, _ := cmd.Flags().GetDuration("ttl")
			admin, _ := cmd.Flags().GetBool("admin")

			if subject == "" {
				subject = uuid.NewString()
			} else if _, err := uuid.Parse(subject); err != nil {
				logger.Fatal(ctx, "subject must be a UUID", zap.Error(err))
			}

			key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(cfg.JWT.PrivateKey))
			if err != nil {
				logger.Fatal(ctx, "could not parse RSA private key", zap.Error(err))
			}

			now := time.Now()
			claims := v1handler.Claims{
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   subject,
					ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
					IssuedAt:  jwt.NewNumericDate(now),
					NotBefore: jwt.NewNumericDate(now),
				},
				Admin: admin,
			}
			signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
			if err != nil {
				logger.Fatal(ctx, "could not sign JWT", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "JWT subject, a user UUID (random when empty)")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")
	cmd.Flags().Bool("admin", false, "Grant access to the admin endpoints")

	return cmd
}
