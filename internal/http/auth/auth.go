// Package auth provides the bearer-token middleware that scopes every
// request to a space. All domain data is partitioned by space_id; the
// claim is the only tenancy input handlers trust.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey struct{}

var spaceIDKey contextKey

// Middleware validates the Authorization bearer token and stores the
// space_id claim in the request context.
func Middleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			spaceID, err := parseSpaceID(raw, secret)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSpaceID(r.Context(), spaceID)))
		})
	}
}

func parseSpaceID(raw, secret string) (uuid.UUID, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}

		return []byte(secret), nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("parsing token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, fmt.Errorf("unexpected claims type %T", token.Claims)
	}

	raw, ok = claims["space_id"].(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("space_id claim is missing")
	}

	spaceID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parsing space_id claim: %w", err)
	}

	return spaceID, nil
}

// WithSpaceID returns a context carrying the space scope. Exposed for
// handler tests and the scheduler, which runs outside the middleware.
func WithSpaceID(ctx context.Context, spaceID uuid.UUID) context.Context {
	return context.WithValue(ctx, spaceIDKey, spaceID)
}

// SpaceID returns the space scope set by Middleware.
func SpaceID(ctx context.Context) (uuid.UUID, bool) {
	spaceID, ok := ctx.Value(spaceIDKey).(uuid.UUID)
	return spaceID, ok
}
