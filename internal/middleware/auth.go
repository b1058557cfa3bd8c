package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/crimetrack/crimetrack-be/internal/auth"
	"github.com/crimetrack/crimetrack-be/internal/http/respond"
)

type contextKey struct{}

var claimsKey contextKey

// RequireAuth rejects any request without a valid bearer token before the
// wrapped handler runs, and attaches the verified claims to the context.
func RequireAuth(tokens *auth.TokenManager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			respond.Error(w, http.StatusUnauthorized, "Authorization header is required")
			return
		}
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			respond.Error(w, http.StatusUnauthorized, "Authorization header must be in the format 'Bearer <token>'")
			return
		}
		claims, err := tokens.Verify(strings.TrimSpace(token))
		if err != nil {
			respond.Error(w, http.StatusUnauthorized, authFailureMessage(err))
			return
		}
		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromContext returns the claims stored by RequireAuth, if any.
func ClaimsFromContext(ctx context.Context) (auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(auth.Claims)
	return claims, ok
}

func authFailureMessage(err error) string {
	if errors.Is(err, auth.ErrExpiredToken) {
		return "Token expired"
	}
	return "Invalid token"
}
