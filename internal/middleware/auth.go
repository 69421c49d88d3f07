package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ayush/org-chart-api/internal/auth"
	"github.com/ayush/org-chart-api/internal/httpx"
)

type contextKey string

const claimsKey contextKey = "auth_claims"

// RequireAuth validates the Authorization bearer token and injects its
// claims into the request context. Every failure mode responds the same
// way so callers cannot probe which check rejected them.
func RequireAuth(issuer *auth.TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				httpx.Error(w, http.StatusUnauthorized, "not authenticated")
				return
			}

			claims, err := issuer.Parse(token)
			if err != nil {
				httpx.Error(w, http.StatusUnauthorized, "not authenticated")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFrom returns the authenticated claims stored by RequireAuth, or
// nil outside an authenticated request.
func ClaimsFrom(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey).(*auth.Claims)
	return claims
}
