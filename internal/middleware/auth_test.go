package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayush/org-chart-api/internal/auth"
)

func newProtected(t *testing.T, issuer *auth.TokenIssuer) http.Handler {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFrom(r.Context())
		require.NotNil(t, claims)
		w.WriteHeader(http.StatusOK)
	})
	return RequireAuth(issuer)(next)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	issuer := auth.NewTokenIssuer("secret", time.Hour)
	token, err := issuer.Issue(1, "alice")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/departments", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	newProtected(t, issuer).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuth_Rejections(t *testing.T) {
	issuer := auth.NewTokenIssuer("secret", time.Hour)
	expired, err := auth.NewTokenIssuer("secret", -time.Minute).Issue(1, "alice")
	require.NoError(t, err)
	forged, err := auth.NewTokenIssuer("other", time.Hour).Issue(1, "alice")
	require.NoError(t, err)

	cases := map[string]string{
		"no header":     "",
		"not bearer":    "Basic abc",
		"empty token":   "Bearer ",
		"garbage token": "Bearer garbage",
		"expired":       "Bearer " + expired,
		"bad signature": "Bearer " + forged,
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/departments", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()
			newProtected(t, issuer).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error":"not authenticated"}`, rec.Body.String())
		})
	}
}
