package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/crimetrack/crimetrack-be/internal/auth"
	"github.com/crimetrack/crimetrack-be/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireAuth(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", "crimetrack-api", time.Hour)
	token, err := tokens.Generate(models.User{ID: 7, Username: "officer1", Role: models.RoleOfficer})
	require.NoError(t, err)

	var gotClaims auth.Claims
	var reached bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		gotClaims, _ = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	gate := RequireAuth(tokens, next)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc123", wantStatus: http.StatusUnauthorized},
		{name: "bearer without token", header: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not-a-token", wantStatus: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer " + token, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached = false
			req := httptest.NewRequest(http.MethodGet, "/api/criminals", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			gate.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.True(t, reached)
				assert.Equal(t, int64(7), gotClaims.UserID)
				assert.Equal(t, models.RoleOfficer, gotClaims.Role)
			} else {
				assert.False(t, reached, "handler must not run without a valid token")
			}
		})
	}
}

func TestRequireAuthExpiredToken(t *testing.T) {
	expired := auth.NewTokenManager("test-secret", "crimetrack-api", -time.Minute)
	tokens := auth.NewTokenManager("test-secret", "crimetrack-api", time.Hour)

	token, err := expired.Generate(models.User{ID: 7})
	require.NoError(t, err)

	gate := RequireAuth(tokens, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with an expired token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/criminals", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token expired")
}
