package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/jubeesync/internal/server/handlers"
	"github.com/iudanet/jubeesync/pkg/api"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError,
	}
	handler := slog.NewTextHandler(os.Stdout, opts)
	return slog.New(handler)
}

var testJWTConfig = handlers.JWTConfig{
	Secret:         []byte("test-secret-key"),
	AccessTokenTTL: 15 * time.Minute,
}

// testHandler is a simple handler that checks context values
func testHandler(t *testing.T, expectedUserID, expectedUsername string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := handlers.GetUserID(r.Context())
		require.True(t, ok, "user_id should be in context")
		assert.Equal(t, expectedUserID, userID)

		username, ok := handlers.GetUsername(r.Context())
		require.True(t, ok, "username should be in context")
		assert.Equal(t, expectedUsername, username)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}

func TestAuthMiddleware_Success(t *testing.T) {
	token, _, err := handlers.GenerateAccessToken(testJWTConfig, "user123", "parent")
	require.NoError(t, err)

	wrappedHandler := AuthMiddleware(setupTestLogger(), testJWTConfig)(testHandler(t, "user123", "parent"))

	for _, scheme := range []string{"Bearer", "bearer"} {
		t.Run(scheme, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set("Authorization", scheme+" "+token)

			w := httptest.NewRecorder()
			wrappedHandler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "OK", w.Body.String())
		})
	}
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	expired, _, err := handlers.GenerateAccessToken(handlers.JWTConfig{
		Secret:         testJWTConfig.Secret,
		AccessTokenTTL: -time.Minute,
	}, "user123", "parent")
	require.NoError(t, err)

	foreign, _, err := handlers.GenerateAccessToken(handlers.JWTConfig{
		Secret:         []byte("wrong-secret"),
		AccessTokenTTL: time.Minute,
	}, "user123", "parent")
	require.NoError(t, err)

	tests := []struct {
		name        string
		header      string
		wantMessage string
	}{
		{"missing header", "", "missing token"},
		{"no scheme", "token-without-bearer", "invalid token format"},
		{"basic scheme", "Basic dXNlcjpwYXNz", "invalid token format"},
		{"empty token", "Bearer ", "invalid token format"},
		{"garbage token", "Bearer not.a.jwt", "invalid token"},
		{"expired token", "Bearer " + expired, "invalid token"},
		{"wrong secret", "Bearer " + foreign, "invalid token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })
			wrappedHandler := AuthMiddleware(setupTestLogger(), testJWTConfig)(next)

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := httptest.NewRecorder()
			wrappedHandler.ServeHTTP(w, req)

			assert.False(t, called, "next handler must not run")
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var resp api.ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}
