package server

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/jubeesync/internal/client/api"
	"github.com/iudanet/jubeesync/internal/models"
	"github.com/iudanet/jubeesync/internal/server/handlers"
	"github.com/iudanet/jubeesync/internal/server/storage/sqlite"
	pkgapi "github.com/iudanet/jubeesync/pkg/api"
)

func testConfig() Config {
	return Config{
		Address: "127.0.0.1:0",
		Version: "test",
		JWT: handlers.JWTConfig{
			Secret:         []byte("server-test-secret"),
			AccessTokenTTL: time.Hour,
		},
		AuthRateLimit:   100,
		AuthRateWindow:  time.Minute,
		ShutdownTimeout: time.Second,
	}
}

func newTestServer(t *testing.T, cfg Config) (*Server, *httptest.Server) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := sqlite.New(t.Context(), ":memory:", logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	srv := New(cfg, db, logger)
	t.Cleanup(srv.Close)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return srv, ts
}

func TestServer_EndToEnd(t *testing.T) {
	_, ts := newTestServer(t, testConfig())
	ctx := t.Context()
	client := api.NewClient(ts.URL, api.WithRetry(0, time.Millisecond))

	reg, err := client.Register(ctx, pkgapi.RegisterRequest{Username: "parent", Password: "sunflower2024"})
	require.NoError(t, err)
	require.NotEmpty(t, reg.UserID)

	token, err := client.Login(ctx, pkgapi.LoginRequest{Username: "parent", Password: "sunflower2024"})
	require.NoError(t, err)
	assert.Equal(t, reg.UserID, token.UserID)

	drawing := &models.Record{
		ID:         "d-1",
		Collection: models.CollectionDrawing,
		UpdatedAt:  time.Now().UnixMilli(),
		Fields:     map[string]any{"title": "Sunny day", "colors": float64(5)},
	}
	rev, err := client.UpsertRecord(ctx, token.AccessToken, drawing)
	require.NoError(t, err)
	assert.Positive(t, rev)

	records, current, err := client.ListRecords(ctx, token.AccessToken, models.CollectionDrawing, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "d-1", records[0].ID)
	assert.Equal(t, "Sunny day", records[0].Fields["title"])
	assert.Equal(t, rev, current)

	// повторная запись того же id не создает вторую запись
	drawing.Fields["title"] = "Rainy day"
	drawing.UpdatedAt++
	rev2, err := client.UpsertRecord(ctx, token.AccessToken, drawing)
	require.NoError(t, err)
	assert.Greater(t, rev2, rev)

	records, _, err = client.ListRecords(ctx, token.AccessToken, models.CollectionDrawing, rev)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Rainy day", records[0].Fields["title"])

	// другие коллекции не затронуты
	records, _, err = client.ListRecords(ctx, token.AccessToken, models.CollectionAchievement, 0)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestServer_Routes(t *testing.T) {
	_, ts := newTestServer(t, testConfig())

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "health", method: http.MethodGet, path: "/api/v1/health", wantStatus: http.StatusOK},
		{name: "records need token", method: http.MethodGet, path: "/api/v1/collections/drawing/records", wantStatus: http.StatusUnauthorized},
		{name: "upsert needs token", method: http.MethodPut, path: "/api/v1/collections/drawing/records/d-1", wantStatus: http.StatusUnauthorized},
		{name: "unknown route", method: http.MethodGet, path: "/api/v1/nothing", wantStatus: http.StatusNotFound},
		{name: "wrong method", method: http.MethodGet, path: "/api/v1/auth/login", wantStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequestWithContext(t.Context(), tt.method, ts.URL+tt.path, nil)
			require.NoError(t, err)

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestServer_AuthRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.AuthRateLimit = 2
	cfg.AuthRateWindow = time.Hour
	_, ts := newTestServer(t, cfg)

	client := api.NewClient(ts.URL, api.WithRetry(0, time.Millisecond))
	login := func() error {
		_, err := client.Login(t.Context(), pkgapi.LoginRequest{Username: "nobody", Password: "whatever123"})
		return err
	}

	for range 2 {
		var statusErr *api.StatusError
		require.ErrorAs(t, login(), &statusErr)
		assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	}

	var statusErr *api.StatusError
	require.ErrorAs(t, login(), &statusErr)
	assert.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)

	// лимит действует только на auth: health отвечает
	resp, err := http.Get(ts.URL + "/api/v1/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_ServeShutsDownOnCancel(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := sqlite.New(t.Context(), ":memory:", logger)
	require.NoError(t, err)
	defer db.Close()

	srv := New(testConfig(), db, logger)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	client := api.NewClient("http://"+ln.Addr().String(), api.WithRetry(0, time.Millisecond))
	health, err := client.Health(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "ok", health.Status)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
