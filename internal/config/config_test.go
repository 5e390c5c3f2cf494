package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef-test"

// isolate переходит во временную директорию, чтобы не подхватить чужие config.yaml и .env
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadClient_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadClient(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.ServerURL)
	assert.Equal(t, "jubee-client.db", cfg.DBPath)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.RemoteTimeout)
	assert.Equal(t, time.Second, cfg.Epsilon)
	assert.Equal(t, 16, cfg.MaxParallel)
	assert.Equal(t, uint64(3), cfg.MaxRetries)
}

func TestLoadClient_Precedence(t *testing.T) {
	dir := isolate(t)

	writeFile(t, dir, "config.yaml", "server_url: http://from-file:1\nmax_parallel: 4\nepsilon: 3s\n")
	t.Setenv("JUBEE_SERVER_URL", "http://from-env:2")
	t.Setenv("JUBEE_REMOTE_TIMEOUT", "750ms")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String(FlagServer, "http://localhost:8080", "")
	flags.String(FlagDB, "jubee-client.db", "")
	require.NoError(t, flags.Parse([]string{"--db", "custom.db"}))

	cfg, err := LoadClient(LoadOptions{Flags: flags})
	require.NoError(t, err)

	assert.Equal(t, "http://from-env:2", cfg.ServerURL, "env overrides file")
	assert.Equal(t, "custom.db", cfg.DBPath, "changed flag wins")
	assert.Equal(t, 4, cfg.MaxParallel, "file overrides default")
	assert.Equal(t, 3*time.Second, cfg.Epsilon)
	assert.Equal(t, 750*time.Millisecond, cfg.RemoteTimeout)

	require.NoError(t, flags.Set(FlagServer, "https://from-flag"))
	cfg, err = LoadClient(LoadOptions{Flags: flags})
	require.NoError(t, err)
	assert.Equal(t, "https://from-flag", cfg.ServerURL, "flag overrides env")
}

func TestLoadClient_EnvFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, ".env", "JUBEE_DB_PATH=from-dotenv.db\n")
	t.Cleanup(func() { os.Unsetenv("JUBEE_DB_PATH") })

	cfg, err := LoadClient(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv.db", cfg.DBPath)
}

func TestLoadClient_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		opts LoadOptions
	}{
		{name: "missing explicit config file", opts: LoadOptions{ConfigFile: "nope.yaml"}},
		{name: "missing explicit env file", opts: LoadOptions{EnvFile: "nope.env"}},
		{name: "bad server url", env: map[string]string{"JUBEE_SERVER_URL": "localhost:8080"}},
		{name: "zero parallelism", env: map[string]string{"JUBEE_MAX_PARALLEL": "0"}},
		{name: "negative epsilon", env: map[string]string{"JUBEE_EPSILON": "-1s"}},
		{name: "unknown log level", env: map[string]string{"JUBEE_LOG_LEVEL": "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadClient(tt.opts)
			assert.Error(t, err)
		})
	}
}

func TestLoadServer(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "server.yaml", "address: 127.0.0.1:9090\nauth_rate_limit: 3\n")
	t.Setenv("JUBEE_JWT_SECRET", testSecret)
	t.Setenv("JUBEE_TOKEN_TTL", "1h")

	cfg, err := LoadServer(LoadOptions{ConfigFile: path})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Address)
	assert.Equal(t, testSecret, cfg.JWTSecret)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, 3, cfg.AuthRateLimit)
	assert.Equal(t, time.Minute, cfg.AuthRateWindow)
	assert.Equal(t, FormatJSON, cfg.LogFormat)
	assert.Equal(t, "jubeesync", cfg.JWTIssuer)
}

func TestLoadServer_RequiresSecret(t *testing.T) {
	isolate(t)

	_, err := LoadServer(LoadOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JUBEE_JWT_SECRET")

	t.Setenv("JUBEE_JWT_SECRET", "short")
	_, err = LoadServer(LoadOptions{})
	assert.Error(t, err)
}

func TestLoadServer_Flags(t *testing.T) {
	isolate(t)
	t.Setenv("JUBEE_JWT_SECRET", testSecret)

	flags := pflag.NewFlagSet("server", pflag.ContinueOnError)
	flags.String(FlagAddress, ":8080", "")
	flags.String(FlagLogFormat, FormatJSON, "")
	require.NoError(t, flags.Parse([]string{"--address", ":9999", "--log-format", "text"}))

	cfg, err := LoadServer(LoadOptions{Flags: flags})
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Address)
	assert.Equal(t, FormatText, cfg.LogFormat)

	require.NoError(t, flags.Set(FlagLogFormat, "xml"))
	_, err = LoadServer(LoadOptions{Flags: flags})
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warning", want: slog.LevelWarn},
		{in: " error ", want: slog.LevelError},
		{in: "trace", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewLogger(&buf, "warn", FormatJSON)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "collection", "drawing")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"collection":"drawing"`)

	buf.Reset()
	logger, err = NewLogger(&buf, "debug", FormatText)
	require.NoError(t, err)
	logger.Debug("details")
	assert.Contains(t, buf.String(), "level=DEBUG")

	_, err = NewLogger(&buf, "info", "xml")
	assert.Error(t, err)
}
