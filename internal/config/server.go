package config

import (
	"errors"
	"fmt"
	"time"
)

// minSecretLength минимальная длина ключа подписи HS256
const minSecretLength = 16

// ServerConfig настройки удаленного хранилища
type ServerConfig struct {
	Address         string        `mapstructure:"address"`
	DBPath          string        `mapstructure:"db_path"`
	JWTSecret       string        `mapstructure:"jwt_secret"`
	JWTIssuer       string        `mapstructure:"jwt_issuer"`
	LogLevel        string        `mapstructure:"log_level"`
	LogFormat       string        `mapstructure:"log_format"`
	TokenTTL        time.Duration `mapstructure:"token_ttl"`
	AuthRateWindow  time.Duration `mapstructure:"auth_rate_window"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AuthRateLimit   int           `mapstructure:"auth_rate_limit"`
}

// Server flag names understood by LoadServer.
const (
	FlagAddress   = "address"
	FlagLogFormat = "log-format"
)

var serverDefaults = map[string]any{
	"address":          ":8080",
	"db_path":          "jubee-server.db",
	"jwt_secret":       "",
	"jwt_issuer":       "jubeesync",
	"log_level":        "info",
	"log_format":       FormatJSON,
	"token_ttl":        24 * time.Hour,
	"auth_rate_window": time.Minute,
	"shutdown_timeout": 10 * time.Second,
	"auth_rate_limit":  10,
}

// LoadServer loads the server configuration. JWT secret is required.
func LoadServer(opts LoadOptions) (*ServerConfig, error) {
	v, err := newViper(opts)
	if err != nil {
		return nil, err
	}

	for key, value := range serverDefaults {
		v.SetDefault(key, value)
	}

	err = bindFlags(v, opts.Flags, map[string]string{
		"address":    FlagAddress,
		"db_path":    FlagDB,
		"log_level":  FlagLogLevel,
		"log_format": FlagLogFormat,
	})
	if err != nil {
		return nil, err
	}

	var cfg ServerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode server config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid server config: %w", err)
	}

	return &cfg, nil
}

func (c *ServerConfig) validate() error {
	if c.Address == "" {
		return errors.New("address cannot be empty")
	}
	if c.DBPath == "" {
		return errors.New("db_path cannot be empty")
	}
	if len(c.JWTSecret) < minSecretLength {
		return fmt.Errorf("jwt_secret must be at least %d characters (set %s_JWT_SECRET)", minSecretLength, EnvPrefix)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.LogFormat != FormatJSON && c.LogFormat != FormatText {
		return fmt.Errorf("log_format must be %q or %q, got %q", FormatJSON, FormatText, c.LogFormat)
	}
	if c.TokenTTL <= 0 {
		return errors.New("token_ttl must be positive")
	}
	if c.AuthRateLimit <= 0 || c.AuthRateWindow <= 0 {
		return errors.New("auth rate limit and window must be positive")
	}
	return nil
}
