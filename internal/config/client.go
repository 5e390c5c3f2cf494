package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// ClientConfig настройки устройства: локальное хранилище, сервер и параметры синхронизации
type ClientConfig struct {
	ServerURL     string        `mapstructure:"server_url"`
	DBPath        string        `mapstructure:"db_path"`
	LogLevel      string        `mapstructure:"log_level"`
	HTTPTimeout   time.Duration `mapstructure:"http_timeout"`
	RetryBase     time.Duration `mapstructure:"retry_base"`
	RemoteTimeout time.Duration `mapstructure:"remote_timeout"`
	Epsilon       time.Duration `mapstructure:"epsilon"`
	MaxRetries    uint64        `mapstructure:"max_retries"`
	MaxParallel   int           `mapstructure:"max_parallel"`
}

// Client flag names understood by LoadClient.
const (
	FlagServer   = "server"
	FlagDB       = "db"
	FlagLogLevel = "log-level"
)

var clientDefaults = map[string]any{
	"server_url":     "http://localhost:8080",
	"db_path":        "jubee-client.db",
	"log_level":      "warn",
	"http_timeout":   30 * time.Second,
	"retry_base":     200 * time.Millisecond,
	"remote_timeout": 5 * time.Second,
	"epsilon":        time.Second,
	"max_retries":    3,
	"max_parallel":   16,
}

// LoadClient loads the client configuration.
func LoadClient(opts LoadOptions) (*ClientConfig, error) {
	v, err := newViper(opts)
	if err != nil {
		return nil, err
	}

	for key, value := range clientDefaults {
		v.SetDefault(key, value)
	}

	err = bindFlags(v, opts.Flags, map[string]string{
		"server_url": FlagServer,
		"db_path":    FlagDB,
		"log_level":  FlagLogLevel,
	})
	if err != nil {
		return nil, err
	}

	var cfg ClientConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode client config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	return &cfg, nil
}

func (c *ClientConfig) validate() error {
	u, err := url.Parse(c.ServerURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("server_url must be an http(s) URL, got %q", c.ServerURL)
	}
	if c.DBPath == "" {
		return errors.New("db_path cannot be empty")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.MaxParallel <= 0 {
		return fmt.Errorf("max_parallel must be positive, got %d", c.MaxParallel)
	}
	if c.RemoteTimeout <= 0 || c.HTTPTimeout <= 0 {
		return errors.New("timeouts must be positive")
	}
	if c.Epsilon < 0 {
		return fmt.Errorf("epsilon cannot be negative, got %s", c.Epsilon)
	}
	return nil
}
