package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/iudanet/jubeesync/internal/config"
	"github.com/iudanet/jubeesync/internal/server"
	"github.com/iudanet/jubeesync/internal/server/handlers"
	"github.com/iudanet/jubeesync/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("jubee-server", pflag.ContinueOnError)
	showVersion := flags.Bool("version", false, "show version information")
	configFile := flags.String("config", "", "path to YAML config file (default ./config.yaml)")
	flags.String(config.FlagAddress, ":8080", "listen address")
	flags.String(config.FlagDB, "jubee-server.db", "path to SQLite database")
	flags.String(config.FlagLogLevel, "info", "log level: debug, info, warn, error")
	flags.String(config.FlagLogFormat, config.FormatJSON, "log format: json or text")

	if err := flags.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		printVersion()
		return nil
	}

	cfg, err := config.LoadServer(config.LoadOptions{Flags: flags, ConfigFile: *configFile})
	if err != nil {
		return err
	}

	logger, err := config.NewLogger(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.New(ctx, cfg.DBPath, logger)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}()

	srv := server.New(server.Config{
		Address: cfg.Address,
		Version: Version,
		JWT: handlers.JWTConfig{
			Issuer:         cfg.JWTIssuer,
			Secret:         []byte(cfg.JWTSecret),
			AccessTokenTTL: cfg.TokenTTL,
		},
		AuthRateLimit:   cfg.AuthRateLimit,
		AuthRateWindow:  cfg.AuthRateWindow,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, db, logger)

	return srv.Run(ctx)
}

func printVersion() {
	fmt.Printf("Jubee Sync Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
