package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/iudanet/jubeesync/internal/client/api"
	"github.com/iudanet/jubeesync/internal/client/auth"
	"github.com/iudanet/jubeesync/internal/client/data"
	"github.com/iudanet/jubeesync/internal/client/iocli"
	"github.com/iudanet/jubeesync/internal/client/storage/boltdb"
	"github.com/iudanet/jubeesync/internal/client/sync"
	"github.com/iudanet/jubeesync/internal/config"
	"github.com/iudanet/jubeesync/internal/conflict"
)

// app держит зависимости одного запуска CLI
type app struct {
	cli        *Cli
	engine     *conflict.Engine
	journal    *sync.Journal
	store      io.Closer
	logger     *slog.Logger
	configFile string
}

// Execute runs the client command line and returns the process exit code.
func Execute(ctx context.Context, version string, args []string) int {
	a := &app{}
	root := a.rootCommand(version)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)

	// Очередь конфликтов сохраняется даже после неудачной команды:
	// часть конфликтов могла быть разрешена до ошибки
	if closeErr := a.close(context.WithoutCancel(ctx)); closeErr != nil {
		err = errors.Join(err, closeErr)
	}

	if err != nil {
		_, _ = color.New(color.FgRed, color.Bold).Fprint(os.Stderr, "Error: ")
		_, _ = fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func (a *app) rootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "jubee",
		Short: "Jubee offline-first sync client",
		Long: `jubee keeps learning progress, drawings, stickers and child profiles
on this device and synchronizes them with the Jubee server.

When the same record was changed both here and on the server, the
difference is kept as a pending conflict until you decide which
version wins: local, server, or a field-by-field merge.`,
		Version:           version,
		PersistentPreRunE: a.setup,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "path to YAML config file (default ./config.yaml)")
	flags.String(config.FlagServer, "http://localhost:8080", "server URL")
	flags.String(config.FlagDB, "jubee-client.db", "path to local database")
	flags.String(config.FlagLogLevel, "warn", "log level: debug, info, warn, error")

	root.AddCommand(
		&cobra.Command{
			Use:   "register",
			Short: "Register a new parent account",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.cli.runRegister(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "login",
			Short: "Sign in on this device",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.cli.runLogin(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "logout",
			Short: "Forget the session on this device",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.cli.runLogout(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show session, pending conflicts and upload queue",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.cli.runStatus(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "sync",
			Short: "Upload pending records and pull server changes",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.cli.runSync(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "retry",
			Short: "Upload records resolved while offline",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.cli.runRetry(cmd.Context())
			},
		},
		&cobra.Command{
			Use:     "put <collection> <id|-> <field=value>...",
			Short:   "Change a local record the way the app does",
			Long:    "Values are parsed as JSON and kept as strings otherwise. An empty value removes the field, '-' as id creates a new record.",
			Example: "  jubee put drawing d-1 title='Sunny day' favorite=true\n  jubee put sticker-unlock - sticker=bee count=2",
			Args:    cobra.MinimumNArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.cli.runPut(cmd.Context(), args[0], args[1], args[2:])
			},
		},
		&cobra.Command{
			Use:   "show <collection> <id>",
			Short: "Print a local record as JSON",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.cli.runShow(cmd.Context(), args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "list <collection>",
			Short: "List local records of a collection",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.cli.runList(cmd.Context(), args[0])
			},
		},
		a.conflictsCommand(),
		&cobra.Command{
			Use:     "resolve <local|server|merge> <id>...",
			Short:   "Resolve conflicts by id with one strategy",
			Example: "  jubee resolve merge d-1\n  jubee resolve server d-1 gp-7 s-3",
			Args:    cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.cli.runResolve(cmd.Context(), args[0], args[1:])
			},
		},
		&cobra.Command{
			Use:   "resolve-all <local|server|merge>",
			Short: "Resolve every pending conflict with one strategy",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.cli.runResolveAll(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:     "resolve-store <collection> <local|server|merge>",
			Short:   "Resolve every pending conflict of one collection",
			Example: "  jubee resolve-store drawing local",
			Args:    cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.cli.runResolveStore(cmd.Context(), args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "accept-diagnosis",
			Short: "Resolve every pending conflict with its recommended strategy",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.cli.runAcceptDiagnosis(cmd.Context())
			},
		},
	)

	return root
}

func (a *app) conflictsCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "conflicts",
		Short: "List pending conflicts with the recommended strategy",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.cli.runConflicts(asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print conflicts as JSON")
	return cmd
}

// setup загружает конфигурацию, открывает локальную базу и собирает сервисы.
// Конфликты прошлых запусков возвращаются в очередь из журнала.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.cli != nil || cmd.Name() == "help" {
		return nil
	}

	ctx := cmd.Context()

	cfg, err := config.LoadClient(config.LoadOptions{
		Flags:      cmd.Flags(),
		ConfigFile: a.configFile,
	})
	if err != nil {
		return err
	}

	logger, err := config.NewLogger(os.Stderr, cfg.LogLevel, config.FormatText)
	if err != nil {
		return err
	}
	a.logger = logger

	store, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open local database: %w", err)
	}
	a.store = store

	apiClient := api.NewClient(cfg.ServerURL,
		api.WithTimeout(cfg.HTTPTimeout),
		api.WithRetry(cfg.MaxRetries, cfg.RetryBase),
	)

	authService := auth.NewService(apiClient, store, logger)

	a.engine = conflict.NewEngine(
		conflict.WithEpsilon(cfg.Epsilon),
		conflict.WithLogger(logger),
	)

	orchestrator := sync.NewOrchestrator(store, store, apiClient, authService, sync.OrchestratorConfig{
		RemoteTimeout: cfg.RemoteTimeout,
		MaxParallel:   cfg.MaxParallel,
	}, logger)
	scanner := sync.NewScanner(store, store, store, apiClient, authService, a.engine, logger)
	syncService := sync.NewService(a.engine, orchestrator, logger)

	// Журнал подключается только после чтения: иначе close перезапишет
	// непрочитанную очередь пустой
	journal := sync.NewJournal(a.engine, store, logger)
	if _, err := journal.Restore(ctx); err != nil {
		return err
	}
	a.journal = journal

	a.cli = New(iocli.NewStdio(), authService, syncService, data.NewService(store, store, logger), scanner, orchestrator, store, logger)

	return nil
}

// close сохраняет очередь конфликтов и закрывает базу
func (a *app) close(ctx context.Context) error {
	var errs []error

	if a.journal != nil {
		if err := a.journal.Save(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if a.engine != nil {
		a.engine.Close()
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close local database: %w", err))
		}
	}

	return errors.Join(errs...)
}
