package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/iudanet/jubeesync/internal/client/auth"
	"github.com/iudanet/jubeesync/internal/client/data"
	"github.com/iudanet/jubeesync/internal/client/iocli"
	"github.com/iudanet/jubeesync/internal/client/storage"
	"github.com/iudanet/jubeesync/internal/client/sync"
)

//go:generate moq -out sync_mock.go . SyncPass OutboxRetrier

// SyncPass получает изменения с сервера и передает расхождения в движок конфликтов
type SyncPass interface {
	Scan(ctx context.Context) (*sync.ScanResult, error)
}

// OutboxRetrier отправляет на сервер записи, разрешенные без сети
type OutboxRetrier interface {
	RetryPending(ctx context.Context) (*sync.RetryResult, error)
}

// Cli выполняет команды клиента поверх сервисов
type Cli struct {
	io          iocli.IO
	authService auth.Service
	syncService sync.Service
	records     data.Service
	syncPass    SyncPass
	retrier     OutboxRetrier
	outbox      storage.OutboxStorage
	logger      *slog.Logger
}

// New creates a CLI bound to the given services.
func New(
	console iocli.IO,
	authService auth.Service,
	syncService sync.Service,
	records data.Service,
	syncPass SyncPass,
	retrier OutboxRetrier,
	outbox storage.OutboxStorage,
	logger *slog.Logger,
) *Cli {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Cli{
		io:          console,
		authService: authService,
		syncService: syncService,
		records:     records,
		syncPass:    syncPass,
		retrier:     retrier,
		outbox:      outbox,
		logger:      logger,
	}
}
