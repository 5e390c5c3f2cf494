package sync

import "errors"

var (
	// ErrLocalWriteFailed означает, что разрешенную запись не удалось сохранить локально.
	// Конфликт остается в очереди и будет предложен снова.
	ErrLocalWriteFailed = errors.New("local write failed")

	// ErrRemoteSyncFailed означает, что запись сохранена локально, но не отправлена на сервер.
	// Запись попадает в outbox и отправляется при следующем RetryPending.
	ErrRemoteSyncFailed = errors.New("remote sync failed")
)
