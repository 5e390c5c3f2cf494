package auth

import (
	"context"
	"errors"

	pkgapi "github.com/iudanet/jubeesync/pkg/api"
)

// ErrNotAuthenticated означает, что на устройстве нет действующей сессии
var ErrNotAuthenticated = errors.New("not authenticated")

//go:generate moq -out apiclient_mock.go . APIClient

// APIClient is the part of the server API the auth service needs.
type APIClient interface {
	Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.RegisterResponse, error)
	Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error)
}

//go:generate moq -out service_mock.go . Service

// Service defines the main interface for authentication operations
type Service interface {
	// Register регистрирует новую родительскую учетную запись
	Register(ctx context.Context, username, password string) (*RegisterResult, error)

	// Login выполняет аутентификацию и сохраняет сессию на устройстве
	Login(ctx context.Context, username, password string) (*Session, error)

	// Logout удаляет локальную сессию
	Logout(ctx context.Context) error

	// Session возвращает текущую сессию.
	// Returns ErrNotAuthenticated when no session exists or it has expired
	Session(ctx context.Context) (*Session, error)
}

// Session - текущий вошедший пользователь
type Session struct {
	ExpiresAt   int64 // unix seconds
	UserID      string
	Username    string
	AccessToken string
}

// RegisterResult содержит результат регистрации
type RegisterResult struct {
	UserID   string // UUID пользователя
	Username string
}
