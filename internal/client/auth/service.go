package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/iudanet/jubeesync/internal/client/storage"
	"github.com/iudanet/jubeesync/internal/validation"
	pkgapi "github.com/iudanet/jubeesync/pkg/api"
)

// service предоставляет функции авторизации
type service struct {
	apiClient APIClient
	storage   storage.AuthStorage
	logger    *slog.Logger
	now       func() time.Time
}

// Compile-time check that service implements Service
var _ Service = (*service)(nil)

// NewService создает новый сервис авторизации
func NewService(apiClient APIClient, authStorage storage.AuthStorage, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &service{
		apiClient: apiClient,
		storage:   authStorage,
		logger:    logger,
		now:       time.Now,
	}
}

// Register регистрирует нового пользователя
func (s *service) Register(ctx context.Context, username, password string) (*RegisterResult, error) {
	// Валидация входных данных
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Register(ctx, pkgapi.RegisterRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	s.logger.Info("User registered", "username", username, "user_id", resp.UserID)

	return &RegisterResult{
		UserID:   resp.UserID,
		Username: username,
	}, nil
}

// Login выполняет аутентификацию пользователя и сохраняет сессию
func (s *service) Login(ctx context.Context, username, password string) (*Session, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if password == "" {
		return nil, fmt.Errorf("invalid password: %w", validation.ErrWeakPassword)
	}

	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	authData := &storage.AuthData{
		Username:    username,
		UserID:      resp.UserID,
		AccessToken: resp.AccessToken,
		ExpiresAt:   s.now().Add(time.Duration(resp.ExpiresIn) * time.Second).Unix(),
	}
	if err := s.storage.SaveAuth(ctx, authData); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Info("User logged in", "username", username)

	return toSession(authData), nil
}

// Logout выполняет выход из системы.
// Отсутствие сессии не считается ошибкой.
func (s *service) Logout(ctx context.Context) error {
	err := s.storage.DeleteAuth(ctx)
	if err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		return fmt.Errorf("failed to delete local auth data: %w", err)
	}
	return nil
}

// Session возвращает текущую сессию или ErrNotAuthenticated
func (s *service) Session(ctx context.Context) (*Session, error) {
	authData, err := s.storage.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if !s.now().Before(time.Unix(authData.ExpiresAt, 0)) {
		s.logger.Debug("Session expired", "username", authData.Username)
		return nil, fmt.Errorf("%w: session expired", ErrNotAuthenticated)
	}

	return toSession(authData), nil
}

func toSession(a *storage.AuthData) *Session {
	return &Session{
		UserID:      a.UserID,
		Username:    a.Username,
		AccessToken: a.AccessToken,
		ExpiresAt:   a.ExpiresAt,
	}
}
