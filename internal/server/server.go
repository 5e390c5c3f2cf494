package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/jubeesync/internal/server/handlers"
	"github.com/iudanet/jubeesync/internal/server/middleware"
	"github.com/iudanet/jubeesync/internal/server/storage"
)

const (
	healthPath             = "/api/v1/health"
	defaultShutdownTimeout = 10 * time.Second
)

// Storage - все, что серверу нужно от базы данных
type Storage interface {
	storage.UserStorage
	storage.RecordStorage
	handlers.Pinger
}

// Config описывает HTTP сервер
type Config struct {
	Address         string
	Version         string
	JWT             handlers.JWTConfig
	AuthRateWindow  time.Duration
	ShutdownTimeout time.Duration
	AuthRateLimit   int
}

// Server - HTTP API удаленного хранилища
type Server struct {
	httpServer *http.Server
	limiter    *middleware.RateLimiter
	logger     *slog.Logger
	cfg        Config
}

// New assembles the router and its middleware.
func New(cfg Config, db Storage, logger *slog.Logger) *Server {
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	limiter := middleware.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateWindow, logger)

	authHandler := handlers.NewAuthHandler(logger, db, cfg.JWT)
	recordsHandler := handlers.NewRecordsHandler(logger, db)
	healthHandler := handlers.NewHealthHandler(logger, db, cfg.Version)

	r := chi.NewRouter()
	// Recovery внутри логирования: паника попадает в лог запроса со статусом 500
	r.Use(middleware.LoggingWithSkip(logger, []string{healthPath}))
	r.Use(middleware.RecoveryMiddleware(logger))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.Health)

		r.Group(func(r chi.Router) {
			r.Use(limiter.Middleware)
			r.Post("/auth/register", authHandler.Register)
			r.Post("/auth/login", authHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(logger, cfg.JWT))
			r.Put("/collections/{collection}/records/{id}", recordsHandler.Upsert)
			r.Get("/collections/{collection}/records", recordsHandler.List)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Address,
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		limiter: limiter,
		logger:  logger,
		cfg:     cfg,
	}
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run serves on the configured address until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Address, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer s.limiter.Stop()

	errC := make(chan error, 1)
	go func() {
		s.logger.Info("Server started", "address", ln.Addr().String(), "version", s.cfg.Version)
		errC <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errC:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server", "timeout", s.cfg.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	s.logger.Info("Server stopped")
	return nil
}

// Close stops background work of a server that was never run.
func (s *Server) Close() {
	s.limiter.Stop()
}
