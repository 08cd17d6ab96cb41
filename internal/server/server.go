// Package server собирает BFF прокси: конфигурация, backend клиент,
// handlers и middleware, запуск и корректная остановка HTTP сервера.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iudanet/paclead/internal/backend"
	"github.com/iudanet/paclead/internal/config"
	"github.com/iudanet/paclead/internal/server/handlers"
	"github.com/iudanet/paclead/internal/server/middleware"
)

// Server HTTP сервер прокси
type Server struct {
	cfg     *config.Config
	logger  *slog.Logger
	limiter *middleware.PathRateLimiter
	handler http.Handler
}

// New создает сервер по конфигурации. version отдается в /api/health.
func New(cfg *config.Config, logger *slog.Logger, version string) *Server {
	client := backend.NewClient(cfg.BackendURL, cfg.BackendTimeout)
	return NewWithBackend(cfg, logger, version, client)
}

// NewWithBackend создает сервер с заданным backend
func NewWithBackend(cfg *config.Config, logger *slog.Logger, version string, b handlers.Backend) *Server {
	limiter := middleware.NewPathRateLimiter([]middleware.PathRateLimit{
		{Path: PathLogin, Rate: cfg.AuthRateLimit, Window: cfg.AuthRateWindow},
		{Path: PathRegister, Rate: cfg.AuthRateLimit, Window: cfg.AuthRateWindow},
	}, cfg.TrustProxyHeaders, logger)

	h := routes{
		health:   handlers.NewHealthHandler(logger, version),
		auth:     handlers.NewAuthHandler(logger, b, cfg.DefaultAITone),
		settings: handlers.NewSettingsHandler(logger, b),
		products: handlers.NewProductsHandler(logger, b),
		webhook:  handlers.NewWebhookHandler(logger, b),
	}

	return &Server{
		cfg:     cfg,
		logger:  logger,
		limiter: limiter,
		handler: newRouter(logger, h, limiter),
	}
}

// Handler возвращает http.Handler со всеми маршрутами и middleware
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run слушает cfg.Addr до отмены ctx
func (s *Server) Run(ctx context.Context) error {
	l, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}
	return s.RunWithListener(ctx, l)
}

// RunWithListener обслуживает запросы на l до отмены ctx, затем
// останавливает сервер, ожидая завершения активных запросов
// не дольше cfg.ShutdownTimeout.
func (s *Server) RunWithListener(ctx context.Context, l net.Listener) error {
	defer s.limiter.Stop()

	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.InfoContext(ctx, "paclead server listening",
			slog.String("addr", l.Addr().String()),
			slog.String("backend", s.cfg.BackendURL))
		if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.InfoContext(context.Background(), "shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}
