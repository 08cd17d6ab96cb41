// Package devbackend локальный backend для разработки: пользователи, товары,
// настройки ИИ и тестовый webhook поверх SQLite.
package devbackend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"github.com/iudanet/paclead/internal/devbackend/handlers"
	"github.com/iudanet/paclead/internal/devbackend/storage/sqlite"
	"github.com/iudanet/paclead/internal/devbackend/token"
	"github.com/iudanet/paclead/internal/server/middleware"
)

// Маршруты backend
const (
	PathHealth   = "/health"
	PathRegister = "/auth/register"
	PathLogin    = "/auth/login"
	PathMe       = "/auth/me"
	PathProducts = "/products/"
	PathProduct  = "/products/{id}"
	PathWebhook  = "/webhook/"
)

// Config настройки dev backend
type Config struct {
	Addr   string
	DBPath string
	Secret string

	TokenTTL        time.Duration
	ShutdownTimeout time.Duration

	// BcryptCost стоимость хеширования паролей, 0 означает bcrypt.DefaultCost
	BcryptCost int
}

// DefaultConfig значения по умолчанию
func DefaultConfig() Config {
	return Config{
		Addr:            ":8000",
		DBPath:          "paclead-backend.db",
		Secret:          "dev-secret-change-me",
		TokenTTL:        24 * time.Hour,
		ShutdownTimeout: 10 * time.Second,
	}
}

// Server HTTP сервер dev backend
type Server struct {
	cfg     Config
	logger  *slog.Logger
	store   *sqlite.Storage
	handler http.Handler
}

// New открывает базу и собирает маршруты
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Server, error) {
	if cfg.Secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", cfg.TokenTTL)
	}

	store, err := sqlite.New(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	tokens := token.NewService(cfg.Secret, cfg.TokenTTL)

	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeDetail(w, "Not Found", http.StatusNotFound)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeDetail(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})
	r.Use(middleware.RouteTemplate)

	auth := handlers.NewAuthHandler(logger, store, tokens, cfg.BcryptCost)
	products := handlers.NewProductsHandler(logger, store)
	webhook := handlers.NewWebhookHandler(logger, store)

	r.HandleFunc(PathHealth, health(store)).Methods(http.MethodGet)
	r.HandleFunc(PathRegister, auth.Register).Methods(http.MethodPost)
	r.HandleFunc(PathLogin, auth.Login).Methods(http.MethodPost)

	protected := r.NewRoute().Subrouter()
	protected.Use(handlers.Authenticate(tokens, logger))
	protected.HandleFunc(PathMe, auth.Me).Methods(http.MethodGet)
	protected.HandleFunc(PathMe, auth.UpdateMe).Methods(http.MethodPut)
	protected.HandleFunc(PathProducts, products.List).Methods(http.MethodGet)
	protected.HandleFunc(PathProducts, products.Create).Methods(http.MethodPost)
	protected.HandleFunc(PathProduct, products.Update).Methods(http.MethodPut)
	protected.HandleFunc(PathProduct, products.Delete).Methods(http.MethodDelete)
	protected.HandleFunc(PathWebhook, webhook.Send).Methods(http.MethodPost)

	var handler http.Handler = r
	handler = middleware.AccessLog(logger, PathHealth)(handler)
	handler = middleware.RequestIDMiddleware(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	return &Server{
		cfg:     cfg,
		logger:  logger,
		store:   store,
		handler: handler,
	}, nil
}

// Handler возвращает http.Handler со всеми маршрутами
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Close закрывает базу
func (s *Server) Close() error {
	return s.store.Close()
}

// Run слушает cfg.Addr до отмены ctx
func (s *Server) Run(ctx context.Context) error {
	l, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}
	return s.RunWithListener(ctx, l)
}

// RunWithListener обслуживает запросы на l до отмены ctx
func (s *Server) RunWithListener(ctx context.Context, l net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.InfoContext(ctx, "dev backend listening",
			slog.String("addr", l.Addr().String()),
			slog.String("db", s.cfg.DBPath))
		if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}

type pinger interface {
	Ping(ctx context.Context) error
}

func health(db pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			writeDetail(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}` + "\n"))
	}
}

func writeDetail(w http.ResponseWriter, detail string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
