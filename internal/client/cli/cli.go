// Package cli консольные команды Pac Lead.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/paclead/internal/client/auth"
	"github.com/iudanet/paclead/internal/client/iocli"
	"github.com/iudanet/paclead/pkg/api"
)

//go:generate moq -out catalog_mock.go . Catalog

// ErrNotAuthenticated нет активной сессии
var ErrNotAuthenticated = errors.New("not authenticated, run 'paclead login'")

// Catalog вызовы прокси для товаров, настроек и чата
type Catalog interface {
	GetSettings(ctx context.Context, token string) (*api.Settings, error)
	UpdateSettings(ctx context.Context, token string, settings api.Settings) (*api.Settings, error)
	ListProducts(ctx context.Context, token string) ([]api.Product, error)
	CreateProduct(ctx context.Context, token string, product api.ProductInput) (*api.Product, error)
	UpdateProduct(ctx context.Context, token, id string, product api.ProductInput) (*api.Product, error)
	DeleteProduct(ctx context.Context, token, id string) (*api.MessageResponse, error)
	SendMessage(ctx context.Context, token string, req api.WebhookRequest) (*api.WebhookResponse, error)
}

// Cli выполняет команды консольного клиента
type Cli struct {
	io          iocli.IO
	authService auth.Service
	catalog     Catalog
	logger      *slog.Logger
}

// New создает Cli
func New(io iocli.IO, authService auth.Service, catalog Catalog, logger *slog.Logger) *Cli {
	return &Cli{
		io:          io,
		authService: authService,
		catalog:     catalog,
		logger:      logger,
	}
}

// requireAuth восстанавливает сессию и возвращает токен
func (c *Cli) requireAuth(ctx context.Context) (string, error) {
	if err := c.authService.Init(ctx); err != nil {
		return "", fmt.Errorf("failed to restore session: %w", err)
	}
	if !c.authService.IsAuthenticated() {
		return "", ErrNotAuthenticated
	}
	return c.authService.Token(), nil
}
