package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/iudanet/paclead/internal/backend"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockBackend is a hand-written Backend for handler tests.
// Unset functions panic so unexpected backend calls fail loudly.
type mockBackend struct {
	loginFn         func(ctx context.Context, req backend.LoginRequest) (*backend.LoginResponse, error)
	registerFn      func(ctx context.Context, req backend.RegisterRequest) (*backend.UserResponse, error)
	meFn            func(ctx context.Context, token string) (*backend.UserResponse, error)
	updateMeFn      func(ctx context.Context, token string, req backend.UpdateMeRequest) (*backend.UserResponse, error)
	listProductsFn  func(ctx context.Context, token string) (json.RawMessage, error)
	createProductFn func(ctx context.Context, token string, product json.RawMessage) (json.RawMessage, error)
	updateProductFn func(ctx context.Context, token, id string, product json.RawMessage) (json.RawMessage, error)
	deleteProductFn func(ctx context.Context, token, id string) error
	webhookFn       func(ctx context.Context, token string, req backend.WebhookRequest) (*backend.WebhookResponse, error)
}

func (m *mockBackend) Login(ctx context.Context, req backend.LoginRequest) (*backend.LoginResponse, error) {
	return m.loginFn(ctx, req)
}

func (m *mockBackend) Register(ctx context.Context, req backend.RegisterRequest) (*backend.UserResponse, error) {
	return m.registerFn(ctx, req)
}

func (m *mockBackend) Me(ctx context.Context, token string) (*backend.UserResponse, error) {
	return m.meFn(ctx, token)
}

func (m *mockBackend) UpdateMe(ctx context.Context, token string, req backend.UpdateMeRequest) (*backend.UserResponse, error) {
	return m.updateMeFn(ctx, token, req)
}

func (m *mockBackend) ListProducts(ctx context.Context, token string) (json.RawMessage, error) {
	return m.listProductsFn(ctx, token)
}

func (m *mockBackend) CreateProduct(ctx context.Context, token string, product json.RawMessage) (json.RawMessage, error) {
	return m.createProductFn(ctx, token, product)
}

func (m *mockBackend) UpdateProduct(ctx context.Context, token, id string, product json.RawMessage) (json.RawMessage, error) {
	return m.updateProductFn(ctx, token, id, product)
}

func (m *mockBackend) DeleteProduct(ctx context.Context, token, id string) error {
	return m.deleteProductFn(ctx, token, id)
}

func (m *mockBackend) Webhook(ctx context.Context, token string, req backend.WebhookRequest) (*backend.WebhookResponse, error) {
	return m.webhookFn(ctx, token, req)
}
