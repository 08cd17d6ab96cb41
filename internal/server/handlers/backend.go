package handlers

import (
	"context"
	"encoding/json"

	"github.com/iudanet/paclead/internal/backend"
)

// Backend определяет операции удаленного backend, используемые прокси
type Backend interface {
	Login(ctx context.Context, req backend.LoginRequest) (*backend.LoginResponse, error)
	Register(ctx context.Context, req backend.RegisterRequest) (*backend.UserResponse, error)
	Me(ctx context.Context, token string) (*backend.UserResponse, error)
	UpdateMe(ctx context.Context, token string, req backend.UpdateMeRequest) (*backend.UserResponse, error)
	ListProducts(ctx context.Context, token string) (json.RawMessage, error)
	CreateProduct(ctx context.Context, token string, product json.RawMessage) (json.RawMessage, error)
	UpdateProduct(ctx context.Context, token, id string, product json.RawMessage) (json.RawMessage, error)
	DeleteProduct(ctx context.Context, token, id string) error
	Webhook(ctx context.Context, token string, req backend.WebhookRequest) (*backend.WebhookResponse, error)
}

var _ Backend = (*backend.Client)(nil)
