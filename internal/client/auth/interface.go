package auth

import (
	"context"

	"github.com/iudanet/paclead/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// Service defines the client authentication context.
// It holds the current user and bearer token and keeps them in the session store.
type Service interface {
	// Login выполняет вход и сохраняет сессию
	Login(ctx context.Context, email, password string) error

	// Register регистрирует пользователя и сохраняет сессию.
	// Если сервер не выдал токен при регистрации, выполняется вход
	// с теми же учетными данными.
	Register(ctx context.Context, name, email, password string) error

	// Logout удаляет сессию локально, сервер не уведомляется
	Logout(ctx context.Context) error

	// Init восстанавливает сохраненную сессию и проверяет токен на сервере.
	// При неуспешной проверке сессия удаляется.
	Init(ctx context.Context) error

	// CurrentUser возвращает текущего пользователя
	CurrentUser() (api.User, bool)

	// Token возвращает bearer токен текущей сессии
	Token() string

	// IsAuthenticated сообщает, есть ли активная сессия
	IsAuthenticated() bool
}

//go:generate moq -out api_mock.go . APIClient

// APIClient defines the server calls used by the authentication context
type APIClient interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error)
	Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error)
	Verify(ctx context.Context, token string) (*api.VerifyResponse, error)
}
