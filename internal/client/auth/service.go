package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	clientapi "github.com/iudanet/paclead/internal/client/api"
	"github.com/iudanet/paclead/internal/client/storage"
	"github.com/iudanet/paclead/internal/validation"
	"github.com/iudanet/paclead/pkg/api"
)

// ErrNoToken сервер ответил успехом, но не выдал токен
var ErrNoToken = errors.New("server returned no token")

// AuthService реализация Service.
// Состояние в памяти защищено мьютексом: побеждает последняя завершенная запись.
type AuthService struct {
	apiClient APIClient
	store     storage.SessionStorage
	logger    *slog.Logger
	now       func() time.Time

	mu    sync.RWMutex
	user  *api.User
	token string
}

var _ Service = (*AuthService)(nil)

// NewService создает новый сервис авторизации
func NewService(apiClient APIClient, store storage.SessionStorage, logger *slog.Logger) *AuthService {
	return &AuthService{
		apiClient: apiClient,
		store:     store,
		logger:    logger,
		now:       time.Now,
	}
}

// Login выполняет аутентификацию пользователя
func (s *AuthService) Login(ctx context.Context, email, password string) error {
	if err := validation.ValidateEmail(email); err != nil {
		return err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return err
	}

	resp, err := s.login(ctx, email, password)
	if err != nil {
		return err
	}

	return s.setSession(ctx, resp.User, resp.Token)
}

// Register регистрирует нового пользователя
func (s *AuthService) Register(ctx context.Context, name, email, password string) error {
	if err := validation.ValidateName(name); err != nil {
		return err
	}
	if err := validation.ValidateEmail(email); err != nil {
		return err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return err
	}

	resp, err := s.apiClient.Register(ctx, api.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	if resp.Token != "" {
		return s.setSession(ctx, resp.User, resp.Token)
	}

	// Сервер не выдает токен при регистрации: входим с теми же данными
	s.logger.DebugContext(ctx, "register returned no token, logging in", slog.String("email", email))

	loginResp, err := s.login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("registered, but login failed: %w", err)
	}

	// Ответ на вход не содержит имени, берем профиль из регистрации
	user := resp.User
	if user.ID == "" {
		user.ID = loginResp.User.ID
	}
	if user.Email == "" {
		user.Email = loginResp.User.Email
	}

	return s.setSession(ctx, user, loginResp.Token)
}

// Logout выполняет выход из системы
func (s *AuthService) Logout(ctx context.Context) error {
	s.clear()

	if err := s.store.DeleteSession(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Init восстанавливает сессию при запуске
func (s *AuthService) Init(ctx context.Context) error {
	session, err := s.store.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			s.clear()
			return nil
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	if session.Token == "" {
		return s.Logout(ctx)
	}

	resp, err := s.apiClient.Verify(ctx, session.Token)
	if err != nil {
		if clientapi.IsStatus(err, http.StatusUnauthorized) {
			s.logger.InfoContext(ctx, "stored token rejected, clearing session")
		} else {
			s.logger.WarnContext(ctx, "token verification failed, clearing session", slog.Any("error", err))
		}
		return s.Logout(ctx)
	}

	return s.setSession(ctx, resp.User, session.Token)
}

// CurrentUser возвращает текущего пользователя
func (s *AuthService) CurrentUser() (api.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return api.User{}, false
	}
	return *s.user, true
}

// Token возвращает bearer токен
func (s *AuthService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsAuthenticated сообщает, есть ли активная сессия
func (s *AuthService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.token != ""
}

func (s *AuthService) login(ctx context.Context, email, password string) (*api.AuthResponse, error) {
	resp, err := s.apiClient.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	if resp.Token == "" {
		return nil, ErrNoToken
	}
	return resp, nil
}

// setSession сохраняет сессию в хранилище, затем в памяти
func (s *AuthService) setSession(ctx context.Context, user api.User, token string) error {
	session := &storage.SessionData{
		Token:   token,
		User:    user,
		SavedAt: s.now(),
	}
	if err := s.store.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	s.mu.Lock()
	s.user = &user
	s.token = token
	s.mu.Unlock()

	return nil
}

func (s *AuthService) clear() {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()
}
