package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/paclead/internal/remap"
	"github.com/iudanet/paclead/pkg/api"
)

// AuthHandler проксирует запросы авторизации на backend
type AuthHandler struct {
	logger  *slog.Logger
	backend Backend
	aiTone  string
}

// NewAuthHandler создает новый handler для авторизации.
// aiTone тон ИИ, с которым регистрируются новые пользователи.
func NewAuthHandler(logger *slog.Logger, backend Backend, aiTone string) *AuthHandler {
	return &AuthHandler{
		logger:  logger,
		backend: backend,
		aiTone:  aiTone,
	}
}

// Login обрабатывает POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		internalError(w, r, h.logger, err, "failed to decode login request")
		return
	}

	resp, err := h.backend.Login(ctx, remap.LoginToBackend(req))
	if err != nil {
		proxyError(w, r, h.logger, err, MsgInvalidCredentials, "login proxy failed")
		return
	}

	h.logger.InfoContext(ctx, "user logged in", slog.String("user_id", resp.UserID.String()))

	sendJSON(w, remap.LoginFromBackend(req, *resp), http.StatusOK)
}

// Register обрабатывает POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		internalError(w, r, h.logger, err, "failed to decode register request")
		return
	}

	resp, err := h.backend.Register(ctx, remap.RegisterToBackend(req, h.aiTone))
	if err == nil {
		err = resp.RequireID()
	}
	if err != nil {
		proxyError(w, r, h.logger, err, MsgRegisterFailed, "register proxy failed")
		return
	}

	h.logger.InfoContext(ctx, "user registered", slog.String("user_id", resp.ID.String()))

	sendJSON(w, remap.RegisterFromBackend(*resp), http.StatusOK)
}

// Verify обрабатывает GET /api/auth/verify
// Проверка токена через GET /auth/me
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token, _ := TokenFromContext(ctx)

	resp, err := h.backend.Me(ctx, token)
	if err == nil {
		err = resp.RequireID()
	}
	if err != nil {
		proxyError(w, r, h.logger, err, MsgInvalidToken, "verify proxy failed")
		return
	}

	sendJSON(w, remap.VerifyFromBackend(*resp), http.StatusOK)
}
