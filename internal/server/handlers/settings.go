package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/paclead/internal/remap"
	"github.com/iudanet/paclead/pkg/api"
)

// SettingsHandler проксирует настройки тона ИИ
type SettingsHandler struct {
	logger  *slog.Logger
	backend Backend
}

// NewSettingsHandler создает handler настроек
func NewSettingsHandler(logger *slog.Logger, backend Backend) *SettingsHandler {
	return &SettingsHandler{logger: logger, backend: backend}
}

// Get обрабатывает GET /api/configuracoes
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token, _ := TokenFromContext(ctx)

	resp, err := h.backend.Me(ctx, token)
	if err != nil {
		proxyError(w, r, h.logger, err, MsgGetSettingsFailed, "get settings proxy failed")
		return
	}

	sendJSON(w, remap.SettingsFromBackend(*resp), http.StatusOK)
}

// Put обрабатывает PUT /api/configuracoes
func (h *SettingsHandler) Put(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token, _ := TokenFromContext(ctx)

	var req api.Settings
	if err := decodeJSON(r, &req); err != nil {
		internalError(w, r, h.logger, err, "failed to decode settings request")
		return
	}

	resp, err := h.backend.UpdateMe(ctx, token, remap.SettingsToBackend(req))
	if err != nil {
		proxyError(w, r, h.logger, err, MsgSaveSettingsFailed, "update settings proxy failed")
		return
	}

	sendJSON(w, remap.SettingsFromBackend(*resp), http.StatusOK)
}
