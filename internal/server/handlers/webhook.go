package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/paclead/internal/remap"
	"github.com/iudanet/paclead/pkg/api"
)

// WebhookHandler проксирует сообщения тестового чата
type WebhookHandler struct {
	logger  *slog.Logger
	backend Backend
}

// NewWebhookHandler создает handler webhook
func NewWebhookHandler(logger *slog.Logger, backend Backend) *WebhookHandler {
	return &WebhookHandler{logger: logger, backend: backend}
}

// Send обрабатывает POST /api/webhook
func (h *WebhookHandler) Send(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token, _ := TokenFromContext(ctx)

	var req api.WebhookRequest
	if err := decodeJSON(r, &req); err != nil {
		internalError(w, r, h.logger, err, "failed to decode webhook request")
		return
	}

	resp, err := h.backend.Webhook(ctx, token, remap.WebhookToBackend(req))
	if err != nil {
		proxyError(w, r, h.logger, err, MsgWebhookFailed, "webhook proxy failed")
		return
	}

	sendJSON(w, remap.WebhookFromBackend(*resp), http.StatusOK)
}
