package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/paclead/internal/devbackend/storage"
)

// webhookRequest тело POST /webhook/
type webhookRequest struct {
	Mensagem string          `json:"mensagem"`
	UserID   json.RawMessage `json:"user_id,omitempty"`
}

// webhookResponse ответ ИИ
type webhookResponse struct {
	Resposta string `json:"resposta"`
}

// WebhookHandler отвечает на сообщения тестового чата по каталогу пользователя
type WebhookHandler struct {
	products storage.ProductStorage
	logger   *slog.Logger
}

// NewWebhookHandler создает WebhookHandler
func NewWebhookHandler(logger *slog.Logger, products storage.ProductStorage) *WebhookHandler {
	return &WebhookHandler{
		products: products,
		logger:   logger,
	}
}

// Send обрабатывает POST /webhook/
func (h *WebhookHandler) Send(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req webhookRequest
	if err := decodeBody(r, &req); err != nil {
		writeDetail(w, DetailInvalidJSON, http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Mensagem) == "" {
		writeValidation(w, []fieldError{missingField("mensagem")})
		return
	}

	products, err := h.products.ListProducts(r.Context(), userID)
	if err != nil {
		internalError(w, r, h.logger, err, "failed to list products")
		return
	}

	writeJSON(w, webhookResponse{Resposta: SalesReply(req.Mensagem, products)}, http.StatusOK)
}

// SalesReply детерминированный ответ по каталогу: описание товара,
// упомянутого по имени, или перечень каталога
func SalesReply(message string, products []storage.Product) string {
	if len(products) == 0 {
		return "Ainda não há produtos cadastrados. Cadastre seus produtos para que eu possa ajudar nas vendas."
	}

	lower := strings.ToLower(message)
	for _, p := range products {
		if !strings.Contains(lower, strings.ToLower(p.Name)) {
			continue
		}
		reply := fmt.Sprintf("%s custa R$ %.2f.", p.Name, p.Price)
		if p.Description != "" {
			reply += " " + p.Description
		}
		return reply
	}

	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}

	return fmt.Sprintf("Temos %d produto(s): %s. Sobre qual deles você gostaria de saber mais?",
		len(products), strings.Join(names, ", "))
}
