package api

import "encoding/json"

// WebhookRequest сообщение для тестового чата.
// UserID передается на backend как есть и не обязателен.
type WebhookRequest struct {
	Message string          `json:"message"`
	UserID  json.RawMessage `json:"user_id,omitempty"`
}

// WebhookResponse ответ ИИ
type WebhookResponse struct {
	Response string `json:"response"`
}
