package backend

import (
	"encoding/json"
	"fmt"

	"github.com/iudanet/paclead/pkg/api"
)

// LoginRequest тело POST /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse ответ backend на успешный вход
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	UserID      api.ID `json:"user_id"`
}

// RegisterRequest тело POST /auth/register
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"full_name"`
	CompanyName string `json:"company_name"`
	AITone      string `json:"ai_tone"`
}

// UserResponse пользователь в формате backend (GET/PUT /auth/me, регистрация)
type UserResponse struct {
	ID          api.ID `json:"id"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	CompanyName string `json:"company_name,omitempty"`
	AITone      string `json:"ai_tone"`
	// AccessToken backend при регистрации обычно не возвращает
	AccessToken string `json:"access_token,omitempty"`
}

// RequireID проверяет, что backend вернул id пользователя
func (u *UserResponse) RequireID() error {
	if u.ID == "" {
		return fmt.Errorf("%w: user response has no id", ErrMalformedResponse)
	}
	return nil
}

// UpdateMeRequest тело PUT /auth/me
type UpdateMeRequest struct {
	AITone string `json:"ai_tone"`
}

// WebhookRequest тело POST /webhook/
type WebhookRequest struct {
	Mensagem string          `json:"mensagem"`
	UserID   json.RawMessage `json:"user_id,omitempty"`
}

// WebhookResponse ответ webhook
type WebhookResponse struct {
	Resposta string `json:"resposta"`
}

// errorBody тело ответа backend с ошибкой
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}
