// Package remap содержит функции преобразования полей между форматом
// frontend (api) и форматом удаленного backend. Каждая функция отвечает
// за один маршрут и не имеет побочных эффектов.
package remap

import (
	"github.com/iudanet/paclead/internal/backend"
	"github.com/iudanet/paclead/pkg/api"
)

// DefaultAITone тон ИИ, с которым регистрируется новый пользователь
const DefaultAITone = "Seja profissional e prestativo ao responder sobre nossos produtos."

// LoginToBackend login передается без изменений
func LoginToBackend(req api.LoginRequest) backend.LoginRequest {
	return backend.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	}
}

// LoginFromBackend собирает ответ на вход.
// Backend не возвращает профиль при логине, поэтому email берется из запроса,
// а имя остается пустым.
func LoginFromBackend(req api.LoginRequest, resp backend.LoginResponse) api.AuthResponse {
	return api.AuthResponse{
		User: api.User{
			ID:    resp.UserID,
			Email: req.Email,
			Name:  "",
		},
		Token: resp.AccessToken,
	}
}

// RegisterToBackend переводит name в full_name и дополняет обязательные поля backend
func RegisterToBackend(req api.RegisterRequest, aiTone string) backend.RegisterRequest {
	if aiTone == "" {
		aiTone = DefaultAITone
	}
	return backend.RegisterRequest{
		Email:       req.Email,
		Password:    req.Password,
		FullName:    req.Name,
		CompanyName: "",
		AITone:      aiTone,
	}
}

// RegisterFromBackend собирает ответ на регистрацию.
// Token пустой, если backend его не выдал.
func RegisterFromBackend(resp backend.UserResponse) api.AuthResponse {
	return api.AuthResponse{
		User:  UserFromBackend(resp),
		Token: resp.AccessToken,
	}
}

// UserFromBackend full_name -> name
func UserFromBackend(resp backend.UserResponse) api.User {
	return api.User{
		ID:    resp.ID,
		Email: resp.Email,
		Name:  resp.FullName,
	}
}

// VerifyFromBackend ответ на проверку токена
func VerifyFromBackend(resp backend.UserResponse) api.VerifyResponse {
	return api.VerifyResponse{User: UserFromBackend(resp)}
}

// SettingsToBackend aiTone -> ai_tone
func SettingsToBackend(s api.Settings) backend.UpdateMeRequest {
	return backend.UpdateMeRequest{AITone: s.AITone}
}

// SettingsFromBackend ai_tone -> aiTone
func SettingsFromBackend(resp backend.UserResponse) api.Settings {
	return api.Settings{AITone: resp.AITone}
}

// WebhookToBackend message -> mensagem, user_id без изменений
func WebhookToBackend(req api.WebhookRequest) backend.WebhookRequest {
	return backend.WebhookRequest{
		Mensagem: req.Message,
		UserID:   req.UserID,
	}
}

// WebhookFromBackend resposta -> response
func WebhookFromBackend(resp backend.WebhookResponse) api.WebhookResponse {
	return api.WebhookResponse{Response: resp.Resposta}
}
