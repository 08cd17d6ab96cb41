package api

// User представляет пользователя во frontend-формате
type User struct {
	ID    ID     `json:"id"`    // id пользователя на backend
	Email string `json:"email"` // email пользователя
	Name  string `json:"name"`  // имя (full_name на backend)
}

// LoginRequest представляет запрос на вход
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest представляет запрос на регистрацию
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse ответ на login/register.
// Token пустой, если backend не выдал access_token (так ведет себя регистрация).
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token,omitempty"`
}

// VerifyResponse ответ на проверку токена
type VerifyResponse struct {
	User User `json:"user"`
}
