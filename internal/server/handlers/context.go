package handlers

import "context"

// contextKey тип для ключей контекста
type contextKey string

// TokenKey ключ для хранения bearer токена в контексте
const TokenKey contextKey = "bearer_token"

// WithToken кладет bearer токен запроса в контекст
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}

// TokenFromContext извлекает bearer токен из контекста запроса
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenKey).(string)
	return token, ok
}
