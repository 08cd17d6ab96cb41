package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/paclead/internal/devbackend/token"
)

type contextKey string

// UserIDKey ключ id аутентифицированного пользователя в контексте
const UserIDKey contextKey = "user_id"

// TokenValidator проверяет access token
type TokenValidator interface {
	Validate(tokenString string) (*token.Claims, error)
}

// WithUserID кладет id пользователя в контекст
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// UserIDFromContext извлекает id пользователя из контекста
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(UserIDKey).(int64)
	return id, ok
}

// Authenticate проверяет Bearer JWT и кладет id пользователя в контекст
func Authenticate(tokens TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || raw == "" {
				writeDetail(w, DetailNotAuthenticated, http.StatusUnauthorized)
				return
			}

			claims, err := tokens.Validate(strings.TrimSpace(raw))
			if err != nil {
				logger.InfoContext(r.Context(), "token rejected", slog.Any("error", err))
				writeDetail(w, DetailNotAuthenticated, http.StatusUnauthorized)
				return
			}

			userID, err := claims.UserID()
			if err != nil {
				logger.InfoContext(r.Context(), "token rejected", slog.Any("error", err))
				writeDetail(w, DetailNotAuthenticated, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}
