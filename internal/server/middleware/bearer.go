package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/paclead/internal/server/handlers"
	"github.com/iudanet/paclead/pkg/api"
)

const bearerPrefix = "Bearer "

// BearerMiddleware пропускает запрос дальше только с заголовком
// "Authorization: Bearer <token>". Токен не проверяется, он кладется в контекст
// запроса и без изменений передается на backend.
func BearerMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, bearerPrefix) {
				logger.WarnContext(r.Context(), "missing bearer token",
					"method", r.Method,
					"path", r.URL.Path,
					"header_present", authHeader != "",
				)
				writeError(w, api.MsgMissingToken, http.StatusUnauthorized)
				return
			}

			ctx := handlers.WithToken(r.Context(), BearerToken(authHeader))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken возвращает токен из значения заголовка Authorization:
// часть после "Bearer " до следующего пробела
func BearerToken(authHeader string) string {
	token := strings.TrimPrefix(authHeader, bearerPrefix)
	if i := strings.IndexByte(token, ' '); i >= 0 {
		token = token[:i]
	}
	return token
}
