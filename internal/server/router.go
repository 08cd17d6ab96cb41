package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/iudanet/paclead/internal/server/handlers"
	"github.com/iudanet/paclead/internal/server/middleware"
	"github.com/iudanet/paclead/pkg/api"
)

// Маршруты прокси
const (
	PathHealth   = "/api/health"
	PathLogin    = "/api/auth/login"
	PathRegister = "/api/auth/register"
	PathVerify   = "/api/auth/verify"
	PathSettings = "/api/configuracoes"
	PathProducts = "/api/produtos"
	PathProduct  = "/api/produtos/{id}"
	PathWebhook  = "/api/webhook"
)

// routes набор handlers, из которых собирается роутер
type routes struct {
	health   *handlers.HealthHandler
	auth     *handlers.AuthHandler
	settings *handlers.SettingsHandler
	products *handlers.ProductsHandler
	webhook  *handlers.WebhookHandler
}

// newRouter собирает роутер: публичные маршруты и защищенные Bearer токеном
func newRouter(logger *slog.Logger, h routes, limiter *middleware.PathRateLimiter) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)
	r.Use(middleware.RouteTemplate)

	r.HandleFunc(PathHealth, h.health.Health).Methods(http.MethodGet)
	r.HandleFunc(PathLogin, h.auth.Login).Methods(http.MethodPost)
	r.HandleFunc(PathRegister, h.auth.Register).Methods(http.MethodPost)

	protected := r.NewRoute().Subrouter()
	protected.Use(middleware.BearerMiddleware(logger))
	protected.HandleFunc(PathVerify, h.auth.Verify).Methods(http.MethodGet)
	protected.HandleFunc(PathSettings, h.settings.Get).Methods(http.MethodGet)
	protected.HandleFunc(PathSettings, h.settings.Put).Methods(http.MethodPut)
	protected.HandleFunc(PathProducts, h.products.List).Methods(http.MethodGet)
	protected.HandleFunc(PathProducts, h.products.Create).Methods(http.MethodPost)
	protected.HandleFunc(PathProduct, h.products.Update).Methods(http.MethodPut)
	protected.HandleFunc(PathProduct, h.products.Delete).Methods(http.MethodDelete)
	protected.HandleFunc(PathWebhook, h.webhook.Send).Methods(http.MethodPost)

	// Порядок: recovery снаружи, чтобы перехватить панику в любом слое
	var handler http.Handler = r
	handler = limiter.Middleware(handler)
	handler = middleware.AccessLog(logger, PathHealth)(handler)
	handler = middleware.RequestIDMiddleware(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	return handler
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeJSONError(w, "Rota não encontrada", http.StatusNotFound)
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeJSONError(w, "Método não permitido", http.StatusMethodNotAllowed)
}

func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: message})
}
