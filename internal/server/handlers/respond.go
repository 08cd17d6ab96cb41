package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/iudanet/paclead/internal/backend"
	"github.com/iudanet/paclead/pkg/api"
)

// maxBodySize ограничение размера тела входящего запроса
const maxBodySize = 1 << 20

// errInvalidJSON тело запроса не является корректным JSON
var errInvalidJSON = errors.New("invalid JSON body")

// sendJSON отправляет JSON ответ
func sendJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// sendRaw отправляет готовый JSON без повторного кодирования
func sendRaw(w http.ResponseWriter, data json.RawMessage, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(data)
}

// sendError отправляет JSON ответ с ошибкой
func sendError(w http.ResponseWriter, message string, statusCode int) {
	sendJSON(w, api.ErrorResponse{Error: message}, statusCode)
}

// decodeJSON читает тело запроса в v
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errInvalidJSON, err)
	}
	return nil
}

// readRawJSON читает тело запроса без разбора полей, проверяя что это JSON
func readRawJSON(r *http.Request) (json.RawMessage, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	if !json.Valid(body) {
		return nil, errInvalidJSON
	}
	return body, nil
}

// proxyError переводит ошибку вызова backend в ответ клиенту.
// Статус backend передается как есть, текст берется из detail или fallback.
// Остальные ошибки логируются и превращаются в 500 с общим сообщением.
func proxyError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, fallback, logMsg string) {
	var statusErr *backend.StatusError
	if errors.As(err, &statusErr) {
		message := statusErr.Detail
		if message == "" {
			message = fallback
		}
		logger.WarnContext(r.Context(), logMsg,
			slog.Int("backend_status", statusErr.StatusCode),
			slog.String("detail", statusErr.Detail))
		sendError(w, message, statusErr.StatusCode)
		return
	}

	logger.ErrorContext(r.Context(), logMsg, slog.Any("error", err))
	sendError(w, api.MsgInternalError, http.StatusInternalServerError)
}

// internalError логирует ошибку и отвечает 500
func internalError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, logMsg string) {
	logger.ErrorContext(r.Context(), logMsg, slog.Any("error", err))
	sendError(w, api.MsgInternalError, http.StatusInternalServerError)
}
