// Package handlers HTTP handlers dev backend.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// maxBodySize ограничение размера тела запроса
const maxBodySize = 1 << 20

// Тексты detail в ответах с ошибкой
const (
	DetailEmailTaken       = "Email já cadastrado"
	DetailBadCredentials   = "Email ou senha incorretos"
	DetailNotAuthenticated = "Não autenticado"
	DetailProductNotFound  = "Produto não encontrado"
	DetailUserNotFound     = "Usuário não encontrado"
	DetailInvalidJSON      = "JSON inválido"
	DetailInternal         = "Erro interno"
)

var errInvalidJSON = errors.New("invalid JSON body")

// detailResponse тело ответа с ошибкой: строка или список ошибок полей
type detailResponse struct {
	Detail any `json:"detail"`
}

// fieldError ошибка проверки поля запроса
type fieldError struct {
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
	Loc  []string `json:"loc"`
}

func missingField(name string) fieldError {
	return fieldError{Loc: []string{"body", name}, Msg: "field required", Type: "value_error.missing"}
}

func invalidField(loc, name, msg string) fieldError {
	return fieldError{Loc: []string{loc, name}, Msg: msg, Type: "value_error"}
}

func writeJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func writeDetail(w http.ResponseWriter, detail string, statusCode int) {
	writeJSON(w, detailResponse{Detail: detail}, statusCode)
}

// writeValidation отвечает 422 со списком ошибок полей
func writeValidation(w http.ResponseWriter, errs []fieldError) {
	writeJSON(w, detailResponse{Detail: errs}, http.StatusUnprocessableEntity)
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errInvalidJSON, err)
	}
	return nil
}

func internalError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, logMsg string) {
	logger.ErrorContext(r.Context(), logMsg, slog.Any("error", err))
	writeDetail(w, DetailInternal, http.StatusInternalServerError)
}
