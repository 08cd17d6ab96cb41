package backend

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedResponse ответ backend не удалось разобрать как JSON
var ErrMalformedResponse = errors.New("malformed backend response")

// StatusError ответ backend с кодом вне диапазона 2xx
type StatusError struct {
	// Detail поле detail из тела ответа, пустое если его нет
	Detail     string
	StatusCode int
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend error (%d)", e.StatusCode)
	}
	return fmt.Sprintf("backend error (%d): %s", e.StatusCode, e.Detail)
}

// parseStatusError разбирает тело ответа с ошибкой.
// Тело обязано быть JSON, иначе возвращается ErrMalformedResponse.
func parseStatusError(statusCode int, body []byte) error {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return fmt.Errorf("%w: status %d: %v", ErrMalformedResponse, statusCode, err)
	}

	return &StatusError{
		StatusCode: statusCode,
		Detail:     detailString(eb.Detail),
	}
}

// detailString приводит detail к строке.
// Строка возвращается как есть, другие JSON значения в компактном виде.
// Ложные значения (null, false, 0, "") дают пустую строку, и прокси
// отвечает локализованным сообщением маршрута.
func detailString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) || bytes.Equal(raw, []byte("false")) {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil && n == 0 {
		return ""
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
