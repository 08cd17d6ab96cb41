package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// RouteUnmatched значение route для запросов, не попавших ни в один маршрут
const RouteUnmatched = "unmatched"

// accessEntry заполняется внутренними слоями во время обработки запроса
type accessEntry struct {
	route string
}

type accessEntryKey struct{}

// statusRecorder запоминает код ответа и число записанных байт
type statusRecorder struct {
	http.ResponseWriter
	status  int
	bytes   int64
	written bool
}

func (rec *statusRecorder) WriteHeader(code int) {
	if !rec.written {
		rec.status = code
		rec.written = true
	}
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	rec.written = true
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += int64(n)
	return n, err
}

// AccessLog пишет одну запись на запрос: метод, шаблон маршрута, путь, статус,
// длительность, размер ответа и request id. Заголовки и тела не логируются:
// в них bearer токены, пароли и сообщения чата. Пути из skip не логируются.
//
// Шаблон маршрута заполняет RouteTemplate, подключенный к mux роутеру.
func AccessLog(logger *slog.Logger, skip ...string) func(http.Handler) http.Handler {
	skipped := make(map[string]struct{}, len(skip))
	for _, path := range skip {
		skipped[path] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := skipped[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			entry := &accessEntry{route: RouteUnmatched}
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), accessEntryKey{}, entry)))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("route", entry.route),
				slog.String("path", r.URL.Path),
				slog.Int("status", rec.status),
				slog.Duration("duration", time.Since(start)),
				slog.Int64("bytes", rec.bytes),
			}
			if id, ok := RequestIDFromContext(r.Context()); ok {
				attrs = append(attrs, slog.String("request_id", id))
			}

			logger.LogAttrs(r.Context(), accessLevel(rec.status), "request completed", attrs...)
		})
	}
}

// RouteTemplate mux middleware: записывает шаблон совпавшего маршрута
// ("/api/produtos/{id}") в запись AccessLog
func RouteTemplate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if entry, ok := r.Context().Value(accessEntryKey{}).(*accessEntry); ok {
			if route := mux.CurrentRoute(r); route != nil {
				if tmpl, err := route.GetPathTemplate(); err == nil {
					entry.route = tmpl
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}

// accessLevel 5xx ошибка сервера, 4xx предупреждение
func accessLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
