package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeAccessLog разбирает единственную JSON запись лога
func decodeAccessLog(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "expected exactly one access log record")

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	return record
}

// newLoggedRouter собирает mux роутер с маршрутами товаров под AccessLog
func newLoggedRouter(logger *slog.Logger, status int) http.Handler {
	r := mux.NewRouter()
	r.Use(RouteTemplate)
	reply := func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}
	r.HandleFunc("/api/produtos", reply).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/api/produtos/{id}", reply).Methods(http.MethodPut, http.MethodDelete)

	protected := r.NewRoute().Subrouter()
	protected.HandleFunc("/api/webhook", reply).Methods(http.MethodPost)

	return AccessLog(logger, "/api/health")(r)
}

func TestAccessLog_RecordsRouteTemplate(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		path      string
		wantRoute string
		wantLevel string
		status    int
	}{
		{
			name:      "list",
			method:    http.MethodGet,
			path:      "/api/produtos",
			status:    http.StatusOK,
			wantRoute: "/api/produtos",
			wantLevel: "INFO",
		},
		{
			name:      "path parameter collapses to template",
			method:    http.MethodDelete,
			path:      "/api/produtos/42",
			status:    http.StatusNotFound,
			wantRoute: "/api/produtos/{id}",
			wantLevel: "WARN",
		},
		{
			name:      "subrouter route",
			method:    http.MethodPost,
			path:      "/api/webhook",
			status:    http.StatusBadGateway,
			wantRoute: "/api/webhook",
			wantLevel: "ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			handler := newLoggedRouter(slog.New(slog.NewJSONHandler(&buf, nil)), tt.status)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			require.Equal(t, tt.status, w.Code)

			record := decodeAccessLog(t, &buf)
			assert.Equal(t, "request completed", record["msg"])
			assert.Equal(t, tt.wantLevel, record["level"])
			assert.Equal(t, tt.method, record["method"])
			assert.Equal(t, tt.wantRoute, record["route"])
			assert.Equal(t, tt.path, record["path"])
			assert.EqualValues(t, tt.status, record["status"])
			assert.EqualValues(t, len(`{"ok":true}`), record["bytes"])
			assert.Contains(t, record, "duration")
		})
	}
}

func TestAccessLog_UnmatchedRoute(t *testing.T) {
	var buf bytes.Buffer
	handler := newLoggedRouter(slog.New(slog.NewJSONHandler(&buf, nil)), http.StatusOK)

	t.Run("unknown path", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		record := decodeAccessLog(t, &buf)
		assert.Equal(t, RouteUnmatched, record["route"])
		assert.Equal(t, "WARN", record["level"])
	})

	t.Run("method mismatch", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/produtos/1", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.Equal(t, RouteUnmatched, decodeAccessLog(t, &buf)["route"])
	})

	t.Run("handler without router", func(t *testing.T) {
		buf.Reset()
		plain := AccessLog(slog.New(slog.NewJSONHandler(&buf, nil)))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		w := httptest.NewRecorder()
		plain.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/anything", nil))

		record := decodeAccessLog(t, &buf)
		assert.Equal(t, RouteUnmatched, record["route"])
		assert.EqualValues(t, http.StatusNoContent, record["status"])
	})
}

func TestAccessLog_RequestIDAndNoSecrets(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := RequestIDMiddleware(AccessLog(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"a@b.c","password":"hunter22"}`))
	req.Header.Set("Authorization", "Bearer secret-token")
	req.Header.Set("User-Agent", "paclead-cli/1.0")
	req.Header.Set(RequestIDHeader, "req-123")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, "req-123", decodeAccessLog(t, &buf)["request_id"])
	assert.NotContains(t, buf.String(), "secret-token")
	assert.NotContains(t, buf.String(), "hunter22")
	assert.NotContains(t, buf.String(), "paclead-cli")
}

func TestAccessLog_SkipPaths(t *testing.T) {
	var buf bytes.Buffer
	handler := newLoggedRouter(slog.New(slog.NewJSONHandler(&buf, nil)), http.StatusOK)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Empty(t, buf.String(), "skipped path should not be logged")

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/produtos", nil))
	assert.Equal(t, "/api/produtos", decodeAccessLog(t, &buf)["route"])
}

func TestStatusRecorder(t *testing.T) {
	t.Run("defaults to 200 on bare write", func(t *testing.T) {
		rec := &statusRecorder{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}
		_, _ = rec.Write([]byte("Hello, "))
		_, _ = rec.Write([]byte("World!"))

		assert.Equal(t, http.StatusOK, rec.status)
		assert.Equal(t, int64(13), rec.bytes)
	})

	t.Run("first WriteHeader wins", func(t *testing.T) {
		rec := &statusRecorder{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}
		rec.WriteHeader(http.StatusCreated)
		rec.WriteHeader(http.StatusInternalServerError)

		assert.Equal(t, http.StatusCreated, rec.status)
	})

	t.Run("WriteHeader after body is ignored", func(t *testing.T) {
		rec := &statusRecorder{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}
		_, _ = rec.Write([]byte("x"))
		rec.WriteHeader(http.StatusTeapot)

		assert.Equal(t, http.StatusOK, rec.status)
	})
}

func TestAccessLevel(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, accessLevel(http.StatusOK))
	assert.Equal(t, slog.LevelInfo, accessLevel(http.StatusFound))
	assert.Equal(t, slog.LevelWarn, accessLevel(http.StatusTooManyRequests))
	assert.Equal(t, slog.LevelError, accessLevel(http.StatusServiceUnavailable))
}
