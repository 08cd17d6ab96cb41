package middleware

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/paclead/pkg/api"
)

func TestNewRateLimiter(t *testing.T) {
	rate := 10
	window := 1 * time.Minute

	limiter := NewRateLimiter(rate, window)

	assert.NotNil(t, limiter)
	assert.Equal(t, rate, limiter.rate)
	assert.Equal(t, window, limiter.window)
	assert.NotNil(t, limiter.buckets)
	assert.NotNil(t, limiter.cleanupC)

	// Cleanup
	limiter.Stop()
}

func TestRateLimiter_Allow(t *testing.T) {
	t.Run("First requests within limit are allowed", func(t *testing.T) {
		limiter := NewRateLimiter(5, 1*time.Minute)
		defer limiter.Stop()

		key := "192.168.1.1"

		// Первые 5 запросов должны пройти
		for i := 0; i < 5; i++ {
			allowed := limiter.Allow(key)
			assert.True(t, allowed, fmt.Sprintf("request %d should be allowed", i+1))
		}
	})

	t.Run("Requests over limit are denied", func(t *testing.T) {
		limiter := NewRateLimiter(3, 1*time.Minute)
		defer limiter.Stop()

		key := "192.168.1.2"

		// Первые 3 запроса проходят
		for i := 0; i < 3; i++ {
			allowed := limiter.Allow(key)
			assert.True(t, allowed)
		}

		// 4-й запрос блокируется
		allowed := limiter.Allow(key)
		assert.False(t, allowed, "request over limit should be denied")
	})

	t.Run("Different keys are tracked separately", func(t *testing.T) {
		limiter := NewRateLimiter(2, 1*time.Minute)
		defer limiter.Stop()

		key1 := "192.168.1.1"
		key2 := "192.168.1.2"

		// key1: 2 запроса проходят
		assert.True(t, limiter.Allow(key1))
		assert.True(t, limiter.Allow(key1))
		assert.False(t, limiter.Allow(key1), "key1 over limit")

		// key2: независимые 2 запроса
		assert.True(t, limiter.Allow(key2))
		assert.True(t, limiter.Allow(key2))
		assert.False(t, limiter.Allow(key2), "key2 over limit")
	})

	t.Run("Tokens refill after window expires", func(t *testing.T) {
		limiter := NewRateLimiter(2, 50*time.Millisecond)
		defer limiter.Stop()

		key := "192.168.1.3"

		// Используем все токены
		assert.True(t, limiter.Allow(key))
		assert.True(t, limiter.Allow(key))
		assert.False(t, limiter.Allow(key), "should be rate limited")

		// Ждем окончания window
		time.Sleep(60 * time.Millisecond)

		// Токены должны обновиться
		assert.True(t, limiter.Allow(key), "tokens should be refilled")
		assert.True(t, limiter.Allow(key), "tokens should be refilled")
	})
}

func newAuthLimiter(t *testing.T, logger *slog.Logger) *PathRateLimiter {
	t.Helper()
	limiter := NewPathRateLimiter([]PathRateLimit{
		{Path: "/api/auth/login", Rate: 2, Window: time.Minute},
		{Path: "/api/auth/register", Rate: 1, Window: time.Minute},
	}, false, logger)
	t.Cleanup(limiter.Stop)
	return limiter
}

func doRequest(handler http.Handler, method, path, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestPathRateLimiter(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Login endpoint has its own limit", func(t *testing.T) {
		handler := newAuthLimiter(t, logger).Middleware(ok)

		for i := 0; i < 2; i++ {
			w := doRequest(handler, http.MethodPost, "/api/auth/login", "192.168.1.1:12345")
			assert.Equal(t, http.StatusOK, w.Code, fmt.Sprintf("request %d should pass", i+1))
		}

		w := doRequest(handler, http.MethodPost, "/api/auth/login", "192.168.1.1:12345")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var resp api.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, MsgRateLimited, resp.Error)
	})

	t.Run("Register endpoint has stricter limit", func(t *testing.T) {
		handler := newAuthLimiter(t, logger).Middleware(ok)

		assert.Equal(t, http.StatusOK, doRequest(handler, http.MethodPost, "/api/auth/register", "192.168.1.2:1").Code)
		assert.Equal(t, http.StatusTooManyRequests, doRequest(handler, http.MethodPost, "/api/auth/register", "192.168.1.2:1").Code)
	})

	t.Run("Different IPs are tracked separately", func(t *testing.T) {
		handler := newAuthLimiter(t, logger).Middleware(ok)

		assert.Equal(t, http.StatusOK, doRequest(handler, http.MethodPost, "/api/auth/register", "10.0.0.1:1").Code)
		assert.Equal(t, http.StatusOK, doRequest(handler, http.MethodPost, "/api/auth/register", "10.0.0.2:1").Code)
		assert.Equal(t, http.StatusTooManyRequests, doRequest(handler, http.MethodPost, "/api/auth/register", "10.0.0.1:2").Code)
	})

	t.Run("Unlisted paths are not limited", func(t *testing.T) {
		handler := newAuthLimiter(t, logger).Middleware(ok)

		for i := 0; i < 20; i++ {
			w := doRequest(handler, http.MethodGet, "/api/produtos", "192.168.1.3:12345")
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("Zero rate disables limiting", func(t *testing.T) {
		limiter := NewPathRateLimiter([]PathRateLimit{{Path: "/api/auth/login", Rate: 0, Window: time.Minute}}, false, logger)
		defer limiter.Stop()
		handler := limiter.Middleware(ok)

		for i := 0; i < 5; i++ {
			assert.Equal(t, http.StatusOK, doRequest(handler, http.MethodPost, "/api/auth/login", "192.168.1.4:1").Code)
		}
	})
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		xff        string
		xRealIP    string
		expectedIP string
		trustProxy bool
	}{
		{
			name:       "X-Forwarded-For with single IP",
			remoteAddr: "10.0.0.1:12345",
			xff:        "192.168.1.1",
			trustProxy: true,
			expectedIP: "192.168.1.1",
		},
		{
			name:       "X-Forwarded-For with multiple IPs",
			remoteAddr: "10.0.0.1:12345",
			xff:        "192.168.1.1, 10.0.0.2, 10.0.0.3",
			trustProxy: true,
			expectedIP: "192.168.1.1", // Первый IP
		},
		{
			name:       "X-Real-IP when X-Forwarded-For is empty",
			remoteAddr: "10.0.0.1:12345",
			xRealIP:    "192.168.2.1",
			trustProxy: true,
			expectedIP: "192.168.2.1",
		},
		{
			name:       "X-Forwarded-For takes precedence over X-Real-IP",
			remoteAddr: "10.0.0.1:12345",
			xff:        "192.168.1.1",
			xRealIP:    "192.168.2.1",
			trustProxy: true,
			expectedIP: "192.168.1.1",
		},
		{
			name:       "Forwarding headers ignored without trusted proxy",
			remoteAddr: "10.0.0.1:12345",
			xff:        "192.168.1.1",
			xRealIP:    "192.168.2.1",
			expectedIP: "10.0.0.1",
		},
		{
			name:       "RemoteAddr when headers are empty",
			remoteAddr: "192.168.3.1:54321",
			trustProxy: true,
			expectedIP: "192.168.3.1",
		},
		{
			name:       "RemoteAddr without port",
			remoteAddr: "192.168.3.2",
			expectedIP: "192.168.3.2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xRealIP != "" {
				req.Header.Set("X-Real-IP", tt.xRealIP)
			}

			ip := getClientIP(req, tt.trustProxy)
			assert.Equal(t, tt.expectedIP, ip)
		})
	}
}

func TestPathRateLimiter_SpoofedForwardedFor(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	send := func(handler http.Handler, xff string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = "203.0.113.7:40000"
		req.Header.Set("X-Forwarded-For", xff)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("rotating header does not reset the bucket", func(t *testing.T) {
		handler := newAuthLimiter(t, logger).Middleware(ok)

		assert.Equal(t, http.StatusOK, send(handler, "10.0.0.1"))
		assert.Equal(t, http.StatusOK, send(handler, "10.0.0.2"))
		assert.Equal(t, http.StatusTooManyRequests, send(handler, "10.0.0.3"))
	})

	t.Run("trusted proxy keys on the forwarded client", func(t *testing.T) {
		limiter := NewPathRateLimiter([]PathRateLimit{
			{Path: "/api/auth/login", Rate: 1, Window: time.Minute},
		}, true, logger)
		defer limiter.Stop()
		handler := limiter.Middleware(ok)

		assert.Equal(t, http.StatusOK, send(handler, "10.0.0.1"))
		assert.Equal(t, http.StatusOK, send(handler, "10.0.0.2"))
		assert.Equal(t, http.StatusTooManyRequests, send(handler, "10.0.0.1"))
	})
}

func TestRateLimiter_CleanupOldBuckets(t *testing.T) {
	limiter := NewRateLimiter(10, 50*time.Millisecond)
	defer limiter.Stop()

	// Создаем несколько buckets
	limiter.Allow("192.168.1.1")
	limiter.Allow("192.168.1.2")
	limiter.Allow("192.168.1.3")

	// Проверяем что buckets созданы
	limiter.mu.RLock()
	bucketCount := len(limiter.buckets)
	limiter.mu.RUnlock()
	assert.Equal(t, 3, bucketCount)

	// Ждем больше чем window * 2 для cleanup
	time.Sleep(250 * time.Millisecond)

	// Buckets должны быть очищены
	limiter.mu.RLock()
	bucketCountAfter := len(limiter.buckets)
	limiter.mu.RUnlock()
	assert.Equal(t, 0, bucketCountAfter, "old buckets should be cleaned up")
}

func TestPathRateLimiter_LogsExceededRequests(t *testing.T) {
	var logBuf strings.Builder
	logger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	limiter := NewPathRateLimiter([]PathRateLimit{{Path: "/api/auth/login", Rate: 1, Window: time.Minute}}, false, logger)
	defer limiter.Stop()
	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Первый запрос проходит
	doRequest(handler, http.MethodPost, "/api/auth/login", "192.168.1.1:12345")

	// Второй запрос блокируется и логируется
	w := doRequest(handler, http.MethodPost, "/api/auth/login", "192.168.1.1:12345")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	logOutput := logBuf.String()
	assert.Contains(t, logOutput, "Rate limit exceeded")
	assert.Contains(t, logOutput, "192.168.1.1")
	assert.Contains(t, logOutput, "/api/auth/login")
	assert.Contains(t, logOutput, "POST")
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)
	limiter.Stop()
	assert.NotPanics(t, limiter.Stop)
}
