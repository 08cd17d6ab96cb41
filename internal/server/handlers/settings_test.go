package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/paclead/internal/backend"
	"github.com/iudanet/paclead/pkg/api"
)

func TestSettingsHandler_Get(t *testing.T) {
	mb := &mockBackend{
		meFn: func(ctx context.Context, token string) (*backend.UserResponse, error) {
			assert.Equal(t, "tok", token)
			return &backend.UserResponse{ID: "1", AITone: "Seja breve."}, nil
		},
	}
	handler := NewSettingsHandler(setupTestLogger(), mb)

	w := httptest.NewRecorder()
	handler.Get(w, newRequest(http.MethodGet, "/api/configuracoes", "", "tok"))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"aiTone":"Seja breve."}`, w.Body.String())
}

func TestSettingsHandler_Put(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		var got backend.UpdateMeRequest
		mb := &mockBackend{
			updateMeFn: func(ctx context.Context, token string, req backend.UpdateMeRequest) (*backend.UserResponse, error) {
				got = req
				return &backend.UserResponse{AITone: req.AITone}, nil
			},
		}
		handler := NewSettingsHandler(setupTestLogger(), mb)

		w := httptest.NewRecorder()
		handler.Put(w, newRequest(http.MethodPut, "/api/configuracoes", `{"aiTone":"X"}`, "tok"))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, backend.UpdateMeRequest{AITone: "X"}, got)
		assert.JSONEq(t, `{"aiTone":"X"}`, w.Body.String())
	})

	t.Run("fallback message", func(t *testing.T) {
		mb := &mockBackend{
			updateMeFn: func(ctx context.Context, token string, req backend.UpdateMeRequest) (*backend.UserResponse, error) {
				return nil, &backend.StatusError{StatusCode: http.StatusBadGateway}
			},
		}
		handler := NewSettingsHandler(setupTestLogger(), mb)

		w := httptest.NewRecorder()
		handler.Put(w, newRequest(http.MethodPut, "/api/configuracoes", `{"aiTone":"X"}`, "tok"))

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, MsgSaveSettingsFailed, decodeErrorBody(t, w))
	})

	t.Run("malformed backend response is 500", func(t *testing.T) {
		mb := &mockBackend{
			updateMeFn: func(ctx context.Context, token string, req backend.UpdateMeRequest) (*backend.UserResponse, error) {
				return nil, errors.Join(backend.ErrMalformedResponse, errors.New("unexpected EOF"))
			},
		}
		handler := NewSettingsHandler(setupTestLogger(), mb)

		w := httptest.NewRecorder()
		handler.Put(w, newRequest(http.MethodPut, "/api/configuracoes", `{"aiTone":"X"}`, "tok"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, api.MsgInternalError, decodeErrorBody(t, w))
	})
}
