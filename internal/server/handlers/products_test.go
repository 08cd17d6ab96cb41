package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/paclead/internal/backend"
	"github.com/iudanet/paclead/pkg/api"
)

func TestProductsHandler_List(t *testing.T) {
	mb := &mockBackend{
		listProductsFn: func(ctx context.Context, token string) (json.RawMessage, error) {
			return json.RawMessage(`[{"id":1,"name":"A","description":"d","price":9.5,"extra":true}]`), nil
		},
	}
	handler := NewProductsHandler(setupTestLogger(), mb)

	w := httptest.NewRecorder()
	handler.List(w, newRequest(http.MethodGet, "/api/produtos", "", "tok"))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"name":"A","description":"d","price":9.5,"extra":true}]`, w.Body.String())
}

func TestProductsHandler_Create(t *testing.T) {
	t.Run("passthrough with 201", func(t *testing.T) {
		var got json.RawMessage
		mb := &mockBackend{
			createProductFn: func(ctx context.Context, token string, product json.RawMessage) (json.RawMessage, error) {
				got = product
				return json.RawMessage(`{"id":3,"name":"B","description":"","price":1}`), nil
			},
		}
		handler := NewProductsHandler(setupTestLogger(), mb)

		w := httptest.NewRecorder()
		handler.Create(w, newRequest(http.MethodPost, "/api/produtos", `{"name":"B","description":"","price":1}`, "tok"))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"name":"B","description":"","price":1}`, string(got))
		assert.JSONEq(t, `{"id":3,"name":"B","description":"","price":1}`, w.Body.String())
	})

	t.Run("structured detail is compact-encoded", func(t *testing.T) {
		mb := &mockBackend{
			createProductFn: func(ctx context.Context, token string, product json.RawMessage) (json.RawMessage, error) {
				return nil, &backend.StatusError{StatusCode: http.StatusUnprocessableEntity, Detail: `[{"loc":["body","price"]}]`}
			},
		}
		handler := NewProductsHandler(setupTestLogger(), mb)

		w := httptest.NewRecorder()
		handler.Create(w, newRequest(http.MethodPost, "/api/produtos", `{"name":"B"}`, "tok"))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, `[{"loc":["body","price"]}]`, decodeErrorBody(t, w))
	})

	t.Run("invalid JSON body is 500", func(t *testing.T) {
		handler := NewProductsHandler(setupTestLogger(), &mockBackend{})

		w := httptest.NewRecorder()
		handler.Create(w, newRequest(http.MethodPost, "/api/produtos", `name=B`, "tok"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, api.MsgInternalError, decodeErrorBody(t, w))
	})
}

func TestProductsHandler_UpdateAndDelete(t *testing.T) {
	var updatedID, deletedID string
	mb := &mockBackend{
		updateProductFn: func(ctx context.Context, token, id string, product json.RawMessage) (json.RawMessage, error) {
			updatedID = id
			return product, nil
		},
		deleteProductFn: func(ctx context.Context, token, id string) error {
			deletedID = id
			if id == "404" {
				return &backend.StatusError{StatusCode: http.StatusNotFound, Detail: "Produto não encontrado"}
			}
			return nil
		},
	}
	handler := NewProductsHandler(setupTestLogger(), mb)

	router := mux.NewRouter()
	router.HandleFunc("/api/produtos/{id}", handler.Update).Methods(http.MethodPut)
	router.HandleFunc("/api/produtos/{id}", handler.Delete).Methods(http.MethodDelete)

	t.Run("update", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, newRequest(http.MethodPut, "/api/produtos/42", `{"name":"C","price":2}`, "tok"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "42", updatedID)
		assert.JSONEq(t, `{"name":"C","price":2}`, w.Body.String())
	})

	t.Run("delete replaces backend body", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, newRequest(http.MethodDelete, "/api/produtos/42", "", "tok"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "42", deletedID)
		assert.JSONEq(t, `{"message":"Produto deletado com sucesso"}`, w.Body.String())
	})

	t.Run("delete missing product", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, newRequest(http.MethodDelete, "/api/produtos/404", "", "tok"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Produto não encontrado", decodeErrorBody(t, w))
	})
}
