package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/iudanet/paclead/pkg/api"
)

// ProductsHandler проксирует CRUD продуктов.
// Тела запросов и ответов передаются без преобразования.
type ProductsHandler struct {
	logger  *slog.Logger
	backend Backend
}

// NewProductsHandler создает handler продуктов
func NewProductsHandler(logger *slog.Logger, backend Backend) *ProductsHandler {
	return &ProductsHandler{logger: logger, backend: backend}
}

// List обрабатывает GET /api/produtos
func (h *ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token, _ := TokenFromContext(ctx)

	products, err := h.backend.ListProducts(ctx, token)
	if err != nil {
		proxyError(w, r, h.logger, err, MsgListProductsFailed, "list products proxy failed")
		return
	}

	sendRaw(w, products, http.StatusOK)
}

// Create обрабатывает POST /api/produtos
func (h *ProductsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token, _ := TokenFromContext(ctx)

	body, err := readRawJSON(r)
	if err != nil {
		internalError(w, r, h.logger, err, "failed to read create product request")
		return
	}

	product, err := h.backend.CreateProduct(ctx, token, body)
	if err != nil {
		proxyError(w, r, h.logger, err, MsgCreateProductFail, "create product proxy failed")
		return
	}

	sendRaw(w, product, http.StatusCreated)
}

// Update обрабатывает PUT /api/produtos/{id}
func (h *ProductsHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token, _ := TokenFromContext(ctx)
	id := mux.Vars(r)["id"]

	body, err := readRawJSON(r)
	if err != nil {
		internalError(w, r, h.logger, err, "failed to read update product request")
		return
	}

	product, err := h.backend.UpdateProduct(ctx, token, id, body)
	if err != nil {
		proxyError(w, r, h.logger, err, MsgUpdateProductFail, "update product proxy failed")
		return
	}

	sendRaw(w, product, http.StatusOK)
}

// Delete обрабатывает DELETE /api/produtos/{id}
// Тело ответа backend игнорируется.
func (h *ProductsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token, _ := TokenFromContext(ctx)
	id := mux.Vars(r)["id"]

	if err := h.backend.DeleteProduct(ctx, token, id); err != nil {
		proxyError(w, r, h.logger, err, MsgDeleteProductFail, "delete product proxy failed")
		return
	}

	h.logger.InfoContext(ctx, "product deleted", slog.String("product_id", id))

	sendJSON(w, api.MessageResponse{Message: api.MsgProductDeleted}, http.StatusOK)
}
