package handlers

import (
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/iudanet/paclead/internal/devbackend/storage"
)

// productRequest тело POST /products/ и PUT /products/{id}
type productRequest struct {
	Price       *float64 `json:"price"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
}

// productResponse товар в ответах backend
type productResponse struct {
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
}

func newProductResponse(p *storage.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ProductsHandler CRUD товаров текущего пользователя
type ProductsHandler struct {
	products storage.ProductStorage
	logger   *slog.Logger
}

// NewProductsHandler создает ProductsHandler
func NewProductsHandler(logger *slog.Logger, products storage.ProductStorage) *ProductsHandler {
	return &ProductsHandler{
		products: products,
		logger:   logger,
	}
}

// List обрабатывает GET /products/
func (h *ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	products, err := h.products.ListProducts(r.Context(), userID)
	if err != nil {
		internalError(w, r, h.logger, err, "failed to list products")
		return
	}

	resp := make([]productResponse, 0, len(products))
	for i := range products {
		resp = append(resp, newProductResponse(&products[i]))
	}

	writeJSON(w, resp, http.StatusOK)
}

// Create обрабатывает POST /products/
func (h *ProductsHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	product, ok := decodeProduct(w, r)
	if !ok {
		return
	}
	product.UserID = userID

	if err := h.products.CreateProduct(r.Context(), product); err != nil {
		internalError(w, r, h.logger, err, "failed to create product")
		return
	}

	writeJSON(w, newProductResponse(product), http.StatusCreated)
}

// Update обрабатывает PUT /products/{id}
func (h *ProductsHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	productID, ok := productIDFromPath(w, r)
	if !ok {
		return
	}

	product, ok := decodeProduct(w, r)
	if !ok {
		return
	}
	product.ID = productID
	product.UserID = userID

	if err := h.products.UpdateProduct(r.Context(), product); err != nil {
		if errors.Is(err, storage.ErrProductNotFound) {
			writeDetail(w, DetailProductNotFound, http.StatusNotFound)
			return
		}
		internalError(w, r, h.logger, err, "failed to update product")
		return
	}

	writeJSON(w, newProductResponse(product), http.StatusOK)
}

// Delete обрабатывает DELETE /products/{id}
func (h *ProductsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	productID, ok := productIDFromPath(w, r)
	if !ok {
		return
	}

	if err := h.products.DeleteProduct(r.Context(), userID, productID); err != nil {
		if errors.Is(err, storage.ErrProductNotFound) {
			writeDetail(w, DetailProductNotFound, http.StatusNotFound)
			return
		}
		internalError(w, r, h.logger, err, "failed to delete product")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func requireUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeDetail(w, DetailNotAuthenticated, http.StatusUnauthorized)
	}
	return userID, ok
}

func productIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeValidation(w, []fieldError{invalidField("path", "id", "value is not a valid integer")})
		return 0, false
	}
	return id, true
}

// decodeProduct читает и проверяет тело товара
func decodeProduct(w http.ResponseWriter, r *http.Request) (*storage.Product, bool) {
	var req productRequest
	if err := decodeBody(r, &req); err != nil {
		writeDetail(w, DetailInvalidJSON, http.StatusBadRequest)
		return nil, false
	}

	var errs []fieldError
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, missingField("name"))
	}
	switch {
	case req.Price == nil:
		errs = append(errs, missingField("price"))
	case *req.Price < 0 || math.IsNaN(*req.Price) || math.IsInf(*req.Price, 0):
		errs = append(errs, invalidField("body", "price", "ensure this value is greater than or equal to 0"))
	}
	if len(errs) > 0 {
		writeValidation(w, errs)
		return nil, false
	}

	return &storage.Product{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       *req.Price,
	}, true
}
