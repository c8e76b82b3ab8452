package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/veggiemart/shop-api/internal/query"
	"github.com/veggiemart/shop-api/internal/repository"
	"github.com/veggiemart/shop-api/internal/service"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// ListProducts handles GET /api/products
// Query parameters: category, available, bestSeller, search, sort
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	params := query.ParamsFromValues(r.URL.Query())

	products, err := h.service.ListProducts(r.Context(), params)
	if err != nil {
		h.logger.Error("failed to list products", "query", r.URL.RawQuery, "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to fetch products", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, products, h.logger)
}

// GetProduct handles GET /api/products/{id}
// Malformed identifiers are store failures, not 404s.
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	product, err := h.service.GetProduct(r.Context(), productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			h.logger.Info("product not found", "productId", productID)
			WriteError(w, http.StatusNotFound, "Product not found", h.logger)
			return
		}

		h.logger.Error("failed to get product", "productId", productID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, product, h.logger)
}

// SeedProducts handles POST /api/products/seed
// Wipes the catalog and inserts the sample products.
func (h *ProductHandler) SeedProducts(w http.ResponseWriter, r *http.Request) {
	if err := h.service.SeedProducts(r.Context()); err != nil {
		h.logger.Error("failed to seed products", "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to seed products", h.logger)
		return
	}

	h.logger.Info("products seeded", "count", len(service.SampleProducts()))
	WriteJSON(w, http.StatusOK, MessageResponse{Message: "Products seeded"}, h.logger)
}
