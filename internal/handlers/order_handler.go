package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/veggiemart/shop-api/internal/models"
	"github.com/veggiemart/shop-api/internal/service"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// CreateOrder handles POST /api/orders
// The body is stored as submitted; totals are not recomputed.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var order models.Order

	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		h.log.Error("failed to decode order request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	created, err := h.orderService.CreateOrder(r.Context(), &order)
	if err != nil {
		h.log.Error("failed to create order", "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to create order", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, created, h.log)
	h.log.Info("order created successfully", "order_id", created.ID.Hex(), "items_count", len(created.OrderItems))
}

// ListUserOrders handles GET /api/orders/{userId}
func (h *OrderHandler) ListUserOrders(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	orders, err := h.orderService.ListUserOrders(r.Context(), userID)
	if err != nil {
		h.log.Error("failed to list orders", "userId", userID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to fetch orders", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, orders, h.log)
}
