package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/veggiemart/shop-api/internal/events"
	"github.com/veggiemart/shop-api/internal/models"
	"github.com/veggiemart/shop-api/internal/repository"
)

const publishTimeout = 5 * time.Second

// OrderService handles order business logic
type OrderService struct {
	repo      repository.OrderRepository
	publisher events.Publisher
	log       *slog.Logger
}

// NewOrderService creates a new order service. A nil publisher disables events.
func NewOrderService(repo repository.OrderRepository, publisher events.Publisher, log *slog.Logger) *OrderService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &OrderService{
		repo:      repo,
		publisher: publisher,
		log:       log,
	}
}

// CreateOrder stores the order as submitted and announces it.
// No validation or total recomputation happens here.
func (s *OrderService) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}

	// Publishing is best effort; the order is already persisted
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := s.publisher.PublishOrderCreated(pubCtx, order); err != nil {
		s.log.Warn("failed to publish order event",
			"order_id", order.ID.Hex(),
			"error", err,
		)
	}

	return order, nil
}

// ListUserOrders returns every order referencing the given user
func (s *OrderService) ListUserOrders(ctx context.Context, userID string) ([]models.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}
