package repository

import (
	"context"
	"sync"
	"time"

	"github.com/veggiemart/shop-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
}

// prepareNewOrder assigns the identifier and timestamps the store owns
func prepareNewOrder(order *models.Order, now time.Time) {
	order.ID = primitive.NewObjectID()
	order.CreatedAt = now
	order.UpdatedAt = now
	if order.OrderItems == nil {
		order.OrderItems = []models.OrderItem{}
	}
}

// InMemoryOrderRepository implements OrderRepository with in-memory storage
type InMemoryOrderRepository struct {
	mu      sync.RWMutex
	orders  []models.Order
	nowFunc func() time.Time
}

// NewInMemoryOrderRepository creates an empty in-memory order repository
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		nowFunc: func() time.Time { return time.Now().UTC() },
	}
}

// Create stores the order, assigning its ID and timestamps
func (r *InMemoryOrderRepository) Create(ctx context.Context, order *models.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	prepareNewOrder(order, r.nowFunc())
	r.orders = append(r.orders, *order)
	return nil
}

// ListByUser returns the orders whose user reference equals userID
func (r *InMemoryOrderRepository) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	oid, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]models.Order, 0)
	for _, o := range r.orders {
		if o.User != nil && *o.User == oid {
			orders = append(orders, o)
		}
	}
	return orders, nil
}
