package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/veggiemart/shop-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoOrderRepository implements OrderRepository on a MongoDB collection
type MongoOrderRepository struct {
	coll    *mongo.Collection
	nowFunc func() time.Time
}

// NewMongoOrderRepository creates an order repository backed by coll
func NewMongoOrderRepository(coll *mongo.Collection) *MongoOrderRepository {
	return &MongoOrderRepository{
		coll:    coll,
		nowFunc: func() time.Time { return time.Now().UTC() },
	}
}

// Create inserts the order, assigning its ID and timestamps
func (r *MongoOrderRepository) Create(ctx context.Context, order *models.Order) error {
	prepareNewOrder(order, r.nowFunc())

	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// ListByUser returns the orders whose user reference equals userID
func (r *MongoOrderRepository) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	oid, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}

	cur, err := r.coll.Find(ctx, bson.D{{Key: "user", Value: oid}})
	if err != nil {
		return nil, fmt.Errorf("find orders for user %s: %w", userID, err)
	}
	defer cur.Close(ctx)

	orders := make([]models.Order, 0)
	if err := cur.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}
