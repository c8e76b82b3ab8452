package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/veggiemart/shop-api/internal/models"
	"github.com/veggiemart/shop-api/internal/query"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoProductRepository implements ProductRepository on a MongoDB collection
type MongoProductRepository struct {
	coll *mongo.Collection
}

// NewMongoProductRepository creates a product repository backed by coll
func NewMongoProductRepository(coll *mongo.Collection) *MongoProductRepository {
	return &MongoProductRepository{coll: coll}
}

// Find executes q against the products collection
func (r *MongoProductRepository) Find(ctx context.Context, q query.Query) ([]models.Product, error) {
	cur, err := r.coll.Find(ctx, buildFilter(q.Filter), buildFindOptions(q.Sort))
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cur.Close(ctx)

	products := make([]models.Product, 0)
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

// GetByID returns a product by its ObjectID hex string
func (r *MongoProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var product models.Product
	err = r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("find product %s: %w", id, err)
	}
	return &product, nil
}

// ReplaceAll deletes every product and bulk-inserts the given ones.
// The two steps are not atomic: a failed insert leaves the collection empty.
func (r *MongoProductRepository) ReplaceAll(ctx context.Context, products []models.Product) error {
	if _, err := r.coll.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("delete products: %w", err)
	}
	if len(products) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(products))
	for _, p := range products {
		p.ID = primitive.NilObjectID
		docs = append(docs, p)
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert products: %w", err)
	}
	return nil
}

// buildFilter translates resolver clauses into a MongoDB filter document
func buildFilter(clauses []query.Clause) bson.D {
	filter := bson.D{}
	for _, c := range clauses {
		switch c.Op {
		case query.OpEq:
			filter = append(filter, bson.E{Key: c.Field, Value: c.Value})
		case query.OpContainsFold:
			pattern, _ := c.Value.(string)
			filter = append(filter, bson.E{Key: c.Field, Value: primitive.Regex{
				Pattern: regexp.QuoteMeta(pattern),
				Options: "i",
			}})
		}
	}
	return filter
}

// buildFindOptions translates the ordering directive into find options
func buildFindOptions(o *query.Order) *options.FindOptions {
	opts := options.Find()
	if o != nil {
		opts.SetSort(bson.D{{Key: o.Field, Value: int(o.Direction)}})
	}
	return opts
}
