package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/veggiemart/shop-api/internal/models"
	"github.com/veggiemart/shop-api/internal/query"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidID       = errors.New("invalid object id")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Find(ctx context.Context, q query.Query) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	ReplaceAll(ctx context.Context, products []models.Product) error
}

// parseObjectID converts a hex identifier, wrapping ErrInvalidID on failure
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

// InMemoryProductRepository implements ProductRepository with in-memory storage.
// Products are kept in insertion order, which is the order returned when no
// sort is requested.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
}

// NewInMemoryProductRepository creates an empty in-memory product repository
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{}
}

// Find returns the products matching every clause of q, ordered by q.Sort
func (r *InMemoryProductRepository) Find(ctx context.Context, q query.Query) ([]models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if matchesAll(p, q.Filter) {
			products = append(products, p)
		}
	}

	if q.Sort != nil {
		sortProducts(products, *q.Sort)
	}

	return products, nil
}

// GetByID returns a product by its ID
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == oid {
			product := p
			return &product, nil
		}
	}
	return nil, ErrProductNotFound
}

// ReplaceAll removes every product and inserts the given ones with fresh IDs
func (r *InMemoryProductRepository) ReplaceAll(ctx context.Context, products []models.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = make([]models.Product, 0, len(products))
	for _, p := range products {
		p.ID = primitive.NewObjectID()
		r.products = append(r.products, p)
	}
	return nil
}

func matchesAll(p models.Product, clauses []query.Clause) bool {
	for _, c := range clauses {
		if !matches(p, c) {
			return false
		}
	}
	return true
}

func matches(p models.Product, c query.Clause) bool {
	v := fieldValue(p, c.Field)
	if v == nil {
		return false
	}

	switch c.Op {
	case query.OpEq:
		return v == c.Value
	case query.OpContainsFold:
		s, ok := v.(string)
		want, wantOK := c.Value.(string)
		if !ok || !wantOK {
			return false
		}
		return strings.Contains(strings.ToLower(s), strings.ToLower(want))
	default:
		return false
	}
}

func fieldValue(p models.Product, field string) any {
	switch field {
	case query.FieldName:
		return p.Name
	case query.FieldCategory:
		return p.Category
	case query.FieldPrice:
		return p.Price
	case query.FieldAvailable:
		return p.Available
	case query.FieldBestSeller:
		return p.BestSeller
	default:
		return nil
	}
}

func sortProducts(products []models.Product, o query.Order) {
	less := func(i, j int) bool { return false }

	switch o.Field {
	case query.FieldPrice:
		less = func(i, j int) bool { return products[i].Price < products[j].Price }
	case query.FieldName:
		less = func(i, j int) bool { return products[i].Name < products[j].Name }
	}

	if o.Direction == query.Descending {
		asc := less
		less = func(i, j int) bool { return asc(j, i) }
	}

	sort.SliceStable(products, less)
}
