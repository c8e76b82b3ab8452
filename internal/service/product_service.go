package service

import (
	"context"

	"github.com/veggiemart/shop-api/internal/models"
	"github.com/veggiemart/shop-api/internal/query"
	"github.com/veggiemart/shop-api/internal/repository"
)

// ProductService handles business logic for products
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts resolves the listing parameters and returns matching products
func (s *ProductService) ListProducts(ctx context.Context, params query.Params) ([]models.Product, error) {
	return s.repo.Find(ctx, query.Resolve(params))
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// SeedProducts replaces the whole catalog with the sample products
func (s *ProductService) SeedProducts(ctx context.Context) error {
	return s.repo.ReplaceAll(ctx, SampleProducts())
}
