package service

import (
	"context"
	"errors"
	"testing"

	"github.com/veggiemart/shop-api/internal/query"
	"github.com/veggiemart/shop-api/internal/repository"
)

func strPtr(s string) *string { return &s }

func seededProductService(t *testing.T) *ProductService {
	t.Helper()
	svc := NewProductService(repository.NewInMemoryProductRepository())
	if err := svc.SeedProducts(context.Background()); err != nil {
		t.Fatalf("SeedProducts() error = %v", err)
	}
	return svc
}

func TestProductService_SeedProducts(t *testing.T) {
	svc := seededProductService(t)

	// A second seed replaces rather than appends
	if err := svc.SeedProducts(context.Background()); err != nil {
		t.Fatalf("SeedProducts() error = %v", err)
	}

	products, err := svc.ListProducts(context.Background(), query.Params{})
	if err != nil {
		t.Fatalf("ListProducts() error = %v", err)
	}
	if len(products) != 5 {
		t.Fatalf("expected 5 products, got %d", len(products))
	}

	want := []string{"Tomato", "Potato", "Carrot", "Apple", "Banana"}
	for i, p := range products {
		if p.Name != want[i] {
			t.Errorf("product %d = %s, want %s", i, p.Name, want[i])
		}
		if p.Image == "" || p.Description == "" || p.Nutrition == "" {
			t.Errorf("product %s is missing descriptive fields", p.Name)
		}
	}
}

func TestProductService_ListProducts(t *testing.T) {
	svc := seededProductService(t)

	tests := []struct {
		name   string
		params query.Params
		want   []string
	}{
		{"fruit by price descending", query.Params{Category: strPtr("Fruit"), Sort: strPtr("priceDesc")}, []string{"Apple", "Banana"}},
		{"unavailable only", query.Params{Available: strPtr("false")}, []string{"Banana"}},
		{"best sellers", query.Params{BestSeller: strPtr("true")}, []string{"Tomato", "Carrot", "Apple"}},
		{"search", query.Params{Search: strPtr("tom")}, []string{"Tomato"}},
		{"no match", query.Params{Category: strPtr("Dairy")}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := svc.ListProducts(context.Background(), tt.params)
			if err != nil {
				t.Fatalf("ListProducts() error = %v", err)
			}
			if len(products) != len(tt.want) {
				t.Fatalf("got %d products, want %d", len(products), len(tt.want))
			}
			for i := range products {
				if products[i].Name != tt.want[i] {
					t.Errorf("product %d = %s, want %s", i, products[i].Name, tt.want[i])
				}
			}
		})
	}
}

func TestProductService_GetProduct(t *testing.T) {
	svc := seededProductService(t)
	ctx := context.Background()

	all, _ := svc.ListProducts(ctx, query.Params{})
	got, err := svc.GetProduct(ctx, all[0].ID.Hex())
	if err != nil {
		t.Fatalf("GetProduct() error = %v", err)
	}
	if got.Name != "Tomato" {
		t.Errorf("expected Tomato, got %s", got.Name)
	}

	if _, err := svc.GetProduct(ctx, "000000000000000000000000"); !errors.Is(err, repository.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}
