package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veggiemart/shop-api/internal/config"
	"github.com/veggiemart/shop-api/internal/handlers"
	"github.com/veggiemart/shop-api/internal/models"
	"github.com/veggiemart/shop-api/internal/repository"
	"github.com/veggiemart/shop-api/internal/service"
	"github.com/veggiemart/shop-api/internal/store"
	"github.com/veggiemart/shop-api/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testConfig() *config.Config {
	return &config.Config{
		CORS: config.CORSConfig{Profile: config.CORSOpen, AllowedOrigins: []string{"*"}},
		Seed: config.SeedConfig{Enabled: true},
	}
}

func newTestServer(t *testing.T, cfg *config.Config) *httptest.Server {
	t.Helper()
	log := logger.New("error")

	srv := httptest.NewServer(NewRouter(Deps{
		Config:   cfg,
		Logger:   log,
		Store:    store.NewMemory(),
		Products: service.NewProductService(repository.NewInMemoryProductRepository()),
		Orders:   service.NewOrderService(repository.NewInMemoryOrderRepository(), nil, log),
	}))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url string, body io.Reader, header http.Header) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	for k, v := range header {
		req.Header.Set(k, v[0])
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func productNames(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func TestRoot(t *testing.T) {
	srv := newTestServer(t, testConfig())

	resp := do(t, http.MethodGet, srv.URL+"/", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body handlers.MessageResponse
	decode(t, resp, &body)
	assert.Equal(t, handlers.RootMessage, body.Message)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, testConfig())

	resp := do(t, http.MethodGet, srv.URL+"/health", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body handlers.HealthResponse
	decode(t, resp, &body)
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, Version, body.Version)
}

func TestCatalogScenarios(t *testing.T) {
	srv := newTestServer(t, testConfig())

	resp := do(t, http.MethodPost, srv.URL+"/api/products/seed", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var seeded handlers.MessageResponse
	decode(t, resp, &seeded)
	assert.Equal(t, "Products seeded", seeded.Message)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"seed round trip", "", []string{"Tomato", "Potato", "Carrot", "Apple", "Banana"}},
		{"fruit by price descending", "?category=Fruit&sort=priceDesc", []string{"Apple", "Banana"}},
		{"search is a substring match", "?search=to", []string{"Tomato", "Potato"}},
		{"search tom", "?search=TOM", []string{"Tomato"}},
		{"available and best seller", "?available=true&bestSeller=false", []string{"Potato"}},
		{"name ascending", "?sort=nameAsc", []string{"Apple", "Banana", "Carrot", "Potato", "Tomato"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, http.MethodGet, srv.URL+"/api/products"+tt.query, nil, nil)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			var products []models.Product
			decode(t, resp, &products)
			assert.Equal(t, tt.want, productNames(products))
		})
	}

	t.Run("get by id", func(t *testing.T) {
		resp := do(t, http.MethodGet, srv.URL+"/api/products?search=carrot", nil, nil)
		var products []models.Product
		decode(t, resp, &products)
		require.Len(t, products, 1)

		resp = do(t, http.MethodGet, srv.URL+"/api/products/"+products[0].ID.Hex(), nil, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var product models.Product
		decode(t, resp, &product)
		assert.Equal(t, "Carrot", product.Name)
		assert.Equal(t, "Vitamin A, Fiber", product.Nutrition)
	})

	t.Run("nonexistent id", func(t *testing.T) {
		resp := do(t, http.MethodGet, srv.URL+"/api/products/"+primitive.NewObjectID().Hex(), nil, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body handlers.ErrorResponse
		decode(t, resp, &body)
		assert.Equal(t, "Product not found", body.Error)
	})
}

func TestOrderScenarios(t *testing.T) {
	srv := newTestServer(t, testConfig())
	user := primitive.NewObjectID()

	payload := []byte(`{
		"user": "` + user.Hex() + `",
		"orderItems": [{"product": "Tomato", "qty": 3, "price": 2}],
		"totalPrice": 6,
		"shippingAddress": "12 Market Road"
	}`)

	resp := do(t, http.MethodPost, srv.URL+"/api/orders", bytes.NewReader(payload), http.Header{"Content-Type": {"application/json"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var created models.Order
	decode(t, resp, &created)
	assert.False(t, created.ID.IsZero())
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, 6.0, created.TotalPrice)
	assert.False(t, created.IsPaid)

	resp = do(t, http.MethodGet, srv.URL+"/api/orders/"+user.Hex(), nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var orders []models.Order
	decode(t, resp, &orders)
	require.Len(t, orders, 1)
	assert.Equal(t, created.ID, orders[0].ID)
	assert.Equal(t, "Tomato", orders[0].OrderItems[0].Product)

	resp = do(t, http.MethodPost, srv.URL+"/api/orders", bytes.NewReader([]byte("{")), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSeedGuardWiring(t *testing.T) {
	cfg := testConfig()
	cfg.Seed = config.SeedConfig{Enabled: true, AdminAPIKeys: []string{"admin-key"}}
	srv := newTestServer(t, cfg)

	resp := do(t, http.MethodPost, srv.URL+"/api/products/seed", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = do(t, http.MethodPost, srv.URL+"/api/products/seed", nil, http.Header{"api_key": {"admin-key"}})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cfg = testConfig()
	cfg.Seed.Enabled = false
	srv = newTestServer(t, cfg)

	resp = do(t, http.MethodPost, srv.URL+"/api/products/seed", nil, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestCORSProfiles(t *testing.T) {
	const frontend = "http://localhost:5173"

	t.Run("open", func(t *testing.T) {
		srv := newTestServer(t, testConfig())

		resp := do(t, http.MethodGet, srv.URL+"/", nil, http.Header{"Origin": {"https://anywhere.example"}})
		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
		assert.Empty(t, resp.Header.Get("Access-Control-Allow-Credentials"))
	})

	t.Run("strict", func(t *testing.T) {
		cfg := testConfig()
		cfg.CORS = config.CORSConfig{
			Profile:          config.CORSStrict,
			AllowedOrigins:   config.DefaultStrictOrigins,
			AllowCredentials: true,
		}
		srv := newTestServer(t, cfg)

		resp := do(t, http.MethodGet, srv.URL+"/", nil, http.Header{"Origin": {frontend}})
		assert.Equal(t, frontend, resp.Header.Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))

		resp = do(t, http.MethodGet, srv.URL+"/", nil, http.Header{"Origin": {"https://evil.example"}})
		assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
	})
}
