package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/veggiemart/shop-api/internal/config"
	"github.com/veggiemart/shop-api/internal/handlers"
	"github.com/veggiemart/shop-api/internal/middleware"
	"github.com/veggiemart/shop-api/internal/service"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// Deps are the collaborators the router wires into handlers
type Deps struct {
	Config   *config.Config
	Logger   *slog.Logger
	Store    handlers.Pinger
	Products *service.ProductService
	Orders   *service.OrderService
}

// NewRouter builds the HTTP routing tree
func NewRouter(d Deps) http.Handler {
	healthHandler := handlers.NewHealthHandler(d.Store, Version, d.Logger)
	productHandler := handlers.NewProductHandler(d.Products, d.Logger)
	orderHandler := handlers.NewOrderHandler(d.Orders, d.Logger)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(d.Logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(corsOptions(d.Config.CORS)))

	r.Get("/", handlers.Root(d.Logger))
	r.Get("/health", healthHandler.ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.ListProducts)
			r.With(middleware.SeedGuard(d.Config.Seed)).Post("/seed", productHandler.SeedProducts)
			r.Get("/{id}", productHandler.GetProduct)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", orderHandler.CreateOrder)
			r.Get("/{userId}", orderHandler.ListUserOrders)
		})
	})

	return r
}

func corsOptions(c config.CORSConfig) cors.Options {
	return cors.Options{
		AllowedOrigins:   c.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "api_key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: c.AllowCredentials,
		MaxAge:           300,
	}
}
