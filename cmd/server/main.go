package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/veggiemart/shop-api/internal/config"
	"github.com/veggiemart/shop-api/internal/events"
	"github.com/veggiemart/shop-api/internal/repository"
	"github.com/veggiemart/shop-api/internal/server"
	"github.com/veggiemart/shop-api/internal/service"
	"github.com/veggiemart/shop-api/internal/store"
	"github.com/veggiemart/shop-api/pkg/logger"
)

// storeHandle is the lifecycle shared by every backend
type storeHandle interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting veggie mart api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"store_driver", cfg.Store.Driver,
		"cors_profile", cfg.CORS.Profile,
		"log_level", cfg.LogLevel,
	)

	// Open the store and build repositories on top of it
	st, productRepo, orderRepo, err := openStore(cfg.Store)
	if err != nil {
		log.Error("failed to open store", "driver", cfg.Store.Driver, "error", err)
		os.Exit(1)
	}
	log.Info("store connected", "driver", cfg.Store.Driver)

	// Order events are optional
	var publisher events.Publisher = events.NopPublisher{}
	if len(cfg.Events.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.Events.KafkaBrokers, cfg.Events.OrderTopic)
		log.Info("order events enabled", "brokers", cfg.Events.KafkaBrokers, "topic", cfg.Events.OrderTopic)
	}

	// Initialize services
	productService := service.NewProductService(productRepo)
	orderService := service.NewOrderService(orderRepo, publisher, log)

	router := server.NewRouter(server.Deps{
		Config:   cfg,
		Logger:   log,
		Store:    st,
		Products: productService,
		Orders:   orderService,
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	exitCode := 0
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		exitCode = 1
	}

	if err := publisher.Close(); err != nil {
		log.Error("failed to close event publisher", "error", err)
	}
	if err := st.Close(ctx); err != nil {
		log.Error("failed to close store", "error", err)
	}

	if exitCode != 0 {
		os.Exit(exitCode)
	}
	log.Info("server stopped gracefully")
}

// openStore connects the configured backend and returns its repositories
func openStore(cfg config.StoreConfig) (storeHandle, repository.ProductRepository, repository.OrderRepository, error) {
	if cfg.Driver == config.DriverMemory {
		return store.NewMemory(), repository.NewInMemoryProductRepository(), repository.NewInMemoryOrderRepository(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectTimeout)*time.Second)
	defer cancel()

	m, err := store.OpenMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return nil, nil, nil, err
	}

	products := repository.NewMongoProductRepository(m.Collection(store.ProductsCollection))
	orders := repository.NewMongoOrderRepository(m.Collection(store.OrdersCollection))
	return m, products, orders, nil
}
