package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spicysmp_store/internal/catalog"
	"spicysmp_store/internal/config"
	"spicysmp_store/internal/handler"
	"spicysmp_store/internal/pricing"
	"spicysmp_store/internal/service"
	"spicysmp_store/internal/store"
	"spicysmp_store/internal/webhook"
)

type application struct {
	config          *config.Config
	logger          *log.Logger
	flagStore       store.FlagStore
	checkoutService *service.CheckoutService
	server          *http.Server
}

func main() {
	logger := log.New(os.Stdout, "", log.Ldate|log.Ltime|log.Lshortfile)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		logger.Fatalf("Failed to load catalog: %v", err)
	}
	logger.Printf("Catalog loaded with %d products", cat.Size())

	var flagStore store.FlagStore
	switch cfg.TourStore {
	case "memory":
		flagStore = store.NewMemoryFlagStore()
		logger.Println("Using in-memory tour flag store (flags reset on restart)")
	default:
		redisClient, err := store.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Fatalf("Failed to connect to Redis: %v", err)
		}
		flagStore = store.NewRedisFlagStore(redisClient)
	}
	defer func() {
		if err := flagStore.Close(); err != nil {
			logger.Printf("Error closing flag store: %v", err)
		}
	}()

	policy := pricing.Policy{Rate: cfg.DiscountRate, End: cfg.DiscountEnd}
	notifier := webhook.NewClient(cfg.WebhookURL)
	checkoutService := service.NewCheckoutService(logger, cat, notifier, policy, time.Now)

	app := &application{
		config:          cfg,
		logger:          logger,
		flagStore:       flagStore,
		checkoutService: checkoutService,
	}

	mux := http.NewServeMux()
	mux.Handle("/catalog", handler.NewCatalogHandler(logger, cat))
	mux.Handle("/products/", handler.NewProductHandler(logger, checkoutService))
	mux.Handle("/checkout/", handler.NewCheckoutHandler(logger, checkoutService))
	tourHandler := handler.NewTourHandler(logger, flagStore)
	mux.Handle("/tour", tourHandler)
	mux.Handle("/tour/dismiss", tourHandler)

	app.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      mux,
		IdleTimeout:  time.Minute,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		ErrorLog:     logger,
	}

	app.serve()
}

func (app *application) serve() {
	app.logger.Printf("Starting server on %s", app.server.Addr)

	errChan := make(chan error)
	go func() {
		if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		app.logger.Fatalf("Server error: %v", err)
	case sig := <-quit:
		app.logger.Printf("Received signal %s. Shutting down server...", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Printf("Graceful server shutdown failed: %v", err)
	} else {
		app.logger.Println("Server gracefully stopped.")
	}

	app.logger.Println("Application shut down complete.")
}
