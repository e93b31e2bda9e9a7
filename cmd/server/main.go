package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lixing-Zhang/minishop/internal/config"
	"github.com/Lixing-Zhang/minishop/internal/handlers"
	"github.com/Lixing-Zhang/minishop/internal/middleware"
	"github.com/Lixing-Zhang/minishop/internal/seed"
	"github.com/Lixing-Zhang/minishop/internal/service"
	"github.com/Lixing-Zhang/minishop/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

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

	log.Info("starting minishop server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	state := service.NewState()

	if err := seedCatalog(cfg.Catalog, state, log); err != nil {
		log.Error("failed to seed catalog", "error", err)
		os.Exit(1)
	}

	r := newRouter(cfg, state, log)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

// seedCatalog imports the configured CSV sources into the registry.
// Nothing is imported unless every source loads and every row is valid.
func seedCatalog(cfg config.CatalogConfig, state *service.State, log *slog.Logger) error {
	if len(cfg.SeedSources) == 0 {
		log.Info("no catalog seed sources configured")
		return nil
	}

	log.Info("loading catalog seed...", "sources", len(cfg.SeedSources))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.SeedTimeout)*time.Second)
	defer cancel()

	rows, err := seed.NewLoader().Load(ctx, cfg.SeedSources)
	if err != nil {
		return err
	}

	imported, err := seed.Import(state.Registry, rows)
	if err != nil {
		return err
	}

	log.Info("catalog seed loaded", "products", imported)
	return nil
}

func newRouter(cfg *config.Config, state *service.State, log *slog.Logger) http.Handler {
	productService := service.NewProductService(state)
	cartService := service.NewCartService(state)
	orderService := service.NewOrderService(state)

	healthHandler := handlers.NewHealthHandler(state, log)
	productHandler := handlers.NewProductHandler(productService, log)
	cartHandler := handlers.NewCartHandler(cartService, log)
	orderHandler := handlers.NewOrderHandler(orderService, log)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.APIKeyHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", healthHandler.ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.APIKeyAuth(cfg.Auth, log))
			r.Post("/products", productHandler.CreateProduct)
			r.Get("/products", productHandler.ListProducts)
		})

		r.Get("/catalog", productHandler.GetCatalog)
		r.Get("/products/{ref}", productHandler.GetProduct)

		r.Get("/cart", cartHandler.GetCart)
		r.Post("/cart/items", cartHandler.AddItem)
		r.Delete("/cart/items/{position}", cartHandler.RemoveItem)

		r.Post("/order", orderHandler.CreateOrder)
		r.Get("/order/last", orderHandler.LastOrder)
	})

	return r
}
