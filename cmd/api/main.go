package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	authsvc "storefront/internal/auth"
	cartsvc "storefront/internal/cart"
	"storefront/internal/catalog"
	checkoutsvc "storefront/internal/checkout"
	"storefront/internal/config"
	"storefront/internal/httpserver"
	"storefront/internal/seed"
	"storefront/internal/store"
	wishlistsvc "storefront/internal/wishlist"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	kv, err := store.OpenSQLite(cfg.StorePath, logger)
	if err != nil {
		logger.Fatalf("open store: %v", err)
	}
	defer kv.Close()

	cat, err := loadCatalog(cfg, logger)
	if err != nil {
		logger.Fatalf("load catalog: %v", err)
	}

	cartService := cartsvc.New(kv, logger)
	srv, err := httpserver.New(cfg.HTTPAddr, logger, kv, httpserver.Deps{
		Catalog:        cat,
		Auth:           authsvc.New(kv, logger),
		Cart:           cartService,
		Wishlist:       wishlistsvc.New(kv, logger),
		Checkout:       checkoutsvc.New(cartService, logger),
		PageSize:       cfg.PageSize,
		AllowedOrigins: cfg.AllowedOrigins,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}

// loadCatalog reads CATALOG_PATH when set, otherwise falls back to the
// built-in demo catalog.
func loadCatalog(cfg config.Config, logger *log.Logger) (*catalog.Catalog, error) {
	if cfg.CatalogPath == "" {
		logger.Printf("catalog: using built-in demo catalog")
		return catalog.New(seed.Products()), nil
	}
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	logger.Printf("catalog: loaded %d products from %s", cat.Len(), cfg.CatalogPath)
	return cat, nil
}
