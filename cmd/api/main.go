package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"storefront-gateway/internal/core/cache"
	"storefront-gateway/internal/core/config"
	"storefront-gateway/internal/core/httpclient"
	"storefront-gateway/internal/core/logger"
	"storefront-gateway/internal/core/server"
	"storefront-gateway/internal/core/wcapi"
	accountadapter "storefront-gateway/internal/features/account/adapters"
	accounthandler "storefront-gateway/internal/features/account/handler"
	accountservice "storefront-gateway/internal/features/account/service"
	authadapter "storefront-gateway/internal/features/auth/adapters"
	authhandler "storefront-gateway/internal/features/auth/handler"
	authservice "storefront-gateway/internal/features/auth/service"
	cartadapters "storefront-gateway/internal/features/cart/adapters"
	carthandler "storefront-gateway/internal/features/cart/handler"
	cartservice "storefront-gateway/internal/features/cart/service"
	catalogadapter "storefront-gateway/internal/features/catalog/adapters"
	cataloghandler "storefront-gateway/internal/features/catalog/handler"
	catalogservice "storefront-gateway/internal/features/catalog/service"
	checkoutadapter "storefront-gateway/internal/features/checkout/adapters"
	checkouthandler "storefront-gateway/internal/features/checkout/handler"
	checkoutservice "storefront-gateway/internal/features/checkout/service"
	orderadapter "storefront-gateway/internal/features/orders/adapters"
	orderhandler "storefront-gateway/internal/features/orders/handler"
	orderservice "storefront-gateway/internal/features/orders/service"

	"go.uber.org/zap"
)

// @title Storefront Gateway API
// @version 1.0
// @description Backend for the storefront SPA: catalog, cart, checkout against the WooCommerce Store API, orders and WordPress accounts.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.String("store_url", cfg.WooCommerce.URL),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Redis backs carts, auth tokens and the catalog cache
	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Invalid Redis configuration", zap.Error(err))
	}
	defer redisCache.Close()

	pingCtx, cancelPing := context.WithTimeout(ctx, 5*time.Second)
	err = redisCache.Ping(pingCtx)
	cancelPing()
	if err != nil {
		l.Fatal("Redis unreachable", zap.Error(err))
	}

	clients, err := httpclient.NewFactory(cfg.HTTP)
	if err != nil {
		l.Fatal("Invalid HTTP client configuration", zap.Error(err))
	}
	wc := wcapi.New(cfg.WooCommerce, clients.NewClient(nil))

	// Orders, with a startup health check of the REST credentials
	orderProvider := orderadapter.NewWooCommerceAdapter(cfg.WooCommerce, wc)
	orderService := orderservice.NewOrderService(orderProvider)

	healthCtx, cancelHealth := context.WithTimeout(ctx, cfg.HTTP.Timeout)
	err = orderService.HealthCheck(healthCtx)
	cancelHealth()
	if err != nil {
		l.Fatal("WooCommerce Health Check Failed", zap.Error(err))
	}
	l.Info("WooCommerce connection verified")

	// Catalog & Cart
	catalogService := catalogservice.NewCatalogService(
		catalogadapter.NewWooCommerceAdapter(wc), redisCache, cfg.Checkout.CatalogTTL, logger.Named("catalog"))
	cartService := cartservice.NewCartService(
		cartadapters.NewRedisCartRepository(redisCache, cfg.Checkout.CartTTL), catalogService)

	// Auth & Account
	authService := authservice.NewAuthService(
		authadapter.NewWordPressAdapter(cfg.WordPress, clients.NewClient(nil)),
		authadapter.NewRedisTokenStore(redisCache),
		logger.Named("auth"),
	)
	accountService := accountservice.NewAccountService(
		accountadapter.NewWooCommerceAdapter(wc), orderService, authService, logger.Named("account"))

	// Checkout
	registry := checkoutservice.NewRegistry(
		checkoutadapter.NewStoreCartFactory(cfg.WooCommerce, clients),
		cfg.Checkout.ShippingDebounce,
		cfg.Checkout.IdleTTL,
	)
	defer registry.Close()
	checkoutService := checkoutservice.NewCheckoutService(
		registry, cartService, orderService, authService, logger.Named("checkout"))

	go sweep(ctx, cfg.Checkout.IdleTTL, registry, authService)

	srv := server.New(cfg)
	srv.App.Use(server.Session())

	// Register Routes
	cataloghandler.NewCatalogHandler(catalogService).Register(srv.App)
	carthandler.NewCartHandler(cartService).Register(srv.App)
	checkouthandler.NewCheckoutHandler(checkoutService).Register(srv.App)
	orderhandler.NewOrderHandler(orderService).Register(srv.App)
	authhandler.NewAuthHandler(authService).Register(srv.App)
	accounthandler.NewAccountHandler(accountService, authService).Register(srv.App)

	go func() {
		<-ctx.Done()
		l.Info("Shutting down")
		if err := srv.Shutdown(); err != nil {
			l.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}

// sweep evicts idle checkout sessions and cached profiles until ctx is done.
func sweep(ctx context.Context, idle time.Duration, registry *checkoutservice.Registry, auth *authservice.AuthService) {
	interval := idle / 4
	if interval < time.Minute {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sessions := registry.Sweep()
			users := auth.Sweep(idle)
			if sessions > 0 || users > 0 {
				logger.Get().Debug("Swept idle sessions",
					zap.Int("checkout_sessions", sessions),
					zap.Int("users", users),
				)
			}
		}
	}
}
