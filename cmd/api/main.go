package main

import (
	"context"
	"log"

	"foodify/internal/core/cache"
	"foodify/internal/core/config"
	"foodify/internal/core/dataset"
	"foodify/internal/core/logger"
	"foodify/internal/core/server"
	cartdomain "foodify/internal/features/cart/domain"
	carthandler "foodify/internal/features/cart/handler"
	cartservice "foodify/internal/features/cart/service"
	dealsadapter "foodify/internal/features/deals/adapters"
	dealshandler "foodify/internal/features/deals/handler"
	dealsservice "foodify/internal/features/deals/service"
	favoriteshandler "foodify/internal/features/favorites/handler"
	favoritesservice "foodify/internal/features/favorites/service"
	layouthandler "foodify/internal/features/layout/handler"
	ordershandler "foodify/internal/features/orders/handler"
	ordersservice "foodify/internal/features/orders/service"
	restauranthandler "foodify/internal/features/restaurants/handler"
	restaurantservice "foodify/internal/features/restaurants/service"

	"go.uber.org/zap"
)

// @title Foodify API
// @version 1.0
// @description Food delivery storefront API serving the cart, favorites, orders, restaurants and deals views.
// @contact.name API Support
// @contact.email support@foodify.app
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
		zap.String("city", cfg.City),
	)

	ctx := context.Background()

	// Load the bundled seed documents
	bundle, err := dataset.Load(ctx)
	if err != nil {
		l.Fatal("Failed to load seed documents", zap.Error(err))
	}
	l.Info("Seed documents loaded")

	// Initialize the cache and run a Health Check
	redisAdapter, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Failed to create Redis adapter", zap.Error(err))
	}
	defer redisAdapter.Close()

	if err := redisAdapter.Ping(ctx); err != nil {
		l.Fatal("Redis Health Check Failed", zap.Error(err))
	}
	l.Info("Redis connection verified")

	// Initialize Cart Service & Handler
	cartSvc := cartservice.NewCartService(bundle.Cart, cartdomain.Pricing{
		DeliveryFee: cfg.Pricing.DeliveryFee,
		PlatformFee: cfg.Pricing.PlatformFee,
		Discount:    cfg.Pricing.Discount,
	})
	cartHdl := carthandler.NewCartHandler(cartSvc)

	// Initialize Favorites Service & Handler
	favoritesSvc := favoritesservice.NewFavoritesService(bundle.Favorites)
	favoritesHdl := favoriteshandler.NewFavoritesHandler(favoritesSvc)

	// Initialize Orders Service & Handler
	ordersSvc := ordersservice.NewOrdersService(bundle.Orders)
	ordersHdl := ordershandler.NewOrdersHandler(ordersSvc)

	// Initialize Restaurants Service & Handler
	restaurantsSvc := restaurantservice.NewRestaurantsService(bundle.Restaurants)
	restaurantsHdl := restauranthandler.NewRestaurantsHandler(restaurantsSvc)

	// Initialize Deals Service & Handler with the banner repository
	bannerRepo := dealsadapter.NewBannerRepository(redisAdapter)
	dealsSvc, err := dealsservice.NewDealsService(bundle.Today, bannerRepo)
	if err != nil {
		l.Fatal("Failed to create deals service", zap.Error(err))
	}
	dealsSvc.Start()
	defer dealsSvc.Stop()
	dealsHdl := dealshandler.NewDealsHandler(dealsSvc)

	// Initialize Layout Handler
	layoutHdl := layouthandler.NewLayoutHandler()

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/cart", cartHdl.GetCart)
	srv.App.Put("/cart/items/:id/quantity", cartHdl.SetQuantity)
	srv.App.Delete("/cart/items/:id", cartHdl.RemoveItem)
	srv.App.Post("/cart/items/:id/favorite", cartHdl.SaveToFavorites)
	srv.App.Post("/cart/coupon", cartHdl.ApplyCoupon)
	srv.App.Post("/cart/checkout", cartHdl.Checkout)

	srv.App.Get("/favorites", favoritesHdl.GetFavorites)
	srv.App.Post("/favorites/:id/select", favoritesHdl.ToggleSelect)
	srv.App.Delete("/favorites/selected", favoritesHdl.RemoveSelected)
	srv.App.Delete("/favorites/:id", favoritesHdl.Remove)
	srv.App.Delete("/favorites", favoritesHdl.Clear)
	srv.App.Post("/favorites/cart", favoritesHdl.AddSelectedToCart)
	srv.App.Post("/favorites/:id/cart", favoritesHdl.AddToCart)
	srv.App.Post("/favorites/orders", favoritesHdl.OrderAll)

	srv.App.Get("/orders", ordersHdl.GetOrders)
	srv.App.Get("/orders/:id", ordersHdl.GetOrder)
	srv.App.Post("/orders/:id/cancel", ordersHdl.Cancel)
	srv.App.Post("/orders/:id/rating", ordersHdl.Rate)
	srv.App.Post("/orders/:id/reorder", ordersHdl.Reorder)
	srv.App.Get("/orders/:id/qr", ordersHdl.TrackingQR)

	srv.App.Get("/restaurants", restaurantsHdl.GetRestaurants)

	srv.App.Get("/deals", dealsHdl.GetDeals)
	srv.App.Get("/deals/countdown", dealsHdl.GetCountdown)
	srv.App.Get("/deals/banner", dealsHdl.GetBanner)
	srv.App.Post("/deals/banner", dealsHdl.SetBanner)
	srv.App.Delete("/deals/banner", dealsHdl.ClearBanner)

	srv.App.Get("/layout/nav", layoutHdl.GetNav)
	srv.App.Get("/layout/footer", layoutHdl.GetFooter)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
