package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/VGoku/e-commerce-platform1/internal/config"
	"github.com/VGoku/e-commerce-platform1/internal/gateway"
	"github.com/VGoku/e-commerce-platform1/internal/handler"
	"github.com/VGoku/e-commerce-platform1/internal/middleware"
	"github.com/VGoku/e-commerce-platform1/internal/storage"
	"github.com/VGoku/e-commerce-platform1/internal/store"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Error("connect to Redis", "error", err)
		os.Exit(1)
	}
	log.Info("connected to Redis")

	// Remote gateway + durable local records
	gw := gateway.New(cfg.Backend)

	records, err := storage.NewRecords(cfg.Store.DataDir)
	if err != nil {
		log.Error("open data dir", "error", err)
		os.Exit(1)
	}

	// State stores
	session, err := store.NewSession(gw, records)
	if err != nil {
		log.Error("restore session", "error", err)
		os.Exit(1)
	}
	cart, err := store.NewCart(records)
	if err != nil {
		log.Error("restore cart", "error", err)
		os.Exit(1)
	}
	balance, err := store.NewBalance(records)
	if err != nil {
		log.Error("restore balances", "error", err)
		os.Exit(1)
	}
	activity, err := store.NewActivity(records)
	if err != nil {
		log.Error("restore activity", "error", err)
		os.Exit(1)
	}
	reviews, err := store.NewReviews(records)
	if err != nil {
		log.Error("restore reviews", "error", err)
		os.Exit(1)
	}
	prefs, err := store.NewPrefs(records)
	if err != nil {
		log.Error("restore prefs", "error", err)
		os.Exit(1)
	}
	catalog := store.NewCatalog(gw, redisClient)
	checkout := store.NewCheckout(cart, balance)

	// A departing user must not leave a visible cart behind.
	session.OnSignOut(func(userID string) {
		if err := cart.Clear(userID); err != nil {
			log.Error("clear cart on sign-out", "user_id", userID, "error", err)
		}
	})

	teardown, err := session.Initialize(ctx)
	if err != nil {
		log.Error("initialize session", "error", err)
		os.Exit(1)
	}
	defer teardown()

	// Handlers
	authH := handler.NewAuthHandler(session)
	productH := handler.NewProductHandler(catalog)
	cartH := handler.NewCartHandler(cart, catalog, checkout)
	checkoutH := handler.NewCheckoutHandler(checkout, balance)
	activityH := handler.NewActivityHandler(activity, catalog, gw, log)
	reviewH := handler.NewReviewHandler(reviews, session)
	profileH := handler.NewProfileHandler(gw, activity, balance)
	prefsH := handler.NewPrefsHandler(prefs)
	healthH := handler.NewHealthHandler(gw, redisClient)

	// Router
	router := gin.Default()
	router.GET("/healthz", healthH.Healthz)
	router.GET("/readyz", healthH.Readyz)

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		auth.POST("/signup", authH.SignUp)
		auth.POST("/signin", authH.SignIn)
		auth.POST("/signout", authH.SignOut)
		auth.GET("/session", authH.GetSession)

		products := v1.Group("/products")
		products.GET("", productH.List)
		products.GET("/:id", productH.GetByID)
		products.GET("/:id/reviews", reviewH.List)

		requireAuth := middleware.AuthMiddleware(cfg.JWT.Secret)

		admin := products.Group("", requireAuth, middleware.AdminOnly())
		admin.POST("", productH.Create)
		admin.PUT("/:id", productH.Update)
		admin.DELETE("/:id", productH.Delete)

		authed := v1.Group("", requireAuth)
		{
			cartRoutes := authed.Group("/cart")
			cartRoutes.GET("", cartH.GetCart)
			cartRoutes.GET("/totals", cartH.GetTotals)
			cartRoutes.POST("/items", cartH.AddItem)
			cartRoutes.PUT("/items/:id", cartH.UpdateItem)
			cartRoutes.DELETE("/items/:id", cartH.DeleteItem)
			cartRoutes.DELETE("", cartH.ClearCart)

			authed.POST("/checkout", checkoutH.Checkout)
			authed.GET("/balance", checkoutH.GetBalance)
			authed.POST("/balance/reset", checkoutH.ResetBalance)

			authed.GET("/wishlist", activityH.GetWishlist)
			authed.POST("/wishlist", activityH.AddToWishlist)
			authed.DELETE("/wishlist/:productId", activityH.RemoveFromWishlist)

			authed.GET("/recent", activityH.GetRecentlyViewed)
			authed.POST("/recent", activityH.MarkViewed)
			authed.GET("/orders", activityH.ListOrders)

			authed.POST("/products/:id/reviews", reviewH.Create)
			authed.DELETE("/products/:id/reviews/:reviewId", reviewH.Delete)

			authed.GET("/profile", profileH.Get)
			authed.PUT("/profile", profileH.Update)
			authed.POST("/profile/avatar", profileH.UploadAvatar)
			authed.GET("/dashboard", profileH.Dashboard)
		}

		v1.GET("/prefs/theme", prefsH.GetTheme)
		v1.PUT("/prefs/theme", prefsH.SetTheme)
		v1.POST("/prefs/theme/toggle", prefsH.ToggleTheme)
		v1.GET("/quote", prefsH.DailyQuote)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting HTTP server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", "error", err)
	}
	log.Info("server stopped")
}
