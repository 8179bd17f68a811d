package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/PhiHoang41/lumina-backend/internal/cache"
	"github.com/PhiHoang41/lumina-backend/internal/config"
	"github.com/PhiHoang41/lumina-backend/internal/database"
	"github.com/PhiHoang41/lumina-backend/internal/handler"
	"github.com/PhiHoang41/lumina-backend/internal/middleware"
	"github.com/PhiHoang41/lumina-backend/internal/repository"
	"github.com/PhiHoang41/lumina-backend/internal/service"
)

// main is the application entrypoint for the Lumina catalog API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting lumina backend")

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 3b. Connect to Redis
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Error().Err(err).Msg("redis connection failed")
		fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected successfully")

	// 4. Initialize repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	variantRepo := repository.NewVariantRepository(db)
	couponRepo := repository.NewCouponRepository(db)

	// 5. Initialize services
	stockSvc := service.NewStockService(productRepo, variantRepo)
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry, cfg.Auth.BcryptCost)
	userSvc := service.NewUserService(userRepo)
	categorySvc := service.NewCategoryService(categoryRepo)
	productSvc := service.NewProductService(productRepo, variantRepo, categoryRepo, stockSvc)
	variantSvc := service.NewVariantService(productRepo, variantRepo, stockSvc)
	couponSvc := service.NewCouponService(couponRepo)

	// 6. Initialize handlers
	handlers := &Handlers{
		Health:   handler.NewHealthHandler(db),
		Auth:     handler.NewAuthHandler(authSvc),
		User:     handler.NewUserHandler(userSvc),
		Category: handler.NewCategoryHandler(categorySvc),
		Product:  handler.NewProductHandler(productSvc),
		Variant:  handler.NewVariantHandler(variantSvc),
		Coupon:   handler.NewCouponHandler(couponSvc),
	}

	// 7. Initialize middleware
	authMw := middleware.NewAuthMiddleware(cfg.JWTSecret)
	loginLimiter := middleware.NewLoginRateLimiter(redisClient, cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginAttemptWindow)

	// 8. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, authMw, loginLimiter)

	// 9. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 10. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 11. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health   *handler.HealthHandler
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Category *handler.CategoryHandler
	Product  *handler.ProductHandler
	Variant  *handler.VariantHandler
	Coupon   *handler.CouponHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, authMw *middleware.AuthMiddleware, loginLimiter *middleware.LoginRateLimiter) {
	router.GET("/health", handlers.Health.Check)

	v1 := router.Group("/api/v1")

	// Auth
	auth := v1.Group("/auth")
	{
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/login", loginLimiter.Handle(), handlers.Auth.Login)
	}

	// Authenticated user profile
	v1.GET("/users/me", authMw.Handle(), handlers.User.GetMe)

	// Categories: reads public, writes admin
	v1.GET("/categories", handlers.Category.List)
	v1.GET("/categories/slug/:slug", handlers.Category.GetBySlug)
	v1.GET("/categories/:id", handlers.Category.Get)
	v1.POST("/categories", authMw.Handle(), middleware.RequireAdmin(), handlers.Category.Create)
	v1.PUT("/categories/:id", authMw.Handle(), middleware.RequireAdmin(), handlers.Category.Update)
	v1.DELETE("/categories/:id", authMw.Handle(), middleware.RequireAdmin(), handlers.Category.Delete)

	// Public product reads
	v1.GET("/products", handlers.Product.List)
	v1.GET("/products/:id", handlers.Product.Get)
	v1.GET("/products/:id/variants", handlers.Variant.List)

	// Coupons are admin-only end to end
	coupons := v1.Group("/coupons")
	coupons.Use(authMw.Handle(), middleware.RequireAdmin())
	{
		coupons.GET("", handlers.Coupon.List)
		coupons.POST("", handlers.Coupon.Create)
		coupons.GET("/:id", handlers.Coupon.Get)
		coupons.PUT("/:id", handlers.Coupon.Update)
		coupons.PATCH("/:id/status", handlers.Coupon.UpdateStatus)
		coupons.DELETE("/:id", handlers.Coupon.Delete)
	}

	// Admin catalog management
	admin := v1.Group("/admin")
	admin.Use(authMw.Handle(), middleware.RequireAdmin())
	{
		// Product Management
		admin.GET("/products", handlers.Product.List)
		admin.POST("/products", handlers.Product.Create)
		admin.GET("/products/:id", handlers.Product.Get)
		admin.PUT("/products/:id", handlers.Product.Update)
		admin.DELETE("/products/:id", handlers.Product.Delete)
		admin.PATCH("/products/:id/activate", handlers.Product.ToggleActive)

		// Variant Management
		admin.GET("/products/:id/variants", handlers.Variant.List)
		admin.POST("/products/:id/variants", handlers.Variant.Create)
		admin.PUT("/products/:id/variants/:variantId", handlers.Variant.Update)
		admin.DELETE("/products/:id/variants/:variantId", handlers.Variant.Delete)
		admin.PATCH("/products/:id/variants/:variantId/stock", handlers.Variant.UpdateStock)
	}
}

// setupLogger configures the global zerolog logger for the environment.
func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}
