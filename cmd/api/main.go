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

	"github.com/primehood/supplies-api/internal/cache"
	"github.com/primehood/supplies-api/internal/config"
	"github.com/primehood/supplies-api/internal/database"
	"github.com/primehood/supplies-api/internal/handler"
	"github.com/primehood/supplies-api/internal/middleware"
	"github.com/primehood/supplies-api/internal/repository"
	"github.com/primehood/supplies-api/internal/service"
)

// main is the application entrypoint for the Primehood Supplies API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting primehood supplies api")

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

	statsCache := cache.NewStatsCache(redisClient, cfg.StatsCacheTTL)

	// 4. Initialize repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db, cfg.SearchCaseSensitive)
	customerRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db, customerRepo, productRepo)
	dashRepo := repository.NewDashboardRepository(db)

	// 5. Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	productSvc := service.NewProductService(productRepo)
	orderSvc := service.NewOrderService(orderRepo, statsCache)
	dashboardSvc := service.NewDashboardService(dashRepo, productRepo, orderRepo, customerRepo, statsCache)

	var uploadSvc *service.UploadService
	if cfg.Cloudinary.CloudName != "" {
		uploadSvc, err = service.NewUploadService(&cfg.Cloudinary)
		if err != nil {
			log.Warn().Err(err).Msg("cloudinary initialization failed - image upload will be disabled")
		}
	} else {
		log.Warn().Msg("cloudinary not configured - image upload will be disabled")
	}

	// 6. Initialize handlers
	loginLimiter := middleware.NewLoginRateLimiter()
	handlers := &Handlers{
		Health:    handler.NewHealthHandler(db, cfg.Env),
		Auth:      handler.NewAuthHandler(authSvc, loginLimiter),
		Product:   handler.NewProductHandler(productSvc),
		Category:  handler.NewCategoryHandler(categoryRepo),
		Order:     handler.NewOrderHandler(orderSvc),
		Dashboard: handler.NewDashboardHandler(dashboardSvc),
		Upload:    handler.NewUploadHandler(uploadSvc),
	}

	// 7. Initialize middleware
	authMw := middleware.NewAuthMiddleware(authSvc)

	// 8. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, authMw)

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
	Health    *handler.HealthHandler
	Auth      *handler.AuthHandler
	Product   *handler.ProductHandler
	Category  *handler.CategoryHandler
	Order     *handler.OrderHandler
	Dashboard *handler.DashboardHandler
	Upload    *handler.UploadHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, authMw *middleware.AuthMiddleware) {
	api := router.Group("/api")

	api.GET("/health", handlers.Health.Get)

	// Public storefront routes
	api.POST("/auth/login", handlers.Auth.Login)
	api.GET("/products", handlers.Product.List)
	api.GET("/products/brands", handlers.Product.GetBrands)
	api.GET("/products/:slug", handlers.Product.GetBySlug)
	api.GET("/categories", handlers.Category.List)
	api.POST("/orders", handlers.Order.Create)

	// Admin routes
	admin := api.Group("")
	admin.Use(authMw.Handle(), authMw.RequireAdmin())
	{
		admin.GET("/auth/me", handlers.Auth.Me)

		admin.POST("/products", handlers.Product.Create)
		admin.PUT("/products/:id", handlers.Product.Update)
		admin.DELETE("/products/:id", handlers.Product.Delete)

		admin.GET("/orders", handlers.Order.List)
		admin.GET("/orders/:id", handlers.Order.Get)
		admin.PUT("/orders/:id", handlers.Order.Update)

		admin.POST("/upload", handlers.Upload.Upload)
		admin.GET("/dashboard/stats", handlers.Dashboard.Stats)
	}
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

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
