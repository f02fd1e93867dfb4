package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/stocklane/inventory-system/internal/api/handler"
	"github.com/stocklane/inventory-system/internal/api/middleware"
	"github.com/stocklane/inventory-system/internal/auth"
	"github.com/stocklane/inventory-system/internal/core/domain"
	"github.com/stocklane/inventory-system/internal/core/service"
	"github.com/stocklane/inventory-system/internal/infrastructure/db/postgres"
	"github.com/stocklane/inventory-system/internal/infrastructure/db/redis"
	"github.com/stocklane/inventory-system/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the analytics cache is then disabled.
func NewRouter(cfg *config.Config, pool *pgxpool.Pool, rdb *goredis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.AllowedOrigin},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("inventory"))

	// --- Dependencies ---
	codec := auth.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)

	var cache service.AnalyticsCache
	if rdb != nil {
		cache = redis.NewAnalyticsCache(rdb, log)
	}

	authService := service.NewAuthService(userRepo, codec)
	productService := service.NewProductService(productRepo, userRepo, cache, log)
	userService := service.NewUserService(userRepo)

	authHandler := handler.NewAuthHandler(authService, codec.TTL(), cfg.IsProduction())
	productHandler := handler.NewProductHandler(productService)
	userHandler := handler.NewUserHandler(userService)

	authGate := middleware.Auth(codec)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Product routes ---
	products := e.Group("/products")
	products.POST("", productHandler.Create, authGate)
	products.GET("", productHandler.List, authGate)
	products.GET("/mine", productHandler.Mine, authGate)
	products.GET("/recent", productHandler.Recent, authGate, adminOnly)
	products.GET("/valuable", productHandler.Valuable, authGate, adminOnly)
	products.GET("/category-breakdown", productHandler.CategoryBreakdown, authGate, adminOnly)
	products.GET("/analytics", productHandler.Analytics, authGate, adminOnly)
	products.GET("/:id", productHandler.Get)
	products.PUT("/:id/quantity", productHandler.UpdateQuantity, authGate)

	// --- User routes ---
	e.GET("/users", userHandler.List, authGate, adminOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
