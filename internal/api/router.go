package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/fintrack/operations-api/docs"
	"github.com/fintrack/operations-api/internal/api/handler"
	"github.com/fintrack/operations-api/internal/api/middleware"
	"github.com/fintrack/operations-api/internal/core/service"
	"github.com/fintrack/operations-api/internal/infrastructure/config"
	mongodb "github.com/fintrack/operations-api/internal/infrastructure/db/mongo"
	redisdb "github.com/fintrack/operations-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("ledger"))

	// --- Dependencies ---
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	authRepo := mongodb.NewAuthRepository(db)
	authService := service.NewAuthService(authRepo, tokenService, log)
	authHandler := handler.NewAuthHandler(authService)

	operationRepo := mongodb.NewOperationRepository(db)
	operationService := service.NewOperationService(operationRepo, log)
	operationHandler := handler.NewOperationHandler(operationService)

	loginThrottle := redisdb.NewLoginThrottle(rdb, cfg.Login.RateLimit, cfg.Login.RateWindow)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login, middleware.LoginRateLimit(loginThrottle, log))

	// --- Ledger routes (bearer token required) ---
	operations := e.Group("/operations", middleware.Auth(tokenService))
	operations.POST("", operationHandler.Create)
	operations.GET("", operationHandler.List)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}
