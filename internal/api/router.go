package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/goaltracker/goal-tracker-api/internal/api/handler"
	"github.com/goaltracker/goal-tracker-api/internal/api/middleware"
	"github.com/goaltracker/goal-tracker-api/internal/core/service"
	"github.com/goaltracker/goal-tracker-api/internal/infrastructure/config"
	mongodb "github.com/goaltracker/goal-tracker-api/internal/infrastructure/db/mongo"
	redisdb "github.com/goaltracker/goal-tracker-api/internal/infrastructure/db/redis"
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
	e.Use(echoprometheus.NewMiddleware("goaltracker"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	goalRepo := mongodb.NewGoalRepository(db)

	var userCache service.UserCache
	if rdb != nil {
		userCache = redisdb.NewUserCache(rdb)
	}

	hasher := service.NewBcryptHasher(cfg.BcryptCost)
	tokens := service.NewJWTTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, hasher, tokens, log)
	userService := service.NewUserService(userRepo, userCache, log)
	goalService := service.NewGoalService(goalRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	goalHandler := handler.NewGoalHandler(goalService)
	guard := middleware.Auth(tokens, userService)

	// --- User routes ---
	users := e.Group("/api/users")
	users.POST("", authHandler.Register)
	users.POST("/login", authHandler.Login)
	users.GET("/me", userHandler.Me, guard)
	users.GET("", userHandler.List, guard)
	users.GET("/:id", userHandler.Get, guard)
	users.PUT("/:id", userHandler.Update, guard)
	users.DELETE("/:id", userHandler.Delete, guard)

	// --- Goal routes (all protected) ---
	goals := e.Group("/api/goals", guard)
	goals.GET("", goalHandler.List)
	goals.POST("", goalHandler.Create)
	goals.GET("/:id", goalHandler.Get)
	goals.PUT("/:id", goalHandler.Update)
	goals.DELETE("/:id", goalHandler.Delete)

	// --- Ops endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
