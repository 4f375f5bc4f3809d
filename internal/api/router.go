package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/hamstery/hamstery-api/docs"
	"github.com/hamstery/hamstery-api/internal/api/handler"
	"github.com/hamstery/hamstery-api/internal/api/middleware"
	"github.com/hamstery/hamstery-api/internal/core/service"
	mongodb "github.com/hamstery/hamstery-api/internal/infrastructure/db/mongo"
	redisdb "github.com/hamstery/hamstery-api/internal/infrastructure/db/redis"
	"github.com/hamstery/hamstery-api/internal/pkg/namegen"
)

// Deps carries the external collaborators the router wires together.
type Deps struct {
	Client    *mongo.Client
	DB        *mongo.Database
	Redis     *redis.Client
	JWTSecret string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("hamstery"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(deps.DB)
	hamsterRepo := mongodb.NewHamsterRepository(deps.DB)
	txRunner := mongodb.NewTxRunner(deps.Client)
	locker := redisdb.NewEntityLocker(deps.Redis)
	names := namegen.New()

	authService := service.NewAuthService(userRepo, hamsterRepo, names, txRunner, deps.JWTSecret, 24*time.Hour, deps.Logger)
	hamsterService := service.NewHamsterService(hamsterRepo, userRepo, names, txRunner, locker, deps.Logger)
	userService := service.NewUserService(userRepo, hamsterRepo, txRunner, deps.Logger)

	authHandler := handler.NewAuthHandler(authService)
	hamsterHandler := handler.NewHamsterHandler(hamsterService)
	userHandler := handler.NewUserHandler(userService)

	authMiddleware := middleware.Auth(deps.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Authenticated API ---
	apiGroup := e.Group("/api", authMiddleware)
	apiGroup.GET("/user", userHandler.Current)
	apiGroup.DELETE("/users/:id", userHandler.Delete, middleware.RequireRole("admin"))

	apiGroup.GET("/hamsters", hamsterHandler.List)
	apiGroup.GET("/hamsters/:id", hamsterHandler.Get)
	apiGroup.POST("/hamsters/reproduce", hamsterHandler.Reproduce)
	apiGroup.POST("/hamsters/:id/feed", hamsterHandler.Feed)
	apiGroup.POST("/hamsters/:id/sell", hamsterHandler.Sell)
	apiGroup.POST("/hamsters/sleep/:days", hamsterHandler.Sleep)
	apiGroup.PUT("/hamsters/:id/rename", hamsterHandler.Rename)

	// --- Health probes / operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
