package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/scholarfind/scholarship-api/docs"
	"github.com/scholarfind/scholarship-api/internal/api/handler"
	"github.com/scholarfind/scholarship-api/internal/api/middleware"
	"github.com/scholarfind/scholarship-api/internal/core/service"
	"github.com/scholarfind/scholarship-api/internal/infrastructure/config"
	"github.com/scholarfind/scholarship-api/internal/infrastructure/db/postgres"
	redisinfra "github.com/scholarfind/scholarship-api/internal/infrastructure/db/redis"
	"github.com/scholarfind/scholarship-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("scholarfind"))

	// --- Repositories ---
	userRepo := postgres.NewUserRepository(db)
	scholarshipRepo := postgres.NewScholarshipRepository(db)
	bookmarkRepo := postgres.NewBookmarkRepository(db)
	statsRepo := postgres.NewStatsRepository(db)

	// --- Services ---
	tokenService := service.NewTokenService(cfg.JWTSecret, 0)
	authService := service.NewAuthService(userRepo, tokenService, log)
	scholarshipService := service.NewScholarshipService(scholarshipRepo, log)
	bookmarkService := service.NewBookmarkService(bookmarkRepo, log)
	statsService := service.NewStatsService(statsRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	scholarshipHandler := handler.NewScholarshipHandler(scholarshipService)
	bookmarkHandler := handler.NewBookmarkHandler(bookmarkService)
	adminHandler := handler.NewAdminHandler(statsService)

	// --- Route middleware ---
	authn := middleware.Auth(tokenService)
	admin := middleware.RequireAdmin(userRepo)
	limiter := redisinfra.NewFixedWindowLimiter(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window)
	ratelimit := middleware.RateLimit(limiter, log)

	api := e.Group("/api")

	// --- Auth routes ---
	api.POST("/auth/register", authHandler.Register, ratelimit)
	api.POST("/auth/login", authHandler.Login, ratelimit)

	// --- Scholarship routes (reads public, writes admin-gated) ---
	api.GET("/scholarships", scholarshipHandler.List)
	api.GET("/scholarships/:id", scholarshipHandler.Get)
	api.POST("/scholarships", scholarshipHandler.Create, authn, admin)
	api.PUT("/scholarships/:id", scholarshipHandler.Update, authn, admin)
	api.DELETE("/scholarships/:id", scholarshipHandler.Delete, authn, admin)

	// --- Bookmark routes ---
	api.GET("/bookmarks", bookmarkHandler.List, authn)
	api.POST("/bookmarks/:id", bookmarkHandler.Add, authn)
	api.DELETE("/bookmarks/:id", bookmarkHandler.Remove, authn)

	// --- Admin routes ---
	api.GET("/admin/stats", adminHandler.Stats, authn, admin)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	api.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	api.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
