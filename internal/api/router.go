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

	_ "github.com/locatepro/tracking-system/docs"
	"github.com/locatepro/tracking-system/internal/api/handler"
	"github.com/locatepro/tracking-system/internal/api/middleware"
	"github.com/locatepro/tracking-system/internal/core/domain"
	"github.com/locatepro/tracking-system/internal/core/ports"
	"github.com/locatepro/tracking-system/internal/core/service"
	mongodb "github.com/locatepro/tracking-system/internal/infrastructure/db/mongo"
	redisdb "github.com/locatepro/tracking-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The publisher is injected because its worker pool has its own lifecycle,
// owned by main.
func NewRouter(db *mongo.Database, rdb *redis.Client, publisher ports.UpdatePublisher, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("locatepro"))

	// --- Dependencies ---
	shipmentRepo := mongodb.NewShipmentRepository(db)
	shipmentService := service.NewShipmentService(shipmentRepo, publisher, log)

	settingsRepo := redisdb.NewCachedSettingsRepository(mongodb.NewSettingsRepository(db), rdb, log)
	settingsService := service.NewSettingsService(settingsRepo, log)

	authRepo := mongodb.NewAuthRepository(db)
	authService := service.NewAuthService(authRepo, jwtSecret, 24*time.Hour)

	shipmentHandler := handler.NewShipmentHandler(shipmentService)
	eventHandler := handler.NewEventHandler(shipmentService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	authHandler := handler.NewAuthHandler(authService)

	// --- Public routes ---
	e.GET("/shipments/:trackingId", shipmentHandler.Track)
	e.GET("/settings", settingsHandler.Get)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Admin routes ---
	v1 := e.Group("/v1",
		middleware.Auth(jwtSecret),
		middleware.RBAC(domain.RoleAdmin, domain.RoleStaff),
	)
	v1.GET("/shipments", shipmentHandler.List)
	v1.POST("/shipments", shipmentHandler.Create)
	v1.PUT("/shipments/:trackingId", shipmentHandler.Update)
	v1.POST("/shipments/:trackingId/events", eventHandler.Add)

	// Destructive operations and site-wide settings are admin only.
	v1.DELETE("/shipments/:trackingId", shipmentHandler.Delete, middleware.RBAC(domain.RoleAdmin))
	v1.PUT("/settings", settingsHandler.Update, middleware.RBAC(domain.RoleAdmin))

	return e
}
