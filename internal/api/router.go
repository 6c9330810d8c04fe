package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/casavia/realty-system/docs"
	"github.com/casavia/realty-system/internal/api/handler"
	"github.com/casavia/realty-system/internal/api/middleware"
	"github.com/casavia/realty-system/internal/core/domain"
	"github.com/casavia/realty-system/internal/core/ports"
	"github.com/casavia/realty-system/internal/core/service"
	"github.com/casavia/realty-system/internal/infrastructure/config"
	mongorepo "github.com/casavia/realty-system/internal/infrastructure/db/mongo"
	redisrepo "github.com/casavia/realty-system/internal/infrastructure/db/redis"
	healthhandlers "github.com/casavia/realty-system/internal/infrastructure/http/handlers"
)

// NewRouter builds the Echo instance with all routes registered. files is the
// image store for listing uploads.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, files ports.FileStore, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("realty"))

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(db)
	propertyRepo := mongorepo.NewPropertyRepository(db)
	bookingRepo := mongorepo.NewBookingRepository(db)
	contactRepo := mongorepo.NewContactRepository(db)
	limiter := redisrepo.NewLoginLimiter(rdb, cfg.MaxLoginAttempts)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService, limiter, log)
	propertyService := service.NewPropertyService(propertyRepo, files, log)
	bookingService := service.NewBookingService(bookingRepo, propertyRepo, userRepo, log)
	contactService := service.NewContactService(contactRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	propertyHandler := handler.NewPropertyHandler(propertyService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	contactHandler := handler.NewContactHandler(contactService)
	adminHandler := handler.NewAdminHandler(propertyService, bookingService, contactService)

	// The gate resolves identities but never rejects; route groups below
	// decide who gets in.
	e.Use(middleware.Authenticate(tokenService, userRepo, log))

	// --- Public routes ---
	e.POST("/api/users/register", authHandler.Register)
	e.POST("/api/users/login", authHandler.Login)
	e.POST("/api/public/contact", contactHandler.Submit)

	// --- Authenticated routes ---
	authed := e.Group("", middleware.RequireAuth())
	authed.GET("/api/users/me", authHandler.Me)

	authed.GET("/api/properties", propertyHandler.Search)
	authed.GET("/api/properties/:id", propertyHandler.Get)
	authed.POST("/api/properties", propertyHandler.Create)

	// Ownership is decided by the policy engine inside the service, so these
	// only require authentication at the route level.
	authed.PUT("/api/owner/properties/:id", propertyHandler.Update)
	authed.DELETE("/api/owner/properties/:id", propertyHandler.Delete)
	authed.POST("/api/owner/properties/:id/images", propertyHandler.UploadImages)

	authed.POST("/api/bookings", bookingHandler.Create)
	authed.GET("/api/bookings/:id", bookingHandler.Get)
	authed.PATCH("/api/bookings/:id/status", bookingHandler.UpdateStatus)
	authed.POST("/api/payments/booking/:id/confirm-manual", bookingHandler.ConfirmPayment)

	e.GET("/api/bookings/my/customer", bookingHandler.MyBookings,
		middleware.RequireRole(domain.RoleCustomer))
	e.GET("/api/bookings/my/owner", bookingHandler.OwnerBookings,
		middleware.RequireRole(domain.RolePropertyOwner))

	// --- Admin routes ---
	admin := e.Group("/api/admin", middleware.RequireRole(domain.RoleAdmin))
	admin.GET("/properties", adminHandler.ListProperties)
	admin.DELETE("/properties/:id", adminHandler.DeleteProperty)
	admin.GET("/bookings", adminHandler.ListBookings)
	admin.GET("/messages", adminHandler.ListMessages)
	admin.PUT("/messages/:id/read", adminHandler.MarkMessageRead)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	return e
}
