package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/openfleet/garage-api/internal/api/handler"
	"github.com/openfleet/garage-api/internal/core/ports"
	"github.com/openfleet/garage-api/internal/core/service"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The repositories are constructed once at process start and shared by
// every request through the services wired here.
func NewRouter(vehicleRepo ports.VehicleRepository, userRepo ports.UserRepository, hasher service.PasswordHasher, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Dependencies ---
	vehicleService := service.NewVehicleService(vehicleRepo, log)
	vehicleHandler := handler.NewVehicleHandler(vehicleService)

	authService := service.NewAuthService(userRepo, hasher, log)
	authHandler := handler.NewAuthHandler(authService)

	healthHandler := handler.NewHealthHandler()

	// --- Health probes ---
	e.GET("/", healthHandler.Liveness)
	e.GET("/health", healthHandler.Liveness)

	// --- Vehicle routes ---
	e.POST("/cars", vehicleHandler.Create)
	e.GET("/cars", vehicleHandler.List)
	e.GET("/cars/:brand", vehicleHandler.FilterByBrand)
	e.PUT("/cars/:id", vehicleHandler.Update)
	e.DELETE("/cars/:id", vehicleHandler.Delete)

	// --- Auth routes ---
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)

	return e
}
