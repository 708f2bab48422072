package app

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/yolidayhq/yoliday/internal/auth"
	"github.com/yolidayhq/yoliday/internal/booking"
	"github.com/yolidayhq/yoliday/internal/catalog"
)

// RegisterRoutes constructs every feature package (repository, service,
// handler) from the shared infrastructure and registers all routes. This
// is the single place where routes are aggregated.
func (a *App) RegisterRoutes() {
	e := a.Echo

	// --- Public routes ---

	// Status banner, kept for anyone probing the API root.
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message":   "Travel Booking API is running",
			"status":    "active",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Health check endpoint for container health monitoring. Verifies the
	// two backing services an unhealthy instance would be lying about.
	e.GET("/healthz", func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := a.DB.PingContext(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "database unavailable"})
		}
		if err := a.Redis.Ping(ctx).Err(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "redis unavailable"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// --- Auth (public: register, login, forgot/reset password) ---
	tokens := auth.NewTokenIssuer(a.Config.Auth.JWTSecret, a.Config.Auth.TokenTTL)
	authService := auth.NewAuthService(
		auth.NewUserRepository(a.DB),
		tokens,
		a.Mail,
		a.Config.FrontendURL,
		a.Config.Auth.ResetTokenTTL,
	)
	auth.RegisterRoutes(e, auth.NewHandler(authService))

	// --- Catalog (public) ---
	catalogService := catalog.NewCatalogService(catalog.NewDestinationRepository(a.DB), a.Redis)
	catalog.RegisterRoutes(e, catalog.NewHandler(catalogService))

	// --- Bookings (authenticated) ---
	authed := e.Group("", auth.RequireAuth(tokens))
	bookingService := booking.NewBookingService(booking.NewBookingRepository(a.DB))
	booking.RegisterRoutes(authed, booking.NewHandler(bookingService))
}
