package auth

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/yolidayhq/yoliday/internal/middleware"
)

// RegisterRoutes sets up all auth routes on the given Echo instance.
// Auth routes are public (no session required) -- the RequireAuth
// middleware is exported separately for other packages to use on their
// route groups.
//
// Endpoints are rate-limited to slow brute-force and credential stuffing:
// 10 attempts per IP per minute for login, 5 for everything else.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.POST("/register", h.Register, middleware.RateLimit(5, time.Minute))
	e.POST("/login", h.Login, middleware.RateLimit(10, time.Minute))
	e.POST("/forgot-password", h.ForgotPassword, middleware.RateLimit(5, time.Minute))
	e.POST("/reset-password/:token", h.ResetPassword, middleware.RateLimit(5, time.Minute))
}
