package booking

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up booking routes on the given group. The caller
// attaches auth.RequireAuth to the group -- every booking route needs an
// authenticated user.
func RegisterRoutes(g *echo.Group, h *Handler) {
	g.POST("/bookings", h.Create)
	g.GET("/bookings", h.List)
}
