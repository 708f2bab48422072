package catalog

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up catalog routes on the given Echo instance.
// The catalog is public -- no session required.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/destinations", h.List)
}
