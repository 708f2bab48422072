package catalog

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for the destination catalog.
type Handler struct {
	service CatalogService
}

// NewHandler creates a new catalog handler with the given service.
func NewHandler(service CatalogService) *Handler {
	return &Handler{service: service}
}

// List processes GET /destinations.
func (h *Handler) List(c echo.Context) error {
	destinations, err := h.service.ListDestinations(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, destinations)
}
