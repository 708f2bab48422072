package booking

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yolidayhq/yoliday/internal/apperror"
	"github.com/yolidayhq/yoliday/internal/auth"
)

// Handler handles HTTP requests for bookings. Both endpoints run behind
// auth.RequireAuth, so the user id is always present in the context.
type Handler struct {
	service BookingService
}

// NewHandler creates a new booking handler with the given service.
func NewHandler(service BookingService) *Handler {
	return &Handler{service: service}
}

// Create processes POST /bookings.
func (h *Handler) Create(c echo.Context) error {
	userID := auth.GetUserID(c)
	if userID == "" {
		return apperror.NewUnauthorized("authentication required")
	}

	var req CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	b, err := h.service.Create(c.Request().Context(), userID, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Booking successfully created",
		"booking": b,
	})
}

// List processes GET /bookings.
func (h *Handler) List(c echo.Context) error {
	userID := auth.GetUserID(c)
	if userID == "" {
		return apperror.NewUnauthorized("authentication required")
	}

	bookings, err := h.service.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, bookings)
}
