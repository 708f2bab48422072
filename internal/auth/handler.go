package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yolidayhq/yoliday/internal/apperror"
)

// Handler handles HTTP requests for authentication. Handlers are thin: they
// bind the request, check required fields, call the service, and shape the
// JSON response. No business logic lives here.
type Handler struct {
	service AuthService
}

// NewHandler creates a new auth handler with the given service.
func NewHandler(service AuthService) *Handler {
	return &Handler{service: service}
}

// Register processes POST /register.
func (h *Handler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return apperror.NewBadRequest("All fields are required")
	}

	user, token, err := h.service.Register(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, AuthResponse{
		Message: "User registered successfully",
		Token:   token,
		User:    user.Public(),
	})
}

// Login processes POST /login.
func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	if req.Email == "" || req.Password == "" {
		return apperror.NewBadRequest("Email and password are required")
	}

	user, token, err := h.service.Login(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    user.Public(),
	})
}

// ForgotPassword processes POST /forgot-password. The success answer is the
// same whether or not the email belongs to an account; only a delivery
// failure for a real account surfaces as an error.
func (h *Handler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	if req.Email == "" {
		return apperror.NewBadRequest("Email is required")
	}

	if err := h.service.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "If an account with that email exists, a password reset link has been sent.",
	})
}

// ResetPassword processes POST /reset-password/:token. The plaintext token
// travels in the path; the new password in the body.
func (h *Handler) ResetPassword(c echo.Context) error {
	token := c.Param("token")
	if token == "" {
		return apperror.NewBadRequest("Reset token is required")
	}

	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	if req.Password == "" {
		return apperror.NewBadRequest("Password is required")
	}

	user, sessionToken, err := h.service.ResetPassword(c.Request().Context(), token, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, AuthResponse{
		Message: "Password has been reset successfully",
		Token:   sessionToken,
		User:    user.Public(),
	})
}
