package auth

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/yolidayhq/yoliday/internal/apperror"
)

// contextKeyUserID stores the authenticated user's id in the Echo context.
// Other packages read it via GetUserID.
const contextKeyUserID = "auth_user_id"

// RequireAuth returns middleware that verifies the bearer token in the
// Authorization header and injects the user id into the request context.
// Missing, malformed, tampered, and expired tokens all produce the same 401.
func RequireAuth(tokens *TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return apperror.NewUnauthorized("authentication required")
			}

			userID, err := tokens.Parse(token)
			if err != nil {
				return apperror.NewUnauthorized("invalid or expired token")
			}

			c.Set(contextKeyUserID, userID)

			return next(c)
		}
	}
}

// GetUserID retrieves the authenticated user's id from the Echo context.
// Returns empty string if the request is not authenticated (middleware
// not applied).
func GetUserID(c echo.Context) string {
	id, ok := c.Get(contextKeyUserID).(string)
	if !ok {
		return ""
	}
	return id
}

// bearerToken extracts the token from an "Authorization: Bearer ..." header.
func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
