// Package auth handles user accounts for the Yoliday booking API:
// registration, login, stateless session tokens, and the hashed one-time
// password-reset flow. Handlers, service, and repository live together here;
// other packages consume the exported middleware and context getters.
package auth

import (
	"time"
)

// User represents a registered account. This is the domain model used
// throughout the application. The password hash and reset-token fields
// never appear in JSON responses.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`

	// ResetTokenHash is the SHA-256 digest of an outstanding reset token,
	// nil when no reset is pending. ResetTokenExpiresAt is set and cleared
	// together with it -- the pair is either both present or both absent.
	ResetTokenHash      *string    `json:"-"`
	ResetTokenExpiresAt *time.Time `json:"-"`
}

// PublicUser is the subset of User returned to clients: never the hash,
// never the reset-token fields.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public returns the client-visible view of the user.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}

// --- Request DTOs (bound from HTTP requests) ---

// RegisterRequest holds the registration payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest holds the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest holds the forgot-password payload.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest holds the new password; the reset token itself
// arrives as a path parameter.
type ResetPasswordRequest struct {
	Password string `json:"password"`
}

// --- Response DTOs ---

// AuthResponse is the success shape shared by register, login, and
// reset-password: a message, a fresh session token, and the public user.
type AuthResponse struct {
	Message string     `json:"message"`
	Token   string     `json:"token"`
	User    PublicUser `json:"user"`
}
