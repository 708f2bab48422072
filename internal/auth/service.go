package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yolidayhq/yoliday/internal/apperror"
	"github.com/yolidayhq/yoliday/internal/mailer"
)

// AuthService defines the business logic contract for authentication.
// Handlers call these methods -- they never touch the repository directly.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*User, string, error)
	Login(ctx context.Context, req LoginRequest) (*User, string, error)

	// ForgotPassword starts the reset lifecycle. Unknown emails return nil
	// without touching storage or sending mail, so the handler's generic
	// response never betrays whether an account exists. A mail delivery
	// failure rolls the pending reset back and returns a delivery error.
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword consumes a one-time reset token. Wrong, expired, and
	// already-used tokens fail with the same error.
	ResetPassword(ctx context.Context, token, newPassword string) (*User, string, error)
}

// authService implements AuthService with argon2id hashing, JWT session
// tokens, and SHA-256-digested reset tokens.
type authService struct {
	repo     UserRepository
	tokens   *TokenIssuer
	mail     mailer.Mailer
	baseURL  string
	resetTTL time.Duration
}

// NewAuthService creates a new auth service with the given dependencies.
// baseURL is the frontend origin embedded in reset links.
func NewAuthService(repo UserRepository, tokens *TokenIssuer, mail mailer.Mailer, baseURL string, resetTTL time.Duration) AuthService {
	return &authService{
		repo:     repo,
		tokens:   tokens,
		mail:     mail,
		baseURL:  baseURL,
		resetTTL: resetTTL,
	}
}

// Register creates a new user account. It validates uniqueness, hashes the
// password with argon2id, and hands back a fresh session token.
func (s *authService) Register(ctx context.Context, req RegisterRequest) (*User, string, error) {
	email := normalizeEmail(req.Email)

	// Check if email is already taken before doing expensive hashing.
	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, "", apperror.NewInternal(fmt.Errorf("checking email: %w", err))
	}
	if exists {
		return nil, "", apperror.NewBadRequest("User already exists")
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, "", apperror.NewInternal(fmt.Errorf("hashing password: %w", err))
	}

	user := &User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, "", apperror.NewInternal(fmt.Errorf("creating user: %w", err))
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", apperror.NewInternal(fmt.Errorf("issuing token: %w", err))
	}

	slog.Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("email", user.Email),
	)

	return user, token, nil
}

// Login authenticates a user by email and password and issues a session
// token. Unknown email and wrong password share one error path so neither
// the message nor the branch structure reveals which check failed.
func (s *authService) Login(ctx context.Context, req LoginRequest) (*User, string, error) {
	user, err := s.repo.FindByEmail(ctx, normalizeEmail(req.Email))
	ok := err == nil && verifyPassword(req.Password, user.PasswordHash)
	if !ok {
		if err != nil && apperror.SafeCode(err) != 404 {
			return nil, "", apperror.NewInternal(fmt.Errorf("finding user: %w", err))
		}
		return nil, "", apperror.NewUnauthorized("Invalid credentials")
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", apperror.NewInternal(fmt.Errorf("issuing token: %w", err))
	}

	slog.Info("user logged in",
		slog.String("user_id", user.ID),
		slog.String("email", user.Email),
	)

	return user, token, nil
}

// ForgotPassword generates a one-time reset token, stores its digest with
// a short expiry, and emails the plaintext link. If two requests race for
// the same user, the later digest simply overwrites the earlier one.
func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if apperror.SafeCode(err) == 404 {
			// Unknown email: report nothing, mutate nothing, send nothing.
			return nil
		}
		return apperror.NewInternal(fmt.Errorf("finding user: %w", err))
	}

	plaintext, err := generateResetToken()
	if err != nil {
		return apperror.NewInternal(fmt.Errorf("generating reset token: %w", err))
	}

	expiresAt := time.Now().UTC().Add(s.resetTTL)
	if err := s.repo.SetResetToken(ctx, user.ID, hashToken(plaintext), expiresAt); err != nil {
		return apperror.NewInternal(fmt.Errorf("storing reset token: %w", err))
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", strings.TrimRight(s.baseURL, "/"), plaintext)

	err = s.mail.Send(ctx, user.Email,
		"Password Reset Request - Yoliday",
		resetEmailHTML(user.Name, resetURL, s.resetTTL),
	)
	if err != nil {
		// Roll the pending reset back so no valid-but-undelivered token
		// remains outstanding, then surface the delivery failure.
		if clearErr := s.repo.ClearResetToken(ctx, user.ID); clearErr != nil {
			slog.Error("failed to clear reset token after delivery failure",
				slog.String("user_id", user.ID),
				slog.Any("error", clearErr),
			)
		}
		slog.Warn("reset email delivery failed",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		return apperror.NewDelivery(err)
	}

	slog.Info("reset email sent",
		slog.String("user_id", user.ID),
		slog.Duration("expires_in", s.resetTTL),
	)

	return nil
}

// ResetPassword looks up the user by the token digest, rejecting anything
// that doesn't match an unexpired pending reset, then swaps in the new
// password hash and clears the token in one write.
func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) (*User, string, error) {
	if len(newPassword) < 6 {
		return nil, "", apperror.NewBadRequest("Password must be at least 6 characters")
	}

	user, err := s.repo.FindByResetTokenHash(ctx, hashToken(token), time.Now().UTC())
	if err != nil {
		if apperror.SafeCode(err) == 404 {
			return nil, "", apperror.NewBadRequest("Invalid or expired reset token")
		}
		return nil, "", apperror.NewInternal(fmt.Errorf("finding reset token: %w", err))
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return nil, "", apperror.NewInternal(fmt.Errorf("hashing password: %w", err))
	}

	if err := s.repo.ResetPassword(ctx, user.ID, hash); err != nil {
		return nil, "", apperror.NewInternal(fmt.Errorf("resetting password: %w", err))
	}

	// The reset transaction leaves the caller authenticated.
	sessionToken, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", apperror.NewInternal(fmt.Errorf("issuing token: %w", err))
	}

	slog.Info("password reset",
		slog.String("user_id", user.ID),
	)

	return user, sessionToken, nil
}

// normalizeEmail lower-cases and trims an email so lookups and uniqueness
// checks are case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// resetEmailHTML renders the password-reset email body.
func resetEmailHTML(name, resetURL string, ttl time.Duration) string {
	minutes := int(ttl.Minutes())
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2>Password Reset Request</h2>
  <p>Hello <strong>%s</strong>,</p>
  <p>You requested a password reset for your Yoliday account. Click the button below to reset your password:</p>
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #4CAF50; color: white; padding: 15px 30px; text-decoration: none; border-radius: 5px; font-weight: bold;">Reset Your Password</a>
  </p>
  <p>Or copy and paste this link into your browser:</p>
  <p style="word-break: break-all;">%s</p>
  <p style="color: #999; font-size: 12px;">This link will expire in <strong>%d minutes</strong>.</p>
  <p style="color: #999; font-size: 12px;">If you didn't request this password reset, please ignore this email and your password will remain unchanged.</p>
  <p style="color: #999; font-size: 12px;">Best regards,<br><strong>Yoliday Team</strong></p>
</div>`, name, resetURL, resetURL, minutes)
}
