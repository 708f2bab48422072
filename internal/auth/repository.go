package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/yolidayhq/yoliday/internal/apperror"
)

// UserRepository defines the data access contract for user operations.
// All SQL lives in the concrete implementation -- no SQL leaks out.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)

	// Password reset lifecycle. SetResetToken stores the digest and expiry
	// of a pending reset; ClearResetToken abandons it. FindByResetTokenHash
	// only matches rows whose expiry is still in the future -- wrong,
	// expired, and already-consumed tokens are indistinguishable to callers.
	SetResetToken(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error
	ClearResetToken(ctx context.Context, userID string) error
	FindByResetTokenHash(ctx context.Context, tokenHash string, now time.Time) (*User, error)

	// ResetPassword overwrites the password hash and clears both reset
	// columns in a single statement, so a consumed token can never be
	// replayed against a half-updated row.
	ResetPassword(ctx context.Context, userID, passwordHash string) error
}

// userRepository implements UserRepository with hand-written MariaDB queries.
type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository backed by the given DB pool.
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user row into the users table.
func (r *userRepository) Create(ctx context.Context, user *User) error {
	query := `INSERT INTO users (id, name, email, password_hash, created_at)
	          VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}

	return nil
}

// FindByEmail retrieves a user by their email address.
// Returns apperror.NotFound if no user exists with this email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT id, name, email, password_hash, created_at,
	                 reset_token_hash, reset_token_expires_at
	          FROM users WHERE email = ?`

	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

// EmailExists returns true if a user with the given email already exists.
// Used during registration to check for duplicates before hashing the password.
func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking email existence: %w", err)
	}

	return exists, nil
}

// --- Password Reset ---

// SetResetToken stores the reset-token digest and its expiry on the user
// row. The tokenHash is SHA-256(plaintext_token) -- plaintext is never
// stored. Overwrites any previously pending reset: last write wins.
func (r *userRepository) SetResetToken(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error {
	query := `UPDATE users SET reset_token_hash = ?, reset_token_expires_at = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, tokenHash, expiresAt, userID)
	if err != nil {
		return fmt.Errorf("storing reset token: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return apperror.NewNotFound("user not found")
	}
	return nil
}

// ClearResetToken removes a pending reset from the user row. Called when
// email delivery fails so no valid-but-undelivered token stays outstanding.
func (r *userRepository) ClearResetToken(ctx context.Context, userID string) error {
	query := `UPDATE users SET reset_token_hash = NULL, reset_token_expires_at = NULL WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("clearing reset token: %w", err)
	}
	return nil
}

// FindByResetTokenHash looks up the user holding an unexpired reset token
// with this digest. The expiry check lives in the query so there is a
// single lookup path and a single failure answer.
func (r *userRepository) FindByResetTokenHash(ctx context.Context, tokenHash string, now time.Time) (*User, error) {
	query := `SELECT id, name, email, password_hash, created_at,
	                 reset_token_hash, reset_token_expires_at
	          FROM users WHERE reset_token_hash = ? AND reset_token_expires_at > ?`

	return r.scanUser(r.db.QueryRowContext(ctx, query, tokenHash, now))
}

// ResetPassword sets the new password hash and clears the reset columns
// in one UPDATE.
func (r *userRepository) ResetPassword(ctx context.Context, userID, passwordHash string) error {
	query := `UPDATE users
	          SET password_hash = ?, reset_token_hash = NULL, reset_token_expires_at = NULL
	          WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, passwordHash, userID)
	if err != nil {
		return fmt.Errorf("updating password: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return apperror.NewNotFound("user not found")
	}
	return nil
}

// scanUser maps a single-row query onto a User.
func (r *userRepository) scanUser(row *sql.Row) (*User, error) {
	user := &User{}
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.ResetTokenHash,
		&user.ResetTokenExpiresAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NewNotFound("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying user: %w", err)
	}

	return user, nil
}
