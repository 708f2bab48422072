package booking

import (
	"context"
	"database/sql"
	"fmt"
)

// BookingRepository defines the data access contract for bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *Booking) error
	ListByUser(ctx context.Context, userID string) ([]Booking, error)
}

// bookingRepository implements BookingRepository with hand-written
// MariaDB queries.
type bookingRepository struct {
	db *sql.DB
}

// NewBookingRepository creates a new booking repository backed by the
// given DB pool.
func NewBookingRepository(db *sql.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// Create inserts a new booking row.
func (r *bookingRepository) Create(ctx context.Context, b *Booking) error {
	query := `INSERT INTO bookings
	          (id, user_id, fullname, contact, email, destination, price, days, total_cost, created_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		b.UserID,
		b.FullName,
		b.Contact,
		b.Email,
		b.Destination,
		b.Price,
		b.Days,
		b.TotalCost,
		b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting booking: %w", err)
	}

	return nil
}

// ListByUser returns all bookings created by the given user, newest first.
func (r *bookingRepository) ListByUser(ctx context.Context, userID string) ([]Booking, error) {
	query := `SELECT id, user_id, fullname, contact, email, destination, price, days, total_cost, created_at
	          FROM bookings WHERE user_id = ? ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing bookings: %w", err)
	}
	defer rows.Close()

	bookings := []Booking{}
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.FullName, &b.Contact, &b.Email,
			&b.Destination, &b.Price, &b.Days, &b.TotalCost, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning booking row: %w", err)
		}
		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}
