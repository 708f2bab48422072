package booking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/yolidayhq/yoliday/internal/apperror"
)

// BookingService defines the business logic contract for bookings.
type BookingService interface {
	Create(ctx context.Context, userID string, req CreateBookingRequest) (*Booking, error)
	ListForUser(ctx context.Context, userID string) ([]Booking, error)
}

// bookingService implements BookingService.
type bookingService struct {
	repo BookingRepository
}

// NewBookingService creates a new booking service.
func NewBookingService(repo BookingRepository) BookingService {
	return &bookingService{repo: repo}
}

// Create validates the booking form and persists it for the given user.
// The total cost comes from the form; when absent it is derived from
// price and days.
func (s *bookingService) Create(ctx context.Context, userID string, req CreateBookingRequest) (*Booking, error) {
	if req.FullName == "" || req.Contact == "" || req.Email == "" ||
		req.Destination == "" || req.Price == 0 || req.Days == 0 {
		return nil, apperror.NewBadRequest("All fields are required")
	}

	totalCost := req.TotalCost
	if totalCost == 0 {
		totalCost = req.Price * float64(req.Days)
	}

	b := &Booking{
		ID:          uuid.NewString(),
		UserID:      userID,
		FullName:    req.FullName,
		Contact:     req.Contact,
		Email:       req.Email,
		Destination: req.Destination,
		Price:       req.Price,
		Days:        req.Days,
		TotalCost:   totalCost,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("creating booking: %w", err))
	}

	slog.Info("booking created",
		slog.String("booking_id", b.ID),
		slog.String("user_id", userID),
		slog.String("destination", b.Destination),
	)

	return b, nil
}

// ListForUser returns the user's bookings, newest first.
func (s *bookingService) ListForUser(ctx context.Context, userID string) ([]Booking, error) {
	bookings, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("listing bookings: %w", err))
	}
	return bookings, nil
}
