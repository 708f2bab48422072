// Package booking persists trip requests submitted through the booking
// form. Every booking belongs to the authenticated user who created it.
package booking

import "time"

// Booking is a persisted trip request.
type Booking struct {
	ID          string    `json:"id"`
	UserID      string    `json:"-"`
	FullName    string    `json:"fullname"`
	Contact     string    `json:"contact"`
	Email       string    `json:"email"`
	Destination string    `json:"destination"`
	Price       float64   `json:"price"`
	Days        int       `json:"days"`
	TotalCost   float64   `json:"totalCost"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateBookingRequest holds the booking form payload. Field names mirror
// what the frontend submits.
type CreateBookingRequest struct {
	FullName    string  `json:"fullname"`
	Contact     string  `json:"contact"`
	Email       string  `json:"email"`
	Destination string  `json:"destination"`
	Price       float64 `json:"price"`
	Days        int     `json:"days"`
	TotalCost   float64 `json:"totalCost"`
}
