// Package catalog serves the public destination catalog. Destinations are
// read-only reference data seeded by migration; the list is cached in Redis
// because it backs the landing page and rarely changes.
package catalog

// Destination is a bookable travel destination.
type Destination struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	Description string  `json:"description"`
	PricePerDay float64 `json:"pricePerDay"`
	Days        int     `json:"days"`
}
