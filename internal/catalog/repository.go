package catalog

import (
	"context"
	"database/sql"
	"fmt"
)

// DestinationRepository defines read access to the destination catalog.
type DestinationRepository interface {
	ListAll(ctx context.Context) ([]Destination, error)
}

// destinationRepository implements DestinationRepository over MariaDB.
type destinationRepository struct {
	db *sql.DB
}

// NewDestinationRepository creates a new destination repository backed by
// the given DB pool.
func NewDestinationRepository(db *sql.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

// ListAll returns every destination ordered by name.
func (r *destinationRepository) ListAll(ctx context.Context) ([]Destination, error) {
	query := `SELECT id, name, country, description, price_per_day, days
	          FROM destinations ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing destinations: %w", err)
	}
	defer rows.Close()

	destinations := []Destination{}
	for rows.Next() {
		var d Destination
		if err := rows.Scan(&d.ID, &d.Name, &d.Country, &d.Description, &d.PricePerDay, &d.Days); err != nil {
			return nil, fmt.Errorf("scanning destination row: %w", err)
		}
		destinations = append(destinations, d)
	}

	return destinations, rows.Err()
}
