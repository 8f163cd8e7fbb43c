package domain

import "github.com/google/uuid"

// Tour read-only input of a booking.
type Tour struct {
	ID       uuid.UUID
	Title    string
	Slug     string
	Price    float64
	IsActive bool
}
