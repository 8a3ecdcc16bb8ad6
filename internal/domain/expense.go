package domain

import "time"

// Expense is a single spending record owned by exactly one user.
type Expense struct {
	ID         string    `json:"id"`
	OwnerID    string    `json:"owner_id"`
	Title      string    `json:"title"`
	Amount     float64   `json:"amount"`
	Category   string    `json:"category"`
	OccurredAt time.Time `json:"occurred_at"`
}
