package models

import "time"

// Transaction is the backend-owned transaction record. It is read-only on this
// side: created by the backend in response to a payment submission and fetched
// by the confirmation page, never mutated here.
type Transaction struct {
	ID            string    `json:"id"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	CreatedAt     time.Time `json:"created_at"`
}

// Status values the backend is known to emit. The status field is free-form on
// the wire, so display code must tolerate anything else.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)
