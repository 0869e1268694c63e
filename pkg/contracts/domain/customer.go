package domain

import (
	"time"
)

// Customer represents a buyer. The analyst only needs customers for
// referential integrity; no per-customer analytics are computed.
type Customer struct {
	ID        int       `json:"id" csv:"id" validate:"required,min=1"`
	FirstName string    `json:"first_name" csv:"first_name" validate:"required"`
	LastName  string    `json:"last_name" csv:"last_name" validate:"required"`
	CreatedAt time.Time `json:"created_at" csv:"created_at"`
	UpdatedAt time.Time `json:"updated_at" csv:"updated_at"`
}

// FullName returns the customer's display name
func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
