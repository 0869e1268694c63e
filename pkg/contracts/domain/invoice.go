package domain

import (
	"time"
)

// InvoiceStatus represents the fulfillment state of an invoice
type InvoiceStatus string

const (
	StatusPending  InvoiceStatus = "pending"
	StatusShipped  InvoiceStatus = "shipped"
	StatusReturned InvoiceStatus = "returned"
)

// IsValid reports whether the status is one of the known enum values
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusShipped, StatusReturned:
		return true
	}
	return false
}

// DateKeyLayout is the canonical calendar-date key used for all
// date-scoped invoice queries.
const DateKeyLayout = "2006-01-02"

// Invoice represents an order placed by a customer with a merchant.
// Whether an invoice is paid in full is never stored: it is derived from
// the invoice's transactions (at least one successful attempt).
type Invoice struct {
	ID         int           `json:"id" csv:"id" validate:"required,min=1"`
	CustomerID int           `json:"customer_id" csv:"customer_id" validate:"required,min=1"`
	MerchantID int           `json:"merchant_id" csv:"merchant_id" validate:"required,min=1"`
	Status     InvoiceStatus `json:"status" csv:"status" validate:"required,oneof=pending shipped returned"`
	CreatedAt  time.Time     `json:"created_at" csv:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at" csv:"updated_at"`
}

// DateKey returns the invoice's creation date normalized to the canonical
// YYYY-MM-DD key used by date-scoped queries.
func (i Invoice) DateKey() string {
	return i.CreatedAt.Format(DateKeyLayout)
}

// Weekday returns the English weekday name of the invoice's creation date
// (e.g. "Wednesday"), the bucket key for day-of-week analysis.
func (i Invoice) Weekday() string {
	return i.CreatedAt.Weekday().String()
}
