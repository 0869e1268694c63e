package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item represents a product listed by a merchant. UnitPrice is the current
// listing price; the price actually charged on a sale lives on the
// InvoiceItem, which snapshots the price at time of sale.
type Item struct {
	ID          int             `json:"id" csv:"id" validate:"required,min=1"`
	Name        string          `json:"name" csv:"name" validate:"required"`
	Description string          `json:"description" csv:"description"`

	// UnitPrice is the current listing price. Exact decimal, never a
	// binary float: money comparisons in the analyst are done on this
	// value directly.
	UnitPrice decimal.Decimal `json:"unit_price" csv:"unit_price"`

	// MerchantID is the owning merchant's ID
	MerchantID int `json:"merchant_id" csv:"merchant_id" validate:"required,min=1"`

	CreatedAt time.Time `json:"created_at" csv:"created_at"`
	UpdatedAt time.Time `json:"updated_at" csv:"updated_at"`
}
