package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceItem is a single line on an invoice: a quantity of one item at
// the unit price in effect when the sale happened. That price may differ
// from the item's current listing price, so revenue math always reads the
// line's own UnitPrice, never the Item's.
type InvoiceItem struct {
	ID        int `json:"id" csv:"id" validate:"required,min=1"`
	ItemID    int `json:"item_id" csv:"item_id" validate:"required,min=1"`
	InvoiceID int `json:"invoice_id" csv:"invoice_id" validate:"required,min=1"`

	// Quantity is the number of units sold on this line
	Quantity int `json:"quantity" csv:"quantity" validate:"min=0"`

	// UnitPrice is the exact decimal price per unit at time of sale
	UnitPrice decimal.Decimal `json:"unit_price" csv:"unit_price"`

	CreatedAt time.Time `json:"created_at" csv:"created_at"`
	UpdatedAt time.Time `json:"updated_at" csv:"updated_at"`
}

// LineTotal returns quantity x unit price as an exact decimal, with no
// intermediate rounding.
func (li InvoiceItem) LineTotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}
