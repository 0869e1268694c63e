package domain

// Merchant represents a seller on the platform. Merchants own Items and
// receive Invoices; all per-merchant analytics key off Merchant.ID.
type Merchant struct {
	// ID is the unique merchant identifier from the source dataset
	ID int `json:"id" csv:"id" validate:"required,min=1"`

	// Name is the merchant's display name
	Name string `json:"name" csv:"name" validate:"required"`
}
