package domain

import (
	"time"
)

// TransactionResult represents the outcome of a payment attempt
type TransactionResult string

const (
	ResultSuccess TransactionResult = "success"
	ResultFailed  TransactionResult = "failed"
)

// IsValid reports whether the result is one of the known enum values
func (r TransactionResult) IsValid() bool {
	return r == ResultSuccess || r == ResultFailed
}

// Transaction represents one payment attempt against an invoice. An
// invoice may have zero transactions (unpaid) or several (retried
// attempts); one success anywhere in the group means paid in full.
type Transaction struct {
	ID        int `json:"id" csv:"id" validate:"required,min=1"`
	InvoiceID int `json:"invoice_id" csv:"invoice_id" validate:"required,min=1"`

	CreditCardNumber         string `json:"credit_card_number" csv:"credit_card_number"`
	CreditCardExpirationDate string `json:"credit_card_expiration_date" csv:"credit_card_expiration_date"`

	Result TransactionResult `json:"result" csv:"result" validate:"required,oneof=success failed"`

	CreatedAt time.Time `json:"created_at" csv:"created_at"`
	UpdatedAt time.Time `json:"updated_at" csv:"updated_at"`
}

// Succeeded reports whether this payment attempt went through
func (t Transaction) Succeeded() bool {
	return t.Result == ResultSuccess
}
