package records

import (
	"salesiq/pkg/contracts/domain"
)

// Transactions is the ordered transaction collection with an id index
type Transactions struct {
	all  []domain.Transaction
	byID map[int]int
}

// NewTransactions builds a transaction collection from an ordered slice
func NewTransactions(all []domain.Transaction) *Transactions {
	byID := make(map[int]int, len(all))
	for i, tx := range all {
		byID[tx.ID] = i
	}
	return &Transactions{all: all, byID: byID}
}

// All returns the full ordered transaction sequence
func (c *Transactions) All() []domain.Transaction {
	return c.all
}

// Len returns the number of transactions
func (c *Transactions) Len() int {
	return len(c.all)
}

// FindByID returns the transaction with the given id, ok=false on a miss
func (c *Transactions) FindByID(id int) (domain.Transaction, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Transaction{}, false
	}
	return c.all[i], true
}

// FindAllByInvoiceID returns the invoice's payment attempts in source order
func (c *Transactions) FindAllByInvoiceID(invoiceID int) []domain.Transaction {
	out := []domain.Transaction{}
	for _, tx := range c.all {
		if tx.InvoiceID == invoiceID {
			out = append(out, tx)
		}
	}
	return out
}

// FindAllByCreditCardNumber returns transactions charged to the given card
func (c *Transactions) FindAllByCreditCardNumber(number string) []domain.Transaction {
	out := []domain.Transaction{}
	for _, tx := range c.all {
		if tx.CreditCardNumber == number {
			out = append(out, tx)
		}
	}
	return out
}

// FindAllByResult returns transactions with the given outcome in source order
func (c *Transactions) FindAllByResult(result domain.TransactionResult) []domain.Transaction {
	out := []domain.Transaction{}
	for _, tx := range c.all {
		if tx.Result == result {
			out = append(out, tx)
		}
	}
	return out
}
