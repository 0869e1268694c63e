package records

import (
	"salesiq/pkg/contracts/domain"
)

// Invoices is the ordered invoice collection with an id index
type Invoices struct {
	all  []domain.Invoice
	byID map[int]int
}

// NewInvoices builds an invoice collection from an ordered slice
func NewInvoices(all []domain.Invoice) *Invoices {
	byID := make(map[int]int, len(all))
	for i, inv := range all {
		byID[inv.ID] = i
	}
	return &Invoices{all: all, byID: byID}
}

// All returns the full ordered invoice sequence
func (c *Invoices) All() []domain.Invoice {
	return c.all
}

// Len returns the number of invoices
func (c *Invoices) Len() int {
	return len(c.all)
}

// FindByID returns the invoice with the given id, ok=false on a miss
func (c *Invoices) FindByID(id int) (domain.Invoice, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Invoice{}, false
	}
	return c.all[i], true
}

// FindAllByCustomerID returns the customer's invoices in source order
func (c *Invoices) FindAllByCustomerID(customerID int) []domain.Invoice {
	out := []domain.Invoice{}
	for _, inv := range c.all {
		if inv.CustomerID == customerID {
			out = append(out, inv)
		}
	}
	return out
}

// FindAllByMerchantID returns the merchant's invoices in source order
func (c *Invoices) FindAllByMerchantID(merchantID int) []domain.Invoice {
	out := []domain.Invoice{}
	for _, inv := range c.all {
		if inv.MerchantID == merchantID {
			out = append(out, inv)
		}
	}
	return out
}

// FindAllByStatus returns invoices with the given status in source order
func (c *Invoices) FindAllByStatus(status domain.InvoiceStatus) []domain.Invoice {
	out := []domain.Invoice{}
	for _, inv := range c.all {
		if inv.Status == status {
			out = append(out, inv)
		}
	}
	return out
}
