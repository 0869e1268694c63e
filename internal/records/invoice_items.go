package records

import (
	"salesiq/pkg/contracts/domain"
)

// InvoiceItems is the ordered invoice line item collection with an id index
type InvoiceItems struct {
	all  []domain.InvoiceItem
	byID map[int]int
}

// NewInvoiceItems builds a line item collection from an ordered slice
func NewInvoiceItems(all []domain.InvoiceItem) *InvoiceItems {
	byID := make(map[int]int, len(all))
	for i, li := range all {
		byID[li.ID] = i
	}
	return &InvoiceItems{all: all, byID: byID}
}

// All returns the full ordered line item sequence
func (c *InvoiceItems) All() []domain.InvoiceItem {
	return c.all
}

// Len returns the number of line items
func (c *InvoiceItems) Len() int {
	return len(c.all)
}

// FindByID returns the line item with the given id, ok=false on a miss
func (c *InvoiceItems) FindByID(id int) (domain.InvoiceItem, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.InvoiceItem{}, false
	}
	return c.all[i], true
}

// FindAllByInvoiceID returns the invoice's line items in source order
func (c *InvoiceItems) FindAllByInvoiceID(invoiceID int) []domain.InvoiceItem {
	out := []domain.InvoiceItem{}
	for _, li := range c.all {
		if li.InvoiceID == invoiceID {
			out = append(out, li)
		}
	}
	return out
}

// FindAllByItemID returns every line that sold the given item, in source order
func (c *InvoiceItems) FindAllByItemID(itemID int) []domain.InvoiceItem {
	out := []domain.InvoiceItem{}
	for _, li := range c.all {
		if li.ItemID == itemID {
			out = append(out, li)
		}
	}
	return out
}
