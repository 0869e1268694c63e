package records

import (
	"salesiq/pkg/contracts/domain"
)

// Merchants is the ordered merchant collection with an id index
type Merchants struct {
	all  []domain.Merchant
	byID map[int]int
}

// NewMerchants builds a merchant collection from an ordered slice.
// Collection order is preserved; analytics that emit one value per
// merchant follow this order.
func NewMerchants(all []domain.Merchant) *Merchants {
	byID := make(map[int]int, len(all))
	for i, m := range all {
		byID[m.ID] = i
	}
	return &Merchants{all: all, byID: byID}
}

// All returns the full ordered merchant sequence
func (c *Merchants) All() []domain.Merchant {
	return c.all
}

// Len returns the number of merchants
func (c *Merchants) Len() int {
	return len(c.all)
}

// FindByID returns the merchant with the given id, ok=false on a miss
func (c *Merchants) FindByID(id int) (domain.Merchant, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Merchant{}, false
	}
	return c.all[i], true
}
