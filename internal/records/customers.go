package records

import (
	"salesiq/pkg/contracts/domain"
)

// Customers is the ordered customer collection with an id index
type Customers struct {
	all  []domain.Customer
	byID map[int]int
}

// NewCustomers builds a customer collection from an ordered slice
func NewCustomers(all []domain.Customer) *Customers {
	byID := make(map[int]int, len(all))
	for i, cu := range all {
		byID[cu.ID] = i
	}
	return &Customers{all: all, byID: byID}
}

// All returns the full ordered customer sequence
func (c *Customers) All() []domain.Customer {
	return c.all
}

// Len returns the number of customers
func (c *Customers) Len() int {
	return len(c.all)
}

// FindByID returns the customer with the given id, ok=false on a miss
func (c *Customers) FindByID(id int) (domain.Customer, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Customer{}, false
	}
	return c.all[i], true
}
