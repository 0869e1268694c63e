package records

import (
	"strings"

	"github.com/shopspring/decimal"

	"salesiq/pkg/contracts/domain"
)

// Items is the ordered item collection with an id index
type Items struct {
	all  []domain.Item
	byID map[int]int
}

// NewItems builds an item collection from an ordered slice
func NewItems(all []domain.Item) *Items {
	byID := make(map[int]int, len(all))
	for i, it := range all {
		byID[it.ID] = i
	}
	return &Items{all: all, byID: byID}
}

// All returns the full ordered item sequence
func (c *Items) All() []domain.Item {
	return c.all
}

// Len returns the number of items
func (c *Items) Len() int {
	return len(c.all)
}

// FindByID returns the item with the given id, ok=false on a miss
func (c *Items) FindByID(id int) (domain.Item, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Item{}, false
	}
	return c.all[i], true
}

// FindByName returns the first item with an exact name match
func (c *Items) FindByName(name string) (domain.Item, bool) {
	for _, it := range c.all {
		if it.Name == name {
			return it, true
		}
	}
	return domain.Item{}, false
}

// FindAllWithDescription returns items whose description contains the
// given fragment, case-insensitively
func (c *Items) FindAllWithDescription(fragment string) []domain.Item {
	needle := strings.ToLower(fragment)
	out := []domain.Item{}
	for _, it := range c.all {
		if strings.Contains(strings.ToLower(it.Description), needle) {
			out = append(out, it)
		}
	}
	return out
}

// FindAllByPrice returns items priced exactly at the given decimal price
func (c *Items) FindAllByPrice(price decimal.Decimal) []domain.Item {
	out := []domain.Item{}
	for _, it := range c.all {
		if it.UnitPrice.Equal(price) {
			out = append(out, it)
		}
	}
	return out
}

// FindAllByPriceInRange returns items priced within [min, max] inclusive
func (c *Items) FindAllByPriceInRange(min, max decimal.Decimal) []domain.Item {
	out := []domain.Item{}
	for _, it := range c.all {
		if it.UnitPrice.GreaterThanOrEqual(min) && it.UnitPrice.LessThanOrEqual(max) {
			out = append(out, it)
		}
	}
	return out
}

// FindAllByMerchantID returns the merchant's items in source order.
// Strict typed-id equality, never substring matching.
func (c *Items) FindAllByMerchantID(merchantID int) []domain.Item {
	out := []domain.Item{}
	for _, it := range c.all {
		if it.MerchantID == merchantID {
			out = append(out, it)
		}
	}
	return out
}
