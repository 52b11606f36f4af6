// Package catalog exposes the fixed addon catalog and computes selection
// subtotals.
package catalog

import (
	"fmt"

	"shutterbook/models"
)

// Addon quantities are bounded; zero means "not selected".
const (
	MinQuantity = 0
	MaxQuantity = 10
)

// NotFoundError reports an addon id absent from the catalog.
type NotFoundError struct {
	AddonID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("addon %d not found in catalog", e.AddonID)
}

// InvalidQuantityError reports a quantity outside [MinQuantity, MaxQuantity].
type InvalidQuantityError struct {
	AddonID  int
	Quantity int
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("quantity %d for addon %d is outside [%d,%d]", e.Quantity, e.AddonID, MinQuantity, MaxQuantity)
}

// AddonCatalog is the fixed addon table, keyed by id.
type AddonCatalog struct {
	byID  map[int]models.Addon
	order []models.Addon
}

// NewAddonCatalog builds a catalog over the given fixed addon list.
func NewAddonCatalog(addons []models.Addon) *AddonCatalog {
	c := &AddonCatalog{
		byID:  make(map[int]models.Addon, len(addons)),
		order: append([]models.Addon(nil), addons...),
	}
	for _, a := range addons {
		c.byID[a.ID] = a
	}
	return c
}

// List returns the catalog in its fixed order.
func (c *AddonCatalog) List() []models.Addon {
	return append([]models.Addon(nil), c.order...)
}

// Get returns the addon for id, or NotFoundError.
func (c *AddonCatalog) Get(id int) (models.Addon, error) {
	a, ok := c.byID[id]
	if !ok {
		return models.Addon{}, &NotFoundError{AddonID: id}
	}
	return a, nil
}

// ValidateQuantity rejects quantities outside the allowed range and unknown
// addon ids, before anything is stored on a draft.
func (c *AddonCatalog) ValidateQuantity(id, quantity int) error {
	if _, ok := c.byID[id]; !ok {
		return &NotFoundError{AddonID: id}
	}
	if quantity < MinQuantity || quantity > MaxQuantity {
		return &InvalidQuantityError{AddonID: id, Quantity: quantity}
	}
	return nil
}

// Subtotal computes the sum of unitPrice*quantity over entries with quantity > 0.
// Any out-of-range quantity or unknown id fails the whole computation.
func (c *AddonCatalog) Subtotal(selection models.AddonSelection) (models.Money, error) {
	var total models.Money
	for id, qty := range selection {
		if err := c.ValidateQuantity(id, qty); err != nil {
			return 0, err
		}
		if qty == 0 {
			continue
		}
		total += c.byID[id].UnitPrice * models.Money(qty)
	}
	return total, nil
}

// Lines prices a selection into per-addon line items, in catalog order.
func (c *AddonCatalog) Lines(selection models.AddonSelection) ([]models.AddonLine, error) {
	var lines []models.AddonLine
	for _, a := range c.order {
		qty, ok := selection[a.ID]
		if !ok || qty == 0 {
			continue
		}
		if err := c.ValidateQuantity(a.ID, qty); err != nil {
			return nil, err
		}
		lines = append(lines, models.AddonLine{
			AddonID:   a.ID,
			Name:      a.Name,
			Quantity:  qty,
			UnitPrice: a.UnitPrice,
			LineTotal: a.UnitPrice * models.Money(qty),
		})
	}
	return lines, nil
}
