package catalog

import (
	"errors"
	"testing"

	"shutterbook/models"
)

var testAddons = []models.Addon{
	{ID: 1, Name: "Premium Photo Album", UnitPrice: 1500},
	{ID: 2, Name: "Drone Coverage", UnitPrice: 2000},
	{ID: 3, Name: "Extra Edited Photos", UnitPrice: 800},
}

func TestGet(t *testing.T) {
	c := NewAddonCatalog(testAddons)

	addon, err := c.Get(2)
	if err != nil {
		t.Fatalf("Get(2): unexpected error: %v", err)
	}
	if addon.Name != "Drone Coverage" || addon.UnitPrice != 2000 {
		t.Errorf("Get(2) = %+v, want Drone Coverage at 2000", addon)
	}

	_, err = c.Get(99)
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Get(99): expected NotFoundError, got %v", err)
	}
	if notFound.AddonID != 99 {
		t.Errorf("NotFoundError.AddonID = %d, want 99", notFound.AddonID)
	}
}

func TestSubtotal(t *testing.T) {
	c := NewAddonCatalog(testAddons)

	tests := []struct {
		name      string
		selection models.AddonSelection
		want      models.Money
		wantErr   error
	}{
		{name: "empty selection", selection: models.AddonSelection{}, want: 0},
		{name: "nil selection", selection: nil, want: 0},
		{name: "single addon", selection: models.AddonSelection{2: 1}, want: 2000},
		{name: "quantities multiply", selection: models.AddonSelection{3: 4}, want: 3200},
		{name: "multiple addons sum", selection: models.AddonSelection{1: 1, 2: 2}, want: 5500},
		{name: "explicit zero contributes nothing", selection: models.AddonSelection{1: 1, 2: 0}, want: 1500},
		{name: "max quantity allowed", selection: models.AddonSelection{3: 10}, want: 8000},
		{name: "quantity above max rejected", selection: models.AddonSelection{3: 11}, wantErr: &InvalidQuantityError{}},
		{name: "negative quantity rejected", selection: models.AddonSelection{3: -1}, wantErr: &InvalidQuantityError{}},
		{name: "unknown id rejected", selection: models.AddonSelection{42: 1}, wantErr: &NotFoundError{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Subtotal(tt.selection)
			switch tt.wantErr.(type) {
			case *InvalidQuantityError:
				var e *InvalidQuantityError
				if !errors.As(err, &e) {
					t.Fatalf("Subtotal: expected InvalidQuantityError, got %v", err)
				}
				return
			case *NotFoundError:
				var e *NotFoundError
				if !errors.As(err, &e) {
					t.Fatalf("Subtotal: expected NotFoundError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Subtotal: unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Subtotal = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestValidateQuantityBounds(t *testing.T) {
	c := NewAddonCatalog(testAddons)

	if err := c.ValidateQuantity(1, 0); err != nil {
		t.Errorf("quantity 0 should be valid (means deselect): %v", err)
	}
	if err := c.ValidateQuantity(1, 10); err != nil {
		t.Errorf("quantity 10 should be valid: %v", err)
	}
	if err := c.ValidateQuantity(1, 11); err == nil {
		t.Error("quantity 11 should be rejected")
	}
}

func TestLines(t *testing.T) {
	c := NewAddonCatalog(testAddons)

	lines, err := c.Lines(models.AddonSelection{3: 2, 1: 1})
	if err != nil {
		t.Fatalf("Lines: unexpected error: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("Lines returned %d rows, want 2", len(lines))
	}
	// Catalog order, not map order.
	if lines[0].AddonID != 1 || lines[1].AddonID != 3 {
		t.Errorf("Lines order = [%d %d], want [1 3]", lines[0].AddonID, lines[1].AddonID)
	}
	if lines[1].LineTotal != 1600 {
		t.Errorf("LineTotal for addon 3 x2 = %d, want 1600", lines[1].LineTotal)
	}
}
