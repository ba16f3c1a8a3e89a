package entity

import (
	"encoding/json"
	"fmt"

	"github.com/arjunmenon/restobill/pkg/apperror"
)

// CartLine is one entry in the billing cart. Name, price and GST rate are
// snapshotted from the menu at add time, so a catalog edit mid-session never
// changes a line that is already in the cart.
type CartLine struct {
	MenuItemID uint    `json:"menu_item_id"`
	Name       string  `json:"name"`
	UnitPrice  int64   `json:"-"` // cents
	GSTRate    float64 `json:"gst_rate"`
	Quantity   int     `json:"quantity"`
}

// Subtotal returns the line subtotal in cents.
func (l CartLine) Subtotal() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (l CartLine) MarshalJSON() ([]byte, error) {
	type Alias CartLine
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		Subtotal  float64 `json:"subtotal"`
	}{
		Alias:     Alias(l),
		UnitPrice: float64(l.UnitPrice) / 100,
		Subtotal:  float64(l.Subtotal()) / 100,
	})
}

// Cart is the mutable order being built during one billing session.
// Lines keep insertion order; adding an item already present merges into the
// existing line instead of appending a duplicate. The cart performs no I/O.
type Cart struct {
	lines []CartLine
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add puts qty units of item into the cart, merging with an existing line
// for the same menu item.
func (c *Cart) Add(item *MenuItem, qty int) error {
	if qty < 1 {
		return apperror.NewFieldValidationError("quantity", "quantity must be at least 1")
	}
	if !item.IsActive {
		return apperror.NewFieldValidationError("menu_item_id", fmt.Sprintf("%s is not available", item.Name))
	}

	for i := range c.lines {
		if c.lines[i].MenuItemID == item.ID {
			c.lines[i].Quantity += qty
			return nil
		}
	}

	c.lines = append(c.lines, CartLine{
		MenuItemID: item.ID,
		Name:       item.Name,
		UnitPrice:  item.Price,
		GSTRate:    item.GSTRate,
		Quantity:   qty,
	})
	return nil
}

// SetQuantity changes the quantity of the line for menuItemID.
// A quantity of 0 removes the line; negative quantities are rejected.
func (c *Cart) SetQuantity(menuItemID uint, qty int) error {
	if qty < 0 {
		return apperror.NewFieldValidationError("quantity", "quantity cannot be negative")
	}
	if qty == 0 {
		return c.Remove(menuItemID)
	}

	for i := range c.lines {
		if c.lines[i].MenuItemID == menuItemID {
			c.lines[i].Quantity = qty
			return nil
		}
	}
	return apperror.NewNotFoundError("Cart item")
}

// Remove deletes the line for menuItemID.
func (c *Cart) Remove(menuItemID uint) error {
	for i := range c.lines {
		if c.lines[i].MenuItemID == menuItemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFoundError("Cart item")
}

// Clear empties the cart. Safe to call on an already empty cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// TotalQuantity returns the number of units across all lines.
func (c *Cart) TotalQuantity() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}
