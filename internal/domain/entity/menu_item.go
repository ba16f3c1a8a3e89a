package entity

import (
	"encoding/json"
	"math"
	"time"
)

// MenuItem represents one dish on the restaurant menu.
// Inactive items are hidden from new carts but stay resolvable so that
// historical order lines keep their display names.
type MenuItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Category  string    `gorm:"size:100;index" json:"category"`
	Price     int64     `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	GSTRate   float64   `gorm:"not null;default:0" json:"gst_rate"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (m MenuItem) MarshalJSON() ([]byte, error) {
	type Alias MenuItem
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(m),
		Price: float64(m.Price) / 100,
	})
}

// TableName returns the table name for the MenuItem model
func (MenuItem) TableName() string {
	return "menu_items"
}

// GetPriceDecimal returns the unit price as a decimal (for display)
func (m *MenuItem) GetPriceDecimal() float64 {
	return float64(m.Price) / 100
}

// SetPriceFromDecimal sets the unit price from a decimal value
func (m *MenuItem) SetPriceFromDecimal(price float64) {
	m.Price = int64(math.Round(price * 100))
}
