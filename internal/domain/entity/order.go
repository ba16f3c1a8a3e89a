package entity

import (
	"encoding/json"
	"time"

	"github.com/arjunmenon/restobill/internal/domain/enum"
)

// Order represents a saved, immutable bill. Monetary fields are written once
// at checkout and never updated; only ReferenceNo is back-filled immediately
// after the row id is assigned.
type Order struct {
	ID             uint               `gorm:"primaryKey" json:"id"`
	ReferenceNo    string             `gorm:"size:100;unique;not null" json:"reference_no"`
	OrderType      enum.OrderType     `gorm:"default:0" json:"order_type"`
	PaymentMethod  enum.PaymentMethod `gorm:"default:0" json:"payment_method"`
	CustomerName   string             `gorm:"size:255;not null" json:"customer_name"`
	CustomerMobile string             `gorm:"size:20" json:"customer_mobile,omitempty"`
	SubTotal       int64              `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Tax            int64              `gorm:"not null" json:"-"`
	Discount       int64              `gorm:"not null" json:"-"`
	ServiceCharge  int64              `gorm:"not null" json:"-"`
	Total          int64              `gorm:"not null" json:"-"`
	OrderDate      time.Time          `gorm:"not null;index" json:"order_date"`
	CreatedAt      time.Time          `json:"created_at"`

	// Relationships
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		SubTotal      float64 `json:"sub_total"`
		Tax           float64 `json:"tax"`
		Discount      float64 `json:"discount"`
		ServiceCharge float64 `json:"service_charge"`
		Total         float64 `json:"total"`
	}{
		Alias:         Alias(o),
		SubTotal:      float64(o.SubTotal) / 100,
		Tax:           float64(o.Tax) / 100,
		Discount:      float64(o.Discount) / 100,
		ServiceCharge: float64(o.ServiceCharge) / 100,
		Total:         float64(o.Total) / 100,
	})
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem is one line of a saved order. It references the menu item by id
// but carries its own price and GST snapshot, so later menu edits never
// change a historical bill.
type OrderItem struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	OrderID    uint    `gorm:"not null;index" json:"order_id"`
	MenuItemID uint    `gorm:"not null;index" json:"menu_item_id"`
	Quantity   int     `gorm:"not null" json:"quantity"`
	UnitPrice  int64   `gorm:"not null" json:"-"` // price at sale, in cents
	GSTRate    float64 `gorm:"not null" json:"gst_rate"`
	Total      int64   `gorm:"not null" json:"-"` // line subtotal, in cents

	// Relationships
	MenuItem MenuItem `gorm:"foreignKey:MenuItemID" json:"menu_item,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (i OrderItem) MarshalJSON() ([]byte, error) {
	type Alias OrderItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		Total     float64 `json:"total"`
	}{
		Alias:     Alias(i),
		UnitPrice: float64(i.UnitPrice) / 100,
		Total:     float64(i.Total) / 100,
	})
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

// BillTotals holds the monetary breakdown of a cart or saved order.
// All values are in cents; Total = SubTotal + Tax + ServiceCharge - Discount.
type BillTotals struct {
	SubTotal      int64 `json:"-"`
	Tax           int64 `json:"-"`
	Discount      int64 `json:"-"`
	ServiceCharge int64 `json:"-"`
	Total         int64 `json:"-"`
}

// MarshalJSON converts cents to two-decimal currency values.
func (t BillTotals) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		SubTotal      float64 `json:"sub_total"`
		Tax           float64 `json:"tax"`
		Discount      float64 `json:"discount"`
		ServiceCharge float64 `json:"service_charge"`
		Total         float64 `json:"total"`
	}{
		SubTotal:      float64(t.SubTotal) / 100,
		Tax:           float64(t.Tax) / 100,
		Discount:      float64(t.Discount) / 100,
		ServiceCharge: float64(t.ServiceCharge) / 100,
		Total:         float64(t.Total) / 100,
	})
}
