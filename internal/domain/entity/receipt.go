package entity

// ReceiptHeader holds the restaurant header printed at the top of a bill.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	GSTIN     string `json:"gstin,omitempty"`
}

// ReceiptItem represents a single line item on a bill.
type ReceiptItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// Receipt is a value object representing a printable bill.
// It is NOT a database entity — it is reconstructed from a saved order's
// stored price snapshots, so it reproduces exactly what was charged even if
// the menu has changed since.
type Receipt struct {
	Header        ReceiptHeader `json:"header"`
	ReferenceNo   string        `json:"reference_no"`
	OrderType     string        `json:"order_type"`
	PaymentMethod string        `json:"payment_method"`
	Date          string        `json:"date"`
	Customer      string        `json:"customer"`
	Mobile        string        `json:"mobile,omitempty"`
	Items         []ReceiptItem `json:"items"`
	SubTotal      float64       `json:"sub_total"`
	Tax           float64       `json:"tax"`
	ServiceCharge float64       `json:"service_charge"`
	Discount      float64       `json:"discount"`
	Total         float64       `json:"total"`
}
