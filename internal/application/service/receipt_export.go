package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/arjunmenon/restobill/internal/domain/entity"
)

// RenderText renders the bill as plain text, the shape shown on the billing
// preview and written to text exports.
func RenderText(r *entity.Receipt) string {
	var b strings.Builder
	rule := strings.Repeat("-", 48)

	fmt.Fprintf(&b, "%s\n", r.Header.StoreName)
	fmt.Fprintf(&b, "Bill Ref: %s\n", r.ReferenceNo)
	fmt.Fprintf(&b, "Order Type: %s\n", r.OrderType)
	fmt.Fprintf(&b, "Customer: %s\n", r.Customer)
	if r.Mobile != "" {
		fmt.Fprintf(&b, "Mobile: %s\n", r.Mobile)
	}
	fmt.Fprintf(&b, "Date: %s\n", r.Date)
	b.WriteString(rule + "\n")

	for _, item := range r.Items {
		fmt.Fprintf(&b, "%-20s x %-3d = %8.2f\n", item.Name, item.Quantity, item.Total)
	}

	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "%-21s: %10.2f\n", "Subtotal", r.SubTotal)
	fmt.Fprintf(&b, "%-21s: %10.2f\n", "Service Charge", r.ServiceCharge)
	fmt.Fprintf(&b, "%-21s: %10.2f\n", "Tax/GST", r.Tax)
	fmt.Fprintf(&b, "%-21s: %10.2f\n", "Discount", -r.Discount)
	fmt.Fprintf(&b, "%-21s: %10.2f\n", "TOTAL", r.Total)

	return b.String()
}

// RenderCSV renders the bill's line items and totals as CSV for export.
func RenderCSV(r *entity.Receipt) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		{"reference_no", "date", "order_type", "payment_method", "customer", "mobile"},
		{r.ReferenceNo, r.Date, r.OrderType, r.PaymentMethod, r.Customer, r.Mobile},
		{},
		{"item", "quantity", "unit_price", "total"},
	}

	for _, item := range r.Items {
		records = append(records, []string{
			item.Name,
			fmt.Sprintf("%d", item.Quantity),
			fmt.Sprintf("%.2f", item.UnitPrice),
			fmt.Sprintf("%.2f", item.Total),
		})
	}

	records = append(records,
		[]string{},
		[]string{"subtotal", fmt.Sprintf("%.2f", r.SubTotal)},
		[]string{"service_charge", fmt.Sprintf("%.2f", r.ServiceCharge)},
		[]string{"tax", fmt.Sprintf("%.2f", r.Tax)},
		[]string{"discount", fmt.Sprintf("%.2f", r.Discount)},
		[]string{"total", fmt.Sprintf("%.2f", r.Total)},
	)

	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
