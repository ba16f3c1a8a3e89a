package service

import (
	"context"
	"fmt"
	"log"

	"github.com/arjunmenon/restobill/internal/config"
	"github.com/arjunmenon/restobill/internal/domain/entity"
	"github.com/arjunmenon/restobill/internal/domain/repository"
	"github.com/arjunmenon/restobill/pkg/apperror"
	"github.com/arjunmenon/restobill/pkg/printer"
	qrcode "github.com/skip2/go-qrcode"
)

// ReceiptService rebuilds bills from saved orders and renders them for
// reprint or export. Reconstruction reads only stored snapshots — the menu
// is joined for display names, never for prices — so the figures are always
// exactly what was charged at save time.
type ReceiptService struct {
	orderRepo   repository.OrderRepository
	printer     printer.Printer
	printerType string
	store       config.StoreConfig
}

// NewReceiptService creates a new receipt service.
func NewReceiptService(orderRepo repository.OrderRepository, p printer.Printer, printerType string, store config.StoreConfig) *ReceiptService {
	return &ReceiptService{
		orderRepo:   orderRepo,
		printer:     p,
		printerType: printerType,
		store:       store,
	}
}

// Reconstruct rebuilds the bill for a saved order. Idempotent and
// side-effect-free; line totals are recomputed from the stored
// price-at-sale, so later menu edits cannot change the result.
func (s *ReceiptService) Reconstruct(ctx context.Context, orderID uint) (*entity.Receipt, error) {
	order, err := s.orderRepo.GetWithItems(ctx, orderID)
	if err != nil {
		return nil, apperror.NewPersistenceError("fetch order", err)
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: s.store.Name,
			Address:   s.store.Address,
			Phone:     s.store.Phone,
			GSTIN:     s.store.GSTIN,
		},
		ReferenceNo:   order.ReferenceNo,
		OrderType:     order.OrderType.String(),
		PaymentMethod: order.PaymentMethod.String(),
		Date:          order.OrderDate.Format("2006-01-02 15:04:05"),
		Customer:      order.CustomerName,
		Mobile:        order.CustomerMobile,
		SubTotal:      float64(order.SubTotal) / 100,
		Tax:           float64(order.Tax) / 100,
		ServiceCharge: float64(order.ServiceCharge) / 100,
		Discount:      float64(order.Discount) / 100,
		Total:         float64(order.Total) / 100,
	}

	for _, item := range order.Items {
		name := item.MenuItem.Name
		if name == "" {
			name = fmt.Sprintf("Item #%d", item.MenuItemID)
		}
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:      name,
			Quantity:  item.Quantity,
			UnitPrice: float64(item.UnitPrice) / 100,
			Total:     float64(item.UnitPrice*int64(item.Quantity)) / 100,
		})
	}

	return receipt, nil
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetPrinterStatus returns printer connection status.
func (s *ReceiptService) GetPrinterStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// Print reconstructs the bill and sends it to the thermal printer.
// Returns the receipt so the handler can show it even when no printer is
// attached.
func (s *ReceiptService) Print(ctx context.Context, orderID uint) (*entity.Receipt, error) {
	receipt, err := s.Reconstruct(ctx, orderID)
	if err != nil {
		return nil, err
	}

	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (order %d): %v", orderID, err)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	return receipt, nil
}

// QRCode renders the order's reference number as a PNG QR code for the
// bottom of the printed bill.
func (s *ReceiptService) QRCode(ctx context.Context, orderID uint) ([]byte, error) {
	receipt, err := s.Reconstruct(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(receipt.ReferenceNo, qrcode.Medium, 256)
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(32) // 58mm paper = 32 chars

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}
	if r.Header.GSTIN != "" {
		doc.TextF("GSTIN: %s", r.Header.GSTIN)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	// Bill info
	doc.KeyValue("Bill Ref:", r.ReferenceNo).
		KeyValue("Date:", r.Date).
		KeyValue("Order Type:", r.OrderType).
		KeyValue("Customer:", r.Customer)

	if r.Mobile != "" {
		doc.KeyValue("Mobile:", r.Mobile)
	}
	if r.PaymentMethod != "" {
		doc.KeyValue("Payment:", r.PaymentMethod)
	}

	doc.Separator('-')

	// Items
	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, fmt.Sprintf("%.2f", item.Total))
		if item.Quantity > 1 {
			doc.TextF("  @ %.2f each", item.UnitPrice)
		}
	}

	doc.Separator('-')

	// Totals
	doc.KeyValue("Subtotal:", fmt.Sprintf("%.2f", r.SubTotal))
	if r.ServiceCharge > 0 {
		doc.KeyValue("Service Charge:", fmt.Sprintf("%.2f", r.ServiceCharge))
	}
	if r.Tax > 0 {
		doc.KeyValue("Tax/GST:", fmt.Sprintf("%.2f", r.Tax))
	}
	if r.Discount > 0 {
		doc.KeyValue("Discount:", fmt.Sprintf("-%.2f", r.Discount))
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", fmt.Sprintf("%.2f", r.Total)).
		SetBold(false)

	doc.Separator('-')

	// Footer
	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you, visit again!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
