package handler

import (
	"github.com/arjunmenon/restobill/internal/application/service"
	"github.com/arjunmenon/restobill/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ReceiptHandler handles bill reconstruction, reprint and export requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// Get handles reconstructing a bill as JSON
func (h *ReceiptHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	receipt, err := h.receiptService.Reconstruct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt reconstructed successfully", receipt)
}

// GetText handles rendering a bill as plain text
func (h *ReceiptHandler) GetText(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	receipt, err := h.receiptService.Reconstruct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.String(200, service.RenderText(receipt))
}

// GetCSV handles exporting a bill as CSV
func (h *ReceiptHandler) GetCSV(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	receipt, err := h.receiptService.Reconstruct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	data, err := service.RenderCSV(receipt)
	if err != nil {
		response.InternalServerError(c, "Failed to render CSV")
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+receipt.ReferenceNo+".csv")
	c.Data(200, "text/csv", data)
}

// GetQR handles rendering the reference number as a QR code PNG
func (h *ReceiptHandler) GetQR(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	png, err := h.receiptService.QRCode(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(200, "image/png", png)
}

// Print handles sending a bill to the thermal printer
func (h *ReceiptHandler) Print(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	receipt, err := h.receiptService.Print(c.Request.Context(), id)
	if err != nil {
		if receipt != nil {
			// Printer failure only; the bill itself is fine
			response.OK(c, "Printer unavailable, returning receipt data", receipt)
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt printed successfully", receipt)
}

// PrinterStatus handles reporting printer connectivity
func (h *ReceiptHandler) PrinterStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved", h.receiptService.GetPrinterStatus())
}
