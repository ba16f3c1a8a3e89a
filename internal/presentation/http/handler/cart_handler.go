package handler

import (
	"github.com/arjunmenon/restobill/internal/application/service"
	"github.com/arjunmenon/restobill/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// CartHandler handles billing-session cart HTTP requests
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// View handles returning the cart with freshly computed totals.
// discount_pct and service_pct apply under the per-line GST policy; the
// flat policy uses its configured rates regardless.
func (h *CartHandler) View(c *gin.Context) {
	discountPct := queryFloat(c, "discount_pct", 0)
	servicePct := queryFloat(c, "service_pct", 0)

	view, err := h.cartService.View(discountPct, servicePct)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart retrieved successfully", view)
}

// AddItem handles adding a menu item to the cart
func (h *CartHandler) AddItem(c *gin.Context) {
	var req struct {
		MenuItemID uint `json:"menu_item_id" binding:"required"`
		Quantity   int  `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if err := h.cartService.AddItem(c.Request.Context(), req.MenuItemID, req.Quantity); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added to cart", nil)
}

// SetQuantity handles changing a cart line's quantity
func (h *CartHandler) SetQuantity(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	var req struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.cartService.SetQuantity(id, *req.Quantity); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart updated", nil)
}

// RemoveItem handles removing a cart line
func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	if err := h.cartService.RemoveItem(id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item removed from cart", nil)
}

// Clear handles emptying the cart
func (h *CartHandler) Clear(c *gin.Context) {
	h.cartService.Clear()
	response.OK(c, "Cart cleared", nil)
}
