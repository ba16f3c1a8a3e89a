package handler

import (
	"strconv"
	"time"

	"github.com/arjunmenon/restobill/internal/application/service"
	"github.com/arjunmenon/restobill/internal/domain/enum"
	"github.com/arjunmenon/restobill/internal/domain/repository"
	"github.com/arjunmenon/restobill/internal/presentation/http/dto/response"
	"github.com/arjunmenon/restobill/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// OrderHandler handles order HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	cartService  *service.CartService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, cartService *service.CartService) *OrderHandler {
	return &OrderHandler{orderService: orderService, cartService: cartService}
}

// Checkout handles confirming the current cart as a saved order. The cart is
// cleared only after the save succeeds, so a failed save loses nothing.
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req struct {
		OrderType      string  `json:"order_type"`
		PaymentMethod  int     `json:"payment_method"`
		CustomerName   string  `json:"customer_name"`
		CustomerMobile string  `json:"customer_mobile"`
		DiscountPct    float64 `json:"discount_pct"`
		ServicePct     float64 `json:"service_pct"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.Checkout(c.Request.Context(), &service.CheckoutInput{
		Lines:          h.cartService.Lines(),
		OrderType:      enum.ParseOrderType(req.OrderType),
		PaymentMethod:  enum.PaymentMethod(req.PaymentMethod),
		CustomerName:   req.CustomerName,
		CustomerMobile: req.CustomerMobile,
		DiscountPct:    req.DiscountPct,
		ServicePct:     req.ServicePct,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	h.cartService.Clear()

	response.Created(c, "Order saved successfully", order)
}

// Get handles getting a single order with its line items
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// GetByReference handles looking up an order by reference number
func (h *OrderHandler) GetByReference(c *gin.Context) {
	ref := c.Param("ref")
	if ref == "" {
		response.BadRequest(c, "Invalid reference number")
		return
	}

	order, err := h.orderService.GetOrderByReference(c.Request.Context(), ref)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// List handles listing saved orders
func (h *OrderHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.OrderFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	if startDateStr := c.Query("start_date"); startDateStr != "" {
		if startDate, err := time.Parse("2006-01-02", startDateStr); err == nil {
			params.StartDate = &startDate
		}
	}

	if endDateStr := c.Query("end_date"); endDateStr != "" {
		if endDate, err := time.Parse("2006-01-02", endDateStr); err == nil {
			params.EndDate = &endDate
		}
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}
