package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/arjunmenon/restobill/internal/domain/entity"
	"github.com/arjunmenon/restobill/internal/domain/enum"
	"github.com/arjunmenon/restobill/internal/domain/repository"
	"github.com/arjunmenon/restobill/pkg/apperror"
	"github.com/arjunmenon/restobill/pkg/pagination"
)

// OrderService turns a priced cart into a persisted, immutable order.
type OrderService struct {
	orderRepo repository.OrderRepository
	calc      *Calculator
	refPrefix string
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository, calc *Calculator, refPrefix string) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		calc:      calc,
		refPrefix: refPrefix,
	}
}

// CheckoutInput represents the confirm-order input
type CheckoutInput struct {
	Lines          []entity.CartLine
	OrderType      enum.OrderType
	PaymentMethod  enum.PaymentMethod
	CustomerName   string
	CustomerMobile string
	DiscountPct    float64
	ServicePct     float64
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Checkout validates the input, prices the cart and saves the order with its
// line items as one atomic unit. The caller's cart is never touched here:
// on failure the operator can retry, on success the HTTP layer clears it.
func (s *OrderService) Checkout(ctx context.Context, input *CheckoutInput) (*entity.Order, error) {
	if len(input.Lines) == 0 {
		return nil, apperror.NewFieldValidationError("cart", "cart is empty")
	}

	name := strings.TrimSpace(input.CustomerName)
	if name == "" {
		return nil, apperror.NewFieldValidationError("customer_name", "customer name is required")
	}

	mobile := strings.TrimSpace(input.CustomerMobile)
	if mobile != "" && !isDigits(mobile) {
		return nil, apperror.NewFieldValidationError("customer_mobile", "mobile number must contain digits only")
	}

	totals, err := s.calc.Compute(input.Lines, input.DiscountPct, input.ServicePct)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		OrderType:      input.OrderType,
		PaymentMethod:  input.PaymentMethod,
		CustomerName:   name,
		CustomerMobile: mobile,
		SubTotal:       totals.SubTotal,
		Tax:            totals.Tax,
		Discount:       totals.Discount,
		ServiceCharge:  totals.ServiceCharge,
		Total:          totals.Total,
		OrderDate:      time.Now(),
	}

	items := make([]entity.OrderItem, 0, len(input.Lines))
	for _, l := range input.Lines {
		items = append(items, entity.OrderItem{
			MenuItemID: l.MenuItemID,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
			GSTRate:    l.GSTRate,
			Total:      l.Subtotal(),
		})
	}

	if err := s.orderRepo.CreateWithItems(ctx, order, items, s.reference); err != nil {
		if apperror.IsAppError(err) {
			return nil, err
		}
		return nil, apperror.NewPersistenceError("save order", err)
	}

	return order, nil
}

// reference derives the human-facing reference number from the creation time
// and the assigned row id. Ids are unique and monotonically assigned, so the
// result is unique without a separate sequence.
func (s *OrderService) reference(orderID uint, createdAt time.Time) string {
	return fmt.Sprintf("%s%s%05d", s.refPrefix, createdAt.Format("20060102150405"), orderID)
}

// GetOrder retrieves an order with its line items
func (s *OrderService) GetOrder(ctx context.Context, id uint) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, apperror.NewPersistenceError("fetch order", err)
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// GetOrderByReference retrieves an order by its reference number
func (s *OrderService) GetOrderByReference(ctx context.Context, referenceNo string) (*entity.Order, error) {
	order, err := s.orderRepo.GetByReferenceNo(ctx, referenceNo)
	if err != nil {
		return nil, apperror.NewPersistenceError("fetch order", err)
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists saved orders with filtering and pagination
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, apperror.NewPersistenceError("list orders", err)
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}
