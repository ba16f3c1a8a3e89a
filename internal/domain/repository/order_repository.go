package repository

import (
	"context"
	"time"

	"github.com/arjunmenon/restobill/internal/domain/entity"
	"github.com/arjunmenon/restobill/pkg/pagination"
)

// ReferenceFunc derives the human-facing reference number for an order once
// its row id has been assigned.
type ReferenceFunc func(orderID uint, createdAt time.Time) string

// OrderRepository defines the interface for order data operations.
// Orders are immutable after creation; there is deliberately no Update or
// Delete.
type OrderRepository interface {
	// CreateWithItems inserts the order, its line items and the back-filled
	// reference number as a single atomic unit. On failure nothing is
	// persisted and order/items are left untouched for retry.
	CreateWithItems(ctx context.Context, order *entity.Order, items []entity.OrderItem, ref ReferenceFunc) error
	GetByID(ctx context.Context, id uint) (*entity.Order, error)
	GetWithItems(ctx context.Context, id uint) (*entity.Order, error)
	GetByReferenceNo(ctx context.Context, referenceNo string) (*entity.Order, error)
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
}

// OrderFilterParams contains filtering parameters for order queries
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string // matches reference number
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}
