package repository

import (
	"context"

	"github.com/arjunmenon/restobill/internal/domain/entity"
)

// MenuRepository defines the interface for menu catalog data operations
type MenuRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	GetByID(ctx context.Context, id uint) (*entity.MenuItem, error)
	GetByIDs(ctx context.Context, ids []uint) ([]entity.MenuItem, error)
	Update(ctx context.Context, item *entity.MenuItem) error
	List(ctx context.Context, params *MenuFilterParams) ([]entity.MenuItem, error)
	Count(ctx context.Context) (int64, error)
}

// MenuFilterParams contains filtering parameters for menu queries
type MenuFilterParams struct {
	Category   string
	ActiveOnly bool
	Search     string
}
