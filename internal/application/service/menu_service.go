package service

import (
	"context"

	"github.com/arjunmenon/restobill/internal/domain/entity"
	"github.com/arjunmenon/restobill/internal/domain/repository"
	"github.com/arjunmenon/restobill/pkg/apperror"
)

// MenuService handles menu catalog administration. The billing engine only
// reads the catalog; these writes belong to the admin side.
type MenuService struct {
	menuRepo repository.MenuRepository
}

// NewMenuService creates a new menu service
func NewMenuService(menuRepo repository.MenuRepository) *MenuService {
	return &MenuService{menuRepo: menuRepo}
}

// MenuItemInput represents the create/update menu item input
type MenuItemInput struct {
	Name     string
	Category string
	Price    float64
	GSTRate  float64
	IsActive *bool
}

func (s *MenuService) validate(input *MenuItemInput) error {
	var fieldErrors []apperror.FieldError
	if input.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "name is required"})
	}
	if input.Price < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "price", Message: "price cannot be negative"})
	}
	if input.GSTRate < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "gst_rate", Message: "GST rate cannot be negative"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// CreateItem adds a dish to the menu
func (s *MenuService) CreateItem(ctx context.Context, input *MenuItemInput) (*entity.MenuItem, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	item := &entity.MenuItem{
		Name:     input.Name,
		Category: input.Category,
		GSTRate:  input.GSTRate,
		IsActive: true,
	}
	item.SetPriceFromDecimal(input.Price)
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	if err := s.menuRepo.Create(ctx, item); err != nil {
		return nil, apperror.NewPersistenceError("create menu item", err)
	}
	return item, nil
}

// UpdateItem edits a dish. Price changes never touch open carts or saved
// orders; both hold their own snapshots.
func (s *MenuService) UpdateItem(ctx context.Context, id uint, input *MenuItemInput) (*entity.MenuItem, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewPersistenceError("fetch menu item", err)
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}

	item.Name = input.Name
	item.Category = input.Category
	item.GSTRate = input.GSTRate
	item.SetPriceFromDecimal(input.Price)
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	if err := s.menuRepo.Update(ctx, item); err != nil {
		return nil, apperror.NewPersistenceError("update menu item", err)
	}
	return item, nil
}

// DeactivateItem hides a dish from new carts. The row stays so historical
// order lines keep resolving their display names.
func (s *MenuService) DeactivateItem(ctx context.Context, id uint) (*entity.MenuItem, error) {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewPersistenceError("fetch menu item", err)
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}

	item.IsActive = false
	if err := s.menuRepo.Update(ctx, item); err != nil {
		return nil, apperror.NewPersistenceError("update menu item", err)
	}
	return item, nil
}

// GetItem retrieves one menu item, active or not
func (s *MenuService) GetItem(ctx context.Context, id uint) (*entity.MenuItem, error) {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewPersistenceError("fetch menu item", err)
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}
	return item, nil
}

// ListItems lists menu items with optional filters
func (s *MenuService) ListItems(ctx context.Context, params *repository.MenuFilterParams) ([]entity.MenuItem, error) {
	items, err := s.menuRepo.List(ctx, params)
	if err != nil {
		return nil, apperror.NewPersistenceError("list menu items", err)
	}
	return items, nil
}
