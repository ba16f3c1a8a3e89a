package service

import (
	"context"
	"sync"

	"github.com/arjunmenon/restobill/internal/domain/entity"
	"github.com/arjunmenon/restobill/internal/domain/repository"
	"github.com/arjunmenon/restobill/pkg/apperror"
)

// CartService owns the billing session's cart. One cart is edited by one
// operator at a time; the mutex only guards against the HTTP server's own
// concurrency, not multi-terminal editing.
type CartService struct {
	mu       sync.Mutex
	cart     *entity.Cart
	menuRepo repository.MenuRepository
	calc     *Calculator
}

// NewCartService creates a cart service with an empty cart.
func NewCartService(menuRepo repository.MenuRepository, calc *Calculator) *CartService {
	return &CartService{
		cart:     entity.NewCart(),
		menuRepo: menuRepo,
		calc:     calc,
	}
}

// CartView is the cart plus its current totals, recomputed on every read.
type CartView struct {
	Lines  []entity.CartLine  `json:"lines"`
	Totals *entity.BillTotals `json:"totals"`
}

// AddItem resolves the menu item and adds qty units to the cart, snapshotting
// name, price and GST rate. Inactive items are rejected.
func (s *CartService) AddItem(ctx context.Context, menuItemID uint, qty int) error {
	item, err := s.menuRepo.GetByID(ctx, menuItemID)
	if err != nil {
		return apperror.NewPersistenceError("fetch menu item", err)
	}
	if item == nil {
		return apperror.NewNotFoundError("Menu item")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Add(item, qty)
}

// SetQuantity changes the quantity of a cart line; 0 removes it.
func (s *CartService) SetQuantity(menuItemID uint, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.SetQuantity(menuItemID, qty)
}

// RemoveItem deletes a cart line.
func (s *CartService) RemoveItem(menuItemID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Remove(menuItemID)
}

// Clear empties the cart. Called by the HTTP layer after a successful
// checkout, and directly by the reset endpoint.
func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

// Lines returns the current cart lines in insertion order.
func (s *CartService) Lines() []entity.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

// View returns the cart lines with freshly computed totals.
func (s *CartService) View(discountPct, servicePct float64) (*CartView, error) {
	lines := s.Lines()

	totals, err := s.calc.Compute(lines, discountPct, servicePct)
	if err != nil {
		return nil, err
	}

	return &CartView{Lines: lines, Totals: totals}, nil
}
