package service

import (
	"context"
	"regexp"
	"testing"

	"github.com/arjunmenon/restobill/internal/domain/entity"
	"github.com/arjunmenon/restobill/internal/domain/enum"
	domainRepo "github.com/arjunmenon/restobill/internal/domain/repository"
	"github.com/arjunmenon/restobill/internal/infrastructure/repository"
	"github.com/arjunmenon/restobill/pkg/apperror"
	"github.com/arjunmenon/restobill/pkg/pagination"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.MenuItem{},
		&entity.Order{},
		&entity.OrderItem{},
	))
	return db
}

func seedTestMenu(t *testing.T, db *gorm.DB) []entity.MenuItem {
	t.Helper()

	items := []entity.MenuItem{
		{Name: "Paneer Butter Masala", Category: "Main Course", Price: 12000, GSTRate: 5, IsActive: true},
		{Name: "Roti", Category: "Breads & Others", Price: 2000, GSTRate: 5, IsActive: true},
		{Name: "Cold Drinks", Category: "Breads & Others", Price: 5000, GSTRate: 18, IsActive: true},
	}
	require.NoError(t, db.Create(&items).Error)
	return items
}

func newTestOrderService(t *testing.T) (*OrderService, *gorm.DB, []entity.MenuItem) {
	t.Helper()

	db := setupTestDB(t)
	menu := seedTestMenu(t, db)
	svc := NewOrderService(repository.NewOrderRepository(db), flatCalculator(), "ORD")
	return svc, db, menu
}

func cartLinesFor(menu []entity.MenuItem) []entity.CartLine {
	return []entity.CartLine{
		{MenuItemID: menu[0].ID, Name: menu[0].Name, UnitPrice: menu[0].Price, GSTRate: menu[0].GSTRate, Quantity: 2},
		{MenuItemID: menu[1].ID, Name: menu[1].Name, UnitPrice: menu[1].Price, GSTRate: menu[1].GSTRate, Quantity: 4},
	}
}

func TestOrderService_Checkout(t *testing.T) {
	svc, db, menu := newTestOrderService(t)
	ctx := context.Background()

	order, err := svc.Checkout(ctx, &CheckoutInput{
		Lines:          cartLinesFor(menu),
		OrderType:      enum.OrderTypeDineIn,
		PaymentMethod:  enum.PaymentMethodCash,
		CustomerName:   "  Arjun  ",
		CustomerMobile: "9876543210",
	})
	require.NoError(t, err)
	require.NotZero(t, order.ID)

	// prefix + 14-digit timestamp + 5-digit zero-padded id
	assert.Regexp(t, regexp.MustCompile(`^ORD\d{19}$`), order.ReferenceNo)
	assert.Equal(t, "Arjun", order.CustomerName)

	assert.Equal(t, int64(32000), order.SubTotal)
	assert.Equal(t, int64(5760), order.Tax)
	assert.Equal(t, int64(640), order.ServiceCharge)
	assert.Equal(t, int64(0), order.Discount)
	assert.Equal(t, int64(38400), order.Total)
	require.Len(t, order.Items, 2)

	// the persisted rows must carry the same snapshots
	saved, err := svc.GetOrderByReference(ctx, order.ReferenceNo)
	require.NoError(t, err)
	assert.Equal(t, order.ID, saved.ID)
	assert.Equal(t, order.Total, saved.Total)
	require.Len(t, saved.Items, 2)
	assert.Equal(t, int64(12000), saved.Items[0].UnitPrice)
	assert.Equal(t, int64(24000), saved.Items[0].Total)

	var itemCount int64
	require.NoError(t, db.Model(&entity.OrderItem{}).Count(&itemCount).Error)
	assert.Equal(t, int64(2), itemCount)
}

func TestOrderService_CheckoutValidation(t *testing.T) {
	svc, db, menu := newTestOrderService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input *CheckoutInput
		field string
	}{
		{
			name:  "empty cart",
			input: &CheckoutInput{CustomerName: "Arjun"},
			field: "cart",
		},
		{
			name:  "blank customer name",
			input: &CheckoutInput{Lines: cartLinesFor(menu), CustomerName: "   "},
			field: "customer_name",
		},
		{
			name: "mobile with non-digits",
			input: &CheckoutInput{
				Lines:          cartLinesFor(menu),
				CustomerName:   "Arjun",
				CustomerMobile: "98765-43210",
			},
			field: "customer_mobile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Checkout(ctx, tt.input)
			require.Error(t, err)
			require.True(t, apperror.IsValidation(err))

			appErr := apperror.GetAppError(err)
			require.Len(t, appErr.Errors, 1)
			assert.Equal(t, tt.field, appErr.Errors[0].Field)
		})
	}

	// nothing may be persisted on a rejected checkout
	var count int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestOrderService_SequentialCheckoutsGetDistinctReferences(t *testing.T) {
	svc, _, menu := newTestOrderService(t)
	ctx := context.Background()

	first, err := svc.Checkout(ctx, &CheckoutInput{
		Lines:         cartLinesFor(menu),
		PaymentMethod: enum.PaymentMethodCard,
		CustomerName:  "Arjun",
	})
	require.NoError(t, err)

	second, err := svc.Checkout(ctx, &CheckoutInput{
		Lines:         cartLinesFor(menu),
		PaymentMethod: enum.PaymentMethodUPI,
		CustomerName:  "Meera",
	})
	require.NoError(t, err)

	assert.NotEqual(t, first.ReferenceNo, second.ReferenceNo)
	assert.Greater(t, second.ID, first.ID)
}

func TestOrderService_GetOrderNotFound(t *testing.T) {
	svc, _, _ := newTestOrderService(t)

	_, err := svc.GetOrder(context.Background(), 999)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)

	_, err = svc.GetOrderByReference(context.Background(), "ORD-NOPE")
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestOrderService_ListOrders(t *testing.T) {
	svc, _, menu := newTestOrderService(t)
	ctx := context.Background()

	refs := make([]string, 0, 3)
	for _, name := range []string{"Arjun", "Meera", "Ravi"} {
		order, err := svc.Checkout(ctx, &CheckoutInput{
			Lines:        cartLinesFor(menu),
			CustomerName: name,
		})
		require.NoError(t, err)
		refs = append(refs, order.ReferenceNo)
	}

	result, err := svc.ListOrders(ctx, &domainRepo.OrderFilterParams{
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.Pagination.Total)
	assert.Equal(t, 2, result.Pagination.TotalPages)
	assert.Len(t, result.Items, 2)

	// reference substring search narrows the result to one order
	result, err = svc.ListOrders(ctx, &domainRepo.OrderFilterParams{
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: 10},
		Search:     refs[1],
	})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Meera", result.Items[0].CustomerName)
}
