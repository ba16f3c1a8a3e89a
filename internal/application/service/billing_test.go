package service

import (
	"testing"

	"github.com/arjunmenon/restobill/internal/config"
	"github.com/arjunmenon/restobill/internal/domain/entity"
	"github.com/arjunmenon/restobill/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatCalculator() *Calculator {
	return NewCalculator(&FlatTaxPolicy{
		TaxRate:           18,
		ServiceRate:       2,
		DiscountRate:      10,
		DiscountThreshold: 100000, // 1000.00
	})
}

func TestCalculator_FlatPolicy(t *testing.T) {
	calc := flatCalculator()

	// Paneer 120.00 x2, Roti 20.00 x4
	lines := []entity.CartLine{
		{MenuItemID: 1, Name: "Paneer", UnitPrice: 12000, Quantity: 2},
		{MenuItemID: 2, Name: "Roti", UnitPrice: 2000, Quantity: 4},
	}

	totals, err := calc.Compute(lines, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(32000), totals.SubTotal)
	assert.Equal(t, int64(640), totals.ServiceCharge)
	assert.Equal(t, int64(5760), totals.Tax)
	assert.Equal(t, int64(0), totals.Discount)
	assert.Equal(t, int64(38400), totals.Total)
}

func TestCalculator_FlatPolicyThresholdDiscount(t *testing.T) {
	calc := flatCalculator()

	// 200.00 x6 = 1200.00, above the 1000.00 threshold
	lines := []entity.CartLine{
		{MenuItemID: 1, Name: "Chicken Curry", UnitPrice: 20000, Quantity: 6},
	}

	totals, err := calc.Compute(lines, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(120000), totals.SubTotal)
	assert.Equal(t, int64(21600), totals.Tax)
	assert.Equal(t, int64(2400), totals.ServiceCharge)
	assert.Equal(t, int64(12000), totals.Discount)
	assert.Equal(t, int64(132000), totals.Total)

	// exactly at the threshold: no discount
	atThreshold := []entity.CartLine{
		{MenuItemID: 1, Name: "Chicken Curry", UnitPrice: 20000, Quantity: 5},
	}
	totals, err = calc.Compute(atThreshold, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), totals.Discount)
}

func TestCalculator_FlatPolicyIgnoresCallerRates(t *testing.T) {
	calc := flatCalculator()
	lines := []entity.CartLine{
		{MenuItemID: 1, UnitPrice: 10000, Quantity: 1},
	}

	totals, err := calc.Compute(lines, 50, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(0), totals.Discount)
	assert.Equal(t, int64(200), totals.ServiceCharge)
}

func TestCalculator_PerLinePolicy(t *testing.T) {
	calc := NewCalculator(&PerLineGSTPolicy{})

	// 100.00 with 5% GST, 10% discount, no service charge
	lines := []entity.CartLine{
		{MenuItemID: 1, Name: "Item A", UnitPrice: 10000, GSTRate: 5, Quantity: 1},
	}

	totals, err := calc.Compute(lines, 10, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(10000), totals.SubTotal)
	assert.Equal(t, int64(500), totals.Tax)
	assert.Equal(t, int64(1000), totals.Discount)
	assert.Equal(t, int64(0), totals.ServiceCharge)
	assert.Equal(t, int64(9500), totals.Total)
}

func TestCalculator_PerLinePolicyMixedRates(t *testing.T) {
	calc := NewCalculator(&PerLineGSTPolicy{})

	lines := []entity.CartLine{
		{MenuItemID: 1, Name: "Dal Tadka", UnitPrice: 10000, GSTRate: 5, Quantity: 2},
		{MenuItemID: 2, Name: "Cold Drinks", UnitPrice: 5000, GSTRate: 18, Quantity: 1},
	}

	totals, err := calc.Compute(lines, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(25000), totals.SubTotal)
	// 200.00*5% + 50.00*18% = 10.00 + 9.00
	assert.Equal(t, int64(1900), totals.Tax)
	assert.Equal(t, int64(26900), totals.Total)
}

func TestCalculator_TaxRoundedOnceOnAccumulatedValue(t *testing.T) {
	calc := NewCalculator(&PerLineGSTPolicy{})

	// each line taxes to 166.65 unrounded cents; per-line rounding would
	// give 501, single rounding of the sum 499.95 gives 500
	lines := []entity.CartLine{
		{MenuItemID: 1, UnitPrice: 3333, GSTRate: 5, Quantity: 1},
		{MenuItemID: 2, UnitPrice: 3333, GSTRate: 5, Quantity: 1},
		{MenuItemID: 3, UnitPrice: 3333, GSTRate: 5, Quantity: 1},
	}

	totals, err := calc.Compute(lines, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(500), totals.Tax)
}

func TestCalculator_EmptyCart(t *testing.T) {
	for _, calc := range []*Calculator{flatCalculator(), NewCalculator(&PerLineGSTPolicy{})} {
		totals, err := calc.Compute(nil, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, &entity.BillTotals{}, totals)
	}
}

func TestCalculator_NegativeRatesRejected(t *testing.T) {
	calc := NewCalculator(&PerLineGSTPolicy{})
	lines := []entity.CartLine{{MenuItemID: 1, UnitPrice: 1000, Quantity: 1}}

	_, err := calc.Compute(lines, -1, 0)
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))

	_, err = calc.Compute(lines, 0, -1)
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestCalculator_TotalsReconcile(t *testing.T) {
	carts := [][]entity.CartLine{
		{{MenuItemID: 1, UnitPrice: 12000, GSTRate: 5, Quantity: 2}},
		{
			{MenuItemID: 1, UnitPrice: 9999, GSTRate: 12, Quantity: 3},
			{MenuItemID: 2, UnitPrice: 12345, GSTRate: 18, Quantity: 1},
			{MenuItemID: 3, UnitPrice: 50, GSTRate: 5, Quantity: 17},
		},
		{{MenuItemID: 1, UnitPrice: 20000, GSTRate: 28, Quantity: 9}},
	}

	for _, calc := range []*Calculator{flatCalculator(), NewCalculator(&PerLineGSTPolicy{})} {
		for _, lines := range carts {
			totals, err := calc.Compute(lines, 5, 3)
			require.NoError(t, err)
			assert.Equal(t, totals.Total,
				totals.SubTotal+totals.Tax+totals.ServiceCharge-totals.Discount)
		}
	}
}

func TestNewCalculatorFromConfig(t *testing.T) {
	calc, err := NewCalculatorFromConfig(&config.BillingConfig{
		TaxPolicy:         "flat",
		FlatTaxRate:       18,
		ServiceRate:       2,
		DiscountRate:      10,
		DiscountThreshold: 1000,
	})
	require.NoError(t, err)
	assert.Equal(t, "flat", calc.Policy().Name())

	flat, ok := calc.Policy().(*FlatTaxPolicy)
	require.True(t, ok)
	assert.Equal(t, int64(100000), flat.DiscountThreshold)

	calc, err = NewCalculatorFromConfig(&config.BillingConfig{TaxPolicy: "per_line"})
	require.NoError(t, err)
	assert.Equal(t, "per_line", calc.Policy().Name())

	_, err = NewCalculatorFromConfig(&config.BillingConfig{TaxPolicy: "tiered"})
	require.Error(t, err)
}
