package service

import (
	"fmt"
	"math"

	"github.com/arjunmenon/restobill/internal/config"
	"github.com/arjunmenon/restobill/internal/domain/entity"
	"github.com/arjunmenon/restobill/pkg/apperror"
)

// TaxPolicy decides how tax, discount and service charge are derived for a
// bill. The policy is chosen once from deployment configuration, not per
// request.
type TaxPolicy interface {
	Name() string
	// Tax returns the total tax in cents for the given lines.
	Tax(lines []entity.CartLine, subTotal int64) int64
	// Adjustments resolves the discount and service percentages to apply to
	// the subtotal. Caller-supplied values may be overridden by the policy.
	Adjustments(subTotal int64, discountPct, servicePct float64) (discount, service float64)
}

// FlatTaxPolicy applies one global tax rate and one global service rate to
// the whole subtotal, with a threshold discount: bills above
// DiscountThreshold get DiscountRate off, smaller bills get nothing.
// Caller-supplied percentages are ignored.
type FlatTaxPolicy struct {
	TaxRate           float64
	ServiceRate       float64
	DiscountRate      float64
	DiscountThreshold int64 // cents
}

func (p *FlatTaxPolicy) Name() string { return "flat" }

func (p *FlatTaxPolicy) Tax(_ []entity.CartLine, subTotal int64) int64 {
	return roundCents(float64(subTotal) * p.TaxRate / 100)
}

func (p *FlatTaxPolicy) Adjustments(subTotal int64, _, _ float64) (float64, float64) {
	discount := 0.0
	if subTotal > p.DiscountThreshold {
		discount = p.DiscountRate
	}
	return discount, p.ServiceRate
}

// PerLineGSTPolicy taxes each line by its own GST rate. Discount and service
// percentages come from the caller and apply to the subtotal as a whole.
type PerLineGSTPolicy struct{}

func (p *PerLineGSTPolicy) Name() string { return "per_line" }

func (p *PerLineGSTPolicy) Tax(lines []entity.CartLine, _ int64) int64 {
	var tax float64
	for _, l := range lines {
		tax += float64(l.Subtotal()) * l.GSTRate / 100
	}
	return roundCents(tax)
}

func (p *PerLineGSTPolicy) Adjustments(_ int64, discountPct, servicePct float64) (float64, float64) {
	return discountPct, servicePct
}

// Calculator computes bill totals from cart lines. It holds no mutable
// state; Compute may be called on every cart change.
type Calculator struct {
	policy TaxPolicy
}

// NewCalculator creates a calculator with the given tax policy.
func NewCalculator(policy TaxPolicy) *Calculator {
	return &Calculator{policy: policy}
}

// NewCalculatorFromConfig resolves the configured tax policy.
func NewCalculatorFromConfig(cfg *config.BillingConfig) (*Calculator, error) {
	switch cfg.TaxPolicy {
	case "flat", "":
		return NewCalculator(&FlatTaxPolicy{
			TaxRate:           cfg.FlatTaxRate,
			ServiceRate:       cfg.ServiceRate,
			DiscountRate:      cfg.DiscountRate,
			DiscountThreshold: roundCents(cfg.DiscountThreshold * 100),
		}), nil
	case "per_line":
		return NewCalculator(&PerLineGSTPolicy{}), nil
	default:
		return nil, fmt.Errorf("unknown tax policy %q (use flat or per_line)", cfg.TaxPolicy)
	}
}

// Policy returns the active tax policy.
func (c *Calculator) Policy() TaxPolicy {
	return c.policy
}

// Compute derives the bill totals for the given lines. It is pure and
// deterministic: no I/O, no stored state, safe to re-run on every mutation.
// An empty cart yields all-zero totals. Negative percentages are rejected
// before any accumulation happens.
func (c *Calculator) Compute(lines []entity.CartLine, discountPct, servicePct float64) (*entity.BillTotals, error) {
	if discountPct < 0 {
		return nil, apperror.NewFieldValidationError("discount_pct", "discount percentage cannot be negative")
	}
	if servicePct < 0 {
		return nil, apperror.NewFieldValidationError("service_pct", "service percentage cannot be negative")
	}

	totals := &entity.BillTotals{}
	if len(lines) == 0 {
		return totals, nil
	}

	// Line subtotals are exact in cents; only tax/discount/service need
	// rounding, and each is rounded once on the accumulated value.
	for _, l := range lines {
		totals.SubTotal += l.Subtotal()
	}

	totals.Tax = c.policy.Tax(lines, totals.SubTotal)

	dPct, sPct := c.policy.Adjustments(totals.SubTotal, discountPct, servicePct)
	totals.Discount = roundCents(float64(totals.SubTotal) * dPct / 100)
	totals.ServiceCharge = roundCents(float64(totals.SubTotal) * sPct / 100)

	totals.Total = totals.SubTotal + totals.Tax + totals.ServiceCharge - totals.Discount
	return totals, nil
}

func roundCents(v float64) int64 {
	return int64(math.Round(v))
}
