package coupon

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Quote is the discount a coupon grants on a cart.
type Quote struct {
	CouponID         string
	Code             string
	Discount         decimal.Decimal
	ApplicableAmount decimal.Decimal
	FinalAmount      decimal.Decimal
}

// ApplicableAmount returns the part of the cart the coupon applies to. With
// an allow list only listed products count; products on the deny list never
// count. Without items or lists the whole cart total applies.
func ApplicableAmount(c *Coupon, cartTotal decimal.Decimal, items []Item) decimal.Decimal {
	if len(c.ApplicableProducts) == 0 && len(c.ExcludedProducts) == 0 {
		return cartTotal
	}

	allowed := toSet(c.ApplicableProducts)
	excluded := toSet(c.ExcludedProducts)

	amount := decimal.Zero
	if len(allowed) == 0 {
		amount = cartTotal
	}
	for _, item := range items {
		line := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		_, isAllowed := allowed[item.ProductID]
		_, isExcluded := excluded[item.ProductID]
		switch {
		case len(allowed) > 0 && isAllowed && !isExcluded:
			amount = amount.Add(line)
		case len(allowed) == 0 && isExcluded:
			amount = amount.Sub(line)
		}
	}
	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}

// Calculate computes the discount for an applicable amount. The result is
// clamped to the remaining budget and rounded half-up to 2 decimal places.
func Calculate(c *Coupon, applicable decimal.Decimal) (decimal.Decimal, error) {
	var discount decimal.Decimal
	switch c.DiscountType {
	case DiscountPercentage:
		discount = applicable.Mul(c.DiscountValue).Div(hundred)
	case DiscountFixed:
		discount = decimal.Min(c.DiscountValue, applicable)
	default:
		return decimal.Zero, &ValidationError{Field: "discountType", Reason: string(c.DiscountType)}
	}

	if remaining, ok := c.RemainingBudget(); ok {
		if !remaining.IsPositive() {
			return decimal.Zero, ErrBudgetExhausted
		}
		discount = decimal.Min(discount, remaining)
	}

	// Round rounds half away from zero, which is half-up for positive amounts.
	return discount.Round(2), nil
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
