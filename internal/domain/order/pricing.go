package order

import (
	"github.com/shopspring/decimal"

	"github.com/xenking/orderflow/internal/domain/coupon"
	"github.com/xenking/orderflow/internal/domain/inventory"
	"github.com/xenking/orderflow/internal/domain/product"
)

// Tolerance is the largest accepted difference between two totals.
var Tolerance = decimal.RequireFromString("0.01")

// ShippingPolicy decides the shipping charge from the discounted subtotal.
type ShippingPolicy struct {
	FreeThreshold decimal.Decimal
	FlatCharge    decimal.Decimal
}

// DefaultShippingPolicy ships free from 500, otherwise charges 50.
func DefaultShippingPolicy() ShippingPolicy {
	return ShippingPolicy{
		FreeThreshold: decimal.NewFromInt(500),
		FlatCharge:    decimal.NewFromInt(50),
	}
}

// Charge returns the shipping charge for a discounted subtotal.
func (p ShippingPolicy) Charge(discounted decimal.Decimal) decimal.Decimal {
	if discounted.GreaterThanOrEqual(p.FreeThreshold) {
		return decimal.Zero
	}
	return p.FlatCharge
}

// Pricing is a fully priced cart.
type Pricing struct {
	Items    []Item
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Tax      decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

// Price computes line snapshots and totals for lines against the catalog
// products, given in line order. Tax is scaled down in proportion to the
// discount.
func Price(lines []inventory.Line, products []product.Product, discount decimal.Decimal, policy ShippingPolicy) Pricing {
	items := make([]Item, len(lines))
	subtotal := decimal.Zero
	tax := decimal.Zero
	for i, line := range lines {
		p := products[i]
		qty := decimal.NewFromInt(int64(line.Quantity))
		perUnitTax := p.TaxPerUnit()
		items[i] = Item{
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  line.Quantity,
			UnitPrice: p.Price,
			TaxRate:   p.TaxRate,
			TaxAmount: perUnitTax,
		}
		subtotal = subtotal.Add(p.Price.Mul(qty))
		tax = tax.Add(perUnitTax.Mul(qty))
	}
	subtotal = subtotal.Round(2)

	discount = decimal.Min(discount.Round(2), subtotal)
	discounted := subtotal.Sub(discount)
	if discount.IsPositive() && subtotal.IsPositive() {
		tax = tax.Mul(discounted).Div(subtotal)
	}
	tax = tax.Round(2)
	shipping := policy.Charge(discounted)

	return Pricing{
		Items:    items,
		Subtotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Shipping: shipping,
		Total:    discounted.Add(tax).Add(shipping).Round(2),
	}
}

// CouponItems converts lines and their products to coupon scoping items.
func CouponItems(lines []inventory.Line, products []product.Product) []coupon.Item {
	items := make([]coupon.Item, len(lines))
	for i, line := range lines {
		items[i] = coupon.Item{
			ProductID: line.ProductID,
			Price:     products[i].Price,
			Quantity:  line.Quantity,
		}
	}
	return items
}

// Subtotal sums price times quantity for lines.
func Subtotal(lines []inventory.Line, products []product.Product) decimal.Decimal {
	total := decimal.Zero
	for i, line := range lines {
		total = total.Add(products[i].Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total.Round(2)
}
