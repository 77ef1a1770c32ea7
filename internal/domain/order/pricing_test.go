package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/orderflow/internal/domain/inventory"
	"github.com/xenking/orderflow/internal/domain/product"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestPrice(t *testing.T) {
	products := []product.Product{
		{ID: "p1", Name: "Tea", Price: d("120"), TaxRate: d("5")},
		{ID: "p2", Name: "Honey", Price: d("333.33"), TaxRate: d("18")},
	}
	tests := []struct {
		name     string
		lines    []inventory.Line
		discount string
		subtotal string
		tax      string
		shipping string
		total    string
	}{
		{
			name:     "below free shipping",
			lines:    []inventory.Line{{ProductID: "p1", Quantity: 2}},
			discount: "0",
			subtotal: "240", tax: "12", shipping: "50", total: "302",
		},
		{
			name:     "free shipping at threshold",
			lines:    []inventory.Line{{ProductID: "p1", Quantity: 2}, {ProductID: "p2", Quantity: 1}},
			discount: "0",
			subtotal: "573.33", tax: "72", shipping: "0", total: "645.33",
		},
		{
			name:     "discount scales tax and can cost free shipping",
			lines:    []inventory.Line{{ProductID: "p1", Quantity: 2}, {ProductID: "p2", Quantity: 1}},
			discount: "100",
			subtotal: "573.33", tax: "59.44", shipping: "50", total: "582.77",
		},
		{
			name:     "discount capped at subtotal",
			lines:    []inventory.Line{{ProductID: "p1", Quantity: 1}},
			discount: "500",
			subtotal: "120", tax: "0", shipping: "50", total: "50",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := make([]product.Product, len(tt.lines))
			for i, l := range tt.lines {
				for _, p := range products {
					if p.ID == l.ProductID {
						ps[i] = p
					}
				}
			}
			p := Price(tt.lines, ps, d(tt.discount), DefaultShippingPolicy())
			assert.True(t, d(tt.subtotal).Equal(p.Subtotal), "subtotal %s", p.Subtotal)
			assert.True(t, d(tt.tax).Equal(p.Tax), "tax %s", p.Tax)
			assert.True(t, d(tt.shipping).Equal(p.Shipping), "shipping %s", p.Shipping)
			assert.True(t, d(tt.total).Equal(p.Total), "total %s", p.Total)

			o := Order{Subtotal: p.Subtotal, Discount: p.Discount, Tax: p.Tax, Shipping: p.Shipping, Total: p.Total}
			assert.True(t, o.TotalConsistent())
		})
	}
}

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to Status
		ok       bool
	}{
		{StatusPending, StatusProcessing, true},
		{StatusPending, StatusCancelled, true},
		{StatusProcessing, StatusShipped, true},
		{StatusProcessing, StatusCancelled, true},
		{StatusShipped, StatusDelivered, true},
		{StatusPending, StatusShipped, false},
		{StatusShipped, StatusCancelled, false},
		{StatusDelivered, StatusPending, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusCancelled, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.ok, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
	assert.True(t, StatusProcessing.Editable())
	assert.False(t, StatusShipped.Editable())
}

func TestPaymentStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to PaymentStatus
		ok       bool
	}{
		{PaymentPending, PaymentInitiated, true},
		{PaymentInitiated, PaymentCompleted, true},
		{PaymentInitiated, PaymentFailed, true},
		{PaymentCompleted, PaymentRefunded, true},
		{PaymentPending, PaymentCompleted, false},
		{PaymentPending, PaymentFailed, false},
		{PaymentPending, PaymentRefunded, false},
		{PaymentFailed, PaymentInitiated, false},
		{PaymentFailed, PaymentCompleted, false},
		{PaymentCompleted, PaymentPending, false},
		{PaymentCompleted, PaymentFailed, false},
		{PaymentRefunded, PaymentCompleted, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.ok, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestSnapshot(t *testing.T) {
	c := Checkout{
		Lines: []inventory.Line{{ProductID: "p1", Quantity: 2}, {ProductID: "p2", Quantity: 1}},
		Address: Address{
			Address: `Flat 4, "Rose" Villa`,
			City:    "Kochi",
			State:   "Kerala",
			Pincode: "682001",
			Phone:   "9800000001",
		},
		CouponCode: "SAVE10",
	}
	data := encodeSnapshot("rcpt_1", c, Pricing{Subtotal: d("10"), Total: d("10")})

	got, err := decodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, c, got)

	c.CouponCode = ""
	got, err = decodeSnapshot(encodeSnapshot("rcpt_2", c, Pricing{}))
	require.NoError(t, err)
	assert.Empty(t, got.CouponCode)

	_, err = decodeSnapshot(nil)
	require.Error(t, err)
	_, err = decodeSnapshot([]byte(`{"items":`))
	require.Error(t, err)
}
