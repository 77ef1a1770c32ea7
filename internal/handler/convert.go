package handler

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xenking/orderflow/gen/oas"
	"github.com/xenking/orderflow/internal/domain/coupon"
	"github.com/xenking/orderflow/internal/domain/inventory"
	"github.com/xenking/orderflow/internal/domain/order"
	"github.com/xenking/orderflow/internal/domain/payment"
)

// money converts an amount for the wire. Amounts are held as decimals and
// only become floats in responses.
func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func optMoney(d decimal.NullDecimal) oas.OptFloat64 {
	if !d.Valid {
		return oas.OptFloat64{}
	}
	return oas.NewOptFloat64(money(d.Decimal))
}

func optDecimal(v oas.OptFloat64) decimal.NullDecimal {
	f, ok := v.Get()
	if !ok {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(decimal.NewFromFloat(f))
}

func optString(s string) oas.OptString {
	if s == "" {
		return oas.OptString{}
	}
	return oas.NewOptString(s)
}

func optStringPtr(s *string) oas.OptString {
	if s == nil {
		return oas.OptString{}
	}
	return oas.NewOptString(*s)
}

// parseTime accepts an RFC 3339 time or a bare date.
func parseTime(field, v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return time.Time{}, badRequest(field, "expected RFC 3339 time or date")
	}
	return t, nil
}

func optTime(field string, v oas.OptString) (time.Time, error) {
	s, ok := v.Get()
	if !ok {
		return time.Time{}, nil
	}
	return parseTime(field, s)
}

// page clamps paging input the way the repositories do.
func page(limit, offset oas.OptInt) (int, int) {
	l := limit.Or(0)
	if l <= 0 || l > 100 {
		l = 20
	}
	return l, max(offset.Or(0), 0)
}

func addressFromOAS(a oas.Address) order.Address {
	return order.Address{
		Address: a.Address,
		City:    a.City,
		State:   a.State,
		Pincode: a.Pincode,
		Phone:   a.Phone,
	}
}

func linesFromOAS(items []oas.CartItem) []inventory.Line {
	lines := make([]inventory.Line, len(items))
	for i, it := range items {
		lines[i] = inventory.Line{ProductID: it.ProductId, Quantity: it.Quantity}
	}
	return lines
}

func checkoutFromOAS(c oas.Checkout) order.Checkout {
	return order.Checkout{
		Lines:      linesFromOAS(c.Items),
		Address:    addressFromOAS(c.ShippingAddress),
		CouponCode: c.CouponCode.Or(""),
	}
}

func addressToOAS(a order.Address) oas.Address {
	return oas.Address{
		Address: a.Address,
		City:    a.City,
		State:   a.State,
		Pincode: a.Pincode,
		Phone:   a.Phone,
	}
}

func orderToOAS(o *order.Order) oas.Order {
	items := make([]oas.OrderItem, len(o.Items))
	for i, it := range o.Items {
		items[i] = oas.OrderItem{
			ProductId: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     money(it.UnitPrice),
			Gst:       it.TaxRate.InexactFloat64(),
			GstAmount: money(it.TaxAmount),
		}
	}

	out := oas.Order{
		ID:                 o.ID,
		OrderNumber:        o.Number,
		DisplayOrderNumber: o.DisplayNumber,
		InvoiceNumber:      optStringPtr(o.InvoiceNumber),
		UserId:             o.UserID,
		Items:              items,
		Subtotal:           money(o.Subtotal),
		Discount:           money(o.Discount),
		CouponId:           optStringPtr(o.CouponID),
		CouponCode:         optStringPtr(o.CouponCode),
		Tax:                money(o.Tax),
		Shipping:           money(o.Shipping),
		TotalAmount:        money(o.Total),
		ShippingAddress:    addressToOAS(o.ShippingAddress),
		PaymentMethod:      string(o.PaymentMethod),
		PaymentStatus:      string(o.PaymentStatus),
		Status:             string(o.Status),
		GatewayOrderId:     optString(o.Gateway.OrderID),
		GatewayPaymentId:   optString(o.Gateway.PaymentID),
		AdminNote:          optString(o.AdminNote),
		AdminNoteUpdatedBy: optString(o.AdminNoteUpdatedBy),
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
	if o.AdminNoteUpdatedAt != nil {
		out.AdminNoteUpdatedAt = oas.NewOptDateTime(*o.AdminNoteUpdatedAt)
	}
	return out
}

func invoiceToOAS(inv *order.Invoice) oas.Invoice {
	return oas.Invoice{
		InvoiceNumber: inv.Number,
		IssuedAt:      inv.IssuedAt,
		Cgst:          money(inv.CGST),
		Sgst:          money(inv.SGST),
		Order:         orderToOAS(inv.Order),
	}
}

func couponToOAS(c *coupon.Coupon) oas.Coupon {
	out := oas.Coupon{
		ID:                 c.ID,
		Code:               c.Code,
		Title:              c.Title,
		Description:        c.Description,
		DiscountType:       string(c.DiscountType),
		DiscountValue:      c.DiscountValue.InexactFloat64(),
		MinOrderValue:      money(c.MinOrderValue),
		UsagePerUser:       c.UsagePerUser,
		Budget:             optMoney(c.Budget),
		CurrentUsage:       c.CurrentUsage,
		TotalSales:         money(c.TotalSales),
		BudgetUtilized:     money(c.BudgetUtilized),
		StartDate:          c.StartDate,
		EndDate:            c.EndDate,
		IsActive:           c.IsActive,
		ApplicableProducts: nonNil(c.ApplicableProducts),
		ExcludedProducts:   nonNil(c.ExcludedProducts),
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
	if c.MaxUsageCount != nil {
		out.MaxUsageCount = oas.NewOptInt(*c.MaxUsageCount)
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func usageToOAS(u coupon.Usage) oas.CouponUsage {
	return oas.CouponUsage{
		UserId:         u.UserID,
		OrderId:        u.OrderID,
		OrderTotal:     money(u.OrderTotal),
		DiscountAmount: money(u.DiscountAmount),
		UsedAt:         u.UsedAt,
	}
}

func detailsToOAS(d *coupon.Details) oas.CouponDetails {
	history := make([]oas.CouponUsage, len(d.Coupon.UsageHistory))
	for i, u := range d.Coupon.UsageHistory {
		history[i] = usageToOAS(u)
	}
	return oas.CouponDetails{
		Coupon: couponToOAS(d.Coupon),
		Status: d.Status,
		Stats: oas.CouponStats{
			Uses:              d.Stats.Uses,
			UniqueUsers:       d.Stats.UniqueUsers,
			TotalDiscount:     money(d.Stats.TotalDiscount),
			TotalSales:        money(d.Stats.TotalSales),
			AverageOrderValue: money(d.Stats.AverageOrderValue),
			BudgetRemaining:   optMoney(d.Stats.BudgetRemaining),
		},
		UsageHistory: history,
	}
}

func quoteToOAS(q *coupon.Quote) oas.CouponQuote {
	return oas.CouponQuote{
		CouponId:         q.CouponID,
		Code:             q.Code,
		DiscountAmount:   money(q.Discount),
		ApplicableAmount: money(q.ApplicableAmount),
		FinalAmount:      money(q.FinalAmount),
	}
}

func transactionToOAS(tx *payment.Transaction) oas.Transaction {
	return oas.Transaction{
		ID:               tx.ID,
		GatewayOrderId:   tx.GatewayOrderID,
		OrderId:          optStringPtr(tx.OrderID),
		UserId:           tx.UserID,
		Amount:           money(tx.Amount),
		Currency:         tx.Currency,
		Status:           string(tx.Status),
		PaymentId:        optString(tx.PaymentID),
		RefundId:         optString(tx.RefundID),
		RefundStatus:     optString(tx.RefundStatus),
		RefundAmount:     optMoney(tx.RefundAmount),
		ErrorCode:        optString(tx.ErrorCode),
		ErrorDescription: optString(tx.ErrorDescription),
		CreatedAt:        tx.CreatedAt,
		UpdatedAt:        tx.UpdatedAt,
	}
}

func statsToOAS(st *payment.Stats) oas.PaymentStats {
	out := oas.PaymentStats{
		From:     st.From,
		To:       st.To,
		ByStatus: make([]oas.StatusTotal, len(st.ByStatus)),
		Daily:    make([]oas.DailyTotal, len(st.Daily)),
	}
	for i, s := range st.ByStatus {
		out.ByStatus[i] = oas.StatusTotal{Status: string(s.Status), Count: s.Count, Amount: money(s.Amount)}
	}
	for i, d := range st.Daily {
		out.Daily[i] = oas.DailyTotal{Date: d.Day, Count: d.Count, Amount: money(d.Amount)}
	}
	return out
}
