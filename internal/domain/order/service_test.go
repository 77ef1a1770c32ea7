package order_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/orderflow/internal/domain/auth"
	"github.com/xenking/orderflow/internal/domain/coupon"
	"github.com/xenking/orderflow/internal/domain/inventory"
	"github.com/xenking/orderflow/internal/domain/order"
	"github.com/xenking/orderflow/internal/domain/payment"
	"github.com/xenking/orderflow/internal/domain/product"
	"github.com/xenking/orderflow/internal/domain/sequence"
	"github.com/xenking/orderflow/internal/gateway/sandbox"
	"github.com/xenking/orderflow/internal/storage/memory"
)

const gatewaySecret = "sandbox_secret"

var (
	customer = auth.Principal{UserID: "user-1"}
	stranger = auth.Principal{UserID: "user-2"}
	admin    = auth.Principal{UserID: "admin-1", Admin: true}
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type harness struct {
	store    *memory.Store
	gw       *sandbox.Gateway
	coupons  *coupon.Service
	payments *payment.Service
	svc      *order.Service
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	store := memory.New()
	store.Catalog.Put(
		product.Product{ID: "p1", Name: "Basmati Rice", Price: dec("250"), TaxRate: dec("5"), Stock: 10},
		product.Product{ID: "p2", Name: "Mustard Oil", Price: dec("150"), TaxRate: dec("12"), Stock: 5},
	)
	gw := sandbox.New(gatewaySecret)
	payments := payment.NewService(store.Transactions, gw, payment.Config{KeySecret: gatewaySecret})
	coupons := coupon.NewService(store.Coupons)

	svc, err := order.NewService(
		store.Orders,
		inventory.NewLedger(store.Catalog),
		coupons,
		sequence.NewGenerator(store.Counters),
		payments,
	)
	require.NoError(t, err)
	return &harness{store: store, gw: gw, coupons: coupons, payments: payments, svc: svc}
}

func (h *harness) addCoupon(t *testing.T, req coupon.CreateRequest) *coupon.Coupon {
	t.Helper()
	if req.StartDate.IsZero() {
		req.StartDate = time.Now().Add(-time.Hour)
		req.EndDate = time.Now().Add(24 * time.Hour)
	}
	if req.Title == "" {
		req.Title = req.Code
	}
	req.IsActive = true
	c, err := h.coupons.Create(context.Background(), req)
	require.NoError(t, err)
	return c
}

func address() order.Address {
	return order.Address{
		Address: "12 MG Road",
		City:    "Pune",
		State:   "Maharashtra",
		Pincode: "411001",
		Phone:   "9800000000",
	}
}

func cart(couponCode string, lines ...inventory.Line) order.Checkout {
	return order.Checkout{Lines: lines, Address: address(), CouponCode: couponCode}
}

func line(id string, qty int) inventory.Line {
	return inventory.Line{ProductID: id, Quantity: qty}
}

func (h *harness) assertStock(t *testing.T, p1, p2 int) {
	t.Helper()
	assert.Equal(t, p1, h.store.Catalog.Stock("p1"), "p1 stock")
	assert.Equal(t, p2, h.store.Catalog.Stock("p2"), "p2 stock")
}

func TestCreateCOD(t *testing.T) {
	h := newHarness(t)

	o, err := h.svc.CreateCOD(context.Background(), customer, cart("", line("p1", 2), line("p2", 1)))
	require.NoError(t, err)

	assert.Equal(t, int64(1), o.Number)
	assert.Equal(t, "ORD-00000001", o.DisplayNumber)
	assert.Equal(t, order.StatusPending, o.Status)
	assert.Equal(t, order.PaymentPending, o.PaymentStatus)
	assert.Equal(t, order.PaymentCOD, o.PaymentMethod)
	assert.True(t, dec("650").Equal(o.Subtotal))
	assert.True(t, dec("43").Equal(o.Tax), "tax %s", o.Tax)
	assert.True(t, o.Shipping.IsZero())
	assert.True(t, dec("693").Equal(o.Total), "total %s", o.Total)
	assert.True(t, o.TotalConsistent())
	require.Len(t, o.Items, 2)
	assert.Equal(t, "Basmati Rice", o.Items[0].Name)
	assert.True(t, dec("12.5").Equal(o.Items[0].TaxAmount))
	h.assertStock(t, 8, 4)

	next, err := h.svc.CreateCOD(context.Background(), customer, cart("", line("p2", 1)))
	require.NoError(t, err)
	assert.Equal(t, "ORD-00000002", next.DisplayNumber)
	assert.True(t, dec("50").Equal(next.Shipping), "below free shipping threshold")
}

func TestCreateCOD_WithCoupon(t *testing.T) {
	h := newHarness(t)
	c := h.addCoupon(t, coupon.CreateRequest{
		Code:          "SAVE10",
		DiscountType:  coupon.DiscountPercentage,
		DiscountValue: dec("10"),
		MinOrderValue: dec("500"),
	})

	o, err := h.svc.CreateCOD(context.Background(), customer, cart("save10", line("p1", 2), line("p2", 1)))
	require.NoError(t, err)

	assert.True(t, dec("65").Equal(o.Discount))
	// Tax shrinks with the discount: 43 * 585 / 650.
	assert.True(t, dec("38.7").Equal(o.Tax), "tax %s", o.Tax)
	assert.True(t, dec("623.7").Equal(o.Total), "total %s", o.Total)
	require.NotNil(t, o.CouponCode)
	assert.Equal(t, "SAVE10", *o.CouponCode)
	assert.True(t, o.TotalConsistent())

	stored, err := h.store.Coupons.FindByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.CurrentUsage)
	u, ok := stored.FindUsage(o.ID)
	require.True(t, ok)
	assert.True(t, dec("65").Equal(u.DiscountAmount))
}

func TestRecordCouponUsage(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	applied := h.addCoupon(t, coupon.CreateRequest{
		Code:          "SAVE10",
		DiscountType:  coupon.DiscountPercentage,
		DiscountValue: dec("10"),
	})
	other := h.addCoupon(t, coupon.CreateRequest{
		Code:          "BIGSALE",
		DiscountType:  coupon.DiscountFixed,
		DiscountValue: dec("100"),
		Budget:        decimal.NewNullDecimal(dec("1000")),
	})

	plain, err := h.svc.CreateCOD(ctx, customer, cart("", line("p1", 1)))
	require.NoError(t, err)
	withCoupon, err := h.svc.CreateCOD(ctx, customer, cart("SAVE10", line("p1", 2)))
	require.NoError(t, err)

	tests := []struct {
		name     string
		actor    auth.Principal
		couponID string
		orderID  string
		wantErr  error
	}{
		{"order without coupon", customer, other.ID, plain.ID, order.ErrCouponNotApplied},
		{"different coupon", customer, other.ID, withCoupon.ID, order.ErrCouponNotApplied},
		{"someone else's order", stranger, applied.ID, withCoupon.ID, auth.ErrForbidden},
		{"unknown order", customer, applied.ID, "missing", order.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.svc.RecordCouponUsage(ctx, tt.actor, tt.couponID, tt.orderID)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	stored, err := h.store.Coupons.FindByID(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.CurrentUsage)
	assert.True(t, stored.BudgetUtilized.IsZero(), "budget untouched, got %s", stored.BudgetUtilized)

	// The order's own coupon was recorded at checkout; repeating it changes nothing.
	res, err := h.svc.RecordCouponUsage(ctx, customer, applied.ID, withCoupon.ID)
	require.NoError(t, err)
	assert.True(t, res.AlreadyRecorded)
	assert.True(t, withCoupon.Discount.Equal(res.Usage.DiscountAmount))
	assert.True(t, withCoupon.Total.Equal(res.Usage.OrderTotal))
}

func TestCreateCOD_Failures(t *testing.T) {
	t.Run("insufficient stock", func(t *testing.T) {
		h := newHarness(t)
		_, err := h.svc.CreateCOD(context.Background(), customer, cart("", line("p1", 2), line("p2", 6)))
		var stockErr *inventory.InsufficientStockError
		require.True(t, errors.As(err, &stockErr), "got %v", err)
		assert.Equal(t, "p2", stockErr.ProductID)
		h.assertStock(t, 10, 5)
	})

	t.Run("coupon below minimum returns stock", func(t *testing.T) {
		h := newHarness(t)
		h.addCoupon(t, coupon.CreateRequest{
			Code:          "SAVE10",
			DiscountType:  coupon.DiscountPercentage,
			DiscountValue: dec("10"),
			MinOrderValue: dec("500"),
		})
		_, err := h.svc.CreateCOD(context.Background(), customer, cart("SAVE10", line("p2", 1)))
		var minErr *coupon.MinOrderValueError
		require.True(t, errors.As(err, &minErr), "got %v", err)
		h.assertStock(t, 10, 5)
	})

	t.Run("per user limit returns stock", func(t *testing.T) {
		h := newHarness(t)
		h.addCoupon(t, coupon.CreateRequest{
			Code:          "ONCE",
			DiscountType:  coupon.DiscountFixed,
			DiscountValue: dec("20"),
		})
		_, err := h.svc.CreateCOD(context.Background(), customer, cart("ONCE", line("p1", 1)))
		require.NoError(t, err)
		_, err = h.svc.CreateCOD(context.Background(), customer, cart("ONCE", line("p1", 1)))
		require.ErrorIs(t, err, coupon.ErrUserLimitReached)
		h.assertStock(t, 9, 5)
	})

	t.Run("invalid address", func(t *testing.T) {
		h := newHarness(t)
		c := cart("", line("p1", 1))
		c.Address.Pincode = " "
		_, err := h.svc.CreateCOD(context.Background(), customer, c)
		var verr *order.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "shippingAddress.pincode", verr.Field)
	})

	t.Run("anonymous", func(t *testing.T) {
		h := newHarness(t)
		_, err := h.svc.CreateCOD(context.Background(), auth.Principal{}, cart("", line("p1", 1)))
		require.ErrorIs(t, err, auth.ErrUnauthenticated)
	})
}

func TestCreateCOD_CouponSingleUseUnderRace(t *testing.T) {
	h := newHarness(t)
	one := 1
	h.addCoupon(t, coupon.CreateRequest{
		Code:          "FIRST",
		DiscountType:  coupon.DiscountFixed,
		DiscountValue: dec("10"),
		MaxUsageCount: &one,
		UsagePerUser:  5,
	})

	const workers = 5
	errs := make([]error, workers)
	var g errgroup.Group
	for i := range workers {
		g.Go(func() error {
			actor := auth.Principal{UserID: fmt.Sprintf("racer-%d", i)}
			_, errs[i] = h.svc.CreateCOD(context.Background(), actor, cart("FIRST", line("p1", 1)))
			return nil
		})
	}
	require.NoError(t, g.Wait())

	var ok int
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		require.ErrorIs(t, err, coupon.ErrUsageLimitReached)
	}
	assert.Equal(t, 1, ok)
	// Every rejected order returned its unit.
	h.assertStock(t, 9, 5)
}

func TestCancel(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	o, err := h.svc.CreateCOD(ctx, customer, cart("", line("p1", 2), line("p2", 1)))
	require.NoError(t, err)
	h.assertStock(t, 8, 4)

	_, err = h.svc.Cancel(ctx, stranger, o.ID)
	require.ErrorIs(t, err, auth.ErrForbidden)

	cancelled, err := h.svc.Cancel(ctx, customer, o.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, cancelled.Status)
	h.assertStock(t, 10, 5)

	_, err = h.svc.Cancel(ctx, customer, o.ID)
	var terr *order.TransitionError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, "cancelled", terr.From)
	h.assertStock(t, 10, 5)
}

func TestCancel_ConcurrentRestoresOnce(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	o, err := h.svc.CreateCOD(ctx, customer, cart("", line("p1", 3)))
	require.NoError(t, err)

	var g errgroup.Group
	for range 8 {
		g.Go(func() error {
			_, _ = h.svc.Cancel(ctx, customer, o.ID)
			return nil
		})
	}
	require.NoError(t, g.Wait())
	h.assertStock(t, 10, 5)
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	o, err := h.svc.CreateCOD(ctx, customer, cart("", line("p1", 1)))
	require.NoError(t, err)

	_, err = h.svc.UpdateStatus(ctx, customer, o.ID, order.StatusProcessing)
	require.ErrorIs(t, err, auth.ErrForbidden)

	_, err = h.svc.UpdateStatus(ctx, admin, o.ID, order.StatusDelivered)
	var terr *order.TransitionError
	require.True(t, errors.As(err, &terr))

	_, err = h.svc.UpdateStatus(ctx, admin, o.ID, "lost")
	var serr *order.InvalidStatusError
	require.True(t, errors.As(err, &serr))

	for _, next := range []order.Status{order.StatusProcessing, order.StatusShipped} {
		o, err = h.svc.UpdateStatus(ctx, admin, o.ID, next)
		require.NoError(t, err)
		assert.Equal(t, next, o.Status)
	}

	_, err = h.svc.EditAddress(ctx, customer, o.ID, address())
	require.ErrorIs(t, err, order.ErrNotEditable)

	_, err = h.svc.UpdateStatus(ctx, admin, o.ID, order.StatusCancelled)
	require.True(t, errors.As(err, &terr))
	h.assertStock(t, 9, 5)

	o, err = h.svc.UpdateStatus(ctx, admin, o.ID, order.StatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, order.StatusDelivered, o.Status)
}

func TestUpdatePaymentStatus(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	o, err := h.svc.CreateCOD(ctx, customer, cart("", line("p1", 1)))
	require.NoError(t, err)

	var terr *order.TransitionError
	_, err = h.svc.UpdatePaymentStatus(ctx, admin, o.ID, order.PaymentCompleted)
	require.True(t, errors.As(err, &terr), "cash on delivery settles through initiated")
	assert.Equal(t, "pending", terr.From)

	o, err = h.svc.UpdatePaymentStatus(ctx, admin, o.ID, order.PaymentInitiated)
	require.NoError(t, err)
	o, err = h.svc.UpdatePaymentStatus(ctx, admin, o.ID, order.PaymentCompleted)
	require.NoError(t, err)
	assert.Equal(t, order.PaymentCompleted, o.PaymentStatus)

	_, err = h.svc.UpdatePaymentStatus(ctx, admin, o.ID, order.PaymentPending)
	require.True(t, errors.As(err, &terr))
	_, err = h.svc.UpdatePaymentStatus(ctx, admin, o.ID, order.PaymentFailed)
	require.True(t, errors.As(err, &terr))
}

func TestUpdatePaymentStatus_FailedIsTerminal(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	o, err := h.svc.CreateCOD(ctx, customer, cart("", line("p1", 1)))
	require.NoError(t, err)

	_, err = h.svc.UpdatePaymentStatus(ctx, admin, o.ID, order.PaymentInitiated)
	require.NoError(t, err)
	o, err = h.svc.UpdatePaymentStatus(ctx, admin, o.ID, order.PaymentFailed)
	require.NoError(t, err)
	assert.Equal(t, order.PaymentFailed, o.PaymentStatus)

	for _, to := range []order.PaymentStatus{order.PaymentInitiated, order.PaymentCompleted, order.PaymentRefunded} {
		_, err = h.svc.UpdatePaymentStatus(ctx, admin, o.ID, to)
		var terr *order.TransitionError
		assert.True(t, errors.As(err, &terr), "failed -> %s", to)
	}
}

func TestEditAddress(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	o, err := h.svc.CreateCOD(ctx, customer, cart("", line("p1", 1)))
	require.NoError(t, err)

	addr := address()
	addr.City = "  Mumbai "
	updated, err := h.svc.EditAddress(ctx, customer, o.ID, addr)
	require.NoError(t, err)
	assert.Equal(t, "Mumbai", updated.ShippingAddress.City)

	_, err = h.svc.EditAddress(ctx, stranger, o.ID, addr)
	require.ErrorIs(t, err, auth.ErrForbidden)
}

func TestUpdateAdminNote(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	o, err := h.svc.CreateCOD(ctx, customer, cart("", line("p1", 1)))
	require.NoError(t, err)

	noted, err := h.svc.UpdateAdminNote(ctx, admin, o.ID, "  call before delivery ")
	require.NoError(t, err)
	assert.Equal(t, "call before delivery", noted.AdminNote)
	assert.Equal(t, admin.UserID, noted.AdminNoteUpdatedBy)
	require.NotNil(t, noted.AdminNoteUpdatedAt)

	long := make([]rune, order.MaxAdminNoteLength+1)
	for i := range long {
		long[i] = 'ж'
	}
	_, err = h.svc.UpdateAdminNote(ctx, admin, o.ID, string(long))
	var verr *order.ValidationError
	require.True(t, errors.As(err, &verr))

	_, err = h.svc.UpdateAdminNote(ctx, customer, o.ID, "hi")
	require.ErrorIs(t, err, auth.ErrForbidden)
}

func TestList(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	for range 3 {
		_, err := h.svc.CreateCOD(ctx, customer, cart("", line("p1", 1)))
		require.NoError(t, err)
	}
	_, err := h.svc.CreateCOD(ctx, stranger, cart("", line("p2", 1)))
	require.NoError(t, err)

	mine, total, err := h.svc.List(ctx, customer, order.ListFilter{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, mine, 2)
	assert.Equal(t, int64(3), mine[0].Number)

	all, total, err := h.svc.List(ctx, admin, order.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Len(t, all, 4)
}

func TestInvoice(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	first, err := h.svc.CreateCOD(ctx, customer, cart("", line("p1", 2), line("p2", 1)))
	require.NoError(t, err)
	second, err := h.svc.CreateCOD(ctx, customer, cart("", line("p1", 1)))
	require.NoError(t, err)

	year := time.Now().UTC().Year()
	inv, err := h.svc.Invoice(ctx, customer, first.ID)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%04d00001", year), inv.Number)
	assert.True(t, dec("21.5").Equal(inv.CGST))
	assert.True(t, inv.CGST.Add(inv.SGST).Equal(first.Tax))

	again, err := h.svc.Invoice(ctx, customer, first.ID)
	require.NoError(t, err)
	assert.Equal(t, inv.Number, again.Number, "invoice number must not change")

	other, err := h.svc.Invoice(ctx, admin, second.ID)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%04d00002", year), other.Number)

	_, err = h.svc.Invoice(ctx, stranger, first.ID)
	require.ErrorIs(t, err, auth.ErrForbidden)
}

func TestInvoice_CancelledOrder(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	o, err := h.svc.CreateCOD(ctx, customer, cart("", line("p1", 1)))
	require.NoError(t, err)
	_, err = h.svc.Cancel(ctx, customer, o.ID)
	require.NoError(t, err)

	_, err = h.svc.Invoice(ctx, customer, o.ID)
	require.ErrorIs(t, err, order.ErrNotInvoiceable)
}

func TestNewService_MissingOrderIsNotFound(t *testing.T) {
	h := newHarness(t)
	_, err := h.svc.Get(context.Background(), admin, "missing")
	require.ErrorIs(t, err, order.ErrNotFound)
}
