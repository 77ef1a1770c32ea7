package order_test

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/orderflow/internal/domain/coupon"
	"github.com/xenking/orderflow/internal/domain/inventory"
	"github.com/xenking/orderflow/internal/domain/order"
	"github.com/xenking/orderflow/internal/domain/payment"
	"github.com/xenking/orderflow/internal/domain/product"
	"github.com/xenking/orderflow/internal/domain/sequence"
	"github.com/xenking/orderflow/internal/gateway/sandbox"
)

// pay creates an intent for c and simulates the customer paying it.
func (h *harness) pay(t *testing.T, c order.Checkout) (*order.Intent, payment.Confirmation) {
	t.Helper()
	intent, err := h.svc.CreateIntent(context.Background(), customer, c, decimal.NullDecimal{})
	require.NoError(t, err)
	paymentID, sig, err := h.gw.Pay(intent.Transaction.GatewayOrderID)
	require.NoError(t, err)
	return intent, payment.Confirmation{
		GatewayOrderID: intent.Transaction.GatewayOrderID,
		PaymentID:      paymentID,
		Signature:      sig,
	}
}

func (h *harness) ledgerRow(t *testing.T, gatewayOrderID string) *payment.Transaction {
	t.Helper()
	tx, err := h.store.Transactions.FindByGatewayOrderID(context.Background(), gatewayOrderID)
	require.NoError(t, err)
	return tx
}

func (h *harness) orderCount(t *testing.T) int {
	t.Helper()
	_, total, err := h.svc.List(context.Background(), admin, order.ListFilter{})
	require.NoError(t, err)
	return total
}

func TestCreateIntent(t *testing.T) {
	h := newHarness(t)

	intent, err := h.svc.CreateIntent(context.Background(), customer,
		cart("", line("p1", 2), line("p2", 1)),
		decimal.NewNullDecimal(dec("693.00")))
	require.NoError(t, err)
	assert.Equal(t, payment.StatusCreated, intent.Transaction.Status)
	assert.True(t, dec("693").Equal(intent.Transaction.Amount))
	assert.NotEmpty(t, intent.Transaction.Metadata)
	// Intents never touch stock.
	h.assertStock(t, 10, 5)

	_, err = h.svc.CreateIntent(context.Background(), customer,
		cart("", line("p1", 2)),
		decimal.NewNullDecimal(dec("400")))
	var mismatch *order.AmountMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.True(t, dec("525").Equal(mismatch.Expected))
}

func TestConfirmPayment(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	intent, conf := h.pay(t, cart("", line("p1", 2), line("p2", 1)))

	o, err := h.svc.ConfirmPayment(ctx, customer, order.ConfirmRequest{Confirmation: conf})
	require.NoError(t, err)
	assert.Equal(t, order.PaymentCompleted, o.PaymentStatus)
	assert.Equal(t, order.PaymentGateway, o.PaymentMethod)
	assert.Equal(t, conf.PaymentID, o.Gateway.PaymentID)
	assert.True(t, intent.Transaction.Amount.Equal(o.Total))
	h.assertStock(t, 8, 4)

	tx := h.ledgerRow(t, conf.GatewayOrderID)
	assert.Equal(t, payment.StatusCaptured, tx.Status)
	require.NotNil(t, tx.OrderID)
	assert.Equal(t, o.ID, *tx.OrderID)

	// A duplicate delivery returns the same order and changes nothing.
	again, err := h.svc.ConfirmPayment(ctx, customer, order.ConfirmRequest{Confirmation: conf})
	require.NoError(t, err)
	assert.Equal(t, o.ID, again.ID)
	assert.Equal(t, 1, h.orderCount(t))
	h.assertStock(t, 8, 4)
}

func TestConfirmPayment_WithCoupon(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	c := h.addCoupon(t, coupon.CreateRequest{
		Code:          "FLAT200",
		DiscountType:  coupon.DiscountFixed,
		DiscountValue: dec("200"),
		Budget:        decimal.NewNullDecimal(dec("150")),
	})
	intent, conf := h.pay(t, cart("FLAT200", line("p1", 4)))
	assert.Equal(t, c.ID, intent.CouponID)
	assert.True(t, dec("150").Equal(intent.Pricing.Discount))

	o, err := h.svc.ConfirmPayment(ctx, customer, order.ConfirmRequest{Confirmation: conf})
	require.NoError(t, err)

	stored, err := h.store.Coupons.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.CurrentUsage)
	assert.True(t, dec("150").Equal(stored.BudgetUtilized))
	_, ok := stored.FindUsage(o.ID)
	assert.True(t, ok)
}

func TestConfirmPayment_SignatureMismatch(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	_, conf := h.pay(t, cart("", line("p1", 2)))
	conf.Signature = payment.Sign("wrong-secret", conf.GatewayOrderID, conf.PaymentID)

	_, err := h.svc.ConfirmPayment(ctx, customer, order.ConfirmRequest{Confirmation: conf})
	require.ErrorIs(t, err, payment.ErrSignatureMismatch)

	tx := h.ledgerRow(t, conf.GatewayOrderID)
	assert.Equal(t, payment.StatusFailed, tx.Status)
	assert.Equal(t, payment.CodeSignatureMismatch, tx.ErrorCode)
	assert.Equal(t, 0, h.orderCount(t))
	h.assertStock(t, 10, 5)
}

func TestConfirmPayment_UnknownIntent(t *testing.T) {
	h := newHarness(t)
	_, err := h.svc.ConfirmPayment(context.Background(), customer, order.ConfirmRequest{
		Confirmation: payment.Confirmation{GatewayOrderID: "order_nope", PaymentID: "pay_1", Signature: "sig"},
	})
	require.ErrorIs(t, err, payment.ErrNotFound)
	assert.Equal(t, 0, h.orderCount(t))
}

func TestConfirmPayment_AmountMismatchIsRetryable(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	_, conf := h.pay(t, cart("", line("p1", 2)))

	// The price moves between intent and confirmation.
	h.store.Catalog.Put(product.Product{ID: "p1", Name: "Basmati Rice", Price: dec("260"), TaxRate: dec("5"), Stock: 10})

	_, err := h.svc.ConfirmPayment(ctx, customer, order.ConfirmRequest{Confirmation: conf})
	var mismatch *order.AmountMismatchError
	require.True(t, errors.As(err, &mismatch), "got %v", err)

	tx := h.ledgerRow(t, conf.GatewayOrderID)
	assert.Equal(t, payment.StatusFailed, tx.Status)
	assert.Equal(t, payment.CodeAmountMismatch, tx.ErrorCode)
	assert.Equal(t, 0, h.orderCount(t))
	h.assertStock(t, 10, 5)

	h.store.Catalog.Put(product.Product{ID: "p1", Name: "Basmati Rice", Price: dec("250"), TaxRate: dec("5"), Stock: 10})
	o, err := h.svc.ConfirmPayment(ctx, customer, order.ConfirmRequest{Confirmation: conf})
	require.NoError(t, err)
	assert.Equal(t, order.PaymentCompleted, o.PaymentStatus)
	assert.Equal(t, payment.StatusCaptured, h.ledgerRow(t, conf.GatewayOrderID).Status)
}

type declinedCapture struct{ *sandbox.Gateway }

func (declinedCapture) Capture(context.Context, string, int64, string) error {
	return errors.New("capture declined")
}

func TestConfirmPayment_CaptureFailureFailsOrderPayment(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	payments := payment.NewService(h.store.Transactions, declinedCapture{h.gw}, payment.Config{KeySecret: gatewaySecret})
	svc, err := order.NewService(
		h.store.Orders,
		inventory.NewLedger(h.store.Catalog),
		h.coupons,
		sequence.NewGenerator(h.store.Counters),
		payments,
	)
	require.NoError(t, err)
	_, conf := h.pay(t, cart("", line("p1", 2)))

	_, err = svc.ConfirmPayment(ctx, customer, order.ConfirmRequest{Confirmation: conf})
	var upstream *payment.UpstreamError
	require.True(t, errors.As(err, &upstream))

	orders, _, err := svc.List(ctx, admin, order.ListFilter{})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.StatusCancelled, orders[0].Status)
	assert.Equal(t, order.PaymentFailed, orders[0].PaymentStatus)
	assert.Equal(t, payment.StatusFailed, h.ledgerRow(t, conf.GatewayOrderID).Status)
	h.assertStock(t, 10, 5)
}

func TestConfirmPayment_StockGoneLeavesRowFailed(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	_, conf := h.pay(t, cart("", line("p2", 5)))

	_, err := h.svc.CreateCOD(ctx, customer, cart("", line("p2", 1)))
	require.NoError(t, err)

	_, err = h.svc.ConfirmPayment(ctx, customer, order.ConfirmRequest{Confirmation: conf})
	require.Error(t, err)
	tx := h.ledgerRow(t, conf.GatewayOrderID)
	assert.Equal(t, payment.StatusFailed, tx.Status)
	assert.Equal(t, payment.CodeStockUnavailable, tx.ErrorCode)
	h.assertStock(t, 10, 4)
}

func TestConfirmPayment_ClientCheckoutOverridesSnapshot(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	_, conf := h.pay(t, cart("", line("p1", 2)))

	// A different cart does not match the paid amount.
	other := cart("", line("p1", 3))
	_, err := h.svc.ConfirmPayment(ctx, customer, order.ConfirmRequest{Confirmation: conf, Checkout: &other})
	var mismatch *order.AmountMismatchError
	require.True(t, errors.As(err, &mismatch))
}

func TestConfirmPayment_Concurrent(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	_, conf := h.pay(t, cart("", line("p1", 1)))

	const workers = 10
	ids := make([]string, workers)
	errs := make([]error, workers)
	var g errgroup.Group
	for i := range workers {
		g.Go(func() error {
			o, err := h.svc.ConfirmPayment(ctx, customer, order.ConfirmRequest{Confirmation: conf})
			errs[i] = err
			if o != nil {
				ids[i] = o.ID
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	orderIDs := make(map[string]struct{})
	for i, err := range errs {
		if err != nil {
			require.ErrorIs(t, err, payment.ErrConfirmationInProgress)
			continue
		}
		orderIDs[ids[i]] = struct{}{}
	}
	assert.Len(t, orderIDs, 1)
	assert.Equal(t, 1, h.orderCount(t))
	h.assertStock(t, 9, 5)
}

func TestConfirmPayment_OtherUser(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	_, conf := h.pay(t, cart("", line("p1", 1)))

	_, err := h.svc.ConfirmPayment(ctx, stranger, order.ConfirmRequest{Confirmation: conf})
	require.Error(t, err)
	assert.Equal(t, 0, h.orderCount(t))

	_, err = h.svc.ConfirmPayment(ctx, customer, order.ConfirmRequest{Confirmation: conf})
	require.NoError(t, err)
}

func TestRefund(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	_, conf := h.pay(t, cart("", line("p1", 2), line("p2", 1)))
	o, err := h.svc.ConfirmPayment(ctx, customer, order.ConfirmRequest{Confirmation: conf})
	require.NoError(t, err)
	h.assertStock(t, 8, 4)

	_, err = h.svc.Refund(ctx, customer, order.RefundRequest{OrderID: o.ID})
	require.Error(t, err)

	res, err := h.svc.Refund(ctx, admin, order.RefundRequest{OrderID: o.ID, Reason: "damaged in transit"})
	require.NoError(t, err)
	assert.Equal(t, payment.StatusRefunded, res.Transaction.Status)
	assert.True(t, o.Total.Equal(res.Transaction.RefundAmount.Decimal))
	assert.Equal(t, order.PaymentRefunded, res.Order.PaymentStatus)
	assert.Equal(t, order.StatusCancelled, res.Order.Status)
	h.assertStock(t, 10, 5)

	_, err = h.svc.Refund(ctx, admin, order.RefundRequest{OrderID: o.ID})
	var terr *order.TransitionError
	require.True(t, errors.As(err, &terr))
}

func TestRefund_CODOrderHasNoTransaction(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	o, err := h.svc.CreateCOD(ctx, customer, cart("", line("p1", 1)))
	require.NoError(t, err)
	_, err = h.svc.UpdatePaymentStatus(ctx, admin, o.ID, order.PaymentInitiated)
	require.NoError(t, err)
	_, err = h.svc.UpdatePaymentStatus(ctx, admin, o.ID, order.PaymentCompleted)
	require.NoError(t, err)

	_, err = h.svc.Refund(ctx, admin, order.RefundRequest{OrderID: o.ID})
	require.ErrorIs(t, err, payment.ErrNotFound)
}
