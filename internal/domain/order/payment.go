package order

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/xenking/orderflow/internal/domain/auth"
	"github.com/xenking/orderflow/internal/domain/coupon"
	"github.com/xenking/orderflow/internal/domain/payment"
)

// Intent is a created payment intent and the pricing it was created for.
type Intent struct {
	Transaction *payment.Transaction
	Pricing     Pricing
	CouponID    string
}

// CreateIntent prices the checkout without touching stock and opens a
// gateway payment for the total. When the client states the total it
// expects, it must match the computed one.
func (s *Service) CreateIntent(ctx context.Context, actor auth.Principal, c Checkout, expected decimal.NullDecimal) (*Intent, error) {
	if actor.UserID == "" {
		return nil, auth.ErrUnauthenticated
	}
	c.CouponCode = coupon.NormalizeCode(c.CouponCode)
	if err := c.Validate(); err != nil {
		return nil, err
	}

	products, err := s.stock.Check(ctx, c.Lines)
	if err != nil {
		return nil, err
	}
	q, pricing, err := s.quote(ctx, actor.UserID, c, products)
	if err != nil {
		return nil, err
	}
	if expected.Valid && expected.Decimal.Sub(pricing.Total).Abs().GreaterThan(Tolerance) {
		return nil, &AmountMismatchError{Expected: pricing.Total, Received: expected.Decimal}
	}

	receipt := "rcpt_" + uuid.NewString()[:13]
	tx, err := s.payments.CreateIntent(ctx, payment.IntentRequest{
		UserID:   actor.UserID,
		Amount:   pricing.Total,
		Receipt:  receipt,
		Metadata: encodeSnapshot(receipt, c, pricing),
	})
	if err != nil {
		return nil, err
	}

	intent := &Intent{Transaction: tx, Pricing: pricing}
	if q != nil {
		intent.CouponID = q.CouponID
	}
	return intent, nil
}

// ConfirmRequest carries the gateway's proof of payment. Checkout is optional;
// the cart recorded with the intent is used when it is absent.
type ConfirmRequest struct {
	Confirmation payment.Confirmation
	Checkout     *Checkout
}

// ConfirmPayment turns a paid intent into an order exactly once.
//
// The ledger row must exist and the signature must verify; a bad signature
// fails the row and nothing else happens. The cart is then re-priced and its
// stock checked, and the new total must match the paid amount. Only then is
// stock reserved, the order number minted and the order stored as paid, after
// which the ledger row is captured and linked. A failure after the row was
// claimed releases it as failed so the confirmation can be retried.
//
// Repeating a confirmation that already produced an order returns that order.
func (s *Service) ConfirmPayment(ctx context.Context, actor auth.Principal, req ConfirmRequest) (*Order, error) {
	o, err := s.confirm(ctx, actor, req)
	outcome := "completed"
	switch {
	case err == nil:
	case errors.Is(err, payment.ErrSignatureMismatch):
		outcome = "signature_mismatch"
	case errors.Is(err, payment.ErrConfirmationInProgress):
		outcome = "in_progress"
	default:
		var mismatch *AmountMismatchError
		if errors.As(err, &mismatch) {
			outcome = "amount_mismatch"
		} else {
			outcome = "failed"
		}
	}
	s.confirmations.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	return o, err
}

func (s *Service) confirm(ctx context.Context, actor auth.Principal, req ConfirmRequest) (*Order, error) {
	if actor.UserID == "" {
		return nil, auth.ErrUnauthenticated
	}
	conf := req.Confirmation
	if conf.GatewayOrderID == "" || conf.PaymentID == "" || conf.Signature == "" {
		return nil, &ValidationError{Field: "payment", Reason: "gateway order id, payment id and signature are required"}
	}

	tx, err := s.payments.Authorize(ctx, conf)
	if errors.Is(err, payment.ErrAlreadyFinalized) && tx != nil && tx.OrderID != nil {
		return s.Get(ctx, actor, *tx.OrderID)
	}
	if err != nil {
		return nil, err
	}

	lg := zctx.From(ctx).With(zap.String("gateway_order_id", conf.GatewayOrderID))
	fail := func(code string, cause error) error {
		if ferr := s.payments.Fail(context.WithoutCancel(ctx), conf.GatewayOrderID, code, cause.Error()); ferr != nil {
			lg.Error("Failed to release payment claim", zap.Error(ferr))
		}
		return cause
	}

	if !actor.CanAccess(tx.UserID) {
		return nil, fail(payment.CodeCartInvalid, auth.ErrForbidden)
	}

	var c Checkout
	if req.Checkout != nil {
		c = *req.Checkout
	} else if c, err = decodeSnapshot(tx.Metadata); err != nil {
		return nil, fail(payment.CodeCartInvalid, err)
	}
	c.CouponCode = coupon.NormalizeCode(c.CouponCode)
	if err := c.Validate(); err != nil {
		return nil, fail(payment.CodeCartInvalid, err)
	}

	products, err := s.stock.Check(ctx, c.Lines)
	if err != nil {
		return nil, fail(payment.CodeStockUnavailable, err)
	}
	q, pricing, err := s.quote(ctx, tx.UserID, c, products)
	if err != nil {
		return nil, fail(payment.CodeCartInvalid, err)
	}
	if pricing.Total.Sub(tx.Amount).Abs().GreaterThan(Tolerance) {
		return nil, fail(payment.CodeAmountMismatch,
			&AmountMismatchError{Expected: pricing.Total, Received: tx.Amount})
	}

	if _, err := s.stock.Reserve(ctx, c.Lines); err != nil {
		return nil, fail(payment.CodeStockUnavailable, err)
	}
	number, err := s.numbers.NextOrderNumber(ctx)
	if err != nil {
		s.release(ctx, c.Lines)
		return nil, fail(payment.CodeFinalizeFailed, errors.Wrap(err, "mint order number"))
	}

	// The order is stored as initiated and only completed once the ledger
	// row is captured, so a failed capture moves it along initiated -> failed.
	o := s.newOrder(tx.UserID, number, c, q, pricing)
	o.PaymentMethod = PaymentGateway
	o.PaymentStatus = PaymentInitiated
	o.Gateway = GatewayDetails{
		OrderID:   conf.GatewayOrderID,
		PaymentID: conf.PaymentID,
		Signature: conf.Signature,
	}
	if err := s.orders.Create(ctx, o); err != nil {
		s.release(ctx, c.Lines)
		return nil, fail(payment.CodeFinalizeFailed, errors.Wrap(err, "create order"))
	}

	if _, err := s.payments.Capture(ctx, tx, o.ID); err != nil {
		s.abandon(ctx, o)
		return nil, fail(payment.CodeFinalizeFailed, err)
	}
	completed, err := s.orders.UpdatePaymentStatus(context.WithoutCancel(ctx), o.ID, []PaymentStatus{PaymentInitiated}, PaymentCompleted)
	if err != nil {
		// The payment is captured; the order is reconciled by hand.
		lg.Error("Failed to mark order payment completed", zap.String("order_id", o.ID), zap.Error(err))
	} else {
		o = completed
	}
	s.created.Add(ctx, 1, metric.WithAttributes(attribute.String("payment_method", string(PaymentGateway))))

	if q != nil {
		s.recordPaidUsage(ctx, o, q)
	}
	return o, nil
}

// recordPaidUsage records coupon usage for a paid order. The customer has
// already paid, so failures are logged and the order stands.
func (s *Service) recordPaidUsage(ctx context.Context, o *Order, q *coupon.Quote) {
	res, err := s.coupons.RecordUsage(ctx, coupon.UsageRequest{
		CouponID:   q.CouponID,
		UserID:     o.UserID,
		OrderID:    o.ID,
		OrderTotal: o.Total,
		Discount:   o.Discount,
	})
	if err != nil {
		zctx.From(ctx).Warn("Coupon usage not recorded for paid order",
			zap.String("order_id", o.ID),
			zap.String("coupon_code", q.Code),
			zap.Error(err),
		)
		return
	}
	if res.AlreadyRecorded {
		zctx.From(ctx).Debug("Coupon usage already recorded", zap.String("order_id", o.ID))
	}
}

// RefundRequest describes an administrator refund.
type RefundRequest struct {
	OrderID string
	Amount  decimal.NullDecimal
	Reason  string
}

// RefundResult is the refunded ledger row and the order afterwards.
type RefundResult struct {
	Transaction *payment.Transaction
	Order       *Order
}

// Refund returns the captured payment of an order. The order's payment
// moves to refunded, and an order that has not shipped is cancelled with its
// stock returned.
func (s *Service) Refund(ctx context.Context, actor auth.Principal, req RefundRequest) (*RefundResult, error) {
	if !actor.Admin {
		return nil, auth.ErrForbidden
	}
	o, err := s.Get(ctx, actor, req.OrderID)
	if err != nil {
		return nil, err
	}
	if !o.PaymentStatus.CanTransitionTo(PaymentRefunded) {
		return nil, &TransitionError{Kind: "payment status", From: string(o.PaymentStatus), To: string(PaymentRefunded)}
	}

	notes := map[string]string{"order_id": o.ID, "order_number": o.DisplayNumber}
	if req.Reason != "" {
		notes["reason"] = req.Reason
	}
	tx, err := s.payments.Refund(ctx, payment.RefundRequest{
		OrderID: o.ID,
		Amount:  req.Amount,
		Notes:   notes,
	})
	if err != nil {
		return nil, err
	}

	// The money is already returned; from here on only log.
	ctx = context.WithoutCancel(ctx)
	lg := zctx.From(ctx).With(zap.String("order_id", o.ID))
	if updated, err := s.orders.UpdatePaymentStatus(ctx, o.ID, []PaymentStatus{PaymentCompleted}, PaymentRefunded); err != nil {
		lg.Error("Failed to mark order refunded", zap.Error(err))
	} else {
		o = updated
	}
	if o.Status.Editable() {
		cancelled, err := s.orders.UpdateStatus(ctx, o.ID, editableStatuses, StatusCancelled)
		switch {
		case err == nil:
			o = cancelled
			if err := s.stock.Restore(ctx, o.Lines()); err != nil {
				lg.Error("Failed to restore stock for refunded order", zap.Error(err))
			}
			s.cancellations.Add(ctx, 1)
		case errors.Is(err, ErrStatusConflict):
		default:
			lg.Error("Failed to cancel refunded order", zap.Error(err))
		}
	}
	return &RefundResult{Transaction: tx, Order: o}, nil
}
