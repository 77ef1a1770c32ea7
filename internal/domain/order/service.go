package order

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"

	"github.com/xenking/orderflow/internal/domain/auth"
	"github.com/xenking/orderflow/internal/domain/coupon"
	"github.com/xenking/orderflow/internal/domain/inventory"
	"github.com/xenking/orderflow/internal/domain/payment"
	"github.com/xenking/orderflow/internal/domain/product"
	"github.com/xenking/orderflow/internal/domain/sequence"
)

// MaxAdminNoteLength is the longest admin note accepted, in characters.
const MaxAdminNoteLength = 1000

// Stock reserves and returns inventory.
type Stock interface {
	Check(ctx context.Context, lines []inventory.Line) ([]product.Product, error)
	Reserve(ctx context.Context, lines []inventory.Line) ([]product.Product, error)
	Restore(ctx context.Context, lines []inventory.Line) error
}

// Sequencer mints order and invoice numbers.
type Sequencer interface {
	NextOrderNumber(ctx context.Context) (int64, error)
	NextInvoiceNumber(ctx context.Context, year int) (string, error)
}

// Payments is the gateway adapter and ledger.
type Payments interface {
	CreateIntent(ctx context.Context, req payment.IntentRequest) (*payment.Transaction, error)
	Authorize(ctx context.Context, c payment.Confirmation) (*payment.Transaction, error)
	Fail(ctx context.Context, gatewayOrderID, code, description string) error
	Capture(ctx context.Context, tx *payment.Transaction, orderID string) (*payment.Transaction, error)
	Refund(ctx context.Context, req payment.RefundRequest) (*payment.Transaction, error)
}

var (
	_ Stock     = (*inventory.Ledger)(nil)
	_ Sequencer = (*sequence.Generator)(nil)
	_ Payments  = (*payment.Service)(nil)
)

// Option configures a Service.
type Option func(*Service)

// WithShippingPolicy overrides the default shipping policy.
func WithShippingPolicy(p ShippingPolicy) Option {
	return func(s *Service) { s.shipping = p }
}

// WithMeterProvider records order metrics through mp.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(s *Service) { s.meterProvider = mp }
}

// Service implements the order aggregate and the flows that create orders.
type Service struct {
	orders   Repository
	stock    Stock
	coupons  coupon.Redeemer
	numbers  Sequencer
	payments Payments
	shipping ShippingPolicy
	now      func() time.Time

	meterProvider metric.MeterProvider
	created       metric.Int64Counter
	confirmations metric.Int64Counter
	cancellations metric.Int64Counter
}

// NewService creates an order Service with the required domain dependencies.
func NewService(
	orders Repository,
	stock Stock,
	coupons coupon.Redeemer,
	numbers Sequencer,
	payments Payments,
	opts ...Option,
) (*Service, error) {
	s := &Service{
		orders:        orders,
		stock:         stock,
		coupons:       coupons,
		numbers:       numbers,
		payments:      payments,
		shipping:      DefaultShippingPolicy(),
		now:           time.Now,
		meterProvider: noop.NewMeterProvider(),
	}
	for _, o := range opts {
		o(s)
	}

	meter := s.meterProvider.Meter("orderflow/order")
	var err error
	if s.created, err = meter.Int64Counter("orders.created",
		metric.WithDescription("Orders placed, by payment method"),
	); err != nil {
		return nil, errors.Wrap(err, "orders.created counter")
	}
	if s.confirmations, err = meter.Int64Counter("orders.payment_confirmations",
		metric.WithDescription("Payment confirmations, by outcome"),
	); err != nil {
		return nil, errors.Wrap(err, "orders.payment_confirmations counter")
	}
	if s.cancellations, err = meter.Int64Counter("orders.cancelled",
		metric.WithDescription("Orders cancelled"),
	); err != nil {
		return nil, errors.Wrap(err, "orders.cancelled counter")
	}
	return s, nil
}

// quote prices the checkout against current catalog products, validating the
// coupon when one is given.
func (s *Service) quote(ctx context.Context, userID string, c Checkout, products []product.Product) (*coupon.Quote, Pricing, error) {
	var q *coupon.Quote
	discount := decimal.Zero
	if c.CouponCode != "" {
		var err error
		q, err = s.coupons.Validate(ctx, coupon.ValidateRequest{
			Code:      c.CouponCode,
			UserID:    userID,
			CartTotal: Subtotal(c.Lines, products),
			Items:     CouponItems(c.Lines, products),
		})
		if err != nil {
			return nil, Pricing{}, err
		}
		discount = q.Discount
	}
	return q, Price(c.Lines, products, discount, s.shipping), nil
}

// newOrder builds an order from a priced cart.
func (s *Service) newOrder(userID string, number int64, c Checkout, q *coupon.Quote, p Pricing) *Order {
	now := s.now().UTC()
	o := &Order{
		ID:              uuid.NewString(),
		Number:          number,
		DisplayNumber:   sequence.FormatOrderNumber(number),
		UserID:          userID,
		Items:           p.Items,
		Subtotal:        p.Subtotal,
		Discount:        p.Discount,
		Tax:             p.Tax,
		Shipping:        p.Shipping,
		Total:           p.Total,
		ShippingAddress: c.Address,
		Status:          StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if q != nil {
		id, code := q.CouponID, q.Code
		o.CouponID = &id
		o.CouponCode = &code
	}
	return o
}

// release returns reserved stock after a failed flow. It must not be
// skipped when the request is cancelled.
func (s *Service) release(ctx context.Context, lines []inventory.Line) {
	if err := s.stock.Restore(context.WithoutCancel(ctx), lines); err != nil {
		zctx.From(ctx).Error("Failed to release reserved stock",
			zap.Int("lines", len(lines)),
			zap.Error(err),
		)
	}
}

// CreateCOD places a cash on delivery order. Stock is reserved first, then
// the coupon is validated, the order number minted and the order stored. A
// coupon whose caps are hit between validation and recording cancels the
// order again.
func (s *Service) CreateCOD(ctx context.Context, actor auth.Principal, c Checkout) (*Order, error) {
	if actor.UserID == "" {
		return nil, auth.ErrUnauthenticated
	}
	c.CouponCode = coupon.NormalizeCode(c.CouponCode)
	if err := c.Validate(); err != nil {
		return nil, err
	}

	products, err := s.stock.Reserve(ctx, c.Lines)
	if err != nil {
		return nil, err
	}

	q, pricing, err := s.quote(ctx, actor.UserID, c, products)
	if err != nil {
		s.release(ctx, c.Lines)
		return nil, err
	}

	number, err := s.numbers.NextOrderNumber(ctx)
	if err != nil {
		s.release(ctx, c.Lines)
		return nil, errors.Wrap(err, "mint order number")
	}

	o := s.newOrder(actor.UserID, number, c, q, pricing)
	o.PaymentMethod = PaymentCOD
	o.PaymentStatus = PaymentPending
	if err := s.orders.Create(ctx, o); err != nil {
		s.release(ctx, c.Lines)
		return nil, errors.Wrap(err, "create order")
	}

	if q != nil {
		_, err := s.coupons.RecordUsage(ctx, coupon.UsageRequest{
			CouponID:   q.CouponID,
			UserID:     actor.UserID,
			OrderID:    o.ID,
			OrderTotal: o.Total,
			Discount:   o.Discount,
		})
		if err != nil {
			s.abandon(ctx, o)
			return nil, err
		}
	}

	s.created.Add(ctx, 1, metric.WithAttributes(attribute.String("payment_method", string(PaymentCOD))))
	return o, nil
}

// abandon cancels a freshly stored order whose flow failed afterwards and
// returns its stock.
func (s *Service) abandon(ctx context.Context, o *Order) {
	ctx = context.WithoutCancel(ctx)
	lg := zctx.From(ctx).With(zap.String("order_id", o.ID))
	if _, err := s.orders.UpdateStatus(ctx, o.ID, []Status{StatusPending}, StatusCancelled); err != nil {
		lg.Error("Failed to cancel abandoned order", zap.Error(err))
		return
	}
	if o.PaymentStatus == PaymentInitiated {
		if _, err := s.orders.UpdatePaymentStatus(ctx, o.ID, []PaymentStatus{PaymentInitiated}, PaymentFailed); err != nil {
			lg.Warn("Failed to mark abandoned order payment failed", zap.Error(err))
		}
	}
	s.release(ctx, o.Lines())
}

// Get returns an order the actor may see.
func (s *Service) Get(ctx context.Context, actor auth.Principal, id string) (*Order, error) {
	o, err := s.orders.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrapf(err, "get order %s", id)
	}
	if !actor.CanAccess(o.UserID) {
		return nil, auth.ErrForbidden
	}
	return o, nil
}

// List returns a page of orders. Non-admin actors only see their own.
func (s *Service) List(ctx context.Context, actor auth.Principal, f ListFilter) ([]Order, int, error) {
	if !actor.Admin {
		if actor.UserID == "" {
			return nil, 0, auth.ErrUnauthenticated
		}
		f.UserID = actor.UserID
	}
	if f.Status != "" && !f.Status.Valid() {
		return nil, 0, &InvalidStatusError{Value: string(f.Status)}
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	orders, total, err := s.orders.List(ctx, f)
	if err != nil {
		return nil, 0, errors.Wrap(err, "list orders")
	}
	return orders, total, nil
}

// Cancel moves a pending or processing order to cancelled and returns its
// stock. Only the transition that actually cancels the order restores stock,
// so a repeated cancel is rejected and never restores twice.
func (s *Service) Cancel(ctx context.Context, actor auth.Principal, id string) (*Order, error) {
	o, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if !o.Status.CanTransitionTo(StatusCancelled) {
		return nil, &TransitionError{Kind: "status", From: string(o.Status), To: string(StatusCancelled)}
	}

	cancelled, err := s.orders.UpdateStatus(ctx, id, editableStatuses, StatusCancelled)
	if err != nil {
		if errors.Is(err, ErrStatusConflict) {
			return nil, s.transitionConflict(ctx, id, StatusCancelled)
		}
		return nil, errors.Wrap(err, "cancel order")
	}

	if err := s.stock.Restore(context.WithoutCancel(ctx), cancelled.Lines()); err != nil {
		// The order stays cancelled; stock must be reconciled by hand.
		zctx.From(ctx).Error("Failed to restore stock for cancelled order",
			zap.String("order_id", id),
			zap.Error(err),
		)
	}
	s.cancellations.Add(ctx, 1)
	return cancelled, nil
}

func (s *Service) transitionConflict(ctx context.Context, id string, to Status) error {
	current, err := s.orders.Get(ctx, id)
	if err != nil {
		return errors.Wrap(err, "reload order")
	}
	return &TransitionError{Kind: "status", From: string(current.Status), To: string(to)}
}

// UpdateStatus moves the order along the fulfillment state machine.
func (s *Service) UpdateStatus(ctx context.Context, actor auth.Principal, id string, to Status) (*Order, error) {
	if !actor.Admin {
		return nil, auth.ErrForbidden
	}
	if !to.Valid() {
		return nil, &InvalidStatusError{Value: string(to)}
	}
	if to == StatusCancelled {
		return s.Cancel(ctx, actor, id)
	}

	o, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if !o.Status.CanTransitionTo(to) {
		return nil, &TransitionError{Kind: "status", From: string(o.Status), To: string(to)}
	}
	updated, err := s.orders.UpdateStatus(ctx, id, []Status{o.Status}, to)
	if err != nil {
		if errors.Is(err, ErrStatusConflict) {
			return nil, s.transitionConflict(ctx, id, to)
		}
		return nil, errors.Wrap(err, "update order status")
	}
	return updated, nil
}

// UpdatePaymentStatus moves the order along the payment state machine.
func (s *Service) UpdatePaymentStatus(ctx context.Context, actor auth.Principal, id string, to PaymentStatus) (*Order, error) {
	if !actor.Admin {
		return nil, auth.ErrForbidden
	}
	if !to.Valid() {
		return nil, &InvalidStatusError{Value: string(to)}
	}
	o, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if !o.PaymentStatus.CanTransitionTo(to) {
		return nil, &TransitionError{Kind: "payment status", From: string(o.PaymentStatus), To: string(to)}
	}
	updated, err := s.orders.UpdatePaymentStatus(ctx, id, []PaymentStatus{o.PaymentStatus}, to)
	if err != nil {
		if errors.Is(err, ErrStatusConflict) {
			current, gerr := s.orders.Get(ctx, id)
			if gerr != nil {
				return nil, errors.Wrap(gerr, "reload order")
			}
			return nil, &TransitionError{Kind: "payment status", From: string(current.PaymentStatus), To: string(to)}
		}
		return nil, errors.Wrap(err, "update payment status")
	}
	return updated, nil
}

// EditAddress replaces the shipping address while the order is pending or
// processing.
func (s *Service) EditAddress(ctx context.Context, actor auth.Principal, id string, addr Address) (*Order, error) {
	addr = Address{
		Address: strings.TrimSpace(addr.Address),
		City:    strings.TrimSpace(addr.City),
		State:   strings.TrimSpace(addr.State),
		Pincode: strings.TrimSpace(addr.Pincode),
		Phone:   strings.TrimSpace(addr.Phone),
	}
	if err := addr.Validate(); err != nil {
		return nil, err
	}
	o, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if !o.Status.Editable() {
		return nil, ErrNotEditable
	}
	updated, err := s.orders.UpdateAddress(ctx, id, editableStatuses, addr)
	if err != nil {
		if errors.Is(err, ErrStatusConflict) {
			return nil, ErrNotEditable
		}
		return nil, errors.Wrap(err, "update address")
	}
	return updated, nil
}

// UpdateAdminNote sets the administrator's note on an order. An empty note
// clears it.
func (s *Service) UpdateAdminNote(ctx context.Context, actor auth.Principal, id, note string) (*Order, error) {
	if !actor.Admin {
		return nil, auth.ErrForbidden
	}
	note = strings.TrimSpace(note)
	if utf8.RuneCountInString(note) > MaxAdminNoteLength {
		return nil, &ValidationError{Field: "adminNote", Reason: "must be at most 1000 characters"}
	}
	o, err := s.orders.UpdateAdminNote(ctx, id, note, actor.UserID, s.now().UTC())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "update admin note")
	}
	return o, nil
}

// RecordCouponUsage records the redemption of the coupon an order was placed
// with. The user, total and discount always come from the stored order, so a
// caller can neither charge another coupon nor inflate the amounts.
// Recording the same order twice reports AlreadyRecorded.
func (s *Service) RecordCouponUsage(ctx context.Context, actor auth.Principal, couponID, orderID string) (*coupon.UsageResult, error) {
	o, err := s.Get(ctx, actor, orderID)
	if err != nil {
		return nil, err
	}
	if o.CouponID == nil || *o.CouponID != couponID {
		return nil, ErrCouponNotApplied
	}
	return s.coupons.RecordUsage(ctx, coupon.UsageRequest{
		CouponID:   couponID,
		UserID:     o.UserID,
		OrderID:    o.ID,
		OrderTotal: o.Total,
		Discount:   o.Discount,
	})
}
