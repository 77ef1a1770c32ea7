package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/orderflow/internal/domain/inventory"
)

// PaymentMethod is how the customer pays for an order.
type PaymentMethod string

const (
	PaymentCOD     PaymentMethod = "cod"
	PaymentGateway PaymentMethod = "gateway"
)

var (
	// ErrNotFound is returned when no order matches.
	ErrNotFound = errors.New("order not found")
	// ErrEmptyItems is returned for carts without lines.
	ErrEmptyItems = errors.New("items required")
	// ErrStatusConflict is returned by repositories when a conditional update
	// matched no order in the expected states.
	ErrStatusConflict = errors.New("order status changed")
	// ErrDuplicate is returned by repositories when the order id or number
	// is already taken.
	ErrDuplicate = errors.New("order already exists")
	// ErrInvoiceExists is returned by repositories when the invoice number is
	// already used by another order.
	ErrInvoiceExists = errors.New("invoice number already assigned")
	// ErrNotEditable is returned when changing an order that has shipped or
	// was cancelled.
	ErrNotEditable = errors.New("order can no longer be modified")
	// ErrNotInvoiceable is returned when requesting an invoice for a
	// cancelled order.
	ErrNotInvoiceable = errors.New("cancelled orders have no invoice")
	// ErrCouponNotApplied is returned when recording usage of a coupon the
	// order was not placed with.
	ErrCouponNotApplied = errors.New("coupon was not applied to this order")
)

// AmountMismatchError reports a total that differs from the recomputed one.
type AmountMismatchError struct {
	Expected decimal.Decimal
	Received decimal.Decimal
}

func (e *AmountMismatchError) Error() string {
	return fmt.Sprintf("amount mismatch: expected %s, received %s",
		e.Expected.StringFixed(2), e.Received.StringFixed(2))
}

// ValidationError reports malformed order input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Order is a placed order with its priced lines and lifecycle state.
type Order struct {
	ID            string
	Number        int64
	DisplayNumber string
	// InvoiceNumber is set once and never changes afterwards.
	InvoiceNumber *string
	UserID        string
	Items         []Item

	Subtotal   decimal.Decimal
	Discount   decimal.Decimal
	CouponID   *string
	CouponCode *string
	Tax        decimal.Decimal
	Shipping   decimal.Decimal
	Total      decimal.Decimal

	ShippingAddress Address
	PaymentMethod   PaymentMethod
	PaymentStatus   PaymentStatus
	Status          Status
	Gateway         GatewayDetails

	AdminNote          string
	AdminNoteUpdatedAt *time.Time
	AdminNoteUpdatedBy string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Item is an order line with prices captured at purchase time.
type Item struct {
	ProductID string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	TaxRate   decimal.Decimal
	// TaxAmount is the tax charged per unit.
	TaxAmount decimal.Decimal
}

// Address is where the order ships.
type Address struct {
	Address string
	City    string
	State   string
	Pincode string
	Phone   string
}

// Validate checks that every field is present.
func (a Address) Validate() error {
	for _, f := range []struct{ name, value string }{
		{"address", a.Address},
		{"city", a.City},
		{"state", a.State},
		{"pincode", a.Pincode},
		{"phone", a.Phone},
	} {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: "shippingAddress." + f.name, Reason: "required"}
		}
	}
	return nil
}

// GatewayDetails records the payment confirmation the order was created from.
type GatewayDetails struct {
	OrderID   string
	PaymentID string
	Signature string
}

// Lines returns the inventory lines of the order.
func (o *Order) Lines() []inventory.Line {
	lines := make([]inventory.Line, len(o.Items))
	for i, it := range o.Items {
		lines[i] = inventory.Line{ProductID: it.ProductID, Quantity: it.Quantity}
	}
	return lines
}

// TotalConsistent reports whether Total matches its components within one
// minor currency unit.
func (o *Order) TotalConsistent() bool {
	want := o.Subtotal.Sub(o.Discount).Add(o.Tax).Add(o.Shipping)
	return want.Sub(o.Total).Abs().LessThanOrEqual(Tolerance)
}

// ListFilter selects a page of orders. An empty UserID lists all users.
type ListFilter struct {
	UserID string
	Status Status
	Limit  int
	Offset int
}

// Repository persists orders. Updates are conditional on the current state
// so concurrent transitions cannot both apply.
type Repository interface {
	Create(ctx context.Context, o *Order) error
	Get(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context, f ListFilter) ([]Order, int, error)

	// UpdateStatus sets the fulfillment status if the current one is in from.
	UpdateStatus(ctx context.Context, id string, from []Status, to Status) (*Order, error)
	// UpdatePaymentStatus sets the payment status if the current one is in from.
	UpdatePaymentStatus(ctx context.Context, id string, from []PaymentStatus, to PaymentStatus) (*Order, error)
	// UpdateAddress replaces the shipping address if the status is in from.
	UpdateAddress(ctx context.Context, id string, from []Status, addr Address) (*Order, error)
	UpdateAdminNote(ctx context.Context, id, note, by string, at time.Time) (*Order, error)
	// AssignInvoiceNumber sets the invoice number only if none is set yet and
	// returns the order as stored afterwards.
	AssignInvoiceNumber(ctx context.Context, id, number string) (*Order, error)
}
