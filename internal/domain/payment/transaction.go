package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Status is the ledger state of a gateway payment.
type Status string

const (
	StatusCreated    Status = "created"
	StatusAuthorized Status = "authorized"
	StatusCaptured   Status = "captured"
	StatusFailed     Status = "failed"
	StatusRefunded   Status = "refunded"
)

// Valid reports whether s is a known ledger status.
func (s Status) Valid() bool {
	switch s {
	case StatusCreated, StatusAuthorized, StatusCaptured, StatusFailed, StatusRefunded:
		return true
	}
	return false
}

// Error codes stored on failed ledger rows.
const (
	CodeSignatureMismatch = "SIGNATURE_MISMATCH"
	CodeAmountMismatch    = "AMOUNT_MISMATCH"
	CodeStockUnavailable  = "STOCK_UNAVAILABLE"
	CodeCartInvalid       = "CART_INVALID"
	CodeFinalizeFailed    = "FINALIZE_FAILED"
)

var (
	// ErrNotFound is returned when no ledger row matches.
	ErrNotFound = errors.New("transaction not found")
	// ErrSignatureMismatch is returned when a confirmation signature does not verify.
	ErrSignatureMismatch = errors.New("payment signature mismatch")
	// ErrConfirmationInProgress is returned when another confirmation holds the row.
	ErrConfirmationInProgress = errors.New("payment confirmation already in progress")
	// ErrAlreadyFinalized is returned by Authorize when the row was captured
	// or refunded by an earlier confirmation.
	ErrAlreadyFinalized = errors.New("payment already finalized")
	// ErrNotRefundable is returned when refunding a transaction that is not captured.
	ErrNotRefundable = errors.New("transaction is not in a refundable state")
	// ErrDuplicate is returned when a gateway order id is recorded twice.
	ErrDuplicate = errors.New("transaction already exists")
	// ErrInvalidStatus is returned for unknown status filters.
	ErrInvalidStatus = errors.New("unknown transaction status")
	// ErrStateConflict is returned by repositories when a conditional
	// transition matched no row in the expected states.
	ErrStateConflict = errors.New("transaction state changed")
)

// UpstreamError wraps a failure reported by the payment gateway.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("payment gateway %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// InvalidAmountError reports an unusable payment or refund amount.
type InvalidAmountError struct {
	Reason string
}

func (e *InvalidAmountError) Error() string {
	return "invalid amount: " + e.Reason
}

// Transaction is one row of the payment ledger. It outlives any order and is
// the audit trail for attempts that never produced one.
type Transaction struct {
	ID             string
	GatewayOrderID string
	OrderID        *string
	UserID         string
	Amount         decimal.Decimal
	Currency       string
	Status         Status

	PaymentID    string
	Signature    string
	RefundID     string
	RefundAmount decimal.NullDecimal
	RefundStatus string

	// Metadata is a JSON object owned by the caller of CreateIntent.
	Metadata []byte

	ErrorCode        string
	ErrorDescription string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Update lists the fields a transition sets. Empty fields are left unchanged.
type Update struct {
	Status           Status
	OrderID          string
	PaymentID        string
	Signature        string
	RefundID         string
	RefundAmount     decimal.NullDecimal
	RefundStatus     string
	ErrorCode        string
	ErrorDescription string
}

// ListFilter narrows List results. Zero values match everything.
type ListFilter struct {
	Status Status
	UserID string
	From   time.Time
	To     time.Time
	Limit  int
	Offset int
}

// StatusTotal aggregates rows in one status.
type StatusTotal struct {
	Status Status
	Count  int
	Amount decimal.Decimal
}

// DailyTotal aggregates rows created on one UTC day.
type DailyTotal struct {
	Day    time.Time
	Count  int
	Amount decimal.Decimal
}

// Stats summarises ledger activity in a time range.
type Stats struct {
	From     time.Time
	To       time.Time
	ByStatus []StatusTotal
	Daily    []DailyTotal
}

// Repository persists the payment ledger.
type Repository interface {
	Create(ctx context.Context, tx *Transaction) error
	FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*Transaction, error)
	// FindByOrderID returns the most recent row linked to the order.
	FindByOrderID(ctx context.Context, orderID string) (*Transaction, error)

	// Transition applies u to the row only while its status is one of from.
	// It returns ErrStateConflict when the row exists in another status.
	Transition(ctx context.Context, gatewayOrderID string, from []Status, u Update) (*Transaction, error)

	List(ctx context.Context, f ListFilter) ([]Transaction, int, error)
	Stats(ctx context.Context, from, to time.Time) (*Stats, error)
}
