package payment

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// GatewayOrder is the remote intent created by a Gateway.
type GatewayOrder struct {
	ID          string
	AmountMinor int64
	Currency    string
}

// GatewayRefund is the gateway's answer to a refund request.
type GatewayRefund struct {
	ID     string
	Status string
}

// Gateway is the remote payment provider.
type Gateway interface {
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*GatewayOrder, error)
	Capture(ctx context.Context, paymentID string, amountMinor int64, currency string) error
	Refund(ctx context.Context, paymentID string, amountMinor int64, notes map[string]string) (*GatewayRefund, error)
}

// Config controls the payment service.
type Config struct {
	// KeySecret is the shared secret used to verify confirmation signatures.
	KeySecret string
	Currency  string
	// AutoCapture is set when the gateway captures payments on its own.
	AutoCapture bool
}

// Service implements the gateway adapter on top of the ledger.
type Service struct {
	repo Repository
	gw   Gateway
	cfg  Config
	now  func() time.Time

	// gwFails counts gateway calls failed in a row; gwLastErr is the latest.
	gwFails   atomic.Int32
	gwLastErr atomic.Pointer[UpstreamError]
}

// gatewayFailureThreshold is how many gateway calls in a row must fail
// before CheckGateway reports the gateway down.
const gatewayFailureThreshold = 3

// NewService creates a payment Service.
func NewService(repo Repository, gw Gateway, cfg Config) *Service {
	if cfg.Currency == "" {
		cfg.Currency = "INR"
	}
	return &Service{repo: repo, gw: gw, cfg: cfg, now: time.Now}
}

// upstream records the outcome of a gateway call. A failure is returned
// wrapped as *UpstreamError.
func (s *Service) upstream(op string, err error) error {
	if err == nil {
		s.gwFails.Store(0)
		return nil
	}
	ue := &UpstreamError{Op: op, Err: err}
	s.gwFails.Add(1)
	s.gwLastErr.Store(ue)
	return ue
}

// CheckGateway reports the gateway unhealthy once several calls in a row
// have failed. The gateway has no status endpoint, so the check is passive:
// it never calls the gateway itself.
func (s *Service) CheckGateway(context.Context) error {
	if n := s.gwFails.Load(); n >= gatewayFailureThreshold {
		return errors.Wrapf(s.gwLastErr.Load(), "%d gateway calls failed in a row", n)
	}
	return nil
}

// ToMinor converts an amount to minor currency units.
func ToMinor(amount decimal.Decimal) int64 {
	return amount.Round(2).Shift(2).IntPart()
}

// IntentRequest describes a payment intent to create.
type IntentRequest struct {
	UserID   string
	Amount   decimal.Decimal
	Receipt  string
	Metadata []byte
}

// CreateIntent opens a gateway order for the amount and records it in the
// ledger with status created.
func (s *Service) CreateIntent(ctx context.Context, req IntentRequest) (*Transaction, error) {
	if !req.Amount.IsPositive() {
		return nil, &InvalidAmountError{Reason: "must be positive"}
	}
	receipt := req.Receipt
	if receipt == "" {
		receipt = "rcpt_" + uuid.NewString()[:8]
	}

	gwOrder, err := s.gw.CreateOrder(ctx, ToMinor(req.Amount), s.cfg.Currency, receipt)
	if err := s.upstream("create order", err); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	tx := &Transaction{
		ID:             uuid.NewString(),
		GatewayOrderID: gwOrder.ID,
		UserID:         req.UserID,
		Amount:         req.Amount.Round(2),
		Currency:       s.cfg.Currency,
		Status:         StatusCreated,
		Metadata:       req.Metadata,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Create(ctx, tx); err != nil {
		return nil, errors.Wrap(err, "record transaction")
	}
	return tx, nil
}

// VerifyConfirmation checks the gateway signature for a payment.
func (s *Service) VerifyConfirmation(gatewayOrderID, paymentID, signature string) error {
	if !VerifySignature(s.cfg.KeySecret, gatewayOrderID, paymentID, signature) {
		return ErrSignatureMismatch
	}
	return nil
}

// Confirmation is the client's proof of payment.
type Confirmation struct {
	GatewayOrderID string
	PaymentID      string
	Signature      string
}

// Authorize runs the first steps of finalizing a payment: the ledger row
// must exist and the signature must verify. It then claims the row by
// moving it from created or failed to authorized, so exactly one
// confirmation proceeds. A mismatched signature marks the row failed.
//
// When an earlier confirmation already finalized the row, the row is
// returned together with ErrAlreadyFinalized.
func (s *Service) Authorize(ctx context.Context, c Confirmation) (*Transaction, error) {
	if _, err := s.repo.FindByGatewayOrderID(ctx, c.GatewayOrderID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "lookup transaction")
	}

	if err := s.VerifyConfirmation(c.GatewayOrderID, c.PaymentID, c.Signature); err != nil {
		_, ferr := s.repo.Transition(ctx, c.GatewayOrderID,
			[]Status{StatusCreated, StatusFailed},
			Update{
				Status:           StatusFailed,
				PaymentID:        c.PaymentID,
				ErrorCode:        CodeSignatureMismatch,
				ErrorDescription: "signature verification failed",
			})
		if ferr != nil && !errors.Is(ferr, ErrStateConflict) {
			zctx.From(ctx).Warn("Failed to mark transaction failed",
				zap.String("gateway_order_id", c.GatewayOrderID),
				zap.Error(ferr),
			)
		}
		return nil, err
	}

	claimed, err := s.repo.Transition(ctx, c.GatewayOrderID,
		[]Status{StatusCreated, StatusFailed},
		Update{
			Status:    StatusAuthorized,
			PaymentID: c.PaymentID,
			Signature: c.Signature,
		})
	if err == nil {
		return claimed, nil
	}
	if !errors.Is(err, ErrStateConflict) {
		return nil, errors.Wrap(err, "claim transaction")
	}

	current, err := s.repo.FindByGatewayOrderID(ctx, c.GatewayOrderID)
	if err != nil {
		return nil, errors.Wrap(err, "reload transaction")
	}
	switch current.Status {
	case StatusCaptured, StatusRefunded:
		return current, ErrAlreadyFinalized
	case StatusAuthorized:
		return nil, ErrConfirmationInProgress
	default:
		// Lost a race with a concurrent failure; the caller may retry.
		return nil, ErrConfirmationInProgress
	}
}

// Fail releases an authorized row back to failed so the confirmation can be
// retried. Rows that are no longer authorized are left alone.
func (s *Service) Fail(ctx context.Context, gatewayOrderID, code, description string) error {
	_, err := s.repo.Transition(ctx, gatewayOrderID,
		[]Status{StatusAuthorized},
		Update{
			Status:           StatusFailed,
			ErrorCode:        code,
			ErrorDescription: description,
		})
	if err != nil && !errors.Is(err, ErrStateConflict) {
		return errors.Wrap(err, "mark transaction failed")
	}
	return nil
}

// Capture collects an authorized payment and links the ledger row to the
// order created for it. Gateways that capture on their own are not called.
func (s *Service) Capture(ctx context.Context, tx *Transaction, orderID string) (*Transaction, error) {
	if !s.cfg.AutoCapture {
		err := s.gw.Capture(ctx, tx.PaymentID, ToMinor(tx.Amount), tx.Currency)
		if err := s.upstream("capture", err); err != nil {
			return nil, err
		}
	}
	captured, err := s.repo.Transition(ctx, tx.GatewayOrderID,
		[]Status{StatusAuthorized},
		Update{Status: StatusCaptured, OrderID: orderID})
	if err != nil {
		return nil, errors.Wrap(err, "mark transaction captured")
	}
	return captured, nil
}

// RefundRequest describes a refund of an order's captured payment.
type RefundRequest struct {
	OrderID string
	// Amount defaults to the full captured amount.
	Amount decimal.NullDecimal
	Notes  map[string]string
}

// Refund returns money for the order's captured payment and moves the
// ledger row to refunded.
func (s *Service) Refund(ctx context.Context, req RefundRequest) (*Transaction, error) {
	tx, err := s.repo.FindByOrderID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "lookup transaction")
	}
	if tx.Status != StatusCaptured {
		return nil, ErrNotRefundable
	}

	amount := tx.Amount
	if req.Amount.Valid {
		amount = req.Amount.Decimal.Round(2)
	}
	switch {
	case !amount.IsPositive():
		return nil, &InvalidAmountError{Reason: "must be positive"}
	case amount.GreaterThan(tx.Amount):
		return nil, &InvalidAmountError{Reason: "exceeds captured amount"}
	}

	refund, err := s.gw.Refund(ctx, tx.PaymentID, ToMinor(amount), req.Notes)
	if err := s.upstream("refund", err); err != nil {
		return nil, err
	}

	refunded, err := s.repo.Transition(ctx, tx.GatewayOrderID,
		[]Status{StatusCaptured},
		Update{
			Status:       StatusRefunded,
			RefundID:     refund.ID,
			RefundAmount: decimal.NewNullDecimal(amount),
			RefundStatus: refund.Status,
		})
	if err != nil {
		if errors.Is(err, ErrStateConflict) {
			return nil, ErrNotRefundable
		}
		return nil, errors.Wrap(err, "mark transaction refunded")
	}
	return refunded, nil
}

// FindByOrderID returns the ledger row linked to an order.
func (s *Service) FindByOrderID(ctx context.Context, orderID string) (*Transaction, error) {
	tx, err := s.repo.FindByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "lookup transaction")
	}
	return tx, nil
}

// List returns ledger rows matching f and the total match count.
func (s *Service) List(ctx context.Context, f ListFilter) ([]Transaction, int, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	if f.Status != "" && !f.Status.Valid() {
		return nil, 0, ErrInvalidStatus
	}
	txs, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, 0, errors.Wrap(err, "list transactions")
	}
	return txs, total, nil
}

// Stats summarises the ledger between from and to. A zero range covers the
// last 30 days.
func (s *Service) Stats(ctx context.Context, from, to time.Time) (*Stats, error) {
	if to.IsZero() {
		to = s.now().UTC()
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -30)
	}
	st, err := s.repo.Stats(ctx, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "transaction stats")
	}
	st.From, st.To = from, to
	return st, nil
}
