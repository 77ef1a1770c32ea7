package payment

import (
	"context"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

const testSecret = "test_secret"

type mockLedger struct {
	mu   sync.Mutex
	rows map[string]*Transaction
}

func newMockLedger() *mockLedger {
	return &mockLedger{rows: make(map[string]*Transaction)}
}

func (m *mockLedger) Create(_ context.Context, tx *Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *tx
	m.rows[tx.GatewayOrderID] = &cp
	return nil
}

func (m *mockLedger) FindByGatewayOrderID(_ context.Context, id string) (*Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tx, ok := m.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *tx
	return &cp, nil
}

func (m *mockLedger) FindByOrderID(_ context.Context, orderID string) (*Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, tx := range m.rows {
		if tx.OrderID != nil && *tx.OrderID == orderID {
			cp := *tx
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockLedger) Transition(_ context.Context, id string, from []Status, u Update) (*Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tx, ok := m.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	if !slices.Contains(from, tx.Status) {
		return nil, ErrStateConflict
	}
	tx.Status = u.Status
	if u.OrderID != "" {
		tx.OrderID = &u.OrderID
	}
	if u.PaymentID != "" {
		tx.PaymentID = u.PaymentID
	}
	if u.Signature != "" {
		tx.Signature = u.Signature
	}
	if u.RefundID != "" {
		tx.RefundID = u.RefundID
	}
	if u.RefundAmount.Valid {
		tx.RefundAmount = u.RefundAmount
	}
	if u.RefundStatus != "" {
		tx.RefundStatus = u.RefundStatus
	}
	if u.ErrorCode != "" {
		tx.ErrorCode = u.ErrorCode
		tx.ErrorDescription = u.ErrorDescription
	}
	cp := *tx
	return &cp, nil
}

func (m *mockLedger) List(context.Context, ListFilter) ([]Transaction, int, error) {
	return nil, 0, nil
}

func (m *mockLedger) Stats(context.Context, time.Time, time.Time) (*Stats, error) {
	return &Stats{}, nil
}

type mockGateway struct {
	mu         sync.Mutex
	createErr  error
	captureErr error
	refundErr  error
	lastAmount int64
	captures   int
	refunds    int
}

func (m *mockGateway) CreateOrder(_ context.Context, amountMinor int64, currency, _ string) (*GatewayOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.lastAmount = amountMinor
	return &GatewayOrder{ID: "order_test1", AmountMinor: amountMinor, Currency: currency}, nil
}

func (m *mockGateway) Capture(context.Context, string, int64, string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.captures++
	return m.captureErr
}

func (m *mockGateway) Refund(_ context.Context, _ string, amountMinor int64, _ map[string]string) (*GatewayRefund, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.refundErr != nil {
		return nil, m.refundErr
	}
	m.refunds++
	m.lastAmount = amountMinor
	return &GatewayRefund{ID: "rfnd_1", Status: "processed"}, nil
}

func newTestService(t *testing.T) (*Service, *mockLedger, *mockGateway) {
	t.Helper()
	ledger := newMockLedger()
	gw := &mockGateway{}
	return NewService(ledger, gw, Config{KeySecret: testSecret}), ledger, gw
}

func createIntent(t *testing.T, svc *Service, amount string) *Transaction {
	t.Helper()
	tx, err := svc.CreateIntent(context.Background(), IntentRequest{
		UserID: "u1",
		Amount: decimal.RequireFromString(amount),
	})
	require.NoError(t, err)
	return tx
}

func TestService_CreateIntent(t *testing.T) {
	svc, ledger, gw := newTestService(t)

	tx := createIntent(t, svc, "1190.50")
	assert.Equal(t, StatusCreated, tx.Status)
	assert.Equal(t, "INR", tx.Currency)
	assert.Equal(t, int64(119050), gw.lastAmount)

	stored, err := ledger.FindByGatewayOrderID(context.Background(), tx.GatewayOrderID)
	require.NoError(t, err)
	assert.Equal(t, StatusCreated, stored.Status)

	_, err = svc.CreateIntent(context.Background(), IntentRequest{Amount: decimal.Zero})
	var amountErr *InvalidAmountError
	require.True(t, errors.As(err, &amountErr))
}

func TestService_CreateIntent_GatewayDown(t *testing.T) {
	svc, ledger, gw := newTestService(t)
	gw.createErr = errors.New("503 service unavailable")

	_, err := svc.CreateIntent(context.Background(), IntentRequest{Amount: decimal.NewFromInt(10)})
	var upstream *UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, "create order", upstream.Op)
	assert.Empty(t, ledger.rows)
}

func TestService_CheckGateway(t *testing.T) {
	ctx := context.Background()
	svc, _, gw := newTestService(t)
	require.NoError(t, svc.CheckGateway(ctx))

	gw.mu.Lock()
	gw.createErr = errors.New("503 service unavailable")
	gw.mu.Unlock()
	for i := range gatewayFailureThreshold {
		_, err := svc.CreateIntent(ctx, IntentRequest{Amount: decimal.NewFromInt(10)})
		require.Error(t, err)
		if i < gatewayFailureThreshold-1 {
			assert.NoError(t, svc.CheckGateway(ctx), "healthy after %d failures", i+1)
		}
	}
	err := svc.CheckGateway(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503 service unavailable")

	gw.mu.Lock()
	gw.createErr = nil
	gw.mu.Unlock()
	createIntent(t, svc, "10")
	assert.NoError(t, svc.CheckGateway(ctx))
}

func TestService_Authorize(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown gateway order", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		_, err := svc.Authorize(ctx, Confirmation{GatewayOrderID: "order_missing"})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("bad signature marks row failed", func(t *testing.T) {
		svc, ledger, _ := newTestService(t)
		tx := createIntent(t, svc, "100")

		_, err := svc.Authorize(ctx, Confirmation{
			GatewayOrderID: tx.GatewayOrderID,
			PaymentID:      "pay_1",
			Signature:      "deadbeef",
		})
		require.ErrorIs(t, err, ErrSignatureMismatch)

		stored, _ := ledger.FindByGatewayOrderID(ctx, tx.GatewayOrderID)
		assert.Equal(t, StatusFailed, stored.Status)
		assert.Equal(t, CodeSignatureMismatch, stored.ErrorCode)
	})

	t.Run("good signature claims row", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		tx := createIntent(t, svc, "100")

		claimed, err := svc.Authorize(ctx, Confirmation{
			GatewayOrderID: tx.GatewayOrderID,
			PaymentID:      "pay_1",
			Signature:      Sign(testSecret, tx.GatewayOrderID, "pay_1"),
		})
		require.NoError(t, err)
		assert.Equal(t, StatusAuthorized, claimed.Status)
		assert.Equal(t, "pay_1", claimed.PaymentID)
	})

	t.Run("failed row can be retried", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		tx := createIntent(t, svc, "100")
		conf := Confirmation{
			GatewayOrderID: tx.GatewayOrderID,
			PaymentID:      "pay_1",
			Signature:      Sign(testSecret, tx.GatewayOrderID, "pay_1"),
		}

		_, err := svc.Authorize(ctx, conf)
		require.NoError(t, err)
		require.NoError(t, svc.Fail(ctx, tx.GatewayOrderID, CodeAmountMismatch, "total changed"))

		claimed, err := svc.Authorize(ctx, conf)
		require.NoError(t, err)
		assert.Equal(t, StatusAuthorized, claimed.Status)
	})

	t.Run("captured row is reported finalized", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		svc.cfg.AutoCapture = true
		tx := createIntent(t, svc, "100")
		conf := Confirmation{
			GatewayOrderID: tx.GatewayOrderID,
			PaymentID:      "pay_1",
			Signature:      Sign(testSecret, tx.GatewayOrderID, "pay_1"),
		}
		claimed, err := svc.Authorize(ctx, conf)
		require.NoError(t, err)
		_, err = svc.Capture(ctx, claimed, "order-1")
		require.NoError(t, err)

		again, err := svc.Authorize(ctx, conf)
		require.ErrorIs(t, err, ErrAlreadyFinalized)
		require.NotNil(t, again.OrderID)
		assert.Equal(t, "order-1", *again.OrderID)

		// A forged signature must not downgrade a captured row.
		_, err = svc.Authorize(ctx, Confirmation{GatewayOrderID: tx.GatewayOrderID, PaymentID: "pay_1", Signature: "x"})
		require.ErrorIs(t, err, ErrSignatureMismatch)
		stored, _ := svc.repo.FindByGatewayOrderID(ctx, tx.GatewayOrderID)
		assert.Equal(t, StatusCaptured, stored.Status)
	})
}

func TestService_Authorize_Concurrent(t *testing.T) {
	svc, _, _ := newTestService(t)
	tx := createIntent(t, svc, "100")
	conf := Confirmation{
		GatewayOrderID: tx.GatewayOrderID,
		PaymentID:      "pay_1",
		Signature:      Sign(testSecret, tx.GatewayOrderID, "pay_1"),
	}

	const workers = 16
	errs := make([]error, workers)
	var g errgroup.Group
	for i := range workers {
		g.Go(func() error {
			_, errs[i] = svc.Authorize(context.Background(), conf)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	var claimed, busy int
	for _, err := range errs {
		switch {
		case err == nil:
			claimed++
		case errors.Is(err, ErrConfirmationInProgress):
			busy++
		}
	}
	assert.Equal(t, 1, claimed)
	assert.Equal(t, workers-1, busy)
}

func TestService_Capture(t *testing.T) {
	ctx := context.Background()
	svc, _, gw := newTestService(t)
	tx := createIntent(t, svc, "250")
	claimed, err := svc.Authorize(ctx, Confirmation{
		GatewayOrderID: tx.GatewayOrderID,
		PaymentID:      "pay_9",
		Signature:      Sign(testSecret, tx.GatewayOrderID, "pay_9"),
	})
	require.NoError(t, err)

	gw.captureErr = errors.New("timeout")
	_, err = svc.Capture(ctx, claimed, "order-9")
	var upstream *UpstreamError
	require.True(t, errors.As(err, &upstream))

	gw.captureErr = nil
	captured, err := svc.Capture(ctx, claimed, "order-9")
	require.NoError(t, err)
	assert.Equal(t, StatusCaptured, captured.Status)
	assert.Equal(t, 2, gw.captures)
}

func TestService_Refund(t *testing.T) {
	ctx := context.Background()
	svc, _, gw := newTestService(t)
	svc.cfg.AutoCapture = true
	tx := createIntent(t, svc, "500")

	_, err := svc.Refund(ctx, RefundRequest{OrderID: "order-1"})
	require.ErrorIs(t, err, ErrNotFound)

	claimed, err := svc.Authorize(ctx, Confirmation{
		GatewayOrderID: tx.GatewayOrderID,
		PaymentID:      "pay_1",
		Signature:      Sign(testSecret, tx.GatewayOrderID, "pay_1"),
	})
	require.NoError(t, err)
	_, err = svc.Capture(ctx, claimed, "order-1")
	require.NoError(t, err)

	_, err = svc.Refund(ctx, RefundRequest{OrderID: "order-1", Amount: decimal.NewNullDecimal(decimal.NewFromInt(501))})
	var amountErr *InvalidAmountError
	require.True(t, errors.As(err, &amountErr))

	refunded, err := svc.Refund(ctx, RefundRequest{OrderID: "order-1"})
	require.NoError(t, err)
	assert.Equal(t, StatusRefunded, refunded.Status)
	assert.Equal(t, "rfnd_1", refunded.RefundID)
	assert.Equal(t, int64(50000), gw.lastAmount)

	_, err = svc.Refund(ctx, RefundRequest{OrderID: "order-1"})
	require.ErrorIs(t, err, ErrNotRefundable)
	assert.Equal(t, 1, gw.refunds)
}

func TestVerifySignature(t *testing.T) {
	sig := Sign("secret", "order_1", "pay_1")
	assert.True(t, VerifySignature("secret", "order_1", "pay_1", sig))
	assert.False(t, VerifySignature("secret", "order_1", "pay_2", sig))
	assert.False(t, VerifySignature("other", "order_1", "pay_1", sig))
	assert.False(t, VerifySignature("", "order_1", "pay_1", sig))
	assert.Len(t, sig, 64)
}
