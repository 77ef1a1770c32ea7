package postgres

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/orderflow/internal/domain/payment"
)

const transactionColumns = `id, gateway_order_id, order_id, user_id, amount, currency, status,
	payment_id, signature, refund_id, refund_amount, refund_status, metadata,
	error_code, error_description, created_at, updated_at`

const (
	createTransactionSQL = `INSERT INTO transactions (id, gateway_order_id, order_id, user_id,
		amount, currency, status, metadata, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)`

	getTransactionByGatewayOrderSQL = `SELECT ` + transactionColumns + `
		FROM transactions WHERE gateway_order_id = $1`

	getTransactionByOrderSQL = `SELECT ` + transactionColumns + `
		FROM transactions WHERE order_id = $1
		ORDER BY created_at DESC LIMIT 1`

	// transitionSQL applies an update only while the row is in one of the
	// given states. Empty values leave their column unchanged.
	transitionSQL = `UPDATE transactions SET
			status = $3,
			order_id = COALESCE(NULLIF($4::text, ''), order_id),
			payment_id = COALESCE(NULLIF($5::text, ''), payment_id),
			signature = COALESCE(NULLIF($6::text, ''), signature),
			refund_id = COALESCE(NULLIF($7::text, ''), refund_id),
			refund_amount = COALESCE($8::numeric, refund_amount),
			refund_status = COALESCE(NULLIF($9::text, ''), refund_status),
			error_code = CASE WHEN $10::text = '' THEN error_code ELSE $10::text END,
			error_description = CASE WHEN $10::text = '' THEN error_description ELSE $11::text END,
			updated_at = now()
		WHERE gateway_order_id = $1 AND status = ANY($2)
		RETURNING ` + transactionColumns

	transactionFilter = `WHERE ($1 = '' OR status = $1)
		AND ($2 = '' OR user_id = $2)
		AND ($3::timestamptz IS NULL OR created_at >= $3)
		AND ($4::timestamptz IS NULL OR created_at <= $4)`

	listTransactionsSQL = `SELECT ` + transactionColumns + ` FROM transactions ` + transactionFilter + `
		ORDER BY created_at DESC LIMIT $5 OFFSET $6`

	countTransactionsSQL = `SELECT count(*) FROM transactions ` + transactionFilter

	statsByStatusSQL = `SELECT status, count(*), COALESCE(sum(amount), 0)
		FROM transactions WHERE created_at >= $1 AND created_at <= $2
		GROUP BY status ORDER BY status`

	statsByDaySQL = `SELECT date_trunc('day', created_at AT TIME ZONE 'UTC') AS day,
			count(*), COALESCE(sum(amount), 0)
		FROM transactions WHERE created_at >= $1 AND created_at <= $2
		GROUP BY day ORDER BY day`
)

var _ payment.Repository = (*TransactionRepository)(nil)

// TransactionRepository implements the payment ledger backed by PostgreSQL.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository returns a TransactionRepository that uses the given pool.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// Create inserts a new ledger row. A repeated gateway order id yields
// payment.ErrDuplicate.
func (r *TransactionRepository) Create(ctx context.Context, tx *payment.Transaction) error {
	metadata := tx.Metadata
	if len(metadata) == 0 {
		metadata = []byte(`{}`)
	}
	_, err := r.pool.Exec(ctx, createTransactionSQL,
		tx.ID, tx.GatewayOrderID, tx.OrderID, tx.UserID,
		tx.Amount, tx.Currency, string(tx.Status), string(metadata), tx.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return payment.ErrDuplicate
		}
		return errors.Wrapf(err, "create transaction %s", tx.GatewayOrderID)
	}
	return nil
}

func (r *TransactionRepository) FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*payment.Transaction, error) {
	rows, err := r.pool.Query(ctx, getTransactionByGatewayOrderSQL, gatewayOrderID)
	if err != nil {
		return nil, errors.Wrapf(err, "find transaction %s", gatewayOrderID)
	}
	return collectTransaction(rows, gatewayOrderID)
}

func (r *TransactionRepository) FindByOrderID(ctx context.Context, orderID string) (*payment.Transaction, error) {
	rows, err := r.pool.Query(ctx, getTransactionByOrderSQL, orderID)
	if err != nil {
		return nil, errors.Wrapf(err, "find transaction of order %s", orderID)
	}
	return collectTransaction(rows, orderID)
}

// Transition applies u while the row's status is one of from.
func (r *TransactionRepository) Transition(ctx context.Context, gatewayOrderID string, from []payment.Status, u payment.Update) (*payment.Transaction, error) {
	rows, err := r.pool.Query(ctx, transitionSQL,
		gatewayOrderID, toStrings(from), string(u.Status),
		u.OrderID, u.PaymentID, u.Signature, u.RefundID, u.RefundAmount, u.RefundStatus,
		u.ErrorCode, u.ErrorDescription,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "transition transaction %s", gatewayOrderID)
	}
	tx, err := pgx.CollectExactlyOneRow(rows, scanTransaction)
	if err == nil {
		return &tx, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, errors.Wrapf(err, "transition transaction %s", gatewayOrderID)
	}
	if _, err := r.FindByGatewayOrderID(ctx, gatewayOrderID); err != nil {
		return nil, err
	}
	return nil, payment.ErrStateConflict
}

// List returns a page of ledger rows, newest first, and the number of matches.
func (r *TransactionRepository) List(ctx context.Context, f payment.ListFilter) ([]payment.Transaction, int, error) {
	from, to := nullTime(f.From), nullTime(f.To)
	var total int
	err := r.pool.QueryRow(ctx, countTransactionsSQL, string(f.Status), f.UserID, from, to).Scan(&total)
	if err != nil {
		return nil, 0, errors.Wrap(err, "count transactions")
	}
	rows, err := r.pool.Query(ctx, listTransactionsSQL, string(f.Status), f.UserID, from, to, f.Limit, f.Offset)
	if err != nil {
		return nil, 0, errors.Wrap(err, "list transactions")
	}
	txs, err := pgx.CollectRows(rows, scanTransaction)
	if err != nil {
		return nil, 0, errors.Wrap(err, "scan transactions")
	}
	return txs, total, nil
}

// Stats aggregates rows created in [from, to] by status and by UTC day.
func (r *TransactionRepository) Stats(ctx context.Context, from, to time.Time) (*payment.Stats, error) {
	rows, err := r.pool.Query(ctx, statsByStatusSQL, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "transaction stats by status")
	}
	byStatus, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (payment.StatusTotal, error) {
		var (
			st     payment.StatusTotal
			status string
		)
		err := row.Scan(&status, &st.Count, &st.Amount)
		st.Status = payment.Status(status)
		return st, err
	})
	if err != nil {
		return nil, errors.Wrap(err, "scan stats by status")
	}

	rows, err = r.pool.Query(ctx, statsByDaySQL, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "transaction stats by day")
	}
	daily, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (payment.DailyTotal, error) {
		var dt payment.DailyTotal
		err := row.Scan(&dt.Day, &dt.Count, &dt.Amount)
		dt.Day = dt.Day.UTC()
		return dt, err
	})
	if err != nil {
		return nil, errors.Wrap(err, "scan stats by day")
	}
	return &payment.Stats{ByStatus: byStatus, Daily: daily}, nil
}

func collectTransaction(rows pgx.Rows, key string) (*payment.Transaction, error) {
	tx, err := pgx.CollectExactlyOneRow(rows, scanTransaction)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payment.ErrNotFound
		}
		return nil, errors.Wrapf(err, "scan transaction %s", key)
	}
	return &tx, nil
}

func scanTransaction(row pgx.CollectableRow) (payment.Transaction, error) {
	var (
		tx     payment.Transaction
		status string
		meta   string
	)
	err := row.Scan(
		&tx.ID, &tx.GatewayOrderID, &tx.OrderID, &tx.UserID, &tx.Amount, &tx.Currency, &status,
		&tx.PaymentID, &tx.Signature, &tx.RefundID, &tx.RefundAmount, &tx.RefundStatus, &meta,
		&tx.ErrorCode, &tx.ErrorDescription, &tx.CreatedAt, &tx.UpdatedAt,
	)
	tx.Status = payment.Status(status)
	tx.Metadata = []byte(meta)
	return tx, err
}

func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
