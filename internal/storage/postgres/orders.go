package postgres

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/xenking/orderflow/internal/domain/order"
)

const orderColumns = `id, number, display_number, invoice_number, user_id, items,
	subtotal, discount, coupon_id, coupon_code, tax, shipping, total,
	shipping_address, payment_method, payment_status, status,
	gateway_order_id, gateway_payment_id, gateway_signature,
	admin_note, admin_note_updated_at, admin_note_updated_by, created_at, updated_at`

const (
	createOrderSQL = `INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
			$18, $19, $20, $21, $22, $23, $24, $25)`

	getOrderSQL = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	listOrdersSQL = `SELECT ` + orderColumns + ` FROM orders
		WHERE ($1 = '' OR user_id = $1) AND ($2 = '' OR status = $2)
		ORDER BY number DESC LIMIT $3 OFFSET $4`

	countOrdersSQL = `SELECT count(*) FROM orders
		WHERE ($1 = '' OR user_id = $1) AND ($2 = '' OR status = $2)`

	updateOrderStatusSQL = `UPDATE orders SET status = $2, updated_at = now()
		WHERE id = $1 AND status = ANY($3)
		RETURNING ` + orderColumns

	updatePaymentStatusSQL = `UPDATE orders SET payment_status = $2, updated_at = now()
		WHERE id = $1 AND payment_status = ANY($3)
		RETURNING ` + orderColumns

	updateAddressSQL = `UPDATE orders SET shipping_address = $2, updated_at = now()
		WHERE id = $1 AND status = ANY($3)
		RETURNING ` + orderColumns

	updateAdminNoteSQL = `UPDATE orders SET admin_note = $2, admin_note_updated_by = $3,
			admin_note_updated_at = $4, updated_at = now()
		WHERE id = $1
		RETURNING ` + orderColumns

	assignInvoiceNumberSQL = `UPDATE orders SET invoice_number = $2, updated_at = now()
		WHERE id = $1 AND invoice_number IS NULL
		RETURNING ` + orderColumns
)

const invoiceNumberConstraint = "orders_invoice_number_key"

var _ order.Repository = (*OrderRepository)(nil)

// OrderRepository implements order.Repository backed by PostgreSQL.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns an OrderRepository that uses the given pool.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// itemRecord is the JSONB shape of one order line.
type itemRecord struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	TaxRate   decimal.Decimal `json:"taxRate"`
	TaxAmount decimal.Decimal `json:"taxAmount"`
}

// addressRecord is the JSONB shape of a shipping address.
type addressRecord struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Phone   string `json:"phone"`
}

// Create persists a new order. Items and the address are stored as JSONB.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	items := make([]itemRecord, len(o.Items))
	for i, it := range o.Items {
		items[i] = itemRecord(it)
	}
	_, err := r.pool.Exec(ctx, createOrderSQL,
		o.ID, o.Number, o.DisplayNumber, o.InvoiceNumber, o.UserID, items,
		o.Subtotal, o.Discount, o.CouponID, o.CouponCode, o.Tax, o.Shipping, o.Total,
		addressRecord(o.ShippingAddress), string(o.PaymentMethod), string(o.PaymentStatus), string(o.Status),
		o.Gateway.OrderID, o.Gateway.PaymentID, o.Gateway.Signature,
		o.AdminNote, o.AdminNoteUpdatedAt, o.AdminNoteUpdatedBy, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return order.ErrDuplicate
		}
		return errors.Wrapf(err, "create order %s", o.ID)
	}
	return nil
}

// Get returns the order with the given id.
func (r *OrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	rows, err := r.pool.Query(ctx, getOrderSQL, id)
	if err != nil {
		return nil, errors.Wrapf(err, "get order %s", id)
	}
	return collectOrder(rows, id)
}

// List returns a page of orders, newest first, and the number of matches.
func (r *OrderRepository) List(ctx context.Context, f order.ListFilter) ([]order.Order, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, countOrdersSQL, f.UserID, string(f.Status)).Scan(&total); err != nil {
		return nil, 0, errors.Wrap(err, "count orders")
	}
	rows, err := r.pool.Query(ctx, listOrdersSQL, f.UserID, string(f.Status), f.Limit, f.Offset)
	if err != nil {
		return nil, 0, errors.Wrap(err, "list orders")
	}
	orders, err := pgx.CollectRows(rows, scanOrder)
	if err != nil {
		return nil, 0, errors.Wrap(err, "scan orders")
	}
	return orders, total, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, from []order.Status, to order.Status) (*order.Order, error) {
	return r.conditional(ctx, id, updateOrderStatusSQL, string(to), toStrings(from))
}

func (r *OrderRepository) UpdatePaymentStatus(ctx context.Context, id string, from []order.PaymentStatus, to order.PaymentStatus) (*order.Order, error) {
	return r.conditional(ctx, id, updatePaymentStatusSQL, string(to), toStrings(from))
}

func (r *OrderRepository) UpdateAddress(ctx context.Context, id string, from []order.Status, addr order.Address) (*order.Order, error) {
	return r.conditional(ctx, id, updateAddressSQL, addressRecord(addr), toStrings(from))
}

func (r *OrderRepository) UpdateAdminNote(ctx context.Context, id, note, by string, at time.Time) (*order.Order, error) {
	rows, err := r.pool.Query(ctx, updateAdminNoteSQL, id, note, by, at)
	if err != nil {
		return nil, errors.Wrapf(err, "update admin note of order %s", id)
	}
	return collectOrder(rows, id)
}

// AssignInvoiceNumber sets the invoice number only if none is set. When the
// order already has one, the stored order is returned unchanged.
func (r *OrderRepository) AssignInvoiceNumber(ctx context.Context, id, number string) (*order.Order, error) {
	rows, err := r.pool.Query(ctx, assignInvoiceNumberSQL, id, number)
	if err != nil {
		return nil, errors.Wrapf(err, "assign invoice number to order %s", id)
	}
	o, err := pgx.CollectExactlyOneRow(rows, scanOrder)
	switch {
	case err == nil:
		return &o, nil
	case errors.Is(err, pgx.ErrNoRows):
		return r.Get(ctx, id)
	case isUniqueViolation(err, invoiceNumberConstraint):
		return nil, order.ErrInvoiceExists
	default:
		return nil, errors.Wrapf(err, "assign invoice number to order %s", id)
	}
}

// conditional runs an UPDATE … WHERE id = $1 AND <state> = ANY($3) and tells
// a missing order apart from one in another state.
func (r *OrderRepository) conditional(ctx context.Context, id, sql string, value any, from []string) (*order.Order, error) {
	rows, err := r.pool.Query(ctx, sql, id, value, from)
	if err != nil {
		return nil, errors.Wrapf(err, "update order %s", id)
	}
	o, err := pgx.CollectExactlyOneRow(rows, scanOrder)
	if err == nil {
		return &o, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, errors.Wrapf(err, "update order %s", id)
	}
	if _, err := r.Get(ctx, id); err != nil {
		return nil, err
	}
	return nil, order.ErrStatusConflict
}

func collectOrder(rows pgx.Rows, id string) (*order.Order, error) {
	o, err := pgx.CollectExactlyOneRow(rows, scanOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrNotFound
		}
		return nil, errors.Wrapf(err, "scan order %s", id)
	}
	return &o, nil
}

func scanOrder(row pgx.CollectableRow) (order.Order, error) {
	var (
		o             order.Order
		items         []itemRecord
		addr          addressRecord
		paymentMethod string
		paymentStatus string
		status        string
	)
	err := row.Scan(
		&o.ID, &o.Number, &o.DisplayNumber, &o.InvoiceNumber, &o.UserID, &items,
		&o.Subtotal, &o.Discount, &o.CouponID, &o.CouponCode, &o.Tax, &o.Shipping, &o.Total,
		&addr, &paymentMethod, &paymentStatus, &status,
		&o.Gateway.OrderID, &o.Gateway.PaymentID, &o.Gateway.Signature,
		&o.AdminNote, &o.AdminNoteUpdatedAt, &o.AdminNoteUpdatedBy, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return o, err
	}
	o.Items = make([]order.Item, len(items))
	for i, it := range items {
		o.Items[i] = order.Item(it)
	}
	o.ShippingAddress = order.Address(addr)
	o.PaymentMethod = order.PaymentMethod(paymentMethod)
	o.PaymentStatus = order.PaymentStatus(paymentStatus)
	o.Status = order.Status(status)
	return o, nil
}

func toStrings[S ~string](values []S) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
