package postgres

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/xenking/orderflow/internal/domain/coupon"
)

const couponColumns = `id, code, title, description, discount_type, discount_value,
	min_order_value, max_usage_count, usage_per_user, budget, current_usage,
	total_sales, budget_utilized, start_date, end_date, is_active,
	applicable_products, excluded_products, usage_history, created_at, updated_at`

const (
	getCouponByCodeSQL = `SELECT ` + couponColumns + ` FROM coupons WHERE code = $1`

	getCouponByIDSQL = `SELECT ` + couponColumns + ` FROM coupons WHERE id = $1`

	createCouponSQL = `INSERT INTO coupons (id, code, title, description, discount_type,
		discount_value, min_order_value, max_usage_count, usage_per_user, budget,
		start_date, end_date, is_active, applicable_products, excluded_products,
		created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $16)`

	// upsertCouponSQL replaces a coupon's definition by code. Usage counters
	// and history are kept.
	upsertCouponSQL = `INSERT INTO coupons (id, code, title, description, discount_type,
		discount_value, min_order_value, max_usage_count, usage_per_user, budget,
		start_date, end_date, is_active, applicable_products, excluded_products,
		created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $16)
		ON CONFLICT (code) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			discount_type = EXCLUDED.discount_type,
			discount_value = EXCLUDED.discount_value,
			min_order_value = EXCLUDED.min_order_value,
			max_usage_count = EXCLUDED.max_usage_count,
			usage_per_user = EXCLUDED.usage_per_user,
			budget = EXCLUDED.budget,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			is_active = EXCLUDED.is_active,
			applicable_products = EXCLUDED.applicable_products,
			excluded_products = EXCLUDED.excluded_products,
			updated_at = EXCLUDED.updated_at`

	// appendUsageSQL records one redemption. The WHERE clause re-checks every
	// cap against the row as locked by the update, so concurrent redemptions
	// of the last slot cannot both apply.
	appendUsageSQL = `UPDATE coupons SET
			usage_history = usage_history || jsonb_build_array(jsonb_build_object(
				'userId', $2::text,
				'orderId', $3::text,
				'orderTotal', $4::numeric,
				'discountAmount', $5::numeric,
				'usedAt', $6::timestamptz)),
			current_usage = current_usage + 1,
			total_sales = total_sales + $4::numeric,
			budget_utilized = budget_utilized + $5::numeric,
			updated_at = $6
		WHERE id = $1
			AND (max_usage_count IS NULL OR current_usage < max_usage_count)
			AND (budget IS NULL OR budget_utilized + $5::numeric <= budget)
			AND NOT usage_history @> jsonb_build_array(jsonb_build_object('orderId', $3::text))
			AND (SELECT count(*) FROM jsonb_array_elements(usage_history) AS u
				WHERE u->>'userId' = $2::text) < usage_per_user
		RETURNING ` + couponColumns
)

const couponCodeConstraint = "coupons_code_key"

var _ coupon.Repository = (*CouponRepository)(nil)

// CouponRepository implements coupon.Repository backed by PostgreSQL.
type CouponRepository struct {
	pool *pgxpool.Pool
}

// NewCouponRepository returns a CouponRepository that uses the given pool.
func NewCouponRepository(pool *pgxpool.Pool) *CouponRepository {
	return &CouponRepository{pool: pool}
}

// FindByCode looks up a coupon by its normalized code.
func (r *CouponRepository) FindByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	return r.findOne(ctx, getCouponByCodeSQL, code)
}

// FindByID looks up a coupon by its row id.
func (r *CouponRepository) FindByID(ctx context.Context, id string) (*coupon.Coupon, error) {
	return r.findOne(ctx, getCouponByIDSQL, id)
}

func (r *CouponRepository) findOne(ctx context.Context, sql, arg string) (*coupon.Coupon, error) {
	rows, err := r.pool.Query(ctx, sql, arg)
	if err != nil {
		return nil, errors.Wrapf(err, "find coupon %q", arg)
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCoupon)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, coupon.ErrNotFound
		}
		return nil, errors.Wrapf(err, "find coupon %q", arg)
	}
	return &c, nil
}

func definitionArgs(c *coupon.Coupon) []any {
	return []any{
		c.ID, c.Code, c.Title, c.Description, string(c.DiscountType),
		c.DiscountValue, c.MinOrderValue, c.MaxUsageCount, c.UsagePerUser, c.Budget,
		c.StartDate, c.EndDate, c.IsActive, nonNil(c.ApplicableProducts), nonNil(c.ExcludedProducts),
		c.CreatedAt,
	}
}

// Create inserts a new coupon. A taken code yields coupon.ErrCodeExists.
func (r *CouponRepository) Create(ctx context.Context, c *coupon.Coupon) error {
	if _, err := r.pool.Exec(ctx, createCouponSQL, definitionArgs(c)...); err != nil {
		if isUniqueViolation(err, couponCodeConstraint) {
			return coupon.ErrCodeExists
		}
		return errors.Wrapf(err, "create coupon %q", c.Code)
	}
	return nil
}

// Upsert inserts the coupon or replaces the definition of the coupon with the
// same code.
func (r *CouponRepository) Upsert(ctx context.Context, c *coupon.Coupon) error {
	if _, err := r.pool.Exec(ctx, upsertCouponSQL, definitionArgs(c)...); err != nil {
		return errors.Wrapf(err, "upsert coupon %q", c.Code)
	}
	return nil
}

// AppendUsage records u in a single conditional update. When the update does
// not apply, the stored coupon is read back to report which cap stopped it.
func (r *CouponRepository) AppendUsage(ctx context.Context, id string, u coupon.Usage) (*coupon.Coupon, error) {
	rows, err := r.pool.Query(ctx, appendUsageSQL,
		id, u.UserID, u.OrderID, u.OrderTotal, u.DiscountAmount, u.UsedAt,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "append usage to coupon %s", id)
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCoupon)
	if err == nil {
		return &c, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, errors.Wrapf(err, "append usage to coupon %s", id)
	}

	current, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return nil, usageRejection(current, u)
}

// usageRejection explains why u could not be appended to c.
func usageRejection(c *coupon.Coupon, u coupon.Usage) error {
	if _, ok := c.FindUsage(u.OrderID); ok {
		return coupon.ErrUsageAlreadyRecorded
	}
	if c.UsageCapReached() {
		return coupon.ErrUsageLimitReached
	}
	if c.Budget.Valid && c.BudgetUtilized.Add(u.DiscountAmount).GreaterThan(c.Budget.Decimal) {
		return coupon.ErrBudgetExhausted
	}
	if c.UserUsageCount(u.UserID) >= c.UsagePerUser {
		return coupon.ErrUserLimitReached
	}
	// The row changed between the update and the read; the caller may retry.
	return errors.Errorf("usage for order %s not applied to coupon %s", u.OrderID, c.ID)
}

// usageRecord is the JSONB shape of one usage_history element.
type usageRecord struct {
	UserID         string          `json:"userId"`
	OrderID        string          `json:"orderId"`
	OrderTotal     decimal.Decimal `json:"orderTotal"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	UsedAt         time.Time       `json:"usedAt"`
}

func scanCoupon(row pgx.CollectableRow) (coupon.Coupon, error) {
	var (
		c            coupon.Coupon
		discountType string
		maxUsage     *int32
		history      []usageRecord
	)
	err := row.Scan(
		&c.ID, &c.Code, &c.Title, &c.Description, &discountType, &c.DiscountValue,
		&c.MinOrderValue, &maxUsage, &c.UsagePerUser, &c.Budget, &c.CurrentUsage,
		&c.TotalSales, &c.BudgetUtilized, &c.StartDate, &c.EndDate, &c.IsActive,
		&c.ApplicableProducts, &c.ExcludedProducts, &history, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return c, err
	}
	c.DiscountType = coupon.DiscountType(discountType)
	if maxUsage != nil {
		v := int(*maxUsage)
		c.MaxUsageCount = &v
	}
	c.UsageHistory = make([]coupon.Usage, len(history))
	for i, h := range history {
		c.UsageHistory[i] = coupon.Usage(h)
	}
	return c, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
