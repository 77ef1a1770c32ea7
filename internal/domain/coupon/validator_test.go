package coupon

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCouponRepo struct {
	mu      sync.Mutex
	coupons map[string]*Coupon
	err     error
}

func newMockRepo(cs ...*Coupon) *mockCouponRepo {
	m := &mockCouponRepo{coupons: make(map[string]*Coupon)}
	for _, c := range cs {
		m.coupons[c.ID] = c
	}
	return m
}

func (m *mockCouponRepo) FindByCode(_ context.Context, code string) (*Coupon, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, c := range m.coupons {
		if c.Code == code {
			cp := *c
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockCouponRepo) FindByID(_ context.Context, id string) (*Coupon, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	c, ok := m.coupons[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *mockCouponRepo) Create(_ context.Context, c *Coupon) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for _, existing := range m.coupons {
		if existing.Code == c.Code {
			return ErrCodeExists
		}
	}
	m.coupons[c.ID] = c
	return nil
}

func (m *mockCouponRepo) AppendUsage(_ context.Context, id string, u Usage) (*Coupon, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	c, ok := m.coupons[id]
	if !ok {
		return nil, ErrNotFound
	}
	if _, dup := c.FindUsage(u.OrderID); dup {
		return nil, ErrUsageAlreadyRecorded
	}
	if c.UsageCapReached() {
		return nil, ErrUsageLimitReached
	}
	if c.Budget.Valid && c.BudgetUtilized.Add(u.DiscountAmount).GreaterThan(c.Budget.Decimal) {
		return nil, ErrBudgetExhausted
	}
	if c.UserUsageCount(u.UserID) >= c.UsagePerUser {
		return nil, ErrUserLimitReached
	}
	c.UsageHistory = append(c.UsageHistory, u)
	c.CurrentUsage++
	c.TotalSales = c.TotalSales.Add(u.OrderTotal)
	c.BudgetUtilized = c.BudgetUtilized.Add(u.DiscountAmount)
	cp := *c
	return &cp, nil
}

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestService(repo Repository) *Service {
	s := NewService(repo)
	s.now = func() time.Time { return testNow }
	return s
}

func intPtr(v int) *int { return &v }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func baseCoupon(id, code string) *Coupon {
	return &Coupon{
		ID:             id,
		Code:           code,
		Title:          code,
		DiscountType:   DiscountPercentage,
		DiscountValue:  decimal.NewFromInt(10),
		MinOrderValue:  decimal.Zero,
		UsagePerUser:   1,
		TotalSales:     decimal.Zero,
		BudgetUtilized: decimal.Zero,
		StartDate:      testNow.Add(-24 * time.Hour),
		EndDate:        testNow.Add(24 * time.Hour),
		IsActive:       true,
	}
}

func TestService_Validate(t *testing.T) {
	tests := []struct {
		name       string
		coupon     func() *Coupon
		code       string
		userID     string
		cartTotal  string
		items      []Item
		wantErr    error
		wantMinErr bool
		discount   string
		applicable string
	}{
		{
			name: "percentage above minimum",
			coupon: func() *Coupon {
				c := baseCoupon("c1", "SAVE10")
				c.MinOrderValue = decimal.NewFromInt(500)
				return c
			},
			code:       "save10",
			cartTotal:  "1000",
			discount:   "100",
			applicable: "1000",
		},
		{
			name: "fixed clamped to remaining budget",
			coupon: func() *Coupon {
				c := baseCoupon("c2", "FLAT200")
				c.DiscountType = DiscountFixed
				c.DiscountValue = decimal.NewFromInt(200)
				c.Budget = decimal.NewNullDecimal(decimal.NewFromInt(150))
				return c
			},
			code:       "FLAT200",
			cartTotal:  "1000",
			discount:   "150",
			applicable: "1000",
		},
		{
			name: "fixed capped at applicable amount",
			coupon: func() *Coupon {
				c := baseCoupon("c3", "FLAT200")
				c.DiscountType = DiscountFixed
				c.DiscountValue = decimal.NewFromInt(200)
				return c
			},
			code:       "FLAT200",
			cartTotal:  "120",
			discount:   "120",
			applicable: "120",
		},
		{
			name: "percentage rounds half up",
			coupon: func() *Coupon {
				return baseCoupon("c4", "ODD")
			},
			code:       "ODD",
			cartTotal:  "10.05",
			discount:   "1.01",
			applicable: "10.05",
		},
		{
			name:      "unknown code",
			coupon:    func() *Coupon { return baseCoupon("c5", "REAL") },
			code:      "BOGUS",
			cartTotal: "100",
			wantErr:   ErrNotFound,
		},
		{
			name: "inactive checked before window",
			coupon: func() *Coupon {
				c := baseCoupon("c6", "OFF")
				c.IsActive = false
				c.EndDate = testNow.Add(-time.Hour)
				return c
			},
			code:      "OFF",
			cartTotal: "100",
			wantErr:   ErrInactive,
		},
		{
			name: "not yet started",
			coupon: func() *Coupon {
				c := baseCoupon("c7", "SOON")
				c.StartDate = testNow.Add(time.Hour)
				return c
			},
			code:      "SOON",
			cartTotal: "100",
			wantErr:   ErrNotStarted,
		},
		{
			name: "expired",
			coupon: func() *Coupon {
				c := baseCoupon("c8", "OLD")
				c.EndDate = testNow.Add(-time.Hour)
				return c
			},
			code:      "OLD",
			cartTotal: "100",
			wantErr:   ErrExpired,
		},
		{
			name: "usage cap before budget",
			coupon: func() *Coupon {
				c := baseCoupon("c9", "CAPPED")
				c.MaxUsageCount = intPtr(1)
				c.CurrentUsage = 1
				c.Budget = decimal.NewNullDecimal(decimal.NewFromInt(10))
				c.BudgetUtilized = decimal.NewFromInt(10)
				return c
			},
			code:      "CAPPED",
			cartTotal: "100",
			wantErr:   ErrUsageLimitReached,
		},
		{
			name: "budget exhausted before minimum order",
			coupon: func() *Coupon {
				c := baseCoupon("c10", "SPENT")
				c.Budget = decimal.NewNullDecimal(decimal.NewFromInt(10))
				c.BudgetUtilized = decimal.NewFromInt(10)
				c.MinOrderValue = decimal.NewFromInt(500)
				return c
			},
			code:      "SPENT",
			cartTotal: "100",
			wantErr:   ErrBudgetExhausted,
		},
		{
			name: "below minimum order value",
			coupon: func() *Coupon {
				c := baseCoupon("c11", "BIG")
				c.MinOrderValue = decimal.NewFromInt(500)
				return c
			},
			code:       "BIG",
			cartTotal:  "499.99",
			wantMinErr: true,
		},
		{
			name: "allow list with no matching items",
			coupon: func() *Coupon {
				c := baseCoupon("c12", "SCOPED")
				c.ApplicableProducts = []string{"p9"}
				return c
			},
			code:      "SCOPED",
			cartTotal: "100",
			items:     []Item{{ProductID: "p1", Price: dec("100"), Quantity: 1}},
			wantErr:   ErrNoApplicableAmount,
		},
		{
			name: "allow list counts only listed products",
			coupon: func() *Coupon {
				c := baseCoupon("c13", "SCOPED")
				c.ApplicableProducts = []string{"p1"}
				return c
			},
			code:      "SCOPED",
			cartTotal: "300",
			items: []Item{
				{ProductID: "p1", Price: dec("50"), Quantity: 2},
				{ProductID: "p2", Price: dec("200"), Quantity: 1},
			},
			discount:   "10",
			applicable: "100",
		},
		{
			name: "deny list subtracts excluded products",
			coupon: func() *Coupon {
				c := baseCoupon("c14", "NOGIFT")
				c.ExcludedProducts = []string{"gift"}
				return c
			},
			code:      "NOGIFT",
			cartTotal: "300",
			items: []Item{
				{ProductID: "p1", Price: dec("100"), Quantity: 2},
				{ProductID: "gift", Price: dec("100"), Quantity: 1},
			},
			discount:   "20",
			applicable: "200",
		},
		{
			name: "per user limit checked last",
			coupon: func() *Coupon {
				c := baseCoupon("c15", "ONCE")
				c.UsageHistory = []Usage{{UserID: "u1", OrderID: "o1"}}
				c.CurrentUsage = 1
				return c
			},
			code:      "ONCE",
			userID:    "u1",
			cartTotal: "100",
			wantErr:   ErrUserLimitReached,
		},
		{
			name: "per user limit ignores other users",
			coupon: func() *Coupon {
				c := baseCoupon("c16", "ONCE")
				c.UsageHistory = []Usage{{UserID: "u1", OrderID: "o1"}}
				c.CurrentUsage = 1
				return c
			},
			code:       "ONCE",
			userID:     "u2",
			cartTotal:  "100",
			discount:   "10",
			applicable: "100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(newMockRepo(tt.coupon()))

			q, err := svc.Validate(context.Background(), ValidateRequest{
				Code:      tt.code,
				UserID:    tt.userID,
				CartTotal: dec(tt.cartTotal),
				Items:     tt.items,
			})

			if tt.wantMinErr {
				var minErr *MinOrderValueError
				require.True(t, errors.As(err, &minErr), "got %v", err)
				assert.Equal(t, "minimum order value of 500.00 required", minErr.Error())
				return
			}
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, q)
				return
			}
			require.NoError(t, err)
			assert.True(t, dec(tt.discount).Equal(q.Discount), "discount: want %s, got %s", tt.discount, q.Discount)
			assert.True(t, dec(tt.applicable).Equal(q.ApplicableAmount), "applicable: want %s, got %s", tt.applicable, q.ApplicableAmount)
			assert.True(t, dec(tt.cartTotal).Sub(q.Discount).Equal(q.FinalAmount))
		})
	}
}

func TestService_Validate_InputErrors(t *testing.T) {
	svc := newTestService(newMockRepo())

	_, err := svc.Validate(context.Background(), ValidateRequest{Code: "  ", CartTotal: dec("10")})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "code", verr.Field)

	_, err = svc.Validate(context.Background(), ValidateRequest{Code: "X", CartTotal: dec("-1")})
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "cartTotal", verr.Field)
}

func TestService_Validate_RepoError(t *testing.T) {
	repo := newMockRepo()
	repo.err = errors.New("connection reset")
	svc := newTestService(repo)

	_, err := svc.Validate(context.Background(), ValidateRequest{Code: "SAVE10", CartTotal: dec("10")})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "lookup coupon")
}

func TestCalculate_BudgetExhausted(t *testing.T) {
	c := baseCoupon("c1", "SPENT")
	c.Budget = decimal.NewNullDecimal(decimal.NewFromInt(50))
	c.BudgetUtilized = decimal.NewFromInt(60)

	_, err := Calculate(c, dec("100"))
	require.ErrorIs(t, err, ErrBudgetExhausted)
}
