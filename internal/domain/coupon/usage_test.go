package coupon

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestService_RecordUsage(t *testing.T) {
	ctx := context.Background()
	c := baseCoupon("c1", "SAVE10")
	repo := newMockRepo(c)
	svc := newTestService(repo)

	req := UsageRequest{
		CouponID:   "c1",
		UserID:     "u1",
		OrderID:    "o1",
		OrderTotal: dec("1000"),
		Discount:   dec("100"),
	}

	res, err := svc.RecordUsage(ctx, req)
	require.NoError(t, err)
	assert.False(t, res.AlreadyRecorded)
	assert.Equal(t, "o1", res.Usage.OrderID)
	assert.Equal(t, testNow, res.Usage.UsedAt)

	// The second call reports the existing entry and leaves counters alone.
	again, err := svc.RecordUsage(ctx, req)
	require.NoError(t, err)
	assert.True(t, again.AlreadyRecorded)
	assert.Equal(t, res.Usage.UsedAt, again.Usage.UsedAt)

	stored, err := repo.FindByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 1, stored.CurrentUsage)
	assert.Len(t, stored.UsageHistory, 1)
	assert.True(t, dec("100").Equal(stored.BudgetUtilized))
	assert.True(t, dec("1000").Equal(stored.TotalSales))
}

func TestService_RecordUsage_Errors(t *testing.T) {
	tests := []struct {
		name    string
		coupon  func() *Coupon
		req     UsageRequest
		wantErr error
		field   string
	}{
		{
			name:   "missing order id",
			coupon: func() *Coupon { return baseCoupon("c1", "A") },
			req:    UsageRequest{CouponID: "c1", UserID: "u1"},
			field:  "orderId",
		},
		{
			name:   "negative discount",
			coupon: func() *Coupon { return baseCoupon("c1", "A") },
			req:    UsageRequest{CouponID: "c1", UserID: "u1", OrderID: "o1", Discount: dec("-1")},
			field:  "discountAmount",
		},
		{
			name:    "unknown coupon",
			coupon:  func() *Coupon { return baseCoupon("c1", "A") },
			req:     UsageRequest{CouponID: "missing", UserID: "u1", OrderID: "o1"},
			wantErr: ErrNotFound,
		},
		{
			name: "cap reached",
			coupon: func() *Coupon {
				c := baseCoupon("c1", "A")
				c.MaxUsageCount = intPtr(1)
				c.CurrentUsage = 1
				return c
			},
			req:     UsageRequest{CouponID: "c1", UserID: "u1", OrderID: "o1"},
			wantErr: ErrUsageLimitReached,
		},
		{
			name: "discount beyond budget",
			coupon: func() *Coupon {
				c := baseCoupon("c1", "A")
				c.Budget = decimal.NewNullDecimal(dec("50"))
				c.BudgetUtilized = dec("40")
				return c
			},
			req:     UsageRequest{CouponID: "c1", UserID: "u1", OrderID: "o1", Discount: dec("20")},
			wantErr: ErrBudgetExhausted,
		},
		{
			name: "user limit",
			coupon: func() *Coupon {
				c := baseCoupon("c1", "A")
				c.UsageHistory = []Usage{{UserID: "u1", OrderID: "o0"}}
				return c
			},
			req:     UsageRequest{CouponID: "c1", UserID: "u1", OrderID: "o1"},
			wantErr: ErrUserLimitReached,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(newMockRepo(tt.coupon()))
			_, err := svc.RecordUsage(context.Background(), tt.req)
			require.Error(t, err)
			if tt.field != "" {
				var verr *ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Equal(t, tt.field, verr.Field)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_RecordUsage_ConcurrentSingleSlot(t *testing.T) {
	c := baseCoupon("c1", "ONE")
	c.MaxUsageCount = intPtr(1)
	c.UsagePerUser = 10
	repo := newMockRepo(c)
	svc := newTestService(repo)

	const workers = 20
	results := make([]error, workers)
	var g errgroup.Group
	for i := range workers {
		g.Go(func() error {
			_, results[i] = svc.RecordUsage(context.Background(), UsageRequest{
				CouponID: "c1",
				UserID:   "u1",
				OrderID:  "o" + string(rune('a'+i)),
			})
			return nil
		})
	}
	require.NoError(t, g.Wait())

	var ok, capped int
	for _, err := range results {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, ErrUsageLimitReached):
			capped++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, workers-1, capped)
}
