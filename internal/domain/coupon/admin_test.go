package coupon

import (
	"context"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() CreateRequest {
	return CreateRequest{
		Code:          " save10 ",
		Title:         "Ten percent",
		DiscountType:  DiscountPercentage,
		DiscountValue: dec("10"),
		MinOrderValue: dec("500"),
		StartDate:     testNow.Add(-time.Hour),
		EndDate:       testNow.Add(30 * 24 * time.Hour),
		IsActive:      true,
	}
}

func TestService_Create(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	c, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, "SAVE10", c.Code)
	assert.Equal(t, 1, c.UsagePerUser)
	assert.NotEmpty(t, c.ID)

	_, err = svc.Create(context.Background(), validCreateRequest())
	require.ErrorIs(t, err, ErrCodeExists)
}

func TestCreateRequest_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *CreateRequest)
		field  string
	}{
		{"short code", func(r *CreateRequest) { r.Code = "AB" }, "code"},
		{"symbol in code", func(r *CreateRequest) { r.Code = "SAVE-10" }, "code"},
		{"missing title", func(r *CreateRequest) { r.Title = " " }, "title"},
		{"unknown type", func(r *CreateRequest) { r.DiscountType = "bogo" }, "discountType"},
		{"zero value", func(r *CreateRequest) { r.DiscountValue = decimal.Zero }, "discountValue"},
		{"percentage above 100", func(r *CreateRequest) { r.DiscountValue = dec("100.5") }, "discountValue"},
		{"zero max usage", func(r *CreateRequest) { r.MaxUsageCount = intPtr(0) }, "maxUsageCount"},
		{"negative budget", func(r *CreateRequest) { r.Budget = decimal.NewNullDecimal(dec("-1")) }, "budget"},
		{"end before start", func(r *CreateRequest) { r.EndDate = r.StartDate }, "endDate"},
		{"negative per user", func(r *CreateRequest) { r.UsagePerUser = -2 }, "usagePerUser"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.modify(&req)
			err := req.Validate()
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Coupon)
		want   string
	}{
		{"active", func(*Coupon) {}, StatusActive},
		{"inactive", func(c *Coupon) { c.IsActive = false }, StatusInactive},
		{"scheduled", func(c *Coupon) { c.StartDate = testNow.Add(time.Hour) }, StatusScheduled},
		{"expired", func(c *Coupon) { c.EndDate = testNow.Add(-time.Hour) }, StatusExpired},
		{"budget", func(c *Coupon) {
			c.Budget = decimal.NewNullDecimal(dec("100"))
			c.BudgetUtilized = dec("100")
		}, StatusBudgetExhausted},
		{"usage", func(c *Coupon) {
			c.MaxUsageCount = intPtr(2)
			c.CurrentUsage = 2
		}, StatusUsageLimitReached},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := baseCoupon("c1", "X")
			tt.modify(c)
			assert.Equal(t, tt.want, Status(c, testNow))
		})
	}
}

func TestService_Get(t *testing.T) {
	c := baseCoupon("c1", "SAVE10")
	c.Budget = decimal.NewNullDecimal(dec("1000"))
	c.BudgetUtilized = dec("150")
	c.UsageHistory = []Usage{
		{UserID: "u1", OrderID: "o1", OrderTotal: dec("1000"), DiscountAmount: dec("100")},
		{UserID: "u2", OrderID: "o2", OrderTotal: dec("500"), DiscountAmount: dec("50")},
		{UserID: "u1", OrderID: "o3", OrderTotal: dec("600"), DiscountAmount: dec("0")},
	}
	svc := newTestService(newMockRepo(c))

	d, err := svc.Get(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, StatusActive, d.Status)
	assert.Equal(t, 3, d.Stats.Uses)
	assert.Equal(t, 2, d.Stats.UniqueUsers)
	assert.True(t, dec("150").Equal(d.Stats.TotalDiscount))
	assert.True(t, dec("700").Equal(d.Stats.AverageOrderValue))
	require.True(t, d.Stats.BudgetRemaining.Valid)
	assert.True(t, dec("850").Equal(d.Stats.BudgetRemaining.Decimal))

	_, err = svc.Get(context.Background(), "nope")
	require.ErrorIs(t, err, ErrNotFound)
}
