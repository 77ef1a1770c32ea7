package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/xenking/orderflow/internal/domain/coupon"
)

var _ coupon.Repository = (*Coupons)(nil)

// Coupons holds coupons keyed by id.
type Coupons struct {
	mu   sync.Mutex
	byID map[string]*coupon.Coupon
}

// NewCoupons returns an empty coupon table.
func NewCoupons() *Coupons {
	return &Coupons{byID: make(map[string]*coupon.Coupon)}
}

func cloneCoupon(c *coupon.Coupon) *coupon.Coupon {
	cp := *c
	if c.MaxUsageCount != nil {
		v := *c.MaxUsageCount
		cp.MaxUsageCount = &v
	}
	cp.ApplicableProducts = slices.Clone(c.ApplicableProducts)
	cp.ExcludedProducts = slices.Clone(c.ExcludedProducts)
	cp.UsageHistory = slices.Clone(c.UsageHistory)
	return &cp
}

func (s *Coupons) FindByCode(_ context.Context, code string) (*coupon.Coupon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.byID {
		if c.Code == code {
			return cloneCoupon(c), nil
		}
	}
	return nil, coupon.ErrNotFound
}

func (s *Coupons) FindByID(_ context.Context, id string) (*coupon.Coupon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.byID[id]
	if !ok {
		return nil, coupon.ErrNotFound
	}
	return cloneCoupon(c), nil
}

func (s *Coupons) Create(_ context.Context, c *coupon.Coupon) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.byID {
		if existing.Code == c.Code {
			return coupon.ErrCodeExists
		}
	}
	s.byID[c.ID] = cloneCoupon(c)
	return nil
}

// AppendUsage applies the usage under the table lock, re-checking every cap
// against the stored coupon.
func (s *Coupons) AppendUsage(_ context.Context, id string, u coupon.Usage) (*coupon.Coupon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.byID[id]
	if !ok {
		return nil, coupon.ErrNotFound
	}
	if _, dup := c.FindUsage(u.OrderID); dup {
		return nil, coupon.ErrUsageAlreadyRecorded
	}
	if c.UsageCapReached() {
		return nil, coupon.ErrUsageLimitReached
	}
	if c.Budget.Valid && c.BudgetUtilized.Add(u.DiscountAmount).GreaterThan(c.Budget.Decimal) {
		return nil, coupon.ErrBudgetExhausted
	}
	if c.UserUsageCount(u.UserID) >= c.UsagePerUser {
		return nil, coupon.ErrUserLimitReached
	}

	c.UsageHistory = append(c.UsageHistory, u)
	c.CurrentUsage++
	c.TotalSales = c.TotalSales.Add(u.OrderTotal)
	c.BudgetUtilized = c.BudgetUtilized.Add(u.DiscountAmount)
	c.UpdatedAt = u.UsedAt
	return cloneCoupon(c), nil
}
