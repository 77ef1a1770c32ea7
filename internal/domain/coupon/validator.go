package coupon

import (
	"context"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Redeemer validates coupons against carts and records redemptions.
type Redeemer interface {
	Validate(ctx context.Context, req ValidateRequest) (*Quote, error)
	RecordUsage(ctx context.Context, req UsageRequest) (*UsageResult, error)
}

var _ Redeemer = (*Service)(nil)

// ValidateRequest holds the input for a coupon check.
type ValidateRequest struct {
	Code      string
	UserID    string
	CartTotal decimal.Decimal
	Items     []Item
}

// Service implements the coupon engine on top of a Repository.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a Service backed by the given Repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Validate checks the coupon against the cart and returns the discount it
// grants. Checks run in a fixed order and the first failure is returned:
// existence, active flag, validity window, usage cap, budget, minimum order
// value, product scoping and finally the per-user limit.
func (s *Service) Validate(ctx context.Context, req ValidateRequest) (*Quote, error) {
	code := NormalizeCode(req.Code)
	if code == "" {
		return nil, &ValidationError{Field: "code", Reason: "required"}
	}
	if req.CartTotal.IsNegative() {
		return nil, &ValidationError{Field: "cartTotal", Reason: "must not be negative"}
	}

	c, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "lookup coupon")
	}

	now := s.now()
	switch {
	case !c.IsActive:
		return nil, ErrInactive
	case now.Before(c.StartDate):
		return nil, ErrNotStarted
	case now.After(c.EndDate):
		return nil, ErrExpired
	case c.UsageCapReached():
		return nil, ErrUsageLimitReached
	}
	if remaining, ok := c.RemainingBudget(); ok && !remaining.IsPositive() {
		return nil, ErrBudgetExhausted
	}
	if req.CartTotal.LessThan(c.MinOrderValue) {
		return nil, &MinOrderValueError{Min: c.MinOrderValue}
	}

	applicable := ApplicableAmount(c, req.CartTotal, req.Items)
	if !applicable.IsPositive() {
		return nil, ErrNoApplicableAmount
	}

	if req.UserID != "" && c.UserUsageCount(req.UserID) >= c.UsagePerUser {
		return nil, ErrUserLimitReached
	}

	discount, err := Calculate(c, applicable)
	if err != nil {
		return nil, err
	}

	return &Quote{
		CouponID:         c.ID,
		Code:             c.Code,
		Discount:         discount,
		ApplicableAmount: applicable,
		FinalAmount:      req.CartTotal.Sub(discount),
	}, nil
}

// NormalizeCode trims and upper-cases a coupon code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
