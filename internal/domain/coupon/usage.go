package coupon

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// UsageRequest describes one redemption to record.
type UsageRequest struct {
	CouponID   string
	UserID     string
	OrderID    string
	OrderTotal decimal.Decimal
	Discount   decimal.Decimal
}

// UsageResult is the outcome of RecordUsage.
type UsageResult struct {
	Usage Usage
	// AlreadyRecorded is set when the order had been recorded before. Usage
	// then holds the existing entry and no counters changed.
	AlreadyRecorded bool
}

// RecordUsage appends a usage entry for the order and bumps the coupon's
// counters. Recording the same order twice is not an error: the second call
// reports AlreadyRecorded. Caps are enforced by the repository at write time.
func (s *Service) RecordUsage(ctx context.Context, req UsageRequest) (*UsageResult, error) {
	switch {
	case req.CouponID == "":
		return nil, &ValidationError{Field: "couponId", Reason: "required"}
	case req.OrderID == "":
		return nil, &ValidationError{Field: "orderId", Reason: "required"}
	case req.UserID == "":
		return nil, &ValidationError{Field: "userId", Reason: "required"}
	case req.Discount.IsNegative():
		return nil, &ValidationError{Field: "discountAmount", Reason: "must not be negative"}
	case req.OrderTotal.IsNegative():
		return nil, &ValidationError{Field: "orderTotal", Reason: "must not be negative"}
	}

	u := Usage{
		UserID:         req.UserID,
		OrderID:        req.OrderID,
		OrderTotal:     req.OrderTotal.Round(2),
		DiscountAmount: req.Discount.Round(2),
		UsedAt:         s.now().UTC(),
	}

	_, err := s.repo.AppendUsage(ctx, req.CouponID, u)
	switch {
	case err == nil:
		return &UsageResult{Usage: u}, nil
	case errors.Is(err, ErrUsageAlreadyRecorded):
		c, err := s.repo.FindByID(ctx, req.CouponID)
		if err != nil {
			return nil, errors.Wrap(err, "reload coupon")
		}
		existing, ok := c.FindUsage(req.OrderID)
		if !ok {
			return nil, errors.Errorf("usage for order %s reported but not found", req.OrderID)
		}
		return &UsageResult{Usage: existing, AlreadyRecorded: true}, nil
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrUsageLimitReached),
		errors.Is(err, ErrBudgetExhausted),
		errors.Is(err, ErrUserLimitReached):
		return nil, err
	default:
		return nil, errors.Wrap(err, "append coupon usage")
	}
}
