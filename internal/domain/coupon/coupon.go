package coupon

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// DiscountType enumerates the supported coupon discount strategies.
type DiscountType string

const (
	// DiscountPercentage takes a percentage of the applicable amount.
	DiscountPercentage DiscountType = "percentage"
	// DiscountFixed takes a fixed amount capped at the applicable amount.
	DiscountFixed DiscountType = "fixed"
)

// Valid reports whether t is a known discount type.
func (t DiscountType) Valid() bool {
	return t == DiscountPercentage || t == DiscountFixed
}

var (
	// ErrNotFound is returned when no coupon matches the code or id.
	ErrNotFound = errors.New("invalid coupon code")
	// ErrInactive is returned for coupons switched off by an administrator.
	ErrInactive = errors.New("coupon is inactive")
	// ErrNotStarted is returned before the coupon's start date.
	ErrNotStarted = errors.New("coupon is not yet active")
	// ErrExpired is returned after the coupon's end date.
	ErrExpired = errors.New("coupon has expired")
	// ErrUsageLimitReached is returned when the total redemption cap is used up.
	ErrUsageLimitReached = errors.New("coupon usage limit reached")
	// ErrBudgetExhausted is returned when no discount budget remains.
	ErrBudgetExhausted = errors.New("coupon budget exhausted")
	// ErrNoApplicableAmount is returned when product scoping leaves nothing to discount.
	ErrNoApplicableAmount = errors.New("no applicable products in cart")
	// ErrUserLimitReached is returned when the user has used the coupon the
	// maximum number of times.
	ErrUserLimitReached = errors.New("coupon usage limit reached for this user")
	// ErrCodeExists is returned when creating a coupon whose code is taken.
	ErrCodeExists = errors.New("coupon code already exists")
	// ErrUsageAlreadyRecorded is returned by repositories when a usage entry
	// for the order already exists. Service callers see it as a result flag.
	ErrUsageAlreadyRecorded = errors.New("coupon usage already recorded for order")
)

// MinOrderValueError indicates the cart total is below the coupon's minimum.
type MinOrderValueError struct {
	Min decimal.Decimal
}

func (e *MinOrderValueError) Error() string {
	return fmt.Sprintf("minimum order value of %s required", e.Min.StringFixed(2))
}

// ValidationError reports malformed coupon input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Coupon is a discount code with redemption caps and an append-only usage log.
type Coupon struct {
	ID            string
	Code          string
	Title         string
	Description   string
	DiscountType  DiscountType
	DiscountValue decimal.Decimal
	MinOrderValue decimal.Decimal
	// MaxUsageCount caps total redemptions. Nil means unlimited.
	MaxUsageCount *int
	UsagePerUser  int
	// Budget caps the total discount granted. Invalid means unlimited.
	Budget         decimal.NullDecimal
	CurrentUsage   int
	TotalSales     decimal.Decimal
	BudgetUtilized decimal.Decimal
	StartDate      time.Time
	EndDate        time.Time
	IsActive       bool

	ApplicableProducts []string
	ExcludedProducts   []string

	UsageHistory []Usage
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Usage is one redemption of a coupon on an order.
type Usage struct {
	UserID         string
	OrderID        string
	OrderTotal     decimal.Decimal
	DiscountAmount decimal.Decimal
	UsedAt         time.Time
}

// RemainingBudget returns the unspent budget and whether a budget is set.
func (c *Coupon) RemainingBudget() (decimal.Decimal, bool) {
	if !c.Budget.Valid {
		return decimal.Zero, false
	}
	remaining := c.Budget.Decimal.Sub(c.BudgetUtilized)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	return remaining, true
}

// UsageCapReached reports whether the total redemption cap is used up.
func (c *Coupon) UsageCapReached() bool {
	return c.MaxUsageCount != nil && c.CurrentUsage >= *c.MaxUsageCount
}

// UserUsageCount returns how many times userID has redeemed the coupon.
func (c *Coupon) UserUsageCount(userID string) int {
	n := 0
	for _, u := range c.UsageHistory {
		if u.UserID == userID {
			n++
		}
	}
	return n
}

// FindUsage returns the usage entry recorded for orderID, if any.
func (c *Coupon) FindUsage(orderID string) (Usage, bool) {
	for _, u := range c.UsageHistory {
		if u.OrderID == orderID {
			return u, true
		}
	}
	return Usage{}, false
}

// Item is a cart line used for product scoping.
type Item struct {
	ProductID string
	Price     decimal.Decimal
	Quantity  int
}

// Repository provides lookup and atomic mutation of coupons.
type Repository interface {
	FindByCode(ctx context.Context, code string) (*Coupon, error)
	FindByID(ctx context.Context, id string) (*Coupon, error)
	Create(ctx context.Context, c *Coupon) error

	// AppendUsage adds u to the coupon's history and bumps its counters in one
	// atomic update. The update only applies while the usage cap, the budget
	// and the per-user limit still hold and no entry exists for u.OrderID.
	// When it does not apply, the returned error is ErrUsageAlreadyRecorded,
	// ErrUsageLimitReached, ErrBudgetExhausted or ErrUserLimitReached.
	AppendUsage(ctx context.Context, couponID string, u Usage) (*Coupon, error)
}
