package coupon

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var codePattern = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

// Status texts reported to administrators.
const (
	StatusInactive          = "Inactive"
	StatusScheduled         = "Scheduled"
	StatusExpired           = "Expired"
	StatusBudgetExhausted   = "Budget Exhausted"
	StatusUsageLimitReached = "Usage Limit Reached"
	StatusActive            = "Active"
)

// Status summarises whether the coupon can currently be redeemed.
func Status(c *Coupon, now time.Time) string {
	switch {
	case !c.IsActive:
		return StatusInactive
	case now.Before(c.StartDate):
		return StatusScheduled
	case now.After(c.EndDate):
		return StatusExpired
	}
	if remaining, ok := c.RemainingBudget(); ok && !remaining.IsPositive() {
		return StatusBudgetExhausted
	}
	if c.UsageCapReached() {
		return StatusUsageLimitReached
	}
	return StatusActive
}

// Stats aggregates a coupon's usage history.
type Stats struct {
	Uses              int
	UniqueUsers       int
	TotalDiscount     decimal.Decimal
	TotalSales        decimal.Decimal
	AverageOrderValue decimal.Decimal
	// BudgetRemaining is only valid when the coupon has a budget.
	BudgetRemaining decimal.NullDecimal
}

// ComputeStats derives Stats from the coupon's history.
func ComputeStats(c *Coupon) Stats {
	st := Stats{
		Uses:          len(c.UsageHistory),
		TotalDiscount: decimal.Zero,
		TotalSales:    decimal.Zero,
	}
	users := make(map[string]struct{})
	for _, u := range c.UsageHistory {
		users[u.UserID] = struct{}{}
		st.TotalDiscount = st.TotalDiscount.Add(u.DiscountAmount)
		st.TotalSales = st.TotalSales.Add(u.OrderTotal)
	}
	st.UniqueUsers = len(users)
	if st.Uses > 0 {
		st.AverageOrderValue = st.TotalSales.Div(decimal.NewFromInt(int64(st.Uses))).Round(2)
	}
	if remaining, ok := c.RemainingBudget(); ok {
		st.BudgetRemaining = decimal.NewNullDecimal(remaining)
	}
	return st
}

// CreateRequest holds the administrator-supplied coupon definition.
type CreateRequest struct {
	Code               string
	Title              string
	Description        string
	DiscountType       DiscountType
	DiscountValue      decimal.Decimal
	MinOrderValue      decimal.Decimal
	MaxUsageCount      *int
	UsagePerUser       int
	Budget             decimal.NullDecimal
	StartDate          time.Time
	EndDate            time.Time
	IsActive           bool
	ApplicableProducts []string
	ExcludedProducts   []string
}

// Validate checks the definition and fills defaults.
func (r *CreateRequest) Validate() error {
	r.Code = NormalizeCode(r.Code)
	r.Title = strings.TrimSpace(r.Title)
	switch {
	case !codePattern.MatchString(r.Code):
		return &ValidationError{Field: "code", Reason: "must be 3-20 letters or digits"}
	case r.Title == "":
		return &ValidationError{Field: "title", Reason: "required"}
	case !r.DiscountType.Valid():
		return &ValidationError{Field: "discountType", Reason: "must be percentage or fixed"}
	case !r.DiscountValue.IsPositive():
		return &ValidationError{Field: "discountValue", Reason: "must be positive"}
	case r.DiscountType == DiscountPercentage && r.DiscountValue.GreaterThan(hundred):
		return &ValidationError{Field: "discountValue", Reason: "percentage cannot exceed 100"}
	case r.MinOrderValue.IsNegative():
		return &ValidationError{Field: "minOrderValue", Reason: "must not be negative"}
	case r.MaxUsageCount != nil && *r.MaxUsageCount < 1:
		return &ValidationError{Field: "maxUsageCount", Reason: "must be at least 1"}
	case r.Budget.Valid && r.Budget.Decimal.IsNegative():
		return &ValidationError{Field: "budget", Reason: "must not be negative"}
	case !r.EndDate.After(r.StartDate):
		return &ValidationError{Field: "endDate", Reason: "must be after start date"}
	}
	if r.UsagePerUser == 0 {
		r.UsagePerUser = 1
	}
	if r.UsagePerUser < 1 {
		return &ValidationError{Field: "usagePerUser", Reason: "must be at least 1"}
	}
	return nil
}

// Coupon builds the stored coupon for a validated request.
func (r CreateRequest) Coupon(id string, now time.Time) *Coupon {
	now = now.UTC()
	return &Coupon{
		ID:                 id,
		Code:               r.Code,
		Title:              r.Title,
		Description:        strings.TrimSpace(r.Description),
		DiscountType:       r.DiscountType,
		DiscountValue:      r.DiscountValue,
		MinOrderValue:      r.MinOrderValue,
		MaxUsageCount:      r.MaxUsageCount,
		UsagePerUser:       r.UsagePerUser,
		Budget:             r.Budget,
		TotalSales:         decimal.Zero,
		BudgetUtilized:     decimal.Zero,
		StartDate:          r.StartDate.UTC(),
		EndDate:            r.EndDate.UTC(),
		IsActive:           r.IsActive,
		ApplicableProducts: r.ApplicableProducts,
		ExcludedProducts:   r.ExcludedProducts,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// Create validates and stores a new coupon.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Coupon, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	c := req.Coupon(uuid.NewString(), s.now())
	if err := s.repo.Create(ctx, c); err != nil {
		if errors.Is(err, ErrCodeExists) {
			return nil, ErrCodeExists
		}
		return nil, errors.Wrapf(err, "create coupon %s", c.Code)
	}
	return c, nil
}

// Details is a coupon with its derived status and statistics.
type Details struct {
	Coupon *Coupon
	Status string
	Stats  Stats
}

// Get returns the coupon with the given id along with its status and stats.
func (s *Service) Get(ctx context.Context, id string) (*Details, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrapf(err, "get coupon %s", id)
	}
	return &Details{
		Coupon: c,
		Status: Status(c, s.now()),
		Stats:  ComputeStats(c),
	}, nil
}
