package handler

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/xenking/orderflow/gen/oas"
	"github.com/xenking/orderflow/internal/domain/coupon"
)

// CreateCoupon stores a new coupon definition. Admin only.
func (h *Handler) CreateCoupon(ctx context.Context, req *oas.CouponCreateRequest) (*oas.CouponResponse, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	start, err := parseTime("startDate", req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseTime("endDate", req.EndDate)
	if err != nil {
		return nil, err
	}

	cr := coupon.CreateRequest{
		Code:               req.Code,
		Title:              req.Title.Or(""),
		Description:        req.Description.Or(""),
		DiscountType:       coupon.DiscountType(req.DiscountType),
		DiscountValue:      decimal.NewFromFloat(req.DiscountValue),
		MinOrderValue:      decimal.NewFromFloat(req.MinOrderValue.Or(0)),
		UsagePerUser:       req.UsagePerUser.Or(0),
		Budget:             optDecimal(req.Budget),
		StartDate:          start,
		EndDate:            end,
		IsActive:           req.IsActive.Or(true),
		ApplicableProducts: req.ApplicableProducts,
		ExcludedProducts:   req.ExcludedProducts,
	}
	if n, ok := req.MaxUsageCount.Get(); ok {
		cr.MaxUsageCount = &n
	}

	c, err := h.coupons.Create(ctx, cr)
	if err != nil {
		return nil, err
	}
	return &oas.CouponResponse{Success: true, Data: couponToOAS(c)}, nil
}

// GetCoupon returns a coupon with its status and usage statistics. Admin only.
func (h *Handler) GetCoupon(ctx context.Context, params oas.GetCouponParams) (*oas.CouponDetailsResponse, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	d, err := h.coupons.Get(ctx, params.ID)
	if err != nil {
		return nil, err
	}
	return &oas.CouponDetailsResponse{Success: true, Data: detailsToOAS(d)}, nil
}

// ValidateCoupon quotes the discount a coupon grants the caller on a cart.
// Without a cart total the items are summed.
func (h *Handler) ValidateCoupon(ctx context.Context, req *oas.CouponValidateRequest) (*oas.CouponQuoteResponse, error) {
	vr := coupon.ValidateRequest{
		Code:   firstOf(req.Code, req.CouponCode),
		UserID: principal(ctx).UserID,
	}
	if vr.Code == "" {
		return nil, badRequest("code", "required")
	}
	for _, it := range req.Items {
		vr.Items = append(vr.Items, coupon.Item{
			ProductID: it.ProductId,
			Price:     decimal.NewFromFloat(it.Price.Or(0)),
			Quantity:  it.Quantity,
		})
	}
	if total := optDecimal(req.CartTotal); total.Valid {
		vr.CartTotal = total.Decimal
	} else if total := optDecimal(req.OrderValue); total.Valid {
		vr.CartTotal = total.Decimal
	}
	if vr.CartTotal.IsZero() {
		for _, it := range vr.Items {
			vr.CartTotal = vr.CartTotal.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
	}

	q, err := h.coupons.Validate(ctx, vr)
	if err != nil {
		return nil, err
	}
	return &oas.CouponQuoteResponse{Success: true, Data: quoteToOAS(q)}, nil
}

// RecordCouponUsage records the redemption of the coupon an order was placed
// with. A repeated call for the same order answers 409 with the existing
// entry.
func (h *Handler) RecordCouponUsage(ctx context.Context, req *oas.CouponUsageRequest, params oas.RecordCouponUsageParams) (*oas.CouponUsageResponse, error) {
	if req.OrderId == "" {
		return nil, badRequest("orderId", "required")
	}
	res, err := h.orders.RecordCouponUsage(ctx, principal(ctx), params.ID, req.OrderId)
	if err != nil {
		return nil, err
	}
	if res.AlreadyRecorded {
		return nil, failure(http.StatusConflict, coupon.ErrUsageAlreadyRecorded.Error(), &oas.ErrorDetails{
			Usage: oas.NewOptCouponUsage(usageToOAS(res.Usage)),
		})
	}
	return &oas.CouponUsageResponse{Success: true, Data: usageToOAS(res.Usage)}, nil
}
