// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"context"

	ht "github.com/ogen-go/ogen/http"
)

// UnimplementedHandler is no-op Handler which returns http.ErrNotImplemented.
type UnimplementedHandler struct{}

var _ Handler = UnimplementedHandler{}

// CancelOrder implements cancelOrder operation.
//
// Cancel a pending or processing order.
//
// POST /orders/{id}/cancel
func (UnimplementedHandler) CancelOrder(ctx context.Context, params CancelOrderParams) (r *OrderResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// ConfirmPayment implements confirmPayment operation.
//
// Turn a paid intent into an order.
//
// POST /orders/payment-confirm
func (UnimplementedHandler) ConfirmPayment(ctx context.Context, req *PaymentConfirmRequest) (r *OrderResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// CreateCoupon implements createCoupon operation.
//
// Create a coupon (admin).
//
// POST /coupons
func (UnimplementedHandler) CreateCoupon(ctx context.Context, req *CouponCreateRequest) (r *CouponResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// CreateOrder implements createOrder operation.
//
// Place a cash on delivery order.
//
// POST /orders
func (UnimplementedHandler) CreateOrder(ctx context.Context, req *Checkout) (r *OrderResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// CreatePaymentIntent implements createPaymentIntent operation.
//
// Price a cart and open a gateway payment for it.
//
// POST /orders/payment-intent
func (UnimplementedHandler) CreatePaymentIntent(ctx context.Context, req *PaymentIntentRequest) (r *PaymentIntentResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// EditAddress implements editAddress operation.
//
// Replace the shipping address while the order is editable.
//
// PATCH /orders/{id}/address
func (UnimplementedHandler) EditAddress(ctx context.Context, req *AddressUpdate, params EditAddressParams) (r *OrderResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// GetCoupon implements getCoupon operation.
//
// Get a coupon with status and usage statistics (admin).
//
// GET /coupons/{id}
func (UnimplementedHandler) GetCoupon(ctx context.Context, params GetCouponParams) (r *CouponDetailsResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// GetInvoice implements getInvoice operation.
//
// Get the invoice, numbering it on first request.
//
// GET /orders/{id}/invoice
func (UnimplementedHandler) GetInvoice(ctx context.Context, params GetInvoiceParams) (r *InvoiceResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// GetOrder implements getOrder operation.
//
// GET /orders/{id}
func (UnimplementedHandler) GetOrder(ctx context.Context, params GetOrderParams) (r *OrderResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// GetTransactionStats implements getTransactionStats operation.
//
// Ledger totals by status and day (admin).
//
// GET /transactions/stats
func (UnimplementedHandler) GetTransactionStats(ctx context.Context, params GetTransactionStatsParams) (r *PaymentStatsResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// ListOrders implements listOrders operation.
//
// Customers only see their own orders.
//
// GET /orders
func (UnimplementedHandler) ListOrders(ctx context.Context, params ListOrdersParams) (r *OrderListResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// ListTransactions implements listTransactions operation.
//
// List ledger rows, newest first (admin).
//
// GET /transactions
func (UnimplementedHandler) ListTransactions(ctx context.Context, params ListTransactionsParams) (r *TransactionListResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// RecordCouponUsage implements recordCouponUsage operation.
//
// Amounts are taken from the stored order. A repeated call for the same
// order answers 409 with the existing entry in details.usage.
//
// POST /coupons/{id}/usage
func (UnimplementedHandler) RecordCouponUsage(ctx context.Context, req *CouponUsageRequest, params RecordCouponUsageParams) (r *CouponUsageResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// RefundOrder implements refundOrder operation.
//
// An empty object refunds the full amount.
//
// POST /transactions/{orderId}/refund
func (UnimplementedHandler) RefundOrder(ctx context.Context, req *RefundRequest, params RefundOrderParams) (r *RefundResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// UpdateAdminNote implements updateAdminNote operation.
//
// Set the internal note (admin).
//
// PATCH /orders/{id}/admin-note
func (UnimplementedHandler) UpdateAdminNote(ctx context.Context, req *AdminNoteUpdate, params UpdateAdminNoteParams) (r *OrderResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// UpdateOrderStatus implements updateOrderStatus operation.
//
// Move the fulfillment status (admin).
//
// PATCH /orders/{id}/status
func (UnimplementedHandler) UpdateOrderStatus(ctx context.Context, req *StatusUpdate, params UpdateOrderStatusParams) (r *OrderResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// UpdatePaymentStatus implements updatePaymentStatus operation.
//
// Move the payment status (admin).
//
// PATCH /orders/{id}/payment
func (UnimplementedHandler) UpdatePaymentStatus(ctx context.Context, req *StatusUpdate, params UpdatePaymentStatusParams) (r *OrderResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// ValidateCoupon implements validateCoupon operation.
//
// Quote the discount a coupon grants on a cart.
//
// POST /coupons/validate
func (UnimplementedHandler) ValidateCoupon(ctx context.Context, req *CouponValidateRequest) (r *CouponQuoteResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// NewError creates *ErrorStatusCode from error returned by handler.
//
// Used for common default response.
func (UnimplementedHandler) NewError(ctx context.Context, err error) (r *ErrorStatusCode) {
	r = new(ErrorStatusCode)
	return r
}
