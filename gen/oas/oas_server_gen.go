// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"context"
)

// Handler handles operations described by OpenAPI v3 specification.
type Handler interface {
	// CancelOrder implements cancelOrder operation.
	//
	// Cancel a pending or processing order.
	//
	// POST /orders/{id}/cancel
	CancelOrder(ctx context.Context, params CancelOrderParams) (*OrderResponse, error)
	// ConfirmPayment implements confirmPayment operation.
	//
	// Turn a paid intent into an order.
	//
	// POST /orders/payment-confirm
	ConfirmPayment(ctx context.Context, req *PaymentConfirmRequest) (*OrderResponse, error)
	// CreateCoupon implements createCoupon operation.
	//
	// Create a coupon (admin).
	//
	// POST /coupons
	CreateCoupon(ctx context.Context, req *CouponCreateRequest) (*CouponResponse, error)
	// CreateOrder implements createOrder operation.
	//
	// Place a cash on delivery order.
	//
	// POST /orders
	CreateOrder(ctx context.Context, req *Checkout) (*OrderResponse, error)
	// CreatePaymentIntent implements createPaymentIntent operation.
	//
	// Price a cart and open a gateway payment for it.
	//
	// POST /orders/payment-intent
	CreatePaymentIntent(ctx context.Context, req *PaymentIntentRequest) (*PaymentIntentResponse, error)
	// EditAddress implements editAddress operation.
	//
	// Replace the shipping address while the order is editable.
	//
	// PATCH /orders/{id}/address
	EditAddress(ctx context.Context, req *AddressUpdate, params EditAddressParams) (*OrderResponse, error)
	// GetCoupon implements getCoupon operation.
	//
	// Get a coupon with status and usage statistics (admin).
	//
	// GET /coupons/{id}
	GetCoupon(ctx context.Context, params GetCouponParams) (*CouponDetailsResponse, error)
	// GetInvoice implements getInvoice operation.
	//
	// Get the invoice, numbering it on first request.
	//
	// GET /orders/{id}/invoice
	GetInvoice(ctx context.Context, params GetInvoiceParams) (*InvoiceResponse, error)
	// GetOrder implements getOrder operation.
	//
	// GET /orders/{id}
	GetOrder(ctx context.Context, params GetOrderParams) (*OrderResponse, error)
	// GetTransactionStats implements getTransactionStats operation.
	//
	// Ledger totals by status and day (admin).
	//
	// GET /transactions/stats
	GetTransactionStats(ctx context.Context, params GetTransactionStatsParams) (*PaymentStatsResponse, error)
	// ListOrders implements listOrders operation.
	//
	// Customers only see their own orders.
	//
	// GET /orders
	ListOrders(ctx context.Context, params ListOrdersParams) (*OrderListResponse, error)
	// ListTransactions implements listTransactions operation.
	//
	// List ledger rows, newest first (admin).
	//
	// GET /transactions
	ListTransactions(ctx context.Context, params ListTransactionsParams) (*TransactionListResponse, error)
	// RecordCouponUsage implements recordCouponUsage operation.
	//
	// Amounts are taken from the stored order. A repeated call for the same
	// order answers 409 with the existing entry in details.usage.
	//
	// POST /coupons/{id}/usage
	RecordCouponUsage(ctx context.Context, req *CouponUsageRequest, params RecordCouponUsageParams) (*CouponUsageResponse, error)
	// RefundOrder implements refundOrder operation.
	//
	// An empty object refunds the full amount.
	//
	// POST /transactions/{orderId}/refund
	RefundOrder(ctx context.Context, req *RefundRequest, params RefundOrderParams) (*RefundResponse, error)
	// UpdateAdminNote implements updateAdminNote operation.
	//
	// Set the internal note (admin).
	//
	// PATCH /orders/{id}/admin-note
	UpdateAdminNote(ctx context.Context, req *AdminNoteUpdate, params UpdateAdminNoteParams) (*OrderResponse, error)
	// UpdateOrderStatus implements updateOrderStatus operation.
	//
	// Move the fulfillment status (admin).
	//
	// PATCH /orders/{id}/status
	UpdateOrderStatus(ctx context.Context, req *StatusUpdate, params UpdateOrderStatusParams) (*OrderResponse, error)
	// UpdatePaymentStatus implements updatePaymentStatus operation.
	//
	// Move the payment status (admin).
	//
	// PATCH /orders/{id}/payment
	UpdatePaymentStatus(ctx context.Context, req *StatusUpdate, params UpdatePaymentStatusParams) (*OrderResponse, error)
	// ValidateCoupon implements validateCoupon operation.
	//
	// Quote the discount a coupon grants on a cart.
	//
	// POST /coupons/validate
	ValidateCoupon(ctx context.Context, req *CouponValidateRequest) (*CouponQuoteResponse, error)
	// NewError creates *ErrorStatusCode from error returned by handler.
	//
	// Used for common default response.
	NewError(ctx context.Context, err error) *ErrorStatusCode
}

// Server implements http server based on OpenAPI v3 specification and
// calls Handler to handle requests.
type Server struct {
	h   Handler
	sec SecurityHandler
	baseServer
}

// NewServer creates new Server.
func NewServer(h Handler, sec SecurityHandler, opts ...ServerOption) (*Server, error) {
	s, err := newServerConfig(opts...).baseServer()
	if err != nil {
		return nil, err
	}
	return &Server{
		h:          h,
		sec:        sec,
		baseServer: s,
	}, nil
}
