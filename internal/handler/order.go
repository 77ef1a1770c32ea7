package handler

import (
	"context"
	"strings"

	"github.com/xenking/orderflow/gen/oas"
	"github.com/xenking/orderflow/internal/domain/order"
	"github.com/xenking/orderflow/internal/domain/payment"
)

func orderResponse(o *order.Order) *oas.OrderResponse {
	return &oas.OrderResponse{Success: true, Data: orderToOAS(o)}
}

// CreateOrder places a cash on delivery order from the cart in the body.
func (h *Handler) CreateOrder(ctx context.Context, req *oas.Checkout) (*oas.OrderResponse, error) {
	o, err := h.orders.CreateCOD(ctx, principal(ctx), checkoutFromOAS(*req))
	if err != nil {
		return nil, err
	}
	return orderResponse(o), nil
}

// ListOrders returns a page of orders. Customers only see their own.
func (h *Handler) ListOrders(ctx context.Context, params oas.ListOrdersParams) (*oas.OrderListResponse, error) {
	limit, offset := page(params.Limit, params.Offset)
	f := order.ListFilter{
		UserID: params.UserId.Or(""),
		Status: order.Status(params.Status.Or("")),
		Limit:  limit,
		Offset: offset,
	}

	orders, total, err := h.orders.List(ctx, principal(ctx), f)
	if err != nil {
		return nil, err
	}
	out := make([]oas.Order, len(orders))
	for i := range orders {
		out[i] = orderToOAS(&orders[i])
	}
	return &oas.OrderListResponse{
		Success: true,
		Data: oas.OrderPage{
			Orders: out,
			Total:  total,
			Limit:  limit,
			Offset: offset,
		},
	}, nil
}

// GetOrder returns one order.
func (h *Handler) GetOrder(ctx context.Context, params oas.GetOrderParams) (*oas.OrderResponse, error) {
	o, err := h.orders.Get(ctx, principal(ctx), params.ID)
	if err != nil {
		return nil, err
	}
	return orderResponse(o), nil
}

// CreatePaymentIntent prices the cart and opens a gateway payment for it.
// The optional totalAmount is the total the client displayed.
func (h *Handler) CreatePaymentIntent(ctx context.Context, req *oas.PaymentIntentRequest) (*oas.PaymentIntentResponse, error) {
	c := order.Checkout{
		Lines:      linesFromOAS(req.Items),
		Address:    addressFromOAS(req.ShippingAddress),
		CouponCode: req.CouponCode.Or(""),
	}
	expected := optDecimal(req.TotalAmount)
	if !expected.Valid {
		expected = optDecimal(req.Amount)
	}

	intent, err := h.orders.CreateIntent(ctx, principal(ctx), c, expected)
	if err != nil {
		return nil, err
	}
	tx := intent.Transaction
	return &oas.PaymentIntentResponse{
		Success: true,
		Data: oas.PaymentIntent{
			TransactionId:  tx.ID,
			GatewayOrderId: tx.GatewayOrderID,
			Amount:         money(tx.Amount),
			AmountMinor:    payment.ToMinor(tx.Amount),
			Currency:       tx.Currency,
			KeyId:          h.keyID,
			Subtotal:       money(intent.Pricing.Subtotal),
			Discount:       money(intent.Pricing.Discount),
			Tax:            money(intent.Pricing.Tax),
			Shipping:       money(intent.Pricing.Shipping),
			CouponId:       optString(intent.CouponID),
		},
	}, nil
}

// ConfirmPayment turns a paid intent into an order. The gateway field names
// are accepted alongside the plain ones; a cart in the body overrides the one
// recorded with the intent.
func (h *Handler) ConfirmPayment(ctx context.Context, req *oas.PaymentConfirmRequest) (*oas.OrderResponse, error) {
	var r order.ConfirmRequest
	r.Confirmation = payment.Confirmation{
		GatewayOrderID: strings.TrimSpace(firstOf(req.GatewayOrderId, req.RazorpayOrderID)),
		PaymentID:      firstOf(req.PaymentId, req.RazorpayPaymentID),
		Signature:      firstOf(req.Signature, req.RazorpaySignature),
	}
	switch {
	case req.OrderData.IsSet():
		c := checkoutFromOAS(req.OrderData.Value)
		r.Checkout = &c
	case len(req.Items) > 0 || req.ShippingAddress.IsSet():
		c := order.Checkout{
			Lines:      linesFromOAS(req.Items),
			CouponCode: req.CouponCode.Or(""),
		}
		if addr, ok := req.ShippingAddress.Get(); ok {
			c.Address = addressFromOAS(addr)
		}
		r.Checkout = &c
	}

	o, err := h.orders.ConfirmPayment(ctx, principal(ctx), r)
	if err != nil {
		return nil, err
	}
	return orderResponse(o), nil
}

func firstOf(vs ...oas.OptString) string {
	for _, v := range vs {
		if s := v.Or(""); s != "" {
			return s
		}
	}
	return ""
}

// CancelOrder cancels a pending or processing order and returns its stock.
func (h *Handler) CancelOrder(ctx context.Context, params oas.CancelOrderParams) (*oas.OrderResponse, error) {
	o, err := h.orders.Cancel(ctx, principal(ctx), params.ID)
	if err != nil {
		return nil, err
	}
	return orderResponse(o), nil
}

// UpdateOrderStatus moves the fulfillment status. Admin only.
func (h *Handler) UpdateOrderStatus(ctx context.Context, req *oas.StatusUpdate, params oas.UpdateOrderStatusParams) (*oas.OrderResponse, error) {
	status := firstOf(req.Status, req.PaymentStatus)
	if status == "" {
		return nil, badRequest("status", "required")
	}
	o, err := h.orders.UpdateStatus(ctx, principal(ctx), params.ID, order.Status(status))
	if err != nil {
		return nil, err
	}
	return orderResponse(o), nil
}

// UpdatePaymentStatus moves the payment status. Admin only.
func (h *Handler) UpdatePaymentStatus(ctx context.Context, req *oas.StatusUpdate, params oas.UpdatePaymentStatusParams) (*oas.OrderResponse, error) {
	status := firstOf(req.PaymentStatus, req.Status)
	if status == "" {
		return nil, badRequest("status", "required")
	}
	o, err := h.orders.UpdatePaymentStatus(ctx, principal(ctx), params.ID, order.PaymentStatus(status))
	if err != nil {
		return nil, err
	}
	return orderResponse(o), nil
}

// EditAddress replaces the shipping address while the order is editable.
// The address may be sent bare or wrapped in shippingAddress.
func (h *Handler) EditAddress(ctx context.Context, req *oas.AddressUpdate, params oas.EditAddressParams) (*oas.OrderResponse, error) {
	addr := order.Address{
		Address: req.Address.Or(""),
		City:    req.City.Or(""),
		State:   req.State.Or(""),
		Pincode: req.Pincode.Or(""),
		Phone:   req.Phone.Or(""),
	}
	if wrapped, ok := req.ShippingAddress.Get(); ok {
		addr = addressFromOAS(wrapped)
	}

	o, err := h.orders.EditAddress(ctx, principal(ctx), params.ID, addr)
	if err != nil {
		return nil, err
	}
	return orderResponse(o), nil
}

// UpdateAdminNote sets the internal note on an order. Admin only.
func (h *Handler) UpdateAdminNote(ctx context.Context, req *oas.AdminNoteUpdate, params oas.UpdateAdminNoteParams) (*oas.OrderResponse, error) {
	o, err := h.orders.UpdateAdminNote(ctx, principal(ctx), params.ID, firstOf(req.Note, req.AdminNote))
	if err != nil {
		return nil, err
	}
	return orderResponse(o), nil
}

// GetInvoice returns the order's invoice, numbering it on first request.
func (h *Handler) GetInvoice(ctx context.Context, params oas.GetInvoiceParams) (*oas.InvoiceResponse, error) {
	inv, err := h.orders.Invoice(ctx, principal(ctx), params.ID)
	if err != nil {
		return nil, err
	}
	return &oas.InvoiceResponse{Success: true, Data: invoiceToOAS(inv)}, nil
}
