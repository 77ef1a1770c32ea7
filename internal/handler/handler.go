// Package handler implements the generated orderflow API server on top of
// the domain services.
package handler

import (
	"context"

	"github.com/xenking/orderflow/gen/oas"
	"github.com/xenking/orderflow/internal/domain/auth"
	"github.com/xenking/orderflow/internal/domain/coupon"
	"github.com/xenking/orderflow/internal/domain/order"
	"github.com/xenking/orderflow/internal/domain/payment"
)

// Compile-time check ensuring Handler satisfies the ogen Handler interface.
var _ oas.Handler = (*Handler)(nil)

// HandlerConfig holds non-dependency configuration for the Handler.
type HandlerConfig struct {
	// KeyID is the public gateway key returned with payment intents so the
	// client can open the checkout widget.
	KeyID string
}

// Handler implements the ogen-generated Handler interface, delegating
// business logic to the order, coupon and payment services.
type Handler struct {
	oas.UnimplementedHandler

	orders   *order.Service
	coupons  *coupon.Service
	payments *payment.Service
	keyID    string
}

// NewHandler constructs a Handler with the required domain dependencies.
func NewHandler(
	cfg HandlerConfig,
	orders *order.Service,
	coupons *coupon.Service,
	payments *payment.Service,
) *Handler {
	return &Handler{
		orders:   orders,
		coupons:  coupons,
		payments: payments,
		keyID:    cfg.KeyID,
	}
}

// NewServer builds the API server under /api with the JSON envelope used for
// routing, decoding and security failures. opts are applied last.
func NewServer(h *Handler, sec *SecurityHandler, opts ...oas.ServerOption) (*oas.Server, error) {
	base := []oas.ServerOption{
		oas.WithPathPrefix("/api"),
		oas.WithErrorHandler(ErrorHandler),
		oas.WithNotFound(NotFound),
		oas.WithMethodNotAllowed(MethodNotAllowed),
	}
	return oas.NewServer(h, sec, append(base, opts...)...)
}

// principal returns the caller identity placed in the context by
// SecurityHandler.
func principal(ctx context.Context) auth.Principal {
	p, _ := auth.FromContext(ctx)
	return p
}

// requireAdmin rejects callers without the admin role.
func requireAdmin(ctx context.Context) (auth.Principal, error) {
	p := principal(ctx)
	if !p.Admin {
		return p, auth.ErrForbidden
	}
	return p, nil
}
