// Package sandbox is an offline payment gateway for development and tests.
// It issues gateway order ids locally and signs simulated payments with the
// same HMAC scheme as the real gateway.
package sandbox

import (
	"context"
	"sync"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/xenking/orderflow/internal/domain/payment"
)

var _ payment.Gateway = (*Gateway)(nil)

// ErrUnknownPayment is returned for payment ids the sandbox never issued.
var ErrUnknownPayment = errors.New("sandbox: unknown payment")

// Gateway simulates a payment provider.
type Gateway struct {
	secret string

	mu       sync.Mutex
	orders   map[string]int64
	payments map[string]string
	refunded map[string]int64
}

// New returns a sandbox gateway signing with secret.
func New(secret string) *Gateway {
	return &Gateway{
		secret:   secret,
		orders:   make(map[string]int64),
		payments: make(map[string]string),
		refunded: make(map[string]int64),
	}
}

func shortID() string {
	return uuid.NewString()[:14]
}

func (g *Gateway) CreateOrder(_ context.Context, amountMinor int64, currency, _ string) (*payment.GatewayOrder, error) {
	if amountMinor <= 0 {
		return nil, errors.Errorf("sandbox: amount must be positive, got %d", amountMinor)
	}
	id := "order_sbx_" + shortID()
	g.mu.Lock()
	g.orders[id] = amountMinor
	g.mu.Unlock()
	return &payment.GatewayOrder{ID: id, AmountMinor: amountMinor, Currency: currency}, nil
}

// Pay simulates the customer paying the gateway order and returns the
// payment id and signature the client would receive.
func (g *Gateway) Pay(gatewayOrderID string) (paymentID, signature string, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.orders[gatewayOrderID]; !ok {
		return "", "", errors.Errorf("sandbox: unknown order %s", gatewayOrderID)
	}
	paymentID = "pay_sbx_" + shortID()
	g.payments[paymentID] = gatewayOrderID
	return paymentID, payment.Sign(g.secret, gatewayOrderID, paymentID), nil
}

func (g *Gateway) Capture(_ context.Context, paymentID string, amountMinor int64, _ string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	orderID, ok := g.payments[paymentID]
	if !ok {
		return ErrUnknownPayment
	}
	if g.orders[orderID] != amountMinor {
		return errors.Errorf("sandbox: capture amount %d does not match order amount %d", amountMinor, g.orders[orderID])
	}
	return nil
}

func (g *Gateway) Refund(_ context.Context, paymentID string, amountMinor int64, _ map[string]string) (*payment.GatewayRefund, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	orderID, ok := g.payments[paymentID]
	if !ok {
		return nil, ErrUnknownPayment
	}
	if g.refunded[paymentID]+amountMinor > g.orders[orderID] {
		return nil, errors.New("sandbox: refund exceeds captured amount")
	}
	g.refunded[paymentID] += amountMinor
	return &payment.GatewayRefund{ID: "rfnd_sbx_" + shortID(), Status: "processed"}, nil
}
