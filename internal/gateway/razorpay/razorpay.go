// Package razorpay adapts the Razorpay API to payment.Gateway.
package razorpay

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	rzp "github.com/razorpay/razorpay-go"

	"github.com/xenking/orderflow/internal/domain/payment"
)

var _ payment.Gateway = (*Gateway)(nil)

type ordersAPI interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

type paymentsAPI interface {
	Capture(paymentID string, amount int, data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
	Refund(paymentID string, amount int, data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

// Gateway talks to Razorpay with a key id and secret.
type Gateway struct {
	orders   ordersAPI
	payments paymentsAPI
	// autoCapture asks Razorpay to capture payments on authorization.
	autoCapture bool
}

// New creates a Razorpay gateway.
func New(keyID, keySecret string, autoCapture bool) *Gateway {
	client := rzp.NewClient(keyID, keySecret)
	return &Gateway{
		orders:      client.Order,
		payments:    client.Payment,
		autoCapture: autoCapture,
	}
}

// The Razorpay client does not take a context; calls are abandoned rather
// than interrupted when ctx ends.
func call[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	type result struct {
		v   T
		err error
	}
	done := make(chan result, 1)
	go func() {
		v, err := fn()
		done <- result{v, err}
	}()
	select {
	case r := <-done:
		return r.v, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func (g *Gateway) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*payment.GatewayOrder, error) {
	capture := 0
	if g.autoCapture {
		capture = 1
	}
	data := map[string]interface{}{
		"amount":          amountMinor,
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": capture,
	}
	resp, err := call(ctx, func() (map[string]interface{}, error) {
		return g.orders.Create(data, nil)
	})
	if err != nil {
		return nil, errors.Wrap(err, "razorpay order create")
	}
	id, ok := resp["id"].(string)
	if !ok || id == "" {
		return nil, errors.Errorf("razorpay order create: response has no id: %v", resp["error"])
	}
	return &payment.GatewayOrder{ID: id, AmountMinor: amountMinor, Currency: currency}, nil
}

func (g *Gateway) Capture(ctx context.Context, paymentID string, amountMinor int64, currency string) error {
	data := map[string]interface{}{"currency": currency}
	_, err := call(ctx, func() (map[string]interface{}, error) {
		return g.payments.Capture(paymentID, int(amountMinor), data, nil)
	})
	if err != nil {
		return errors.Wrapf(err, "razorpay capture %s", paymentID)
	}
	return nil
}

func (g *Gateway) Refund(ctx context.Context, paymentID string, amountMinor int64, notes map[string]string) (*payment.GatewayRefund, error) {
	data := map[string]interface{}{}
	if len(notes) > 0 {
		n := make(map[string]interface{}, len(notes))
		for k, v := range notes {
			n[k] = v
		}
		data["notes"] = n
	}
	resp, err := call(ctx, func() (map[string]interface{}, error) {
		return g.payments.Refund(paymentID, int(amountMinor), data, nil)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "razorpay refund %s", paymentID)
	}
	id, _ := resp["id"].(string)
	if id == "" {
		return nil, errors.Errorf("razorpay refund %s: response has no id", paymentID)
	}
	status := fmt.Sprint(resp["status"])
	return &payment.GatewayRefund{ID: id, Status: status}, nil
}
