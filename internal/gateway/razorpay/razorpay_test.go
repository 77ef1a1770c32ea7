package razorpay

import (
	"context"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrders struct {
	data map[string]interface{}
	resp map[string]interface{}
	err  error
}

func (f *fakeOrders) Create(data map[string]interface{}, _ map[string]string) (map[string]interface{}, error) {
	f.data = data
	return f.resp, f.err
}

type fakePayments struct {
	amount int
	data   map[string]interface{}
	resp   map[string]interface{}
	err    error
	block  chan struct{}
}

func (f *fakePayments) Capture(_ string, amount int, data map[string]interface{}, _ map[string]string) (map[string]interface{}, error) {
	if f.block != nil {
		<-f.block
	}
	f.amount = amount
	f.data = data
	return f.resp, f.err
}

func (f *fakePayments) Refund(_ string, amount int, data map[string]interface{}, _ map[string]string) (map[string]interface{}, error) {
	f.amount = amount
	f.data = data
	return f.resp, f.err
}

func TestGateway_CreateOrder(t *testing.T) {
	orders := &fakeOrders{resp: map[string]interface{}{"id": "order_abc"}}
	g := &Gateway{orders: orders, autoCapture: true}

	o, err := g.CreateOrder(context.Background(), 119050, "INR", "rcpt_1")
	require.NoError(t, err)
	assert.Equal(t, "order_abc", o.ID)
	assert.Equal(t, int64(119050), orders.data["amount"])
	assert.Equal(t, 1, orders.data["payment_capture"])
	assert.Equal(t, "rcpt_1", orders.data["receipt"])
}

func TestGateway_CreateOrder_Errors(t *testing.T) {
	g := &Gateway{orders: &fakeOrders{err: errors.New("BAD_REQUEST_ERROR")}}
	_, err := g.CreateOrder(context.Background(), 100, "INR", "r")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "razorpay order create")

	g = &Gateway{orders: &fakeOrders{resp: map[string]interface{}{}}}
	_, err = g.CreateOrder(context.Background(), 100, "INR", "r")
	require.Error(t, err)
}

func TestGateway_Refund(t *testing.T) {
	payments := &fakePayments{resp: map[string]interface{}{"id": "rfnd_1", "status": "processed"}}
	g := &Gateway{payments: payments}

	r, err := g.Refund(context.Background(), "pay_1", 5000, map[string]string{"reason": "damaged"})
	require.NoError(t, err)
	assert.Equal(t, "rfnd_1", r.ID)
	assert.Equal(t, "processed", r.Status)
	assert.Equal(t, 5000, payments.amount)
	assert.Equal(t, map[string]interface{}{"reason": "damaged"}, payments.data["notes"])
}

func TestGateway_Capture_ContextCancelled(t *testing.T) {
	payments := &fakePayments{block: make(chan struct{})}
	defer close(payments.block)
	g := &Gateway{payments: payments}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := g.Capture(ctx, "pay_1", 100, "INR")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
