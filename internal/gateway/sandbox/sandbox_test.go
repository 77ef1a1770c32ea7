package sandbox

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/orderflow/internal/domain/payment"
)

func TestGateway_PaySignsLikeGateway(t *testing.T) {
	g := New("secret")
	ctx := context.Background()

	o, err := g.CreateOrder(ctx, 10000, "INR", "rcpt")
	require.NoError(t, err)

	paymentID, sig, err := g.Pay(o.ID)
	require.NoError(t, err)
	assert.True(t, payment.VerifySignature("secret", o.ID, paymentID, sig))

	require.NoError(t, g.Capture(ctx, paymentID, 10000, "INR"))
	require.Error(t, g.Capture(ctx, paymentID, 9999, "INR"))

	r, err := g.Refund(ctx, paymentID, 6000, nil)
	require.NoError(t, err)
	assert.Equal(t, "processed", r.Status)

	_, err = g.Refund(ctx, paymentID, 6000, nil)
	require.Error(t, err)
}

func TestGateway_UnknownIDs(t *testing.T) {
	g := New("secret")
	_, _, err := g.Pay("order_missing")
	require.Error(t, err)
	require.ErrorIs(t, g.Capture(context.Background(), "pay_missing", 1, "INR"), ErrUnknownPayment)
	_, err = g.CreateOrder(context.Background(), 0, "INR", "r")
	require.Error(t, err)
}
