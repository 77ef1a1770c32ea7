package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/orderflow/internal/domain/coupon"
	"github.com/xenking/orderflow/internal/domain/order"
	"github.com/xenking/orderflow/internal/domain/payment"
	"github.com/xenking/orderflow/internal/domain/product"
)

func TestCounters_Concurrent(t *testing.T) {
	c := NewCounters()
	var g errgroup.Group
	for range 50 {
		g.Go(func() error {
			_, err := c.Increment(context.Background(), "order_number")
			return err
		})
	}
	require.NoError(t, g.Wait())

	next, err := c.Increment(context.Background(), "order_number")
	require.NoError(t, err)
	assert.Equal(t, int64(51), next)
}

func TestCatalog_DecrementStock(t *testing.T) {
	ctx := context.Background()
	c := NewCatalog()
	c.Put(product.Product{ID: "p1", Price: decimal.NewFromInt(10), Stock: 3})

	ok, err := c.DecrementStock(ctx, "p1", 2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.DecrementStock(ctx, "p1", 2)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, c.Stock("p1"))

	_, err = c.DecrementStock(ctx, "nope", 1)
	require.ErrorIs(t, err, product.ErrNotFound)
	assert.Equal(t, -1, c.Stock("nope"))

	require.NoError(t, c.IncrementStock(ctx, "p1", 2))
	assert.Equal(t, 3, c.Stock("p1"))
}

func testCoupon(maxUses *int) *coupon.Coupon {
	return &coupon.Coupon{
		ID:             "c1",
		Code:           "SAVE10",
		DiscountType:   coupon.DiscountPercentage,
		DiscountValue:  decimal.NewFromInt(10),
		MaxUsageCount:  maxUses,
		UsagePerUser:   1,
		Budget:         decimal.NewNullDecimal(decimal.NewFromInt(100)),
		TotalSales:     decimal.Zero,
		BudgetUtilized: decimal.Zero,
		IsActive:       true,
	}
}

func usage(user, orderID, discount string) coupon.Usage {
	return coupon.Usage{
		UserID:         user,
		OrderID:        orderID,
		DiscountAmount: decimal.RequireFromString(discount),
		OrderTotal:     decimal.NewFromInt(500),
		UsedAt:         time.Now(),
	}
}

func TestCoupons_AppendUsage(t *testing.T) {
	ctx := context.Background()
	s := NewCoupons()
	require.NoError(t, s.Create(ctx, testCoupon(nil)))
	require.ErrorIs(t, s.Create(ctx, &coupon.Coupon{ID: "c2", Code: "SAVE10"}), coupon.ErrCodeExists)

	c, err := s.AppendUsage(ctx, "c1", usage("u1", "o1", "60"))
	require.NoError(t, err)
	assert.Equal(t, 1, c.CurrentUsage)

	_, err = s.AppendUsage(ctx, "c1", usage("u1", "o1", "60"))
	require.ErrorIs(t, err, coupon.ErrUsageAlreadyRecorded)

	_, err = s.AppendUsage(ctx, "c1", usage("u1", "o2", "10"))
	require.ErrorIs(t, err, coupon.ErrUserLimitReached)

	_, err = s.AppendUsage(ctx, "c1", usage("u2", "o3", "50"))
	require.ErrorIs(t, err, coupon.ErrBudgetExhausted)

	_, err = s.AppendUsage(ctx, "missing", usage("u2", "o3", "1"))
	require.ErrorIs(t, err, coupon.ErrNotFound)

	stored, err := s.FindByCode(ctx, "SAVE10")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(60).Equal(stored.BudgetUtilized))
	assert.Len(t, stored.UsageHistory, 1)
}

func TestCoupons_AppendUsage_SingleSlotRace(t *testing.T) {
	ctx := context.Background()
	s := NewCoupons()
	one := 1
	require.NoError(t, s.Create(ctx, testCoupon(&one)))

	const workers = 20
	errs := make([]error, workers)
	var g errgroup.Group
	for i := range workers {
		g.Go(func() error {
			_, errs[i] = s.AppendUsage(ctx, "c1", usage(fmt.Sprintf("u%d", i), fmt.Sprintf("o%d", i), "1"))
			return nil
		})
	}
	require.NoError(t, g.Wait())

	var ok int
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, coupon.ErrUsageLimitReached)
	}
	assert.Equal(t, 1, ok)

	stored, err := s.FindByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 1, stored.CurrentUsage)
}

func TestCoupons_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewCoupons()
	require.NoError(t, s.Create(ctx, testCoupon(nil)))

	c, err := s.FindByID(ctx, "c1")
	require.NoError(t, err)
	c.CurrentUsage = 99
	c.UsageHistory = append(c.UsageHistory, usage("u1", "o1", "1"))

	again, err := s.FindByID(ctx, "c1")
	require.NoError(t, err)
	assert.Zero(t, again.CurrentUsage)
	assert.Empty(t, again.UsageHistory)
}

func newTestOrder(id string, number int64, user string) *order.Order {
	return &order.Order{
		ID:            id,
		Number:        number,
		UserID:        user,
		Status:        order.StatusPending,
		PaymentStatus: order.PaymentPending,
		Items:         []order.Item{{ProductID: "p1", Quantity: 1}},
	}
}

func TestOrders_ConditionalUpdates(t *testing.T) {
	ctx := context.Background()
	s := NewOrders()
	require.NoError(t, s.Create(ctx, newTestOrder("o1", 1, "u1")))
	require.ErrorIs(t, s.Create(ctx, newTestOrder("o1", 2, "u1")), order.ErrDuplicate)
	require.ErrorIs(t, s.Create(ctx, newTestOrder("o2", 1, "u1")), order.ErrDuplicate)

	editable := []order.Status{order.StatusPending, order.StatusProcessing}
	o, err := s.UpdateStatus(ctx, "o1", editable, order.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, o.Status)

	_, err = s.UpdateStatus(ctx, "o1", editable, order.StatusCancelled)
	require.ErrorIs(t, err, order.ErrStatusConflict)
	_, err = s.UpdateAddress(ctx, "o1", editable, order.Address{City: "Goa"})
	require.ErrorIs(t, err, order.ErrStatusConflict)
	_, err = s.UpdateStatus(ctx, "nope", editable, order.StatusCancelled)
	require.ErrorIs(t, err, order.ErrNotFound)
}

func TestOrders_ConcurrentCancelWinsOnce(t *testing.T) {
	ctx := context.Background()
	s := NewOrders()
	require.NoError(t, s.Create(ctx, newTestOrder("o1", 1, "u1")))

	const workers = 10
	errs := make([]error, workers)
	var g errgroup.Group
	for i := range workers {
		g.Go(func() error {
			_, errs[i] = s.UpdateStatus(ctx, "o1", []order.Status{order.StatusPending}, order.StatusCancelled)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	var won int
	for _, err := range errs {
		if err == nil {
			won++
		}
	}
	assert.Equal(t, 1, won)
}

func TestOrders_AssignInvoiceNumber(t *testing.T) {
	ctx := context.Background()
	s := NewOrders()
	require.NoError(t, s.Create(ctx, newTestOrder("o1", 1, "u1")))
	require.NoError(t, s.Create(ctx, newTestOrder("o2", 2, "u1")))

	o, err := s.AssignInvoiceNumber(ctx, "o1", "202500001")
	require.NoError(t, err)
	assert.Equal(t, "202500001", *o.InvoiceNumber)

	o, err = s.AssignInvoiceNumber(ctx, "o1", "202500002")
	require.NoError(t, err)
	assert.Equal(t, "202500001", *o.InvoiceNumber)

	_, err = s.AssignInvoiceNumber(ctx, "o2", "202500001")
	require.ErrorIs(t, err, order.ErrInvoiceExists)
}

func TestOrders_List(t *testing.T) {
	ctx := context.Background()
	s := NewOrders()
	for i := 1; i <= 5; i++ {
		user := "u1"
		if i%2 == 0 {
			user = "u2"
		}
		require.NoError(t, s.Create(ctx, newTestOrder(fmt.Sprintf("o%d", i), int64(i), user)))
	}

	page, total, err := s.List(ctx, order.ListFilter{UserID: "u1", Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page, 2)
	assert.Equal(t, int64(5), page[0].Number)
	assert.Equal(t, int64(3), page[1].Number)

	page, _, err = s.List(ctx, order.ListFilter{Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestTransactions_Transition(t *testing.T) {
	ctx := context.Background()
	s := NewTransactions()
	tx := &payment.Transaction{
		ID:             "t1",
		GatewayOrderID: "order_1",
		UserID:         "u1",
		Amount:         decimal.NewFromInt(100),
		Status:         payment.StatusCreated,
		CreatedAt:      time.Now(),
	}
	require.NoError(t, s.Create(ctx, tx))
	require.ErrorIs(t, s.Create(ctx, tx), payment.ErrDuplicate)

	claimed, err := s.Transition(ctx, "order_1",
		[]payment.Status{payment.StatusCreated, payment.StatusFailed},
		payment.Update{Status: payment.StatusAuthorized, PaymentID: "pay_1"})
	require.NoError(t, err)
	assert.Equal(t, "pay_1", claimed.PaymentID)

	_, err = s.Transition(ctx, "order_1",
		[]payment.Status{payment.StatusCreated, payment.StatusFailed},
		payment.Update{Status: payment.StatusAuthorized})
	require.ErrorIs(t, err, payment.ErrStateConflict)

	_, err = s.Transition(ctx, "order_1",
		[]payment.Status{payment.StatusAuthorized},
		payment.Update{Status: payment.StatusCaptured, OrderID: "o1"})
	require.NoError(t, err)

	linked, err := s.FindByOrderID(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, payment.StatusCaptured, linked.Status)

	_, err = s.FindByOrderID(ctx, "o2")
	require.ErrorIs(t, err, payment.ErrNotFound)
}

func TestTransactions_Stats(t *testing.T) {
	ctx := context.Background()
	s := NewTransactions()
	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	for i, st := range []payment.Status{payment.StatusCaptured, payment.StatusCaptured, payment.StatusFailed} {
		require.NoError(t, s.Create(ctx, &payment.Transaction{
			GatewayOrderID: fmt.Sprintf("order_%d", i),
			Amount:         decimal.NewFromInt(100),
			Status:         st,
			CreatedAt:      day.Add(time.Duration(i) * 24 * time.Hour),
		}))
	}

	stats, err := s.Stats(ctx, day, day.Add(72*time.Hour))
	require.NoError(t, err)
	require.Len(t, stats.ByStatus, 2)
	assert.Equal(t, payment.StatusCaptured, stats.ByStatus[0].Status)
	assert.Equal(t, 2, stats.ByStatus[0].Count)
	assert.True(t, decimal.NewFromInt(200).Equal(stats.ByStatus[0].Amount))
	assert.Len(t, stats.Daily, 3)

	stats, err = s.Stats(ctx, day.Add(48*time.Hour), time.Time{})
	require.NoError(t, err)
	require.Len(t, stats.ByStatus, 1)
	assert.Equal(t, payment.StatusFailed, stats.ByStatus[0].Status)
}
