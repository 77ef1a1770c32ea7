//go:build integration

package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/orderflow/internal/domain/coupon"
	"github.com/xenking/orderflow/internal/domain/order"
	"github.com/xenking/orderflow/internal/domain/payment"
	"github.com/xenking/orderflow/internal/domain/product"
	"github.com/xenking/orderflow/internal/domain/sequence"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "orders",
				"POSTGRES_PASSWORD": "orders",
				"POSTGRES_DB":       "orders",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "start postgres: %v\n", err)
		os.Exit(1)
	}

	code := func() int {
		defer func() { _ = container.Terminate(ctx) }()

		host, err := container.Host(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "container host: %v\n", err)
			return 1
		}
		port, err := container.MappedPort(ctx, "5432/tcp")
		if err != nil {
			fmt.Fprintf(os.Stderr, "container port: %v\n", err)
			return 1
		}
		dsn := fmt.Sprintf("postgres://orders:orders@%s:%s/orders?sslmode=disable", host, port.Port())

		testPool, err = NewPool(ctx, dsn)
		if err != nil {
			fmt.Fprintf(os.Stderr, "pool: %v\n", err)
			return 1
		}
		defer testPool.Close()
		if err := RunMigrations(ctx, testPool); err != nil {
			fmt.Fprintf(os.Stderr, "migrations: %v\n", err)
			return 1
		}
		return m.Run()
	}()
	os.Exit(code)
}

func truncate(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(),
		`TRUNCATE products, counters, coupons, orders, transactions`)
	require.NoError(t, err)
}

func TestCounterRepository_ConcurrentIncrements(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	gen := sequence.NewGenerator(NewCounterRepository(testPool))

	const workers = 40
	numbers := make([]int64, workers)
	var g errgroup.Group
	for i := range workers {
		g.Go(func() error {
			n, err := gen.NextOrderNumber(ctx)
			numbers[i] = n
			return err
		})
	}
	require.NoError(t, g.Wait())

	seen := make(map[int64]struct{}, workers)
	for _, n := range numbers {
		seen[n] = struct{}{}
	}
	assert.Len(t, seen, workers, "order numbers must be unique")

	inv, err := gen.NextInvoiceNumber(ctx, 2025)
	require.NoError(t, err)
	assert.Equal(t, "202500001", inv)
}

func TestCatalogRepository_NeverOversells(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	catalog := NewCatalogRepository(testPool)
	require.NoError(t, catalog.Upsert(ctx, []product.Product{
		{ID: "p1", Name: "Jaggery", Price: decimal.NewFromInt(90), TaxRate: decimal.NewFromInt(5), Stock: 5},
	}))

	const workers = 20
	results := make([]bool, workers)
	var g errgroup.Group
	for i := range workers {
		g.Go(func() error {
			ok, err := catalog.DecrementStock(ctx, "p1", 1)
			results[i] = ok
			return err
		})
	}
	require.NoError(t, g.Wait())

	var sold int
	for _, ok := range results {
		if ok {
			sold++
		}
	}
	assert.Equal(t, 5, sold)

	products, err := catalog.GetByIDs(ctx, []string{"p1"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Zero(t, products[0].Stock)

	_, err = catalog.DecrementStock(ctx, "missing", 1)
	require.ErrorIs(t, err, product.ErrNotFound)
}

func newCoupon(code string, maxUses *int) *coupon.Coupon {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &coupon.Coupon{
		ID:            "c-" + code,
		Code:          code,
		Title:         code,
		DiscountType:  coupon.DiscountFixed,
		DiscountValue: decimal.NewFromInt(10),
		MinOrderValue: decimal.Zero,
		MaxUsageCount: maxUses,
		UsagePerUser:  1,
		Budget:        decimal.NewNullDecimal(decimal.NewFromInt(25)),
		StartDate:     now.Add(-time.Hour),
		EndDate:       now.Add(time.Hour),
		IsActive:      true,
		CreatedAt:     now,
	}
}

func TestCouponRepository_AppendUsage(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	repo := NewCouponRepository(testPool)
	require.NoError(t, repo.Create(ctx, newCoupon("SAVE10", nil)))
	require.ErrorIs(t, repo.Create(ctx, newCoupon("SAVE10", nil)), coupon.ErrCodeExists)

	u := coupon.Usage{
		UserID:         "u1",
		OrderID:        "o1",
		OrderTotal:     decimal.RequireFromString("240.50"),
		DiscountAmount: decimal.NewFromInt(10),
		UsedAt:         time.Now().UTC(),
	}
	c, err := repo.AppendUsage(ctx, "c-SAVE10", u)
	require.NoError(t, err)
	assert.Equal(t, 1, c.CurrentUsage)
	require.Len(t, c.UsageHistory, 1)
	assert.True(t, u.OrderTotal.Equal(c.UsageHistory[0].OrderTotal))
	assert.True(t, c.TotalSales.Equal(u.OrderTotal))

	_, err = repo.AppendUsage(ctx, "c-SAVE10", u)
	require.ErrorIs(t, err, coupon.ErrUsageAlreadyRecorded)

	u.OrderID = "o2"
	_, err = repo.AppendUsage(ctx, "c-SAVE10", u)
	require.ErrorIs(t, err, coupon.ErrUserLimitReached)

	u.UserID, u.OrderID, u.DiscountAmount = "u2", "o3", decimal.NewFromInt(20)
	_, err = repo.AppendUsage(ctx, "c-SAVE10", u)
	require.ErrorIs(t, err, coupon.ErrBudgetExhausted)

	_, err = repo.AppendUsage(ctx, "c-missing", u)
	require.ErrorIs(t, err, coupon.ErrNotFound)
}

func TestCouponRepository_LastSlotRace(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	repo := NewCouponRepository(testPool)
	one := 1
	require.NoError(t, repo.Create(ctx, newCoupon("ONLYONE", &one)))

	const workers = 20
	errs := make([]error, workers)
	var g errgroup.Group
	for i := range workers {
		g.Go(func() error {
			_, errs[i] = repo.AppendUsage(ctx, "c-ONLYONE", coupon.Usage{
				UserID:         fmt.Sprintf("u%d", i),
				OrderID:        fmt.Sprintf("o%d", i),
				OrderTotal:     decimal.NewFromInt(100),
				DiscountAmount: decimal.NewFromInt(1),
				UsedAt:         time.Now().UTC(),
			})
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

	c, err := repo.FindByCode(ctx, "ONLYONE")
	require.NoError(t, err)
	assert.Equal(t, 1, c.CurrentUsage)
	assert.Len(t, c.UsageHistory, 1)
}

func newOrder(id string, number int64) *order.Order {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &order.Order{
		ID:            id,
		Number:        number,
		DisplayNumber: sequence.FormatOrderNumber(number),
		UserID:        "u1",
		Items: []order.Item{{
			ProductID: "p1", Name: "Jaggery", Quantity: 2,
			UnitPrice: decimal.NewFromInt(90), TaxRate: decimal.NewFromInt(5),
			TaxAmount: decimal.RequireFromString("4.5"),
		}},
		Subtotal: decimal.NewFromInt(180),
		Discount: decimal.Zero,
		Tax:      decimal.NewFromInt(9),
		Shipping: decimal.NewFromInt(50),
		Total:    decimal.NewFromInt(239),
		ShippingAddress: order.Address{
			Address: "1 Beach Rd", City: "Chennai", State: "Tamil Nadu", Pincode: "600001", Phone: "9800000002",
		},
		PaymentMethod: order.PaymentCOD,
		PaymentStatus: order.PaymentPending,
		Status:        order.StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestOrderRepository(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	repo := NewOrderRepository(testPool)
	o := newOrder("o1", 1)
	require.NoError(t, repo.Create(ctx, o))
	require.ErrorIs(t, repo.Create(ctx, newOrder("o2", 1)), order.ErrDuplicate)
	require.NoError(t, repo.Create(ctx, newOrder("o3", 2)))

	got, err := repo.Get(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, o.ShippingAddress, got.ShippingAddress)
	require.Len(t, got.Items, 1)
	assert.True(t, got.Items[0].TaxAmount.Equal(decimal.RequireFromString("4.5")))
	assert.True(t, got.TotalConsistent())

	editable := []order.Status{order.StatusPending, order.StatusProcessing}
	_, err = repo.UpdateStatus(ctx, "o1", editable, order.StatusCancelled)
	require.NoError(t, err)
	_, err = repo.UpdateStatus(ctx, "o1", editable, order.StatusCancelled)
	require.ErrorIs(t, err, order.ErrStatusConflict)
	_, err = repo.UpdateStatus(ctx, "nope", editable, order.StatusCancelled)
	require.ErrorIs(t, err, order.ErrNotFound)

	inv, err := repo.AssignInvoiceNumber(ctx, "o3", "202500001")
	require.NoError(t, err)
	assert.Equal(t, "202500001", *inv.InvoiceNumber)
	inv, err = repo.AssignInvoiceNumber(ctx, "o3", "202500002")
	require.NoError(t, err)
	assert.Equal(t, "202500001", *inv.InvoiceNumber)

	list, total, err := repo.List(ctx, order.ListFilter{UserID: "u1", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, list, 2)
	assert.Equal(t, int64(2), list[0].Number)
}

func TestTransactionRepository(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	repo := NewTransactionRepository(testPool)
	tx := &payment.Transaction{
		ID:             "t1",
		GatewayOrderID: "order_1",
		UserID:         "u1",
		Amount:         decimal.RequireFromString("239.00"),
		Currency:       "INR",
		Status:         payment.StatusCreated,
		Metadata:       []byte(`{"receipt":"rcpt_1"}`),
		CreatedAt:      time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, tx))
	require.ErrorIs(t, repo.Create(ctx, tx), payment.ErrDuplicate)

	claimable := []payment.Status{payment.StatusCreated, payment.StatusFailed}
	const workers = 10
	errs := make([]error, workers)
	var g errgroup.Group
	for i := range workers {
		g.Go(func() error {
			_, errs[i] = repo.Transition(ctx, "order_1", claimable,
				payment.Update{Status: payment.StatusAuthorized, PaymentID: "pay_1"})
			return nil
		})
	}
	require.NoError(t, g.Wait())
	var claimed int
	for _, err := range errs {
		if err == nil {
			claimed++
			continue
		}
		assert.ErrorIs(t, err, payment.ErrStateConflict)
	}
	assert.Equal(t, 1, claimed)

	captured, err := repo.Transition(ctx, "order_1", []payment.Status{payment.StatusAuthorized},
		payment.Update{Status: payment.StatusCaptured, OrderID: "o1"})
	require.NoError(t, err)
	assert.Equal(t, "pay_1", captured.PaymentID)
	assert.JSONEq(t, `{"receipt":"rcpt_1"}`, string(captured.Metadata))

	linked, err := repo.FindByOrderID(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, payment.StatusCaptured, linked.Status)

	stats, err := repo.Stats(ctx, time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, stats.ByStatus, 1)
	assert.Equal(t, 1, stats.ByStatus[0].Count)
	require.Len(t, stats.Daily, 1)

	rows, total, err := repo.List(ctx, payment.ListFilter{Status: payment.StatusCaptured, Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, rows, 1)
}
