package inventory

import (
	"context"
	"sync"
	"testing"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/orderflow/internal/domain/product"
)

// --- Mock implementations ---

type mockCatalog struct {
	mu       sync.Mutex
	products map[string]*product.Product
	// failOn makes DecrementStock return an error for the given product.
	failOn  string
	restore []Line
}

func newMockCatalog(products ...product.Product) *mockCatalog {
	m := &mockCatalog{products: make(map[string]*product.Product, len(products))}
	for i := range products {
		p := products[i]
		m.products[p.ID] = &p
	}
	return m
}

func (m *mockCatalog) GetByIDs(_ context.Context, ids []string) ([]product.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []product.Product
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockCatalog) DecrementStock(_ context.Context, id string, qty int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id == m.failOn {
		return false, errors.New("store unavailable")
	}
	p, ok := m.products[id]
	if !ok {
		return false, product.ErrNotFound
	}
	if p.Stock < qty {
		return false, nil
	}
	p.Stock -= qty
	return true, nil
}

func (m *mockCatalog) IncrementStock(_ context.Context, id string, qty int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.restore = append(m.restore, Line{ProductID: id, Quantity: qty})
	if p, ok := m.products[id]; ok {
		p.Stock += qty
	}
	return nil
}

func (m *mockCatalog) stock(id string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.products[id].Stock
}

func newProduct(id string, stock int) product.Product {
	return product.Product{
		ID:      id,
		Name:    "Product " + id,
		Price:   decimal.NewFromInt(100),
		TaxRate: decimal.NewFromInt(5),
		Stock:   stock,
	}
}

// --- Tests ---

func TestLedger_Reserve(t *testing.T) {
	catalog := newMockCatalog(newProduct("a", 5), newProduct("b", 2))
	l := NewLedger(catalog)

	products, err := l.Reserve(context.Background(), []Line{
		{ProductID: "a", Quantity: 2},
		{ProductID: "b", Quantity: 2},
	})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "a", products[0].ID)
	assert.Equal(t, "b", products[1].ID)
	assert.Equal(t, 3, catalog.stock("a"))
	assert.Equal(t, 0, catalog.stock("b"))
}

func TestLedger_Reserve_Errors(t *testing.T) {
	tests := []struct {
		name    string
		lines   []Line
		check   func(t *testing.T, err error)
		failOn  string
		wantA   int
		wantB   int
		wantRes int
	}{
		{
			name:  "insufficient stock on second line",
			lines: []Line{{ProductID: "a", Quantity: 1}, {ProductID: "b", Quantity: 3}},
			check: func(t *testing.T, err error) {
				var target *InsufficientStockError
				require.ErrorAs(t, err, &target)
				assert.Equal(t, "b", target.ProductID)
			},
			wantA: 5, wantB: 2,
		},
		{
			name:  "unknown product",
			lines: []Line{{ProductID: "a", Quantity: 1}, {ProductID: "zzz", Quantity: 1}},
			check: func(t *testing.T, err error) {
				var target *ProductNotFoundError
				require.ErrorAs(t, err, &target)
				assert.Equal(t, "zzz", target.ProductID)
			},
			wantA: 5, wantB: 2,
		},
		{
			name:  "zero quantity",
			lines: []Line{{ProductID: "a", Quantity: 0}},
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, ErrInvalidQuantity)
			},
			wantA: 5, wantB: 2,
		},
		{
			name:   "store failure mid-cart compensates earlier lines",
			lines:  []Line{{ProductID: "a", Quantity: 4}, {ProductID: "b", Quantity: 1}},
			failOn: "b",
			check: func(t *testing.T, err error) {
				require.Error(t, err)
			},
			wantA: 5, wantB: 2, wantRes: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := newMockCatalog(newProduct("a", 5), newProduct("b", 2))
			catalog.failOn = tt.failOn
			l := NewLedger(catalog)

			_, err := l.Reserve(context.Background(), tt.lines)
			tt.check(t, err)
			assert.Equal(t, tt.wantA, catalog.stock("a"))
			assert.Equal(t, tt.wantB, catalog.stock("b"))
			assert.Len(t, catalog.restore, tt.wantRes)
		})
	}
}

func TestLedger_Reserve_NeverOversells(t *testing.T) {
	catalog := newMockCatalog(newProduct("a", 10))
	l := NewLedger(catalog)

	const workers = 25
	var (
		mu      sync.Mutex
		success int
	)
	var eg errgroup.Group
	for range workers {
		eg.Go(func() error {
			_, err := l.Reserve(context.Background(), []Line{{ProductID: "a", Quantity: 1}})
			if err == nil {
				mu.Lock()
				success++
				mu.Unlock()
				return nil
			}
			var target *InsufficientStockError
			if errors.As(err, &target) {
				return nil
			}
			return err
		})
	}
	require.NoError(t, eg.Wait())

	assert.Equal(t, 10, success)
	assert.Equal(t, 0, catalog.stock("a"))
}

func TestLedger_Restore(t *testing.T) {
	catalog := newMockCatalog(newProduct("a", 0), newProduct("b", 0))
	l := NewLedger(catalog)

	err := l.Restore(context.Background(), []Line{
		{ProductID: "a", Quantity: 2},
		{ProductID: "b", Quantity: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, catalog.stock("a"))
	assert.Equal(t, 1, catalog.stock("b"))
}

func TestLedger_Check_CombinesDuplicateLines(t *testing.T) {
	catalog := newMockCatalog(newProduct("a", 3))
	l := NewLedger(catalog)

	_, err := l.Check(context.Background(), []Line{
		{ProductID: "a", Quantity: 2},
		{ProductID: "a", Quantity: 2},
	})
	var target *InsufficientStockError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, 4, target.Requested)
	assert.Equal(t, 3, catalog.stock("a"))
}
