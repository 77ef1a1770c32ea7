package sequence

import (
	"context"
	"sync"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

type mockCounters struct {
	mu     sync.Mutex
	values map[string]int64
	err    error
}

func newMockCounters() *mockCounters {
	return &mockCounters{values: make(map[string]int64)}
}

func (m *mockCounters) Increment(_ context.Context, key string) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key]++
	return m.values[key], nil
}

func TestGenerator_NextOrderNumber(t *testing.T) {
	counters := newMockCounters()
	counters.values[OrderNumberKey] = 41
	g := NewGenerator(counters)

	n, err := g.NextOrderNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
	assert.Equal(t, "ORD-00000042", FormatOrderNumber(n))
}

func TestGenerator_NextOrderNumber_Concurrent(t *testing.T) {
	counters := newMockCounters()
	counters.values[OrderNumberKey] = 100
	g := NewGenerator(counters)

	const workers = 50
	got := make([]int64, workers)

	var eg errgroup.Group
	for i := range workers {
		eg.Go(func() error {
			n, err := g.NextOrderNumber(context.Background())
			got[i] = n
			return err
		})
	}
	require.NoError(t, eg.Wait())

	seen := make(map[int64]bool, workers)
	for _, n := range got {
		assert.False(t, seen[n], "duplicate number %d", n)
		seen[n] = true
	}
	for n := int64(101); n <= 100+workers; n++ {
		assert.True(t, seen[n], "missing number %d", n)
	}
}

func TestGenerator_NextInvoiceNumber(t *testing.T) {
	tests := []struct {
		name    string
		prior   int64
		year    int
		want    string
		wantErr error
	}{
		{name: "first of year", prior: 0, year: 2025, want: "202500001"},
		{name: "padded sequence", prior: 122, year: 2025, want: "202500123"},
		{name: "last value", prior: 99998, year: 2026, want: "202699999"},
		{name: "ceiling exceeded", prior: 99999, year: 2026, wantErr: ErrInvoiceSequenceExhausted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counters := newMockCounters()
			counters.values[InvoiceKey(tt.year)] = tt.prior
			g := NewGenerator(counters)

			got, err := g.NextInvoiceNumber(context.Background(), tt.year)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerator_InvoiceYearsAreIndependent(t *testing.T) {
	g := NewGenerator(newMockCounters())
	ctx := context.Background()

	a, err := g.NextInvoiceNumber(ctx, 2025)
	require.NoError(t, err)
	b, err := g.NextInvoiceNumber(ctx, 2026)
	require.NoError(t, err)

	assert.Equal(t, "202500001", a)
	assert.Equal(t, "202600001", b)
}

func TestGenerator_StoreFailure(t *testing.T) {
	storeErr := errors.New("connection refused")
	g := NewGenerator(&mockCounters{values: map[string]int64{}, err: storeErr})

	_, err := g.NextOrderNumber(context.Background())
	require.ErrorIs(t, err, storeErr)

	_, err = g.NextInvoiceNumber(context.Background(), 2025)
	require.ErrorIs(t, err, storeErr)
}
