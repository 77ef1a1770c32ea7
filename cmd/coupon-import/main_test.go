package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	pgzip "github.com/klauspost/pgzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/orderflow/internal/domain/coupon"
)

type memoryUpserter struct {
	mu      sync.Mutex
	coupons map[string]*coupon.Coupon
}

func (m *memoryUpserter) Upsert(_ context.Context, c *coupon.Coupon) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.coupons == nil {
		m.coupons = make(map[string]*coupon.Coupon)
	}
	m.coupons[c.Code] = c
	return nil
}

func writeGz(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "coupons.jsonl.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := pgzip.NewWriter(f)
	_, err = gz.Write([]byte(strings.Join(lines, "\n") + "\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())
	return path
}

func line(code, discountType, value string) string {
	return `{"code":"` + code + `","title":"` + code + `","discountType":"` + discountType +
		`","discountValue":"` + value + `","startDate":"2026-01-01T00:00:00Z","endDate":"2027-01-01T00:00:00Z"}`
}

func TestImporter_Run(t *testing.T) {
	first := writeGz(t,
		line("SPRING10", "percentage", "10"),
		line("FLAT50", "fixed", "50"),
		`{"code":`,
		line("X", "fixed", "5"),
	)
	second := writeGz(t,
		line("spring10", "percentage", "25"),
		line("MONSOON", "percentage", "15"),
	)

	store := &memoryUpserter{}
	imp := &importer{
		files:    []string{first, second},
		expected: 100,
		workers:  3,
		store:    store,
		now:      func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) },
	}

	rep, err := imp.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(6), rep.Read)
	assert.Equal(t, int64(3), rep.Imported)
	assert.Equal(t, int64(2), rep.Invalid)
	assert.Equal(t, int64(1), rep.Duplicates)

	require.Len(t, store.coupons, 3)
	spring := store.coupons["SPRING10"]
	require.NotNil(t, spring)
	assert.Equal(t, "10", spring.DiscountValue.String(), "first definition wins")
	assert.True(t, spring.IsActive)
	assert.Equal(t, 1, spring.UsagePerUser)
}

func TestImporter_DryRun(t *testing.T) {
	path := writeGz(t, line("AUTUMN5", "fixed", "5"))
	imp := &importer{
		files:    []string{path},
		expected: 10,
		workers:  1,
		dryRun:   true,
		now:      time.Now,
	}

	rep, err := imp.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), rep.Imported)
}

func TestImporter_Canceled(t *testing.T) {
	path := writeGz(t, line("WINTER5", "fixed", "5"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	imp := &importer{files: []string{path}, expected: 10, workers: 1, store: &memoryUpserter{}, now: time.Now}
	_, err := imp.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
