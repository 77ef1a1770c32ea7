package memory

import (
	"context"
	"sync"

	"github.com/xenking/orderflow/internal/domain/sequence"
)

var _ sequence.CounterStore = (*Counters)(nil)

// Counters is a named counter table.
type Counters struct {
	mu     sync.Mutex
	values map[string]int64
}

// NewCounters returns an empty counter table.
func NewCounters() *Counters {
	return &Counters{values: make(map[string]int64)}
}

// Increment adds one to the counter and returns the new value. Missing
// counters start at zero.
func (c *Counters) Increment(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key]++
	return c.values[key], nil
}
