// Package sequence issues order and invoice numbers from atomic counters.
package sequence

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-faster/errors"
)

const (
	// OrderNumberKey is the counter key for order numbers.
	OrderNumberKey = "orderNumber"

	// MaxInvoiceSequence is the largest per-year invoice sequence value.
	MaxInvoiceSequence = 99999
)

// ErrInvoiceSequenceExhausted is returned when a year has used every
// available invoice sequence value.
var ErrInvoiceSequenceExhausted = errors.New("invoice sequence exhausted for year")

// CounterStore increments a named counter and returns the new value. The
// counter is created with value 1 when absent. Implementations must perform
// the increment as a single atomic operation.
type CounterStore interface {
	Increment(ctx context.Context, key string) (int64, error)
}

// Generator mints order and invoice numbers.
type Generator struct {
	counters CounterStore
}

// NewGenerator creates a Generator backed by the given counter store.
func NewGenerator(counters CounterStore) *Generator {
	return &Generator{counters: counters}
}

// NextOrderNumber returns the next order number.
func (g *Generator) NextOrderNumber(ctx context.Context) (int64, error) {
	n, err := g.counters.Increment(ctx, OrderNumberKey)
	if err != nil {
		return 0, errors.Wrap(err, "increment order counter")
	}
	return n, nil
}

// NextInvoiceNumber returns the next invoice number for year, formatted as
// the four digit year followed by a five digit sequence (e.g. 202500123).
func (g *Generator) NextInvoiceNumber(ctx context.Context, year int) (string, error) {
	if year < 1000 || year > 9999 {
		return "", errors.Errorf("invalid invoice year %d", year)
	}
	n, err := g.counters.Increment(ctx, InvoiceKey(year))
	if err != nil {
		return "", errors.Wrapf(err, "increment invoice counter %d", year)
	}
	if n < 1 || n > MaxInvoiceSequence {
		return "", errors.Wrapf(ErrInvoiceSequenceExhausted, "year %d", year)
	}
	return fmt.Sprintf("%04d%05d", year, n), nil
}

// InvoiceKey returns the counter key for the given year.
func InvoiceKey(year int) string {
	return "invoice:" + strconv.Itoa(year)
}

// FormatOrderNumber returns the display form of an order number.
func FormatOrderNumber(n int64) string {
	return fmt.Sprintf("ORD-%08d", n)
}
