// Package inventory reserves and restores product stock.
package inventory

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/orderflow/internal/domain/product"
)

// ErrInvalidQuantity is returned for non-positive line quantities.
var ErrInvalidQuantity = errors.New("quantity must be greater than 0")

// Line is a product and the number of units requested.
type Line struct {
	ProductID string
	Quantity  int
}

// InsufficientStockError indicates a product cannot cover the requested quantity.
type InsufficientStockError struct {
	ProductID string
	Name      string
	Requested int
}

func (e *InsufficientStockError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("insufficient stock for %s", e.Name)
	}
	return fmt.Sprintf("insufficient stock for product %s", e.ProductID)
}

// ProductNotFoundError indicates a line references an unknown product.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s not found", e.ProductID)
}

// Ledger adjusts stock through the catalog's conditional primitives.
type Ledger struct {
	catalog product.Catalog
}

// NewLedger creates a Ledger over the given catalog.
func NewLedger(catalog product.Catalog) *Ledger {
	return &Ledger{catalog: catalog}
}

// Check loads the products for lines and verifies that each one currently has
// enough stock. It does not modify stock. The returned products are in line
// order.
func (l *Ledger) Check(ctx context.Context, lines []Line) ([]product.Product, error) {
	ids := make([]string, len(lines))
	for i, line := range lines {
		if line.Quantity <= 0 {
			return nil, errors.Wrapf(ErrInvalidQuantity, "product %s", line.ProductID)
		}
		ids[i] = line.ProductID
	}

	fetched, err := l.catalog.GetByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "get products")
	}
	byID := make(map[string]product.Product, len(fetched))
	for _, p := range fetched {
		byID[p.ID] = p
	}

	// Lines for the same product are checked against their combined quantity.
	requested := make(map[string]int, len(lines))
	for _, line := range lines {
		requested[line.ProductID] += line.Quantity
	}

	products := make([]product.Product, len(lines))
	for i, line := range lines {
		p, ok := byID[line.ProductID]
		if !ok {
			return nil, &ProductNotFoundError{ProductID: line.ProductID}
		}
		if p.Stock < requested[line.ProductID] {
			return nil, &InsufficientStockError{ProductID: p.ID, Name: p.Name, Requested: requested[line.ProductID]}
		}
		products[i] = p
	}
	return products, nil
}

// Reserve decrements stock for every line and returns the product snapshots
// priced at reservation time. If any decrement fails, the decrements already
// applied are restored before the error is returned.
func (l *Ledger) Reserve(ctx context.Context, lines []Line) ([]product.Product, error) {
	products, err := l.Check(ctx, lines)
	if err != nil {
		return nil, err
	}

	reserved := make([]Line, 0, len(lines))
	for i, line := range lines {
		ok, err := l.catalog.DecrementStock(ctx, line.ProductID, line.Quantity)
		if err == nil && !ok {
			err = &InsufficientStockError{ProductID: line.ProductID, Name: products[i].Name, Requested: line.Quantity}
		}
		if errors.Is(err, product.ErrNotFound) {
			err = &ProductNotFoundError{ProductID: line.ProductID}
		}
		if err != nil {
			l.compensate(ctx, reserved)
			return nil, err
		}
		reserved = append(reserved, line)
	}
	return products, nil
}

// Restore returns stock for every line. Callers guarantee it runs at most
// once per order.
func (l *Ledger) Restore(ctx context.Context, lines []Line) error {
	var (
		firstErr error
		failed   int
	)
	// Keep going after a failure so one bad line does not strand the rest.
	for _, line := range lines {
		if err := l.catalog.IncrementStock(ctx, line.ProductID, line.Quantity); err != nil {
			failed++
			if firstErr == nil {
				firstErr = errors.Wrapf(err, "restore %d of %s", line.Quantity, line.ProductID)
			}
		}
	}
	if firstErr != nil {
		return errors.Wrapf(firstErr, "%d of %d lines not restored", failed, len(lines))
	}
	return nil
}

func (l *Ledger) compensate(ctx context.Context, reserved []Line) {
	if len(reserved) == 0 {
		return
	}
	// Use a context that survives request cancellation so stock is not lost.
	if err := l.Restore(context.WithoutCancel(ctx), reserved); err != nil {
		zctx.From(ctx).Error("Stock compensation failed",
			zap.Int("lines", len(reserved)),
			zap.Error(err),
		)
	}
}
