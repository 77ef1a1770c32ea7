package product

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a requested product does not exist.
var ErrNotFound = errors.New("product not found")

// Product is the catalog view consumed by ordering: price, tax and stock.
type Product struct {
	ID    string
	Name  string
	Price decimal.Decimal
	// TaxRate is a percentage applied on top of Price.
	TaxRate decimal.Decimal
	Stock   int
}

// TaxPerUnit returns the tax charged for one unit, rounded to 2 places.
func (p Product) TaxPerUnit() decimal.Decimal {
	return p.Price.Mul(p.TaxRate).Div(decimal.NewFromInt(100)).Round(2)
}

// Catalog is the subset of the product catalog the order core depends on.
type Catalog interface {
	GetByIDs(ctx context.Context, ids []string) ([]Product, error)

	// DecrementStock removes qty units from the product only if at least qty
	// units are available. It reports false when stock is insufficient and
	// returns ErrNotFound for unknown products.
	DecrementStock(ctx context.Context, id string, qty int) (bool, error)

	// IncrementStock returns qty units to the product.
	IncrementStock(ctx context.Context, id string, qty int) error
}
