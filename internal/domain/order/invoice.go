package order

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/orderflow/internal/domain/auth"
)

// Invoice is the printable view of an order. Tax is split evenly into the
// central and state components.
type Invoice struct {
	Number   string
	IssuedAt time.Time
	Order    *Order
	CGST     decimal.Decimal
	SGST     decimal.Decimal
}

// Invoice returns the order's invoice, assigning the invoice number on first
// request. Concurrent first requests agree on one number; the losers' minted
// numbers are left unused.
func (s *Service) Invoice(ctx context.Context, actor auth.Principal, id string) (*Invoice, error) {
	o, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if o.Status == StatusCancelled {
		return nil, ErrNotInvoiceable
	}

	if o.InvoiceNumber == nil {
		number, err := s.numbers.NextInvoiceNumber(ctx, s.now().UTC().Year())
		if err != nil {
			return nil, errors.Wrap(err, "mint invoice number")
		}
		o, err = s.orders.AssignInvoiceNumber(ctx, id, number)
		if err != nil {
			return nil, errors.Wrap(err, "assign invoice number")
		}
		if o.InvoiceNumber == nil {
			return nil, errors.Errorf("order %s has no invoice number after assignment", id)
		}
	}

	cgst := o.Tax.Div(decimal.NewFromInt(2)).Round(2)
	return &Invoice{
		Number:   *o.InvoiceNumber,
		IssuedAt: o.UpdatedAt,
		Order:    o,
		CGST:     cgst,
		SGST:     o.Tax.Sub(cgst),
	}, nil
}
