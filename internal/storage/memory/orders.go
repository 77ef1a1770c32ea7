package memory

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/xenking/orderflow/internal/domain/order"
)

var _ order.Repository = (*Orders)(nil)

// Orders holds orders keyed by id with the same unique constraints as the
// SQL schema.
type Orders struct {
	mu   sync.Mutex
	byID map[string]*order.Order
}

// NewOrders returns an empty order table.
func NewOrders() *Orders {
	return &Orders{byID: make(map[string]*order.Order)}
}

func cloneOrder(o *order.Order) *order.Order {
	cp := *o
	cp.Items = slices.Clone(o.Items)
	return &cp
}

func (s *Orders) Create(_ context.Context, o *order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[o.ID]; ok {
		return order.ErrDuplicate
	}
	for _, existing := range s.byID {
		if existing.Number == o.Number {
			return order.ErrDuplicate
		}
	}
	s.byID[o.ID] = cloneOrder(o)
	return nil
}

func (s *Orders) Get(_ context.Context, id string) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.byID[id]
	if !ok {
		return nil, order.ErrNotFound
	}
	return cloneOrder(o), nil
}

// List returns orders newest first.
func (s *Orders) List(_ context.Context, f order.ListFilter) ([]order.Order, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []order.Order
	for _, o := range s.byID {
		if f.UserID != "" && o.UserID != f.UserID {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		matched = append(matched, *cloneOrder(o))
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Number > matched[j].Number
	})
	total := len(matched)
	if f.Offset >= total {
		return []order.Order{}, total, nil
	}
	end := total
	if f.Limit > 0 && f.Offset+f.Limit < end {
		end = f.Offset + f.Limit
	}
	return matched[f.Offset:end], total, nil
}

// update applies fn to the stored order if cond holds.
func (s *Orders) update(id string, cond func(*order.Order) bool, fn func(*order.Order)) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.byID[id]
	if !ok {
		return nil, order.ErrNotFound
	}
	if !cond(o) {
		return nil, order.ErrStatusConflict
	}
	fn(o)
	o.UpdatedAt = time.Now().UTC()
	return cloneOrder(o), nil
}

func (s *Orders) UpdateStatus(_ context.Context, id string, from []order.Status, to order.Status) (*order.Order, error) {
	return s.update(id,
		func(o *order.Order) bool { return slices.Contains(from, o.Status) },
		func(o *order.Order) { o.Status = to },
	)
}

func (s *Orders) UpdatePaymentStatus(_ context.Context, id string, from []order.PaymentStatus, to order.PaymentStatus) (*order.Order, error) {
	return s.update(id,
		func(o *order.Order) bool { return slices.Contains(from, o.PaymentStatus) },
		func(o *order.Order) { o.PaymentStatus = to },
	)
}

func (s *Orders) UpdateAddress(_ context.Context, id string, from []order.Status, addr order.Address) (*order.Order, error) {
	return s.update(id,
		func(o *order.Order) bool { return slices.Contains(from, o.Status) },
		func(o *order.Order) { o.ShippingAddress = addr },
	)
}

func (s *Orders) UpdateAdminNote(_ context.Context, id, note, by string, at time.Time) (*order.Order, error) {
	return s.update(id,
		func(*order.Order) bool { return true },
		func(o *order.Order) {
			o.AdminNote = note
			o.AdminNoteUpdatedBy = by
			o.AdminNoteUpdatedAt = &at
		},
	)
}

// AssignInvoiceNumber sets the number only when the order has none.
func (s *Orders) AssignInvoiceNumber(_ context.Context, id, number string) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.byID[id]
	if !ok {
		return nil, order.ErrNotFound
	}
	if o.InvoiceNumber != nil {
		return cloneOrder(o), nil
	}
	for _, other := range s.byID {
		if other.InvoiceNumber != nil && *other.InvoiceNumber == number {
			return nil, order.ErrInvoiceExists
		}
	}
	o.InvoiceNumber = &number
	o.UpdatedAt = time.Now().UTC()
	return cloneOrder(o), nil
}
