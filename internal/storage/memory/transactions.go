package memory

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xenking/orderflow/internal/domain/payment"
)

var _ payment.Repository = (*Transactions)(nil)

// Transactions is the payment ledger keyed by gateway order id.
type Transactions struct {
	mu   sync.Mutex
	rows map[string]*payment.Transaction
}

// NewTransactions returns an empty ledger.
func NewTransactions() *Transactions {
	return &Transactions{rows: make(map[string]*payment.Transaction)}
}

func cloneTx(tx *payment.Transaction) *payment.Transaction {
	cp := *tx
	if tx.OrderID != nil {
		v := *tx.OrderID
		cp.OrderID = &v
	}
	cp.Metadata = slices.Clone(tx.Metadata)
	return &cp
}

func (s *Transactions) Create(_ context.Context, tx *payment.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[tx.GatewayOrderID]; ok {
		return payment.ErrDuplicate
	}
	s.rows[tx.GatewayOrderID] = cloneTx(tx)
	return nil
}

func (s *Transactions) FindByGatewayOrderID(_ context.Context, id string) (*payment.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx, ok := s.rows[id]
	if !ok {
		return nil, payment.ErrNotFound
	}
	return cloneTx(tx), nil
}

func (s *Transactions) FindByOrderID(_ context.Context, orderID string) (*payment.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var found *payment.Transaction
	for _, tx := range s.rows {
		if tx.OrderID == nil || *tx.OrderID != orderID {
			continue
		}
		if found == nil || tx.CreatedAt.After(found.CreatedAt) {
			found = tx
		}
	}
	if found == nil {
		return nil, payment.ErrNotFound
	}
	return cloneTx(found), nil
}

func (s *Transactions) Transition(_ context.Context, id string, from []payment.Status, u payment.Update) (*payment.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx, ok := s.rows[id]
	if !ok {
		return nil, payment.ErrNotFound
	}
	if !slices.Contains(from, tx.Status) {
		return nil, payment.ErrStateConflict
	}
	tx.Status = u.Status
	if u.OrderID != "" {
		orderID := u.OrderID
		tx.OrderID = &orderID
	}
	if u.PaymentID != "" {
		tx.PaymentID = u.PaymentID
	}
	if u.Signature != "" {
		tx.Signature = u.Signature
	}
	if u.RefundID != "" {
		tx.RefundID = u.RefundID
	}
	if u.RefundAmount.Valid {
		tx.RefundAmount = u.RefundAmount
	}
	if u.RefundStatus != "" {
		tx.RefundStatus = u.RefundStatus
	}
	if u.ErrorCode != "" {
		tx.ErrorCode = u.ErrorCode
		tx.ErrorDescription = u.ErrorDescription
	}
	tx.UpdatedAt = time.Now().UTC()
	return cloneTx(tx), nil
}

func inRange(t, from, to time.Time) bool {
	if !from.IsZero() && t.Before(from) {
		return false
	}
	if !to.IsZero() && t.After(to) {
		return false
	}
	return true
}

// List returns matching rows newest first.
func (s *Transactions) List(_ context.Context, f payment.ListFilter) ([]payment.Transaction, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []payment.Transaction
	for _, tx := range s.rows {
		if f.Status != "" && tx.Status != f.Status {
			continue
		}
		if f.UserID != "" && tx.UserID != f.UserID {
			continue
		}
		if !inRange(tx.CreatedAt, f.From, f.To) {
			continue
		}
		matched = append(matched, *cloneTx(tx))
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	total := len(matched)
	if f.Offset >= total {
		return []payment.Transaction{}, total, nil
	}
	end := total
	if f.Limit > 0 && f.Offset+f.Limit < end {
		end = f.Offset + f.Limit
	}
	return matched[f.Offset:end], total, nil
}

func (s *Transactions) Stats(_ context.Context, from, to time.Time) (*payment.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	byStatus := make(map[payment.Status]*payment.StatusTotal)
	byDay := make(map[time.Time]*payment.DailyTotal)
	for _, tx := range s.rows {
		if !inRange(tx.CreatedAt, from, to) {
			continue
		}
		st, ok := byStatus[tx.Status]
		if !ok {
			st = &payment.StatusTotal{Status: tx.Status, Amount: decimal.Zero}
			byStatus[tx.Status] = st
		}
		st.Count++
		st.Amount = st.Amount.Add(tx.Amount)

		day := tx.CreatedAt.UTC().Truncate(24 * time.Hour)
		dt, ok := byDay[day]
		if !ok {
			dt = &payment.DailyTotal{Day: day, Amount: decimal.Zero}
			byDay[day] = dt
		}
		dt.Count++
		dt.Amount = dt.Amount.Add(tx.Amount)
	}

	out := &payment.Stats{}
	for _, st := range byStatus {
		out.ByStatus = append(out.ByStatus, *st)
	}
	sort.Slice(out.ByStatus, func(i, j int) bool { return out.ByStatus[i].Status < out.ByStatus[j].Status })
	for _, dt := range byDay {
		out.Daily = append(out.Daily, *dt)
	}
	sort.Slice(out.Daily, func(i, j int) bool { return out.Daily[i].Day.Before(out.Daily[j].Day) })
	return out, nil
}
