package handler

import (
	"context"

	"github.com/xenking/orderflow/gen/oas"
	"github.com/xenking/orderflow/internal/domain/order"
	"github.com/xenking/orderflow/internal/domain/payment"
)

// RefundOrder returns the captured payment of an order. Admin only. Without
// an amount the full captured amount is refunded.
func (h *Handler) RefundOrder(ctx context.Context, req *oas.RefundRequest, params oas.RefundOrderParams) (*oas.RefundResponse, error) {
	res, err := h.orders.Refund(ctx, principal(ctx), order.RefundRequest{
		OrderID: params.OrderId,
		Amount:  optDecimal(req.Amount),
		Reason:  req.Reason.Or(""),
	})
	if err != nil {
		return nil, err
	}
	return &oas.RefundResponse{
		Success: true,
		Data: oas.RefundResult{
			Transaction: transactionToOAS(res.Transaction),
			Order:       orderToOAS(res.Order),
		},
	}, nil
}

// ListTransactions returns a page of ledger rows, newest first. Admin only.
func (h *Handler) ListTransactions(ctx context.Context, params oas.ListTransactionsParams) (*oas.TransactionListResponse, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	limit, offset := page(params.Limit, params.Offset)
	f := payment.ListFilter{
		Status: payment.Status(params.Status.Or("")),
		UserID: params.UserId.Or(""),
		Limit:  limit,
		Offset: offset,
	}
	var err error
	if f.From, err = optTime("from", params.From); err != nil {
		return nil, err
	}
	if f.To, err = optTime("to", params.To); err != nil {
		return nil, err
	}

	txs, total, err := h.payments.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]oas.Transaction, len(txs))
	for i := range txs {
		out[i] = transactionToOAS(&txs[i])
	}
	return &oas.TransactionListResponse{
		Success: true,
		Data: oas.TransactionPage{
			Transactions: out,
			Total:        total,
			Limit:        limit,
			Offset:       offset,
		},
	}, nil
}

// GetTransactionStats aggregates the ledger by status and day. Admin only.
// Without a range the last 30 days are reported.
func (h *Handler) GetTransactionStats(ctx context.Context, params oas.GetTransactionStatsParams) (*oas.PaymentStatsResponse, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	from, err := optTime("from", params.From)
	if err != nil {
		return nil, err
	}
	to, err := optTime("to", params.To)
	if err != nil {
		return nil, err
	}

	st, err := h.payments.Stats(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return &oas.PaymentStatsResponse{Success: true, Data: statsToOAS(st)}, nil
}
