package query

import (
	"fmt"

	"github.com/vbms/inventory-service/internal/inventory/domain"
)

// ListTransactionsQuery lists ledger entries, newest first.
type ListTransactionsQuery struct {
	OwnerID uint
	Filter  domain.TransactionFilter
}

// ListTransactionsHandler handles the list transactions query.
type ListTransactionsHandler struct {
	ledger domain.TransactionRepository
}

// NewListTransactionsHandler creates a new list transactions handler.
func NewListTransactionsHandler(ledger domain.TransactionRepository) *ListTransactionsHandler {
	return &ListTransactionsHandler{ledger: ledger}
}

// Handle returns a page of ledger entries, capped at 200 per page.
func (h *ListTransactionsHandler) Handle(q ListTransactionsQuery) ([]domain.Transaction, error) {
	if q.Filter.Type != "" && !q.Filter.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown transaction type %q", domain.ErrValidation, q.Filter.Type)
	}
	if q.Filter.Limit <= 0 {
		q.Filter.Limit = 50
	}
	if q.Filter.Limit > 200 {
		q.Filter.Limit = 200
	}

	txs, err := h.ledger.FindAll(q.OwnerID, q.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}
