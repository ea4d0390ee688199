package command

import (
	"errors"
	"fmt"

	"github.com/vbms/inventory-service/internal/inventory/domain"
)

// ReverseTransactionCommand negates a prior ledger entry with a new,
// opposite-direction entry. The original is never edited or deleted.
type ReverseTransactionCommand struct {
	OwnerID       uint
	TransactionID uint
	Reason        string
	PerformedBy   string
}

// ReverseTransactionResult is the updated item and the reversal entry.
type ReverseTransactionResult struct {
	Item        *domain.Item
	Transaction *domain.Transaction
}

// ReverseTransactionHandler handles the reverse transaction command.
type ReverseTransactionHandler struct {
	items  domain.ItemRepository
	ledger domain.TransactionRepository
	alerts AlertDispatcher
}

// NewReverseTransactionHandler creates a new reverse transaction handler.
func NewReverseTransactionHandler(items domain.ItemRepository, ledger domain.TransactionRepository, alerts AlertDispatcher) *ReverseTransactionHandler {
	return &ReverseTransactionHandler{items: items, ledger: ledger, alerts: alerts}
}

// Handle reverses a transaction. Reversing the same entry twice is rejected
// with ErrAlreadyReversed; the reversal entry itself carries a reference to
// the original, so a second attempt finds the existing reversal.
func (h *ReverseTransactionHandler) Handle(cmd ReverseTransactionCommand) (*ReverseTransactionResult, error) {
	orig, err := h.ledger.FindByID(cmd.OwnerID, cmd.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction: %w", err)
	}

	if _, err := h.ledger.FindReversalOf(cmd.OwnerID, orig.ID); err == nil {
		return nil, fmt.Errorf("%w: transaction %d", domain.ErrAlreadyReversed, orig.ID)
	} else if !errors.Is(err, domain.ErrTransactionNotFound) {
		return nil, fmt.Errorf("failed to check reversal: %w", err)
	}

	reason := cmd.Reason
	if reason == "" {
		reason = fmt.Sprintf("reversal of transaction #%d", orig.ID)
	}

	item, entry, err := h.items.Mutate(cmd.OwnerID, orig.ItemID, func(item *domain.Item) (*domain.Transaction, error) {
		if orig.Type == domain.TypeTransfer {
			return h.reverseTransfer(item, orig, reason, cmd.PerformedBy)
		}
		return h.reverseQuantity(item, orig, reason, cmd.PerformedBy)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reverse transaction: %w", err)
	}

	dispatchAlerts(h.alerts, item)
	publishMovement(h.alerts, item, entry)

	return &ReverseTransactionResult{Item: item, Transaction: entry}, nil
}

// reverseQuantity negates the original's actual applied effect, reconstructed
// from the snapshots. Clamped originals reverse only what they applied.
func (h *ReverseTransactionHandler) reverseQuantity(item *domain.Item, orig *domain.Transaction, reason, performedBy string) (*domain.Transaction, error) {
	delta := -orig.AppliedDelta()
	before, after := item.ApplyDelta(delta)

	txType := domain.TypeCorrection
	qty := 0
	switch {
	case delta > 0:
		txType = domain.TypeStockIn
		qty = delta
	case delta < 0:
		txType = domain.TypeStockOut
		qty = -delta
	}

	return &domain.Transaction{
		OwnerID:        orig.OwnerID,
		ItemID:         item.ID,
		Type:           txType,
		Quantity:       qty,
		BeforeQuantity: before,
		AfterQuantity:  after,
		Reason:         reason,
		UnitCost:       orig.UnitCost,
		TotalCost:      orig.UnitCost * float64(qty),
		PerformedBy:    performedBy,
		ReversalOfID:   &orig.ID,
	}, nil
}

// reverseTransfer moves the quantity back from the original destination to
// the original source. Like the original, it does not change the total.
func (h *ReverseTransactionHandler) reverseTransfer(item *domain.Item, orig *domain.Transaction, reason, performedBy string) (*domain.Transaction, error) {
	if orig.FromLocation == nil || orig.ToLocation == nil {
		return nil, fmt.Errorf("%w: transfer entry missing locations", domain.ErrValidation)
	}

	if err := item.MoveStock(*orig.ToLocation, *orig.FromLocation, orig.Quantity); err != nil {
		return nil, err
	}

	from := *orig.ToLocation
	to := *orig.FromLocation
	return &domain.Transaction{
		OwnerID:        orig.OwnerID,
		ItemID:         item.ID,
		Type:           domain.TypeTransfer,
		Quantity:       orig.Quantity,
		BeforeQuantity: item.Quantity.Current,
		AfterQuantity:  item.Quantity.Current,
		Reason:         reason,
		FromLocation:   &from,
		ToLocation:     &to,
		PerformedBy:    performedBy,
		ReversalOfID:   &orig.ID,
	}, nil
}
