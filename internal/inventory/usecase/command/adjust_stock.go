package command

import (
	"fmt"

	"github.com/vbms/inventory-service/internal/inventory/domain"
)

// AdjustStockCommand applies a signed delta to an item's current quantity.
type AdjustStockCommand struct {
	OwnerID     uint
	ItemID      uint
	Delta       int
	Reason      string
	PerformedBy string
}

// AdjustStockResult is the updated item and the ledger entry it produced.
type AdjustStockResult struct {
	Item        *domain.Item
	Transaction *domain.Transaction
}

// AdjustStockHandler handles the adjust stock command.
type AdjustStockHandler struct {
	items  domain.ItemRepository
	alerts AlertDispatcher
}

// NewAdjustStockHandler creates a new adjust stock handler.
func NewAdjustStockHandler(items domain.ItemRepository, alerts AlertDispatcher) *AdjustStockHandler {
	return &AdjustStockHandler{items: items, alerts: alerts}
}

// Handle atomically updates the item's quantity and appends the ledger entry.
// A negative delta larger than the current quantity clamps to zero rather
// than erroring; the entry's before/after snapshots record the actual effect.
func (h *AdjustStockHandler) Handle(cmd AdjustStockCommand) (*AdjustStockResult, error) {
	if cmd.Delta == 0 {
		return nil, fmt.Errorf("%w: delta cannot be zero", domain.ErrValidation)
	}
	if cmd.Reason == "" {
		return nil, fmt.Errorf("%w: reason is required", domain.ErrValidation)
	}

	item, entry, err := h.items.Mutate(cmd.OwnerID, cmd.ItemID, func(item *domain.Item) (*domain.Transaction, error) {
		before, after := item.ApplyDelta(cmd.Delta)

		txType := domain.TypeStockIn
		qty := cmd.Delta
		if cmd.Delta < 0 {
			txType = domain.TypeStockOut
			qty = -cmd.Delta
		}

		return &domain.Transaction{
			OwnerID:        cmd.OwnerID,
			ItemID:         item.ID,
			Type:           txType,
			Quantity:       qty,
			BeforeQuantity: before,
			AfterQuantity:  after,
			Reason:         cmd.Reason,
			UnitCost:       item.Pricing.Cost,
			TotalCost:      item.Pricing.Cost * float64(qty),
			UnitPrice:      item.Pricing.SellingPrice,
			TotalPrice:     item.Pricing.SellingPrice * float64(qty),
			PerformedBy:    cmd.PerformedBy,
		}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to adjust stock: %w", err)
	}

	dispatchAlerts(h.alerts, item)
	publishMovement(h.alerts, item, entry)

	return &AdjustStockResult{Item: item, Transaction: entry}, nil
}
