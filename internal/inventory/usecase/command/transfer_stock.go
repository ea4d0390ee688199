package command

import (
	"fmt"

	"github.com/vbms/inventory-service/internal/inventory/domain"
)

// TransferStockCommand moves quantity between two storage slots on one item.
type TransferStockCommand struct {
	OwnerID     uint
	ItemID      uint
	From        domain.LocationRef
	To          domain.LocationRef
	Quantity    int
	Reason      string
	PerformedBy string
}

// TransferStockResult is the updated item and the transfer ledger entry.
type TransferStockResult struct {
	Item        *domain.Item
	Transaction *domain.Transaction
}

// TransferStockHandler handles the transfer stock command.
type TransferStockHandler struct {
	items  domain.ItemRepository
	alerts AlertDispatcher
}

// NewTransferStockHandler creates a new transfer stock handler.
func NewTransferStockHandler(items domain.ItemRepository, alerts AlertDispatcher) *TransferStockHandler {
	return &TransferStockHandler{items: items, alerts: alerts}
}

// Handle moves stock between locations. The item's total current quantity is
// unchanged, so the ledger entry's before/after snapshots are intentionally
// equal: the change is positional, not a quantity change.
func (h *TransferStockHandler) Handle(cmd TransferStockCommand) (*TransferStockResult, error) {
	if cmd.Quantity <= 0 {
		return nil, fmt.Errorf("%w: transfer quantity must be positive", domain.ErrValidation)
	}
	if cmd.Reason == "" {
		return nil, fmt.Errorf("%w: reason is required", domain.ErrValidation)
	}
	if cmd.From == cmd.To {
		return nil, fmt.Errorf("%w: source and destination locations are the same", domain.ErrValidation)
	}

	item, entry, err := h.items.Mutate(cmd.OwnerID, cmd.ItemID, func(item *domain.Item) (*domain.Transaction, error) {
		if err := item.MoveStock(cmd.From, cmd.To, cmd.Quantity); err != nil {
			return nil, err
		}

		from := cmd.From
		to := cmd.To
		return &domain.Transaction{
			OwnerID:        cmd.OwnerID,
			ItemID:         item.ID,
			Type:           domain.TypeTransfer,
			Quantity:       cmd.Quantity,
			BeforeQuantity: item.Quantity.Current,
			AfterQuantity:  item.Quantity.Current,
			Reason:         cmd.Reason,
			FromLocation:   &from,
			ToLocation:     &to,
			PerformedBy:    cmd.PerformedBy,
		}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to transfer stock: %w", err)
	}

	dispatchAlerts(h.alerts, item)
	publishMovement(h.alerts, item, entry)

	return &TransferStockResult{Item: item, Transaction: entry}, nil
}
