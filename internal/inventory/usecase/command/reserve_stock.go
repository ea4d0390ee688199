package command

import (
	"fmt"

	"github.com/vbms/inventory-service/internal/inventory/domain"
)

// ReserveStockCommand holds available stock against a pending order.
type ReserveStockCommand struct {
	OwnerID  uint
	ItemID   uint
	Quantity int
}

// ReserveStockHandler handles the reserve stock command.
type ReserveStockHandler struct {
	items domain.ItemRepository
}

// NewReserveStockHandler creates a new reserve stock handler.
func NewReserveStockHandler(items domain.ItemRepository) *ReserveStockHandler {
	return &ReserveStockHandler{items: items}
}

// Handle reserves quantity. Reservations do not change the current quantity
// and therefore produce no ledger entry; only the available quantity moves.
func (h *ReserveStockHandler) Handle(cmd ReserveStockCommand) (*domain.Item, error) {
	if cmd.Quantity <= 0 {
		return nil, fmt.Errorf("%w: reserve quantity must be positive", domain.ErrValidation)
	}

	item, _, err := h.items.Mutate(cmd.OwnerID, cmd.ItemID, func(item *domain.Item) (*domain.Transaction, error) {
		return nil, item.Reserve(cmd.Quantity)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reserve stock: %w", err)
	}
	return item, nil
}
