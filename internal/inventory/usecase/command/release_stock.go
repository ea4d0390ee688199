package command

import (
	"fmt"

	"github.com/vbms/inventory-service/internal/inventory/domain"
)

// ReleaseStockCommand frees previously reserved stock.
type ReleaseStockCommand struct {
	OwnerID  uint
	ItemID   uint
	Quantity int
}

// ReleaseStockHandler handles the release stock command.
type ReleaseStockHandler struct {
	items domain.ItemRepository
}

// NewReleaseStockHandler creates a new release stock handler.
func NewReleaseStockHandler(items domain.ItemRepository) *ReleaseStockHandler {
	return &ReleaseStockHandler{items: items}
}

// Handle releases reserved quantity, clamping the reservation at zero.
func (h *ReleaseStockHandler) Handle(cmd ReleaseStockCommand) (*domain.Item, error) {
	if cmd.Quantity <= 0 {
		return nil, fmt.Errorf("%w: release quantity must be positive", domain.ErrValidation)
	}

	item, _, err := h.items.Mutate(cmd.OwnerID, cmd.ItemID, func(item *domain.Item) (*domain.Transaction, error) {
		return nil, item.Release(cmd.Quantity)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to release stock: %w", err)
	}
	return item, nil
}
