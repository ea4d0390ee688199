package command

import (
	"fmt"

	"github.com/vbms/inventory-service/internal/inventory/domain"
)

// DeleteItemCommand removes an item.
type DeleteItemCommand struct {
	OwnerID uint
	ItemID  uint
}

// DeleteItemResult reports whether the item was removed or only deactivated.
type DeleteItemResult struct {
	Deleted     bool `json:"deleted"`
	Deactivated bool `json:"deactivated"`
}

// DeleteItemHandler handles the delete item command.
type DeleteItemHandler struct {
	items  domain.ItemRepository
	ledger domain.TransactionRepository
}

// NewDeleteItemHandler creates a new delete item handler.
func NewDeleteItemHandler(items domain.ItemRepository, ledger domain.TransactionRepository) *DeleteItemHandler {
	return &DeleteItemHandler{items: items, ledger: ledger}
}

// Handle deletes the item only when it has no ledger history; an item with
// transactions keeps its audit trail and is set inactive instead.
func (h *DeleteItemHandler) Handle(cmd DeleteItemCommand) (*DeleteItemResult, error) {
	item, err := h.items.FindByID(cmd.OwnerID, cmd.ItemID)
	if err != nil {
		return nil, err
	}

	count, err := h.ledger.CountByItem(cmd.OwnerID, item.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}

	if count == 0 {
		if err := h.items.Delete(cmd.OwnerID, item.ID); err != nil {
			return nil, fmt.Errorf("failed to delete item: %w", err)
		}
		return &DeleteItemResult{Deleted: true}, nil
	}

	item.Status = domain.StatusInactive
	if err := h.items.Update(item); err != nil {
		return nil, fmt.Errorf("failed to deactivate item: %w", err)
	}
	return &DeleteItemResult{Deactivated: true}, nil
}
