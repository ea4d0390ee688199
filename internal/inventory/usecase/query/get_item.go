package query

import (
	"fmt"

	"github.com/vbms/inventory-service/internal/inventory/domain"
)

// GetItemQuery fetches one item by id.
type GetItemQuery struct {
	OwnerID uint
	ItemID  uint
}

// GetItemHandler handles the get item query.
type GetItemHandler struct {
	items domain.ItemRepository
}

// NewGetItemHandler creates a new get item handler.
func NewGetItemHandler(items domain.ItemRepository) *GetItemHandler {
	return &GetItemHandler{items: items}
}

// Handle returns the item or ErrItemNotFound.
func (h *GetItemHandler) Handle(q GetItemQuery) (*domain.Item, error) {
	if q.ItemID == 0 {
		return nil, fmt.Errorf("%w: item id is required", domain.ErrValidation)
	}
	return h.items.FindByID(q.OwnerID, q.ItemID)
}
