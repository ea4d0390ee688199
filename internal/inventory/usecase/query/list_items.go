package query

import (
	"fmt"

	"github.com/vbms/inventory-service/internal/inventory/domain"
)

// ListItemsQuery lists the owner's items with optional filters.
type ListItemsQuery struct {
	OwnerID uint
	Filter  domain.ItemFilter
}

// ListItemsHandler handles the list items query.
type ListItemsHandler struct {
	items domain.ItemRepository
}

// NewListItemsHandler creates a new list items handler.
func NewListItemsHandler(items domain.ItemRepository) *ListItemsHandler {
	return &ListItemsHandler{items: items}
}

// Handle returns a page of items, capped at 100 per page.
func (h *ListItemsHandler) Handle(q ListItemsQuery) ([]domain.Item, error) {
	if q.Filter.Limit <= 0 {
		q.Filter.Limit = 20
	}
	if q.Filter.Limit > 100 {
		q.Filter.Limit = 100
	}

	items, err := h.items.FindAll(q.OwnerID, q.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}
