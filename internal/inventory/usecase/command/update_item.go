package command

import (
	"fmt"
	"time"

	"github.com/vbms/inventory-service/internal/inventory/domain"
)

// UpdateItemCommand edits item fields directly. Quantity is never edited here;
// it only moves through adjust, transfer, reserve and release.
type UpdateItemCommand struct {
	OwnerID uint
	ItemID  uint

	Name     *string
	Barcode  *string
	Category *string
	Tags     []string

	Thresholds *domain.StockThresholds
	Pricing    *domain.Pricing
	Alerts     *domain.AlertSettings

	Suppliers []domain.Supplier

	Perishable     *bool
	ExpirationDate *time.Time

	// Status accepts active, inactive or discontinued. out_of_stock is
	// derived from quantity and cannot be set directly.
	Status *domain.ItemStatus
}

// UpdateItemHandler handles the update item command.
type UpdateItemHandler struct {
	items domain.ItemRepository
}

// NewUpdateItemHandler creates a new update item handler.
func NewUpdateItemHandler(items domain.ItemRepository) *UpdateItemHandler {
	return &UpdateItemHandler{items: items}
}

// Handle applies the provided field edits and re-derives the status.
func (h *UpdateItemHandler) Handle(cmd UpdateItemCommand) (*domain.Item, error) {
	if cmd.Status != nil {
		switch *cmd.Status {
		case domain.StatusActive, domain.StatusInactive, domain.StatusDiscontinued:
		default:
			return nil, fmt.Errorf("%w: status %q cannot be set directly", domain.ErrValidation, *cmd.Status)
		}
	}
	if cmd.Name != nil && *cmd.Name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrValidation)
	}

	item, err := h.items.FindByID(cmd.OwnerID, cmd.ItemID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		item.Name = *cmd.Name
	}
	if cmd.Barcode != nil {
		item.Barcode = *cmd.Barcode
	}
	if cmd.Category != nil {
		item.Category = *cmd.Category
		if item.Category == "" {
			item.Category = domain.CategoryOther
		}
	}
	if cmd.Tags != nil {
		item.Tags = cmd.Tags
	}
	if cmd.Thresholds != nil {
		if cmd.Thresholds.Minimum < 0 || cmd.Thresholds.Maximum < 0 ||
			cmd.Thresholds.ReorderPoint < 0 || cmd.Thresholds.ReorderQuantity < 0 {
			return nil, fmt.Errorf("%w: thresholds cannot be negative", domain.ErrValidation)
		}
		item.Thresholds = *cmd.Thresholds
	}
	if cmd.Pricing != nil {
		if cmd.Pricing.Cost < 0 || cmd.Pricing.SellingPrice < 0 || cmd.Pricing.WholesalePrice < 0 {
			return nil, fmt.Errorf("%w: prices cannot be negative", domain.ErrValidation)
		}
		item.Pricing = *cmd.Pricing
	}
	if cmd.Alerts != nil {
		item.Alerts = *cmd.Alerts
	}
	if cmd.Suppliers != nil {
		for i := range cmd.Suppliers {
			cmd.Suppliers[i].ItemID = item.ID
			cmd.Suppliers[i].Position = i
		}
		item.Suppliers = cmd.Suppliers
	}
	if cmd.Perishable != nil {
		item.Perishable = *cmd.Perishable
	}
	if cmd.ExpirationDate != nil {
		item.ExpirationDate = cmd.ExpirationDate
	}
	if cmd.Status != nil {
		item.Status = *cmd.Status
	}

	item.Quantity.Recalculate()
	item.RefreshStatus()

	if err := h.items.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	return item, nil
}
