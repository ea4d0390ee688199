package command

import (
	"errors"
	"fmt"
	"time"

	"github.com/vbms/inventory-service/internal/inventory/domain"
)

// CreateItemCommand represents the command to create an inventory item.
type CreateItemCommand struct {
	OwnerID  uint
	SKU      string
	Barcode  string
	Name     string
	Category string
	Tags     []string

	InitialQuantity int
	Thresholds      domain.StockThresholds
	Pricing         domain.Pricing
	Alerts          *domain.AlertSettings

	Suppliers []domain.Supplier
	Locations []domain.StockLocation

	Perishable     bool
	ExpirationDate *time.Time

	PerformedBy string
}

// CreateItemHandler handles the create item command.
type CreateItemHandler struct {
	items  domain.ItemRepository
	ledger domain.TransactionRepository
}

// NewCreateItemHandler creates a new create item handler.
func NewCreateItemHandler(items domain.ItemRepository, ledger domain.TransactionRepository) *CreateItemHandler {
	return &CreateItemHandler{items: items, ledger: ledger}
}

// Handle creates the item and, when the starting quantity is positive, seeds
// the ledger with exactly one stock_in entry (before 0, after N).
func (h *CreateItemHandler) Handle(cmd CreateItemCommand) (*domain.Item, error) {
	if cmd.OwnerID == 0 {
		return nil, fmt.Errorf("%w: owner_id is required", domain.ErrValidation)
	}
	if cmd.SKU == "" {
		return nil, fmt.Errorf("%w: sku is required", domain.ErrValidation)
	}
	if cmd.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if cmd.InitialQuantity < 0 {
		return nil, fmt.Errorf("%w: initial quantity cannot be negative", domain.ErrValidation)
	}
	if cmd.Thresholds.Minimum < 0 || cmd.Thresholds.Maximum < 0 ||
		cmd.Thresholds.ReorderPoint < 0 || cmd.Thresholds.ReorderQuantity < 0 {
		return nil, fmt.Errorf("%w: thresholds cannot be negative", domain.ErrValidation)
	}
	if cmd.Pricing.Cost < 0 || cmd.Pricing.SellingPrice < 0 || cmd.Pricing.WholesalePrice < 0 {
		return nil, fmt.Errorf("%w: prices cannot be negative", domain.ErrValidation)
	}

	if _, err := h.items.FindBySKU(cmd.OwnerID, cmd.SKU); err == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateSKU, cmd.SKU)
	} else if !errors.Is(err, domain.ErrItemNotFound) {
		return nil, fmt.Errorf("failed to check sku: %w", err)
	}

	if cmd.Category == "" {
		cmd.Category = domain.CategoryOther
	}

	alerts := domain.AlertSettings{LowStock: true, OutOfStock: true}
	if cmd.Alerts != nil {
		alerts = *cmd.Alerts
	}

	item := &domain.Item{
		OwnerID:        cmd.OwnerID,
		SKU:            cmd.SKU,
		Barcode:        cmd.Barcode,
		Name:           cmd.Name,
		Category:       cmd.Category,
		Tags:           cmd.Tags,
		Quantity:       domain.Quantity{Current: cmd.InitialQuantity},
		Thresholds:     cmd.Thresholds,
		Pricing:        cmd.Pricing,
		Alerts:         alerts,
		Suppliers:      cmd.Suppliers,
		Locations:      cmd.Locations,
		Perishable:     cmd.Perishable,
		ExpirationDate: cmd.ExpirationDate,
		Status:         domain.StatusActive,
	}
	item.Quantity.Recalculate()
	item.RefreshStatus()

	if err := h.items.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	if cmd.InitialQuantity > 0 {
		seed := &domain.Transaction{
			OwnerID:        cmd.OwnerID,
			ItemID:         item.ID,
			Type:           domain.TypeStockIn,
			Quantity:       cmd.InitialQuantity,
			BeforeQuantity: 0,
			AfterQuantity:  cmd.InitialQuantity,
			Reason:         "initial stock",
			UnitCost:       item.Pricing.Cost,
			TotalCost:      item.Pricing.Cost * float64(cmd.InitialQuantity),
			PerformedBy:    cmd.PerformedBy,
		}
		if err := h.ledger.Create(seed); err != nil {
			return nil, fmt.Errorf("failed to record initial stock: %w", err)
		}
	}

	return item, nil
}
