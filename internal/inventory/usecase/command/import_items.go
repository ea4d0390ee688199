package command

import (
	"strconv"
	"strings"

	"github.com/vbms/inventory-service/internal/inventory/domain"
)

// ImportRow is one loosely-typed spreadsheet row. All fields arrive as text;
// missing or unparseable numerics default to 0 (documented, intentional
// permissiveness for bulk uploads).
type ImportRow struct {
	SKU             string `json:"sku"`
	Name            string `json:"name"`
	Barcode         string `json:"barcode"`
	Category        string `json:"category"`
	Quantity        string `json:"quantity"`
	Cost            string `json:"cost"`
	SellingPrice    string `json:"selling_price"`
	ReorderPoint    string `json:"reorder_point"`
	ReorderQuantity string `json:"reorder_quantity"`
	Maximum         string `json:"maximum"`
}

// ImportRowError reports one rejected row.
type ImportRowError struct {
	Row   int    `json:"row"`
	SKU   string `json:"sku"`
	Error string `json:"error"`
}

// ImportedItem is the per-row success record.
type ImportedItem struct {
	Row    int    `json:"row"`
	ItemID uint   `json:"item_id"`
	SKU    string `json:"sku"`
}

// ImportResult summarizes a bulk import.
type ImportResult struct {
	Success []ImportedItem   `json:"success"`
	Errors  []ImportRowError `json:"errors"`
	Total   int              `json:"total"`
}

// ImportItemsCommand creates many items from spreadsheet rows.
type ImportItemsCommand struct {
	OwnerID     uint
	Rows        []ImportRow
	PerformedBy string
}

// ImportItemsHandler handles the bulk import command.
type ImportItemsHandler struct {
	create *CreateItemHandler
}

// NewImportItemsHandler creates a new import handler.
func NewImportItemsHandler(create *CreateItemHandler) *ImportItemsHandler {
	return &ImportItemsHandler{create: create}
}

// Handle maps each row to the item-creation contract and collects per-row
// outcomes. A bad row never aborts the batch.
func (h *ImportItemsHandler) Handle(cmd ImportItemsCommand) (*ImportResult, error) {
	result := &ImportResult{
		Success: []ImportedItem{},
		Errors:  []ImportRowError{},
		Total:   len(cmd.Rows),
	}

	for i, row := range cmd.Rows {
		item, err := h.create.Handle(row.toCreateCommand(cmd.OwnerID, cmd.PerformedBy))
		if err != nil {
			result.Errors = append(result.Errors, ImportRowError{
				Row:   i + 1,
				SKU:   row.SKU,
				Error: err.Error(),
			})
			continue
		}
		result.Success = append(result.Success, ImportedItem{
			Row:    i + 1,
			ItemID: item.ID,
			SKU:    item.SKU,
		})
	}

	return result, nil
}

func (r ImportRow) toCreateCommand(ownerID uint, performedBy string) CreateItemCommand {
	return CreateItemCommand{
		OwnerID:         ownerID,
		SKU:             strings.TrimSpace(r.SKU),
		Barcode:         strings.TrimSpace(r.Barcode),
		Name:            strings.TrimSpace(r.Name),
		Category:        strings.TrimSpace(r.Category),
		InitialQuantity: parseIntField(r.Quantity),
		Thresholds: domain.StockThresholds{
			Maximum:         parseIntField(r.Maximum),
			ReorderPoint:    parseIntField(r.ReorderPoint),
			ReorderQuantity: parseIntField(r.ReorderQuantity),
		},
		Pricing: domain.Pricing{
			Cost:         parseFloatField(r.Cost),
			SellingPrice: parseFloatField(r.SellingPrice),
		},
		PerformedBy: performedBy,
	}
}

func parseIntField(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func parseFloatField(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}
