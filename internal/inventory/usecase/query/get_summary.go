package query

import (
	"fmt"
	"sort"
	"time"

	"github.com/vbms/inventory-service/internal/inventory/domain"
)

// turnoverReferenceDays is the fixed divisor the turnover rate is computed
// against, regardless of the requested window length. This mirrors the
// behavior of the system this service replaces; WindowTurnoverRate carries
// the window-length-based figure for callers that want it.
const turnoverReferenceDays = 30

// defaultTopN limits the top-moving items ranking.
const defaultTopN = 10

// GetSummaryQuery aggregates inventory state and ledger activity in a window.
type GetSummaryQuery struct {
	OwnerID uint
	Start   time.Time
	End     time.Time
	TopN    int
}

// TypeTotals is the per-type transaction rollup.
type TypeTotals struct {
	Count    int `json:"count"`
	Quantity int `json:"quantity"`
}

// ItemMovement ranks one item's total movement within the window.
type ItemMovement struct {
	ItemID   uint   `json:"item_id"`
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	StockIn  int    `json:"stock_in"`
	StockOut int    `json:"stock_out"`
	Total    int    `json:"total"`
}

// CategorySummary is the per-category value rollup.
type CategorySummary struct {
	Category      string  `json:"category"`
	Items         int     `json:"items"`
	TotalQuantity int     `json:"total_quantity"`
	TotalValue    float64 `json:"total_value"`
}

// InventorySummary is the analytics aggregate. It is read-only over the item
// table and the ledger; nothing is mutated.
type InventorySummary struct {
	TotalItems      int `json:"total_items"`
	ActiveItems     int `json:"active_items"`
	LowStockItems   int `json:"low_stock_items"`
	OutOfStockItems int `json:"out_of_stock_items"`

	InventoryValueCost   float64 `json:"inventory_value_cost"`
	InventoryValueRetail float64 `json:"inventory_value_retail"`

	TurnoverRate       float64 `json:"turnover_rate"`
	WindowTurnoverRate float64 `json:"window_turnover_rate"`

	TransactionsByType map[domain.TransactionType]TypeTotals `json:"transactions_by_type"`
	TopMovingItems     []ItemMovement                         `json:"top_moving_items"`
	CategoryBreakdown  []CategorySummary                      `json:"category_breakdown"`
}

// GetSummaryHandler handles the inventory summary query.
type GetSummaryHandler struct {
	items  domain.ItemRepository
	ledger domain.TransactionRepository
}

// NewGetSummaryHandler creates a new summary handler.
func NewGetSummaryHandler(items domain.ItemRepository, ledger domain.TransactionRepository) *GetSummaryHandler {
	return &GetSummaryHandler{items: items, ledger: ledger}
}

// Handle builds the summary for the owner over [Start, End].
func (h *GetSummaryHandler) Handle(q GetSummaryQuery) (*InventorySummary, error) {
	if q.End.IsZero() {
		q.End = time.Now()
	}
	if q.Start.IsZero() {
		q.Start = q.End.AddDate(0, 0, -turnoverReferenceDays)
	}
	if q.End.Before(q.Start) {
		return nil, fmt.Errorf("%w: end before start", domain.ErrValidation)
	}
	if q.TopN <= 0 {
		q.TopN = defaultTopN
	}

	items, err := h.items.FindAll(q.OwnerID, domain.ItemFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}

	txs, err := h.ledger.FindInRange(q.OwnerID, q.Start, q.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	summary := &InventorySummary{
		TransactionsByType: make(map[domain.TransactionType]TypeTotals),
	}

	byCategory := make(map[string]*CategorySummary)
	itemNames := make(map[uint]*domain.Item)

	for i := range items {
		item := &items[i]
		itemNames[item.ID] = item

		summary.TotalItems++
		if item.Status == domain.StatusActive {
			summary.ActiveItems++
			summary.InventoryValueCost += float64(item.Quantity.Current) * item.Pricing.Cost
			summary.InventoryValueRetail += float64(item.Quantity.Current) * item.Pricing.SellingPrice
		}
		if item.Quantity.Current == 0 {
			summary.OutOfStockItems++
		} else if item.Quantity.Current <= item.Thresholds.ReorderPoint {
			summary.LowStockItems++
		}

		cat := byCategory[item.Category]
		if cat == nil {
			cat = &CategorySummary{Category: item.Category}
			byCategory[item.Category] = cat
		}
		cat.Items++
		cat.TotalQuantity += item.Quantity.Current
		cat.TotalValue += float64(item.Quantity.Current) * item.Pricing.Cost
	}

	movement := make(map[uint]*ItemMovement)
	stockOutTotal := 0

	for i := range txs {
		tx := &txs[i]

		totals := summary.TransactionsByType[tx.Type]
		totals.Count++
		totals.Quantity += tx.Quantity
		summary.TransactionsByType[tx.Type] = totals

		switch tx.Type {
		case domain.TypeStockIn, domain.TypeStockOut:
			m := movement[tx.ItemID]
			if m == nil {
				m = &ItemMovement{ItemID: tx.ItemID}
				if item := itemNames[tx.ItemID]; item != nil {
					m.SKU = item.SKU
					m.Name = item.Name
				}
				movement[tx.ItemID] = m
			}
			if tx.Type == domain.TypeStockIn {
				m.StockIn += tx.Quantity
			} else {
				m.StockOut += tx.Quantity
				stockOutTotal += tx.Quantity
			}
			m.Total = m.StockIn + m.StockOut
		}
	}

	summary.TurnoverRate = float64(stockOutTotal) / float64(turnoverReferenceDays)

	windowDays := q.End.Sub(q.Start).Hours() / 24
	if windowDays < 1 {
		windowDays = 1
	}
	summary.WindowTurnoverRate = float64(stockOutTotal) / windowDays

	for _, m := range movement {
		summary.TopMovingItems = append(summary.TopMovingItems, *m)
	}
	sort.Slice(summary.TopMovingItems, func(i, j int) bool {
		if summary.TopMovingItems[i].Total != summary.TopMovingItems[j].Total {
			return summary.TopMovingItems[i].Total > summary.TopMovingItems[j].Total
		}
		return summary.TopMovingItems[i].ItemID < summary.TopMovingItems[j].ItemID
	})
	if len(summary.TopMovingItems) > q.TopN {
		summary.TopMovingItems = summary.TopMovingItems[:q.TopN]
	}

	for _, c := range byCategory {
		summary.CategoryBreakdown = append(summary.CategoryBreakdown, *c)
	}
	sort.Slice(summary.CategoryBreakdown, func(i, j int) bool {
		if summary.CategoryBreakdown[i].TotalValue != summary.CategoryBreakdown[j].TotalValue {
			return summary.CategoryBreakdown[i].TotalValue > summary.CategoryBreakdown[j].TotalValue
		}
		return summary.CategoryBreakdown[i].Category < summary.CategoryBreakdown[j].Category
	})

	return summary, nil
}
