package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/vbms/inventory-service/pkg/logger"
)

// ExportSummary handles GET /api/inventory/summary/export
//
// Produces the same aggregate as GetSummary as a downloadable XLSX workbook.
func (h *InventoryHandler) ExportSummary(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	q, ok := summaryQueryFromRequest(w, r, ownerID)
	if !ok {
		return
	}

	summary, err := h.summary.Handle(q)
	if err != nil {
		respondError(w, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Summary"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})

	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Total items", summary.TotalItems},
		{"Active items", summary.ActiveItems},
		{"Low stock items", summary.LowStockItems},
		{"Out of stock items", summary.OutOfStockItems},
		{"Inventory value (cost)", summary.InventoryValueCost},
		{"Inventory value (retail)", summary.InventoryValueRetail},
		{"Turnover rate (30d)", summary.TurnoverRate},
		{"Turnover rate (window)", summary.WindowTurnoverRate},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetCellStyle(sheet, "A1", "B1", headerStyle)
	f.SetColWidth(sheet, "A", "A", 28)
	f.SetColWidth(sheet, "B", "B", 18)

	const byType = "By Type"
	f.NewSheet(byType)
	f.SetSheetRow(byType, "A1", &[]interface{}{"Transaction type", "Count", "Quantity"})
	f.SetCellStyle(byType, "A1", "C1", headerStyle)
	f.SetColWidth(byType, "A", "A", 22)
	rowIdx := 2
	for txType, totals := range summary.TransactionsByType {
		cell, _ := excelize.CoordinatesToCellName(1, rowIdx)
		f.SetSheetRow(byType, cell, &[]interface{}{string(txType), totals.Count, totals.Quantity})
		rowIdx++
	}

	const topMovers = "Top Movers"
	f.NewSheet(topMovers)
	f.SetSheetRow(topMovers, "A1", &[]interface{}{"Item ID", "SKU", "Name", "Stock in", "Stock out", "Total moved"})
	f.SetCellStyle(topMovers, "A1", "F1", headerStyle)
	f.SetColWidth(topMovers, "B", "C", 24)
	for i, m := range summary.TopMovingItems {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		f.SetSheetRow(topMovers, cell, &[]interface{}{m.ItemID, m.SKU, m.Name, m.StockIn, m.StockOut, m.Total})
	}

	const categories = "Categories"
	f.NewSheet(categories)
	f.SetSheetRow(categories, "A1", &[]interface{}{"Category", "Items", "Total value (cost)"})
	f.SetCellStyle(categories, "A1", "C1", headerStyle)
	f.SetColWidth(categories, "A", "A", 22)
	for i, c := range summary.CategoryBreakdown {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		f.SetSheetRow(categories, cell, &[]interface{}{c.Category, c.Items, c.TotalValue})
	}

	filename := fmt.Sprintf("inventory-summary-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := f.Write(w); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to stream summary workbook")
	}
}
