package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation for Inventory Service
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	// Swagger UI
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// CreateItem godoc
// @Summary Create inventory item
// @Description Create a new inventory item, optionally seeding initial stock
// @Tags Items
// @Accept json
// @Produce json
// @Param X-Owner-ID header int true "Owner customer ID"
// @Param request body object{sku=string,name=string,category=string,quantity=int,thresholds=object,pricing=object} true "Item data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/inventory/items [post]
func (h *InventoryHandler) CreateItemDoc() {}

// ListItems godoc
// @Summary List inventory items
// @Description List items with category, status, low-stock and search filters
// @Tags Items
// @Produce json
// @Param X-Owner-ID header int true "Owner customer ID"
// @Param category query string false "Category"
// @Param status query string false "Status"
// @Param low_stock query bool false "Only items at or below reorder point"
// @Param search query string false "Match against SKU, name or barcode"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} object{success=bool,data=array}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/inventory/items [get]
func (h *InventoryHandler) ListItemsDoc() {}

// GetItem godoc
// @Summary Get item by ID
// @Tags Items
// @Produce json
// @Param X-Owner-ID header int true "Owner customer ID"
// @Param id path int true "Item ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/inventory/items/{id} [get]
func (h *InventoryHandler) GetItemDoc() {}

// UpdateItem godoc
// @Summary Update item metadata
// @Description Partial update; only the fields present in the body change
// @Tags Items
// @Accept json
// @Produce json
// @Param X-Owner-ID header int true "Owner customer ID"
// @Param id path int true "Item ID"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/inventory/items/{id} [put]
func (h *InventoryHandler) UpdateItemDoc() {}

// DeleteItem godoc
// @Summary Delete or deactivate item
// @Description Items with ledger history are deactivated instead of deleted
// @Tags Items
// @Produce json
// @Param X-Owner-ID header int true "Owner customer ID"
// @Param id path int true "Item ID"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/inventory/items/{id} [delete]
func (h *InventoryHandler) DeleteItemDoc() {}

// AdjustStock godoc
// @Summary Adjust stock level
// @Description Apply a signed quantity delta and append a ledger entry
// @Tags Stock
// @Accept json
// @Produce json
// @Param X-Owner-ID header int true "Owner customer ID"
// @Param id path int true "Item ID"
// @Param request body object{delta=int,reason=string,performed_by=string} true "Adjustment"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/inventory/items/{id}/adjust [post]
func (h *InventoryHandler) AdjustStockDoc() {}

// TransferStock godoc
// @Summary Transfer stock between locations
// @Tags Stock
// @Accept json
// @Produce json
// @Param X-Owner-ID header int true "Owner customer ID"
// @Param id path int true "Item ID"
// @Param request body object{from=object,to=object,quantity=int,reason=string} true "Transfer"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /api/inventory/items/{id}/transfer [post]
func (h *InventoryHandler) TransferStockDoc() {}

// ReserveStock godoc
// @Summary Reserve stock
// @Description Hold part of the available quantity without changing current stock
// @Tags Stock
// @Accept json
// @Produce json
// @Param X-Owner-ID header int true "Owner customer ID"
// @Param id path int true "Item ID"
// @Param request body object{quantity=int} true "Reservation"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /api/inventory/items/{id}/reserve [post]
func (h *InventoryHandler) ReserveStockDoc() {}

// ReleaseStock godoc
// @Summary Release reserved stock
// @Tags Stock
// @Accept json
// @Produce json
// @Param X-Owner-ID header int true "Owner customer ID"
// @Param id path int true "Item ID"
// @Param request body object{quantity=int} true "Release"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Router /api/inventory/items/{id}/release [post]
func (h *InventoryHandler) ReleaseStockDoc() {}

// ListTransactions godoc
// @Summary List ledger transactions
// @Tags Transactions
// @Produce json
// @Param X-Owner-ID header int true "Owner customer ID"
// @Param type query string false "Transaction type"
// @Param start query string false "RFC3339 window start"
// @Param end query string false "RFC3339 window end"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} object{success=bool,data=array}
// @Router /api/inventory/transactions [get]
func (h *InventoryHandler) ListTransactionsDoc() {}

// ReverseTransaction godoc
// @Summary Reverse a ledger transaction
// @Description Appends a compensating entry; the original is never modified
// @Tags Transactions
// @Accept json
// @Produce json
// @Param X-Owner-ID header int true "Owner customer ID"
// @Param id path int true "Transaction ID"
// @Param request body object{reason=string,performed_by=string} false "Reversal"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /api/inventory/transactions/{id}/reverse [post]
func (h *InventoryHandler) ReverseTransactionDoc() {}

// GetSummary godoc
// @Summary Inventory summary
// @Description Stock counts, inventory value, turnover and top movers for a window
// @Tags Analytics
// @Produce json
// @Param X-Owner-ID header int true "Owner customer ID"
// @Param start query string false "RFC3339 window start (default: 30 days ago)"
// @Param end query string false "RFC3339 window end (default: now)"
// @Param top query int false "Top moving items to return (default: 10)"
// @Success 200 {object} object{success=bool,data=object}
// @Router /api/inventory/summary [get]
func (h *InventoryHandler) GetSummaryDoc() {}

// ExportSummary godoc
// @Summary Export inventory summary as XLSX
// @Tags Analytics
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param X-Owner-ID header int true "Owner customer ID"
// @Success 200 {string} string "XLSX workbook"
// @Router /api/inventory/summary/export [get]
func (h *InventoryHandler) ExportSummaryDoc() {}

// ImportItems godoc
// @Summary Bulk import items
// @Description JSON rows or a multipart CSV upload; bad rows are reported per row
// @Tags Items
// @Accept json
// @Produce json
// @Param X-Owner-ID header int true "Owner customer ID"
// @Success 200 {object} object{success=bool,message=string,data=object{success=array,errors=array,total=int}}
// @Router /api/inventory/import [post]
func (h *InventoryHandler) ImportItemsDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Failure 503 {object} object{success=bool,error=string}
// @Router /health [get]
func (h *InventoryHandler) HealthCheckDoc() {}
