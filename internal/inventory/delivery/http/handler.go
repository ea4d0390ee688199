package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vbms/inventory-service/internal/inventory/domain"
	"github.com/vbms/inventory-service/internal/inventory/usecase/command"
	"github.com/vbms/inventory-service/internal/inventory/usecase/query"
	"github.com/vbms/inventory-service/pkg/logger"
)

// InventoryHandler handles HTTP requests for inventory.
type InventoryHandler struct {
	createItem    *command.CreateItemHandler
	updateItem    *command.UpdateItemHandler
	deleteItem    *command.DeleteItemHandler
	adjustStock   *command.AdjustStockHandler
	transferStock *command.TransferStockHandler
	reserveStock  *command.ReserveStockHandler
	releaseStock  *command.ReleaseStockHandler
	reverseTx     *command.ReverseTransactionHandler
	importItems   *command.ImportItemsHandler

	getItem   *query.GetItemHandler
	listItems *query.ListItemsHandler
	listTx    *query.ListTransactionsHandler
	summary   *query.GetSummaryHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewInventoryHandler creates a new inventory handler with Prometheus metrics.
func NewInventoryHandler(
	createItem *command.CreateItemHandler,
	updateItem *command.UpdateItemHandler,
	deleteItem *command.DeleteItemHandler,
	adjustStock *command.AdjustStockHandler,
	transferStock *command.TransferStockHandler,
	reserveStock *command.ReserveStockHandler,
	releaseStock *command.ReleaseStockHandler,
	reverseTx *command.ReverseTransactionHandler,
	importItems *command.ImportItemsHandler,
	getItem *query.GetItemHandler,
	listItems *query.ListItemsHandler,
	listTx *query.ListTransactionsHandler,
	summary *query.GetSummaryHandler,
) *InventoryHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_service_requests_total",
			Help: "Total number of requests to inventory service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inventory_service_request_duration_seconds",
			Help:    "Duration of inventory service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &InventoryHandler{
		createItem:     createItem,
		updateItem:     updateItem,
		deleteItem:     deleteItem,
		adjustStock:    adjustStock,
		transferStock:  transferStock,
		reserveStock:   reserveStock,
		releaseStock:   releaseStock,
		reverseTx:      reverseTx,
		importItems:    importItems,
		getItem:        getItem,
		listItems:      listItems,
		listTx:         listTx,
		summary:        summary,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
	}
}

// Response is the JSON envelope for every endpoint.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// CreateItem handles POST /api/inventory/items
func (h *InventoryHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	var req struct {
		SKU            string                 `json:"sku"`
		Barcode        string                 `json:"barcode"`
		Name           string                 `json:"name"`
		Category       string                 `json:"category"`
		Tags           []string               `json:"tags"`
		Quantity       int                    `json:"quantity"`
		Thresholds     domain.StockThresholds `json:"thresholds"`
		Pricing        domain.Pricing         `json:"pricing"`
		Alerts         *domain.AlertSettings  `json:"alerts"`
		Suppliers      []domain.Supplier      `json:"suppliers"`
		Locations      []domain.StockLocation `json:"locations"`
		Perishable     bool                   `json:"perishable"`
		ExpirationDate *time.Time             `json:"expiration_date"`
		PerformedBy    string                 `json:"performed_by"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	item, err := h.createItem.Handle(command.CreateItemCommand{
		OwnerID:         ownerID,
		SKU:             req.SKU,
		Barcode:         req.Barcode,
		Name:            req.Name,
		Category:        req.Category,
		Tags:            req.Tags,
		InitialQuantity: req.Quantity,
		Thresholds:      req.Thresholds,
		Pricing:         req.Pricing,
		Alerts:          req.Alerts,
		Suppliers:       req.Suppliers,
		Locations:       req.Locations,
		Perishable:      req.Perishable,
		ExpirationDate:  req.ExpirationDate,
		PerformedBy:     req.PerformedBy,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Item created successfully",
		Data:    item,
	})
}

// ListItems handles GET /api/inventory/items
func (h *InventoryHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	items, err := h.listItems.Handle(query.ListItemsQuery{
		OwnerID: ownerID,
		Filter: domain.ItemFilter{
			Category: r.URL.Query().Get("category"),
			Status:   domain.ItemStatus(r.URL.Query().Get("status")),
			LowStock: r.URL.Query().Get("low_stock") == "true",
			Search:   r.URL.Query().Get("search"),
			Limit:    limit,
			Offset:   offset,
		},
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: items})
}

// GetItem handles GET /api/inventory/items/{id}
func (h *InventoryHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	item, err := h.getItem.Handle(query.GetItemQuery{OwnerID: ownerID, ItemID: id})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: item})
}

// UpdateItem handles PUT /api/inventory/items/{id}
func (h *InventoryHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req struct {
		Name           *string                 `json:"name"`
		Barcode        *string                 `json:"barcode"`
		Category       *string                 `json:"category"`
		Tags           []string                `json:"tags"`
		Thresholds     *domain.StockThresholds `json:"thresholds"`
		Pricing        *domain.Pricing         `json:"pricing"`
		Alerts         *domain.AlertSettings   `json:"alerts"`
		Suppliers      []domain.Supplier       `json:"suppliers"`
		Perishable     *bool                   `json:"perishable"`
		ExpirationDate *time.Time              `json:"expiration_date"`
		Status         *domain.ItemStatus      `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	item, err := h.updateItem.Handle(command.UpdateItemCommand{
		OwnerID:        ownerID,
		ItemID:         id,
		Name:           req.Name,
		Barcode:        req.Barcode,
		Category:       req.Category,
		Tags:           req.Tags,
		Thresholds:     req.Thresholds,
		Pricing:        req.Pricing,
		Alerts:         req.Alerts,
		Suppliers:      req.Suppliers,
		Perishable:     req.Perishable,
		ExpirationDate: req.ExpirationDate,
		Status:         req.Status,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item updated successfully",
		Data:    item,
	})
}

// DeleteItem handles DELETE /api/inventory/items/{id}
func (h *InventoryHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	result, err := h.deleteItem.Handle(command.DeleteItemCommand{OwnerID: ownerID, ItemID: id})
	if err != nil {
		respondError(w, err)
		return
	}

	message := "Item deleted"
	if result.Deactivated {
		message = "Item has transaction history and was deactivated instead"
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Message: message, Data: result})
}

// AdjustStock handles POST /api/inventory/items/{id}/adjust
func (h *InventoryHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req struct {
		Delta       int    `json:"delta"`
		Reason      string `json:"reason"`
		PerformedBy string `json:"performed_by"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	result, err := h.adjustStock.Handle(command.AdjustStockCommand{
		OwnerID:     ownerID,
		ItemID:      id,
		Delta:       req.Delta,
		Reason:      req.Reason,
		PerformedBy: req.PerformedBy,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Stock adjusted successfully",
		Data:    result,
	})
}

// TransferStock handles POST /api/inventory/items/{id}/transfer
func (h *InventoryHandler) TransferStock(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req struct {
		From        domain.LocationRef `json:"from"`
		To          domain.LocationRef `json:"to"`
		Quantity    int                `json:"quantity"`
		Reason      string             `json:"reason"`
		PerformedBy string             `json:"performed_by"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	result, err := h.transferStock.Handle(command.TransferStockCommand{
		OwnerID:     ownerID,
		ItemID:      id,
		From:        req.From,
		To:          req.To,
		Quantity:    req.Quantity,
		Reason:      req.Reason,
		PerformedBy: req.PerformedBy,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Stock transferred successfully",
		Data:    result,
	})
}

// ReserveStock handles POST /api/inventory/items/{id}/reserve
func (h *InventoryHandler) ReserveStock(w http.ResponseWriter, r *http.Request) {
	h.handleReservation(w, r, true)
}

// ReleaseStock handles POST /api/inventory/items/{id}/release
func (h *InventoryHandler) ReleaseStock(w http.ResponseWriter, r *http.Request) {
	h.handleReservation(w, r, false)
}

func (h *InventoryHandler) handleReservation(w http.ResponseWriter, r *http.Request, reserve bool) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	var item *domain.Item
	var err error
	message := "Stock released successfully"
	if reserve {
		item, err = h.reserveStock.Handle(command.ReserveStockCommand{OwnerID: ownerID, ItemID: id, Quantity: req.Quantity})
		message = "Stock reserved successfully"
	} else {
		item, err = h.releaseStock.Handle(command.ReleaseStockCommand{OwnerID: ownerID, ItemID: id, Quantity: req.Quantity})
	}
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: message, Data: item})
}

// ListTransactions handles GET /api/inventory/transactions and
// GET /api/inventory/items/{id}/transactions
func (h *InventoryHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	filter := domain.TransactionFilter{
		Type: domain.TransactionType(r.URL.Query().Get("type")),
	}
	filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	filter.Offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))

	if raw, exists := mux.Vars(r)["id"]; exists {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid item ID"})
			return
		}
		filter.ItemID = uint(id)
	}

	if start := r.URL.Query().Get("start"); start != "" {
		if t, err := time.Parse(time.RFC3339, start); err == nil {
			filter.Start = t
		}
	}
	if end := r.URL.Query().Get("end"); end != "" {
		if t, err := time.Parse(time.RFC3339, end); err == nil {
			filter.End = t
		}
	}

	txs, err := h.listTx.Handle(query.ListTransactionsQuery{OwnerID: ownerID, Filter: filter})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: txs})
}

// ReverseTransaction handles POST /api/inventory/transactions/{id}/reverse
func (h *InventoryHandler) ReverseTransaction(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req struct {
		Reason      string `json:"reason"`
		PerformedBy string `json:"performed_by"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	result, err := h.reverseTx.Handle(command.ReverseTransactionCommand{
		OwnerID:       ownerID,
		TransactionID: id,
		Reason:        req.Reason,
		PerformedBy:   req.PerformedBy,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Transaction reversed successfully",
		Data:    result,
	})
}

// GetSummary handles GET /api/inventory/summary
func (h *InventoryHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
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

	respondJSON(w, http.StatusOK, Response{Success: true, Data: summary})
}

// RegisterRoutes registers all inventory routes.
func (h *InventoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/inventory/items", h.metricsMiddleware("list_items", h.ListItems)).Methods("GET")
	router.HandleFunc("/api/inventory/items", h.metricsMiddleware("create_item", h.CreateItem)).Methods("POST")
	router.HandleFunc("/api/inventory/items/{id}", h.metricsMiddleware("get_item", h.GetItem)).Methods("GET")
	router.HandleFunc("/api/inventory/items/{id}", h.metricsMiddleware("update_item", h.UpdateItem)).Methods("PUT")
	router.HandleFunc("/api/inventory/items/{id}", h.metricsMiddleware("delete_item", h.DeleteItem)).Methods("DELETE")
	router.HandleFunc("/api/inventory/items/{id}/adjust", h.metricsMiddleware("adjust_stock", h.AdjustStock)).Methods("POST")
	router.HandleFunc("/api/inventory/items/{id}/transfer", h.metricsMiddleware("transfer_stock", h.TransferStock)).Methods("POST")
	router.HandleFunc("/api/inventory/items/{id}/reserve", h.metricsMiddleware("reserve_stock", h.ReserveStock)).Methods("POST")
	router.HandleFunc("/api/inventory/items/{id}/release", h.metricsMiddleware("release_stock", h.ReleaseStock)).Methods("POST")
	router.HandleFunc("/api/inventory/items/{id}/transactions", h.metricsMiddleware("list_item_transactions", h.ListTransactions)).Methods("GET")
	router.HandleFunc("/api/inventory/transactions", h.metricsMiddleware("list_transactions", h.ListTransactions)).Methods("GET")
	router.HandleFunc("/api/inventory/transactions/{id}/reverse", h.metricsMiddleware("reverse_transaction", h.ReverseTransaction)).Methods("POST")
	router.HandleFunc("/api/inventory/summary", h.metricsMiddleware("get_summary", h.GetSummary)).Methods("GET")
	router.HandleFunc("/api/inventory/summary/export", h.metricsMiddleware("export_summary", h.ExportSummary)).Methods("GET")
	router.HandleFunc("/api/inventory/import", h.metricsMiddleware("import_items", h.ImportItems)).Methods("POST")
}

// RegisterHealthCheck registers the health check endpoint.
func (h *InventoryHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}
		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Inventory service is healthy",
		})
	}).Methods("GET")
}

// summaryQueryFromRequest parses the shared summary query parameters.
func summaryQueryFromRequest(w http.ResponseWriter, r *http.Request, ownerID uint) (query.GetSummaryQuery, bool) {
	q := query.GetSummaryQuery{OwnerID: ownerID}

	if start := r.URL.Query().Get("start"); start != "" {
		t, err := time.Parse(time.RFC3339, start)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid start date"})
			return q, false
		}
		q.Start = t
	}
	if end := r.URL.Query().Get("end"); end != "" {
		t, err := time.Parse(time.RFC3339, end)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid end date"})
			return q, false
		}
		q.End = t
	}
	q.TopN, _ = strconv.Atoi(r.URL.Query().Get("top"))

	return q, true
}

// pathID extracts a uint path variable.
func pathID(w http.ResponseWriter, r *http.Request, name string) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// respondError maps domain error kinds to HTTP statuses.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrItemNotFound), errors.Is(err, domain.ErrTransactionNotFound):
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock), errors.Is(err, domain.ErrAlreadyReversed):
		respondJSON(w, http.StatusConflict, Response{Success: false, Error: err.Error()})
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrDuplicateSKU):
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
	default:
		logger.Logger.Error().Err(err).Msg("Request failed")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Internal server error"})
	}
}

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
