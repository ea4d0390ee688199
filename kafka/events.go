package kafka

import "time"

// StockAlertEvent is published when an inventory mutation leaves an item in
// an alerting state (low stock, out of stock, overstock, expiring soon).
type StockAlertEvent struct {
	EventID         string    `json:"event_id"`
	EventType       string    `json:"event_type"`
	OwnerID         uint      `json:"owner_id"`
	ItemID          uint      `json:"item_id"`
	SKU             string    `json:"sku"`
	ItemName        string    `json:"item_name"`
	AlertType       string    `json:"alert_type"`
	Message         string    `json:"message"`
	CurrentQuantity int       `json:"current_quantity"`
	ReorderPoint    int       `json:"reorder_point"`
	Timestamp       time.Time `json:"timestamp"`
}

// StockMovementEvent echoes one ledger entry for downstream consumers
// (reporting, sync, audit). It mirrors the entry's snapshots so consumers
// never need to read the ledger table.
type StockMovementEvent struct {
	EventID        string    `json:"event_id"`
	EventType      string    `json:"event_type"`
	OwnerID        uint      `json:"owner_id"`
	ItemID         uint      `json:"item_id"`
	SKU            string    `json:"sku"`
	TransactionID  uint      `json:"transaction_id"`
	Type           string    `json:"type"`
	Quantity       int       `json:"quantity"`
	BeforeQuantity int       `json:"before_quantity"`
	AfterQuantity  int       `json:"after_quantity"`
	Reason         string    `json:"reason"`
	PerformedBy    string    `json:"performed_by,omitempty"`
	FromWarehouse  string    `json:"from_warehouse,omitempty"`
	ToWarehouse    string    `json:"to_warehouse,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeStockAlert    = "inventory.stock_alert"
	EventTypeStockMovement = "inventory.stock_movement"
)

// Kafka topics
const (
	TopicStockAlerts    = "inventory-stock-alerts"
	TopicStockMovements = "inventory-stock-movements"
)
