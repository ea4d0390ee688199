package kafka

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vbms/inventory-service/internal/inventory/domain"
	"github.com/vbms/inventory-service/pkg/logger"
)

// AlertDispatcher adapts the publisher to the usecase dispatch contract.
// Dispatch is fire-and-forget: it returns immediately and publish failures
// are logged, never surfaced to the inventory operation that fired them.
type AlertDispatcher struct {
	publisher    *Publisher
	alertCounter *prometheus.CounterVec
}

// NewAlertDispatcher creates a dispatcher over the publisher.
func NewAlertDispatcher(publisher *Publisher) *AlertDispatcher {
	alertCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_stock_alerts_total",
			Help: "Total number of stock alerts fired, by alert type",
		},
		[]string{"type"},
	)
	prometheus.MustRegister(alertCounter)

	return &AlertDispatcher{
		publisher:    publisher,
		alertCounter: alertCounter,
	}
}

// Dispatch publishes each alert in the background.
func (d *AlertDispatcher) Dispatch(item *domain.Item, alerts []domain.Alert) {
	events := make([]StockAlertEvent, 0, len(alerts))
	for _, a := range alerts {
		d.alertCounter.WithLabelValues(string(a.Type)).Inc()
		events = append(events, StockAlertEvent{
			OwnerID:         item.OwnerID,
			ItemID:          item.ID,
			SKU:             item.SKU,
			ItemName:        item.Name,
			AlertType:       string(a.Type),
			Message:         a.Message,
			CurrentQuantity: item.Quantity.Current,
			ReorderPoint:    item.Thresholds.ReorderPoint,
		})
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		for _, event := range events {
			if err := d.publisher.PublishStockAlert(ctx, event); err != nil {
				logger.Logger.Error().
					Err(err).
					Str("alert_type", event.AlertType).
					Str("sku", event.SKU).
					Msg("Dropping stock alert after publish failure")
			}
		}
	}()
}

// PublishMovement echoes one ledger entry in the background. Like alerts,
// the echo is best-effort; the ledger row is the source of truth.
func (d *AlertDispatcher) PublishMovement(item *domain.Item, tx *domain.Transaction) {
	event := StockMovementEvent{
		OwnerID:        tx.OwnerID,
		ItemID:         tx.ItemID,
		SKU:            item.SKU,
		TransactionID:  tx.ID,
		Type:           string(tx.Type),
		Quantity:       tx.Quantity,
		BeforeQuantity: tx.BeforeQuantity,
		AfterQuantity:  tx.AfterQuantity,
		Reason:         tx.Reason,
		PerformedBy:    tx.PerformedBy,
	}
	if tx.FromLocation != nil {
		event.FromWarehouse = tx.FromLocation.Warehouse
	}
	if tx.ToLocation != nil {
		event.ToWarehouse = tx.ToLocation.Warehouse
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := d.publisher.PublishStockMovement(ctx, event); err != nil {
			logger.Logger.Error().
				Err(err).
				Uint("transaction_id", event.TransactionID).
				Msg("Dropping stock movement echo after publish failure")
		}
	}()
}
