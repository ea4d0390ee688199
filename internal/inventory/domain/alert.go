package domain

import (
	"fmt"
	"time"
)

// AlertType identifies a stock alert rule.
type AlertType string

const (
	AlertLowStock     AlertType = "low_stock"
	AlertOutOfStock   AlertType = "out_of_stock"
	AlertOverstock    AlertType = "overstock"
	AlertExpiringSoon AlertType = "expiring_soon"
)

// Alert is one fired alert signal for an item.
type Alert struct {
	Type    AlertType `json:"type"`
	Message string    `json:"message"`
}

// expiringWindow is the warning horizon for perishable items.
const expiringWindow = 7 * 24 * time.Hour

// EvaluateAlerts inspects the item's quantity against its thresholds and
// returns every alert whose rule fires and whose flag is enabled on the item.
// It is a pure function of item state and the clock; dispatching the alerts
// is the caller's concern.
func EvaluateAlerts(item *Item, now time.Time) []Alert {
	var alerts []Alert
	current := item.Quantity.Current

	if item.Alerts.LowStock && current > 0 && current <= item.Thresholds.ReorderPoint {
		alerts = append(alerts, Alert{
			Type: AlertLowStock,
			Message: fmt.Sprintf("%s is low on stock: %d remaining (reorder point %d)",
				item.SKU, current, item.Thresholds.ReorderPoint),
		})
	}

	if item.Alerts.OutOfStock && current == 0 {
		alerts = append(alerts, Alert{
			Type:    AlertOutOfStock,
			Message: fmt.Sprintf("%s is out of stock", item.SKU),
		})
	}

	if item.Alerts.Overstock && item.Thresholds.Maximum > 0 && current >= item.Thresholds.Maximum {
		alerts = append(alerts, Alert{
			Type: AlertOverstock,
			Message: fmt.Sprintf("%s is overstocked: %d on hand (maximum %d)",
				item.SKU, current, item.Thresholds.Maximum),
		})
	}

	// Already-expired items are not flagged here; the window is (0, 7] days.
	if item.Alerts.ExpiringSoon && item.Perishable && item.ExpirationDate != nil {
		left := item.ExpirationDate.Sub(now)
		if left > 0 && left <= expiringWindow {
			days := int(left.Hours()/24) + 1
			alerts = append(alerts, Alert{
				Type: AlertExpiringSoon,
				Message: fmt.Sprintf("%s expires in %d day(s) on %s",
					item.SKU, days, item.ExpirationDate.Format("2006-01-02")),
			})
		}
	}

	return alerts
}
