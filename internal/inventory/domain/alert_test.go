package domain

import (
	"testing"
	"time"
)

func alertTypes(alerts []Alert) map[AlertType]bool {
	m := make(map[AlertType]bool, len(alerts))
	for _, a := range alerts {
		m[a.Type] = true
	}
	return m
}

func TestEvaluateAlertsLowStock(t *testing.T) {
	item := &Item{
		SKU:        "WIDGET-1",
		Quantity:   Quantity{Current: 5},
		Thresholds: StockThresholds{ReorderPoint: 10},
		Alerts:     AlertSettings{LowStock: true, OutOfStock: true},
	}

	alerts := EvaluateAlerts(item, time.Now())
	if len(alerts) != 1 {
		t.Fatalf("alerts = %d, want exactly 1", len(alerts))
	}
	if alerts[0].Type != AlertLowStock {
		t.Errorf("type = %s, want low_stock", alerts[0].Type)
	}
}

func TestEvaluateAlertsOutOfStock(t *testing.T) {
	item := &Item{
		SKU:        "WIDGET-1",
		Quantity:   Quantity{Current: 0},
		Thresholds: StockThresholds{ReorderPoint: 10},
		Alerts:     AlertSettings{LowStock: true, OutOfStock: true},
	}

	alerts := EvaluateAlerts(item, time.Now())
	got := alertTypes(alerts)
	if !got[AlertOutOfStock] {
		t.Error("out_of_stock did not fire at zero")
	}
	// Zero stock is out of stock, not low stock.
	if got[AlertLowStock] {
		t.Error("low_stock fired at zero quantity")
	}
}

func TestEvaluateAlertsDisabledFlags(t *testing.T) {
	item := &Item{
		SKU:        "WIDGET-1",
		Quantity:   Quantity{Current: 0},
		Thresholds: StockThresholds{ReorderPoint: 10},
	}

	if alerts := EvaluateAlerts(item, time.Now()); len(alerts) != 0 {
		t.Errorf("alerts fired with all flags disabled: %v", alerts)
	}
}

func TestEvaluateAlertsOverstock(t *testing.T) {
	item := &Item{
		SKU:        "WIDGET-1",
		Quantity:   Quantity{Current: 120},
		Thresholds: StockThresholds{Maximum: 100},
		Alerts:     AlertSettings{Overstock: true},
	}

	alerts := EvaluateAlerts(item, time.Now())
	if len(alerts) != 1 || alerts[0].Type != AlertOverstock {
		t.Fatalf("alerts = %v, want single overstock", alerts)
	}

	// Maximum of zero means unbounded; never fires.
	item.Thresholds.Maximum = 0
	if alerts := EvaluateAlerts(item, time.Now()); len(alerts) != 0 {
		t.Errorf("overstock fired with zero maximum: %v", alerts)
	}
}

func TestEvaluateAlertsExpiringSoon(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		expires time.Time
		want    bool
	}{
		{"inside window", now.Add(3 * 24 * time.Hour), true},
		{"at window edge", now.Add(7 * 24 * time.Hour), true},
		{"beyond window", now.Add(8 * 24 * time.Hour), false},
		{"already expired", now.Add(-24 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expires := tt.expires
			item := &Item{
				SKU:            "MILK-1",
				Quantity:       Quantity{Current: 5},
				Perishable:     true,
				ExpirationDate: &expires,
				Alerts:         AlertSettings{ExpiringSoon: true},
			}
			alerts := EvaluateAlerts(item, now)
			fired := alertTypes(alerts)[AlertExpiringSoon]
			if fired != tt.want {
				t.Errorf("fired = %v, want %v", fired, tt.want)
			}
		})
	}
}

func TestEvaluateAlertsExpiringRequiresPerishable(t *testing.T) {
	expires := time.Now().Add(24 * time.Hour)
	item := &Item{
		SKU:            "WIDGET-1",
		Quantity:       Quantity{Current: 5},
		Perishable:     false,
		ExpirationDate: &expires,
		Alerts:         AlertSettings{ExpiringSoon: true},
	}
	if alerts := EvaluateAlerts(item, time.Now()); len(alerts) != 0 {
		t.Errorf("expiring_soon fired on non-perishable item: %v", alerts)
	}
}
