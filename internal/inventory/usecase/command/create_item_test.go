package command

import (
	"errors"
	"testing"

	"github.com/vbms/inventory-service/internal/inventory/domain"
)

func TestCreateItemSeedsLedger(t *testing.T) {
	repo, ledger := newFakeRepos()
	handler := NewCreateItemHandler(repo, ledger)

	item, err := handler.Handle(CreateItemCommand{
		OwnerID:         1,
		SKU:             "WIDGET-1",
		Name:            "Widget",
		InitialQuantity: 25,
		Pricing:         domain.Pricing{Cost: 3},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if item.Quantity.Current != 25 || item.Quantity.Available != 25 {
		t.Errorf("quantity = %+v, want current/available 25", item.Quantity)
	}
	if item.Status != domain.StatusActive {
		t.Errorf("status = %s, want active", item.Status)
	}

	if len(ledger.entries) != 1 {
		t.Fatalf("ledger entries = %d, want exactly 1 seed entry", len(ledger.entries))
	}
	seed := ledger.entries[0]
	if seed.Type != domain.TypeStockIn {
		t.Errorf("seed type = %s, want stock_in", seed.Type)
	}
	if seed.BeforeQuantity != 0 || seed.AfterQuantity != 25 || seed.Quantity != 25 {
		t.Errorf("seed snapshots = {%d %d %d}, want {0 25 25}",
			seed.BeforeQuantity, seed.AfterQuantity, seed.Quantity)
	}
	if seed.Reason != "initial stock" {
		t.Errorf("seed reason = %q", seed.Reason)
	}
	if seed.TotalCost != 75 {
		t.Errorf("seed total cost = %v, want 75", seed.TotalCost)
	}
}

func TestCreateItemZeroQuantity(t *testing.T) {
	repo, ledger := newFakeRepos()
	handler := NewCreateItemHandler(repo, ledger)

	item, err := handler.Handle(CreateItemCommand{OwnerID: 1, SKU: "EMPTY-1", Name: "Empty"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if len(ledger.entries) != 0 {
		t.Errorf("ledger entries = %d, want none for zero initial quantity", len(ledger.entries))
	}
	if item.Status != domain.StatusOutOfStock {
		t.Errorf("status = %s, want out_of_stock at zero quantity", item.Status)
	}
}

func TestCreateItemDuplicateSKU(t *testing.T) {
	repo, ledger := newFakeRepos()
	handler := NewCreateItemHandler(repo, ledger)
	seedItem(repo, 1, "WIDGET-1", 10)

	_, err := handler.Handle(CreateItemCommand{OwnerID: 1, SKU: "WIDGET-1", Name: "Dup"})
	if !errors.Is(err, domain.ErrDuplicateSKU) {
		t.Errorf("err = %v, want ErrDuplicateSKU", err)
	}

	// Same SKU under a different owner is fine.
	if _, err := handler.Handle(CreateItemCommand{OwnerID: 2, SKU: "WIDGET-1", Name: "Other tenant"}); err != nil {
		t.Errorf("cross-owner sku rejected: %v", err)
	}
}

func TestCreateItemValidation(t *testing.T) {
	repo, ledger := newFakeRepos()
	handler := NewCreateItemHandler(repo, ledger)

	tests := []struct {
		name string
		cmd  CreateItemCommand
	}{
		{"missing owner", CreateItemCommand{SKU: "X", Name: "X"}},
		{"missing sku", CreateItemCommand{OwnerID: 1, Name: "X"}},
		{"missing name", CreateItemCommand{OwnerID: 1, SKU: "X"}},
		{"negative quantity", CreateItemCommand{OwnerID: 1, SKU: "X", Name: "X", InitialQuantity: -1}},
		{"negative threshold", CreateItemCommand{OwnerID: 1, SKU: "X", Name: "X",
			Thresholds: domain.StockThresholds{ReorderPoint: -1}}},
		{"negative price", CreateItemCommand{OwnerID: 1, SKU: "X", Name: "X",
			Pricing: domain.Pricing{Cost: -1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := handler.Handle(tt.cmd); !errors.Is(err, domain.ErrValidation) {
				t.Errorf("err = %v, want ErrValidation", err)
			}
		})
	}
}

func TestCreateItemDefaults(t *testing.T) {
	repo, ledger := newFakeRepos()
	handler := NewCreateItemHandler(repo, ledger)

	item, err := handler.Handle(CreateItemCommand{OwnerID: 1, SKU: "D-1", Name: "Defaults", InitialQuantity: 1})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if item.Category != domain.CategoryOther {
		t.Errorf("category = %q, want %q", item.Category, domain.CategoryOther)
	}
	if !item.Alerts.LowStock || !item.Alerts.OutOfStock {
		t.Errorf("default alerts = %+v, want low_stock and out_of_stock enabled", item.Alerts)
	}
	if item.Alerts.Overstock || item.Alerts.ExpiringSoon {
		t.Errorf("default alerts = %+v, want overstock and expiring_soon disabled", item.Alerts)
	}
}
