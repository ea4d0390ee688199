package command

import (
	"errors"
	"testing"

	"github.com/vbms/inventory-service/internal/inventory/domain"
)

func TestAdjustStockPositive(t *testing.T) {
	repo, _ := newFakeRepos()
	item := seedItem(repo, 1, "WIDGET-1", 10)
	handler := NewAdjustStockHandler(repo, NoopDispatcher{})

	result, err := handler.Handle(AdjustStockCommand{
		OwnerID: 1, ItemID: item.ID, Delta: 15, Reason: "shipment received",
	})
	if err != nil {
		t.Fatalf("adjust failed: %v", err)
	}

	if result.Item.Quantity.Current != 25 {
		t.Errorf("current = %d, want 25", result.Item.Quantity.Current)
	}
	tx := result.Transaction
	if tx.Type != domain.TypeStockIn || tx.Quantity != 15 {
		t.Errorf("entry = %s/%d, want stock_in/15", tx.Type, tx.Quantity)
	}
	if tx.BeforeQuantity != 10 || tx.AfterQuantity != 25 {
		t.Errorf("snapshots = {%d %d}, want {10 25}", tx.BeforeQuantity, tx.AfterQuantity)
	}
	if tx.TotalCost != 30 || tx.TotalPrice != 75 {
		t.Errorf("totals = cost %v price %v, want 30/75", tx.TotalCost, tx.TotalPrice)
	}
}

func TestAdjustStockNegativeClamped(t *testing.T) {
	repo, ledger := newFakeRepos()
	item := seedItem(repo, 1, "WIDGET-1", 10)
	handler := NewAdjustStockHandler(repo, NoopDispatcher{})

	result, err := handler.Handle(AdjustStockCommand{
		OwnerID: 1, ItemID: item.ID, Delta: -50, Reason: "damaged in flood",
	})
	if err != nil {
		t.Fatalf("adjust failed: %v", err)
	}

	if result.Item.Quantity.Current != 0 {
		t.Errorf("current = %d, want 0 after clamp", result.Item.Quantity.Current)
	}
	if result.Item.Status != domain.StatusOutOfStock {
		t.Errorf("status = %s, want out_of_stock", result.Item.Status)
	}

	tx := result.Transaction
	if tx.Type != domain.TypeStockOut {
		t.Errorf("entry type = %s, want stock_out", tx.Type)
	}
	// Snapshots record the actual effect, not the requested delta.
	if tx.BeforeQuantity != 10 || tx.AfterQuantity != 0 {
		t.Errorf("snapshots = {%d %d}, want {10 0}", tx.BeforeQuantity, tx.AfterQuantity)
	}
	if tx.Quantity != 50 {
		t.Errorf("entry magnitude = %d, want requested 50", tx.Quantity)
	}
	if len(ledger.entries) != 1 {
		t.Errorf("ledger entries = %d, want 1", len(ledger.entries))
	}
}

func TestAdjustStockValidation(t *testing.T) {
	repo, _ := newFakeRepos()
	item := seedItem(repo, 1, "WIDGET-1", 10)
	handler := NewAdjustStockHandler(repo, NoopDispatcher{})

	if _, err := handler.Handle(AdjustStockCommand{OwnerID: 1, ItemID: item.ID, Delta: 0, Reason: "x"}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("zero delta: err = %v, want ErrValidation", err)
	}
	if _, err := handler.Handle(AdjustStockCommand{OwnerID: 1, ItemID: item.ID, Delta: 5}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("missing reason: err = %v, want ErrValidation", err)
	}
	if _, err := handler.Handle(AdjustStockCommand{OwnerID: 1, ItemID: 999, Delta: 5, Reason: "x"}); !errors.Is(err, domain.ErrItemNotFound) {
		t.Errorf("unknown item: err = %v, want ErrItemNotFound", err)
	}
	if _, err := handler.Handle(AdjustStockCommand{OwnerID: 2, ItemID: item.ID, Delta: 5, Reason: "x"}); !errors.Is(err, domain.ErrItemNotFound) {
		t.Errorf("wrong owner: err = %v, want ErrItemNotFound", err)
	}
}

func TestAdjustStockFiresAlerts(t *testing.T) {
	repo, _ := newFakeRepos()
	item := seedItem(repo, 1, "WIDGET-1", 20) // reorder point 5
	dispatcher := &recordingDispatcher{}
	handler := NewAdjustStockHandler(repo, dispatcher)

	if _, err := handler.Handle(AdjustStockCommand{OwnerID: 1, ItemID: item.ID, Delta: -17, Reason: "sale"}); err != nil {
		t.Fatalf("adjust failed: %v", err)
	}

	if len(dispatcher.alerts) != 1 {
		t.Fatalf("dispatches = %d, want 1", len(dispatcher.alerts))
	}
	fired := dispatcher.alerts[0]
	if len(fired) != 1 || fired[0].Type != domain.AlertLowStock {
		t.Errorf("alerts = %v, want single low_stock", fired)
	}
}

func TestAdjustStockNoAlertAboveThreshold(t *testing.T) {
	repo, _ := newFakeRepos()
	item := seedItem(repo, 1, "WIDGET-1", 20)
	dispatcher := &recordingDispatcher{}
	handler := NewAdjustStockHandler(repo, dispatcher)

	if _, err := handler.Handle(AdjustStockCommand{OwnerID: 1, ItemID: item.ID, Delta: -5, Reason: "sale"}); err != nil {
		t.Fatalf("adjust failed: %v", err)
	}
	if len(dispatcher.alerts) != 0 {
		t.Errorf("dispatches = %d, want none at quantity 15", len(dispatcher.alerts))
	}
}

func TestAdjustStockEchoesMovement(t *testing.T) {
	repo, _ := newFakeRepos()
	item := seedItem(repo, 1, "WIDGET-1", 20)
	dispatcher := &recordingDispatcher{}
	handler := NewAdjustStockHandler(repo, dispatcher)

	result, err := handler.Handle(AdjustStockCommand{OwnerID: 1, ItemID: item.ID, Delta: -5, Reason: "sale"})
	if err != nil {
		t.Fatalf("adjust failed: %v", err)
	}

	if len(dispatcher.movements) != 1 {
		t.Fatalf("movement echoes = %d, want 1", len(dispatcher.movements))
	}
	if dispatcher.movements[0] != result.Transaction {
		t.Error("echoed entry differs from the appended one")
	}
}
