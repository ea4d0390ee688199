package command

import (
	"errors"
	"testing"

	"github.com/vbms/inventory-service/internal/inventory/domain"
)

func seedItemWithLocations(repo *fakeItemRepo) *domain.Item {
	item := seedItem(repo, 1, "WIDGET-1", 50)
	stored := repo.items[item.ID]
	stored.Locations = []domain.StockLocation{
		{ItemID: item.ID, Warehouse: "main", Zone: "A", Quantity: 30},
		{ItemID: item.ID, Warehouse: "backroom", Quantity: 20},
	}
	return stored
}

func TestTransferStock(t *testing.T) {
	repo, ledger := newFakeRepos()
	item := seedItemWithLocations(repo)
	handler := NewTransferStockHandler(repo, NoopDispatcher{})

	result, err := handler.Handle(TransferStockCommand{
		OwnerID:  1,
		ItemID:   item.ID,
		From:     domain.LocationRef{Warehouse: "main", Zone: "A"},
		To:       domain.LocationRef{Warehouse: "backroom"},
		Quantity: 10,
		Reason:   "restock shelf",
	})
	if err != nil {
		t.Fatalf("transfer failed: %v", err)
	}

	if result.Item.Quantity.Current != 50 {
		t.Errorf("current = %d, transfer must not change the total", result.Item.Quantity.Current)
	}
	if result.Item.Locations[0].Quantity != 20 || result.Item.Locations[1].Quantity != 30 {
		t.Errorf("locations = %d/%d, want 20/30",
			result.Item.Locations[0].Quantity, result.Item.Locations[1].Quantity)
	}

	tx := result.Transaction
	if tx.Type != domain.TypeTransfer {
		t.Errorf("entry type = %s, want transfer", tx.Type)
	}
	if tx.BeforeQuantity != tx.AfterQuantity {
		t.Errorf("snapshots differ (%d != %d) on a positional change",
			tx.BeforeQuantity, tx.AfterQuantity)
	}
	if tx.FromLocation == nil || tx.FromLocation.Warehouse != "main" {
		t.Errorf("from location = %+v", tx.FromLocation)
	}
	if tx.ToLocation == nil || tx.ToLocation.Warehouse != "backroom" {
		t.Errorf("to location = %+v", tx.ToLocation)
	}
	if len(ledger.entries) != 1 {
		t.Errorf("ledger entries = %d, want 1", len(ledger.entries))
	}
}

func TestTransferStockInsufficientSource(t *testing.T) {
	repo, ledger := newFakeRepos()
	item := seedItemWithLocations(repo)
	handler := NewTransferStockHandler(repo, NoopDispatcher{})

	_, err := handler.Handle(TransferStockCommand{
		OwnerID:  1,
		ItemID:   item.ID,
		From:     domain.LocationRef{Warehouse: "backroom"},
		To:       domain.LocationRef{Warehouse: "main", Zone: "A"},
		Quantity: 100,
		Reason:   "too much",
	})
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("err = %v, want ErrInsufficientStock", err)
	}

	// Failed transfer leaves no ledger entry and no location change.
	if len(ledger.entries) != 0 {
		t.Errorf("ledger entries = %d after failed transfer", len(ledger.entries))
	}
	stored := repo.items[item.ID]
	if stored.Locations[1].Quantity != 20 {
		t.Errorf("source quantity = %d, want untouched 20", stored.Locations[1].Quantity)
	}
}

func TestTransferStockValidation(t *testing.T) {
	repo, _ := newFakeRepos()
	item := seedItemWithLocations(repo)
	handler := NewTransferStockHandler(repo, NoopDispatcher{})

	same := domain.LocationRef{Warehouse: "main", Zone: "A"}
	if _, err := handler.Handle(TransferStockCommand{
		OwnerID: 1, ItemID: item.ID, From: same, To: same, Quantity: 1, Reason: "x",
	}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("same slot: err = %v, want ErrValidation", err)
	}

	if _, err := handler.Handle(TransferStockCommand{
		OwnerID: 1, ItemID: item.ID,
		From: domain.LocationRef{Warehouse: "main", Zone: "A"},
		To:   domain.LocationRef{Warehouse: "backroom"},
		Quantity: 0, Reason: "x",
	}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("zero quantity: err = %v, want ErrValidation", err)
	}
}

func TestReserveAndReleaseProduceNoLedgerEntries(t *testing.T) {
	repo, ledger := newFakeRepos()
	item := seedItem(repo, 1, "WIDGET-1", 10)
	reserve := NewReserveStockHandler(repo)
	release := NewReleaseStockHandler(repo)

	updated, err := reserve.Handle(ReserveStockCommand{OwnerID: 1, ItemID: item.ID, Quantity: 6})
	if err != nil {
		t.Fatalf("reserve failed: %v", err)
	}
	if updated.Quantity.Reserved != 6 || updated.Quantity.Available != 4 {
		t.Errorf("after reserve: %+v, want reserved 6 available 4", updated.Quantity)
	}

	if _, err := reserve.Handle(ReserveStockCommand{OwnerID: 1, ItemID: item.ID, Quantity: 5}); !errors.Is(err, domain.ErrInsufficientStock) {
		t.Errorf("over-reserve: err = %v, want ErrInsufficientStock", err)
	}

	updated, err = release.Handle(ReleaseStockCommand{OwnerID: 1, ItemID: item.ID, Quantity: 6})
	if err != nil {
		t.Fatalf("release failed: %v", err)
	}
	if updated.Quantity.Reserved != 0 || updated.Quantity.Available != 10 {
		t.Errorf("after release: %+v, want reserved 0 available 10", updated.Quantity)
	}

	if len(ledger.entries) != 0 {
		t.Errorf("ledger entries = %d, reservations must not touch the ledger", len(ledger.entries))
	}
}
