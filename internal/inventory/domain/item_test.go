package domain

import (
	"errors"
	"testing"
)

func TestQuantityRecalculate(t *testing.T) {
	q := Quantity{Current: 10, Reserved: 3}
	q.Recalculate()
	if q.Available != 7 {
		t.Errorf("available = %d, want 7", q.Available)
	}

	q = Quantity{Current: 2, Reserved: 5}
	q.Recalculate()
	if q.Available != 0 {
		t.Errorf("available = %d, want 0 when reserved exceeds current", q.Available)
	}
}

func TestApplyDelta(t *testing.T) {
	item := &Item{Status: StatusActive, Quantity: Quantity{Current: 10}}

	before, after := item.ApplyDelta(-4)
	if before != 10 || after != 6 {
		t.Errorf("delta -4: got (%d, %d), want (10, 6)", before, after)
	}

	before, after = item.ApplyDelta(-100)
	if before != 6 || after != 0 {
		t.Errorf("clamp: got (%d, %d), want (6, 0)", before, after)
	}
	if item.Quantity.Current != 0 {
		t.Errorf("current = %d, want 0", item.Quantity.Current)
	}
}

func TestApplyDeltaRecalculatesAvailable(t *testing.T) {
	item := &Item{Status: StatusActive, Quantity: Quantity{Current: 10, Reserved: 4}}
	item.Quantity.Recalculate()

	item.ApplyDelta(-8)
	if item.Quantity.Available != 0 {
		t.Errorf("available = %d, want 0 (current 2, reserved 4)", item.Quantity.Available)
	}

	item.ApplyDelta(10)
	if item.Quantity.Available != 8 {
		t.Errorf("available = %d, want 8 (current 12, reserved 4)", item.Quantity.Available)
	}
}

func TestRefreshStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		status  ItemStatus
		current int
		want    ItemStatus
	}{
		{"active drained goes out of stock", StatusActive, 0, StatusOutOfStock},
		{"out of stock restocked goes active", StatusOutOfStock, 5, StatusActive},
		{"active with stock stays active", StatusActive, 5, StatusActive},
		{"inactive is sticky at zero", StatusInactive, 0, StatusInactive},
		{"inactive is sticky with stock", StatusInactive, 5, StatusInactive},
		{"discontinued is sticky", StatusDiscontinued, 0, StatusDiscontinued},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &Item{Status: tt.status, Quantity: Quantity{Current: tt.current}}
			item.RefreshStatus()
			if item.Status != tt.want {
				t.Errorf("status = %s, want %s", item.Status, tt.want)
			}
		})
	}
}

func TestMoveStock(t *testing.T) {
	mainRef := LocationRef{Warehouse: "main", Zone: "A"}
	backRef := LocationRef{Warehouse: "backroom"}

	item := &Item{
		Quantity: Quantity{Current: 50},
		Locations: []StockLocation{
			{Warehouse: "main", Zone: "A", Quantity: 30},
			{Warehouse: "backroom", Quantity: 20},
		},
	}

	if err := item.MoveStock(mainRef, backRef, 10); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if got := item.Locations[0].Quantity; got != 20 {
		t.Errorf("source quantity = %d, want 20", got)
	}
	if got := item.Locations[1].Quantity; got != 30 {
		t.Errorf("destination quantity = %d, want 30", got)
	}
	if item.Quantity.Current != 50 {
		t.Errorf("current changed to %d during transfer", item.Quantity.Current)
	}
}

func TestMoveStockCreatesDestination(t *testing.T) {
	item := &Item{
		ID: 7,
		Locations: []StockLocation{
			{Warehouse: "main", Quantity: 10},
		},
	}

	to := LocationRef{Warehouse: "overflow", Shelf: "S1"}
	if err := item.MoveStock(LocationRef{Warehouse: "main"}, to, 4); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if len(item.Locations) != 2 {
		t.Fatalf("locations = %d, want 2", len(item.Locations))
	}
	created := item.Locations[1]
	if created.Warehouse != "overflow" || created.Shelf != "S1" || created.Quantity != 4 || created.ItemID != 7 {
		t.Errorf("unexpected created slot: %+v", created)
	}
}

func TestMoveStockInsufficient(t *testing.T) {
	item := &Item{
		Locations: []StockLocation{
			{Warehouse: "main", Quantity: 3},
		},
	}

	err := item.MoveStock(LocationRef{Warehouse: "main"}, LocationRef{Warehouse: "backroom"}, 5)
	if !errors.Is(err, ErrInsufficientStock) {
		t.Errorf("err = %v, want ErrInsufficientStock", err)
	}

	err = item.MoveStock(LocationRef{Warehouse: "missing"}, LocationRef{Warehouse: "backroom"}, 1)
	if !errors.Is(err, ErrInsufficientStock) {
		t.Errorf("missing source: err = %v, want ErrInsufficientStock", err)
	}
}

func TestReserveAndRelease(t *testing.T) {
	item := &Item{Quantity: Quantity{Current: 10}}
	item.Quantity.Recalculate()

	if err := item.Reserve(6); err != nil {
		t.Fatalf("reserve failed: %v", err)
	}
	if item.Quantity.Reserved != 6 || item.Quantity.Available != 4 {
		t.Errorf("after reserve: reserved=%d available=%d, want 6/4",
			item.Quantity.Reserved, item.Quantity.Available)
	}

	if err := item.Reserve(5); !errors.Is(err, ErrInsufficientStock) {
		t.Errorf("over-reserve: err = %v, want ErrInsufficientStock", err)
	}

	if err := item.Release(4); err != nil {
		t.Fatalf("release failed: %v", err)
	}
	if item.Quantity.Reserved != 2 || item.Quantity.Available != 8 {
		t.Errorf("after release: reserved=%d available=%d, want 2/8",
			item.Quantity.Reserved, item.Quantity.Available)
	}

	// Releasing more than reserved clamps at zero.
	if err := item.Release(100); err != nil {
		t.Fatalf("over-release failed: %v", err)
	}
	if item.Quantity.Reserved != 0 || item.Quantity.Available != 10 {
		t.Errorf("after over-release: reserved=%d available=%d, want 0/10",
			item.Quantity.Reserved, item.Quantity.Available)
	}
}

func TestReserveRejectsNonPositive(t *testing.T) {
	item := &Item{Quantity: Quantity{Current: 10, Available: 10}}
	if err := item.Reserve(0); !errors.Is(err, ErrValidation) {
		t.Errorf("reserve 0: err = %v, want ErrValidation", err)
	}
	if err := item.Release(-1); !errors.Is(err, ErrValidation) {
		t.Errorf("release -1: err = %v, want ErrValidation", err)
	}
}
