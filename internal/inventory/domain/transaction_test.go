package domain

import "testing"

func TestTransactionTypeDirection(t *testing.T) {
	tests := []struct {
		txType TransactionType
		want   Direction
	}{
		{TypeStockIn, DirectionIn},
		{TypeReturn, DirectionIn},
		{TypeStockOut, DirectionOut},
		{TypeDamage, DirectionOut},
		{TypeTheft, DirectionOut},
		{TypeExpired, DirectionOut},
		{TypePromotion, DirectionOut},
		{TypeSample, DirectionOut},
		{TypeAdjustment, DirectionNeutral},
		{TypeTransfer, DirectionNeutral},
		{TypeCorrection, DirectionNeutral},
	}

	for _, tt := range tests {
		if got := tt.txType.Direction(); got != tt.want {
			t.Errorf("%s direction = %d, want %d", tt.txType, got, tt.want)
		}
	}
}

func TestTransactionTypeValid(t *testing.T) {
	if !TypeStockIn.Valid() {
		t.Error("stock_in reported invalid")
	}
	if TransactionType("refund").Valid() {
		t.Error("unknown type reported valid")
	}
	if TransactionType("").Valid() {
		t.Error("empty type reported valid")
	}
}

func TestAppliedDelta(t *testing.T) {
	tx := &Transaction{BeforeQuantity: 10, AfterQuantity: 4}
	if got := tx.AppliedDelta(); got != -6 {
		t.Errorf("applied delta = %d, want -6", got)
	}

	// A clamped stock-out records the actual change, not the requested one.
	tx = &Transaction{BeforeQuantity: 3, AfterQuantity: 0, Quantity: 10}
	if got := tx.AppliedDelta(); got != -3 {
		t.Errorf("clamped delta = %d, want -3", got)
	}
}
