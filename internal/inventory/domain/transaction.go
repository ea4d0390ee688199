package domain

import (
	"time"
)

// TransactionType is the fixed vocabulary of ledger entry types. Quantity is
// always a non-negative magnitude; direction is carried by the type.
type TransactionType string

const (
	TypeStockIn    TransactionType = "stock_in"
	TypeStockOut   TransactionType = "stock_out"
	TypeAdjustment TransactionType = "adjustment"
	TypeTransfer   TransactionType = "transfer"
	TypeReturn     TransactionType = "return"
	TypeDamage     TransactionType = "damage"
	TypeTheft      TransactionType = "theft"
	TypeExpired    TransactionType = "expired"
	TypePromotion  TransactionType = "promotion"
	TypeSample     TransactionType = "sample"
	TypeCorrection TransactionType = "correction"
)

// Direction classifies how a type affects the current quantity.
type Direction int

const (
	DirectionNeutral Direction = iota
	DirectionIn
	DirectionOut
)

// Direction returns the quantity effect of the type. Adjustment and
// correction entries are contextual; their effect is read from the
// before/after snapshots instead.
func (t TransactionType) Direction() Direction {
	switch t {
	case TypeStockIn, TypeReturn:
		return DirectionIn
	case TypeStockOut, TypeDamage, TypeTheft, TypeExpired, TypePromotion, TypeSample:
		return DirectionOut
	default:
		return DirectionNeutral
	}
}

// Valid reports whether t belongs to the vocabulary.
func (t TransactionType) Valid() bool {
	switch t {
	case TypeStockIn, TypeStockOut, TypeAdjustment, TypeTransfer, TypeReturn,
		TypeDamage, TypeTheft, TypeExpired, TypePromotion, TypeSample, TypeCorrection:
		return true
	}
	return false
}

// Transaction is an immutable audit entry for one quantity change. Entries are
// append-only: a mistake is corrected by a reversal entry referencing the
// original, never by editing or deleting.
type Transaction struct {
	ID      uint `json:"id" gorm:"primaryKey"`
	OwnerID uint `json:"owner_id" gorm:"not null;index"`
	ItemID  uint `json:"item_id" gorm:"not null;index"`

	Type     TransactionType `json:"type" gorm:"size:16;not null;index"`
	Quantity int             `json:"quantity" gorm:"not null"`

	BeforeQuantity int `json:"before_quantity" gorm:"not null"`
	AfterQuantity  int `json:"after_quantity" gorm:"not null"`

	Reason string `json:"reason" gorm:"not null"`

	FromLocation *LocationRef `json:"from_location,omitempty" gorm:"embedded;embeddedPrefix:from_"`
	ToLocation   *LocationRef `json:"to_location,omitempty" gorm:"embedded;embeddedPrefix:to_"`

	UnitCost   float64 `json:"unit_cost" gorm:"default:0"`
	TotalCost  float64 `json:"total_cost" gorm:"default:0"`
	UnitPrice  float64 `json:"unit_price" gorm:"default:0"`
	TotalPrice float64 `json:"total_price" gorm:"default:0"`

	PerformedBy string `json:"performed_by"`

	// ReversalOfID links a reversal entry back to the entry it negates.
	ReversalOfID *uint `json:"reversal_of_id,omitempty" gorm:"index"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name
func (Transaction) TableName() string {
	return "inventory_transactions"
}

// AppliedDelta returns the signed change this entry made to the current
// quantity, reconstructed from the snapshots.
func (t *Transaction) AppliedDelta() int {
	return t.AfterQuantity - t.BeforeQuantity
}

// TransactionFilter narrows ledger queries.
type TransactionFilter struct {
	ItemID uint
	Type   TransactionType
	Start  time.Time
	End    time.Time
	Limit  int
	Offset int
}

// TransactionRepository defines the contract for ledger data access. The
// ledger is append-only; there is no update or delete.
type TransactionRepository interface {
	Create(tx *Transaction) error
	FindByID(ownerID, id uint) (*Transaction, error)
	FindAll(ownerID uint, filter TransactionFilter) ([]Transaction, error)
	FindInRange(ownerID uint, start, end time.Time) ([]Transaction, error)
	CountByItem(ownerID, itemID uint) (int64, error)

	// FindReversalOf returns the entry that reversed originalID, or
	// ErrTransactionNotFound when none exists. The presence of such an entry
	// is what blocks a double reversal.
	FindReversalOf(ownerID, originalID uint) (*Transaction, error)
}
