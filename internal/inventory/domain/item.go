package domain

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ItemStatus is the lifecycle state of a stocked item.
type ItemStatus string

const (
	StatusActive       ItemStatus = "active"
	StatusInactive     ItemStatus = "inactive"
	StatusDiscontinued ItemStatus = "discontinued"
	StatusOutOfStock   ItemStatus = "out_of_stock"
)

// Item categories.
const (
	CategoryOther = "other"
)

// Quantity tracks on-hand stock. Available is derived from Current and
// Reserved on every mutation and is never set directly by callers.
type Quantity struct {
	Current   int `json:"current" gorm:"not null;default:0"`
	Reserved  int `json:"reserved" gorm:"not null;default:0"`
	Available int `json:"available" gorm:"not null;default:0"`
}

// Recalculate derives Available = max(0, Current - Reserved).
func (q *Quantity) Recalculate() {
	q.Available = q.Current - q.Reserved
	if q.Available < 0 {
		q.Available = 0
	}
}

// StockThresholds configures restocking behavior. All values are non-negative.
type StockThresholds struct {
	Minimum         int `json:"minimum" gorm:"not null;default:0"`
	Maximum         int `json:"maximum" gorm:"not null;default:0"`
	ReorderPoint    int `json:"reorder_point" gorm:"not null;default:0"`
	ReorderQuantity int `json:"reorder_quantity" gorm:"not null;default:0"`
}

// Pricing holds the item's cost and sale prices.
type Pricing struct {
	Cost           float64 `json:"cost" gorm:"not null;default:0"`
	SellingPrice   float64 `json:"selling_price" gorm:"not null;default:0"`
	WholesalePrice float64 `json:"wholesale_price" gorm:"not null;default:0"`
	Currency       string  `json:"currency" gorm:"size:3;default:'USD'"`
}

// AlertSettings enables individual alert rules per item.
type AlertSettings struct {
	LowStock     bool `json:"low_stock" gorm:"default:true"`
	OutOfStock   bool `json:"out_of_stock" gorm:"default:true"`
	ExpiringSoon bool `json:"expiring_soon" gorm:"default:false"`
	Overstock    bool `json:"overstock" gorm:"default:false"`
}

// Supplier is one entry in the item's ordered supplier list.
type Supplier struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	ItemID       uint    `json:"-" gorm:"not null;index"`
	Name         string  `json:"name" gorm:"not null"`
	ContactInfo  string  `json:"contact_info"`
	LeadTimeDays int     `json:"lead_time_days" gorm:"default:0"`
	MinOrderQty  int     `json:"min_order_qty" gorm:"default:0"`
	Cost         float64 `json:"cost" gorm:"default:0"`
	IsPrimary    bool    `json:"is_primary" gorm:"default:false"`
	Position     int     `json:"position" gorm:"not null;default:0"`
}

// LocationRef addresses a storage slot. Empty fields match empty fields.
type LocationRef struct {
	Warehouse string `json:"warehouse"`
	Zone      string `json:"zone"`
	Aisle     string `json:"aisle"`
	Shelf     string `json:"shelf"`
	Bin       string `json:"bin"`
}

// StockLocation is the quantity held at one storage slot. The sum of location
// quantities is advisory and not cross-checked against Quantity.Current.
type StockLocation struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	ItemID    uint   `json:"-" gorm:"not null;index"`
	Warehouse string `json:"warehouse" gorm:"not null"`
	Zone      string `json:"zone"`
	Aisle     string `json:"aisle"`
	Shelf     string `json:"shelf"`
	Bin       string `json:"bin"`
	Quantity  int    `json:"quantity" gorm:"not null;default:0"`
}

// Matches reports whether the location entry sits at the referenced slot.
func (l *StockLocation) Matches(ref LocationRef) bool {
	return l.Warehouse == ref.Warehouse &&
		l.Zone == ref.Zone &&
		l.Aisle == ref.Aisle &&
		l.Shelf == ref.Shelf &&
		l.Bin == ref.Bin
}

// Item represents a stocked item owned by one customer.
type Item struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	OwnerID uint   `json:"owner_id" gorm:"not null;uniqueIndex:idx_items_owner_sku,priority:1"`
	SKU     string `json:"sku" gorm:"size:64;not null;uniqueIndex:idx_items_owner_sku,priority:2"`
	Barcode string `json:"barcode"`
	Name    string `json:"name" gorm:"not null"`

	Category string         `json:"category" gorm:"default:'other';index"`
	Tags     pq.StringArray `json:"tags" gorm:"type:text[]"`

	Quantity   Quantity        `json:"quantity" gorm:"embedded;embeddedPrefix:quantity_"`
	Thresholds StockThresholds `json:"thresholds" gorm:"embedded;embeddedPrefix:threshold_"`
	Pricing    Pricing         `json:"pricing" gorm:"embedded;embeddedPrefix:price_"`
	Alerts     AlertSettings   `json:"alerts" gorm:"embedded;embeddedPrefix:alert_"`

	Suppliers []Supplier      `json:"suppliers" gorm:"constraint:OnDelete:CASCADE"`
	Locations []StockLocation `json:"locations" gorm:"constraint:OnDelete:CASCADE"`

	Perishable     bool       `json:"perishable" gorm:"default:false"`
	ExpirationDate *time.Time `json:"expiration_date"`

	Status    ItemStatus     `json:"status" gorm:"size:16;default:'active';index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Item) TableName() string {
	return "inventory_items"
}

// ApplyDelta changes the current quantity by delta, clamping at zero rather
// than erroring (source behavior; see DESIGN.md). It recomputes the available
// quantity and the derived status, and returns the before/after snapshots for
// the ledger entry.
func (i *Item) ApplyDelta(delta int) (before, after int) {
	before = i.Quantity.Current
	after = before + delta
	if after < 0 {
		after = 0
	}
	i.Quantity.Current = after
	i.Quantity.Recalculate()
	i.RefreshStatus()
	return before, after
}

// RefreshStatus derives the stock-driven status transitions: an active item
// that hits zero is forced to out_of_stock, and an out_of_stock item that
// regains stock returns to active. Inactive and discontinued are sticky.
func (i *Item) RefreshStatus() {
	switch {
	case i.Quantity.Current == 0 && i.Status == StatusActive:
		i.Status = StatusOutOfStock
	case i.Quantity.Current > 0 && i.Status == StatusOutOfStock:
		i.Status = StatusActive
	}
}

// MoveStock moves qty from one location slot to another on the same item.
// The total current quantity is unchanged; only the breakdown moves. The
// destination slot is created when absent.
func (i *Item) MoveStock(from, to LocationRef, qty int) error {
	if qty <= 0 {
		return ErrValidation
	}

	var src *StockLocation
	for idx := range i.Locations {
		if i.Locations[idx].Matches(from) {
			src = &i.Locations[idx]
			break
		}
	}
	if src == nil || src.Quantity < qty {
		return ErrInsufficientStock
	}

	src.Quantity -= qty

	for idx := range i.Locations {
		if i.Locations[idx].Matches(to) {
			i.Locations[idx].Quantity += qty
			return nil
		}
	}

	i.Locations = append(i.Locations, StockLocation{
		ItemID:    i.ID,
		Warehouse: to.Warehouse,
		Zone:      to.Zone,
		Aisle:     to.Aisle,
		Shelf:     to.Shelf,
		Bin:       to.Bin,
		Quantity:  qty,
	})
	return nil
}

// Reserve holds qty of available stock. Fails with ErrInsufficientStock when
// more than the available quantity is requested.
func (i *Item) Reserve(qty int) error {
	if qty <= 0 {
		return ErrValidation
	}
	if qty > i.Quantity.Available {
		return ErrInsufficientStock
	}
	i.Quantity.Reserved += qty
	i.Quantity.Recalculate()
	return nil
}

// Release frees previously reserved stock, clamping at zero.
func (i *Item) Release(qty int) error {
	if qty <= 0 {
		return ErrValidation
	}
	i.Quantity.Reserved -= qty
	if i.Quantity.Reserved < 0 {
		i.Quantity.Reserved = 0
	}
	i.Quantity.Recalculate()
	return nil
}

// ItemFilter narrows ListItems results.
type ItemFilter struct {
	Category string
	Status   ItemStatus
	LowStock bool
	Search   string
	Limit    int
	Offset   int
}

// ItemRepository defines the contract for item data access.
type ItemRepository interface {
	Create(item *Item) error
	FindByID(ownerID, id uint) (*Item, error)
	FindBySKU(ownerID uint, sku string) (*Item, error)
	FindAll(ownerID uint, filter ItemFilter) ([]Item, error)
	Update(item *Item) error
	Delete(ownerID, id uint) error
	Count(ownerID uint) (int64, error)

	// Mutate loads the item row locked for update, applies fn, and persists
	// the item together with the ledger entry fn returns, all in a single
	// database transaction. This serializes concurrent quantity changes per
	// item and keeps the ledger consistent with the item snapshot.
	Mutate(ownerID, itemID uint, fn func(item *Item) (*Transaction, error)) (*Item, *Transaction, error)
}
