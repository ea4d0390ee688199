package command

import (
	"time"

	"github.com/vbms/inventory-service/internal/inventory/domain"
)

// fakeItemRepo is an in-memory ItemRepository for handler tests.
type fakeItemRepo struct {
	items  map[uint]*domain.Item
	nextID uint
	ledger *fakeLedger
}

// fakeLedger is an in-memory TransactionRepository.
type fakeLedger struct {
	entries []domain.Transaction
	nextID  uint
}

func newFakeRepos() (*fakeItemRepo, *fakeLedger) {
	ledger := &fakeLedger{}
	return &fakeItemRepo{items: make(map[uint]*domain.Item), ledger: ledger}, ledger
}

func (r *fakeItemRepo) Create(item *domain.Item) error {
	r.nextID++
	item.ID = r.nextID
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *fakeItemRepo) FindByID(ownerID, id uint) (*domain.Item, error) {
	item, ok := r.items[id]
	if !ok || item.OwnerID != ownerID {
		return nil, domain.ErrItemNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *fakeItemRepo) FindBySKU(ownerID uint, sku string) (*domain.Item, error) {
	for _, item := range r.items {
		if item.OwnerID == ownerID && item.SKU == sku {
			copied := *item
			return &copied, nil
		}
	}
	return nil, domain.ErrItemNotFound
}

func (r *fakeItemRepo) FindAll(ownerID uint, filter domain.ItemFilter) ([]domain.Item, error) {
	var out []domain.Item
	for _, item := range r.items {
		if item.OwnerID == ownerID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) Update(item *domain.Item) error {
	if _, ok := r.items[item.ID]; !ok {
		return domain.ErrItemNotFound
	}
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *fakeItemRepo) Delete(ownerID, id uint) error {
	item, ok := r.items[id]
	if !ok || item.OwnerID != ownerID {
		return domain.ErrItemNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeItemRepo) Count(ownerID uint) (int64, error) {
	var n int64
	for _, item := range r.items {
		if item.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

func (r *fakeItemRepo) Mutate(ownerID, itemID uint, fn func(item *domain.Item) (*domain.Transaction, error)) (*domain.Item, *domain.Transaction, error) {
	item, ok := r.items[itemID]
	if !ok || item.OwnerID != ownerID {
		return nil, nil, domain.ErrItemNotFound
	}

	working := *item
	entry, err := fn(&working)
	if err != nil {
		return nil, nil, err
	}
	r.items[itemID] = &working

	if entry != nil {
		if err := r.ledger.Create(entry); err != nil {
			return nil, nil, err
		}
	}
	result := working
	return &result, entry, nil
}

func (l *fakeLedger) Create(tx *domain.Transaction) error {
	l.nextID++
	tx.ID = l.nextID
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}
	l.entries = append(l.entries, *tx)
	return nil
}

func (l *fakeLedger) FindByID(ownerID, id uint) (*domain.Transaction, error) {
	for i := range l.entries {
		if l.entries[i].ID == id && l.entries[i].OwnerID == ownerID {
			copied := l.entries[i]
			return &copied, nil
		}
	}
	return nil, domain.ErrTransactionNotFound
}

func (l *fakeLedger) FindAll(ownerID uint, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	var out []domain.Transaction
	for _, e := range l.entries {
		if e.OwnerID != ownerID {
			continue
		}
		if filter.ItemID != 0 && e.ItemID != filter.ItemID {
			continue
		}
		if filter.Type != "" && e.Type != filter.Type {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (l *fakeLedger) FindInRange(ownerID uint, start, end time.Time) ([]domain.Transaction, error) {
	var out []domain.Transaction
	for _, e := range l.entries {
		if e.OwnerID == ownerID && !e.CreatedAt.Before(start) && !e.CreatedAt.After(end) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (l *fakeLedger) CountByItem(ownerID, itemID uint) (int64, error) {
	var n int64
	for _, e := range l.entries {
		if e.OwnerID == ownerID && e.ItemID == itemID {
			n++
		}
	}
	return n, nil
}

func (l *fakeLedger) FindReversalOf(ownerID, originalID uint) (*domain.Transaction, error) {
	for i := range l.entries {
		e := l.entries[i]
		if e.OwnerID == ownerID && e.ReversalOfID != nil && *e.ReversalOfID == originalID {
			return &e, nil
		}
	}
	return nil, domain.ErrTransactionNotFound
}

// recordingDispatcher captures dispatched alerts and movement echoes.
type recordingDispatcher struct {
	items     []*domain.Item
	alerts    [][]domain.Alert
	movements []*domain.Transaction
}

func (d *recordingDispatcher) Dispatch(item *domain.Item, alerts []domain.Alert) {
	d.items = append(d.items, item)
	d.alerts = append(d.alerts, alerts)
}

func (d *recordingDispatcher) PublishMovement(item *domain.Item, tx *domain.Transaction) {
	d.movements = append(d.movements, tx)
}

// seedItem creates a stocked item through the repository directly.
func seedItem(repo *fakeItemRepo, ownerID uint, sku string, current int) *domain.Item {
	item := &domain.Item{
		OwnerID:    ownerID,
		SKU:        sku,
		Name:       "Test " + sku,
		Category:   domain.CategoryOther,
		Quantity:   domain.Quantity{Current: current},
		Thresholds: domain.StockThresholds{ReorderPoint: 5},
		Pricing:    domain.Pricing{Cost: 2, SellingPrice: 5},
		Alerts:     domain.AlertSettings{LowStock: true, OutOfStock: true},
		Status:     domain.StatusActive,
	}
	item.Quantity.Recalculate()
	item.RefreshStatus()
	repo.Create(item)
	return item
}
