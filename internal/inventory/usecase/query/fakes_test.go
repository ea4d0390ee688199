package query

import (
	"time"

	"github.com/vbms/inventory-service/internal/inventory/domain"
)

// fakeItemRepo is an in-memory ItemRepository for query tests.
type fakeItemRepo struct {
	items       map[uint]*domain.Item
	nextID      uint
	lastFilter  domain.ItemFilter
	filterCalls int
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[uint]*domain.Item)}
}

func (r *fakeItemRepo) add(item domain.Item) *domain.Item {
	r.nextID++
	item.ID = r.nextID
	item.Quantity.Recalculate()
	r.items[item.ID] = &item
	return &item
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
	r.lastFilter = filter
	r.filterCalls++

	var out []domain.Item
	for id := uint(1); id <= r.nextID; id++ {
		item, ok := r.items[id]
		if !ok || item.OwnerID != ownerID {
			continue
		}
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		out = append(out, *item)
	}
	return out, nil
}

func (r *fakeItemRepo) Update(item *domain.Item) error {
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *fakeItemRepo) Delete(ownerID, id uint) error {
	delete(r.items, id)
	return nil
}

func (r *fakeItemRepo) Count(ownerID uint) (int64, error) {
	return int64(len(r.items)), nil
}

func (r *fakeItemRepo) Mutate(ownerID, itemID uint, fn func(item *domain.Item) (*domain.Transaction, error)) (*domain.Item, *domain.Transaction, error) {
	item, ok := r.items[itemID]
	if !ok || item.OwnerID != ownerID {
		return nil, nil, domain.ErrItemNotFound
	}
	tx, err := fn(item)
	if err != nil {
		return nil, nil, err
	}
	copied := *item
	return &copied, tx, nil
}

// fakeLedger is an in-memory TransactionRepository.
type fakeLedger struct {
	entries []domain.Transaction
	nextID  uint
}

func (l *fakeLedger) add(tx domain.Transaction) domain.Transaction {
	l.nextID++
	tx.ID = l.nextID
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}
	l.entries = append(l.entries, tx)
	return tx
}

func (l *fakeLedger) Create(tx *domain.Transaction) error {
	*tx = l.add(*tx)
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
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
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
