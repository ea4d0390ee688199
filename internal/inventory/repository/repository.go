package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vbms/inventory-service/internal/inventory/domain"
)

type GormItemRepository struct {
	db *gorm.DB
}

func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

func (r *GormItemRepository) AutoMigrate() error {
	return r.db.AutoMigrate(
		&domain.Item{},
		&domain.Supplier{},
		&domain.StockLocation{},
		&domain.Transaction{},
	)
}

func (r *GormItemRepository) Create(item *domain.Item) error {
	return r.db.Create(item).Error
}

func (r *GormItemRepository) FindByID(ownerID, id uint) (*domain.Item, error) {
	var item domain.Item
	err := r.db.
		Preload("Suppliers", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Locations").
		Where("owner_id = ?", ownerID).
		First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *GormItemRepository) FindBySKU(ownerID uint, sku string) (*domain.Item, error) {
	var item domain.Item
	err := r.db.
		Where("owner_id = ? AND sku = ?", ownerID, sku).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *GormItemRepository) FindAll(ownerID uint, filter domain.ItemFilter) ([]domain.Item, error) {
	q := r.db.Where("owner_id = ?", ownerID)

	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.LowStock {
		q = q.Where("quantity_current > 0 AND quantity_current <= threshold_reorder_point")
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("name ILIKE ? OR sku ILIKE ? OR barcode ILIKE ?", like, like, like)
	}

	if filter.Limit > 0 {
		q = q.Limit(filter.Limit).Offset(filter.Offset)
	}

	var items []domain.Item
	err := q.
		Preload("Locations").
		Order("sku ASC").
		Find(&items).Error
	return items, err
}

func (r *GormItemRepository) Update(item *domain.Item) error {
	return r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(item).Error
}

// Delete removes the item row permanently. The caller is responsible for the
// zero-transactions precondition; items with ledger history are deactivated
// instead of deleted.
func (r *GormItemRepository) Delete(ownerID, id uint) error {
	res := r.db.Unscoped().
		Where("owner_id = ?", ownerID).
		Delete(&domain.Item{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (r *GormItemRepository) Count(ownerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Item{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error
	return count, err
}

// Mutate serializes quantity changes per item: the row is locked FOR UPDATE,
// fn mutates the loaded item, and the item save plus the ledger append commit
// in one database transaction. The source this service replaces did an
// unlocked read-then-write with a separate ledger insert; see DESIGN.md.
func (r *GormItemRepository) Mutate(ownerID, itemID uint, fn func(item *domain.Item) (*domain.Transaction, error)) (*domain.Item, *domain.Transaction, error) {
	var item domain.Item
	var entry *domain.Transaction

	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("owner_id = ?", ownerID).
			First(&item, itemID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrItemNotFound
			}
			return err
		}

		if err := tx.Where("item_id = ?", item.ID).Find(&item.Locations).Error; err != nil {
			return err
		}

		ledger, err := fn(&item)
		if err != nil {
			return err
		}

		if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&item).Error; err != nil {
			return err
		}

		if ledger != nil {
			if err := tx.Create(ledger).Error; err != nil {
				return err
			}
			entry = ledger
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &item, entry, nil
}

type GormTransactionRepository struct {
	db *gorm.DB
}

func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

func (r *GormTransactionRepository) Create(tx *domain.Transaction) error {
	return r.db.Create(tx).Error
}

func (r *GormTransactionRepository) FindByID(ownerID, id uint) (*domain.Transaction, error) {
	var tx domain.Transaction
	err := r.db.
		Where("owner_id = ?", ownerID).
		First(&tx, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return &tx, nil
}

func (r *GormTransactionRepository) FindAll(ownerID uint, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	q := r.db.Where("owner_id = ?", ownerID)

	if filter.ItemID != 0 {
		q = q.Where("item_id = ?", filter.ItemID)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if !filter.Start.IsZero() {
		q = q.Where("created_at >= ?", filter.Start)
	}
	if !filter.End.IsZero() {
		q = q.Where("created_at <= ?", filter.End)
	}

	var txs []domain.Transaction
	err := q.
		Limit(filter.Limit).Offset(filter.Offset).
		Order("created_at DESC").
		Find(&txs).Error
	return txs, err
}

func (r *GormTransactionRepository) FindInRange(ownerID uint, start, end time.Time) ([]domain.Transaction, error) {
	var txs []domain.Transaction
	err := r.db.
		Where("owner_id = ? AND created_at >= ? AND created_at <= ?", ownerID, start, end).
		Order("created_at ASC").
		Find(&txs).Error
	return txs, err
}

func (r *GormTransactionRepository) CountByItem(ownerID, itemID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Transaction{}).
		Where("owner_id = ? AND item_id = ?", ownerID, itemID).
		Count(&count).Error
	return count, err
}

func (r *GormTransactionRepository) FindReversalOf(ownerID, originalID uint) (*domain.Transaction, error) {
	var tx domain.Transaction
	err := r.db.
		Where("owner_id = ? AND reversal_of_id = ?", ownerID, originalID).
		First(&tx).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return &tx, nil
}
