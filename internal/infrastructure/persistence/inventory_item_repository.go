package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scm/backend/internal/domain/inventory"
	"github.com/scm/backend/internal/domain/shared"
)

// GormInventoryItemRepository implements InventoryItemRepository using GORM
type GormInventoryItemRepository struct {
	db *gorm.DB
}

// NewGormInventoryItemRepository creates a new GormInventoryItemRepository
func NewGormInventoryItemRepository(db *gorm.DB) *GormInventoryItemRepository {
	return &GormInventoryItemRepository{db: db}
}

// FindByID finds an item by its ID
func (r *GormInventoryItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.InventoryItem, error) {
	var item inventory.InventoryItem
	if err := dbc(ctx, r.db).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByItemCode finds an item by its code
func (r *GormInventoryItemRepository) FindByItemCode(ctx context.Context, itemCode string) (*inventory.InventoryItem, error) {
	var item inventory.InventoryItem
	if err := dbc(ctx, r.db).First(&item, "item_code = ?", itemCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByItemName finds an item by name, the fallback match when no code is known
func (r *GormInventoryItemRepository) FindByItemName(ctx context.Context, itemName string) (*inventory.InventoryItem, error) {
	var item inventory.InventoryItem
	if err := dbc(ctx, r.db).First(&item, "item_name = ?", itemName).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindAll finds all items matching the filter
func (r *GormInventoryItemRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.InventoryItem, error) {
	var items []inventory.InventoryItem
	query := applyListFilter(r.applyFilters(ctx, filter), filter, InventoryItemSortFields)
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindWithVariance lists items whose actual and book quantities differ
func (r *GormInventoryItemRepository) FindWithVariance(ctx context.Context) ([]inventory.InventoryItem, error) {
	var items []inventory.InventoryItem
	if err := dbc(ctx, r.db).
		Where("stock_qty <> system_qty").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Save creates or updates an item
func (r *GormInventoryItemRepository) Save(ctx context.Context, item *inventory.InventoryItem) error {
	return dbc(ctx, r.db).Save(item).Error
}

// SaveWithLock saves with optimistic locking (checks version)
func (r *GormInventoryItemRepository) SaveWithLock(ctx context.Context, item *inventory.InventoryItem) error {
	prev := item.Version
	item.IncrementVersion()

	result := dbc(ctx, r.db).Model(item).
		Where("id = ? AND version = ?", item.ID, prev).
		Select("*").Updates(item)
	if result.Error != nil {
		item.Version = prev
		return result.Error
	}
	if result.RowsAffected == 0 {
		item.Version = prev
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// Count counts items matching the filter
func (r *GormInventoryItemRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.applyFilters(ctx, filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormInventoryItemRepository) applyFilters(ctx context.Context, filter shared.Filter) *gorm.DB {
	query := dbc(ctx, r.db).Model(&inventory.InventoryItem{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("item_code LIKE ? OR item_name LIKE ?", pattern, pattern)
	}
	if warehouse, ok := filter.Filters["warehouse"]; ok {
		query = query.Where("warehouse = ?", warehouse)
	}
	return query
}

// Ensure GormInventoryItemRepository implements InventoryItemRepository
var _ inventory.InventoryItemRepository = (*GormInventoryItemRepository)(nil)
