package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scm/backend/internal/domain/procurement"
	"github.com/scm/backend/internal/domain/shared"
)

// GormPurchaseOrderRepository implements PurchaseOrderRepository using GORM
type GormPurchaseOrderRepository struct {
	db *gorm.DB
}

// NewGormPurchaseOrderRepository creates a new GormPurchaseOrderRepository
func NewGormPurchaseOrderRepository(db *gorm.DB) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{db: db}
}

// FindByID finds a purchase order by its ID
func (r *GormPurchaseOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.PurchaseOrder, error) {
	var po procurement.PurchaseOrder
	if err := dbc(ctx, r.db).First(&po, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &po, nil
}

// FindByOrderNumber finds a purchase order by its document number
func (r *GormPurchaseOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*procurement.PurchaseOrder, error) {
	var po procurement.PurchaseOrder
	if err := dbc(ctx, r.db).First(&po, "order_number = ?", orderNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &po, nil
}

// FindAll finds all purchase orders matching the filter
func (r *GormPurchaseOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]procurement.PurchaseOrder, error) {
	var orders []procurement.PurchaseOrder
	query := applyListFilter(r.applyFilters(ctx, filter), filter, DocumentSortFields)
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindByStatus finds purchase orders in the given status
func (r *GormPurchaseOrderRepository) FindByStatus(ctx context.Context, status procurement.PurchaseOrderStatus, filter shared.Filter) ([]procurement.PurchaseOrder, error) {
	var orders []procurement.PurchaseOrder
	query := applyListFilter(
		dbc(ctx, r.db).Model(&procurement.PurchaseOrder{}).Where("status = ?", status),
		filter, DocumentSortFields)
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindOpen lists orders that can still receive goods
func (r *GormPurchaseOrderRepository) FindOpen(ctx context.Context, filter shared.Filter) ([]procurement.PurchaseOrder, error) {
	var orders []procurement.PurchaseOrder
	query := applyListFilter(
		dbc(ctx, r.db).Model(&procurement.PurchaseOrder{}).
			Where("status IN ?", []procurement.PurchaseOrderStatus{
				procurement.PurchaseOrderStatusOrdered,
				procurement.PurchaseOrderStatusPartiallyDelivered,
			}),
		filter, DocumentSortFields)
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Save creates or updates a purchase order
func (r *GormPurchaseOrderRepository) Save(ctx context.Context, po *procurement.PurchaseOrder) error {
	return dbc(ctx, r.db).Save(po).Error
}

// SaveWithLock saves with optimistic locking (checks version)
func (r *GormPurchaseOrderRepository) SaveWithLock(ctx context.Context, po *procurement.PurchaseOrder) error {
	prev := po.Version
	po.IncrementVersion()

	result := dbc(ctx, r.db).Model(po).
		Where("id = ? AND version = ?", po.ID, prev).
		Select("*").Updates(po)
	if result.Error != nil {
		po.Version = prev
		return result.Error
	}
	if result.RowsAffected == 0 {
		po.Version = prev
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// Count counts purchase orders matching the filter
func (r *GormPurchaseOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.applyFilters(ctx, filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormPurchaseOrderRepository) applyFilters(ctx context.Context, filter shared.Filter) *gorm.DB {
	query := dbc(ctx, r.db).Model(&procurement.PurchaseOrder{})
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	if supplier, ok := filter.Filters["supplier_name"]; ok {
		query = query.Where("supplier_name = ?", supplier)
	}
	return query
}

// Ensure GormPurchaseOrderRepository implements PurchaseOrderRepository
var _ procurement.PurchaseOrderRepository = (*GormPurchaseOrderRepository)(nil)
