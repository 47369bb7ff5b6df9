package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scm/backend/internal/domain/sales"
	"github.com/scm/backend/internal/domain/shared"
)

// GormSalesOrderRepository implements SalesOrderRepository using GORM
type GormSalesOrderRepository struct {
	db *gorm.DB
}

// NewGormSalesOrderRepository creates a new GormSalesOrderRepository
func NewGormSalesOrderRepository(db *gorm.DB) *GormSalesOrderRepository {
	return &GormSalesOrderRepository{db: db}
}

// FindByID finds a sales order by its ID
func (r *GormSalesOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.SalesOrder, error) {
	var so sales.SalesOrder
	if err := dbc(ctx, r.db).First(&so, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &so, nil
}

// FindByOrderNumber finds a sales order by its document number
func (r *GormSalesOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*sales.SalesOrder, error) {
	var so sales.SalesOrder
	if err := dbc(ctx, r.db).First(&so, "order_number = ?", orderNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &so, nil
}

// FindByCustomer lists orders placed by a customer
func (r *GormSalesOrderRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]sales.SalesOrder, error) {
	var orders []sales.SalesOrder
	query := applyListFilter(
		dbc(ctx, r.db).Model(&sales.SalesOrder{}).Where("customer_id = ?", customerID),
		filter, DocumentSortFields)
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindByStatus lists orders in the given status
func (r *GormSalesOrderRepository) FindByStatus(ctx context.Context, status sales.SalesOrderStatus, filter shared.Filter) ([]sales.SalesOrder, error) {
	var orders []sales.SalesOrder
	query := applyListFilter(
		dbc(ctx, r.db).Model(&sales.SalesOrder{}).Where("status = ?", status),
		filter, DocumentSortFields)
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindAll finds all sales orders matching the filter
func (r *GormSalesOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.SalesOrder, error) {
	var orders []sales.SalesOrder
	query := applyListFilter(r.applyFilters(ctx, filter), filter, DocumentSortFields)
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Save creates or updates a sales order
func (r *GormSalesOrderRepository) Save(ctx context.Context, so *sales.SalesOrder) error {
	return dbc(ctx, r.db).Save(so).Error
}

// Count counts sales orders matching the filter
func (r *GormSalesOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.applyFilters(ctx, filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormSalesOrderRepository) applyFilters(ctx context.Context, filter shared.Filter) *gorm.DB {
	query := dbc(ctx, r.db).Model(&sales.SalesOrder{})
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	if stockShort, ok := filter.Filters["stock_short"]; ok {
		query = query.Where("stock_short = ?", stockShort)
	}
	return query
}

// Ensure GormSalesOrderRepository implements SalesOrderRepository
var _ sales.SalesOrderRepository = (*GormSalesOrderRepository)(nil)
