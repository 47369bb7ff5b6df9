package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scm/backend/internal/domain/sales"
	"github.com/scm/backend/internal/domain/shared"
)

// GormDeliveryRepository implements DeliveryRepository using GORM
type GormDeliveryRepository struct {
	db *gorm.DB
}

// NewGormDeliveryRepository creates a new GormDeliveryRepository
func NewGormDeliveryRepository(db *gorm.DB) *GormDeliveryRepository {
	return &GormDeliveryRepository{db: db}
}

// FindByID finds a delivery by its ID
func (r *GormDeliveryRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Delivery, error) {
	var d sales.Delivery
	if err := dbc(ctx, r.db).First(&d, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// FindBySalesOrder lists deliveries registered for an order
func (r *GormDeliveryRepository) FindBySalesOrder(ctx context.Context, soID uuid.UUID) ([]sales.Delivery, error) {
	var deliveries []sales.Delivery
	if err := dbc(ctx, r.db).
		Where("sales_order_id = ?", soID).
		Order("created_at ASC").
		Find(&deliveries).Error; err != nil {
		return nil, err
	}
	return deliveries, nil
}

// FindAll finds all deliveries matching the filter
func (r *GormDeliveryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Delivery, error) {
	var deliveries []sales.Delivery
	query := applyListFilter(dbc(ctx, r.db).Model(&sales.Delivery{}), filter, CommonSortFields)
	if err := query.Find(&deliveries).Error; err != nil {
		return nil, err
	}
	return deliveries, nil
}

// Save persists a delivery
func (r *GormDeliveryRepository) Save(ctx context.Context, d *sales.Delivery) error {
	return dbc(ctx, r.db).Save(d).Error
}

// Ensure GormDeliveryRepository implements DeliveryRepository
var _ sales.DeliveryRepository = (*GormDeliveryRepository)(nil)
