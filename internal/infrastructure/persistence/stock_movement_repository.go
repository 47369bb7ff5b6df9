package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scm/backend/internal/domain/inventory"
	"github.com/scm/backend/internal/domain/shared"
)

// GormStockMovementRepository implements StockMovementRepository using GORM
type GormStockMovementRepository struct {
	db *gorm.DB
}

// NewGormStockMovementRepository creates a new GormStockMovementRepository
func NewGormStockMovementRepository(db *gorm.DB) *GormStockMovementRepository {
	return &GormStockMovementRepository{db: db}
}

// FindByID finds a movement by its ID
func (r *GormStockMovementRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.StockMovement, error) {
	var m inventory.StockMovement
	if err := dbc(ctx, r.db).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// FindByItemCode lists movements of an item, newest first
func (r *GormStockMovementRepository) FindByItemCode(ctx context.Context, itemCode string, filter shared.Filter) ([]inventory.StockMovement, error) {
	var movements []inventory.StockMovement
	query := applyPagination(
		dbc(ctx, r.db).Model(&inventory.StockMovement{}).
			Where("item_code = ?", itemCode).
			Order("moved_at DESC"),
		filter)
	if err := query.Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

// FindByReference lists the movements a document caused
func (r *GormStockMovementRepository) FindByReference(ctx context.Context, referenceNumber string) ([]inventory.StockMovement, error) {
	var movements []inventory.StockMovement
	if err := dbc(ctx, r.db).
		Where("reference_number = ?", referenceNumber).
		Order("moved_at ASC").
		Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

// FindAll finds all movements matching the filter
func (r *GormStockMovementRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.StockMovement, error) {
	var movements []inventory.StockMovement
	query := dbc(ctx, r.db).Model(&inventory.StockMovement{})
	if movementType, ok := filter.Filters["movement_type"]; ok {
		query = query.Where("movement_type = ?", movementType)
	}
	query = applyListFilter(query, filter, CommonSortFields)
	if err := query.Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

// Save persists a movement row
func (r *GormStockMovementRepository) Save(ctx context.Context, m *inventory.StockMovement) error {
	return dbc(ctx, r.db).Save(m).Error
}

// Ensure GormStockMovementRepository implements StockMovementRepository
var _ inventory.StockMovementRepository = (*GormStockMovementRepository)(nil)
