package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scm/backend/internal/domain/sales"
	"github.com/scm/backend/internal/domain/shared"
)

// GormSalesReturnRepository implements SalesReturnRepository using GORM
type GormSalesReturnRepository struct {
	db *gorm.DB
}

// NewGormSalesReturnRepository creates a new GormSalesReturnRepository
func NewGormSalesReturnRepository(db *gorm.DB) *GormSalesReturnRepository {
	return &GormSalesReturnRepository{db: db}
}

// FindByID finds a return by its ID
func (r *GormSalesReturnRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.SalesReturn, error) {
	var sr sales.SalesReturn
	if err := dbc(ctx, r.db).First(&sr, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sr, nil
}

// FindByStatus lists returns in the given status
func (r *GormSalesReturnRepository) FindByStatus(ctx context.Context, status sales.SalesReturnStatus, filter shared.Filter) ([]sales.SalesReturn, error) {
	var returns []sales.SalesReturn
	query := applyListFilter(
		dbc(ctx, r.db).Model(&sales.SalesReturn{}).Where("status = ?", status),
		filter, DocumentSortFields)
	if err := query.Find(&returns).Error; err != nil {
		return nil, err
	}
	return returns, nil
}

// FindAll finds all returns matching the filter
func (r *GormSalesReturnRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.SalesReturn, error) {
	var returns []sales.SalesReturn
	query := applyListFilter(dbc(ctx, r.db).Model(&sales.SalesReturn{}), filter, DocumentSortFields)
	if err := query.Find(&returns).Error; err != nil {
		return nil, err
	}
	return returns, nil
}

// Save creates or updates a return
func (r *GormSalesReturnRepository) Save(ctx context.Context, sr *sales.SalesReturn) error {
	return dbc(ctx, r.db).Save(sr).Error
}

// Ensure GormSalesReturnRepository implements SalesReturnRepository
var _ sales.SalesReturnRepository = (*GormSalesReturnRepository)(nil)
