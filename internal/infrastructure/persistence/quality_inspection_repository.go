package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scm/backend/internal/domain/quality"
	"github.com/scm/backend/internal/domain/shared"
)

// QualityInspectionSortFields contains allowed sort fields for inspections
var QualityInspectionSortFields = map[string]bool{
	"id":              true,
	"created_at":      true,
	"updated_at":      true,
	"inspected_at":    true,
	"item_name":       true,
	"inspection_type": true,
	"result":          true,
}

// GormQualityInspectionRepository implements QualityInspectionRepository using GORM
type GormQualityInspectionRepository struct {
	db *gorm.DB
}

// NewGormQualityInspectionRepository creates a new GormQualityInspectionRepository
func NewGormQualityInspectionRepository(db *gorm.DB) *GormQualityInspectionRepository {
	return &GormQualityInspectionRepository{db: db}
}

// FindByID finds an inspection by its ID
func (r *GormQualityInspectionRepository) FindByID(ctx context.Context, id uuid.UUID) (*quality.QualityInspection, error) {
	var qi quality.QualityInspection
	if err := dbc(ctx, r.db).First(&qi, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &qi, nil
}

// FindAll finds all inspections matching the filter
func (r *GormQualityInspectionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]quality.QualityInspection, error) {
	var inspections []quality.QualityInspection
	query := applyListFilter(r.applyFilters(ctx, filter), filter, QualityInspectionSortFields)
	if err := query.Find(&inspections).Error; err != nil {
		return nil, err
	}
	return inspections, nil
}

// Save persists an inspection
func (r *GormQualityInspectionRepository) Save(ctx context.Context, qi *quality.QualityInspection) error {
	return dbc(ctx, r.db).Save(qi).Error
}

// Count counts inspections matching the filter
func (r *GormQualityInspectionRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.applyFilters(ctx, filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormQualityInspectionRepository) applyFilters(ctx context.Context, filter shared.Filter) *gorm.DB {
	query := dbc(ctx, r.db).Model(&quality.QualityInspection{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("item_name LIKE ? OR lot_number LIKE ?", pattern, pattern)
	}
	if itemName, ok := filter.Filters["item_name"]; ok {
		query = query.Where("item_name = ?", itemName)
	}
	if result, ok := filter.Filters["result"]; ok {
		query = query.Where("result = ?", result)
	}
	return query
}

// Ensure GormQualityInspectionRepository implements QualityInspectionRepository
var _ quality.QualityInspectionRepository = (*GormQualityInspectionRepository)(nil)
