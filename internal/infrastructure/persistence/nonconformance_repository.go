package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scm/backend/internal/domain/quality"
	"github.com/scm/backend/internal/domain/shared"
)

// GormNonconformanceRepository implements NonconformanceRepository using GORM
type GormNonconformanceRepository struct {
	db *gorm.DB
}

// NewGormNonconformanceRepository creates a new GormNonconformanceRepository
func NewGormNonconformanceRepository(db *gorm.DB) *GormNonconformanceRepository {
	return &GormNonconformanceRepository{db: db}
}

// FindByID finds a record by its ID
func (r *GormNonconformanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*quality.Nonconformance, error) {
	var nc quality.Nonconformance
	if err := dbc(ctx, r.db).First(&nc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &nc, nil
}

// FindByStatus lists records in the given status
func (r *GormNonconformanceRepository) FindByStatus(ctx context.Context, status quality.NonconformanceStatus, filter shared.Filter) ([]quality.Nonconformance, error) {
	var records []quality.Nonconformance
	query := applyListFilter(
		dbc(ctx, r.db).Model(&quality.Nonconformance{}).Where("status = ?", status),
		filter, DocumentSortFields)
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindAll finds all records matching the filter
func (r *GormNonconformanceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]quality.Nonconformance, error) {
	var records []quality.Nonconformance
	query := applyListFilter(dbc(ctx, r.db).Model(&quality.Nonconformance{}), filter, DocumentSortFields)
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Save creates or updates a record
func (r *GormNonconformanceRepository) Save(ctx context.Context, nc *quality.Nonconformance) error {
	return dbc(ctx, r.db).Save(nc).Error
}

// Count counts records matching the filter
func (r *GormNonconformanceRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := dbc(ctx, r.db).Model(&quality.Nonconformance{})
	if severity, ok := filter.Filters["severity"]; ok {
		query = query.Where("severity = ?", severity)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormNonconformanceRepository implements NonconformanceRepository
var _ quality.NonconformanceRepository = (*GormNonconformanceRepository)(nil)
