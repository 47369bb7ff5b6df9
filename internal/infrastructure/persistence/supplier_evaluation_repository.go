package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scm/backend/internal/domain/procurement"
	"github.com/scm/backend/internal/domain/shared"
)

// GormSupplierEvaluationRepository implements SupplierEvaluationRepository using GORM
type GormSupplierEvaluationRepository struct {
	db *gorm.DB
}

// NewGormSupplierEvaluationRepository creates a new GormSupplierEvaluationRepository
func NewGormSupplierEvaluationRepository(db *gorm.DB) *GormSupplierEvaluationRepository {
	return &GormSupplierEvaluationRepository{db: db}
}

// FindByID finds an evaluation by its ID
func (r *GormSupplierEvaluationRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.SupplierEvaluation, error) {
	var se procurement.SupplierEvaluation
	if err := dbc(ctx, r.db).First(&se, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &se, nil
}

// FindBySupplier lists evaluations recorded for a supplier, newest first
func (r *GormSupplierEvaluationRepository) FindBySupplier(ctx context.Context, supplierName string) ([]procurement.SupplierEvaluation, error) {
	var evaluations []procurement.SupplierEvaluation
	if err := dbc(ctx, r.db).
		Where("supplier_name = ?", supplierName).
		Order("created_at DESC").
		Find(&evaluations).Error; err != nil {
		return nil, err
	}
	return evaluations, nil
}

// FindAll finds all evaluations matching the filter
func (r *GormSupplierEvaluationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]procurement.SupplierEvaluation, error) {
	var evaluations []procurement.SupplierEvaluation
	query := applyListFilter(dbc(ctx, r.db).Model(&procurement.SupplierEvaluation{}), filter, CommonSortFields)
	if err := query.Find(&evaluations).Error; err != nil {
		return nil, err
	}
	return evaluations, nil
}

// Save creates or updates an evaluation
func (r *GormSupplierEvaluationRepository) Save(ctx context.Context, se *procurement.SupplierEvaluation) error {
	return dbc(ctx, r.db).Save(se).Error
}

// Ensure GormSupplierEvaluationRepository implements SupplierEvaluationRepository
var _ procurement.SupplierEvaluationRepository = (*GormSupplierEvaluationRepository)(nil)
