package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scm/backend/internal/domain/planning"
	"github.com/scm/backend/internal/domain/shared"
)

// GormProductionPlanRepository implements ProductionPlanRepository using GORM
type GormProductionPlanRepository struct {
	db *gorm.DB
}

// NewGormProductionPlanRepository creates a new GormProductionPlanRepository
func NewGormProductionPlanRepository(db *gorm.DB) *GormProductionPlanRepository {
	return &GormProductionPlanRepository{db: db}
}

// FindByID finds a plan by its ID
func (r *GormProductionPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*planning.ProductionPlan, error) {
	var p planning.ProductionPlan
	if err := dbc(ctx, r.db).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindActive lists plans whose status drives material requirements
func (r *GormProductionPlanRepository) FindActive(ctx context.Context) ([]planning.ProductionPlan, error) {
	var plans []planning.ProductionPlan
	if err := dbc(ctx, r.db).
		Where("status IN ?", []planning.ProductionPlanStatus{
			planning.PlanStatusConfirmed,
			planning.PlanStatusInProgress,
		}).
		Order("created_at ASC").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// FindAll finds all plans matching the filter
func (r *GormProductionPlanRepository) FindAll(ctx context.Context, filter shared.Filter) ([]planning.ProductionPlan, error) {
	var plans []planning.ProductionPlan
	query := dbc(ctx, r.db).Model(&planning.ProductionPlan{})
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	query = applyListFilter(query, filter, DocumentSortFields)
	if err := query.Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// Save creates or updates a plan
func (r *GormProductionPlanRepository) Save(ctx context.Context, p *planning.ProductionPlan) error {
	return dbc(ctx, r.db).Save(p).Error
}

// Ensure GormProductionPlanRepository implements ProductionPlanRepository
var _ planning.ProductionPlanRepository = (*GormProductionPlanRepository)(nil)
