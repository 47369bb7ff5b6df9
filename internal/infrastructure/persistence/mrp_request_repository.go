package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scm/backend/internal/domain/planning"
	"github.com/scm/backend/internal/domain/shared"
)

// GormMRPRequestRepository implements MRPRequestRepository using GORM
type GormMRPRequestRepository struct {
	db *gorm.DB
}

// NewGormMRPRequestRepository creates a new GormMRPRequestRepository
func NewGormMRPRequestRepository(db *gorm.DB) *GormMRPRequestRepository {
	return &GormMRPRequestRepository{db: db}
}

// FindByID finds a request by its ID
func (r *GormMRPRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*planning.MRPRequest, error) {
	var req planning.MRPRequest
	if err := dbc(ctx, r.db).First(&req, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

// FindAll finds all requests matching the filter
func (r *GormMRPRequestRepository) FindAll(ctx context.Context, filter shared.Filter) ([]planning.MRPRequest, error) {
	var requests []planning.MRPRequest
	query := dbc(ctx, r.db).Model(&planning.MRPRequest{})
	if source, ok := filter.Filters["source"]; ok {
		query = query.Where("source = ?", source)
	}
	query = applyListFilter(query, filter, CommonSortFields)
	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// Save persists a request
func (r *GormMRPRequestRepository) Save(ctx context.Context, req *planning.MRPRequest) error {
	return dbc(ctx, r.db).Save(req).Error
}

// Ensure GormMRPRequestRepository implements MRPRequestRepository
var _ planning.MRPRequestRepository = (*GormMRPRequestRepository)(nil)
