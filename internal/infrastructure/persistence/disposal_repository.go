package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scm/backend/internal/domain/inventory"
	"github.com/scm/backend/internal/domain/shared"
)

// GormDisposalRepository implements DisposalRepository using GORM
type GormDisposalRepository struct {
	db *gorm.DB
}

// NewGormDisposalRepository creates a new GormDisposalRepository
func NewGormDisposalRepository(db *gorm.DB) *GormDisposalRepository {
	return &GormDisposalRepository{db: db}
}

// FindByID finds a disposal by its ID
func (r *GormDisposalRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Disposal, error) {
	var d inventory.Disposal
	if err := dbc(ctx, r.db).First(&d, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// FindByStatus lists disposals in the given status
func (r *GormDisposalRepository) FindByStatus(ctx context.Context, status inventory.DisposalStatus, filter shared.Filter) ([]inventory.Disposal, error) {
	var disposals []inventory.Disposal
	query := applyListFilter(
		dbc(ctx, r.db).Model(&inventory.Disposal{}).Where("status = ?", status),
		filter, DocumentSortFields)
	if err := query.Find(&disposals).Error; err != nil {
		return nil, err
	}
	return disposals, nil
}

// FindAll finds all disposals matching the filter
func (r *GormDisposalRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Disposal, error) {
	var disposals []inventory.Disposal
	query := applyListFilter(dbc(ctx, r.db).Model(&inventory.Disposal{}), filter, DocumentSortFields)
	if err := query.Find(&disposals).Error; err != nil {
		return nil, err
	}
	return disposals, nil
}

// Save creates or updates a disposal
func (r *GormDisposalRepository) Save(ctx context.Context, d *inventory.Disposal) error {
	return dbc(ctx, r.db).Save(d).Error
}

// Ensure GormDisposalRepository implements DisposalRepository
var _ inventory.DisposalRepository = (*GormDisposalRepository)(nil)
