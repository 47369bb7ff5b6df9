package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scm/backend/internal/domain/customs"
	"github.com/scm/backend/internal/domain/shared"
)

// GormFTAAgreementRepository implements FTAAgreementRepository using GORM
type GormFTAAgreementRepository struct {
	db *gorm.DB
}

// NewGormFTAAgreementRepository creates a new GormFTAAgreementRepository
func NewGormFTAAgreementRepository(db *gorm.DB) *GormFTAAgreementRepository {
	return &GormFTAAgreementRepository{db: db}
}

// FindByID finds an agreement by its ID
func (r *GormFTAAgreementRepository) FindByID(ctx context.Context, id uuid.UUID) (*customs.FTAAgreement, error) {
	var f customs.FTAAgreement
	if err := dbc(ctx, r.db).First(&f, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

// FindActiveByHSCode lists active agreements covering an HS code
func (r *GormFTAAgreementRepository) FindActiveByHSCode(ctx context.Context, hsCode string) ([]customs.FTAAgreement, error) {
	var agreements []customs.FTAAgreement
	if err := dbc(ctx, r.db).
		Where("hs_code = ? AND status = ?", hsCode, customs.FTAStatusActive).
		Order("preferential_rate ASC").
		Find(&agreements).Error; err != nil {
		return nil, err
	}
	return agreements, nil
}

// FindAll finds all agreements matching the filter
func (r *GormFTAAgreementRepository) FindAll(ctx context.Context, filter shared.Filter) ([]customs.FTAAgreement, error) {
	var agreements []customs.FTAAgreement
	query := dbc(ctx, r.db).Model(&customs.FTAAgreement{})
	if country, ok := filter.Filters["partner_country"]; ok {
		query = query.Where("partner_country = ?", country)
	}
	query = applyListFilter(query, filter, CommonSortFields)
	if err := query.Find(&agreements).Error; err != nil {
		return nil, err
	}
	return agreements, nil
}

// Save creates or updates an agreement
func (r *GormFTAAgreementRepository) Save(ctx context.Context, f *customs.FTAAgreement) error {
	return dbc(ctx, r.db).Save(f).Error
}

// Ensure GormFTAAgreementRepository implements FTAAgreementRepository
var _ customs.FTAAgreementRepository = (*GormFTAAgreementRepository)(nil)
