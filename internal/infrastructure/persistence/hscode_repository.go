package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/scm/backend/internal/domain/customs"
	"github.com/scm/backend/internal/domain/shared"
)

// GormHSCodeRepository implements HSCodeRepository using GORM
type GormHSCodeRepository struct {
	db *gorm.DB
}

// NewGormHSCodeRepository creates a new GormHSCodeRepository
func NewGormHSCodeRepository(db *gorm.DB) *GormHSCodeRepository {
	return &GormHSCodeRepository{db: db}
}

// FindByCode finds a tariff line by HS code
func (r *GormHSCodeRepository) FindByCode(ctx context.Context, code string) (*customs.HSCode, error) {
	var hs customs.HSCode
	if err := dbc(ctx, r.db).First(&hs, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &hs, nil
}

// FindAll finds all tariff lines matching the filter
func (r *GormHSCodeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]customs.HSCode, error) {
	var codes []customs.HSCode
	query := dbc(ctx, r.db).Model(&customs.HSCode{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("code LIKE ? OR description LIKE ?", pattern, pattern)
	}
	query = applyPagination(query.Order("code ASC"), filter)
	if err := query.Find(&codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}

// Save creates or updates a tariff line
func (r *GormHSCodeRepository) Save(ctx context.Context, hs *customs.HSCode) error {
	return dbc(ctx, r.db).Save(hs).Error
}

// Ensure GormHSCodeRepository implements HSCodeRepository
var _ customs.HSCodeRepository = (*GormHSCodeRepository)(nil)
