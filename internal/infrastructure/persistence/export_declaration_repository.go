package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scm/backend/internal/domain/customs"
	"github.com/scm/backend/internal/domain/shared"
)

// GormExportDeclarationRepository implements ExportDeclarationRepository using GORM
type GormExportDeclarationRepository struct {
	db *gorm.DB
}

// NewGormExportDeclarationRepository creates a new GormExportDeclarationRepository
func NewGormExportDeclarationRepository(db *gorm.DB) *GormExportDeclarationRepository {
	return &GormExportDeclarationRepository{db: db}
}

// FindByID finds a declaration by its ID
func (r *GormExportDeclarationRepository) FindByID(ctx context.Context, id uuid.UUID) (*customs.ExportDeclaration, error) {
	var d customs.ExportDeclaration
	if err := dbc(ctx, r.db).First(&d, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// FindAll finds all declarations matching the filter
func (r *GormExportDeclarationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]customs.ExportDeclaration, error) {
	var declarations []customs.ExportDeclaration
	query := dbc(ctx, r.db).Model(&customs.ExportDeclaration{})
	if country, ok := filter.Filters["destination_country"]; ok {
		query = query.Where("destination_country = ?", country)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("declaration_number LIKE ? OR item_name LIKE ?", pattern, pattern)
	}
	query = applyListFilter(query, filter, CommonSortFields)
	if err := query.Find(&declarations).Error; err != nil {
		return nil, err
	}
	return declarations, nil
}

// Save persists a declaration
func (r *GormExportDeclarationRepository) Save(ctx context.Context, d *customs.ExportDeclaration) error {
	return dbc(ctx, r.db).Save(d).Error
}

// Ensure GormExportDeclarationRepository implements ExportDeclarationRepository
var _ customs.ExportDeclarationRepository = (*GormExportDeclarationRepository)(nil)
