package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scm/backend/internal/domain/customs"
	"github.com/scm/backend/internal/domain/shared"
)

// GormImportDeclarationRepository implements ImportDeclarationRepository using GORM
type GormImportDeclarationRepository struct {
	db *gorm.DB
}

// NewGormImportDeclarationRepository creates a new GormImportDeclarationRepository
func NewGormImportDeclarationRepository(db *gorm.DB) *GormImportDeclarationRepository {
	return &GormImportDeclarationRepository{db: db}
}

// FindByID finds a declaration by its ID
func (r *GormImportDeclarationRepository) FindByID(ctx context.Context, id uuid.UUID) (*customs.ImportDeclaration, error) {
	var d customs.ImportDeclaration
	if err := dbc(ctx, r.db).First(&d, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// FindByStatus lists declarations in the given status
func (r *GormImportDeclarationRepository) FindByStatus(ctx context.Context, status customs.ImportDeclarationStatus, filter shared.Filter) ([]customs.ImportDeclaration, error) {
	var declarations []customs.ImportDeclaration
	query := dbc(ctx, r.db).Model(&customs.ImportDeclaration{}).
		Where("status = ?", status)
	query = applyListFilter(query, filter, DocumentSortFields)
	if err := query.Find(&declarations).Error; err != nil {
		return nil, err
	}
	return declarations, nil
}

// FindAll finds all declarations matching the filter
func (r *GormImportDeclarationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]customs.ImportDeclaration, error) {
	var declarations []customs.ImportDeclaration
	query := dbc(ctx, r.db).Model(&customs.ImportDeclaration{})
	query = r.applyFilters(query, filter)
	query = applyListFilter(query, filter, DocumentSortFields)
	if err := query.Find(&declarations).Error; err != nil {
		return nil, err
	}
	return declarations, nil
}

// Save creates or updates a declaration
func (r *GormImportDeclarationRepository) Save(ctx context.Context, d *customs.ImportDeclaration) error {
	return dbc(ctx, r.db).Save(d).Error
}

func (r *GormImportDeclarationRepository) applyFilters(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	if hsCode, ok := filter.Filters["hs_code"]; ok {
		query = query.Where("hs_code = ?", hsCode)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("declaration_number LIKE ? OR hs_code LIKE ?", pattern, pattern)
	}
	return query
}

// Ensure GormImportDeclarationRepository implements ImportDeclarationRepository
var _ customs.ImportDeclarationRepository = (*GormImportDeclarationRepository)(nil)
