package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scm/backend/internal/domain/planning"
	"github.com/scm/backend/internal/domain/shared"
)

// GormBOMRepository implements BOMRepository using GORM
type GormBOMRepository struct {
	db *gorm.DB
}

// NewGormBOMRepository creates a new GormBOMRepository
func NewGormBOMRepository(db *gorm.DB) *GormBOMRepository {
	return &GormBOMRepository{db: db}
}

// FindByProduct lists BOM lines of a product
func (r *GormBOMRepository) FindByProduct(ctx context.Context, productName string) ([]planning.BOMLine, error) {
	var lines []planning.BOMLine
	if err := dbc(ctx, r.db).
		Where("product_name = ?", productName).
		Order("component_name ASC").
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// FindAll lists all BOM lines
func (r *GormBOMRepository) FindAll(ctx context.Context) ([]planning.BOMLine, error) {
	var lines []planning.BOMLine
	if err := dbc(ctx, r.db).
		Order("product_name ASC, component_name ASC").
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// Save creates or updates a BOM line
func (r *GormBOMRepository) Save(ctx context.Context, line *planning.BOMLine) error {
	return dbc(ctx, r.db).Save(line).Error
}

// Delete removes a BOM line
func (r *GormBOMRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := dbc(ctx, r.db).Delete(&planning.BOMLine{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormBOMRepository implements BOMRepository
var _ planning.BOMRepository = (*GormBOMRepository)(nil)
