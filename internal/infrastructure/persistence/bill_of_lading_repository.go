package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scm/backend/internal/domain/customs"
	"github.com/scm/backend/internal/domain/shared"
)

// GormBillOfLadingRepository implements BillOfLadingRepository using GORM
type GormBillOfLadingRepository struct {
	db *gorm.DB
}

// NewGormBillOfLadingRepository creates a new GormBillOfLadingRepository
func NewGormBillOfLadingRepository(db *gorm.DB) *GormBillOfLadingRepository {
	return &GormBillOfLadingRepository{db: db}
}

// FindByID finds a bill of lading by its ID
func (r *GormBillOfLadingRepository) FindByID(ctx context.Context, id uuid.UUID) (*customs.BillOfLading, error) {
	var bl customs.BillOfLading
	if err := dbc(ctx, r.db).First(&bl, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &bl, nil
}

// FindByCommercialInvoice lists B/Ls issued for a commercial invoice
func (r *GormBillOfLadingRepository) FindByCommercialInvoice(ctx context.Context, ciID uuid.UUID) ([]customs.BillOfLading, error) {
	var bills []customs.BillOfLading
	if err := dbc(ctx, r.db).
		Where("commercial_invoice_id = ?", ciID).
		Order("created_at ASC").
		Find(&bills).Error; err != nil {
		return nil, err
	}
	return bills, nil
}

// FindAll finds all bills of lading matching the filter
func (r *GormBillOfLadingRepository) FindAll(ctx context.Context, filter shared.Filter) ([]customs.BillOfLading, error) {
	var bills []customs.BillOfLading
	query := dbc(ctx, r.db).Model(&customs.BillOfLading{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("bl_number LIKE ? OR carrier LIKE ? OR vessel_name LIKE ?", pattern, pattern, pattern)
	}
	query = applyListFilter(query, filter, CommonSortFields)
	if err := query.Find(&bills).Error; err != nil {
		return nil, err
	}
	return bills, nil
}

// Save creates or updates a bill of lading
func (r *GormBillOfLadingRepository) Save(ctx context.Context, bl *customs.BillOfLading) error {
	return dbc(ctx, r.db).Save(bl).Error
}

// Ensure GormBillOfLadingRepository implements BillOfLadingRepository
var _ customs.BillOfLadingRepository = (*GormBillOfLadingRepository)(nil)
