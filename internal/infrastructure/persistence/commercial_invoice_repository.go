package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scm/backend/internal/domain/customs"
	"github.com/scm/backend/internal/domain/shared"
)

// GormCommercialInvoiceRepository implements CommercialInvoiceRepository using GORM
type GormCommercialInvoiceRepository struct {
	db *gorm.DB
}

// NewGormCommercialInvoiceRepository creates a new GormCommercialInvoiceRepository
func NewGormCommercialInvoiceRepository(db *gorm.DB) *GormCommercialInvoiceRepository {
	return &GormCommercialInvoiceRepository{db: db}
}

// FindByID finds a commercial invoice by its ID
func (r *GormCommercialInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*customs.CommercialInvoice, error) {
	var ci customs.CommercialInvoice
	if err := dbc(ctx, r.db).First(&ci, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &ci, nil
}

// FindAll finds all commercial invoices matching the filter
func (r *GormCommercialInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]customs.CommercialInvoice, error) {
	var invoices []customs.CommercialInvoice
	query := dbc(ctx, r.db).Model(&customs.CommercialInvoice{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("invoice_number LIKE ? OR seller_name LIKE ? OR buyer_name LIKE ?", pattern, pattern, pattern)
	}
	query = applyListFilter(query, filter, CommonSortFields)
	if err := query.Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// Save creates or updates a commercial invoice
func (r *GormCommercialInvoiceRepository) Save(ctx context.Context, ci *customs.CommercialInvoice) error {
	return dbc(ctx, r.db).Save(ci).Error
}

// Ensure GormCommercialInvoiceRepository implements CommercialInvoiceRepository
var _ customs.CommercialInvoiceRepository = (*GormCommercialInvoiceRepository)(nil)
