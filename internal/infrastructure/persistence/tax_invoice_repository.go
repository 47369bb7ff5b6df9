package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scm/backend/internal/domain/procurement"
	"github.com/scm/backend/internal/domain/shared"
)

// GormTaxInvoiceRepository implements TaxInvoiceRepository using GORM
type GormTaxInvoiceRepository struct {
	db *gorm.DB
}

// NewGormTaxInvoiceRepository creates a new GormTaxInvoiceRepository
func NewGormTaxInvoiceRepository(db *gorm.DB) *GormTaxInvoiceRepository {
	return &GormTaxInvoiceRepository{db: db}
}

// FindByID finds a tax invoice by its ID
func (r *GormTaxInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.PurchaseTaxInvoice, error) {
	var ti procurement.PurchaseTaxInvoice
	if err := dbc(ctx, r.db).First(&ti, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &ti, nil
}

// FindAll finds all tax invoices matching the filter
func (r *GormTaxInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]procurement.PurchaseTaxInvoice, error) {
	var invoices []procurement.PurchaseTaxInvoice
	query := applyListFilter(dbc(ctx, r.db).Model(&procurement.PurchaseTaxInvoice{}), filter, CommonSortFields)
	if err := query.Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// FindUnpaid lists tax invoices not yet settled
func (r *GormTaxInvoiceRepository) FindUnpaid(ctx context.Context, filter shared.Filter) ([]procurement.PurchaseTaxInvoice, error) {
	var invoices []procurement.PurchaseTaxInvoice
	query := applyListFilter(
		dbc(ctx, r.db).Model(&procurement.PurchaseTaxInvoice{}).Where("paid = ?", false),
		filter, CommonSortFields)
	if err := query.Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// Save creates or updates a tax invoice
func (r *GormTaxInvoiceRepository) Save(ctx context.Context, ti *procurement.PurchaseTaxInvoice) error {
	return dbc(ctx, r.db).Save(ti).Error
}

// Ensure GormTaxInvoiceRepository implements TaxInvoiceRepository
var _ procurement.TaxInvoiceRepository = (*GormTaxInvoiceRepository)(nil)
