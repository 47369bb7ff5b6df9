package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scm/backend/internal/domain/sales"
	"github.com/scm/backend/internal/domain/shared"
)

// GormSalesInvoiceRepository implements SalesInvoiceRepository using GORM
type GormSalesInvoiceRepository struct {
	db *gorm.DB
}

// NewGormSalesInvoiceRepository creates a new GormSalesInvoiceRepository
func NewGormSalesInvoiceRepository(db *gorm.DB) *GormSalesInvoiceRepository {
	return &GormSalesInvoiceRepository{db: db}
}

// FindByID finds an invoice by its ID
func (r *GormSalesInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.SalesInvoice, error) {
	var si sales.SalesInvoice
	if err := dbc(ctx, r.db).First(&si, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &si, nil
}

// FindUnpaid lists invoices not yet settled, oldest due first
func (r *GormSalesInvoiceRepository) FindUnpaid(ctx context.Context, filter shared.Filter) ([]sales.SalesInvoice, error) {
	var invoices []sales.SalesInvoice
	query := applyPagination(
		dbc(ctx, r.db).Model(&sales.SalesInvoice{}).
			Where("paid = ?", false).
			Order("due_date ASC"),
		filter)
	if err := query.Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// FindAll finds all invoices matching the filter
func (r *GormSalesInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.SalesInvoice, error) {
	var invoices []sales.SalesInvoice
	query := applyListFilter(dbc(ctx, r.db).Model(&sales.SalesInvoice{}), filter, CommonSortFields)
	if err := query.Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// Save creates or updates an invoice
func (r *GormSalesInvoiceRepository) Save(ctx context.Context, si *sales.SalesInvoice) error {
	return dbc(ctx, r.db).Save(si).Error
}

// Ensure GormSalesInvoiceRepository implements SalesInvoiceRepository
var _ sales.SalesInvoiceRepository = (*GormSalesInvoiceRepository)(nil)
