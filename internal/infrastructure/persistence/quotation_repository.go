package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scm/backend/internal/domain/procurement"
	"github.com/scm/backend/internal/domain/shared"
)

// GormQuotationRepository implements QuotationRepository using GORM
type GormQuotationRepository struct {
	db *gorm.DB
}

// NewGormQuotationRepository creates a new GormQuotationRepository
func NewGormQuotationRepository(db *gorm.DB) *GormQuotationRepository {
	return &GormQuotationRepository{db: db}
}

// FindByID finds a quotation by its ID
func (r *GormQuotationRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.Quotation, error) {
	var q procurement.Quotation
	if err := dbc(ctx, r.db).First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &q, nil
}

// FindByPurchaseRequest lists quotations collected for a purchase request
func (r *GormQuotationRepository) FindByPurchaseRequest(ctx context.Context, prID uuid.UUID) ([]procurement.Quotation, error) {
	var quotations []procurement.Quotation
	if err := dbc(ctx, r.db).
		Where("purchase_request_id = ?", prID).
		Order("created_at ASC").
		Find(&quotations).Error; err != nil {
		return nil, err
	}
	return quotations, nil
}

// FindAll finds all quotations matching the filter
func (r *GormQuotationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]procurement.Quotation, error) {
	var quotations []procurement.Quotation
	query := applyListFilter(dbc(ctx, r.db).Model(&procurement.Quotation{}), filter, DocumentSortFields)
	if err := query.Find(&quotations).Error; err != nil {
		return nil, err
	}
	return quotations, nil
}

// Save creates or updates a quotation
func (r *GormQuotationRepository) Save(ctx context.Context, q *procurement.Quotation) error {
	return dbc(ctx, r.db).Save(q).Error
}

// Ensure GormQuotationRepository implements QuotationRepository
var _ procurement.QuotationRepository = (*GormQuotationRepository)(nil)
