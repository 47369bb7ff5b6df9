package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scm/backend/internal/domain/procurement"
	"github.com/scm/backend/internal/domain/shared"
)

// GormInvoiceVerificationRepository implements InvoiceVerificationRepository using GORM
type GormInvoiceVerificationRepository struct {
	db *gorm.DB
}

// NewGormInvoiceVerificationRepository creates a new GormInvoiceVerificationRepository
func NewGormInvoiceVerificationRepository(db *gorm.DB) *GormInvoiceVerificationRepository {
	return &GormInvoiceVerificationRepository{db: db}
}

// FindByID finds a verification by its ID
func (r *GormInvoiceVerificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.InvoiceVerification, error) {
	var iv procurement.InvoiceVerification
	if err := dbc(ctx, r.db).First(&iv, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &iv, nil
}

// FindByPurchaseOrder lists verifications for an order
func (r *GormInvoiceVerificationRepository) FindByPurchaseOrder(ctx context.Context, poID uuid.UUID) ([]procurement.InvoiceVerification, error) {
	var verifications []procurement.InvoiceVerification
	if err := dbc(ctx, r.db).
		Where("purchase_order_id = ?", poID).
		Order("created_at ASC").
		Find(&verifications).Error; err != nil {
		return nil, err
	}
	return verifications, nil
}

// FindAll finds all verifications matching the filter
func (r *GormInvoiceVerificationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]procurement.InvoiceVerification, error) {
	var verifications []procurement.InvoiceVerification
	query := applyListFilter(dbc(ctx, r.db).Model(&procurement.InvoiceVerification{}), filter, CommonSortFields)
	if err := query.Find(&verifications).Error; err != nil {
		return nil, err
	}
	return verifications, nil
}

// Save creates or updates a verification
func (r *GormInvoiceVerificationRepository) Save(ctx context.Context, iv *procurement.InvoiceVerification) error {
	return dbc(ctx, r.db).Save(iv).Error
}

// Ensure GormInvoiceVerificationRepository implements InvoiceVerificationRepository
var _ procurement.InvoiceVerificationRepository = (*GormInvoiceVerificationRepository)(nil)
