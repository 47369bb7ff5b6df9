package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scm/backend/internal/domain/procurement"
	"github.com/scm/backend/internal/domain/shared"
)

// GormPurchaseRequestRepository implements PurchaseRequestRepository using GORM
type GormPurchaseRequestRepository struct {
	db *gorm.DB
}

// NewGormPurchaseRequestRepository creates a new GormPurchaseRequestRepository
func NewGormPurchaseRequestRepository(db *gorm.DB) *GormPurchaseRequestRepository {
	return &GormPurchaseRequestRepository{db: db}
}

// FindByID finds a purchase request by its ID
func (r *GormPurchaseRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.PurchaseRequest, error) {
	var pr procurement.PurchaseRequest
	if err := dbc(ctx, r.db).First(&pr, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &pr, nil
}

// FindByRequestNumber finds a purchase request by its document number
func (r *GormPurchaseRequestRepository) FindByRequestNumber(ctx context.Context, requestNumber string) (*procurement.PurchaseRequest, error) {
	var pr procurement.PurchaseRequest
	if err := dbc(ctx, r.db).First(&pr, "request_number = ?", requestNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &pr, nil
}

// FindAll finds all purchase requests matching the filter
func (r *GormPurchaseRequestRepository) FindAll(ctx context.Context, filter shared.Filter) ([]procurement.PurchaseRequest, error) {
	var requests []procurement.PurchaseRequest
	query := applyListFilter(dbc(ctx, r.db).Model(&procurement.PurchaseRequest{}), filter, DocumentSortFields)
	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// FindByStatus finds purchase requests in the given status
func (r *GormPurchaseRequestRepository) FindByStatus(ctx context.Context, status procurement.PurchaseRequestStatus, filter shared.Filter) ([]procurement.PurchaseRequest, error) {
	var requests []procurement.PurchaseRequest
	query := applyListFilter(
		dbc(ctx, r.db).Model(&procurement.PurchaseRequest{}).Where("status = ?", status),
		filter, DocumentSortFields)
	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// Save creates or updates a purchase request
func (r *GormPurchaseRequestRepository) Save(ctx context.Context, pr *procurement.PurchaseRequest) error {
	return dbc(ctx, r.db).Save(pr).Error
}

// Count counts purchase requests matching the filter
func (r *GormPurchaseRequestRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := dbc(ctx, r.db).Model(&procurement.PurchaseRequest{})
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormPurchaseRequestRepository implements PurchaseRequestRepository
var _ procurement.PurchaseRequestRepository = (*GormPurchaseRequestRepository)(nil)
