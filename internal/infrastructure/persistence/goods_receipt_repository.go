package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scm/backend/internal/domain/procurement"
	"github.com/scm/backend/internal/domain/shared"
)

// GormGoodsReceiptRepository implements GoodsReceiptRepository using GORM
type GormGoodsReceiptRepository struct {
	db *gorm.DB
}

// NewGormGoodsReceiptRepository creates a new GormGoodsReceiptRepository
func NewGormGoodsReceiptRepository(db *gorm.DB) *GormGoodsReceiptRepository {
	return &GormGoodsReceiptRepository{db: db}
}

// FindByID finds a goods receipt by its ID
func (r *GormGoodsReceiptRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.GoodsReceipt, error) {
	var gr procurement.GoodsReceipt
	if err := dbc(ctx, r.db).First(&gr, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &gr, nil
}

// FindByPurchaseOrder lists all receipts posted against an order
func (r *GormGoodsReceiptRepository) FindByPurchaseOrder(ctx context.Context, poID uuid.UUID) ([]procurement.GoodsReceipt, error) {
	var receipts []procurement.GoodsReceipt
	if err := dbc(ctx, r.db).
		Where("purchase_order_id = ?", poID).
		Order("created_at ASC").
		Find(&receipts).Error; err != nil {
		return nil, err
	}
	return receipts, nil
}

// FindAll finds all goods receipts matching the filter
func (r *GormGoodsReceiptRepository) FindAll(ctx context.Context, filter shared.Filter) ([]procurement.GoodsReceipt, error) {
	var receipts []procurement.GoodsReceipt
	query := applyListFilter(dbc(ctx, r.db).Model(&procurement.GoodsReceipt{}), filter, CommonSortFields)
	if err := query.Find(&receipts).Error; err != nil {
		return nil, err
	}
	return receipts, nil
}

// Save persists a goods receipt
func (r *GormGoodsReceiptRepository) Save(ctx context.Context, gr *procurement.GoodsReceipt) error {
	return dbc(ctx, r.db).Save(gr).Error
}

// Ensure GormGoodsReceiptRepository implements GoodsReceiptRepository
var _ procurement.GoodsReceiptRepository = (*GormGoodsReceiptRepository)(nil)
