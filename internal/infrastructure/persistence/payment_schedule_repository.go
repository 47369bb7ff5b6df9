package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scm/backend/internal/domain/procurement"
	"github.com/scm/backend/internal/domain/shared"
)

// GormPaymentScheduleRepository implements PaymentScheduleRepository using GORM
type GormPaymentScheduleRepository struct {
	db *gorm.DB
}

// NewGormPaymentScheduleRepository creates a new GormPaymentScheduleRepository
func NewGormPaymentScheduleRepository(db *gorm.DB) *GormPaymentScheduleRepository {
	return &GormPaymentScheduleRepository{db: db}
}

// FindByID finds a payment schedule by its ID
func (r *GormPaymentScheduleRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.PaymentSchedule, error) {
	var ps procurement.PaymentSchedule
	if err := dbc(ctx, r.db).First(&ps, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &ps, nil
}

// FindByTaxInvoice finds the schedule created for a tax invoice
func (r *GormPaymentScheduleRepository) FindByTaxInvoice(ctx context.Context, tiID uuid.UUID) (*procurement.PaymentSchedule, error) {
	var ps procurement.PaymentSchedule
	if err := dbc(ctx, r.db).First(&ps, "tax_invoice_id = ?", tiID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &ps, nil
}

// FindByStatus lists schedules in the given status, oldest due first
func (r *GormPaymentScheduleRepository) FindByStatus(ctx context.Context, status procurement.PaymentStatus, filter shared.Filter) ([]procurement.PaymentSchedule, error) {
	var schedules []procurement.PaymentSchedule
	query := applyPagination(
		dbc(ctx, r.db).Model(&procurement.PaymentSchedule{}).
			Where("status = ?", status).
			Order("due_date ASC"),
		filter)
	if err := query.Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

// FindAll finds all payment schedules matching the filter
func (r *GormPaymentScheduleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]procurement.PaymentSchedule, error) {
	var schedules []procurement.PaymentSchedule
	query := applyListFilter(dbc(ctx, r.db).Model(&procurement.PaymentSchedule{}), filter, DocumentSortFields)
	if err := query.Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

// Save creates or updates a payment schedule
func (r *GormPaymentScheduleRepository) Save(ctx context.Context, ps *procurement.PaymentSchedule) error {
	return dbc(ctx, r.db).Save(ps).Error
}

// Ensure GormPaymentScheduleRepository implements PaymentScheduleRepository
var _ procurement.PaymentScheduleRepository = (*GormPaymentScheduleRepository)(nil)
