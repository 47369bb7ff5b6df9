package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/scm/backend/internal/domain/customs"
	"github.com/scm/backend/internal/domain/shared"
)

// GormExchangeRateRepository implements ExchangeRateRepository using GORM.
// The table is append-only: Append inserts, nothing ever updates or deletes,
// and "latest" means the highest insert sequence per currency.
type GormExchangeRateRepository struct {
	db *gorm.DB
}

// NewGormExchangeRateRepository creates a new GormExchangeRateRepository
func NewGormExchangeRateRepository(db *gorm.DB) *GormExchangeRateRepository {
	return &GormExchangeRateRepository{db: db}
}

// Append inserts a rate record
func (r *GormExchangeRateRepository) Append(ctx context.Context, record *customs.ExchangeRateRecord) error {
	return dbc(ctx, r.db).Create(record).Error
}

// FindLatest returns the most recently inserted record per currency
func (r *GormExchangeRateRepository) FindLatest(ctx context.Context) ([]customs.ExchangeRateRecord, error) {
	var records []customs.ExchangeRateRecord
	sub := dbc(ctx, r.db).Model(&customs.ExchangeRateRecord{}).
		Select("MAX(seq)").Group("currency")
	if err := dbc(ctx, r.db).
		Where("seq IN (?)", sub).
		Order("currency ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindLatestByCurrency returns the most recently inserted record of a currency
func (r *GormExchangeRateRepository) FindLatestByCurrency(ctx context.Context, currency string) (*customs.ExchangeRateRecord, error) {
	var record customs.ExchangeRateRecord
	if err := dbc(ctx, r.db).
		Where("currency = ?", currency).
		Order("seq DESC").
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrRateUnavailable
		}
		return nil, err
	}
	return &record, nil
}

// FindHistory lists records of a currency, newest insert first
func (r *GormExchangeRateRepository) FindHistory(ctx context.Context, currency string, filter shared.Filter) ([]customs.ExchangeRateRecord, error) {
	var records []customs.ExchangeRateRecord
	query := applyPagination(
		dbc(ctx, r.db).Model(&customs.ExchangeRateRecord{}).
			Where("currency = ?", currency).
			Order("seq DESC"),
		filter)
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Ensure GormExchangeRateRepository implements ExchangeRateRepository
var _ customs.ExchangeRateRepository = (*GormExchangeRateRepository)(nil)
