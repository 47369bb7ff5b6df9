package customs

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/scm/backend/internal/domain/shared"
)

// ExchangeRateRecord is one append-only quote of a currency against KRW.
// Records are never updated or deleted; the latest insert per currency wins.
type ExchangeRateRecord struct {
	shared.BaseEntity
	Seq       int64           `gorm:"autoIncrement;uniqueIndex"`
	Currency  string          `gorm:"size:3;not null;index"`
	RateToKRW decimal.Decimal `gorm:"type:decimal(15,4);not null"`
	RateDate  time.Time       `gorm:"not null"`
	Source    string          `gorm:"size:40;not null"`
}

// TableName returns the table name for GORM
func (ExchangeRateRecord) TableName() string {
	return "exchange_rate_records"
}

// NewExchangeRateRecord appends a quote
func NewExchangeRateRecord(currency string, rateToKRW decimal.Decimal, rateDate time.Time, source string) (*ExchangeRateRecord, error) {
	if currency == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "currency is required")
	}
	if !rateToKRW.IsPositive() {
		return nil, shared.NewDomainError("INVALID_INPUT", "rate must be positive")
	}

	return &ExchangeRateRecord{
		BaseEntity: shared.NewBaseEntity(),
		Currency:   currency,
		RateToKRW:  rateToKRW,
		RateDate:   rateDate,
		Source:     source,
	}, nil
}

// RateProvider resolves the rate used to convert an amount into KRW.
// KRW itself always converts 1:1. A missing rate is an error, never a
// silent default.
type RateProvider interface {
	LatestRate(currency string) (decimal.Decimal, error)
}

// RateTable is an in-memory RateProvider keyed by currency, used for
// computations over already-loaded records.
type RateTable map[string]decimal.Decimal

// LatestRate implements RateProvider
func (t RateTable) LatestRate(currency string) (decimal.Decimal, error) {
	if currency == "KRW" {
		return decimal.NewFromInt(1), nil
	}
	rate, ok := t[currency]
	if !ok {
		return decimal.Decimal{}, shared.ErrRateUnavailable
	}
	return rate, nil
}

// ConvertToKRW converts a foreign-currency amount using the provider
func ConvertToKRW(amount decimal.Decimal, currency string, rates RateProvider) (decimal.Decimal, error) {
	rate, err := rates.LatestRate(currency)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return amount.Mul(rate), nil
}
