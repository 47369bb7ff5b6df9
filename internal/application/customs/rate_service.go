package customs

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/scm/backend/internal/domain/customs"
	"github.com/scm/backend/internal/domain/shared"
)

// RateQuote is one currency quote fetched from a rate source
type RateQuote struct {
	Currency  string
	RateToKRW decimal.Decimal
	RateDate  time.Time
}

// ExchangeRateClient fetches current quotes from an external rate source
type ExchangeRateClient interface {
	// FetchRates returns the latest quotes and the source label
	FetchRates(ctx context.Context) ([]RateQuote, string, error)
}

// RateService maintains the append-only exchange rate table. Quotes are only
// ever inserted; the latest insert per currency wins, so a refresh or manual
// correction is one more append, never an update.
type RateService struct {
	rateRepo customs.ExchangeRateRepository
	client   ExchangeRateClient
	logger   *zap.Logger
}

// NewRateService creates a new RateService
func NewRateService(rateRepo customs.ExchangeRateRepository, client ExchangeRateClient, logger *zap.Logger) *RateService {
	return &RateService{
		rateRepo: rateRepo,
		client:   client,
		logger:   logger,
	}
}

// RefreshRates pulls current quotes from the external source and appends
// them. A failed fetch leaves the table untouched; stored rates keep working.
func (s *RateService) RefreshRates(ctx context.Context) (*RefreshRatesResult, error) {
	if s.client == nil {
		return nil, shared.ErrExternalLookup
	}

	quotes, source, err := s.client.FetchRates(ctx)
	if err != nil {
		s.logger.Warn("rate refresh failed, keeping stored rates", zap.Error(err))
		return nil, err
	}

	result := &RefreshRatesResult{Source: source}
	for _, q := range quotes {
		record, err := customs.NewExchangeRateRecord(q.Currency, q.RateToKRW, q.RateDate, source)
		if err != nil {
			s.logger.Warn("skipping malformed quote",
				zap.String("currency", q.Currency), zap.Error(err))
			continue
		}
		if err := s.rateRepo.Append(ctx, record); err != nil {
			return nil, err
		}
		result.Appended++
	}

	s.logger.Info("exchange rates refreshed",
		zap.Int("appended", result.Appended),
		zap.String("source", source))
	return result, nil
}

// AppendManualRate records a hand-entered quote
func (s *RateService) AppendManualRate(ctx context.Context, req AppendRateRequest) (*customs.ExchangeRateRecord, error) {
	rateDate := req.RateDate
	if rateDate.IsZero() {
		rateDate = time.Now()
	}

	record, err := customs.NewExchangeRateRecord(req.Currency, req.RateToKRW, rateDate, "manual")
	if err != nil {
		return nil, err
	}
	if err := s.rateRepo.Append(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// LoadRateTable builds an in-memory rate table from the latest stored record
// of each currency
func (s *RateService) LoadRateTable(ctx context.Context) (customs.RateTable, error) {
	records, err := s.rateRepo.FindLatest(ctx)
	if err != nil {
		return nil, err
	}

	table := make(customs.RateTable, len(records))
	for _, r := range records {
		table[r.Currency] = r.RateToKRW
	}
	return table, nil
}

// GetRateHistory lists the stored quotes of a currency, newest first
func (s *RateService) GetRateHistory(ctx context.Context, currency string, filter shared.Filter) ([]customs.ExchangeRateRecord, error) {
	return s.rateRepo.FindHistory(ctx, currency, filter)
}
