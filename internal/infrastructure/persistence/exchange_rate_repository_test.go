package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scm/backend/internal/domain/customs"
	"github.com/scm/backend/internal/domain/shared"
)

// appendRate inserts a quote with an explicit sequence number. Postgres
// assigns seq from a sequence; SQLite does not autoincrement non-key
// columns, so tests set it to keep insert order deterministic.
func appendRate(t *testing.T, repo *GormExchangeRateRepository, seq int64, currency string, rate float64, source string) {
	t.Helper()

	record, err := customs.NewExchangeRateRecord(currency, decimal.NewFromFloat(rate), time.Now(), source)
	require.NoError(t, err)
	record.Seq = seq

	require.NoError(t, repo.Append(context.Background(), record))
}

func TestGormExchangeRateRepository_LatestInsertWins(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormExchangeRateRepository(db)
	ctx := context.Background()

	appendRate(t, repo, 1, "USD", 1300, "한국은행 API")
	appendRate(t, repo, 2, "EUR", 1450.25, "한국은행 API")
	appendRate(t, repo, 3, "USD", 1350.5, "manual")

	t.Run("latest by currency is the newest insert", func(t *testing.T) {
		record, err := repo.FindLatestByCurrency(ctx, "USD")

		require.NoError(t, err)
		assert.True(t, record.RateToKRW.Equal(decimal.NewFromFloat(1350.5)))
		assert.Equal(t, "manual", record.Source)
	})

	t.Run("latest snapshot has one record per currency", func(t *testing.T) {
		records, err := repo.FindLatest(ctx)

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "EUR", records[0].Currency)
		assert.Equal(t, "USD", records[1].Currency)
		assert.True(t, records[1].RateToKRW.Equal(decimal.NewFromFloat(1350.5)))
	})

	t.Run("missing currency is unavailable, not zero", func(t *testing.T) {
		_, err := repo.FindLatestByCurrency(ctx, "JPY")

		assert.ErrorIs(t, err, shared.ErrRateUnavailable)
	})
}

func TestGormExchangeRateRepository_FindHistory(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormExchangeRateRepository(db)
	ctx := context.Background()

	appendRate(t, repo, 1, "USD", 1300, "한국은행 API")
	appendRate(t, repo, 2, "USD", 1320, "한국은행 API")
	appendRate(t, repo, 3, "USD", 1350.5, "한국은행 API")
	appendRate(t, repo, 4, "EUR", 1450.25, "한국은행 API")

	t.Run("history is newest first and scoped to the currency", func(t *testing.T) {
		records, err := repo.FindHistory(ctx, "USD", shared.DefaultFilter())

		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.True(t, records[0].RateToKRW.Equal(decimal.NewFromFloat(1350.5)))
		assert.True(t, records[2].RateToKRW.Equal(decimal.NewFromInt(1300)))
	})

	t.Run("pagination limits the page", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.PageSize = 2

		records, err := repo.FindHistory(ctx, "USD", filter)

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.True(t, records[0].RateToKRW.Equal(decimal.NewFromFloat(1350.5)))
	})
}
