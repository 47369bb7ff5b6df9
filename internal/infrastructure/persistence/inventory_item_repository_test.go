package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scm/backend/internal/domain/inventory"
	"github.com/scm/backend/internal/domain/shared"
)

func saveTestItem(t *testing.T, repo *GormInventoryItemRepository, code, name, warehouse string, qty int64) *inventory.InventoryItem {
	t.Helper()

	item, err := inventory.NewInventoryItem(code, name, warehouse, "EA", decimal.NewFromInt(qty), decimal.NewFromInt(5000))
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), item))

	return item
}

func TestGormInventoryItemRepository_FindByItemCode(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormInventoryItemRepository(db)
	ctx := context.Background()

	saveTestItem(t, repo, "RM-001", "전자부품 A", "제1창고", 100)

	t.Run("finds existing item", func(t *testing.T) {
		item, err := repo.FindByItemCode(ctx, "RM-001")

		require.NoError(t, err)
		assert.Equal(t, "전자부품 A", item.ItemName)
		assert.True(t, item.StockQty.Equal(decimal.NewFromInt(100)))
	})

	t.Run("finds by name when only the name is known", func(t *testing.T) {
		item, err := repo.FindByItemName(ctx, "전자부품 A")

		require.NoError(t, err)
		assert.Equal(t, "RM-001", item.ItemCode)
	})

	t.Run("returns not found for unknown code", func(t *testing.T) {
		_, err := repo.FindByItemCode(ctx, "RM-999")

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormInventoryItemRepository_SaveWithLock(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormInventoryItemRepository(db)
	ctx := context.Background()

	saveTestItem(t, repo, "RM-002", "전자부품 B", "제1창고", 50)

	t.Run("concurrent update loses on stale version", func(t *testing.T) {
		first, err := repo.FindByItemCode(ctx, "RM-002")
		require.NoError(t, err)
		second, err := repo.FindByItemCode(ctx, "RM-002")
		require.NoError(t, err)

		require.NoError(t, first.Receive(decimal.NewFromInt(10)))
		require.NoError(t, repo.SaveWithLock(ctx, first))

		require.NoError(t, second.Receive(decimal.NewFromInt(5)))
		err = repo.SaveWithLock(ctx, second)

		assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)

		current, err := repo.FindByItemCode(ctx, "RM-002")
		require.NoError(t, err)
		assert.True(t, current.StockQty.Equal(decimal.NewFromInt(60)))
	})

	t.Run("retry after reload succeeds", func(t *testing.T) {
		item, err := repo.FindByItemCode(ctx, "RM-002")
		require.NoError(t, err)

		require.NoError(t, item.Receive(decimal.NewFromInt(5)))
		require.NoError(t, repo.SaveWithLock(ctx, item))

		current, err := repo.FindByItemCode(ctx, "RM-002")
		require.NoError(t, err)
		assert.True(t, current.StockQty.Equal(decimal.NewFromInt(65)))
	})
}

func TestGormInventoryItemRepository_FindWithVariance(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormInventoryItemRepository(db)
	ctx := context.Background()

	counted := saveTestItem(t, repo, "RM-003", "전자부품 C", "제1창고", 100)
	saveTestItem(t, repo, "RM-004", "전자부품 D", "제2창고", 30)

	require.NoError(t, counted.RecordCount(decimal.NewFromInt(92)))
	require.NoError(t, repo.Save(ctx, counted))

	items, err := repo.FindWithVariance(ctx)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "RM-003", items[0].ItemCode)
	assert.True(t, items[0].VarianceQty().Equal(decimal.NewFromInt(-8)))
}

func TestGormInventoryItemRepository_FindAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormInventoryItemRepository(db)
	ctx := context.Background()

	saveTestItem(t, repo, "RM-005", "전자부품 E", "제1창고", 10)
	saveTestItem(t, repo, "FG-001", "완제품 X", "제2창고", 20)

	t.Run("search matches code and name", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Search = "완제품"

		items, err := repo.FindAll(ctx, filter)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "FG-001", items[0].ItemCode)
	})

	t.Run("warehouse filter narrows the list", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Filters = map[string]interface{}{"warehouse": "제1창고"}

		items, err := repo.FindAll(ctx, filter)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "RM-005", items[0].ItemCode)

		count, err := repo.Count(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("orders by whitelisted field", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.OrderBy = "item_code"
		filter.OrderDir = "asc"

		items, err := repo.FindAll(ctx, filter)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "FG-001", items[0].ItemCode)
	})
}
