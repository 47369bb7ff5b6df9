package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItem(t *testing.T, initialQty int64) *InventoryItem {
	t.Helper()
	item, err := NewInventoryItem("MCU-100", "MCU Chip", "제1창고", "EA",
		decimal.NewFromInt(initialQty), decimal.NewFromInt(50000))
	require.NoError(t, err)
	return item
}

func TestInventoryItem_ReceiveAndIssue(t *testing.T) {
	item := newTestItem(t, 50)

	require.NoError(t, item.Receive(decimal.NewFromInt(100)))
	assert.True(t, item.StockQty.Equal(decimal.NewFromInt(150)))
	assert.True(t, item.SystemQty.Equal(decimal.NewFromInt(150)))

	require.NoError(t, item.Issue(decimal.NewFromInt(30)))
	assert.True(t, item.StockQty.Equal(decimal.NewFromInt(120)))
	assert.True(t, item.SystemQty.Equal(decimal.NewFromInt(120)))
}

func TestInventoryItem_IssueClampsAtZero(t *testing.T) {
	item := newTestItem(t, 10)

	require.NoError(t, item.Issue(decimal.NewFromInt(25)))
	assert.True(t, item.StockQty.IsZero())
	assert.True(t, item.SystemQty.IsZero())
}

func TestInventoryItem_NegativeQuantitiesRejected(t *testing.T) {
	item := newTestItem(t, 10)

	assert.Error(t, item.Receive(decimal.NewFromInt(-1)))
	assert.Error(t, item.Issue(decimal.NewFromInt(-1)))
	assert.Error(t, item.RecordCount(decimal.NewFromInt(-1)))
}

func TestInventoryItem_CountAndVariance(t *testing.T) {
	item := newTestItem(t, 100)
	require.False(t, item.HasVariance())

	// physical count finds 95 against a book quantity of 100
	require.NoError(t, item.RecordCount(decimal.NewFromInt(95)))
	assert.True(t, item.HasVariance())
	assert.True(t, item.VarianceQty().Equal(decimal.NewFromInt(-5)))
	assert.True(t, item.VarianceValue().Equal(decimal.NewFromInt(-250000)))

	item.AlignBookToActual()
	assert.False(t, item.HasVariance())
	assert.True(t, item.SystemQty.Equal(decimal.NewFromInt(95)))
}

func TestInventoryItem_BelowSafety(t *testing.T) {
	item := newTestItem(t, 10)
	item.SafetyQty = decimal.NewFromInt(20)
	assert.True(t, item.BelowSafety())

	require.NoError(t, item.Receive(decimal.NewFromInt(15)))
	assert.False(t, item.BelowSafety())
}
