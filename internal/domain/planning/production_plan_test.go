package planning

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scm/backend/internal/domain/shared"
)

func TestProductionPlan_Lifecycle(t *testing.T) {
	p, err := NewProductionPlan("완제품A", "FG-A", decimal.NewFromInt(100), nil, nil)
	require.NoError(t, err)
	require.Equal(t, PlanStatusPlanned, p.Status)
	assert.False(t, p.Status.DrivesRequirements())

	require.NoError(t, p.Confirm())
	assert.True(t, p.Status.DrivesRequirements())

	require.NoError(t, p.Start())
	assert.True(t, p.Status.DrivesRequirements())

	require.NoError(t, p.Complete())
	assert.False(t, p.Status.DrivesRequirements())

	assert.ErrorIs(t, p.Cancel(), shared.ErrInvalidState)
}

func TestProductionPlan_CancelBeforeStart(t *testing.T) {
	p, err := NewProductionPlan("완제품A", "FG-A", decimal.NewFromInt(100), nil, nil)
	require.NoError(t, err)

	require.NoError(t, p.Confirm())
	require.NoError(t, p.Cancel())
	assert.Equal(t, PlanStatusCancelled, p.Status)
	assert.ErrorIs(t, p.Start(), shared.ErrInvalidState)
}

func TestNewProductionPlan_Validation(t *testing.T) {
	_, err := NewProductionPlan("", "FG-A", decimal.NewFromInt(100), nil, nil)
	assert.Error(t, err)

	_, err = NewProductionPlan("완제품A", "FG-A", decimal.Zero, nil, nil)
	assert.Error(t, err)
}
