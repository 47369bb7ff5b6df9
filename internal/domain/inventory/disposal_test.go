package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scm/backend/internal/domain/shared"
)

func TestDisposal_ApprovalFlow(t *testing.T) {
	d, err := NewDisposal("MCU-100", "MCU Chip", decimal.NewFromInt(5), "수해 파손")
	require.NoError(t, err)
	require.Equal(t, DisposalStatusPending, d.Status)

	// cannot process before approval
	assert.ErrorIs(t, d.Process(), shared.ErrInvalidState)

	require.NoError(t, d.Approve("김관리"))
	require.NoError(t, d.Process())
	assert.Equal(t, DisposalStatusProcessed, d.Status)
	assert.NotNil(t, d.ProcessedAt)

	assert.ErrorIs(t, d.Process(), shared.ErrInvalidState)
}

func TestDisposal_Reject(t *testing.T) {
	d, err := NewDisposal("MCU-100", "MCU Chip", decimal.NewFromInt(5), "오등록")
	require.NoError(t, err)

	require.NoError(t, d.Reject("김관리"))
	assert.Equal(t, DisposalStatusRejected, d.Status)
	assert.ErrorIs(t, d.Approve("김관리"), shared.ErrInvalidState)
}

func TestNewDisposal_Validation(t *testing.T) {
	_, err := NewDisposal("", "MCU Chip", decimal.NewFromInt(5), "")
	assert.Error(t, err)

	_, err = NewDisposal("MCU-100", "MCU Chip", decimal.Zero, "")
	assert.Error(t, err)
}
