package sales

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scm/backend/internal/domain/shared"
)

func TestCustomer_CheckCredit(t *testing.T) {
	tests := []struct {
		name        string
		creditLimit decimal.Decimal
		creditUsed  decimal.Decimal
		orderAmount decimal.Decimal
		wantErr     error
	}{
		{
			name:        "within remaining credit",
			creditLimit: decimal.NewFromInt(1000000),
			creditUsed:  decimal.NewFromInt(800000),
			orderAmount: decimal.NewFromInt(150000),
			wantErr:     nil,
		},
		{
			name:        "exactly at remaining credit",
			creditLimit: decimal.NewFromInt(1000000),
			creditUsed:  decimal.NewFromInt(800000),
			orderAmount: decimal.NewFromInt(200000),
			wantErr:     nil,
		},
		{
			name:        "over remaining credit",
			creditLimit: decimal.NewFromInt(1000000),
			creditUsed:  decimal.NewFromInt(800000),
			orderAmount: decimal.NewFromInt(200001),
			wantErr:     shared.ErrCreditLimitExceeded,
		},
		{
			name:        "zero limit means unlimited",
			creditLimit: decimal.Zero,
			creditUsed:  decimal.NewFromInt(99999999),
			orderAmount: decimal.NewFromInt(5000000),
			wantErr:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCustomer("서울상사", "02-1234-5678", "NET 30", tt.creditLimit)
			require.NoError(t, err)
			c.CreditUsed = tt.creditUsed

			err = c.CheckCredit(tt.orderAmount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCustomer_ConsumeCredit(t *testing.T) {
	c, err := NewCustomer("서울상사", "02-1234-5678", "NET 30", decimal.NewFromInt(1000000))
	require.NoError(t, err)
	c.CreditUsed = decimal.NewFromInt(800000)

	// 800,000 used plus a 150,000 order leaves used at 950,000
	require.NoError(t, c.ConsumeCredit(decimal.NewFromInt(150000)))
	assert.True(t, c.CreditUsed.Equal(decimal.NewFromInt(950000)))
	assert.True(t, c.RemainingCredit().Equal(decimal.NewFromInt(50000)))

	err = c.ConsumeCredit(decimal.NewFromInt(60000))
	assert.ErrorIs(t, err, shared.ErrCreditLimitExceeded)
	assert.True(t, c.CreditUsed.Equal(decimal.NewFromInt(950000)))
}

func TestNewCustomer_Validation(t *testing.T) {
	_, err := NewCustomer("", "", "", decimal.Zero)
	assert.Error(t, err)

	_, err = NewCustomer("서울상사", "", "", decimal.NewFromInt(-1))
	assert.Error(t, err)
}
