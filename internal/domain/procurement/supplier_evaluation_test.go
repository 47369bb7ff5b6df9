package procurement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradeForScore(t *testing.T) {
	tests := []struct {
		total int
		want  string
	}{
		{100, "A"},
		{90, "A"},
		{89, "B"},
		{75, "B"},
		{74, "C"},
		{60, "C"},
		{59, "D"},
		{0, "D"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GradeForScore(tt.total), "total=%d", tt.total)
	}
}

func TestNewSupplierEvaluation(t *testing.T) {
	se, err := NewSupplierEvaluation("한국전자부품", "2026-H1", 24, 23, 22, 21, "박구매")
	require.NoError(t, err)
	assert.Equal(t, 90, se.TotalScore)
	assert.Equal(t, "A", se.Grade)

	_, err = NewSupplierEvaluation("한국전자부품", "2026-H1", 26, 10, 10, 10, "박구매")
	assert.Error(t, err)

	_, err = NewSupplierEvaluation("한국전자부품", "2026-H1", -1, 10, 10, 10, "박구매")
	assert.Error(t, err)

	_, err = NewSupplierEvaluation("", "2026-H1", 10, 10, 10, 10, "박구매")
	assert.Error(t, err)
}
