package quality

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inspection(t *testing.T, insType InspectionType, sample, fail int64, result InspectionResult) QualityInspection {
	t.Helper()

	qi, err := NewQualityInspection(insType, "전자부품 A", "",
		decimal.NewFromInt(sample), decimal.NewFromInt(sample-fail), decimal.NewFromInt(fail),
		"김검사", result, "")
	require.NoError(t, err)
	return *qi
}

func TestBuildKPIReport(t *testing.T) {
	history := []QualityInspection{
		inspection(t, InspectionTypeIncoming, 100, 0, InspectionResultPass),
		inspection(t, InspectionTypeIncoming, 100, 3, InspectionResultConditionalPass),
		inspection(t, InspectionTypeOutgoing, 100, 12, InspectionResultFail),
	}

	report := BuildKPIReport(history, 2)

	assert.Equal(t, 3, report.TotalInspections)
	assert.Equal(t, int64(2), report.Nonconformances)

	// only outright PASS counts: 1/3 = 33.3%
	assert.True(t, report.PassRate.Equal(decimal.NewFromFloat(33.3)), "got %s", report.PassRate)

	// 15 failed pieces over 300 sampled = 5%
	assert.True(t, report.DefectRate.Equal(decimal.NewFromInt(5)), "got %s", report.DefectRate)

	assert.Equal(t, 2, report.ByType[InspectionTypeIncoming])
	assert.Equal(t, 1, report.ByType[InspectionTypeOutgoing])
	assert.Equal(t, 1, report.ByResult[InspectionResultFail])
}

func TestBuildKPIReport_Empty(t *testing.T) {
	report := BuildKPIReport(nil, 0)

	assert.Equal(t, 0, report.TotalInspections)
	assert.True(t, report.PassRate.IsZero())
	assert.True(t, report.DefectRate.IsZero())
	assert.Empty(t, report.ByType)
}

func TestBuildKPIReport_Deterministic(t *testing.T) {
	history := []QualityInspection{
		inspection(t, InspectionTypePeriodic, 20, 1, InspectionResultPass),
		inspection(t, InspectionTypeReturn, 30, 2, InspectionResultHold),
	}

	first := BuildKPIReport(history, 1)
	second := BuildKPIReport(history, 1)

	assert.Equal(t, first.TotalInspections, second.TotalInspections)
	assert.True(t, first.PassRate.Equal(second.PassRate))
	assert.True(t, first.DefectRate.Equal(second.DefectRate))
}
