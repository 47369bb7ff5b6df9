package quality

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// KPIReport summarizes the inspection history: pass rate over verdicts,
// defect rate over sampled pieces, and the distribution per type and result
type KPIReport struct {
	TotalInspections int                      `json:"total_inspections"`
	PassRate         decimal.Decimal          `json:"pass_rate"`
	DefectRate       decimal.Decimal          `json:"defect_rate"`
	Nonconformances  int64                    `json:"nonconformances"`
	ByType           map[InspectionType]int   `json:"by_type"`
	ByResult         map[InspectionResult]int `json:"by_result"`
}

// BuildKPIReport computes the quality KPIs from the inspection history.
// Pure and deterministic: only PASS verdicts count toward the pass rate
// (one decimal), the defect rate is failed over sampled pieces (two
// decimals), and an empty history yields zero rates.
func BuildKPIReport(inspections []QualityInspection, nonconformances int64) KPIReport {
	report := KPIReport{
		TotalInspections: len(inspections),
		Nonconformances:  nonconformances,
		ByType:           make(map[InspectionType]int),
		ByResult:         make(map[InspectionResult]int),
	}

	passCount := 0
	totalSample := decimal.Zero
	totalFail := decimal.Zero
	for _, qi := range inspections {
		report.ByType[qi.InspectionType]++
		report.ByResult[qi.Result]++
		if qi.Result == InspectionResultPass {
			passCount++
		}
		totalSample = totalSample.Add(qi.SampleQty)
		totalFail = totalFail.Add(qi.FailQty)
	}

	if report.TotalInspections > 0 {
		report.PassRate = decimal.NewFromInt(int64(passCount)).
			Div(decimal.NewFromInt(int64(report.TotalInspections))).
			Mul(hundred).Round(1)
	}
	if totalSample.IsPositive() {
		report.DefectRate = totalFail.Div(totalSample).Mul(hundred).Round(2)
	}
	return report
}
