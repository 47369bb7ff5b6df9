package customs

import (
	"github.com/shopspring/decimal"

	"github.com/scm/backend/internal/domain/shared"
)

var hundred = decimal.NewFromInt(100)

// LandedCost is the tax breakdown of an import:
//
//	krw   = amount x rate
//	duty  = krw x dutyRate/100
//	vat   = (krw + duty) x vatRate/100   (VAT base includes duty)
//	total = duty + vat
type LandedCost struct {
	KRWValue decimal.Decimal `json:"krw_value"`
	DutyRate decimal.Decimal `json:"duty_rate"`
	Duty     decimal.Decimal `json:"duty"`
	VATRate  decimal.Decimal `json:"vat_rate"`
	VAT      decimal.Decimal `json:"vat"`
	TotalTax decimal.Decimal `json:"total_tax"`
}

// ComputeLandedCost converts the invoice amount to KRW and applies duty and
// VAT. The currency's rate must be available; KRW converts 1:1.
func ComputeLandedCost(amount decimal.Decimal, currency string, rates RateProvider, dutyRate, vatRate decimal.Decimal) (LandedCost, error) {
	if amount.IsNegative() {
		return LandedCost{}, shared.NewDomainError("INVALID_INPUT", "amount cannot be negative")
	}
	if dutyRate.IsNegative() || vatRate.IsNegative() {
		return LandedCost{}, shared.NewDomainError("INVALID_INPUT", "rates cannot be negative")
	}

	krw, err := ConvertToKRW(amount, currency, rates)
	if err != nil {
		return LandedCost{}, err
	}
	return landedCostFromKRW(krw, dutyRate, vatRate), nil
}

func landedCostFromKRW(krw, dutyRate, vatRate decimal.Decimal) LandedCost {
	duty := krw.Mul(dutyRate).Div(hundred)
	vat := krw.Add(duty).Mul(vatRate).Div(hundred)
	return LandedCost{
		KRWValue: krw,
		DutyRate: dutyRate,
		Duty:     duty,
		VATRate:  vatRate,
		VAT:      vat,
		TotalTax: duty.Add(vat),
	}
}

// FTAComparison holds a landed cost under the normal tariff next to the
// same shipment under a chosen FTA agreement's preferential duty rate.
// VAT is recomputed on the reduced base, so the saving in total tax exceeds
// the duty saving alone.
type FTAComparison struct {
	Normal       LandedCost      `json:"normal"`
	Preferential LandedCost      `json:"preferential"`
	DutySaving   decimal.Decimal `json:"duty_saving"`
	TotalSaving  decimal.Decimal `json:"total_saving"`
}

// ApplyFTA recomputes the landed cost with the agreement's preferential
// duty rate substituted. The agreement must be active and the caller picks
// it explicitly.
func ApplyFTA(normal LandedCost, agreement *FTAAgreement) (FTAComparison, error) {
	if agreement == nil {
		return FTAComparison{}, shared.ErrInvalidInput
	}
	if !agreement.IsActive() {
		return FTAComparison{}, shared.NewDomainError("INVALID_STATE", "FTA agreement is not active")
	}

	preferential := landedCostFromKRW(normal.KRWValue, agreement.PreferentialRate, normal.VATRate)
	return FTAComparison{
		Normal:       normal,
		Preferential: preferential,
		DutySaving:   normal.Duty.Sub(preferential.Duty),
		TotalSaving:  normal.TotalTax.Sub(preferential.TotalTax),
	}, nil
}
