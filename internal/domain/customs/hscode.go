package customs

import (
	"github.com/shopspring/decimal"

	"github.com/scm/backend/internal/domain/shared"
)

// HSCode carries the tariff parameters of a harmonized-system code
type HSCode struct {
	shared.BaseEntity
	Code        string          `gorm:"uniqueIndex;size:12;not null"`
	Description string          `gorm:"size:500"`
	DutyRate    decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	VATRate     decimal.Decimal `gorm:"type:decimal(5,2);not null;default:10"`
	Unit        string          `gorm:"size:20"`
}

// TableName returns the table name for GORM
func (HSCode) TableName() string {
	return "hs_codes"
}

// NewHSCode registers a tariff line. VAT defaults to the standard 10%.
func NewHSCode(code, description string, dutyRate, vatRate decimal.Decimal, unit string) (*HSCode, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "HS code is required")
	}
	if dutyRate.IsNegative() || vatRate.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "rates cannot be negative")
	}

	return &HSCode{
		BaseEntity:  shared.NewBaseEntity(),
		Code:        code,
		Description: description,
		DutyRate:    dutyRate,
		VATRate:     vatRate,
		Unit:        unit,
	}, nil
}

// FTAAgreementStatus marks whether an agreement is in force
type FTAAgreementStatus string

const (
	FTAStatusActive    FTAAgreementStatus = "ACTIVE"
	FTAStatusSuspended FTAAgreementStatus = "SUSPENDED"
)

// FTAAgreement is a preferential tariff rate available for an HS code under
// a trade agreement. Only active agreements apply, and the declarant picks
// the agreement explicitly; the engine never auto-selects the cheapest.
type FTAAgreement struct {
	shared.BaseEntity
	Name             string             `gorm:"size:100;not null;index"`
	PartnerCountry   string             `gorm:"size:2;not null;index"`
	HSCode           string             `gorm:"size:12;not null;index"`
	PreferentialRate decimal.Decimal    `gorm:"type:decimal(5,2);not null"`
	OriginCriteria   string             `gorm:"size:200"`
	Status           FTAAgreementStatus `gorm:"size:20;not null"`
}

// TableName returns the table name for GORM
func (FTAAgreement) TableName() string {
	return "fta_agreements"
}

// NewFTAAgreement registers a preferential rate
func NewFTAAgreement(name, partnerCountry, hsCode string, preferentialRate decimal.Decimal, originCriteria string) (*FTAAgreement, error) {
	if name == "" || partnerCountry == "" || hsCode == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "name, partner country and HS code are required")
	}
	if preferentialRate.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "preferential rate cannot be negative")
	}

	return &FTAAgreement{
		BaseEntity:       shared.NewBaseEntity(),
		Name:             name,
		PartnerCountry:   partnerCountry,
		HSCode:           hsCode,
		PreferentialRate: preferentialRate,
		OriginCriteria:   originCriteria,
		Status:           FTAStatusActive,
	}, nil
}

// IsActive returns true when the agreement may be applied
func (f *FTAAgreement) IsActive() bool {
	return f.Status == FTAStatusActive
}
