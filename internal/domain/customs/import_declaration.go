package customs

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scm/backend/internal/domain/shared"
)

// ImportDeclarationStatus represents the customs clearance state
type ImportDeclarationStatus string

const (
	ImportStatusFiled     ImportDeclarationStatus = "FILED"
	ImportStatusScreening ImportDeclarationStatus = "SCREENING"
	ImportStatusCleared   ImportDeclarationStatus = "CLEARED"
	ImportStatusHeld      ImportDeclarationStatus = "HELD"
	ImportStatusRejected  ImportDeclarationStatus = "REJECTED"
)

// IsValid checks if the status is valid
func (s ImportDeclarationStatus) IsValid() bool {
	switch s {
	case ImportStatusFiled, ImportStatusScreening, ImportStatusCleared, ImportStatusHeld, ImportStatusRejected:
		return true
	}
	return false
}

// String returns the string representation
func (s ImportDeclarationStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if a transition to the target status is allowed
func (s ImportDeclarationStatus) CanTransitionTo(target ImportDeclarationStatus) bool {
	switch s {
	case ImportStatusFiled:
		return target == ImportStatusScreening || target == ImportStatusCleared || target == ImportStatusRejected
	case ImportStatusScreening:
		return target == ImportStatusCleared || target == ImportStatusHeld || target == ImportStatusRejected
	case ImportStatusHeld:
		return target == ImportStatusCleared || target == ImportStatusRejected
	default:
		return false
	}
}

// ImportDeclaration files an import with customs, linking the commercial
// invoice and bill of lading and snapshotting the landed-cost computation
// so the filed figures survive later rate changes.
type ImportDeclaration struct {
	shared.BaseAggregateRoot
	DeclarationNumber   string          `gorm:"uniqueIndex;size:40;not null"`
	CommercialInvoiceID *uuid.UUID      `gorm:"type:uuid;index"`
	BillOfLadingID      *uuid.UUID      `gorm:"type:uuid;index"`
	HSCode              string          `gorm:"size:12;not null;index"`
	OriginCountry       string          `gorm:"size:2;not null"`
	InvoiceAmount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	InvoiceCurrency     string          `gorm:"size:3;not null"`
	ExchangeRate        decimal.Decimal `gorm:"type:decimal(15,4);not null"`
	KRWValue            decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Duty                decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	VAT                 decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	TotalTax            decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	FTAApplied          bool            `gorm:"not null;default:false"`
	FTAAgreementName    string          `gorm:"size:100"`
	FiledAt             time.Time       `gorm:"not null"`
	Status              ImportDeclarationStatus `gorm:"size:20;not null;index"`
}

// TableName returns the table name for GORM
func (ImportDeclaration) TableName() string {
	return "import_declarations"
}

// NewImportDeclaration files a declaration with the computed landed cost
func NewImportDeclaration(ciID, blID *uuid.UUID, hsCode, originCountry string, amount decimal.Decimal, currency string, rate decimal.Decimal, cost LandedCost, ftaAgreementName string) (*ImportDeclaration, error) {
	if hsCode == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "HS code is required")
	}
	if originCountry == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "origin country is required")
	}

	return &ImportDeclaration{
		BaseAggregateRoot:   shared.NewBaseAggregateRoot(),
		DeclarationNumber:   shared.NewDocumentNumber(shared.PrefixImportDeclaration),
		CommercialInvoiceID: ciID,
		BillOfLadingID:      blID,
		HSCode:              hsCode,
		OriginCountry:       originCountry,
		InvoiceAmount:       amount,
		InvoiceCurrency:     currency,
		ExchangeRate:        rate,
		KRWValue:            cost.KRWValue,
		Duty:                cost.Duty,
		VAT:                 cost.VAT,
		TotalTax:            cost.TotalTax,
		FTAApplied:          ftaAgreementName != "",
		FTAAgreementName:    ftaAgreementName,
		FiledAt:             time.Now(),
		Status:              ImportStatusFiled,
	}, nil
}

// StartScreening moves the declaration into customs screening
func (d *ImportDeclaration) StartScreening() error {
	return d.transition(ImportStatusScreening)
}

// Clear releases the goods
func (d *ImportDeclaration) Clear() error {
	return d.transition(ImportStatusCleared)
}

// Hold stops the declaration pending documents or inspection
func (d *ImportDeclaration) Hold() error {
	return d.transition(ImportStatusHeld)
}

// Reject refuses the declaration
func (d *ImportDeclaration) Reject() error {
	return d.transition(ImportStatusRejected)
}

func (d *ImportDeclaration) transition(target ImportDeclarationStatus) error {
	if !d.Status.CanTransitionTo(target) {
		return shared.ErrInvalidState
	}
	d.Status = target
	d.UpdatedAt = time.Now()
	return nil
}
