package quality

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/scm/backend/internal/domain/shared"
)

// InspectionType categorizes when in the flow the inspection happens
type InspectionType string

const (
	InspectionTypeIncoming  InspectionType = "INCOMING"   // 수입검사
	InspectionTypeInProcess InspectionType = "IN_PROCESS" // 공정검사
	InspectionTypeOutgoing  InspectionType = "OUTGOING"   // 출하검사
	InspectionTypeReturn    InspectionType = "RETURN"     // 반품검사
	InspectionTypePeriodic  InspectionType = "PERIODIC"   // 정기검사
)

// IsValid checks if the inspection type is valid
func (t InspectionType) IsValid() bool {
	switch t {
	case InspectionTypeIncoming, InspectionTypeInProcess, InspectionTypeOutgoing,
		InspectionTypeReturn, InspectionTypePeriodic:
		return true
	}
	return false
}

// String returns the string representation
func (t InspectionType) String() string {
	return string(t)
}

// InspectionResult is the inspector's verdict on a lot
type InspectionResult string

const (
	InspectionResultPass            InspectionResult = "PASS"             // 합격
	InspectionResultConditionalPass InspectionResult = "CONDITIONAL_PASS" // 조건부합격
	InspectionResultFail            InspectionResult = "FAIL"             // 불합격
	InspectionResultHold            InspectionResult = "HOLD"             // 보류
)

// IsValid checks if the result is valid
func (r InspectionResult) IsValid() bool {
	switch r {
	case InspectionResultPass, InspectionResultConditionalPass,
		InspectionResultFail, InspectionResultHold:
		return true
	}
	return false
}

// String returns the string representation
func (r InspectionResult) String() string {
	return string(r)
}

// QualityInspection records one sampling inspection of a lot: how many
// pieces were drawn, how many passed and failed, and the verdict. Rows are
// immutable once recorded; a re-inspection is a new document.
type QualityInspection struct {
	shared.BaseAggregateRoot
	InspectionNumber string           `gorm:"uniqueIndex;size:40;not null"`
	InspectionType   InspectionType   `gorm:"size:20;not null;index"`
	ItemName         string           `gorm:"size:200;not null;index"`
	LotNumber        string           `gorm:"size:60"`
	SampleQty        decimal.Decimal  `gorm:"type:decimal(15,3);not null"`
	PassQty          decimal.Decimal  `gorm:"type:decimal(15,3);not null"`
	FailQty          decimal.Decimal  `gorm:"type:decimal(15,3);not null"`
	Inspector        string           `gorm:"size:100"`
	Result           InspectionResult `gorm:"size:20;not null;index"`
	Note             string           `gorm:"size:500"`
	InspectedAt      time.Time        `gorm:"not null"`
}

// TableName returns the table name for GORM
func (QualityInspection) TableName() string {
	return "quality_inspections"
}

// NewQualityInspection validates the sample breakdown and records the
// verdict. Pass and fail together can never exceed the sample size.
func NewQualityInspection(inspectionType InspectionType, itemName, lotNumber string,
	sampleQty, passQty, failQty decimal.Decimal, inspector string,
	result InspectionResult, note string) (*QualityInspection, error) {

	if itemName == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "item name is required")
	}
	if !inspectionType.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "unknown inspection type")
	}
	if !result.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "unknown inspection result")
	}
	if !sampleQty.IsPositive() {
		return nil, shared.NewDomainError("INVALID_INPUT", "sample quantity must be positive")
	}
	if passQty.IsNegative() || failQty.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "pass and fail quantities cannot be negative")
	}
	if passQty.Add(failQty).GreaterThan(sampleQty) {
		return nil, shared.NewDomainError("INVALID_INPUT", "pass and fail quantities exceed the sample")
	}

	return &QualityInspection{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		InspectionNumber:  shared.NewDocumentNumber(shared.PrefixQualityInspection),
		InspectionType:    inspectionType,
		ItemName:          itemName,
		LotNumber:         lotNumber,
		SampleQty:         sampleQty,
		PassQty:           passQty,
		FailQty:           failQty,
		Inspector:         inspector,
		Result:            result,
		Note:              note,
		InspectedAt:       time.Now(),
	}, nil
}
