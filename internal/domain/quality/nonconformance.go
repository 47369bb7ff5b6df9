package quality

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/scm/backend/internal/domain/shared"
)

// DefectType classifies what is wrong with the nonconforming material
type DefectType string

const (
	DefectTypeDimension  DefectType = "DIMENSION"  // 치수불량
	DefectTypeAppearance DefectType = "APPEARANCE" // 외관불량
	DefectTypeFunction   DefectType = "FUNCTION"   // 기능불량
	DefectTypeLabel      DefectType = "LABEL"      // 라벨불량
	DefectTypePackaging  DefectType = "PACKAGING"  // 포장불량
	DefectTypeOther      DefectType = "OTHER"      // 기타
)

// IsValid checks if the defect type is valid
func (d DefectType) IsValid() bool {
	switch d {
	case DefectTypeDimension, DefectTypeAppearance, DefectTypeFunction,
		DefectTypeLabel, DefectTypePackaging, DefectTypeOther:
		return true
	}
	return false
}

// Severity grades the impact of a nonconformance
type Severity string

const (
	SeverityMinor    Severity = "MINOR"    // 경미
	SeverityModerate Severity = "MODERATE" // 보통
	SeverityMajor    Severity = "MAJOR"    // 심각
	SeverityCritical Severity = "CRITICAL" // 치명적
)

// IsValid checks if the severity is valid
func (s Severity) IsValid() bool {
	switch s {
	case SeverityMinor, SeverityModerate, SeverityMajor, SeverityCritical:
		return true
	}
	return false
}

// NonconformanceStatus tracks the corrective-action workflow
type NonconformanceStatus string

const (
	NonconformanceStatusInvestigating    NonconformanceStatus = "INVESTIGATING"     // 조사중
	NonconformanceStatusCorrectiveAction NonconformanceStatus = "CORRECTIVE_ACTION" // 시정조치중
	NonconformanceStatusVerifying        NonconformanceStatus = "VERIFYING"         // 검증중
	NonconformanceStatusClosed           NonconformanceStatus = "CLOSED"            // 종결
	NonconformanceStatusRecurred         NonconformanceStatus = "RECURRED"          // 재발
)

// IsValid checks if the status is valid
func (s NonconformanceStatus) IsValid() bool {
	switch s {
	case NonconformanceStatusInvestigating, NonconformanceStatusCorrectiveAction,
		NonconformanceStatusVerifying, NonconformanceStatusClosed, NonconformanceStatusRecurred:
		return true
	}
	return false
}

// String returns the string representation
func (s NonconformanceStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if a transition to the target status is allowed.
// Verification that fails sends the record back to corrective action; a
// closed record can only resurface as recurred, which reopens the
// investigation.
func (s NonconformanceStatus) CanTransitionTo(target NonconformanceStatus) bool {
	switch s {
	case NonconformanceStatusInvestigating:
		return target == NonconformanceStatusCorrectiveAction || target == NonconformanceStatusClosed
	case NonconformanceStatusCorrectiveAction:
		return target == NonconformanceStatusVerifying
	case NonconformanceStatusVerifying:
		return target == NonconformanceStatusClosed || target == NonconformanceStatusCorrectiveAction
	case NonconformanceStatusClosed:
		return target == NonconformanceStatusRecurred
	case NonconformanceStatusRecurred:
		return target == NonconformanceStatusInvestigating
	default:
		return false
	}
}

// Nonconformance is a defect record with its root cause analysis and
// corrective action, tracked from investigation to closure
type Nonconformance struct {
	shared.BaseAggregateRoot
	NCNumber         string               `gorm:"uniqueIndex;size:40;not null"`
	ItemName         string               `gorm:"size:200;not null;index"`
	DefectType       DefectType           `gorm:"size:20;not null"`
	Quantity         decimal.Decimal      `gorm:"type:decimal(15,3);not null"`
	Severity         Severity             `gorm:"size:20;not null;index"`
	RootCause        string               `gorm:"size:500"`
	CorrectiveAction string               `gorm:"size:500"`
	Status           NonconformanceStatus `gorm:"size:30;not null;index"`
}

// TableName returns the table name for GORM
func (Nonconformance) TableName() string {
	return "nonconformances"
}

// NewNonconformance opens a defect record under investigation
func NewNonconformance(itemName string, defectType DefectType, quantity decimal.Decimal, severity Severity) (*Nonconformance, error) {
	if itemName == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "item name is required")
	}
	if !defectType.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "unknown defect type")
	}
	if !severity.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "unknown severity")
	}
	if !quantity.IsPositive() {
		return nil, shared.NewDomainError("INVALID_INPUT", "quantity must be positive")
	}

	return &Nonconformance{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		NCNumber:          shared.NewDocumentNumber(shared.PrefixNonconformance),
		ItemName:          itemName,
		DefectType:        defectType,
		Quantity:          quantity,
		Severity:          severity,
		Status:            NonconformanceStatusInvestigating,
	}, nil
}

// Transition moves the record through the corrective-action workflow
func (nc *Nonconformance) Transition(target NonconformanceStatus) error {
	if !target.IsValid() {
		return shared.ErrInvalidInput
	}
	if !nc.Status.CanTransitionTo(target) {
		return shared.ErrInvalidState
	}
	nc.Status = target
	nc.UpdatedAt = time.Now()
	return nil
}

// RecordAnalysis writes the root cause and corrective action. Empty
// arguments keep the existing text.
func (nc *Nonconformance) RecordAnalysis(rootCause, correctiveAction string) {
	if rootCause != "" {
		nc.RootCause = rootCause
	}
	if correctiveAction != "" {
		nc.CorrectiveAction = correctiveAction
	}
	nc.UpdatedAt = time.Now()
}
