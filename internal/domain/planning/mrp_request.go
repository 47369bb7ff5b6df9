package planning

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/scm/backend/internal/domain/shared"
)

// MRPRequest persists one requirement line as a procurement trigger, either
// generated from an MRP run or entered manually.
type MRPRequest struct {
	shared.BaseAggregateRoot
	RequestNumber string          `gorm:"uniqueIndex;size:40;not null"`
	PlanNumber    string          `gorm:"size:40;index"`
	ComponentName string          `gorm:"size:200;not null"`
	ComponentCode string          `gorm:"size:60;index"`
	NetQty        decimal.Decimal `gorm:"type:decimal(15,3);not null"`
	NeededBy      *time.Time
	Source        string          `gorm:"size:20;not null"` // GENERATED or MANUAL
}

// TableName returns the table name for GORM
func (MRPRequest) TableName() string {
	return "mrp_requests"
}

// NewMRPRequestFromRequirement persists a computed requirement line
func NewMRPRequestFromRequirement(req Requirement, neededBy *time.Time) (*MRPRequest, error) {
	if req.MissingBOM {
		return nil, shared.NewDomainError("INVALID_INPUT", "cannot create request from a missing-BOM row")
	}
	if !req.NetQty.IsPositive() {
		return nil, shared.NewDomainError("INVALID_INPUT", "net quantity must be positive")
	}

	return &MRPRequest{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		RequestNumber:     shared.NewDocumentNumber(shared.PrefixMRPRequest),
		PlanNumber:        req.PlanNumber,
		ComponentName:     req.ComponentName,
		ComponentCode:     req.ComponentCode,
		NetQty:            req.NetQty,
		NeededBy:          neededBy,
		Source:            "GENERATED",
	}, nil
}

// NewManualMRPRequest records a requirement entered by a planner
func NewManualMRPRequest(componentName, componentCode string, netQty decimal.Decimal, neededBy *time.Time) (*MRPRequest, error) {
	if componentName == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "component name is required")
	}
	if !netQty.IsPositive() {
		return nil, shared.NewDomainError("INVALID_INPUT", "net quantity must be positive")
	}

	return &MRPRequest{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		RequestNumber:     shared.NewDocumentNumber(shared.PrefixMRPRequest),
		ComponentName:     componentName,
		ComponentCode:     componentCode,
		NetQty:            netQty,
		NeededBy:          neededBy,
		Source:            "MANUAL",
	}, nil
}
