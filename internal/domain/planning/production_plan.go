package planning

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/scm/backend/internal/domain/shared"
)

// ProductionPlanStatus represents the execution state of a production plan
type ProductionPlanStatus string

const (
	PlanStatusPlanned    ProductionPlanStatus = "PLANNED"
	PlanStatusConfirmed  ProductionPlanStatus = "CONFIRMED"
	PlanStatusInProgress ProductionPlanStatus = "IN_PROGRESS"
	PlanStatusCompleted  ProductionPlanStatus = "COMPLETED"
	PlanStatusCancelled  ProductionPlanStatus = "CANCELLED"
)

// IsValid checks if the status is valid
func (s ProductionPlanStatus) IsValid() bool {
	switch s {
	case PlanStatusPlanned, PlanStatusConfirmed, PlanStatusInProgress, PlanStatusCompleted, PlanStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation
func (s ProductionPlanStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if a transition to the target status is allowed
func (s ProductionPlanStatus) CanTransitionTo(target ProductionPlanStatus) bool {
	switch s {
	case PlanStatusPlanned:
		return target == PlanStatusConfirmed || target == PlanStatusCancelled
	case PlanStatusConfirmed:
		return target == PlanStatusInProgress || target == PlanStatusCancelled
	case PlanStatusInProgress:
		return target == PlanStatusCompleted
	default:
		return false
	}
}

// DrivesRequirements returns true for statuses that participate in the MRP
// run (confirmed and in-progress plans).
func (s ProductionPlanStatus) DrivesRequirements() bool {
	return s == PlanStatusConfirmed || s == PlanStatusInProgress
}

// ProductionPlan schedules production of a finished product
type ProductionPlan struct {
	shared.BaseAggregateRoot
	PlanNumber  string               `gorm:"uniqueIndex;size:40;not null"`
	ProductName string               `gorm:"size:200;not null;index"`
	ProductCode string               `gorm:"size:60;index"`
	PlannedQty  decimal.Decimal      `gorm:"type:decimal(15,3);not null"`
	StartDate   *time.Time
	EndDate     *time.Time
	Status      ProductionPlanStatus `gorm:"size:30;not null;index"`
}

// TableName returns the table name for GORM
func (ProductionPlan) TableName() string {
	return "production_plans"
}

// NewProductionPlan creates a plan in PLANNED state
func NewProductionPlan(productName, productCode string, plannedQty decimal.Decimal, startDate, endDate *time.Time) (*ProductionPlan, error) {
	if productName == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "product name is required")
	}
	if !plannedQty.IsPositive() {
		return nil, shared.NewDomainError("INVALID_INPUT", "planned quantity must be positive")
	}

	return &ProductionPlan{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PlanNumber:        shared.NewDocumentNumber(shared.PrefixProductionPlan),
		ProductName:       productName,
		ProductCode:       productCode,
		PlannedQty:        plannedQty,
		StartDate:         startDate,
		EndDate:           endDate,
		Status:            PlanStatusPlanned,
	}, nil
}

// Confirm fixes the plan so it starts driving material requirements
func (p *ProductionPlan) Confirm() error {
	return p.transition(PlanStatusConfirmed)
}

// Start moves the plan into execution
func (p *ProductionPlan) Start() error {
	return p.transition(PlanStatusInProgress)
}

// Complete finishes the plan
func (p *ProductionPlan) Complete() error {
	return p.transition(PlanStatusCompleted)
}

// Cancel abandons the plan
func (p *ProductionPlan) Cancel() error {
	return p.transition(PlanStatusCancelled)
}

func (p *ProductionPlan) transition(target ProductionPlanStatus) error {
	if !p.Status.CanTransitionTo(target) {
		return shared.ErrInvalidState
	}
	p.Status = target
	p.UpdatedAt = time.Now()
	return nil
}
