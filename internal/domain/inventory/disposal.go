package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/scm/backend/internal/domain/shared"
)

// DisposalStatus represents the approval state of a stock disposal
type DisposalStatus string

const (
	DisposalStatusPending   DisposalStatus = "PENDING_APPROVAL"
	DisposalStatusApproved  DisposalStatus = "APPROVED"
	DisposalStatusProcessed DisposalStatus = "PROCESSED"
	DisposalStatusRejected  DisposalStatus = "REJECTED"
)

// IsValid checks if the status is valid
func (s DisposalStatus) IsValid() bool {
	switch s {
	case DisposalStatusPending, DisposalStatusApproved, DisposalStatusProcessed, DisposalStatusRejected:
		return true
	}
	return false
}

// String returns the string representation
func (s DisposalStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if a transition to the target status is allowed
func (s DisposalStatus) CanTransitionTo(target DisposalStatus) bool {
	switch s {
	case DisposalStatusPending:
		return target == DisposalStatusApproved || target == DisposalStatusRejected
	case DisposalStatusApproved:
		return target == DisposalStatusProcessed
	default:
		return false
	}
}

// Disposal writes damaged or obsolete stock off. Only processing the
// approved disposal removes the quantity from stock.
type Disposal struct {
	shared.BaseAggregateRoot
	DisposalNumber string          `gorm:"uniqueIndex;size:40;not null"`
	ItemCode       string          `gorm:"size:60;not null;index"`
	ItemName       string          `gorm:"size:200"`
	Quantity       decimal.Decimal `gorm:"type:decimal(15,3);not null"`
	Reason         string          `gorm:"size:500"`
	Status         DisposalStatus  `gorm:"size:30;not null"`
	ApprovedBy     string          `gorm:"size:100"`
	ProcessedAt    *time.Time
}

// TableName returns the table name for GORM
func (Disposal) TableName() string {
	return "disposals"
}

// NewDisposal requests a stock write-off pending approval
func NewDisposal(itemCode, itemName string, quantity decimal.Decimal, reason string) (*Disposal, error) {
	if itemCode == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "item code is required")
	}
	if !quantity.IsPositive() {
		return nil, shared.NewDomainError("INVALID_INPUT", "quantity must be positive")
	}

	return &Disposal{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		DisposalNumber:    shared.NewDocumentNumber(shared.PrefixDisposal),
		ItemCode:          itemCode,
		ItemName:          itemName,
		Quantity:          quantity,
		Reason:            reason,
		Status:            DisposalStatusPending,
	}, nil
}

// Approve clears the disposal for processing
func (d *Disposal) Approve(approver string) error {
	if !d.Status.CanTransitionTo(DisposalStatusApproved) {
		return shared.ErrInvalidState
	}
	d.Status = DisposalStatusApproved
	d.ApprovedBy = approver
	d.UpdatedAt = time.Now()
	return nil
}

// Reject declines the disposal request
func (d *Disposal) Reject(approver string) error {
	if !d.Status.CanTransitionTo(DisposalStatusRejected) {
		return shared.ErrInvalidState
	}
	d.Status = DisposalStatusRejected
	d.ApprovedBy = approver
	d.UpdatedAt = time.Now()
	return nil
}

// Process marks the physical write-off done. The caller applies the
// matching stock decrement.
func (d *Disposal) Process() error {
	if !d.Status.CanTransitionTo(DisposalStatusProcessed) {
		return shared.ErrInvalidState
	}
	now := time.Now()
	d.Status = DisposalStatusProcessed
	d.ProcessedAt = &now
	d.UpdatedAt = now
	return nil
}
