package procurement

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/scm/backend/internal/domain/shared"
)

// PurchaseRequest is an internal request for material, the first document in
// the procurement chain (PR -> Quotation -> PO).
type PurchaseRequest struct {
	shared.BaseAggregateRoot
	RequestNumber string                `gorm:"uniqueIndex;size:40;not null"`
	ItemName      string                `gorm:"size:200;not null"`
	ItemCode      string                `gorm:"size:60;index"`
	Quantity      decimal.Decimal       `gorm:"type:decimal(15,3);not null"`
	Unit          string                `gorm:"size:20"`
	Requester     string                `gorm:"size:100"`
	Department    string                `gorm:"size:100"`
	NeededBy      *time.Time
	Reason        string                `gorm:"size:500"`
	Status        PurchaseRequestStatus `gorm:"size:30;not null"`
	ApprovedBy    string                `gorm:"size:100"`
	ApprovedAt    *time.Time
}

// TableName returns the table name for GORM
func (PurchaseRequest) TableName() string {
	return "purchase_requests"
}

// NewPurchaseRequest creates a pending purchase request
func NewPurchaseRequest(itemName, itemCode string, quantity decimal.Decimal, unit, requester, department string) (*PurchaseRequest, error) {
	if itemName == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "item name is required")
	}
	if !quantity.IsPositive() {
		return nil, shared.NewDomainError("INVALID_INPUT", "quantity must be positive")
	}

	pr := &PurchaseRequest{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		RequestNumber:     shared.NewDocumentNumber(shared.PrefixPurchaseRequest),
		ItemName:          itemName,
		ItemCode:          itemCode,
		Quantity:          quantity,
		Unit:              unit,
		Requester:         requester,
		Department:        department,
		Status:            PurchaseRequestStatusPending,
	}

	pr.AddDomainEvent(NewPurchaseRequestCreatedEvent(pr))
	return pr, nil
}

// Approve marks the request approved, stamping approver and time.
// Only pending requests can be approved.
func (pr *PurchaseRequest) Approve(approver string) error {
	if !pr.Status.CanTransitionTo(PurchaseRequestStatusApproved) {
		return shared.ErrInvalidState
	}
	now := time.Now()
	pr.Status = PurchaseRequestStatusApproved
	pr.ApprovedBy = approver
	pr.ApprovedAt = &now
	pr.UpdatedAt = now
	return nil
}

// Reject marks the request rejected. Rejection is terminal.
func (pr *PurchaseRequest) Reject(approver string) error {
	if !pr.Status.CanTransitionTo(PurchaseRequestStatusRejected) {
		return shared.ErrInvalidState
	}
	now := time.Now()
	pr.Status = PurchaseRequestStatusRejected
	pr.ApprovedBy = approver
	pr.ApprovedAt = &now
	pr.UpdatedAt = now
	return nil
}

// IsApproved returns true when the request passed approval
func (pr *PurchaseRequest) IsApproved() bool {
	return pr.Status == PurchaseRequestStatusApproved
}
