package procurement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scm/backend/internal/domain/shared"
)

// Quotation is a supplier quotation collected against a purchase request.
// A selected quotation may source a purchase order.
type Quotation struct {
	shared.BaseAggregateRoot
	QuotationNumber   string          `gorm:"uniqueIndex;size:40;not null"`
	PurchaseRequestID *uuid.UUID      `gorm:"type:uuid;index"`
	SupplierName      string          `gorm:"size:200;not null"`
	ItemName          string          `gorm:"size:200;not null"`
	Quantity          decimal.Decimal `gorm:"type:decimal(15,3);not null"`
	UnitPrice         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Currency          string          `gorm:"size:3;not null;default:KRW"`
	LeadTimeDays      int             `gorm:"not null;default:0"`
	ValidUntil        *time.Time
	Status            QuotationStatus `gorm:"size:30;not null"`
}

// TableName returns the table name for GORM
func (Quotation) TableName() string {
	return "quotations"
}

// NewQuotation registers a supplier quotation for review
func NewQuotation(prID *uuid.UUID, supplierName, itemName string, quantity, unitPrice decimal.Decimal, leadTimeDays int) (*Quotation, error) {
	if supplierName == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "supplier name is required")
	}
	if !quantity.IsPositive() {
		return nil, shared.NewDomainError("INVALID_INPUT", "quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "unit price cannot be negative")
	}

	return &Quotation{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		QuotationNumber:   shared.NewDocumentNumber(shared.PrefixQuotation),
		PurchaseRequestID: prID,
		SupplierName:      supplierName,
		ItemName:          itemName,
		Quantity:          quantity,
		UnitPrice:         unitPrice,
		Currency:          "KRW",
		LeadTimeDays:      leadTimeDays,
		Status:            QuotationStatusUnderReview,
	}, nil
}

// TotalAmount returns quantity x unit price
func (q *Quotation) TotalAmount() decimal.Decimal {
	return q.Quantity.Mul(q.UnitPrice)
}

// Select marks the quotation as the chosen source for ordering
func (q *Quotation) Select() error {
	if !q.Status.CanTransitionTo(QuotationStatusSelected) {
		return shared.ErrInvalidState
	}
	q.Status = QuotationStatusSelected
	q.UpdatedAt = time.Now()
	return nil
}

// Reject declines the quotation
func (q *Quotation) Reject() error {
	if !q.Status.CanTransitionTo(QuotationStatusRejected) {
		return shared.ErrInvalidState
	}
	q.Status = QuotationStatusRejected
	q.UpdatedAt = time.Now()
	return nil
}

// Expire marks an unanswered quotation expired
func (q *Quotation) Expire() error {
	if !q.Status.CanTransitionTo(QuotationStatusExpired) {
		return shared.ErrInvalidState
	}
	q.Status = QuotationStatusExpired
	q.UpdatedAt = time.Now()
	return nil
}
