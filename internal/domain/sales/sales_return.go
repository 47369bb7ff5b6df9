package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scm/backend/internal/domain/shared"
)

// SalesReturn is a customer return flowing receive -> inspect -> restock or
// scrap -> refund. Only the transition into RESTOCKED puts quantity back
// into stock.
type SalesReturn struct {
	shared.BaseAggregateRoot
	ReturnNumber string            `gorm:"uniqueIndex;size:40;not null"`
	SalesOrderID *uuid.UUID        `gorm:"type:uuid;index"`
	CustomerName string            `gorm:"size:200"`
	ItemName     string            `gorm:"size:200;not null"`
	ItemCode     string            `gorm:"size:60;index"`
	Quantity     decimal.Decimal   `gorm:"type:decimal(15,3);not null"`
	Reason       string            `gorm:"size:500"`
	Status       SalesReturnStatus `gorm:"size:30;not null;index"`
	RefundedAt   *time.Time
}

// TableName returns the table name for GORM
func (SalesReturn) TableName() string {
	return "sales_returns"
}

// NewSalesReturn registers a received customer return
func NewSalesReturn(soID *uuid.UUID, customerName, itemName, itemCode string, quantity decimal.Decimal, reason string) (*SalesReturn, error) {
	if itemName == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "item name is required")
	}
	if !quantity.IsPositive() {
		return nil, shared.NewDomainError("INVALID_INPUT", "quantity must be positive")
	}

	return &SalesReturn{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ReturnNumber:      shared.NewDocumentNumber(shared.PrefixSalesReturn),
		SalesOrderID:      soID,
		CustomerName:      customerName,
		ItemName:          itemName,
		ItemCode:          itemCode,
		Quantity:          quantity,
		Reason:            reason,
		Status:            SalesReturnStatusReceived,
	}, nil
}

// StartInspection moves the return to INSPECTING
func (sr *SalesReturn) StartInspection() error {
	return sr.transition(SalesReturnStatusInspecting)
}

// Restock accepts the goods back into inventory. The caller applies the
// matching stock increment.
func (sr *SalesReturn) Restock() error {
	if err := sr.transition(SalesReturnStatusRestocked); err != nil {
		return err
	}
	sr.AddDomainEvent(NewReturnRestockedEvent(sr))
	return nil
}

// Scrap writes the returned goods off without a stock effect
func (sr *SalesReturn) Scrap() error {
	return sr.transition(SalesReturnStatusScrapped)
}

// Refund settles the return financially
func (sr *SalesReturn) Refund() error {
	if err := sr.transition(SalesReturnStatusRefunded); err != nil {
		return err
	}
	now := time.Now()
	sr.RefundedAt = &now
	return nil
}

func (sr *SalesReturn) transition(target SalesReturnStatus) error {
	if !sr.Status.CanTransitionTo(target) {
		return shared.ErrInvalidState
	}
	sr.Status = target
	sr.UpdatedAt = time.Now()
	return nil
}
