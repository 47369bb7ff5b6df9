package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/scm/backend/internal/domain/shared"
)

// MovementType classifies a stock movement journal row
type MovementType string

const (
	MovementTypeReceipt  MovementType = "RECEIPT"
	MovementTypeIssue    MovementType = "ISSUE"
	MovementTypeReturn   MovementType = "RETURN"
	MovementTypeDisposal MovementType = "DISPOSAL"
	MovementTypeTransfer MovementType = "TRANSFER"
	MovementTypeCount    MovementType = "COUNT"
)

// IsValid checks if the movement type is valid
func (m MovementType) IsValid() bool {
	switch m {
	case MovementTypeReceipt, MovementTypeIssue, MovementTypeReturn,
		MovementTypeDisposal, MovementTypeTransfer, MovementTypeCount:
		return true
	}
	return false
}

// String returns the string representation
func (m MovementType) String() string {
	return string(m)
}

// StockMovement is an append-only journal row recording one stock change.
// ReferenceNumber points at the document that caused it (GR, DL, RT, ...).
type StockMovement struct {
	shared.BaseAggregateRoot
	MovementNumber  string          `gorm:"uniqueIndex;size:40;not null"`
	MovementType    MovementType    `gorm:"size:20;not null;index"`
	ItemCode        string          `gorm:"size:60;not null;index"`
	ItemName        string          `gorm:"size:200"`
	Quantity        decimal.Decimal `gorm:"type:decimal(15,3);not null"`
	FromLocation    string          `gorm:"size:100"`
	ToLocation      string          `gorm:"size:100"`
	ReferenceNumber string          `gorm:"size:40;index"`
	MovedAt         time.Time       `gorm:"not null"`
	Note            string          `gorm:"size:500"`
}

// TableName returns the table name for GORM
func (StockMovement) TableName() string {
	return "stock_movements"
}

// NewStockMovement records one journal row
func NewStockMovement(movementType MovementType, itemCode, itemName string, qty decimal.Decimal, fromLocation, toLocation, referenceNumber string) (*StockMovement, error) {
	if !movementType.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "invalid movement type")
	}
	if itemCode == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "item code is required")
	}
	if !qty.IsPositive() {
		return nil, shared.NewDomainError("INVALID_INPUT", "quantity must be positive")
	}

	return &StockMovement{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		MovementNumber:    shared.NewDocumentNumber(shared.PrefixStockMovement),
		MovementType:      movementType,
		ItemCode:          itemCode,
		ItemName:          itemName,
		Quantity:          qty,
		FromLocation:      fromLocation,
		ToLocation:        toLocation,
		ReferenceNumber:   referenceNumber,
		MovedAt:           time.Now(),
	}, nil
}
