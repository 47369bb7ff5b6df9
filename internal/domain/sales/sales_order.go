package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scm/backend/internal/domain/shared"
)

// SalesOrder is a customer order. The net amount books against the customer's
// credit account at creation; cancellation does not give it back (a manual
// credit adjustment handles disputes).
type SalesOrder struct {
	shared.BaseAggregateRoot
	OrderNumber  string          `gorm:"uniqueIndex;size:40;not null"`
	CustomerID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	CustomerName string          `gorm:"size:200;not null"`
	ItemName     string          `gorm:"size:200;not null"`
	ItemCode     string          `gorm:"size:60;index"`
	Quantity     decimal.Decimal `gorm:"type:decimal(15,3);not null"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DiscountPct  decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	NetAmount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	RequestedAt  *time.Time
	StockShort   bool             `gorm:"not null;default:false"`
	Status       SalesOrderStatus `gorm:"size:30;not null;index"`
}

// TableName returns the table name for GORM
func (SalesOrder) TableName() string {
	return "sales_orders"
}

// NewSalesOrder creates an order in RECEIVED state. The availability check
// result is advisory only; a short stock position flags the order but does
// not block it.
func NewSalesOrder(customer *Customer, itemName, itemCode string, quantity, unitPrice, discountPct decimal.Decimal) (*SalesOrder, error) {
	if itemName == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "item name is required")
	}
	if !quantity.IsPositive() {
		return nil, shared.NewDomainError("INVALID_INPUT", "quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "unit price cannot be negative")
	}
	if discountPct.IsNegative() || discountPct.GreaterThan(decimal.NewFromInt(100)) {
		return nil, shared.NewDomainError("INVALID_INPUT", "discount must be between 0 and 100")
	}

	so := &SalesOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       shared.NewDocumentNumber(shared.PrefixSalesOrder),
		CustomerID:        customer.ID,
		CustomerName:      customer.Name,
		ItemName:          itemName,
		ItemCode:          itemCode,
		Quantity:          quantity,
		UnitPrice:         unitPrice,
		DiscountPct:       discountPct,
		NetAmount:         NetOrderAmount(quantity, unitPrice, discountPct),
		Status:            SalesOrderStatusReceived,
	}

	so.AddDomainEvent(NewSalesOrderCreatedEvent(so))
	return so, nil
}

// NetOrderAmount returns qty x unitPrice x (1 - discount%/100)
func NetOrderAmount(quantity, unitPrice, discountPct decimal.Decimal) decimal.Decimal {
	gross := quantity.Mul(unitPrice)
	return gross.Sub(gross.Mul(discountPct).Div(decimal.NewFromInt(100)))
}

// FlagStockShort records that available stock did not cover the order at
// creation time
func (so *SalesOrder) FlagStockShort() {
	so.StockShort = true
}

// InstructShipment moves the order to SHIP_INSTRUCTED
func (so *SalesOrder) InstructShipment() error {
	return so.transition(SalesOrderStatusShipInstructed)
}

// StartShipping moves the order to SHIPPING once a delivery is registered
func (so *SalesOrder) StartShipping() error {
	return so.transition(SalesOrderStatusShipping)
}

// CompleteDelivery moves the order to DELIVERED
func (so *SalesOrder) CompleteDelivery() error {
	return so.transition(SalesOrderStatusDelivered)
}

// Cancel cancels the order. The credit consumed at creation stays booked.
func (so *SalesOrder) Cancel() error {
	return so.transition(SalesOrderStatusCancelled)
}

func (so *SalesOrder) transition(target SalesOrderStatus) error {
	if !so.Status.CanTransitionTo(target) {
		return shared.ErrInvalidState
	}
	so.Status = target
	so.UpdatedAt = time.Now()
	return nil
}
