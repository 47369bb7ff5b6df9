package procurement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scm/backend/internal/domain/shared"
)

// PurchaseOrder is the procurement aggregate the receiving flow reconciles
// against. The receipt summary (ordered/received/remaining) lives on the
// aggregate itself so a receipt and its status effect commit together.
type PurchaseOrder struct {
	shared.BaseAggregateRoot
	OrderNumber       string          `gorm:"uniqueIndex;size:40;not null"`
	QuotationID       *uuid.UUID      `gorm:"type:uuid;index"`
	PurchaseRequestID *uuid.UUID      `gorm:"type:uuid;index"`
	SupplierName      string          `gorm:"size:200;not null"`
	ItemName          string          `gorm:"size:200;not null"`
	ItemCode          string          `gorm:"size:60;index"`
	OrderedQty        decimal.Decimal `gorm:"type:decimal(15,3);not null"`
	ReceivedQty       decimal.Decimal `gorm:"type:decimal(15,3);not null;default:0"`
	Unit              string          `gorm:"size:20"`
	UnitPrice         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Currency          string          `gorm:"size:3;not null;default:KRW"`
	DeliveryDate      *time.Time
	Status            PurchaseOrderStatus `gorm:"size:30;not null;index"`
}

// TableName returns the table name for GORM
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// NewPurchaseOrder creates an order in ORDERED state
func NewPurchaseOrder(supplierName, itemName, itemCode string, orderedQty, unitPrice decimal.Decimal, unit string) (*PurchaseOrder, error) {
	if supplierName == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "supplier name is required")
	}
	if itemName == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "item name is required")
	}
	if !orderedQty.IsPositive() {
		return nil, shared.NewDomainError("INVALID_INPUT", "ordered quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "unit price cannot be negative")
	}

	po := &PurchaseOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       shared.NewDocumentNumber(shared.PrefixPurchaseOrder),
		SupplierName:      supplierName,
		ItemName:          itemName,
		ItemCode:          itemCode,
		OrderedQty:        orderedQty,
		ReceivedQty:       decimal.Zero,
		Unit:              unit,
		UnitPrice:         unitPrice,
		Currency:          "KRW",
		Status:            PurchaseOrderStatusOrdered,
	}

	po.AddDomainEvent(NewPurchaseOrderCreatedEvent(po))
	return po, nil
}

// FromQuotation builds an order sourced from a selected quotation,
// carrying the document links back to the quotation and its request.
func FromQuotation(q *Quotation, itemCode, unit string) (*PurchaseOrder, error) {
	if q.Status != QuotationStatusSelected {
		return nil, shared.ErrInvalidState
	}
	po, err := NewPurchaseOrder(q.SupplierName, q.ItemName, itemCode, q.Quantity, q.UnitPrice, unit)
	if err != nil {
		return nil, err
	}
	qID := q.ID
	po.QuotationID = &qID
	po.PurchaseRequestID = q.PurchaseRequestID
	return po, nil
}

// RemainingQty returns the open quantity, clamped at zero.
// Over-receipt never drives it negative.
func (po *PurchaseOrder) RemainingQty() decimal.Decimal {
	remaining := po.OrderedQty.Sub(po.ReceivedQty)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// TotalAmount returns ordered quantity x unit price
func (po *PurchaseOrder) TotalAmount() decimal.Decimal {
	return po.OrderedQty.Mul(po.UnitPrice)
}

// ApplyReceipt records a received quantity against the order and moves the
// status to PARTIALLY_DELIVERED or FULLY_RECEIVED. This is the only path to
// FULLY_RECEIVED. Receiving against a closed order fails.
func (po *PurchaseOrder) ApplyReceipt(receivedQty decimal.Decimal) error {
	if receivedQty.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "received quantity cannot be negative")
	}
	if !po.Status.CanReceive() {
		return shared.ErrInvalidState
	}

	po.ReceivedQty = po.ReceivedQty.Add(receivedQty)
	if po.RemainingQty().IsZero() {
		po.Status = PurchaseOrderStatusFullyReceived
	} else {
		po.Status = PurchaseOrderStatusPartiallyDelivered
	}
	po.UpdatedAt = time.Now()

	po.AddDomainEvent(NewPurchaseOrderReceivedEvent(po, receivedQty))
	return nil
}

// Cancel cancels an order before any receipt has been applied
func (po *PurchaseOrder) Cancel() error {
	if po.Status != PurchaseOrderStatusOrdered {
		return shared.ErrInvalidState
	}
	po.Status = PurchaseOrderStatusCancelled
	po.UpdatedAt = time.Now()
	return nil
}

// IsClosed returns true when no further receiving is possible
func (po *PurchaseOrder) IsClosed() bool {
	return !po.Status.CanReceive()
}
