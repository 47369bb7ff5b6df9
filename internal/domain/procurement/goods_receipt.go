package procurement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scm/backend/internal/domain/shared"
)

// GoodsReceipt records one physical receipt against a purchase order.
// Receipts are immutable events: posting the same quantities twice means two
// deliveries arrived, so the operation is deliberately not idempotent.
type GoodsReceipt struct {
	shared.BaseAggregateRoot
	ReceiptNumber   string          `gorm:"uniqueIndex;size:40;not null"`
	PurchaseOrderID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemName        string          `gorm:"size:200;not null"`
	ItemCode        string          `gorm:"size:60;index"`
	ReceivedQty     decimal.Decimal `gorm:"type:decimal(15,3);not null"`
	RejectedQty     decimal.Decimal `gorm:"type:decimal(15,3);not null;default:0"`
	Warehouse       string          `gorm:"size:100"`
	Inspector       string          `gorm:"size:100"`
	ReceivedAt      time.Time       `gorm:"not null"`
	Note            string          `gorm:"size:500"`
}

// TableName returns the table name for GORM
func (GoodsReceipt) TableName() string {
	return "goods_receipts"
}

// NewGoodsReceipt creates a receipt event for a purchase order
func NewGoodsReceipt(po *PurchaseOrder, receivedQty, rejectedQty decimal.Decimal, warehouse, inspector string) (*GoodsReceipt, error) {
	if !receivedQty.IsPositive() {
		return nil, shared.NewDomainError("INVALID_INPUT", "received quantity must be positive")
	}
	if rejectedQty.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "rejected quantity cannot be negative")
	}

	return &GoodsReceipt{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ReceiptNumber:     shared.NewDocumentNumber(shared.PrefixGoodsReceipt),
		PurchaseOrderID:   po.ID,
		ItemName:          po.ItemName,
		ItemCode:          po.ItemCode,
		ReceivedQty:       receivedQty,
		RejectedQty:       rejectedQty,
		Warehouse:         warehouse,
		Inspector:         inspector,
		ReceivedAt:        time.Now(),
	}, nil
}

// NetStockQty returns the quantity that actually enters stock:
// received minus rejected.
func (gr *GoodsReceipt) NetStockQty() decimal.Decimal {
	return gr.ReceivedQty.Sub(gr.RejectedQty)
}
