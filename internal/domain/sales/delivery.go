package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scm/backend/internal/domain/shared"
)

// Delivery is an outbound shipment against a sales order. Registering one
// decrements stock by the delivered quantity.
type Delivery struct {
	shared.BaseAggregateRoot
	DeliveryNumber string          `gorm:"uniqueIndex;size:40;not null"`
	SalesOrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemName       string          `gorm:"size:200;not null"`
	ItemCode       string          `gorm:"size:60;index"`
	PickedQty      decimal.Decimal `gorm:"type:decimal(15,3);not null"`
	PackedQty      decimal.Decimal `gorm:"type:decimal(15,3);not null"`
	DeliveredQty   decimal.Decimal `gorm:"type:decimal(15,3);not null"`
	Carrier        string          `gorm:"size:100"`
	TrackingNumber string          `gorm:"size:100"`
	ShippedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Delivery) TableName() string {
	return "deliveries"
}

// NewDelivery registers an outbound shipment for a sales order
func NewDelivery(so *SalesOrder, pickedQty, packedQty, deliveredQty decimal.Decimal, carrier, trackingNumber string) (*Delivery, error) {
	if !deliveredQty.IsPositive() {
		return nil, shared.NewDomainError("INVALID_INPUT", "delivered quantity must be positive")
	}
	if pickedQty.IsNegative() || packedQty.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "quantities cannot be negative")
	}

	return &Delivery{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		DeliveryNumber:    shared.NewDocumentNumber(shared.PrefixDelivery),
		SalesOrderID:      so.ID,
		ItemName:          so.ItemName,
		ItemCode:          so.ItemCode,
		PickedQty:         pickedQty,
		PackedQty:         packedQty,
		DeliveredQty:      deliveredQty,
		Carrier:           carrier,
		TrackingNumber:    trackingNumber,
		ShippedAt:         time.Now(),
	}, nil
}
