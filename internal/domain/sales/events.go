package sales

import (
	"github.com/shopspring/decimal"

	"github.com/scm/backend/internal/domain/shared"
)

// Event types for the sales domain
const (
	EventSalesOrderCreated = "sales.order.created"
	EventDeliveryShipped   = "sales.delivery.shipped"
	EventReturnRestocked   = "sales.return.restocked"
)

// SalesOrderCreatedEvent is raised when a customer order is taken
type SalesOrderCreatedEvent struct {
	shared.BaseDomainEvent
	OrderNumber  string          `json:"order_number"`
	CustomerName string          `json:"customer_name"`
	NetAmount    decimal.Decimal `json:"net_amount"`
	StockShort   bool            `json:"stock_short"`
}

// NewSalesOrderCreatedEvent creates the event
func NewSalesOrderCreatedEvent(so *SalesOrder) *SalesOrderCreatedEvent {
	return &SalesOrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventSalesOrderCreated, "SalesOrder", so.ID),
		OrderNumber:     so.OrderNumber,
		CustomerName:    so.CustomerName,
		NetAmount:       so.NetAmount,
		StockShort:      so.StockShort,
	}
}

// DeliveryShippedEvent is raised when an outbound shipment is registered
type DeliveryShippedEvent struct {
	shared.BaseDomainEvent
	DeliveryNumber string          `json:"delivery_number"`
	ItemName       string          `json:"item_name"`
	DeliveredQty   decimal.Decimal `json:"delivered_qty"`
}

// NewDeliveryShippedEvent creates the event
func NewDeliveryShippedEvent(d *Delivery) *DeliveryShippedEvent {
	return &DeliveryShippedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventDeliveryShipped, "Delivery", d.ID),
		DeliveryNumber:  d.DeliveryNumber,
		ItemName:        d.ItemName,
		DeliveredQty:    d.DeliveredQty,
	}
}

// ReturnRestockedEvent is raised when a return passes inspection and goes
// back into stock
type ReturnRestockedEvent struct {
	shared.BaseDomainEvent
	ReturnNumber string          `json:"return_number"`
	ItemName     string          `json:"item_name"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// NewReturnRestockedEvent creates the event
func NewReturnRestockedEvent(sr *SalesReturn) *ReturnRestockedEvent {
	return &ReturnRestockedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventReturnRestocked, "SalesReturn", sr.ID),
		ReturnNumber:    sr.ReturnNumber,
		ItemName:        sr.ItemName,
		Quantity:        sr.Quantity,
	}
}
