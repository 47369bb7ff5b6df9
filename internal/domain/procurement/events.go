package procurement

import (
	"github.com/shopspring/decimal"

	"github.com/scm/backend/internal/domain/shared"
)

// Event types for the procurement domain
const (
	EventPurchaseRequestCreated = "procurement.purchase_request.created"
	EventPurchaseOrderCreated   = "procurement.purchase_order.created"
	EventPurchaseOrderReceived  = "procurement.purchase_order.received"
)

// PurchaseRequestCreatedEvent is raised when a purchase request is submitted
type PurchaseRequestCreatedEvent struct {
	shared.BaseDomainEvent
	RequestNumber string          `json:"request_number"`
	ItemName      string          `json:"item_name"`
	Quantity      decimal.Decimal `json:"quantity"`
}

// NewPurchaseRequestCreatedEvent creates the event
func NewPurchaseRequestCreatedEvent(pr *PurchaseRequest) *PurchaseRequestCreatedEvent {
	return &PurchaseRequestCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventPurchaseRequestCreated, "PurchaseRequest", pr.ID),
		RequestNumber:   pr.RequestNumber,
		ItemName:        pr.ItemName,
		Quantity:        pr.Quantity,
	}
}

// PurchaseOrderCreatedEvent is raised when an order is placed
type PurchaseOrderCreatedEvent struct {
	shared.BaseDomainEvent
	OrderNumber  string          `json:"order_number"`
	SupplierName string          `json:"supplier_name"`
	ItemName     string          `json:"item_name"`
	OrderedQty   decimal.Decimal `json:"ordered_qty"`
}

// NewPurchaseOrderCreatedEvent creates the event
func NewPurchaseOrderCreatedEvent(po *PurchaseOrder) *PurchaseOrderCreatedEvent {
	return &PurchaseOrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventPurchaseOrderCreated, "PurchaseOrder", po.ID),
		OrderNumber:     po.OrderNumber,
		SupplierName:    po.SupplierName,
		ItemName:        po.ItemName,
		OrderedQty:      po.OrderedQty,
	}
}

// PurchaseOrderReceivedEvent is raised when goods are received against an order
type PurchaseOrderReceivedEvent struct {
	shared.BaseDomainEvent
	OrderNumber  string          `json:"order_number"`
	ReceivedQty  decimal.Decimal `json:"received_qty"`
	RemainingQty decimal.Decimal `json:"remaining_qty"`
	Status       string          `json:"status"`
}

// NewPurchaseOrderReceivedEvent creates the event
func NewPurchaseOrderReceivedEvent(po *PurchaseOrder, receivedQty decimal.Decimal) *PurchaseOrderReceivedEvent {
	return &PurchaseOrderReceivedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventPurchaseOrderReceived, "PurchaseOrder", po.ID),
		OrderNumber:     po.OrderNumber,
		ReceivedQty:     receivedQty,
		RemainingQty:    po.RemainingQty(),
		Status:          po.Status.String(),
	}
}
