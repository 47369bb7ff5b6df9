package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateCustomerRequest is the payload for registering a customer
type CreateCustomerRequest struct {
	Name         string          `json:"name" binding:"required"`
	Contact      string          `json:"contact"`
	PaymentTerms string          `json:"payment_terms"`
	CreditLimit  decimal.Decimal `json:"credit_limit"`
}

// CreateSalesOrderRequest is the payload for receiving a customer order
type CreateSalesOrderRequest struct {
	CustomerID  uuid.UUID       `json:"customer_id" binding:"required"`
	ItemName    string          `json:"item_name" binding:"required"`
	ItemCode    string          `json:"item_code"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price" binding:"required"`
	DiscountPct decimal.Decimal `json:"discount_pct"`
}

// SalesOrderResponse reports the created order with the credit position
type SalesOrderResponse struct {
	OrderNumber     string          `json:"order_number"`
	CustomerName    string          `json:"customer_name"`
	NetAmount       decimal.Decimal `json:"net_amount"`
	StockShort      bool            `json:"stock_short"`
	Status          string          `json:"status"`
	RemainingCredit decimal.Decimal `json:"remaining_credit"`
}

// RegisterDeliveryRequest is the payload for an outbound shipment
type RegisterDeliveryRequest struct {
	SalesOrderID   uuid.UUID       `json:"sales_order_id" binding:"required"`
	PickedQty      decimal.Decimal `json:"picked_qty"`
	PackedQty      decimal.Decimal `json:"packed_qty"`
	DeliveredQty   decimal.Decimal `json:"delivered_qty" binding:"required"`
	Carrier        string          `json:"carrier"`
	TrackingNumber string          `json:"tracking_number"`
}

// CreateSalesReturnRequest is the payload for accepting a customer return
type CreateSalesReturnRequest struct {
	SalesOrderID *uuid.UUID      `json:"sales_order_id"`
	CustomerName string          `json:"customer_name" binding:"required"`
	ItemName     string          `json:"item_name" binding:"required"`
	ItemCode     string          `json:"item_code"`
	Quantity     decimal.Decimal `json:"quantity" binding:"required"`
	Reason       string          `json:"reason"`
}

// RegisterSalesInvoiceRequest is the payload for issuing a sales tax invoice
type RegisterSalesInvoiceRequest struct {
	SalesOrderID *uuid.UUID      `json:"sales_order_id"`
	CustomerName string          `json:"customer_name" binding:"required"`
	SupplyAmount decimal.Decimal `json:"supply_amount" binding:"required"`
	TaxRate      decimal.Decimal `json:"tax_rate"`
	IssueDate    time.Time       `json:"issue_date"`
}
