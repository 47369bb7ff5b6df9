package procurement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scm/backend/internal/domain/procurement"
)

// CreatePurchaseRequestRequest is the payload for submitting a purchase request
type CreatePurchaseRequestRequest struct {
	ItemName   string          `json:"item_name" binding:"required"`
	ItemCode   string          `json:"item_code"`
	Quantity   decimal.Decimal `json:"quantity" binding:"required"`
	Unit       string          `json:"unit"`
	Requester  string          `json:"requester"`
	Department string          `json:"department"`
	Reason     string          `json:"reason"`
}

// CreateQuotationRequest is the payload for registering a supplier quotation
type CreateQuotationRequest struct {
	PurchaseRequestID *uuid.UUID      `json:"purchase_request_id"`
	SupplierName      string          `json:"supplier_name" binding:"required"`
	ItemName          string          `json:"item_name" binding:"required"`
	Quantity          decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice         decimal.Decimal `json:"unit_price" binding:"required"`
	LeadTimeDays      int             `json:"lead_time_days"`
}

// CreatePurchaseOrderRequest is the payload for placing an order
type CreatePurchaseOrderRequest struct {
	QuotationID  *uuid.UUID      `json:"quotation_id"`
	SupplierName string          `json:"supplier_name"`
	ItemName     string          `json:"item_name"`
	ItemCode     string          `json:"item_code"`
	OrderedQty   decimal.Decimal `json:"ordered_qty"`
	Unit         string          `json:"unit"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
}

// RecordGoodsReceiptRequest is the payload for posting a goods receipt
type RecordGoodsReceiptRequest struct {
	PurchaseOrderID uuid.UUID       `json:"purchase_order_id" binding:"required"`
	ReceivedQty     decimal.Decimal `json:"received_qty" binding:"required"`
	RejectedQty     decimal.Decimal `json:"rejected_qty"`
	Warehouse       string          `json:"warehouse"`
	Inspector       string          `json:"inspector"`
}

// GoodsReceiptResponse reports the outcome of a posted receipt
type GoodsReceiptResponse struct {
	ReceiptNumber string          `json:"receipt_number"`
	OrderNumber   string          `json:"order_number"`
	ReceivedQty   decimal.Decimal `json:"received_qty"`
	RejectedQty   decimal.Decimal `json:"rejected_qty"`
	RemainingQty  decimal.Decimal `json:"remaining_qty"`
	OrderStatus   string          `json:"order_status"`
	StockQty      decimal.Decimal `json:"stock_qty"`
}

// VerifyInvoiceRequest is the payload for a three-way match
type VerifyInvoiceRequest struct {
	PurchaseOrderID uuid.UUID       `json:"purchase_order_id" binding:"required"`
	GoodsReceiptID  *uuid.UUID      `json:"goods_receipt_id"`
	InvoiceAmount   decimal.Decimal `json:"invoice_amount" binding:"required"`
}

// DecideVerificationRequest records the reviewer's disposition
type DecideVerificationRequest struct {
	Disposition string `json:"disposition" binding:"required"`
	Reviewer    string `json:"reviewer"`
}

// RegisterTaxInvoiceRequest is the payload for registering a purchase tax invoice
type RegisterTaxInvoiceRequest struct {
	PurchaseOrderID *uuid.UUID      `json:"purchase_order_id"`
	SupplierName    string          `json:"supplier_name" binding:"required"`
	SupplyAmount    decimal.Decimal `json:"supply_amount" binding:"required"`
	TaxRate         decimal.Decimal `json:"tax_rate"`
	IssueDate       time.Time       `json:"issue_date"`
	PaymentTerms    string          `json:"payment_terms"`
}

// RegisterTaxInvoiceResponse returns the invoice with its auto-created schedule
type RegisterTaxInvoiceResponse struct {
	TaxInvoice      *procurement.PurchaseTaxInvoice `json:"tax_invoice"`
	PaymentSchedule *procurement.PaymentSchedule    `json:"payment_schedule"`
}

// EvaluateSupplierRequest is the payload for a supplier evaluation
type EvaluateSupplierRequest struct {
	SupplierName  string `json:"supplier_name" binding:"required"`
	Period        string `json:"period"`
	QualityScore  int    `json:"quality_score" binding:"min=0,max=25"`
	DeliveryScore int    `json:"delivery_score" binding:"min=0,max=25"`
	PriceScore    int    `json:"price_score" binding:"min=0,max=25"`
	ServiceScore  int    `json:"service_score" binding:"min=0,max=25"`
	Evaluator     string `json:"evaluator"`
}
