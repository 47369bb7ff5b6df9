package procurement

import (
	"context"

	"github.com/google/uuid"

	"github.com/scm/backend/internal/domain/shared"
)

// PurchaseRequestRepository defines the interface for purchase request persistence
type PurchaseRequestRepository interface {
	// FindByID finds a purchase request by ID
	FindByID(ctx context.Context, id uuid.UUID) (*PurchaseRequest, error)

	// FindByRequestNumber finds a purchase request by document number
	FindByRequestNumber(ctx context.Context, requestNumber string) (*PurchaseRequest, error)

	// FindAll lists purchase requests with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]PurchaseRequest, error)

	// FindByStatus lists purchase requests in the given status
	FindByStatus(ctx context.Context, status PurchaseRequestStatus, filter shared.Filter) ([]PurchaseRequest, error)

	// Save creates or updates a purchase request
	Save(ctx context.Context, pr *PurchaseRequest) error

	// Count counts purchase requests matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// QuotationRepository defines the interface for quotation persistence
type QuotationRepository interface {
	// FindByID finds a quotation by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Quotation, error)

	// FindByPurchaseRequest lists quotations collected for a purchase request
	FindByPurchaseRequest(ctx context.Context, prID uuid.UUID) ([]Quotation, error)

	// FindAll lists quotations with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]Quotation, error)

	// Save creates or updates a quotation
	Save(ctx context.Context, q *Quotation) error
}

// PurchaseOrderRepository defines the interface for purchase order persistence
type PurchaseOrderRepository interface {
	// FindByID finds a purchase order by ID
	FindByID(ctx context.Context, id uuid.UUID) (*PurchaseOrder, error)

	// FindByOrderNumber finds a purchase order by document number
	FindByOrderNumber(ctx context.Context, orderNumber string) (*PurchaseOrder, error)

	// FindAll lists purchase orders with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]PurchaseOrder, error)

	// FindByStatus lists purchase orders in the given status
	FindByStatus(ctx context.Context, status PurchaseOrderStatus, filter shared.Filter) ([]PurchaseOrder, error)

	// FindOpen lists orders that can still receive goods
	FindOpen(ctx context.Context, filter shared.Filter) ([]PurchaseOrder, error)

	// Save creates or updates a purchase order
	Save(ctx context.Context, po *PurchaseOrder) error

	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, po *PurchaseOrder) error

	// Count counts purchase orders matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// GoodsReceiptRepository defines the interface for goods receipt persistence
type GoodsReceiptRepository interface {
	// FindByID finds a goods receipt by ID
	FindByID(ctx context.Context, id uuid.UUID) (*GoodsReceipt, error)

	// FindByPurchaseOrder lists all receipts posted against an order
	FindByPurchaseOrder(ctx context.Context, poID uuid.UUID) ([]GoodsReceipt, error)

	// FindAll lists goods receipts with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]GoodsReceipt, error)

	// Save persists a goods receipt
	Save(ctx context.Context, gr *GoodsReceipt) error
}

// InvoiceVerificationRepository defines the interface for verification persistence
type InvoiceVerificationRepository interface {
	// FindByID finds a verification by ID
	FindByID(ctx context.Context, id uuid.UUID) (*InvoiceVerification, error)

	// FindByPurchaseOrder lists verifications for an order
	FindByPurchaseOrder(ctx context.Context, poID uuid.UUID) ([]InvoiceVerification, error)

	// FindAll lists verifications with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]InvoiceVerification, error)

	// Save creates or updates a verification
	Save(ctx context.Context, iv *InvoiceVerification) error
}

// TaxInvoiceRepository defines the interface for purchase tax invoice persistence
type TaxInvoiceRepository interface {
	// FindByID finds a tax invoice by ID
	FindByID(ctx context.Context, id uuid.UUID) (*PurchaseTaxInvoice, error)

	// FindAll lists tax invoices with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]PurchaseTaxInvoice, error)

	// FindUnpaid lists tax invoices not yet settled
	FindUnpaid(ctx context.Context, filter shared.Filter) ([]PurchaseTaxInvoice, error)

	// Save creates or updates a tax invoice
	Save(ctx context.Context, ti *PurchaseTaxInvoice) error
}

// PaymentScheduleRepository defines the interface for payment schedule persistence
type PaymentScheduleRepository interface {
	// FindByID finds a payment schedule by ID
	FindByID(ctx context.Context, id uuid.UUID) (*PaymentSchedule, error)

	// FindByTaxInvoice finds the schedule created for a tax invoice
	FindByTaxInvoice(ctx context.Context, tiID uuid.UUID) (*PaymentSchedule, error)

	// FindByStatus lists schedules in the given status
	FindByStatus(ctx context.Context, status PaymentStatus, filter shared.Filter) ([]PaymentSchedule, error)

	// FindAll lists payment schedules with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]PaymentSchedule, error)

	// Save creates or updates a payment schedule
	Save(ctx context.Context, ps *PaymentSchedule) error
}

// SupplierEvaluationRepository defines the interface for evaluation persistence
type SupplierEvaluationRepository interface {
	// FindByID finds an evaluation by ID
	FindByID(ctx context.Context, id uuid.UUID) (*SupplierEvaluation, error)

	// FindBySupplier lists evaluations recorded for a supplier
	FindBySupplier(ctx context.Context, supplierName string) ([]SupplierEvaluation, error)

	// FindAll lists evaluations with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]SupplierEvaluation, error)

	// Save creates or updates an evaluation
	Save(ctx context.Context, se *SupplierEvaluation) error
}
