package procurement

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/scm/backend/internal/domain/inventory"
	"github.com/scm/backend/internal/domain/procurement"
	"github.com/scm/backend/internal/domain/shared"
)

// MockPurchaseRequestRepository is a mock implementation of PurchaseRequestRepository
type MockPurchaseRequestRepository struct {
	mock.Mock
}

func (m *MockPurchaseRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.PurchaseRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.PurchaseRequest), args.Error(1)
}

func (m *MockPurchaseRequestRepository) FindByRequestNumber(ctx context.Context, requestNumber string) (*procurement.PurchaseRequest, error) {
	args := m.Called(ctx, requestNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.PurchaseRequest), args.Error(1)
}

func (m *MockPurchaseRequestRepository) FindAll(ctx context.Context, filter shared.Filter) ([]procurement.PurchaseRequest, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]procurement.PurchaseRequest), args.Error(1)
}

func (m *MockPurchaseRequestRepository) FindByStatus(ctx context.Context, status procurement.PurchaseRequestStatus, filter shared.Filter) ([]procurement.PurchaseRequest, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).([]procurement.PurchaseRequest), args.Error(1)
}

func (m *MockPurchaseRequestRepository) Save(ctx context.Context, pr *procurement.PurchaseRequest) error {
	args := m.Called(ctx, pr)
	return args.Error(0)
}

func (m *MockPurchaseRequestRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockQuotationRepository is a mock implementation of QuotationRepository
type MockQuotationRepository struct {
	mock.Mock
}

func (m *MockQuotationRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.Quotation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.Quotation), args.Error(1)
}

func (m *MockQuotationRepository) FindByPurchaseRequest(ctx context.Context, prID uuid.UUID) ([]procurement.Quotation, error) {
	args := m.Called(ctx, prID)
	return args.Get(0).([]procurement.Quotation), args.Error(1)
}

func (m *MockQuotationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]procurement.Quotation, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]procurement.Quotation), args.Error(1)
}

func (m *MockQuotationRepository) Save(ctx context.Context, q *procurement.Quotation) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

// MockPurchaseOrderRepository is a mock implementation of PurchaseOrderRepository
type MockPurchaseOrderRepository struct {
	mock.Mock
}

func (m *MockPurchaseOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.PurchaseOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*procurement.PurchaseOrder, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]procurement.PurchaseOrder, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]procurement.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) FindByStatus(ctx context.Context, status procurement.PurchaseOrderStatus, filter shared.Filter) ([]procurement.PurchaseOrder, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).([]procurement.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) FindOpen(ctx context.Context, filter shared.Filter) ([]procurement.PurchaseOrder, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]procurement.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) Save(ctx context.Context, po *procurement.PurchaseOrder) error {
	args := m.Called(ctx, po)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) SaveWithLock(ctx context.Context, po *procurement.PurchaseOrder) error {
	args := m.Called(ctx, po)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockGoodsReceiptRepository is a mock implementation of GoodsReceiptRepository
type MockGoodsReceiptRepository struct {
	mock.Mock
}

func (m *MockGoodsReceiptRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.GoodsReceipt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.GoodsReceipt), args.Error(1)
}

func (m *MockGoodsReceiptRepository) FindByPurchaseOrder(ctx context.Context, poID uuid.UUID) ([]procurement.GoodsReceipt, error) {
	args := m.Called(ctx, poID)
	return args.Get(0).([]procurement.GoodsReceipt), args.Error(1)
}

func (m *MockGoodsReceiptRepository) FindAll(ctx context.Context, filter shared.Filter) ([]procurement.GoodsReceipt, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]procurement.GoodsReceipt), args.Error(1)
}

func (m *MockGoodsReceiptRepository) Save(ctx context.Context, gr *procurement.GoodsReceipt) error {
	args := m.Called(ctx, gr)
	return args.Error(0)
}

// MockInventoryItemRepository is a mock implementation of InventoryItemRepository
type MockInventoryItemRepository struct {
	mock.Mock
}

func (m *MockInventoryItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.InventoryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.InventoryItem), args.Error(1)
}

func (m *MockInventoryItemRepository) FindByItemCode(ctx context.Context, itemCode string) (*inventory.InventoryItem, error) {
	args := m.Called(ctx, itemCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.InventoryItem), args.Error(1)
}

func (m *MockInventoryItemRepository) FindByItemName(ctx context.Context, itemName string) (*inventory.InventoryItem, error) {
	args := m.Called(ctx, itemName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.InventoryItem), args.Error(1)
}

func (m *MockInventoryItemRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.InventoryItem, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]inventory.InventoryItem), args.Error(1)
}

func (m *MockInventoryItemRepository) FindWithVariance(ctx context.Context) ([]inventory.InventoryItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]inventory.InventoryItem), args.Error(1)
}

func (m *MockInventoryItemRepository) Save(ctx context.Context, item *inventory.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryItemRepository) SaveWithLock(ctx context.Context, item *inventory.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryItemRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockStockMovementRepository is a mock implementation of StockMovementRepository
type MockStockMovementRepository struct {
	mock.Mock
}

func (m *MockStockMovementRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.StockMovement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.StockMovement), args.Error(1)
}

func (m *MockStockMovementRepository) FindByItemCode(ctx context.Context, itemCode string, filter shared.Filter) ([]inventory.StockMovement, error) {
	args := m.Called(ctx, itemCode, filter)
	return args.Get(0).([]inventory.StockMovement), args.Error(1)
}

func (m *MockStockMovementRepository) FindByReference(ctx context.Context, referenceNumber string) ([]inventory.StockMovement, error) {
	args := m.Called(ctx, referenceNumber)
	return args.Get(0).([]inventory.StockMovement), args.Error(1)
}

func (m *MockStockMovementRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.StockMovement, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]inventory.StockMovement), args.Error(1)
}

func (m *MockStockMovementRepository) Save(ctx context.Context, mv *inventory.StockMovement) error {
	args := m.Called(ctx, mv)
	return args.Error(0)
}

// MockInvoiceVerificationRepository is a mock implementation of InvoiceVerificationRepository
type MockInvoiceVerificationRepository struct {
	mock.Mock
}

func (m *MockInvoiceVerificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.InvoiceVerification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.InvoiceVerification), args.Error(1)
}

func (m *MockInvoiceVerificationRepository) FindByPurchaseOrder(ctx context.Context, poID uuid.UUID) ([]procurement.InvoiceVerification, error) {
	args := m.Called(ctx, poID)
	return args.Get(0).([]procurement.InvoiceVerification), args.Error(1)
}

func (m *MockInvoiceVerificationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]procurement.InvoiceVerification, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]procurement.InvoiceVerification), args.Error(1)
}

func (m *MockInvoiceVerificationRepository) Save(ctx context.Context, iv *procurement.InvoiceVerification) error {
	args := m.Called(ctx, iv)
	return args.Error(0)
}

// MockTaxInvoiceRepository is a mock implementation of TaxInvoiceRepository
type MockTaxInvoiceRepository struct {
	mock.Mock
}

func (m *MockTaxInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.PurchaseTaxInvoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.PurchaseTaxInvoice), args.Error(1)
}

func (m *MockTaxInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]procurement.PurchaseTaxInvoice, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]procurement.PurchaseTaxInvoice), args.Error(1)
}

func (m *MockTaxInvoiceRepository) FindUnpaid(ctx context.Context, filter shared.Filter) ([]procurement.PurchaseTaxInvoice, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]procurement.PurchaseTaxInvoice), args.Error(1)
}

func (m *MockTaxInvoiceRepository) Save(ctx context.Context, ti *procurement.PurchaseTaxInvoice) error {
	args := m.Called(ctx, ti)
	return args.Error(0)
}

// MockPaymentScheduleRepository is a mock implementation of PaymentScheduleRepository
type MockPaymentScheduleRepository struct {
	mock.Mock
}

func (m *MockPaymentScheduleRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.PaymentSchedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.PaymentSchedule), args.Error(1)
}

func (m *MockPaymentScheduleRepository) FindByTaxInvoice(ctx context.Context, tiID uuid.UUID) (*procurement.PaymentSchedule, error) {
	args := m.Called(ctx, tiID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.PaymentSchedule), args.Error(1)
}

func (m *MockPaymentScheduleRepository) FindByStatus(ctx context.Context, status procurement.PaymentStatus, filter shared.Filter) ([]procurement.PaymentSchedule, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).([]procurement.PaymentSchedule), args.Error(1)
}

func (m *MockPaymentScheduleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]procurement.PaymentSchedule, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]procurement.PaymentSchedule), args.Error(1)
}

func (m *MockPaymentScheduleRepository) Save(ctx context.Context, ps *procurement.PaymentSchedule) error {
	args := m.Called(ctx, ps)
	return args.Error(0)
}

// MockSupplierEvaluationRepository is a mock implementation of SupplierEvaluationRepository
type MockSupplierEvaluationRepository struct {
	mock.Mock
}

func (m *MockSupplierEvaluationRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.SupplierEvaluation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.SupplierEvaluation), args.Error(1)
}

func (m *MockSupplierEvaluationRepository) FindBySupplier(ctx context.Context, supplierName string) ([]procurement.SupplierEvaluation, error) {
	args := m.Called(ctx, supplierName)
	return args.Get(0).([]procurement.SupplierEvaluation), args.Error(1)
}

func (m *MockSupplierEvaluationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]procurement.SupplierEvaluation, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]procurement.SupplierEvaluation), args.Error(1)
}

func (m *MockSupplierEvaluationRepository) Save(ctx context.Context, se *procurement.SupplierEvaluation) error {
	args := m.Called(ctx, se)
	return args.Error(0)
}
