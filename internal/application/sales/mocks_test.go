package sales

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/scm/backend/internal/domain/inventory"
	"github.com/scm/backend/internal/domain/sales"
	"github.com/scm/backend/internal/domain/shared"
)

// MockCustomerRepository is a mock implementation of CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByName(ctx context.Context, name string) (*sales.Customer, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Customer, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]sales.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, c *sales.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) SaveWithLock(ctx context.Context, c *sales.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

// MockSalesOrderRepository is a mock implementation of SalesOrderRepository
type MockSalesOrderRepository struct {
	mock.Mock
}

func (m *MockSalesOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.SalesOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.SalesOrder), args.Error(1)
}

func (m *MockSalesOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*sales.SalesOrder, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.SalesOrder), args.Error(1)
}

func (m *MockSalesOrderRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]sales.SalesOrder, error) {
	args := m.Called(ctx, customerID, filter)
	return args.Get(0).([]sales.SalesOrder), args.Error(1)
}

func (m *MockSalesOrderRepository) FindByStatus(ctx context.Context, status sales.SalesOrderStatus, filter shared.Filter) ([]sales.SalesOrder, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).([]sales.SalesOrder), args.Error(1)
}

func (m *MockSalesOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.SalesOrder, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]sales.SalesOrder), args.Error(1)
}

func (m *MockSalesOrderRepository) Save(ctx context.Context, so *sales.SalesOrder) error {
	args := m.Called(ctx, so)
	return args.Error(0)
}

func (m *MockSalesOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockDeliveryRepository is a mock implementation of DeliveryRepository
type MockDeliveryRepository struct {
	mock.Mock
}

func (m *MockDeliveryRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) FindBySalesOrder(ctx context.Context, soID uuid.UUID) ([]sales.Delivery, error) {
	args := m.Called(ctx, soID)
	return args.Get(0).([]sales.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Delivery, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]sales.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) Save(ctx context.Context, d *sales.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

// MockSalesReturnRepository is a mock implementation of SalesReturnRepository
type MockSalesReturnRepository struct {
	mock.Mock
}

func (m *MockSalesReturnRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.SalesReturn, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.SalesReturn), args.Error(1)
}

func (m *MockSalesReturnRepository) FindByStatus(ctx context.Context, status sales.SalesReturnStatus, filter shared.Filter) ([]sales.SalesReturn, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).([]sales.SalesReturn), args.Error(1)
}

func (m *MockSalesReturnRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.SalesReturn, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]sales.SalesReturn), args.Error(1)
}

func (m *MockSalesReturnRepository) Save(ctx context.Context, sr *sales.SalesReturn) error {
	args := m.Called(ctx, sr)
	return args.Error(0)
}

// MockSalesInvoiceRepository is a mock implementation of SalesInvoiceRepository
type MockSalesInvoiceRepository struct {
	mock.Mock
}

func (m *MockSalesInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.SalesInvoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.SalesInvoice), args.Error(1)
}

func (m *MockSalesInvoiceRepository) FindUnpaid(ctx context.Context, filter shared.Filter) ([]sales.SalesInvoice, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]sales.SalesInvoice), args.Error(1)
}

func (m *MockSalesInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.SalesInvoice, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]sales.SalesInvoice), args.Error(1)
}

func (m *MockSalesInvoiceRepository) Save(ctx context.Context, si *sales.SalesInvoice) error {
	args := m.Called(ctx, si)
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
