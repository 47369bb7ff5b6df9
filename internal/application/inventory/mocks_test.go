package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/scm/backend/internal/domain/inventory"
	"github.com/scm/backend/internal/domain/shared"
)

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

// MockDisposalRepository is a mock implementation of DisposalRepository
type MockDisposalRepository struct {
	mock.Mock
}

func (m *MockDisposalRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Disposal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Disposal), args.Error(1)
}

func (m *MockDisposalRepository) FindByStatus(ctx context.Context, status inventory.DisposalStatus, filter shared.Filter) ([]inventory.Disposal, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).([]inventory.Disposal), args.Error(1)
}

func (m *MockDisposalRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Disposal, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]inventory.Disposal), args.Error(1)
}

func (m *MockDisposalRepository) Save(ctx context.Context, d *inventory.Disposal) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
