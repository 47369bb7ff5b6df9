package sales

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/scm/backend/internal/domain/sales"
	"github.com/scm/backend/internal/domain/shared"
)

func newFulfillmentFixture() (*FulfillmentService, *MockSalesOrderRepository, *MockDeliveryRepository, *MockSalesReturnRepository, *MockSalesInvoiceRepository, *MockInventoryItemRepository, *MockStockMovementRepository) {
	orderRepo := new(MockSalesOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	returnRepo := new(MockSalesReturnRepository)
	invoiceRepo := new(MockSalesInvoiceRepository)
	itemRepo := new(MockInventoryItemRepository)
	movementRepo := new(MockStockMovementRepository)
	service := NewFulfillmentService(shared.NopTxManager{}, orderRepo, deliveryRepo, returnRepo, invoiceRepo, itemRepo, movementRepo, zap.NewNop())
	return service, orderRepo, deliveryRepo, returnRepo, invoiceRepo, itemRepo, movementRepo
}

func newInstructedOrder(t *testing.T) *sales.SalesOrder {
	t.Helper()
	customer := newTestCustomer(t, 0)
	so, err := sales.NewSalesOrder(customer, "완제품A", "FG-001",
		decimal.NewFromInt(30), decimal.NewFromInt(10000), decimal.Zero)
	require.NoError(t, err)
	require.NoError(t, so.InstructShipment())
	return so
}

func TestFulfillmentService_RegisterDelivery_DecrementsStock(t *testing.T) {
	service, orderRepo, deliveryRepo, _, _, itemRepo, movementRepo := newFulfillmentFixture()
	ctx := context.Background()
	so := newInstructedOrder(t)
	item := newStockedItem(t, 100)

	orderRepo.On("FindByID", ctx, so.ID).Return(so, nil)
	itemRepo.On("FindByItemCode", ctx, "FG-001").Return(item, nil)
	deliveryRepo.On("Save", ctx, mock.AnythingOfType("*sales.Delivery")).Return(nil)
	orderRepo.On("Save", ctx, so).Return(nil)
	itemRepo.On("SaveWithLock", ctx, item).Return(nil)
	movementRepo.On("Save", ctx, mock.AnythingOfType("*inventory.StockMovement")).Return(nil)

	d, err := service.RegisterDelivery(ctx, RegisterDeliveryRequest{
		SalesOrderID: so.ID,
		PickedQty:    decimal.NewFromInt(30),
		PackedQty:    decimal.NewFromInt(30),
		DeliveredQty: decimal.NewFromInt(30),
		Carrier:      "한진택배",
	})

	require.NoError(t, err)
	assert.Equal(t, sales.SalesOrderStatusShipping, so.Status)
	assert.True(t, item.StockQty.Equal(decimal.NewFromInt(70)))
	assert.NotEmpty(t, d.DeliveryNumber)
	itemRepo.AssertExpectations(t)
	movementRepo.AssertExpectations(t)
}

func TestFulfillmentService_RegisterDelivery_OrderNotShippable(t *testing.T) {
	service, orderRepo, _, _, _, _, _ := newFulfillmentFixture()
	ctx := context.Background()
	customer := newTestCustomer(t, 0)
	so, err := sales.NewSalesOrder(customer, "완제품A", "FG-001",
		decimal.NewFromInt(30), decimal.NewFromInt(10000), decimal.Zero)
	require.NoError(t, err)
	require.NoError(t, so.Cancel())

	orderRepo.On("FindByID", ctx, so.ID).Return(so, nil)

	_, err = service.RegisterDelivery(ctx, RegisterDeliveryRequest{
		SalesOrderID: so.ID,
		DeliveredQty: decimal.NewFromInt(30),
	})
	assert.ErrorIs(t, err, shared.ErrInvalidState)
}

func TestFulfillmentService_RestockReturn_IncrementsStock(t *testing.T) {
	service, _, _, returnRepo, _, itemRepo, movementRepo := newFulfillmentFixture()
	ctx := context.Background()
	item := newStockedItem(t, 70)

	sr, err := sales.NewSalesReturn(nil, "서울상사", "완제품A", "FG-001", decimal.NewFromInt(10), "단순변심")
	require.NoError(t, err)
	require.NoError(t, sr.StartInspection())

	returnRepo.On("FindByID", ctx, sr.ID).Return(sr, nil)
	itemRepo.On("FindByItemCode", ctx, "FG-001").Return(item, nil)
	returnRepo.On("Save", ctx, sr).Return(nil)
	itemRepo.On("SaveWithLock", ctx, item).Return(nil)
	movementRepo.On("Save", ctx, mock.AnythingOfType("*inventory.StockMovement")).Return(nil)

	restocked, err := service.RestockReturn(ctx, sr.ID)

	require.NoError(t, err)
	assert.Equal(t, sales.SalesReturnStatusRestocked, restocked.Status)
	assert.True(t, item.StockQty.Equal(decimal.NewFromInt(80)))
	movementRepo.AssertExpectations(t)
}

func TestFulfillmentService_RestockReturn_RequiresInspection(t *testing.T) {
	service, _, _, returnRepo, _, _, _ := newFulfillmentFixture()
	ctx := context.Background()

	sr, err := sales.NewSalesReturn(nil, "서울상사", "완제품A", "FG-001", decimal.NewFromInt(10), "단순변심")
	require.NoError(t, err)

	returnRepo.On("FindByID", ctx, sr.ID).Return(sr, nil)

	_, err = service.RestockReturn(ctx, sr.ID)
	assert.ErrorIs(t, err, shared.ErrInvalidState)
}

func TestFulfillmentService_ScrapThenRefund(t *testing.T) {
	service, _, _, returnRepo, _, _, _ := newFulfillmentFixture()
	ctx := context.Background()

	sr, err := sales.NewSalesReturn(nil, "서울상사", "완제품A", "FG-001", decimal.NewFromInt(3), "파손")
	require.NoError(t, err)
	require.NoError(t, sr.StartInspection())

	returnRepo.On("FindByID", ctx, sr.ID).Return(sr, nil)
	returnRepo.On("Save", ctx, sr).Return(nil)

	scrapped, err := service.ScrapReturn(ctx, sr.ID)
	require.NoError(t, err)
	assert.Equal(t, sales.SalesReturnStatusScrapped, scrapped.Status)

	refunded, err := service.RefundReturn(ctx, sr.ID)
	require.NoError(t, err)
	assert.Equal(t, sales.SalesReturnStatusRefunded, refunded.Status)
	require.NotNil(t, refunded.RefundedAt)
}

func TestFulfillmentService_RegisterSalesInvoice(t *testing.T) {
	service, _, _, _, invoiceRepo, _, _ := newFulfillmentFixture()
	ctx := context.Background()

	invoiceRepo.On("Save", ctx, mock.AnythingOfType("*sales.SalesInvoice")).Return(nil)

	si, err := service.RegisterSalesInvoice(ctx, RegisterSalesInvoiceRequest{
		CustomerName: "서울상사",
		SupplyAmount: decimal.NewFromInt(300000),
		TaxRate:      decimal.NewFromInt(10),
	})

	require.NoError(t, err)
	assert.True(t, si.TaxAmount.Equal(decimal.NewFromInt(30000)))
	assert.True(t, si.TotalAmount.Equal(decimal.NewFromInt(330000)))
	assert.False(t, si.Paid)
}
