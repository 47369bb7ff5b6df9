package procurement

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/scm/backend/internal/domain/inventory"
	"github.com/scm/backend/internal/domain/procurement"
	"github.com/scm/backend/internal/domain/shared"
)

// ReceivingService posts goods receipts against purchase orders. One receipt
// touches four tables (receipt, order summary, stock, movement journal);
// the whole chain runs in a single transaction so a crash can never leave a
// receipt recorded without its stock effect.
type ReceivingService struct {
	tx             shared.TxManager
	orderRepo      procurement.PurchaseOrderRepository
	receiptRepo    procurement.GoodsReceiptRepository
	itemRepo       inventory.InventoryItemRepository
	movementRepo   inventory.StockMovementRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewReceivingService creates a new ReceivingService
func NewReceivingService(
	tx shared.TxManager,
	orderRepo procurement.PurchaseOrderRepository,
	receiptRepo procurement.GoodsReceiptRepository,
	itemRepo inventory.InventoryItemRepository,
	movementRepo inventory.StockMovementRepository,
	logger *zap.Logger,
) *ReceivingService {
	return &ReceivingService{
		tx:           tx,
		orderRepo:    orderRepo,
		receiptRepo:  receiptRepo,
		itemRepo:     itemRepo,
		movementRepo: movementRepo,
		logger:       logger,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *ReceivingService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// RecordGoodsReceipt posts one physical receipt: creates the receipt event,
// rolls the ordered/received/remaining summary on the order, flips the order
// status, and books the net quantity (received minus rejected) into stock.
// Deliberately not idempotent: the same quantities twice means two
// deliveries arrived.
func (s *ReceivingService) RecordGoodsReceipt(ctx context.Context, req RecordGoodsReceiptRequest) (*GoodsReceiptResponse, error) {
	var resp *GoodsReceiptResponse

	err := s.tx.Do(ctx, func(ctx context.Context) error {
		po, err := s.orderRepo.FindByID(ctx, req.PurchaseOrderID)
		if err != nil {
			return err
		}

		gr, err := procurement.NewGoodsReceipt(po, req.ReceivedQty, req.RejectedQty, req.Warehouse, req.Inspector)
		if err != nil {
			return err
		}

		if err := po.ApplyReceipt(req.ReceivedQty); err != nil {
			return err
		}

		if err := s.receiptRepo.Save(ctx, gr); err != nil {
			return err
		}
		if err := s.orderRepo.SaveWithLock(ctx, po); err != nil {
			return err
		}

		item, err := s.upsertStock(ctx, po, gr)
		if err != nil {
			return err
		}

		movement, err := inventory.NewStockMovement(inventory.MovementTypeReceipt,
			item.ItemCode, item.ItemName, gr.NetStockQty(), po.SupplierName, gr.Warehouse, gr.ReceiptNumber)
		if err != nil {
			return err
		}
		if err := s.movementRepo.Save(ctx, movement); err != nil {
			return err
		}

		s.publishEvents(po)
		resp = &GoodsReceiptResponse{
			ReceiptNumber: gr.ReceiptNumber,
			OrderNumber:   po.OrderNumber,
			ReceivedQty:   gr.ReceivedQty,
			RejectedQty:   gr.RejectedQty,
			RemainingQty:  po.RemainingQty(),
			OrderStatus:   po.Status.String(),
			StockQty:      item.StockQty,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("goods receipt posted",
		zap.String("receipt_number", resp.ReceiptNumber),
		zap.String("order_number", resp.OrderNumber),
		zap.String("order_status", resp.OrderStatus))
	return resp, nil
}

// upsertStock adds the net received quantity to the item, creating it on
// first receipt. Lookup falls back from item code to item name.
func (s *ReceivingService) upsertStock(ctx context.Context, po *procurement.PurchaseOrder, gr *procurement.GoodsReceipt) (*inventory.InventoryItem, error) {
	item, err := s.findItem(ctx, po.ItemCode, po.ItemName)
	if errors.Is(err, shared.ErrNotFound) {
		itemCode := po.ItemCode
		if itemCode == "" {
			// orders may carry only an item name; stock items need a code
			itemCode = po.ItemName
		}
		item, err = inventory.NewInventoryItem(itemCode, po.ItemName, gr.Warehouse, po.Unit, gr.NetStockQty(), po.UnitPrice)
		if err != nil {
			return nil, err
		}
		return item, s.itemRepo.Save(ctx, item)
	}
	if err != nil {
		return nil, err
	}

	if err := item.Receive(gr.NetStockQty()); err != nil {
		return nil, err
	}
	return item, s.itemRepo.SaveWithLock(ctx, item)
}

func (s *ReceivingService) findItem(ctx context.Context, itemCode, itemName string) (*inventory.InventoryItem, error) {
	if itemCode != "" {
		item, err := s.itemRepo.FindByItemCode(ctx, itemCode)
		if !errors.Is(err, shared.ErrNotFound) {
			return item, err
		}
	}
	return s.itemRepo.FindByItemName(ctx, itemName)
}

func (s *ReceivingService) publishEvents(po *procurement.PurchaseOrder) {
	if s.eventPublisher == nil {
		po.ClearDomainEvents()
		return
	}
	s.eventPublisher.Publish(po.GetDomainEvents()...)
	po.ClearDomainEvents()
}
