package sales

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/scm/backend/internal/domain/inventory"
	"github.com/scm/backend/internal/domain/sales"
	"github.com/scm/backend/internal/domain/shared"
)

// FulfillmentService handles the outbound side: shipment instructions,
// deliveries, returns and sales invoices. Deliveries decrement stock and
// restocked returns put it back, each with a movement journal row.
type FulfillmentService struct {
	tx             shared.TxManager
	orderRepo      sales.SalesOrderRepository
	deliveryRepo   sales.DeliveryRepository
	returnRepo     sales.SalesReturnRepository
	invoiceRepo    sales.SalesInvoiceRepository
	itemRepo       inventory.InventoryItemRepository
	movementRepo   inventory.StockMovementRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewFulfillmentService creates a new FulfillmentService
func NewFulfillmentService(
	tx shared.TxManager,
	orderRepo sales.SalesOrderRepository,
	deliveryRepo sales.DeliveryRepository,
	returnRepo sales.SalesReturnRepository,
	invoiceRepo sales.SalesInvoiceRepository,
	itemRepo inventory.InventoryItemRepository,
	movementRepo inventory.StockMovementRepository,
	logger *zap.Logger,
) *FulfillmentService {
	return &FulfillmentService{
		tx:           tx,
		orderRepo:    orderRepo,
		deliveryRepo: deliveryRepo,
		returnRepo:   returnRepo,
		invoiceRepo:  invoiceRepo,
		itemRepo:     itemRepo,
		movementRepo: movementRepo,
		logger:       logger,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *FulfillmentService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// InstructShipment moves a received order to SHIP_INSTRUCTED
func (s *FulfillmentService) InstructShipment(ctx context.Context, orderID uuid.UUID) (*sales.SalesOrder, error) {
	so, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := so.InstructShipment(); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, so); err != nil {
		return nil, err
	}
	return so, nil
}

// RegisterDelivery records an outbound shipment, moves the order to SHIPPING
// and issues the delivered quantity from stock, all in one transaction.
func (s *FulfillmentService) RegisterDelivery(ctx context.Context, req RegisterDeliveryRequest) (*sales.Delivery, error) {
	var delivery *sales.Delivery

	err := s.tx.Do(ctx, func(ctx context.Context) error {
		so, err := s.orderRepo.FindByID(ctx, req.SalesOrderID)
		if err != nil {
			return err
		}

		delivery, err = sales.NewDelivery(so, req.PickedQty, req.PackedQty, req.DeliveredQty, req.Carrier, req.TrackingNumber)
		if err != nil {
			return err
		}
		if err := so.StartShipping(); err != nil {
			return err
		}

		item, err := s.findItem(ctx, so.ItemCode, so.ItemName)
		if err != nil {
			return err
		}
		if err := item.Issue(req.DeliveredQty); err != nil {
			return err
		}

		movement, err := inventory.NewStockMovement(inventory.MovementTypeIssue,
			item.ItemCode, item.ItemName, req.DeliveredQty, item.Warehouse, so.CustomerName, delivery.DeliveryNumber)
		if err != nil {
			return err
		}

		if err := s.deliveryRepo.Save(ctx, delivery); err != nil {
			return err
		}
		if err := s.orderRepo.Save(ctx, so); err != nil {
			return err
		}
		if err := s.itemRepo.SaveWithLock(ctx, item); err != nil {
			return err
		}
		return s.movementRepo.Save(ctx, movement)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("delivery registered",
		zap.String("delivery_number", delivery.DeliveryNumber),
		zap.String("tracking_number", delivery.TrackingNumber))
	return delivery, nil
}

// CompleteDelivery moves a shipping order to DELIVERED
func (s *FulfillmentService) CompleteDelivery(ctx context.Context, orderID uuid.UUID) (*sales.SalesOrder, error) {
	so, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := so.CompleteDelivery(); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, so); err != nil {
		return nil, err
	}
	return so, nil
}

// CreateSalesReturn accepts a customer return in REQUESTED state
func (s *FulfillmentService) CreateSalesReturn(ctx context.Context, req CreateSalesReturnRequest) (*sales.SalesReturn, error) {
	sr, err := sales.NewSalesReturn(req.SalesOrderID, req.CustomerName, req.ItemName, req.ItemCode, req.Quantity, req.Reason)
	if err != nil {
		return nil, err
	}
	if err := s.returnRepo.Save(ctx, sr); err != nil {
		return nil, err
	}
	return sr, nil
}

// StartReturnInspection moves a requested return to INSPECTING
func (s *FulfillmentService) StartReturnInspection(ctx context.Context, returnID uuid.UUID) (*sales.SalesReturn, error) {
	sr, err := s.returnRepo.FindByID(ctx, returnID)
	if err != nil {
		return nil, err
	}
	if err := sr.StartInspection(); err != nil {
		return nil, err
	}
	if err := s.returnRepo.Save(ctx, sr); err != nil {
		return nil, err
	}
	return sr, nil
}

// RestockReturn puts an inspected return back into stock with a RETURN
// movement, in one transaction.
func (s *FulfillmentService) RestockReturn(ctx context.Context, returnID uuid.UUID) (*sales.SalesReturn, error) {
	var sr *sales.SalesReturn

	err := s.tx.Do(ctx, func(ctx context.Context) error {
		var err error
		sr, err = s.returnRepo.FindByID(ctx, returnID)
		if err != nil {
			return err
		}
		if err := sr.Restock(); err != nil {
			return err
		}

		item, err := s.findItem(ctx, sr.ItemCode, sr.ItemName)
		if err != nil {
			return err
		}
		if err := item.Receive(sr.Quantity); err != nil {
			return err
		}

		movement, err := inventory.NewStockMovement(inventory.MovementTypeReturn,
			item.ItemCode, item.ItemName, sr.Quantity, sr.CustomerName, item.Warehouse, sr.ReturnNumber)
		if err != nil {
			return err
		}

		if err := s.returnRepo.Save(ctx, sr); err != nil {
			return err
		}
		if err := s.itemRepo.SaveWithLock(ctx, item); err != nil {
			return err
		}
		return s.movementRepo.Save(ctx, movement)
	})
	if err != nil {
		return nil, err
	}

	s.publishReturnEvents(sr)
	return sr, nil
}

// ScrapReturn marks an inspected return as scrapped. Stock is untouched.
func (s *FulfillmentService) ScrapReturn(ctx context.Context, returnID uuid.UUID) (*sales.SalesReturn, error) {
	sr, err := s.returnRepo.FindByID(ctx, returnID)
	if err != nil {
		return nil, err
	}
	if err := sr.Scrap(); err != nil {
		return nil, err
	}
	if err := s.returnRepo.Save(ctx, sr); err != nil {
		return nil, err
	}
	return sr, nil
}

// RefundReturn settles a processed return with the customer
func (s *FulfillmentService) RefundReturn(ctx context.Context, returnID uuid.UUID) (*sales.SalesReturn, error) {
	sr, err := s.returnRepo.FindByID(ctx, returnID)
	if err != nil {
		return nil, err
	}
	if err := sr.Refund(); err != nil {
		return nil, err
	}
	if err := s.returnRepo.Save(ctx, sr); err != nil {
		return nil, err
	}
	return sr, nil
}

// RegisterSalesInvoice issues a sales tax invoice for a delivered order
func (s *FulfillmentService) RegisterSalesInvoice(ctx context.Context, req RegisterSalesInvoiceRequest) (*sales.SalesInvoice, error) {
	issueDate := req.IssueDate
	if issueDate.IsZero() {
		issueDate = time.Now()
	}

	si, err := sales.NewSalesInvoice(req.SalesOrderID, req.CustomerName, req.SupplyAmount, req.TaxRate, issueDate)
	if err != nil {
		return nil, err
	}
	if err := s.invoiceRepo.Save(ctx, si); err != nil {
		return nil, err
	}
	return si, nil
}

// MarkSalesInvoicePaid settles a sales invoice
func (s *FulfillmentService) MarkSalesInvoicePaid(ctx context.Context, invoiceID uuid.UUID) (*sales.SalesInvoice, error) {
	si, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if err := si.MarkPaid(time.Now()); err != nil {
		return nil, err
	}
	if err := s.invoiceRepo.Save(ctx, si); err != nil {
		return nil, err
	}
	return si, nil
}

func (s *FulfillmentService) findItem(ctx context.Context, itemCode, itemName string) (*inventory.InventoryItem, error) {
	if itemCode != "" {
		item, err := s.itemRepo.FindByItemCode(ctx, itemCode)
		if !errors.Is(err, shared.ErrNotFound) {
			return item, err
		}
	}
	return s.itemRepo.FindByItemName(ctx, itemName)
}

func (s *FulfillmentService) publishReturnEvents(sr *sales.SalesReturn) {
	if s.eventPublisher == nil {
		sr.ClearDomainEvents()
		return
	}
	s.eventPublisher.Publish(sr.GetDomainEvents()...)
	sr.ClearDomainEvents()
}
