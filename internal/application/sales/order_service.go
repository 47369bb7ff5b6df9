package sales

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/scm/backend/internal/domain/inventory"
	"github.com/scm/backend/internal/domain/sales"
	"github.com/scm/backend/internal/domain/shared"
)

// OrderService receives customer orders. Credit is checked and consumed at
// order entry; availability is checked but only flags the order.
type OrderService struct {
	tx             shared.TxManager
	customerRepo   sales.CustomerRepository
	orderRepo      sales.SalesOrderRepository
	itemRepo       inventory.InventoryItemRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(
	tx shared.TxManager,
	customerRepo sales.CustomerRepository,
	orderRepo sales.SalesOrderRepository,
	itemRepo inventory.InventoryItemRepository,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		tx:           tx,
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		itemRepo:     itemRepo,
		logger:       logger,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *OrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// CreateCustomer registers a customer account
func (s *OrderService) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*sales.Customer, error) {
	c, err := sales.NewCustomer(req.Name, req.Contact, req.PaymentTerms, req.CreditLimit)
	if err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// GetCustomer loads one customer
func (s *OrderService) GetCustomer(ctx context.Context, id uuid.UUID) (*sales.Customer, error) {
	return s.customerRepo.FindByID(ctx, id)
}

// CreateSalesOrder receives an order. The net amount must fit the customer's
// remaining credit and is consumed immediately. Stock availability is advisory:
// a short position flags the order but the order is still accepted.
func (s *OrderService) CreateSalesOrder(ctx context.Context, req CreateSalesOrderRequest) (*SalesOrderResponse, error) {
	var resp *SalesOrderResponse

	err := s.tx.Do(ctx, func(ctx context.Context) error {
		customer, err := s.customerRepo.FindByID(ctx, req.CustomerID)
		if err != nil {
			return err
		}

		netAmount := sales.NetOrderAmount(req.Quantity, req.UnitPrice, req.DiscountPct)
		if err := customer.CheckCredit(netAmount); err != nil {
			return err
		}

		so, err := sales.NewSalesOrder(customer, req.ItemName, req.ItemCode, req.Quantity, req.UnitPrice, req.DiscountPct)
		if err != nil {
			return err
		}

		short, err := s.stockShort(ctx, req.ItemCode, req.ItemName, req.Quantity)
		if err != nil {
			return err
		}
		if short {
			so.FlagStockShort()
		}

		if err := customer.ConsumeCredit(netAmount); err != nil {
			return err
		}

		if err := s.orderRepo.Save(ctx, so); err != nil {
			return err
		}
		if err := s.customerRepo.SaveWithLock(ctx, customer); err != nil {
			return err
		}

		s.publishEvents(so)
		resp = &SalesOrderResponse{
			OrderNumber:     so.OrderNumber,
			CustomerName:    so.CustomerName,
			NetAmount:       so.NetAmount,
			StockShort:      so.StockShort,
			Status:          so.Status.String(),
			RemainingCredit: customer.RemainingCredit(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("sales order received",
		zap.String("order_number", resp.OrderNumber),
		zap.String("customer", resp.CustomerName),
		zap.Bool("stock_short", resp.StockShort))
	return resp, nil
}

// CancelSalesOrder cancels an order. Consumed credit stays booked.
func (s *OrderService) CancelSalesOrder(ctx context.Context, id uuid.UUID) (*sales.SalesOrder, error) {
	so, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := so.Cancel(); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, so); err != nil {
		return nil, err
	}
	return so, nil
}

// GetSalesOrder loads one sales order
func (s *OrderService) GetSalesOrder(ctx context.Context, id uuid.UUID) (*sales.SalesOrder, error) {
	return s.orderRepo.FindByID(ctx, id)
}

// ListSalesOrders lists sales orders with pagination
func (s *OrderService) ListSalesOrders(ctx context.Context, filter shared.Filter) (*shared.Paginated[sales.SalesOrder], error) {
	orders, err := s.orderRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.orderRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(orders, total, filter.Page, filter.PageSize)
	return &page, nil
}

// stockShort reports whether available stock does not cover the ordered
// quantity. An unknown item counts as short.
func (s *OrderService) stockShort(ctx context.Context, itemCode, itemName string, qty decimal.Decimal) (bool, error) {
	item, err := s.findItem(ctx, itemCode, itemName)
	if errors.Is(err, shared.ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return item.StockQty.LessThan(qty), nil
}

func (s *OrderService) findItem(ctx context.Context, itemCode, itemName string) (*inventory.InventoryItem, error) {
	if itemCode != "" {
		item, err := s.itemRepo.FindByItemCode(ctx, itemCode)
		if !errors.Is(err, shared.ErrNotFound) {
			return item, err
		}
	}
	return s.itemRepo.FindByItemName(ctx, itemName)
}

func (s *OrderService) publishEvents(so *sales.SalesOrder) {
	if s.eventPublisher == nil {
		so.ClearDomainEvents()
		return
	}
	s.eventPublisher.Publish(so.GetDomainEvents()...)
	so.ClearDomainEvents()
}
