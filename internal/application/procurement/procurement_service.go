package procurement

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/scm/backend/internal/domain/procurement"
	"github.com/scm/backend/internal/domain/shared"
)

// ProcurementService drives the sourcing chain from purchase request through
// quotation comparison to the placed order.
type ProcurementService struct {
	requestRepo    procurement.PurchaseRequestRepository
	quotationRepo  procurement.QuotationRepository
	orderRepo      procurement.PurchaseOrderRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewProcurementService creates a new ProcurementService
func NewProcurementService(
	requestRepo procurement.PurchaseRequestRepository,
	quotationRepo procurement.QuotationRepository,
	orderRepo procurement.PurchaseOrderRepository,
	logger *zap.Logger,
) *ProcurementService {
	return &ProcurementService{
		requestRepo:   requestRepo,
		quotationRepo: quotationRepo,
		orderRepo:     orderRepo,
		logger:        logger,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *ProcurementService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// CreatePurchaseRequest submits a new purchase request in PENDING status
func (s *ProcurementService) CreatePurchaseRequest(ctx context.Context, req CreatePurchaseRequestRequest) (*procurement.PurchaseRequest, error) {
	pr, err := procurement.NewPurchaseRequest(req.ItemName, req.ItemCode, req.Quantity, req.Unit, req.Requester, req.Department)
	if err != nil {
		return nil, err
	}
	pr.Reason = req.Reason

	if err := s.requestRepo.Save(ctx, pr); err != nil {
		return nil, err
	}

	s.publishEvents(&pr.BaseAggregateRoot)
	s.logger.Info("purchase request created",
		zap.String("request_number", pr.RequestNumber),
		zap.String("item_name", pr.ItemName))
	return pr, nil
}

// ApprovePurchaseRequest moves a pending request to APPROVED
func (s *ProcurementService) ApprovePurchaseRequest(ctx context.Context, id uuid.UUID, approver string) (*procurement.PurchaseRequest, error) {
	pr, err := s.requestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := pr.Approve(approver); err != nil {
		return nil, err
	}
	if err := s.requestRepo.Save(ctx, pr); err != nil {
		return nil, err
	}
	return pr, nil
}

// RejectPurchaseRequest moves a pending request to REJECTED
func (s *ProcurementService) RejectPurchaseRequest(ctx context.Context, id uuid.UUID, approver string) (*procurement.PurchaseRequest, error) {
	pr, err := s.requestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := pr.Reject(approver); err != nil {
		return nil, err
	}
	if err := s.requestRepo.Save(ctx, pr); err != nil {
		return nil, err
	}
	return pr, nil
}

// ListPurchaseRequests lists purchase requests with pagination
func (s *ProcurementService) ListPurchaseRequests(ctx context.Context, filter shared.Filter) (*shared.Paginated[procurement.PurchaseRequest], error) {
	requests, err := s.requestRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.requestRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(requests, total, filter.Page, filter.PageSize)
	return &page, nil
}

// RegisterQuotation records a supplier quotation, optionally linked to a
// purchase request. Only approved requests accept quotations.
func (s *ProcurementService) RegisterQuotation(ctx context.Context, req CreateQuotationRequest) (*procurement.Quotation, error) {
	if req.PurchaseRequestID != nil {
		pr, err := s.requestRepo.FindByID(ctx, *req.PurchaseRequestID)
		if err != nil {
			return nil, err
		}
		if !pr.IsApproved() {
			return nil, shared.NewDomainError("INVALID_STATE", "quotations can only be collected for approved requests")
		}
	}

	q, err := procurement.NewQuotation(req.PurchaseRequestID, req.SupplierName, req.ItemName, req.Quantity, req.UnitPrice, req.LeadTimeDays)
	if err != nil {
		return nil, err
	}
	if err := s.quotationRepo.Save(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

// SelectQuotation marks one quotation as selected and rejects its siblings
// collected for the same purchase request.
func (s *ProcurementService) SelectQuotation(ctx context.Context, id uuid.UUID) (*procurement.Quotation, error) {
	q, err := s.quotationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := q.Select(); err != nil {
		return nil, err
	}
	if err := s.quotationRepo.Save(ctx, q); err != nil {
		return nil, err
	}

	if q.PurchaseRequestID != nil {
		siblings, err := s.quotationRepo.FindByPurchaseRequest(ctx, *q.PurchaseRequestID)
		if err != nil {
			return nil, err
		}
		for i := range siblings {
			sibling := &siblings[i]
			if sibling.ID == q.ID || sibling.Status != procurement.QuotationStatusUnderReview {
				continue
			}
			if err := sibling.Reject(); err != nil {
				return nil, err
			}
			if err := s.quotationRepo.Save(ctx, sibling); err != nil {
				return nil, err
			}
		}
	}
	return q, nil
}

// CreatePurchaseOrder places an order, either from a selected quotation or
// directly from the supplied fields.
func (s *ProcurementService) CreatePurchaseOrder(ctx context.Context, req CreatePurchaseOrderRequest) (*procurement.PurchaseOrder, error) {
	var po *procurement.PurchaseOrder
	var err error

	if req.QuotationID != nil {
		q, findErr := s.quotationRepo.FindByID(ctx, *req.QuotationID)
		if findErr != nil {
			return nil, findErr
		}
		po, err = procurement.FromQuotation(q, req.ItemCode, req.Unit)
	} else {
		po, err = procurement.NewPurchaseOrder(req.SupplierName, req.ItemName, req.ItemCode, req.OrderedQty, req.UnitPrice, req.Unit)
	}
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, po); err != nil {
		return nil, err
	}

	s.publishEvents(&po.BaseAggregateRoot)
	s.logger.Info("purchase order placed",
		zap.String("order_number", po.OrderNumber),
		zap.String("supplier", po.SupplierName))
	return po, nil
}

// CancelPurchaseOrder cancels an order that has not received any goods yet
func (s *ProcurementService) CancelPurchaseOrder(ctx context.Context, id uuid.UUID) (*procurement.PurchaseOrder, error) {
	po, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := po.Cancel(); err != nil {
		return nil, err
	}
	if err := s.orderRepo.SaveWithLock(ctx, po); err != nil {
		return nil, err
	}
	return po, nil
}

// GetPurchaseOrder loads one purchase order
func (s *ProcurementService) GetPurchaseOrder(ctx context.Context, id uuid.UUID) (*procurement.PurchaseOrder, error) {
	return s.orderRepo.FindByID(ctx, id)
}

// ListPurchaseOrders lists purchase orders with pagination
func (s *ProcurementService) ListPurchaseOrders(ctx context.Context, filter shared.Filter) (*shared.Paginated[procurement.PurchaseOrder], error) {
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

// ListOpenPurchaseOrders lists orders that can still receive goods
func (s *ProcurementService) ListOpenPurchaseOrders(ctx context.Context, filter shared.Filter) ([]procurement.PurchaseOrder, error) {
	return s.orderRepo.FindOpen(ctx, filter)
}

func (s *ProcurementService) publishEvents(root *shared.BaseAggregateRoot) {
	if s.eventPublisher == nil {
		root.ClearDomainEvents()
		return
	}
	s.eventPublisher.Publish(root.GetDomainEvents()...)
	root.ClearDomainEvents()
}
