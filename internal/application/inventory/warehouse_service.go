package inventory

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/scm/backend/internal/domain/inventory"
	"github.com/scm/backend/internal/domain/shared"
)

// WarehouseService manages the stock ledger: item registration, physical
// counts, the system-vs-actual variance report and the disposal workflow.
// Document-driven stock changes (receipt, delivery, return) post through
// their own services; this one covers the warehouse-side operations.
type WarehouseService struct {
	tx           shared.TxManager
	itemRepo     inventory.InventoryItemRepository
	movementRepo inventory.StockMovementRepository
	disposalRepo inventory.DisposalRepository
	logger       *zap.Logger
}

// NewWarehouseService creates a new WarehouseService
func NewWarehouseService(
	tx shared.TxManager,
	itemRepo inventory.InventoryItemRepository,
	movementRepo inventory.StockMovementRepository,
	disposalRepo inventory.DisposalRepository,
	logger *zap.Logger,
) *WarehouseService {
	return &WarehouseService{
		tx:           tx,
		itemRepo:     itemRepo,
		movementRepo: movementRepo,
		disposalRepo: disposalRepo,
		logger:       logger,
	}
}

// RegisterItem creates an item with equal actual and book quantities
func (s *WarehouseService) RegisterItem(ctx context.Context, req RegisterItemRequest) (*inventory.InventoryItem, error) {
	if _, err := s.itemRepo.FindByItemCode(ctx, req.ItemCode); err == nil {
		return nil, shared.ErrAlreadyExists
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	item, err := inventory.NewInventoryItem(req.ItemCode, req.ItemName, req.Warehouse, req.Unit, req.InitialQty, req.UnitPrice)
	if err != nil {
		return nil, err
	}
	item.SafetyQty = req.SafetyQty

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetItem loads an item by code, falling back to a name match
func (s *WarehouseService) GetItem(ctx context.Context, itemCode string) (*inventory.InventoryItem, error) {
	item, err := s.itemRepo.FindByItemCode(ctx, itemCode)
	if errors.Is(err, shared.ErrNotFound) {
		return s.itemRepo.FindByItemName(ctx, itemCode)
	}
	return item, err
}

// ListItems lists inventory items with pagination
func (s *WarehouseService) ListItems(ctx context.Context, filter shared.Filter) (*shared.Paginated[inventory.InventoryItem], error) {
	items, err := s.itemRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.itemRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

// RecordCount writes a stocktake count into the actual quantity and journals
// it. The book quantity stays put so the variance report can show the drift.
func (s *WarehouseService) RecordCount(ctx context.Context, req RecordCountRequest) (*inventory.InventoryItem, error) {
	var item *inventory.InventoryItem

	err := s.tx.Do(ctx, func(ctx context.Context) error {
		var err error
		item, err = s.itemRepo.FindByItemCode(ctx, req.ItemCode)
		if err != nil {
			return err
		}

		previous := item.StockQty
		if err := item.RecordCount(req.CountedQty); err != nil {
			return err
		}
		if err := s.itemRepo.SaveWithLock(ctx, item); err != nil {
			return err
		}

		diff := req.CountedQty.Sub(previous)
		if diff.IsZero() {
			return nil
		}
		movement, err := inventory.NewStockMovement(inventory.MovementTypeCount,
			item.ItemCode, item.ItemName, diff.Abs(), item.Warehouse, item.Warehouse, "")
		if err != nil {
			return err
		}
		movement.Note = "실사 " + req.Counter
		return s.movementRepo.Save(ctx, movement)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// VarianceReport builds the system-vs-actual reconciliation, ordered by
// absolute variance descending
func (s *WarehouseService) VarianceReport(ctx context.Context) (*VarianceReportResponse, error) {
	items, err := s.itemRepo.FindWithVariance(ctx)
	if err != nil {
		return nil, err
	}
	rows := inventory.BuildVarianceReport(items)
	return &VarianceReportResponse{
		Rows:       rows,
		TotalValue: inventory.TotalVarianceValue(rows),
	}, nil
}

// CloseStocktake aligns an item's book quantity to the counted quantity
func (s *WarehouseService) CloseStocktake(ctx context.Context, itemCode string) (*inventory.InventoryItem, error) {
	item, err := s.itemRepo.FindByItemCode(ctx, itemCode)
	if err != nil {
		return nil, err
	}
	item.AlignBookToActual()
	if err := s.itemRepo.SaveWithLock(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListMovements lists journal rows of an item
func (s *WarehouseService) ListMovements(ctx context.Context, itemCode string, filter shared.Filter) ([]inventory.StockMovement, error) {
	return s.movementRepo.FindByItemCode(ctx, itemCode, filter)
}

// ListMovementsByReference lists the journal rows a document caused
func (s *WarehouseService) ListMovementsByReference(ctx context.Context, referenceNumber string) ([]inventory.StockMovement, error) {
	return s.movementRepo.FindByReference(ctx, referenceNumber)
}

// CreateDisposal requests a stock write-off pending approval
func (s *WarehouseService) CreateDisposal(ctx context.Context, req CreateDisposalRequest) (*inventory.Disposal, error) {
	item, err := s.itemRepo.FindByItemCode(ctx, req.ItemCode)
	if err != nil {
		return nil, err
	}

	d, err := inventory.NewDisposal(item.ItemCode, item.ItemName, req.Quantity, req.Reason)
	if err != nil {
		return nil, err
	}
	if err := s.disposalRepo.Save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// ApproveDisposal clears a disposal for processing
func (s *WarehouseService) ApproveDisposal(ctx context.Context, id uuid.UUID, approver string) (*inventory.Disposal, error) {
	d, err := s.disposalRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := d.Approve(approver); err != nil {
		return nil, err
	}
	if err := s.disposalRepo.Save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// RejectDisposal declines a disposal request
func (s *WarehouseService) RejectDisposal(ctx context.Context, id uuid.UUID, approver string) (*inventory.Disposal, error) {
	d, err := s.disposalRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := d.Reject(approver); err != nil {
		return nil, err
	}
	if err := s.disposalRepo.Save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// ProcessDisposal executes an approved write-off: decrements the stock and
// journals the removal, all in one transaction
func (s *WarehouseService) ProcessDisposal(ctx context.Context, id uuid.UUID) (*inventory.Disposal, error) {
	var d *inventory.Disposal

	err := s.tx.Do(ctx, func(ctx context.Context) error {
		var err error
		d, err = s.disposalRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := d.Process(); err != nil {
			return err
		}

		item, err := s.itemRepo.FindByItemCode(ctx, d.ItemCode)
		if err != nil {
			return err
		}
		if err := item.Issue(d.Quantity); err != nil {
			return err
		}

		if err := s.disposalRepo.Save(ctx, d); err != nil {
			return err
		}
		if err := s.itemRepo.SaveWithLock(ctx, item); err != nil {
			return err
		}

		movement, err := inventory.NewStockMovement(inventory.MovementTypeDisposal,
			item.ItemCode, item.ItemName, d.Quantity, item.Warehouse, "폐기", d.DisposalNumber)
		if err != nil {
			return err
		}
		return s.movementRepo.Save(ctx, movement)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("disposal processed",
		zap.String("disposal_number", d.DisposalNumber),
		zap.String("item_code", d.ItemCode))
	return d, nil
}

// ListDisposals lists disposals in the given status
func (s *WarehouseService) ListDisposals(ctx context.Context, status inventory.DisposalStatus, filter shared.Filter) ([]inventory.Disposal, error) {
	if status != "" {
		if !status.IsValid() {
			return nil, shared.ErrInvalidInput
		}
		return s.disposalRepo.FindByStatus(ctx, status, filter)
	}
	return s.disposalRepo.FindAll(ctx, filter)
}
