package planning

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/scm/backend/internal/domain/inventory"
	"github.com/scm/backend/internal/domain/planning"
	"github.com/scm/backend/internal/domain/shared"
)

// MRPService manages production plans, the bill of materials and MRP runs.
// A run loads active plans, the full BOM and current stock, computes net
// requirements and optionally persists them as MRP requests.
type MRPService struct {
	tx          shared.TxManager
	planRepo    planning.ProductionPlanRepository
	bomRepo     planning.BOMRepository
	requestRepo planning.MRPRequestRepository
	itemRepo    inventory.InventoryItemRepository
	logger      *zap.Logger
}

// NewMRPService creates a new MRPService
func NewMRPService(
	tx shared.TxManager,
	planRepo planning.ProductionPlanRepository,
	bomRepo planning.BOMRepository,
	requestRepo planning.MRPRequestRepository,
	itemRepo inventory.InventoryItemRepository,
	logger *zap.Logger,
) *MRPService {
	return &MRPService{
		tx:          tx,
		planRepo:    planRepo,
		bomRepo:     bomRepo,
		requestRepo: requestRepo,
		itemRepo:    itemRepo,
		logger:      logger,
	}
}

// CreateProductionPlan drafts a new plan
func (s *MRPService) CreateProductionPlan(ctx context.Context, req CreateProductionPlanRequest) (*planning.ProductionPlan, error) {
	p, err := planning.NewProductionPlan(req.ProductName, req.ProductCode, req.PlannedQty, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if err := s.planRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ConfirmProductionPlan confirms a draft so it starts driving requirements
func (s *MRPService) ConfirmProductionPlan(ctx context.Context, id uuid.UUID) (*planning.ProductionPlan, error) {
	return s.transitionPlan(ctx, id, (*planning.ProductionPlan).Confirm)
}

// StartProductionPlan moves a confirmed plan into production
func (s *MRPService) StartProductionPlan(ctx context.Context, id uuid.UUID) (*planning.ProductionPlan, error) {
	return s.transitionPlan(ctx, id, (*planning.ProductionPlan).Start)
}

// CompleteProductionPlan finishes a running plan
func (s *MRPService) CompleteProductionPlan(ctx context.Context, id uuid.UUID) (*planning.ProductionPlan, error) {
	return s.transitionPlan(ctx, id, (*planning.ProductionPlan).Complete)
}

// CancelProductionPlan cancels a plan that has not completed
func (s *MRPService) CancelProductionPlan(ctx context.Context, id uuid.UUID) (*planning.ProductionPlan, error) {
	return s.transitionPlan(ctx, id, (*planning.ProductionPlan).Cancel)
}

func (s *MRPService) transitionPlan(ctx context.Context, id uuid.UUID, fn func(*planning.ProductionPlan) error) (*planning.ProductionPlan, error) {
	p, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(p); err != nil {
		return nil, err
	}
	if err := s.planRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// AddBOMLine registers one component line of a product's bill of materials
func (s *MRPService) AddBOMLine(ctx context.Context, req CreateBOMLineRequest) (*planning.BOMLine, error) {
	line, err := planning.NewBOMLine(req.ProductName, req.ProductCode, req.ComponentName, req.ComponentCode, req.QtyPerUnit, req.Unit)
	if err != nil {
		return nil, err
	}
	if err := s.bomRepo.Save(ctx, line); err != nil {
		return nil, err
	}
	return line, nil
}

// RemoveBOMLine deletes a BOM line
func (s *MRPService) RemoveBOMLine(ctx context.Context, id uuid.UUID) error {
	return s.bomRepo.Delete(ctx, id)
}

// GetBOM lists the BOM lines of a product
func (s *MRPService) GetBOM(ctx context.Context, productName string) ([]planning.BOMLine, error) {
	return s.bomRepo.FindByProduct(ctx, productName)
}

// RunMRP computes net component requirements for all active plans. The
// computation itself never writes; with Persist set, positive net lines are
// additionally stored as generated MRP requests in one transaction. Running
// twice with Persist therefore duplicates requests.
func (s *MRPService) RunMRP(ctx context.Context, req RunMRPRequest) (*MRPRunResult, error) {
	plans, err := s.planRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	bom, err := s.bomRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	onHand, err := s.loadOnHand(ctx)
	if err != nil {
		return nil, err
	}

	requirements := planning.ComputeRequirementsNet(plans, bom, onHand)
	result := &MRPRunResult{Requirements: requirements}

	if !req.Persist {
		return result, nil
	}

	err = s.tx.Do(ctx, func(ctx context.Context) error {
		for _, r := range requirements {
			if r.MissingBOM || !r.NetQty.IsPositive() {
				continue
			}
			mr, err := planning.NewMRPRequestFromRequirement(r, req.NeededBy)
			if err != nil {
				return err
			}
			if err := s.requestRepo.Save(ctx, mr); err != nil {
				return err
			}
			result.Persisted++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("mrp run completed",
		zap.Int("requirement_lines", len(requirements)),
		zap.Int("persisted", result.Persisted))
	return result, nil
}

// CreateManualMRPRequest records a planner-entered requirement
func (s *MRPService) CreateManualMRPRequest(ctx context.Context, req CreateManualMRPRequestRequest) (*planning.MRPRequest, error) {
	mr, err := planning.NewManualMRPRequest(req.ComponentName, req.ComponentCode, req.NetQty, req.NeededBy)
	if err != nil {
		return nil, err
	}
	if err := s.requestRepo.Save(ctx, mr); err != nil {
		return nil, err
	}
	return mr, nil
}

// ListMRPRequests lists stored MRP requests
func (s *MRPService) ListMRPRequests(ctx context.Context, filter shared.Filter) ([]planning.MRPRequest, error) {
	return s.requestRepo.FindAll(ctx, filter)
}

// loadOnHand builds the component-name keyed stock snapshot an MRP run nets
// against. Items with duplicate names accumulate.
func (s *MRPService) loadOnHand(ctx context.Context) (map[string]decimal.Decimal, error) {
	filter := shared.DefaultFilter()
	filter.PageSize = 0 // no pagination, full snapshot

	items, err := s.itemRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	onHand := make(map[string]decimal.Decimal, len(items))
	for _, item := range items {
		onHand[item.ItemName] = onHand[item.ItemName].Add(item.StockQty)
	}
	return onHand, nil
}
