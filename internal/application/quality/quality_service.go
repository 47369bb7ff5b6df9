package quality

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/scm/backend/internal/domain/quality"
	"github.com/scm/backend/internal/domain/shared"
)

// QualityService covers the quality workflow: sampling inspections,
// nonconformance records with their corrective-action lifecycle, and the
// KPI summary over the inspection history.
type QualityService struct {
	inspectionRepo quality.QualityInspectionRepository
	ncRepo         quality.NonconformanceRepository
	logger         *zap.Logger
}

// NewQualityService creates a new QualityService
func NewQualityService(
	inspectionRepo quality.QualityInspectionRepository,
	ncRepo quality.NonconformanceRepository,
	logger *zap.Logger,
) *QualityService {
	return &QualityService{
		inspectionRepo: inspectionRepo,
		ncRepo:         ncRepo,
		logger:         logger,
	}
}

// RegisterInspection records a sampling inspection
func (s *QualityService) RegisterInspection(ctx context.Context, req RegisterInspectionRequest) (*quality.QualityInspection, error) {
	qi, err := quality.NewQualityInspection(req.InspectionType, req.ItemName, req.LotNumber,
		req.SampleQty, req.PassQty, req.FailQty, req.Inspector, req.Result, req.Note)
	if err != nil {
		return nil, err
	}
	if err := s.inspectionRepo.Save(ctx, qi); err != nil {
		return nil, err
	}

	s.logger.Info("quality inspection recorded",
		zap.String("inspection_number", qi.InspectionNumber),
		zap.String("item_name", qi.ItemName),
		zap.String("result", qi.Result.String()))
	return qi, nil
}

// ListInspections lists inspections with pagination, optionally narrowed
// to one item
func (s *QualityService) ListInspections(ctx context.Context, itemName string, filter shared.Filter) (*shared.Paginated[quality.QualityInspection], error) {
	if itemName != "" {
		if filter.Filters == nil {
			filter.Filters = make(map[string]interface{})
		}
		filter.Filters["item_name"] = itemName
	}

	inspections, err := s.inspectionRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.inspectionRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(inspections, total, filter.Page, filter.PageSize)
	return &page, nil
}

// RegisterNonconformance opens a defect record under investigation
func (s *QualityService) RegisterNonconformance(ctx context.Context, req RegisterNonconformanceRequest) (*quality.Nonconformance, error) {
	nc, err := quality.NewNonconformance(req.ItemName, req.DefectType, req.Quantity, req.Severity)
	if err != nil {
		return nil, err
	}
	nc.RecordAnalysis(req.RootCause, req.CorrectiveAction)

	if err := s.ncRepo.Save(ctx, nc); err != nil {
		return nil, err
	}

	s.logger.Info("nonconformance opened",
		zap.String("nc_number", nc.NCNumber),
		zap.String("item_name", nc.ItemName),
		zap.String("severity", string(nc.Severity)))
	return nc, nil
}

// UpdateNonconformance moves a record through the corrective-action
// workflow and records any new analysis text
func (s *QualityService) UpdateNonconformance(ctx context.Context, id uuid.UUID, req UpdateNonconformanceRequest) (*quality.Nonconformance, error) {
	nc, err := s.ncRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nc.Status {
		if err := nc.Transition(req.Status); err != nil {
			return nil, err
		}
	}
	nc.RecordAnalysis(req.RootCause, req.CorrectiveAction)

	if err := s.ncRepo.Save(ctx, nc); err != nil {
		return nil, err
	}
	return nc, nil
}

// ListNonconformances lists defect records, optionally by status
func (s *QualityService) ListNonconformances(ctx context.Context, status quality.NonconformanceStatus, filter shared.Filter) ([]quality.Nonconformance, error) {
	if status != "" {
		if !status.IsValid() {
			return nil, shared.ErrInvalidInput
		}
		return s.ncRepo.FindByStatus(ctx, status, filter)
	}
	return s.ncRepo.FindAll(ctx, filter)
}

// KPIReport builds the quality KPIs over the full inspection history
func (s *QualityService) KPIReport(ctx context.Context) (*quality.KPIReport, error) {
	// zero-value filter skips pagination for the full snapshot
	inspections, err := s.inspectionRepo.FindAll(ctx, shared.Filter{})
	if err != nil {
		return nil, err
	}
	ncCount, err := s.ncRepo.Count(ctx, shared.Filter{})
	if err != nil {
		return nil, err
	}

	report := quality.BuildKPIReport(inspections, ncCount)
	return &report, nil
}
