package planning

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/scm/backend/internal/domain/planning"
)

// CreateProductionPlanRequest is the payload for drafting a production plan
type CreateProductionPlanRequest struct {
	ProductName string          `json:"product_name" binding:"required"`
	ProductCode string          `json:"product_code"`
	PlannedQty  decimal.Decimal `json:"planned_qty" binding:"required"`
	StartDate   *time.Time      `json:"start_date"`
	EndDate     *time.Time      `json:"end_date"`
}

// CreateBOMLineRequest is the payload for registering a BOM line
type CreateBOMLineRequest struct {
	ProductName   string          `json:"product_name" binding:"required"`
	ProductCode   string          `json:"product_code"`
	ComponentName string          `json:"component_name" binding:"required"`
	ComponentCode string          `json:"component_code"`
	QtyPerUnit    decimal.Decimal `json:"qty_per_unit" binding:"required"`
	Unit          string          `json:"unit"`
}

// RunMRPRequest controls an MRP run
type RunMRPRequest struct {
	// Persist writes positive net requirement lines as MRP requests.
	// A plain run stays read-only.
	Persist  bool       `json:"persist"`
	NeededBy *time.Time `json:"needed_by"`
}

// MRPRunResult reports the outcome of one MRP run
type MRPRunResult struct {
	Requirements []planning.Requirement `json:"requirements"`
	Persisted    int                    `json:"persisted"`
}

// CreateManualMRPRequestRequest is the payload for a planner-entered requirement
type CreateManualMRPRequestRequest struct {
	ComponentName string          `json:"component_name" binding:"required"`
	ComponentCode string          `json:"component_code"`
	NetQty        decimal.Decimal `json:"net_qty" binding:"required"`
	NeededBy      *time.Time      `json:"needed_by"`
}
