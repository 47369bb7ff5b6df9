package quality

import (
	"github.com/shopspring/decimal"

	"github.com/scm/backend/internal/domain/quality"
)

// RegisterInspectionRequest is the payload for recording an inspection
type RegisterInspectionRequest struct {
	InspectionType quality.InspectionType   `json:"inspection_type" binding:"required"`
	ItemName       string                   `json:"item_name" binding:"required"`
	LotNumber      string                   `json:"lot_number"`
	SampleQty      decimal.Decimal          `json:"sample_qty" binding:"required"`
	PassQty        decimal.Decimal          `json:"pass_qty"`
	FailQty        decimal.Decimal          `json:"fail_qty"`
	Inspector      string                   `json:"inspector"`
	Result         quality.InspectionResult `json:"result" binding:"required"`
	Note           string                   `json:"note"`
}

// RegisterNonconformanceRequest opens a defect record
type RegisterNonconformanceRequest struct {
	ItemName         string             `json:"item_name" binding:"required"`
	DefectType       quality.DefectType `json:"defect_type" binding:"required"`
	Quantity         decimal.Decimal    `json:"quantity" binding:"required"`
	Severity         quality.Severity   `json:"severity" binding:"required"`
	RootCause        string             `json:"root_cause"`
	CorrectiveAction string             `json:"corrective_action"`
}

// UpdateNonconformanceRequest moves a record through the workflow and
// optionally updates the analysis text
type UpdateNonconformanceRequest struct {
	Status           quality.NonconformanceStatus `json:"status" binding:"required"`
	RootCause        string                       `json:"root_cause"`
	CorrectiveAction string                       `json:"corrective_action"`
}
