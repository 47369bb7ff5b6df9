package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/scm/backend/internal/domain/inventory"
)

// RegisterItemRequest is the payload for registering an inventory item
type RegisterItemRequest struct {
	ItemCode   string          `json:"item_code" binding:"required"`
	ItemName   string          `json:"item_name" binding:"required"`
	Warehouse  string          `json:"warehouse"`
	Unit       string          `json:"unit"`
	InitialQty decimal.Decimal `json:"initial_qty"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	SafetyQty  decimal.Decimal `json:"safety_qty"`
}

// RecordCountRequest writes a physical count into an item
type RecordCountRequest struct {
	ItemCode   string          `json:"item_code" binding:"required"`
	CountedQty decimal.Decimal `json:"counted_qty"`
	Counter    string          `json:"counter"`
}

// VarianceReportResponse is the reconciliation report with its total value
type VarianceReportResponse struct {
	Rows       []inventory.VarianceRow `json:"rows"`
	TotalValue decimal.Decimal         `json:"total_value"`
}

// CreateDisposalRequest requests a stock write-off
type CreateDisposalRequest struct {
	ItemCode string          `json:"item_code" binding:"required"`
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
	Reason   string          `json:"reason"`
}
