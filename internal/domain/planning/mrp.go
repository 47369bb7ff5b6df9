package planning

import (
	"github.com/shopspring/decimal"
)

// Requirement is one computed line of an MRP run
type Requirement struct {
	PlanNumber    string          `json:"plan_number"`
	ProductName   string          `json:"product_name"`
	ComponentName string          `json:"component_name"`
	ComponentCode string          `json:"component_code"`
	RequiredQty   decimal.Decimal `json:"required_qty"`
	OnHandQty     decimal.Decimal `json:"on_hand_qty"`
	NetQty        decimal.Decimal `json:"net_qty"`
	MissingBOM    bool            `json:"missing_bom"`
}

// ComputeRequirementsNet explodes confirmed and in-progress plans through
// the single-level BOM and nets each component requirement against on-hand
// stock (keyed by component name):
//
//	required = qtyPerUnit x plannedQty
//	net      = max(0, required - onHand)
//
// A plan whose product has no BOM lines yields a single sentinel row with
// MissingBOM set, so the gap is visible instead of silently dropped. The
// function is pure and deterministic: same inputs, same output, no writes.
func ComputeRequirementsNet(plans []ProductionPlan, bom []BOMLine, onHand map[string]decimal.Decimal) []Requirement {
	bomByProduct := make(map[string][]BOMLine, len(bom))
	for _, line := range bom {
		bomByProduct[line.ProductName] = append(bomByProduct[line.ProductName], line)
	}

	requirements := make([]Requirement, 0)
	for _, plan := range plans {
		if !plan.Status.DrivesRequirements() {
			continue
		}

		lines, ok := bomByProduct[plan.ProductName]
		if !ok || len(lines) == 0 {
			requirements = append(requirements, Requirement{
				PlanNumber:  plan.PlanNumber,
				ProductName: plan.ProductName,
				MissingBOM:  true,
			})
			continue
		}

		for _, line := range lines {
			required := line.QtyPerUnit.Mul(plan.PlannedQty)
			available := onHand[line.ComponentName]
			net := required.Sub(available)
			if net.IsNegative() {
				net = decimal.Zero
			}
			requirements = append(requirements, Requirement{
				PlanNumber:    plan.PlanNumber,
				ProductName:   plan.ProductName,
				ComponentName: line.ComponentName,
				ComponentCode: line.ComponentCode,
				RequiredQty:   required,
				OnHandQty:     available,
				NetQty:        net,
			})
		}
	}
	return requirements
}
