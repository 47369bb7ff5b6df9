package inventory

import (
	"sort"

	"github.com/shopspring/decimal"
)

// VarianceRow is one line of the system-vs-actual reconciliation report
type VarianceRow struct {
	ItemCode      string          `json:"item_code"`
	ItemName      string          `json:"item_name"`
	StockQty      decimal.Decimal `json:"stock_qty"`
	SystemQty     decimal.Decimal `json:"system_qty"`
	VarianceQty   decimal.Decimal `json:"variance_qty"`
	VarianceValue decimal.Decimal `json:"variance_value"`
}

// BuildVarianceReport returns a row for every item whose actual and book
// quantities differ, ordered by absolute variance descending. Pure function:
// it never mutates the items.
func BuildVarianceReport(items []InventoryItem) []VarianceRow {
	rows := make([]VarianceRow, 0)
	for _, item := range items {
		if !item.HasVariance() {
			continue
		}
		rows = append(rows, VarianceRow{
			ItemCode:      item.ItemCode,
			ItemName:      item.ItemName,
			StockQty:      item.StockQty,
			SystemQty:     item.SystemQty,
			VarianceQty:   item.VarianceQty(),
			VarianceValue: item.VarianceValue(),
		})
	}

	sort.SliceStable(rows, func(a, b int) bool {
		return rows[a].VarianceQty.Abs().GreaterThan(rows[b].VarianceQty.Abs())
	})
	return rows
}

// TotalVarianceValue sums the signed variance values of a report
func TotalVarianceValue(rows []VarianceRow) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.VarianceValue)
	}
	return total
}
