package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/scm/backend/internal/domain/shared"
)

// InventoryItem tracks one item's stock position. StockQty is the counted
// (actual) quantity; SystemQty is the book quantity the documents imply.
// The two drift apart between stocktakes, which the variance report surfaces.
type InventoryItem struct {
	shared.BaseAggregateRoot
	ItemCode  string          `gorm:"uniqueIndex;size:60;not null"`
	ItemName  string          `gorm:"size:200;not null;index"`
	Warehouse string          `gorm:"size:100"`
	Location  string          `gorm:"size:60"`
	Unit      string          `gorm:"size:20"`
	StockQty  decimal.Decimal `gorm:"type:decimal(15,3);not null;default:0"`
	SystemQty decimal.Decimal `gorm:"type:decimal(15,3);not null;default:0"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	SafetyQty decimal.Decimal `gorm:"type:decimal(15,3);not null;default:0"`
}

// TableName returns the table name for GORM
func (InventoryItem) TableName() string {
	return "inventory_items"
}

// NewInventoryItem creates an item with equal actual and book quantities
func NewInventoryItem(itemCode, itemName, warehouse, unit string, initialQty, unitPrice decimal.Decimal) (*InventoryItem, error) {
	if itemCode == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "item code is required")
	}
	if itemName == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "item name is required")
	}
	if initialQty.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "initial quantity cannot be negative")
	}

	return &InventoryItem{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ItemCode:          itemCode,
		ItemName:          itemName,
		Warehouse:         warehouse,
		Unit:              unit,
		StockQty:          initialQty,
		SystemQty:         initialQty,
		UnitPrice:         unitPrice,
	}, nil
}

// Receive adds quantity to both actual and book stock (goods receipt,
// return restock)
func (i *InventoryItem) Receive(qty decimal.Decimal) error {
	if qty.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "quantity cannot be negative")
	}
	i.StockQty = i.StockQty.Add(qty)
	i.SystemQty = i.SystemQty.Add(qty)
	i.UpdatedAt = time.Now()
	return nil
}

// Issue removes quantity from both actual and book stock (delivery,
// disposal, production issue). Stock never goes below zero; an issue larger
// than the position clamps at zero.
func (i *InventoryItem) Issue(qty decimal.Decimal) error {
	if qty.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "quantity cannot be negative")
	}
	i.StockQty = clampZero(i.StockQty.Sub(qty))
	i.SystemQty = clampZero(i.SystemQty.Sub(qty))
	i.UpdatedAt = time.Now()
	return nil
}

// RecordCount writes a physical count into the actual quantity, leaving the
// book quantity for the variance report to compare against.
func (i *InventoryItem) RecordCount(countedQty decimal.Decimal) error {
	if countedQty.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "counted quantity cannot be negative")
	}
	i.StockQty = countedQty
	i.UpdatedAt = time.Now()
	return nil
}

// AlignBookToActual closes a stocktake by setting the book quantity to the
// counted quantity.
func (i *InventoryItem) AlignBookToActual() {
	i.SystemQty = i.StockQty
	i.UpdatedAt = time.Now()
}

// HasVariance returns true when actual and book quantities differ
func (i *InventoryItem) HasVariance() bool {
	return !i.StockQty.Equal(i.SystemQty)
}

// VarianceQty returns actual minus book quantity
func (i *InventoryItem) VarianceQty() decimal.Decimal {
	return i.StockQty.Sub(i.SystemQty)
}

// VarianceValue returns the variance quantity priced at unit price
func (i *InventoryItem) VarianceValue() decimal.Decimal {
	return i.VarianceQty().Mul(i.UnitPrice)
}

// BelowSafety returns true when actual stock is under the safety quantity
func (i *InventoryItem) BelowSafety() bool {
	return i.StockQty.LessThan(i.SafetyQty)
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
