package planning

import (
	"github.com/shopspring/decimal"

	"github.com/scm/backend/internal/domain/shared"
)

// BOMLine is one component requirement of a product's bill of materials.
// Expansion is single-level: components are not themselves exploded.
type BOMLine struct {
	shared.BaseEntity
	ProductName   string          `gorm:"size:200;not null;index:idx_bom_product"`
	ProductCode   string          `gorm:"size:60;index"`
	ComponentName string          `gorm:"size:200;not null"`
	ComponentCode string          `gorm:"size:60;index"`
	QtyPerUnit    decimal.Decimal `gorm:"type:decimal(15,4);not null"`
	Unit          string          `gorm:"size:20"`
}

// TableName returns the table name for GORM
func (BOMLine) TableName() string {
	return "bom_lines"
}

// NewBOMLine registers one component requirement
func NewBOMLine(productName, productCode, componentName, componentCode string, qtyPerUnit decimal.Decimal, unit string) (*BOMLine, error) {
	if productName == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "product name is required")
	}
	if componentName == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "component name is required")
	}
	if !qtyPerUnit.IsPositive() {
		return nil, shared.NewDomainError("INVALID_INPUT", "quantity per unit must be positive")
	}

	return &BOMLine{
		BaseEntity:    shared.NewBaseEntity(),
		ProductName:   productName,
		ProductCode:   productCode,
		ComponentName: componentName,
		ComponentCode: componentCode,
		QtyPerUnit:    qtyPerUnit,
		Unit:          unit,
	}, nil
}
