package procurement

import (
	"github.com/scm/backend/internal/domain/shared"
)

// SupplierEvaluation scores a supplier on four 25-point axes and derives a
// letter grade from the total.
type SupplierEvaluation struct {
	shared.BaseAggregateRoot
	EvaluationNumber string `gorm:"uniqueIndex;size:40;not null"`
	SupplierName     string `gorm:"size:200;not null;index"`
	Period           string `gorm:"size:20"`
	QualityScore     int    `gorm:"not null"`
	DeliveryScore    int    `gorm:"not null"`
	PriceScore       int    `gorm:"not null"`
	ServiceScore     int    `gorm:"not null"`
	TotalScore       int    `gorm:"not null"`
	Grade            string `gorm:"size:1;not null"`
	Evaluator        string `gorm:"size:100"`
}

// TableName returns the table name for GORM
func (SupplierEvaluation) TableName() string {
	return "supplier_evaluations"
}

// NewSupplierEvaluation validates the four scores (0-25 each) and computes
// total and grade.
func NewSupplierEvaluation(supplierName, period string, quality, delivery, price, service int, evaluator string) (*SupplierEvaluation, error) {
	if supplierName == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "supplier name is required")
	}
	for _, score := range []int{quality, delivery, price, service} {
		if score < 0 || score > 25 {
			return nil, shared.NewDomainError("INVALID_INPUT", "each score must be between 0 and 25")
		}
	}

	total := quality + delivery + price + service
	return &SupplierEvaluation{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		EvaluationNumber:  shared.NewDocumentNumber(shared.PrefixSupplierEval),
		SupplierName:      supplierName,
		Period:            period,
		QualityScore:      quality,
		DeliveryScore:     delivery,
		PriceScore:        price,
		ServiceScore:      service,
		TotalScore:        total,
		Grade:             GradeForScore(total),
		Evaluator:         evaluator,
	}, nil
}

// GradeForScore maps a 0-100 total to a letter grade
func GradeForScore(total int) string {
	switch {
	case total >= 90:
		return "A"
	case total >= 75:
		return "B"
	case total >= 60:
		return "C"
	default:
		return "D"
	}
}
