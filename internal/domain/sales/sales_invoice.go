package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scm/backend/internal/domain/shared"
)

// SalesInvoice bills a delivered sales order
type SalesInvoice struct {
	shared.BaseAggregateRoot
	InvoiceNumber string          `gorm:"uniqueIndex;size:40;not null"`
	SalesOrderID  *uuid.UUID      `gorm:"type:uuid;index"`
	CustomerName  string          `gorm:"size:200;not null"`
	SupplyAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TaxAmount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	IssueDate     time.Time       `gorm:"not null"`
	Paid          bool            `gorm:"not null;default:false"`
	PaidAt        *time.Time
}

// TableName returns the table name for GORM
func (SalesInvoice) TableName() string {
	return "sales_invoices"
}

// NewSalesInvoice issues an invoice; tax is supply x rate/100
func NewSalesInvoice(soID *uuid.UUID, customerName string, supplyAmount, taxRate decimal.Decimal, issueDate time.Time) (*SalesInvoice, error) {
	if customerName == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "customer name is required")
	}
	if supplyAmount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "supply amount cannot be negative")
	}

	tax := supplyAmount.Mul(taxRate).Div(decimal.NewFromInt(100))
	return &SalesInvoice{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		InvoiceNumber:     shared.NewDocumentNumber(shared.PrefixSalesInvoice),
		SalesOrderID:      soID,
		CustomerName:      customerName,
		SupplyAmount:      supplyAmount,
		TaxAmount:         tax,
		TotalAmount:       supplyAmount.Add(tax),
		IssueDate:         issueDate,
	}, nil
}

// MarkPaid records settlement of the invoice
func (si *SalesInvoice) MarkPaid(at time.Time) error {
	if si.Paid {
		return shared.ErrInvalidState
	}
	si.Paid = true
	si.PaidAt = &at
	si.UpdatedAt = time.Now()
	return nil
}
