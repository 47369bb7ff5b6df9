package procurement

import (
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scm/backend/internal/domain/shared"
)

// defaultPaymentTermDays applies when a supplier's payment terms carry no
// parseable day count.
const defaultPaymentTermDays = 30

var paymentTermDaysPattern = regexp.MustCompile(`\d+`)

// PurchaseTaxInvoice is the tax document issued by a supplier after invoice
// verification. Registering one schedules the corresponding payment.
type PurchaseTaxInvoice struct {
	shared.BaseAggregateRoot
	InvoiceNumber   string          `gorm:"uniqueIndex;size:40;not null"`
	PurchaseOrderID *uuid.UUID      `gorm:"type:uuid;index"`
	SupplierName    string          `gorm:"size:200;not null"`
	SupplyAmount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TaxRate         decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	TaxAmount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	IssueDate       time.Time       `gorm:"not null"`
	DueDate         time.Time       `gorm:"not null"`
	Paid            bool            `gorm:"not null;default:false"`
	PaidAt          *time.Time
}

// TableName returns the table name for GORM
func (PurchaseTaxInvoice) TableName() string {
	return "purchase_tax_invoices"
}

// NewPurchaseTaxInvoice registers a tax invoice. Tax is supply x rate/100
// (rate is 10 for taxable supplies, 0 for zero-rated). The due date is the
// issue date plus the day count parsed from the supplier's payment terms.
func NewPurchaseTaxInvoice(poID *uuid.UUID, supplierName string, supplyAmount, taxRate decimal.Decimal, issueDate time.Time, paymentTerms string) (*PurchaseTaxInvoice, error) {
	if supplierName == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "supplier name is required")
	}
	if supplyAmount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "supply amount cannot be negative")
	}
	if taxRate.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "tax rate cannot be negative")
	}

	taxAmount := supplyAmount.Mul(taxRate).Div(decimal.NewFromInt(100))
	return &PurchaseTaxInvoice{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		InvoiceNumber:     shared.NewDocumentNumber(shared.PrefixTaxInvoice),
		PurchaseOrderID:   poID,
		SupplierName:      supplierName,
		SupplyAmount:      supplyAmount,
		TaxRate:           taxRate,
		TaxAmount:         taxAmount,
		TotalAmount:       supplyAmount.Add(taxAmount),
		IssueDate:         issueDate,
		DueDate:           issueDate.AddDate(0, 0, ParsePaymentTermDays(paymentTerms)),
	}, nil
}

// ParsePaymentTermDays extracts the day count from free-form payment terms
// like "NET 45" or "월말 60일". Falls back to 30 days.
func ParsePaymentTermDays(terms string) int {
	match := paymentTermDaysPattern.FindString(terms)
	if match == "" {
		return defaultPaymentTermDays
	}
	days, err := strconv.Atoi(match)
	if err != nil || days <= 0 {
		return defaultPaymentTermDays
	}
	return days
}

// MarkPaid flags the invoice as settled
func (ti *PurchaseTaxInvoice) MarkPaid(at time.Time) error {
	if ti.Paid {
		return shared.ErrInvalidState
	}
	ti.Paid = true
	ti.PaidAt = &at
	ti.UpdatedAt = time.Now()
	return nil
}

// PaymentSchedule is the payable created when a tax invoice is registered.
// Settling the schedule settles the invoice (TI -> PAY chain).
type PaymentSchedule struct {
	shared.BaseAggregateRoot
	ScheduleNumber string          `gorm:"uniqueIndex;size:40;not null"`
	TaxInvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	SupplierName   string          `gorm:"size:200;not null"`
	Amount         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DueDate        time.Time       `gorm:"not null"`
	Status         PaymentStatus   `gorm:"size:20;not null"`
	PaidAt         *time.Time
}

// TableName returns the table name for GORM
func (PaymentSchedule) TableName() string {
	return "payment_schedules"
}

// NewPaymentSchedule creates the payable for a registered tax invoice
func NewPaymentSchedule(ti *PurchaseTaxInvoice) *PaymentSchedule {
	return &PaymentSchedule{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ScheduleNumber:    shared.NewDocumentNumber(shared.PrefixPaymentSchedule),
		TaxInvoiceID:      ti.ID,
		SupplierName:      ti.SupplierName,
		Amount:            ti.TotalAmount,
		DueDate:           ti.DueDate,
		Status:            PaymentStatusScheduled,
	}
}

// MarkPaid settles the scheduled payment
func (ps *PaymentSchedule) MarkPaid(at time.Time) error {
	if ps.Status != PaymentStatusScheduled {
		return shared.ErrInvalidState
	}
	ps.Status = PaymentStatusPaid
	ps.PaidAt = &at
	ps.UpdatedAt = time.Now()
	return nil
}

// IsOverdue returns true for a scheduled payment past its due date
func (ps *PaymentSchedule) IsOverdue(today time.Time) bool {
	return ps.Status == PaymentStatusScheduled && ps.DueDate.Before(today)
}
