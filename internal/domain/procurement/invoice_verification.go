package procurement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scm/backend/internal/domain/shared"
)

// matchTolerancePercent is the three-way-match tolerance: an invoice within
// 1% of the order amount is suggested as a match.
var matchTolerancePercent = decimal.NewFromFloat(0.01)

// MatchSuggestion is the automatic outcome of comparing invoice and order amounts
type MatchSuggestion string

const (
	MatchSuggestionMatch    MatchSuggestion = "MATCH"
	MatchSuggestionMismatch MatchSuggestion = "MISMATCH"
)

// InvoiceVerification records a three-way match of purchase order, goods
// receipt and supplier invoice. The automatic suggestion and the reviewer's
// final disposition are separate fields: a reviewer may approve a mismatch
// or hold a match.
type InvoiceVerification struct {
	shared.BaseAggregateRoot
	VerificationNumber string          `gorm:"uniqueIndex;size:40;not null"`
	PurchaseOrderID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	GoodsReceiptID     *uuid.UUID      `gorm:"type:uuid;index"`
	SupplierName       string          `gorm:"size:200"`
	OrderAmount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	InvoiceAmount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Suggestion         MatchSuggestion `gorm:"size:20;not null"`
	Disposition        VerificationDisposition `gorm:"size:30;not null"`
	Reviewer           string          `gorm:"size:100"`
	ReviewedAt         *time.Time
}

// TableName returns the table name for GORM
func (InvoiceVerification) TableName() string {
	return "invoice_verifications"
}

// NewInvoiceVerification creates a verification with the automatic match
// suggestion computed. Disposition starts at VERIFYING until a reviewer acts.
func NewInvoiceVerification(po *PurchaseOrder, grID *uuid.UUID, invoiceAmount decimal.Decimal) (*InvoiceVerification, error) {
	if invoiceAmount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "invoice amount cannot be negative")
	}

	orderAmount := po.TotalAmount()
	return &InvoiceVerification{
		BaseAggregateRoot:  shared.NewBaseAggregateRoot(),
		VerificationNumber: shared.NewDocumentNumber(shared.PrefixInvoiceVerify),
		PurchaseOrderID:    po.ID,
		GoodsReceiptID:     grID,
		SupplierName:       po.SupplierName,
		OrderAmount:        orderAmount,
		InvoiceAmount:      invoiceAmount,
		Suggestion:         SuggestMatch(orderAmount, invoiceAmount),
		Disposition:        DispositionVerifying,
	}, nil
}

// SuggestMatch returns MATCH when the invoice is within 1% of the order
// amount, MISMATCH otherwise. A zero order amount only matches a zero invoice.
func SuggestMatch(orderAmount, invoiceAmount decimal.Decimal) MatchSuggestion {
	tolerance := orderAmount.Abs().Mul(matchTolerancePercent)
	if invoiceAmount.Sub(orderAmount).Abs().LessThanOrEqual(tolerance) {
		return MatchSuggestionMatch
	}
	return MatchSuggestionMismatch
}

// Decide records the reviewer's final disposition. Only a verification still
// in VERIFYING can be decided, and it cannot be moved back.
func (iv *InvoiceVerification) Decide(disposition VerificationDisposition, reviewer string) error {
	if !disposition.IsValid() || disposition == DispositionVerifying {
		return shared.ErrInvalidInput
	}
	if iv.Disposition != DispositionVerifying {
		return shared.ErrInvalidState
	}
	now := time.Now()
	iv.Disposition = disposition
	iv.Reviewer = reviewer
	iv.ReviewedAt = &now
	iv.UpdatedAt = now
	return nil
}

// AmountVariance returns invoice amount minus order amount
func (iv *InvoiceVerification) AmountVariance() decimal.Decimal {
	return iv.InvoiceAmount.Sub(iv.OrderAmount)
}
