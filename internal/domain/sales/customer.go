package sales

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/scm/backend/internal/domain/shared"
)

// Customer carries the credit account the order flow checks against.
// A zero credit limit means unlimited credit.
type Customer struct {
	shared.BaseAggregateRoot
	Name         string          `gorm:"uniqueIndex;size:200;not null"`
	Contact      string          `gorm:"size:100"`
	PaymentTerms string          `gorm:"size:100"`
	CreditLimit  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	CreditUsed   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a customer with an empty credit account
func NewCustomer(name, contact, paymentTerms string, creditLimit decimal.Decimal) (*Customer, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "customer name is required")
	}
	if creditLimit.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "credit limit cannot be negative")
	}

	return &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Contact:           contact,
		PaymentTerms:      paymentTerms,
		CreditLimit:       creditLimit,
	}, nil
}

// RemainingCredit returns limit minus used. Meaningless when the limit is
// zero (unlimited); callers should check HasCreditLimit first.
func (c *Customer) RemainingCredit() decimal.Decimal {
	return c.CreditLimit.Sub(c.CreditUsed)
}

// HasCreditLimit returns false for unlimited-credit customers
func (c *Customer) HasCreditLimit() bool {
	return !c.CreditLimit.IsZero()
}

// CheckCredit returns nil when an order of the given amount may proceed:
// either the customer has no limit or the amount fits the remaining credit.
func (c *Customer) CheckCredit(amount decimal.Decimal) error {
	if !c.HasCreditLimit() {
		return nil
	}
	if amount.GreaterThan(c.RemainingCredit()) {
		return shared.ErrCreditLimitExceeded
	}
	return nil
}

// ConsumeCredit books an order amount against the credit account.
// Credit is consumed even for unlimited customers so exposure stays visible.
func (c *Customer) ConsumeCredit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "amount cannot be negative")
	}
	if err := c.CheckCredit(amount); err != nil {
		return err
	}
	c.CreditUsed = c.CreditUsed.Add(amount)
	c.UpdatedAt = time.Now()
	return nil
}
