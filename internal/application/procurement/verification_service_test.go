package procurement

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/scm/backend/internal/domain/procurement"
	"github.com/scm/backend/internal/domain/shared"
)

func newVerificationFixture() (*VerificationService, *MockPurchaseOrderRepository, *MockInvoiceVerificationRepository, *MockTaxInvoiceRepository, *MockPaymentScheduleRepository, *MockSupplierEvaluationRepository) {
	orderRepo := new(MockPurchaseOrderRepository)
	verificationRepo := new(MockInvoiceVerificationRepository)
	taxInvoiceRepo := new(MockTaxInvoiceRepository)
	scheduleRepo := new(MockPaymentScheduleRepository)
	evaluationRepo := new(MockSupplierEvaluationRepository)
	service := NewVerificationService(shared.NopTxManager{}, orderRepo, verificationRepo, taxInvoiceRepo, scheduleRepo, evaluationRepo, zap.NewNop())
	return service, orderRepo, verificationRepo, taxInvoiceRepo, scheduleRepo, evaluationRepo
}

func TestVerificationService_VerifyInvoice_SuggestsMatchWithinTolerance(t *testing.T) {
	service, orderRepo, verificationRepo, _, _, _ := newVerificationFixture()
	ctx := context.Background()
	po := newOrderedPO(t) // 100 EA x 50,000 = 5,000,000

	orderRepo.On("FindByID", ctx, po.ID).Return(po, nil)
	verificationRepo.On("Save", ctx, mock.AnythingOfType("*procurement.InvoiceVerification")).Return(nil)

	iv, err := service.VerifyInvoice(ctx, VerifyInvoiceRequest{
		PurchaseOrderID: po.ID,
		InvoiceAmount:   decimal.NewFromInt(5050000),
	})

	require.NoError(t, err)
	assert.Equal(t, procurement.MatchSuggestionMatch, iv.Suggestion)
	assert.Equal(t, procurement.DispositionVerifying, iv.Disposition)
	verificationRepo.AssertExpectations(t)
}

func TestVerificationService_DecideVerification(t *testing.T) {
	service, _, verificationRepo, _, _, _ := newVerificationFixture()
	ctx := context.Background()
	po := newOrderedPO(t)
	iv, err := procurement.NewInvoiceVerification(po, nil, decimal.NewFromInt(5200000))
	require.NoError(t, err)

	verificationRepo.On("FindByID", ctx, iv.ID).Return(iv, nil)
	verificationRepo.On("Save", ctx, iv).Return(nil)

	decided, err := service.DecideVerification(ctx, iv.ID, DecideVerificationRequest{
		Disposition: string(procurement.DispositionMatchedApproved),
		Reviewer:    "박경리",
	})

	require.NoError(t, err)
	assert.Equal(t, procurement.MatchSuggestionMismatch, decided.Suggestion)
	assert.Equal(t, procurement.DispositionMatchedApproved, decided.Disposition)
	assert.Equal(t, "박경리", decided.Reviewer)
}

func TestVerificationService_DecideVerification_InvalidDisposition(t *testing.T) {
	service, _, verificationRepo, _, _, _ := newVerificationFixture()
	ctx := context.Background()
	po := newOrderedPO(t)
	iv, err := procurement.NewInvoiceVerification(po, nil, decimal.NewFromInt(5000000))
	require.NoError(t, err)

	verificationRepo.On("FindByID", ctx, iv.ID).Return(iv, nil)

	_, err = service.DecideVerification(ctx, iv.ID, DecideVerificationRequest{Disposition: "MAYBE"})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestVerificationService_RegisterTaxInvoice_CreatesSchedule(t *testing.T) {
	service, _, _, taxInvoiceRepo, scheduleRepo, _ := newVerificationFixture()
	ctx := context.Background()
	issueDate := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	taxInvoiceRepo.On("Save", ctx, mock.AnythingOfType("*procurement.PurchaseTaxInvoice")).Return(nil)
	scheduleRepo.On("Save", ctx, mock.AnythingOfType("*procurement.PaymentSchedule")).Return(nil)

	resp, err := service.RegisterTaxInvoice(ctx, RegisterTaxInvoiceRequest{
		SupplierName: "한국전자부품",
		SupplyAmount: decimal.NewFromInt(5000000),
		TaxRate:      decimal.NewFromInt(10),
		IssueDate:    issueDate,
		PaymentTerms: "월말 60일",
	})

	require.NoError(t, err)
	assert.True(t, resp.TaxInvoice.TaxAmount.Equal(decimal.NewFromInt(500000)))
	assert.True(t, resp.TaxInvoice.TotalAmount.Equal(decimal.NewFromInt(5500000)))
	assert.Equal(t, issueDate.AddDate(0, 0, 60), resp.TaxInvoice.DueDate)

	assert.Equal(t, resp.TaxInvoice.ID, resp.PaymentSchedule.TaxInvoiceID)
	assert.True(t, resp.PaymentSchedule.Amount.Equal(resp.TaxInvoice.TotalAmount))
	assert.Equal(t, procurement.PaymentStatusScheduled, resp.PaymentSchedule.Status)
	taxInvoiceRepo.AssertExpectations(t)
	scheduleRepo.AssertExpectations(t)
}

func TestVerificationService_MarkPaymentPaid_SettlesBoth(t *testing.T) {
	service, _, _, taxInvoiceRepo, scheduleRepo, _ := newVerificationFixture()
	ctx := context.Background()

	ti, err := procurement.NewPurchaseTaxInvoice(nil, "한국전자부품",
		decimal.NewFromInt(1000000), decimal.NewFromInt(10), time.Now(), "NET 30")
	require.NoError(t, err)
	ps := procurement.NewPaymentSchedule(ti)

	scheduleRepo.On("FindByID", ctx, ps.ID).Return(ps, nil)
	taxInvoiceRepo.On("FindByID", ctx, ti.ID).Return(ti, nil)
	scheduleRepo.On("Save", ctx, ps).Return(nil)
	taxInvoiceRepo.On("Save", ctx, ti).Return(nil)

	paid, err := service.MarkPaymentPaid(ctx, ps.ID)

	require.NoError(t, err)
	assert.Equal(t, procurement.PaymentStatusPaid, paid.Status)
	assert.True(t, ti.Paid)
	require.NotNil(t, ti.PaidAt)
	scheduleRepo.AssertExpectations(t)
	taxInvoiceRepo.AssertExpectations(t)
}

func TestVerificationService_MarkPaymentPaid_AlreadyPaid(t *testing.T) {
	service, _, _, _, scheduleRepo, _ := newVerificationFixture()
	ctx := context.Background()

	ti, err := procurement.NewPurchaseTaxInvoice(nil, "서울상사",
		decimal.NewFromInt(100000), decimal.NewFromInt(10), time.Now(), "")
	require.NoError(t, err)
	ps := procurement.NewPaymentSchedule(ti)
	require.NoError(t, ps.MarkPaid(time.Now()))

	scheduleRepo.On("FindByID", ctx, ps.ID).Return(ps, nil)

	_, err = service.MarkPaymentPaid(ctx, ps.ID)
	assert.ErrorIs(t, err, shared.ErrInvalidState)
}

func TestVerificationService_ListOverduePayments(t *testing.T) {
	service, _, _, _, scheduleRepo, _ := newVerificationFixture()
	ctx := context.Background()
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	overdueTI, err := procurement.NewPurchaseTaxInvoice(nil, "한국전자부품",
		decimal.NewFromInt(100000), decimal.NewFromInt(10), today.AddDate(0, -2, 0), "NET 30")
	require.NoError(t, err)
	currentTI, err := procurement.NewPurchaseTaxInvoice(nil, "서울상사",
		decimal.NewFromInt(200000), decimal.NewFromInt(10), today, "NET 30")
	require.NoError(t, err)

	scheduled := []procurement.PaymentSchedule{
		*procurement.NewPaymentSchedule(overdueTI),
		*procurement.NewPaymentSchedule(currentTI),
	}
	scheduleRepo.On("FindByStatus", ctx, procurement.PaymentStatusScheduled, mock.AnythingOfType("shared.Filter")).Return(scheduled, nil)

	overdue, err := service.ListOverduePayments(ctx, today)

	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, "한국전자부품", overdue[0].SupplierName)
}

func TestVerificationService_EvaluateSupplier(t *testing.T) {
	service, _, _, _, _, evaluationRepo := newVerificationFixture()
	ctx := context.Background()

	evaluationRepo.On("Save", ctx, mock.AnythingOfType("*procurement.SupplierEvaluation")).Return(nil)

	se, err := service.EvaluateSupplier(ctx, EvaluateSupplierRequest{
		SupplierName:  "한국전자부품",
		Period:        "2024-Q1",
		QualityScore:  24,
		DeliveryScore: 23,
		PriceScore:    22,
		ServiceScore:  24,
		Evaluator:     "이구매",
	})

	require.NoError(t, err)
	assert.Equal(t, 93, se.TotalScore)
	assert.Equal(t, "A", se.Grade)
	evaluationRepo.AssertExpectations(t)
}
