package procurement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/scm/backend/internal/domain/procurement"
	"github.com/scm/backend/internal/domain/shared"
)

// VerificationService covers the payables side: three-way match, tax invoice
// registration and the payment schedule chain.
type VerificationService struct {
	tx               shared.TxManager
	orderRepo        procurement.PurchaseOrderRepository
	verificationRepo procurement.InvoiceVerificationRepository
	taxInvoiceRepo   procurement.TaxInvoiceRepository
	scheduleRepo     procurement.PaymentScheduleRepository
	evaluationRepo   procurement.SupplierEvaluationRepository
	logger           *zap.Logger
}

// NewVerificationService creates a new VerificationService
func NewVerificationService(
	tx shared.TxManager,
	orderRepo procurement.PurchaseOrderRepository,
	verificationRepo procurement.InvoiceVerificationRepository,
	taxInvoiceRepo procurement.TaxInvoiceRepository,
	scheduleRepo procurement.PaymentScheduleRepository,
	evaluationRepo procurement.SupplierEvaluationRepository,
	logger *zap.Logger,
) *VerificationService {
	return &VerificationService{
		tx:               tx,
		orderRepo:        orderRepo,
		verificationRepo: verificationRepo,
		taxInvoiceRepo:   taxInvoiceRepo,
		scheduleRepo:     scheduleRepo,
		evaluationRepo:   evaluationRepo,
		logger:           logger,
	}
}

// VerifyInvoice opens a three-way match for a supplier invoice. The match
// suggestion is computed against the order amount; the reviewer decides later.
func (s *VerificationService) VerifyInvoice(ctx context.Context, req VerifyInvoiceRequest) (*procurement.InvoiceVerification, error) {
	po, err := s.orderRepo.FindByID(ctx, req.PurchaseOrderID)
	if err != nil {
		return nil, err
	}

	iv, err := procurement.NewInvoiceVerification(po, req.GoodsReceiptID, req.InvoiceAmount)
	if err != nil {
		return nil, err
	}
	if err := s.verificationRepo.Save(ctx, iv); err != nil {
		return nil, err
	}

	s.logger.Info("invoice verification opened",
		zap.String("verification_number", iv.VerificationNumber),
		zap.String("suggestion", string(iv.Suggestion)))
	return iv, nil
}

// DecideVerification records the reviewer's final disposition
func (s *VerificationService) DecideVerification(ctx context.Context, id uuid.UUID, req DecideVerificationRequest) (*procurement.InvoiceVerification, error) {
	iv, err := s.verificationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := iv.Decide(procurement.VerificationDisposition(req.Disposition), req.Reviewer); err != nil {
		return nil, err
	}
	if err := s.verificationRepo.Save(ctx, iv); err != nil {
		return nil, err
	}
	return iv, nil
}

// RegisterTaxInvoice registers a purchase tax invoice and creates its payment
// schedule in the same transaction. The due date comes from the supplier's
// payment terms.
func (s *VerificationService) RegisterTaxInvoice(ctx context.Context, req RegisterTaxInvoiceRequest) (*RegisterTaxInvoiceResponse, error) {
	issueDate := req.IssueDate
	if issueDate.IsZero() {
		issueDate = time.Now()
	}

	ti, err := procurement.NewPurchaseTaxInvoice(req.PurchaseOrderID, req.SupplierName, req.SupplyAmount, req.TaxRate, issueDate, req.PaymentTerms)
	if err != nil {
		return nil, err
	}
	ps := procurement.NewPaymentSchedule(ti)

	err = s.tx.Do(ctx, func(ctx context.Context) error {
		if err := s.taxInvoiceRepo.Save(ctx, ti); err != nil {
			return err
		}
		return s.scheduleRepo.Save(ctx, ps)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("tax invoice registered",
		zap.String("invoice_number", ti.InvoiceNumber),
		zap.String("schedule_number", ps.ScheduleNumber),
		zap.Time("due_date", ti.DueDate))
	return &RegisterTaxInvoiceResponse{TaxInvoice: ti, PaymentSchedule: ps}, nil
}

// MarkPaymentPaid settles a scheduled payment and the tax invoice it was
// created for, atomically.
func (s *VerificationService) MarkPaymentPaid(ctx context.Context, scheduleID uuid.UUID) (*procurement.PaymentSchedule, error) {
	var ps *procurement.PaymentSchedule

	err := s.tx.Do(ctx, func(ctx context.Context) error {
		var err error
		ps, err = s.scheduleRepo.FindByID(ctx, scheduleID)
		if err != nil {
			return err
		}

		now := time.Now()
		if err := ps.MarkPaid(now); err != nil {
			return err
		}

		ti, err := s.taxInvoiceRepo.FindByID(ctx, ps.TaxInvoiceID)
		if err != nil {
			return err
		}
		if err := ti.MarkPaid(now); err != nil {
			return err
		}

		if err := s.scheduleRepo.Save(ctx, ps); err != nil {
			return err
		}
		return s.taxInvoiceRepo.Save(ctx, ti)
	})
	if err != nil {
		return nil, err
	}
	return ps, nil
}

// ListOverduePayments lists scheduled payments past their due date
func (s *VerificationService) ListOverduePayments(ctx context.Context, today time.Time) ([]procurement.PaymentSchedule, error) {
	scheduled, err := s.scheduleRepo.FindByStatus(ctx, procurement.PaymentStatusScheduled, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}

	overdue := make([]procurement.PaymentSchedule, 0)
	for _, ps := range scheduled {
		if ps.IsOverdue(today) {
			overdue = append(overdue, ps)
		}
	}
	return overdue, nil
}

// EvaluateSupplier records a quarterly supplier scorecard. The grade is
// derived from the total score.
func (s *VerificationService) EvaluateSupplier(ctx context.Context, req EvaluateSupplierRequest) (*procurement.SupplierEvaluation, error) {
	se, err := procurement.NewSupplierEvaluation(req.SupplierName, req.Period,
		req.QualityScore, req.DeliveryScore, req.PriceScore, req.ServiceScore, req.Evaluator)
	if err != nil {
		return nil, err
	}
	if err := s.evaluationRepo.Save(ctx, se); err != nil {
		return nil, err
	}
	return se, nil
}

// ListSupplierEvaluations lists the evaluation history of a supplier
func (s *VerificationService) ListSupplierEvaluations(ctx context.Context, supplierName string) ([]procurement.SupplierEvaluation, error) {
	return s.evaluationRepo.FindBySupplier(ctx, supplierName)
}
