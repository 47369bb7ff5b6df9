package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	procurementapp "github.com/scm/backend/internal/application/procurement"
)

// VerificationHandler handles goods receipt, invoice verification, tax invoice,
// payment schedule and supplier evaluation endpoints
type VerificationHandler struct {
	BaseHandler
	receivingService    *procurementapp.ReceivingService
	verificationService *procurementapp.VerificationService
}

// NewVerificationHandler creates a new VerificationHandler
func NewVerificationHandler(
	receivingService *procurementapp.ReceivingService,
	verificationService *procurementapp.VerificationService,
) *VerificationHandler {
	return &VerificationHandler{
		receivingService:    receivingService,
		verificationService: verificationService,
	}
}

// RegisterRoutes registers receiving and verification routes on the given group
func (h *VerificationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/goods-receipts", h.RecordGoodsReceipt)

	verifications := rg.Group("/invoice-verifications")
	{
		verifications.POST("", h.VerifyInvoice)
		verifications.POST("/:id/decide", h.DecideVerification)
	}

	rg.POST("/tax-invoices", h.RegisterTaxInvoice)

	payments := rg.Group("/payment-schedules")
	{
		payments.GET("/overdue", h.ListOverduePayments)
		payments.POST("/:id/paid", h.MarkPaymentPaid)
	}

	evaluations := rg.Group("/supplier-evaluations")
	{
		evaluations.POST("", h.EvaluateSupplier)
		evaluations.GET("", h.ListSupplierEvaluations)
	}
}

// RecordGoodsReceipt posts a goods receipt against a purchase order
func (h *VerificationHandler) RecordGoodsReceipt(c *gin.Context) {
	var req procurementapp.RecordGoodsReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.receivingService.RecordGoodsReceipt(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, result)
}

// VerifyInvoice runs a three-way match of order, receipt and invoice
func (h *VerificationHandler) VerifyInvoice(c *gin.Context) {
	var req procurementapp.VerifyInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	verification, err := h.verificationService.VerifyInvoice(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, verification)
}

// DecideVerification records the reviewer's disposition of a mismatch
func (h *VerificationHandler) DecideVerification(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var req procurementapp.DecideVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	verification, err := h.verificationService.DecideVerification(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, verification)
}

// RegisterTaxInvoice registers a purchase tax invoice and its payment schedule
func (h *VerificationHandler) RegisterTaxInvoice(c *gin.Context) {
	var req procurementapp.RegisterTaxInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.verificationService.RegisterTaxInvoice(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, result)
}

// MarkPaymentPaid settles a payment schedule
func (h *VerificationHandler) MarkPaymentPaid(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	schedule, err := h.verificationService.MarkPaymentPaid(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, schedule)
}

// ListOverduePayments lists unpaid schedules past their due date.
// An explicit as_of date can override today for back-dated reporting.
func (h *VerificationHandler) ListOverduePayments(c *gin.Context) {
	asOf := time.Now()
	if raw := c.Query("as_of"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			h.BadRequest(c, "as_of must be formatted as YYYY-MM-DD")
			return
		}
		asOf = parsed
	}

	schedules, err := h.verificationService.ListOverduePayments(c.Request.Context(), asOf)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, schedules)
}

// EvaluateSupplier records a scored supplier evaluation
func (h *VerificationHandler) EvaluateSupplier(c *gin.Context) {
	var req procurementapp.EvaluateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	evaluation, err := h.verificationService.EvaluateSupplier(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, evaluation)
}

// ListSupplierEvaluations lists evaluations, optionally for one supplier
func (h *VerificationHandler) ListSupplierEvaluations(c *gin.Context) {
	evaluations, err := h.verificationService.ListSupplierEvaluations(c.Request.Context(), c.Query("supplier_name"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, evaluations)
}
