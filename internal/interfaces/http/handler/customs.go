package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	customsapp "github.com/scm/backend/internal/application/customs"
	"github.com/scm/backend/internal/interfaces/http/dto"
)

// CustomsHandler handles trade document, declaration, landed cost and
// exchange rate endpoints
type CustomsHandler struct {
	BaseHandler
	declarationService *customsapp.DeclarationService
	rateService        *customsapp.RateService
}

// NewCustomsHandler creates a new CustomsHandler
func NewCustomsHandler(
	declarationService *customsapp.DeclarationService,
	rateService *customsapp.RateService,
) *CustomsHandler {
	return &CustomsHandler{
		declarationService: declarationService,
		rateService:        rateService,
	}
}

// RegisterRoutes registers customs routes on the given group
func (h *CustomsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/commercial-invoices", h.RegisterCommercialInvoice)
	rg.POST("/bills-of-lading", h.RegisterBillOfLading)
	rg.POST("/landed-cost/quote", h.QuoteLandedCost)

	imports := rg.Group("/import-declarations")
	{
		imports.POST("", h.FileImportDeclaration)
		imports.POST("/:id/screen", h.StartImportScreening)
		imports.POST("/:id/clear", h.ClearImport)
		imports.POST("/:id/hold", h.HoldImport)
		imports.POST("/:id/reject", h.RejectImport)
	}

	rg.POST("/export-screenings", h.ScreenExport)
	rg.POST("/export-declarations", h.FileExportDeclaration)

	rg.POST("/hs-codes", h.RegisterHSCode)
	rg.POST("/fta-agreements", h.RegisterFTAAgreement)

	rates := rg.Group("/exchange-rates")
	{
		rates.POST("/refresh", h.RefreshRates)
		rates.POST("", h.AppendManualRate)
		rates.GET("", h.GetRateTable)
		rates.GET("/history", h.GetRateHistory)
	}
}

// RegisterHSCodeRequest is the payload for registering a tariff line
type RegisterHSCodeRequest struct {
	Code        string          `json:"code" binding:"required"`
	Description string          `json:"description"`
	DutyRate    decimal.Decimal `json:"duty_rate"`
	VATRate     decimal.Decimal `json:"vat_rate"`
	Unit        string          `json:"unit"`
}

// RegisterFTAAgreementRequest is the payload for registering an FTA line
type RegisterFTAAgreementRequest struct {
	Name             string          `json:"name" binding:"required"`
	PartnerCountry   string          `json:"partner_country" binding:"required"`
	HSCode           string          `json:"hs_code" binding:"required"`
	PreferentialRate decimal.Decimal `json:"preferential_rate"`
	OriginCriteria   string          `json:"origin_criteria"`
}

// RegisterCommercialInvoice registers a commercial invoice
func (h *CustomsHandler) RegisterCommercialInvoice(c *gin.Context) {
	var req customsapp.RegisterCommercialInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	ci, err := h.declarationService.RegisterCommercialInvoice(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, ci)
}

// RegisterBillOfLading registers a bill of lading
func (h *CustomsHandler) RegisterBillOfLading(c *gin.Context) {
	var req customsapp.RegisterBillOfLadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	bl, err := h.declarationService.RegisterBillOfLading(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, bl)
}

// QuoteLandedCost computes the duty and VAT breakdown of a prospective import
func (h *CustomsHandler) QuoteLandedCost(c *gin.Context) {
	var req customsapp.QuoteLandedCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	quote, err := h.declarationService.QuoteLandedCost(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, quote)
}

// FileImportDeclaration files an import declaration
func (h *CustomsHandler) FileImportDeclaration(c *gin.Context) {
	var req customsapp.FileImportDeclarationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	decl, err := h.declarationService.FileImportDeclaration(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, decl)
}

// StartImportScreening moves a filed declaration into screening
func (h *CustomsHandler) StartImportScreening(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	decl, err := h.declarationService.StartImportScreening(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, decl)
}

// ClearImport clears a screened declaration
func (h *CustomsHandler) ClearImport(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	decl, err := h.declarationService.ClearImport(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, decl)
}

// HoldImport puts a declaration on customs hold
func (h *CustomsHandler) HoldImport(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	decl, err := h.declarationService.HoldImport(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, decl)
}

// RejectImport rejects a declaration
func (h *CustomsHandler) RejectImport(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	decl, err := h.declarationService.RejectImport(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, decl)
}

// ScreenExport checks a shipment against export controls
func (h *CustomsHandler) ScreenExport(c *gin.Context) {
	var req customsapp.ScreenExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.declarationService.ScreenExport(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// FileExportDeclaration screens and files an export declaration
func (h *CustomsHandler) FileExportDeclaration(c *gin.Context) {
	var req customsapp.FileExportDeclarationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	decl, err := h.declarationService.FileExportDeclaration(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, decl)
}

// RegisterHSCode registers a tariff line in the local table
func (h *CustomsHandler) RegisterHSCode(c *gin.Context) {
	var req RegisterHSCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	hs, err := h.declarationService.RegisterHSCode(c.Request.Context(),
		req.Code, req.Description, req.DutyRate, req.VATRate, req.Unit)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, hs)
}

// RegisterFTAAgreement registers a preferential tariff agreement
func (h *CustomsHandler) RegisterFTAAgreement(c *gin.Context) {
	var req RegisterFTAAgreementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	fta, err := h.declarationService.RegisterFTAAgreement(c.Request.Context(),
		req.Name, req.PartnerCountry, req.HSCode, req.PreferentialRate, req.OriginCriteria)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, fta)
}

// RefreshRates pulls the latest quotes from the rate feed
func (h *CustomsHandler) RefreshRates(c *gin.Context) {
	result, err := h.rateService.RefreshRates(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// AppendManualRate records a manually entered quote
func (h *CustomsHandler) AppendManualRate(c *gin.Context) {
	var req customsapp.AppendRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	record, err := h.rateService.AppendManualRate(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, record)
}

// GetRateTable returns the latest quote per currency
func (h *CustomsHandler) GetRateTable(c *gin.Context) {
	table, err := h.rateService.LoadRateTable(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, table)
}

// GetRateHistory lists the append history of one currency, newest first
func (h *CustomsHandler) GetRateHistory(c *gin.Context) {
	currency := c.Query("currency")
	if currency == "" {
		h.BadRequest(c, "currency query parameter is required")
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	history, err := h.rateService.GetRateHistory(c.Request.Context(), currency, req.ToFilter())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, history)
}
