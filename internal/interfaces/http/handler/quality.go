package handler

import (
	"github.com/gin-gonic/gin"

	qualityapp "github.com/scm/backend/internal/application/quality"
	"github.com/scm/backend/internal/domain/quality"
	"github.com/scm/backend/internal/interfaces/http/dto"
)

// QualityHandler handles inspection, nonconformance and quality KPI endpoints
type QualityHandler struct {
	BaseHandler
	qualityService *qualityapp.QualityService
}

// NewQualityHandler creates a new QualityHandler
func NewQualityHandler(qualityService *qualityapp.QualityService) *QualityHandler {
	return &QualityHandler{
		qualityService: qualityService,
	}
}

// RegisterRoutes registers quality routes on the given group
func (h *QualityHandler) RegisterRoutes(rg *gin.RouterGroup) {
	inspections := rg.Group("/quality-inspections")
	{
		inspections.POST("", h.RegisterInspection)
		inspections.GET("", h.ListInspections)
	}

	ncs := rg.Group("/nonconformances")
	{
		ncs.POST("", h.RegisterNonconformance)
		ncs.GET("", h.ListNonconformances)
		ncs.PUT("/:id", h.UpdateNonconformance)
	}

	rg.GET("/quality-kpi", h.KPIReport)
}

// RegisterInspection records a sampling inspection
func (h *QualityHandler) RegisterInspection(c *gin.Context) {
	var req qualityapp.RegisterInspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	inspection, err := h.qualityService.RegisterInspection(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, inspection)
}

// ListInspections lists inspections, optionally narrowed to one item
func (h *QualityHandler) ListInspections(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.qualityService.ListInspections(c.Request.Context(), c.Query("item_name"), req.ToFilter())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// RegisterNonconformance opens a defect record
func (h *QualityHandler) RegisterNonconformance(c *gin.Context) {
	var req qualityapp.RegisterNonconformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	nc, err := h.qualityService.RegisterNonconformance(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, nc)
}

// ListNonconformances lists defect records, optionally by status
func (h *QualityHandler) ListNonconformances(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	status := quality.NonconformanceStatus(c.Query("status"))
	records, err := h.qualityService.ListNonconformances(c.Request.Context(), status, req.ToFilter())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, records)
}

// UpdateNonconformance moves a record through the corrective-action workflow
func (h *QualityHandler) UpdateNonconformance(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var req qualityapp.UpdateNonconformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	nc, err := h.qualityService.UpdateNonconformance(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, nc)
}

// KPIReport returns the quality KPIs over the full inspection history
func (h *QualityHandler) KPIReport(c *gin.Context) {
	report, err := h.qualityService.KPIReport(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, report)
}
