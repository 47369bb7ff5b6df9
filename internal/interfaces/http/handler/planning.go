package handler

import (
	"github.com/gin-gonic/gin"

	planningapp "github.com/scm/backend/internal/application/planning"
	"github.com/scm/backend/internal/interfaces/http/dto"
)

// PlanningHandler handles production plan, BOM and MRP endpoints
type PlanningHandler struct {
	BaseHandler
	mrpService *planningapp.MRPService
}

// NewPlanningHandler creates a new PlanningHandler
func NewPlanningHandler(mrpService *planningapp.MRPService) *PlanningHandler {
	return &PlanningHandler{
		mrpService: mrpService,
	}
}

// RegisterRoutes registers planning routes on the given group
func (h *PlanningHandler) RegisterRoutes(rg *gin.RouterGroup) {
	plans := rg.Group("/production-plans")
	{
		plans.POST("", h.CreateProductionPlan)
		plans.POST("/:id/confirm", h.ConfirmProductionPlan)
		plans.POST("/:id/start", h.StartProductionPlan)
		plans.POST("/:id/complete", h.CompleteProductionPlan)
		plans.POST("/:id/cancel", h.CancelProductionPlan)
	}

	bom := rg.Group("/bom-lines")
	{
		bom.POST("", h.AddBOMLine)
		bom.GET("", h.GetBOM)
		bom.DELETE("/:id", h.RemoveBOMLine)
	}

	mrp := rg.Group("/mrp")
	{
		mrp.POST("/run", h.RunMRP)
		mrp.POST("/requests", h.CreateManualMRPRequest)
		mrp.GET("/requests", h.ListMRPRequests)
	}
}

// CreateProductionPlan drafts a production plan
func (h *PlanningHandler) CreateProductionPlan(c *gin.Context) {
	var req planningapp.CreateProductionPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	plan, err := h.mrpService.CreateProductionPlan(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, plan)
}

// ConfirmProductionPlan confirms a drafted plan
func (h *PlanningHandler) ConfirmProductionPlan(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	plan, err := h.mrpService.ConfirmProductionPlan(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, plan)
}

// StartProductionPlan moves a confirmed plan into production
func (h *PlanningHandler) StartProductionPlan(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	plan, err := h.mrpService.StartProductionPlan(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, plan)
}

// CompleteProductionPlan completes a running plan
func (h *PlanningHandler) CompleteProductionPlan(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	plan, err := h.mrpService.CompleteProductionPlan(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, plan)
}

// CancelProductionPlan cancels a plan that has not completed
func (h *PlanningHandler) CancelProductionPlan(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	plan, err := h.mrpService.CancelProductionPlan(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, plan)
}

// AddBOMLine registers a component line in a product's bill of materials
func (h *PlanningHandler) AddBOMLine(c *gin.Context) {
	var req planningapp.CreateBOMLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	line, err := h.mrpService.AddBOMLine(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, line)
}

// GetBOM lists the BOM lines of one product
func (h *PlanningHandler) GetBOM(c *gin.Context) {
	productName := c.Query("product_name")
	if productName == "" {
		h.BadRequest(c, "product_name query parameter is required")
		return
	}

	lines, err := h.mrpService.GetBOM(c.Request.Context(), productName)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, lines)
}

// RemoveBOMLine removes a BOM line
func (h *PlanningHandler) RemoveBOMLine(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.mrpService.RemoveBOMLine(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// RunMRP explodes confirmed plans through the BOM and nets against stock
func (h *PlanningHandler) RunMRP(c *gin.Context) {
	var req planningapp.RunMRPRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.BadRequest(c, err.Error())
			return
		}
	}

	result, err := h.mrpService.RunMRP(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// CreateManualMRPRequest records a planner-entered requirement
func (h *PlanningHandler) CreateManualMRPRequest(c *gin.Context) {
	var req planningapp.CreateManualMRPRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	request, err := h.mrpService.CreateManualMRPRequest(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, request)
}

// ListMRPRequests lists open material requirements
func (h *PlanningHandler) ListMRPRequests(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	requests, err := h.mrpService.ListMRPRequests(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, requests)
}
