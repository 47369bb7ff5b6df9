package handler

import (
	"github.com/gin-gonic/gin"

	procurementapp "github.com/scm/backend/internal/application/procurement"
	"github.com/scm/backend/internal/interfaces/http/dto"
)

// ProcurementHandler handles purchase request, quotation and purchase order endpoints
type ProcurementHandler struct {
	BaseHandler
	procurementService *procurementapp.ProcurementService
}

// NewProcurementHandler creates a new ProcurementHandler
func NewProcurementHandler(procurementService *procurementapp.ProcurementService) *ProcurementHandler {
	return &ProcurementHandler{
		procurementService: procurementService,
	}
}

// RegisterRoutes registers procurement routes on the given group
func (h *ProcurementHandler) RegisterRoutes(rg *gin.RouterGroup) {
	requests := rg.Group("/purchase-requests")
	{
		requests.POST("", h.CreatePurchaseRequest)
		requests.GET("", h.ListPurchaseRequests)
		requests.POST("/:id/approve", h.ApprovePurchaseRequest)
		requests.POST("/:id/reject", h.RejectPurchaseRequest)
	}

	quotations := rg.Group("/quotations")
	{
		quotations.POST("", h.RegisterQuotation)
		quotations.POST("/:id/select", h.SelectQuotation)
	}

	orders := rg.Group("/purchase-orders")
	{
		orders.POST("", h.CreatePurchaseOrder)
		orders.GET("", h.ListPurchaseOrders)
		orders.GET("/open", h.ListOpenPurchaseOrders)
		orders.GET("/:id", h.GetPurchaseOrder)
		orders.POST("/:id/cancel", h.CancelPurchaseOrder)
	}
}

// ApprovalRequest carries the approver of an approve/reject decision
type ApprovalRequest struct {
	Approver string `json:"approver"`
}

// CreatePurchaseRequest submits a new purchase request
func (h *ProcurementHandler) CreatePurchaseRequest(c *gin.Context) {
	var req procurementapp.CreatePurchaseRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	pr, err := h.procurementService.CreatePurchaseRequest(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, pr)
}

// ListPurchaseRequests lists purchase requests with pagination
func (h *ProcurementHandler) ListPurchaseRequests(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.procurementService.ListPurchaseRequests(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// ApprovePurchaseRequest approves a pending purchase request
func (h *ProcurementHandler) ApprovePurchaseRequest(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var req ApprovalRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.BadRequest(c, err.Error())
			return
		}
	}

	pr, err := h.procurementService.ApprovePurchaseRequest(c.Request.Context(), id, req.Approver)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, pr)
}

// RejectPurchaseRequest rejects a pending purchase request
func (h *ProcurementHandler) RejectPurchaseRequest(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var req ApprovalRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.BadRequest(c, err.Error())
			return
		}
	}

	pr, err := h.procurementService.RejectPurchaseRequest(c.Request.Context(), id, req.Approver)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, pr)
}

// RegisterQuotation records a supplier quotation
func (h *ProcurementHandler) RegisterQuotation(c *gin.Context) {
	var req procurementapp.CreateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	quotation, err := h.procurementService.RegisterQuotation(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, quotation)
}

// SelectQuotation selects a quotation among those competing for a request
func (h *ProcurementHandler) SelectQuotation(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	quotation, err := h.procurementService.SelectQuotation(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, quotation)
}

// CreatePurchaseOrder places a purchase order
func (h *ProcurementHandler) CreatePurchaseOrder(c *gin.Context) {
	var req procurementapp.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	po, err := h.procurementService.CreatePurchaseOrder(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, po)
}

// ListPurchaseOrders lists purchase orders with pagination
func (h *ProcurementHandler) ListPurchaseOrders(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.procurementService.ListPurchaseOrders(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// ListOpenPurchaseOrders lists orders still waiting on goods
func (h *ProcurementHandler) ListOpenPurchaseOrders(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	orders, err := h.procurementService.ListOpenPurchaseOrders(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, orders)
}

// GetPurchaseOrder fetches one purchase order
func (h *ProcurementHandler) GetPurchaseOrder(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	po, err := h.procurementService.GetPurchaseOrder(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, po)
}

// CancelPurchaseOrder cancels an order that has not started receiving
func (h *ProcurementHandler) CancelPurchaseOrder(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	po, err := h.procurementService.CancelPurchaseOrder(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, po)
}
