package handler

import (
	"github.com/gin-gonic/gin"

	inventoryapp "github.com/scm/backend/internal/application/inventory"
	"github.com/scm/backend/internal/domain/inventory"
	"github.com/scm/backend/internal/interfaces/http/dto"
)

// InventoryHandler handles inventory item, stocktake, movement and
// disposal endpoints
type InventoryHandler struct {
	BaseHandler
	warehouseService *inventoryapp.WarehouseService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(warehouseService *inventoryapp.WarehouseService) *InventoryHandler {
	return &InventoryHandler{
		warehouseService: warehouseService,
	}
}

// RegisterRoutes registers inventory routes on the given group
func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	items := rg.Group("/inventory-items")
	{
		items.POST("", h.RegisterItem)
		items.GET("", h.ListItems)
		items.GET("/:code", h.GetItem)
		items.POST("/:code/close-stocktake", h.CloseStocktake)
		items.GET("/:code/movements", h.ListMovements)
	}

	rg.POST("/stock-counts", h.RecordCount)
	rg.GET("/variance-report", h.VarianceReport)
	rg.GET("/stock-movements", h.ListMovementsByReference)

	disposals := rg.Group("/disposals")
	{
		disposals.POST("", h.CreateDisposal)
		disposals.GET("", h.ListDisposals)
		disposals.POST("/:id/approve", h.ApproveDisposal)
		disposals.POST("/:id/reject", h.RejectDisposal)
		disposals.POST("/:id/process", h.ProcessDisposal)
	}
}

// RegisterItem registers a new inventory item
func (h *InventoryHandler) RegisterItem(c *gin.Context) {
	var req inventoryapp.RegisterItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.warehouseService.RegisterItem(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, item)
}

// ListItems lists inventory items with pagination
func (h *InventoryHandler) ListItems(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := req.ToFilter()
	if warehouse := c.Query("warehouse"); warehouse != "" {
		filter.Filters = map[string]interface{}{"warehouse": warehouse}
	}

	result, err := h.warehouseService.ListItems(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// GetItem fetches an item by its code
func (h *InventoryHandler) GetItem(c *gin.Context) {
	item, err := h.warehouseService.GetItem(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, item)
}

// RecordCount writes a physical count into an item
func (h *InventoryHandler) RecordCount(c *gin.Context) {
	var req inventoryapp.RecordCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.warehouseService.RecordCount(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, item)
}

// VarianceReport reconciles counted against book quantities
func (h *InventoryHandler) VarianceReport(c *gin.Context) {
	report, err := h.warehouseService.VarianceReport(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, report)
}

// CloseStocktake applies the counted quantity as the new book quantity
func (h *InventoryHandler) CloseStocktake(c *gin.Context) {
	item, err := h.warehouseService.CloseStocktake(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, item)
}

// ListMovements lists the movement history of one item
func (h *InventoryHandler) ListMovements(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	movements, err := h.warehouseService.ListMovements(c.Request.Context(), c.Param("code"), req.ToFilter())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, movements)
}

// ListMovementsByReference lists movements posted under one source document
func (h *InventoryHandler) ListMovementsByReference(c *gin.Context) {
	reference := c.Query("reference")
	if reference == "" {
		h.BadRequest(c, "reference query parameter is required")
		return
	}

	movements, err := h.warehouseService.ListMovementsByReference(c.Request.Context(), reference)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, movements)
}

// CreateDisposal requests a stock write-off
func (h *InventoryHandler) CreateDisposal(c *gin.Context) {
	var req inventoryapp.CreateDisposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	disposal, err := h.warehouseService.CreateDisposal(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, disposal)
}

// ListDisposals lists disposals, optionally by status
func (h *InventoryHandler) ListDisposals(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	status := inventory.DisposalStatus(c.Query("status"))
	if status != "" && !status.IsValid() {
		h.BadRequest(c, "unknown disposal status")
		return
	}

	disposals, err := h.warehouseService.ListDisposals(c.Request.Context(), status, req.ToFilter())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, disposals)
}

// ApproveDisposal approves a pending disposal
func (h *InventoryHandler) ApproveDisposal(c *gin.Context) {
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

	disposal, err := h.warehouseService.ApproveDisposal(c.Request.Context(), id, req.Approver)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, disposal)
}

// RejectDisposal rejects a pending disposal
func (h *InventoryHandler) RejectDisposal(c *gin.Context) {
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

	disposal, err := h.warehouseService.RejectDisposal(c.Request.Context(), id, req.Approver)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, disposal)
}

// ProcessDisposal executes an approved disposal and deducts stock
func (h *InventoryHandler) ProcessDisposal(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	disposal, err := h.warehouseService.ProcessDisposal(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, disposal)
}
