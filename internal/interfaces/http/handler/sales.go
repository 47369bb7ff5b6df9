package handler

import (
	"github.com/gin-gonic/gin"

	salesapp "github.com/scm/backend/internal/application/sales"
	"github.com/scm/backend/internal/interfaces/http/dto"
)

// SalesHandler handles customer, sales order, delivery, return and
// sales invoice endpoints
type SalesHandler struct {
	BaseHandler
	orderService       *salesapp.OrderService
	fulfillmentService *salesapp.FulfillmentService
}

// NewSalesHandler creates a new SalesHandler
func NewSalesHandler(
	orderService *salesapp.OrderService,
	fulfillmentService *salesapp.FulfillmentService,
) *SalesHandler {
	return &SalesHandler{
		orderService:       orderService,
		fulfillmentService: fulfillmentService,
	}
}

// RegisterRoutes registers sales routes on the given group
func (h *SalesHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	{
		customers.POST("", h.CreateCustomer)
		customers.GET("/:id", h.GetCustomer)
	}

	orders := rg.Group("/sales-orders")
	{
		orders.POST("", h.CreateSalesOrder)
		orders.GET("", h.ListSalesOrders)
		orders.GET("/:id", h.GetSalesOrder)
		orders.POST("/:id/cancel", h.CancelSalesOrder)
		orders.POST("/:id/instruct-shipment", h.InstructShipment)
		orders.POST("/:id/complete-delivery", h.CompleteDelivery)
	}

	rg.POST("/deliveries", h.RegisterDelivery)

	returns := rg.Group("/sales-returns")
	{
		returns.POST("", h.CreateSalesReturn)
		returns.POST("/:id/inspect", h.StartReturnInspection)
		returns.POST("/:id/restock", h.RestockReturn)
		returns.POST("/:id/scrap", h.ScrapReturn)
		returns.POST("/:id/refund", h.RefundReturn)
	}

	invoices := rg.Group("/sales-invoices")
	{
		invoices.POST("", h.RegisterSalesInvoice)
		invoices.POST("/:id/paid", h.MarkSalesInvoicePaid)
	}
}

// CreateCustomer registers a customer with a credit limit
func (h *SalesHandler) CreateCustomer(c *gin.Context) {
	var req salesapp.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	customer, err := h.orderService.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, customer)
}

// GetCustomer fetches one customer
func (h *SalesHandler) GetCustomer(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	customer, err := h.orderService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, customer)
}

// CreateSalesOrder receives a customer order, checking credit and stock
func (h *SalesHandler) CreateSalesOrder(c *gin.Context) {
	var req salesapp.CreateSalesOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.orderService.CreateSalesOrder(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, result)
}

// ListSalesOrders lists sales orders with pagination
func (h *SalesHandler) ListSalesOrders(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.orderService.ListSalesOrders(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// GetSalesOrder fetches one sales order
func (h *SalesHandler) GetSalesOrder(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	so, err := h.orderService.GetSalesOrder(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, so)
}

// CancelSalesOrder cancels an order before shipment
func (h *SalesHandler) CancelSalesOrder(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	so, err := h.orderService.CancelSalesOrder(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, so)
}

// InstructShipment moves a confirmed order into preparing
func (h *SalesHandler) InstructShipment(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	so, err := h.fulfillmentService.InstructShipment(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, so)
}

// RegisterDelivery records an outbound shipment and deducts stock
func (h *SalesHandler) RegisterDelivery(c *gin.Context) {
	var req salesapp.RegisterDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	delivery, err := h.fulfillmentService.RegisterDelivery(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, delivery)
}

// CompleteDelivery marks a shipped order as delivered
func (h *SalesHandler) CompleteDelivery(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	so, err := h.fulfillmentService.CompleteDelivery(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, so)
}

// CreateSalesReturn accepts a customer return
func (h *SalesHandler) CreateSalesReturn(c *gin.Context) {
	var req salesapp.CreateSalesReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sr, err := h.fulfillmentService.CreateSalesReturn(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, sr)
}

// StartReturnInspection moves a received return into inspection
func (h *SalesHandler) StartReturnInspection(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sr, err := h.fulfillmentService.StartReturnInspection(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, sr)
}

// RestockReturn returns inspected goods to stock
func (h *SalesHandler) RestockReturn(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sr, err := h.fulfillmentService.RestockReturn(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, sr)
}

// ScrapReturn writes off inspected goods
func (h *SalesHandler) ScrapReturn(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sr, err := h.fulfillmentService.ScrapReturn(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, sr)
}

// RefundReturn settles the refund of a processed return
func (h *SalesHandler) RefundReturn(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sr, err := h.fulfillmentService.RefundReturn(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, sr)
}

// RegisterSalesInvoice issues a sales tax invoice
func (h *SalesHandler) RegisterSalesInvoice(c *gin.Context) {
	var req salesapp.RegisterSalesInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	invoice, err := h.fulfillmentService.RegisterSalesInvoice(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, invoice)
}

// MarkSalesInvoicePaid settles a sales invoice
func (h *SalesHandler) MarkSalesInvoicePaid(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	invoice, err := h.fulfillmentService.MarkSalesInvoicePaid(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, invoice)
}
