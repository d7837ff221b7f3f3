package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/jewel_ledger/internal/core/ports/services"
	"github.com/SscSPs/jewel_ledger/internal/dto"
	"github.com/SscSPs/jewel_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// orderHandler handles HTTP requests related to customer orders.
type orderHandler struct {
	orderService portssvc.OrderSvcFacade
}

// newOrderHandler creates a new orderHandler.
func newOrderHandler(orderService portssvc.OrderSvcFacade) *orderHandler {
	return &orderHandler{
		orderService: orderService,
	}
}

// createOrder godoc
// @Summary Open a customer order
// @Description Creates an order in draft status with nothing paid
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   shopID path string true "Shop ID"
// @Param   order body dto.CreateOrderRequest true "Order details"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 409 {object} map[string]string "Order number already used"
// @Failure 500 {object} map[string]string "Failed to create order"
// @Security BearerAuth
// @Router /shops/{shopID}/orders [post]
func (h *orderHandler) createOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !bindJSON(c, &req, "CreateOrder") {
		return
	}
	actorID, ok := actorFrom(c)
	if !ok {
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), c.Param("shopID"), req, actorID)
	if err != nil {
		respondError(c, err, "Failed to create order")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Order created", slog.String("order_id", order.OrderID))
	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

// getOrder godoc
// @Summary Get an order
// @Tags orders
// @Produce  json
// @Param   shopID path string true "Shop ID"
// @Param   orderID path string true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 500 {object} map[string]string "Failed to get order"
// @Security BearerAuth
// @Router /shops/{shopID}/orders/{orderID} [get]
func (h *orderHandler) getOrder(c *gin.Context) {
	order, err := h.orderService.GetOrder(c.Request.Context(), c.Param("shopID"), c.Param("orderID"))
	if err != nil {
		respondError(c, err, "Failed to get order")
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// updateOrderStatus godoc
// @Summary Change an order's status
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   shopID path string true "Shop ID"
// @Param   orderID path string true "Order ID"
// @Param   status body dto.UpdateOrderStatusRequest true "Target status"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 409 {object} map[string]string "Transition not allowed"
// @Failure 500 {object} map[string]string "Failed to update order status"
// @Security BearerAuth
// @Router /shops/{shopID}/orders/{orderID}/status [patch]
func (h *orderHandler) updateOrderStatus(c *gin.Context) {
	var req dto.UpdateOrderStatusRequest
	if !bindJSON(c, &req, "UpdateOrderStatus") {
		return
	}
	actorID, ok := actorFrom(c)
	if !ok {
		return
	}

	order, err := h.orderService.UpdateOrderStatus(c.Request.Context(), c.Param("shopID"), c.Param("orderID"), req.Status, actorID)
	if err != nil {
		respondError(c, err, "Failed to update order status")
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

func registerOrderRoutes(shop *gin.RouterGroup, orderService portssvc.OrderSvcFacade) {
	h := newOrderHandler(orderService)

	orders := shop.Group("/orders")
	{
		orders.POST("", h.createOrder)
		orders.GET("/:orderID", h.getOrder)
		orders.PATCH("/:orderID/status", h.updateOrderStatus)
	}
}
