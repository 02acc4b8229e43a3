package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"foodexpress/pkg/logger"
	"foodexpress/pkg/models"
)

type orderLineRequest struct {
	ID       int64 `json:"id" binding:"required"`
	Quantity int   `json:"quantity" binding:"required,min=1"`
}

type makeOrderRequest struct {
	Address string             `json:"address" binding:"required"`
	Items   []orderLineRequest `json:"items" binding:"required,min=1,dive"`
}

func (h *handler) makeOrder(c *gin.Context) {
	var req makeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "invalid request body: "+err.Error()))
		return
	}

	lines := make([]models.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, models.OrderLine{ItemID: item.ID, Quantity: item.Quantity})
	}

	userID := currentUserID(c)
	idemKey := c.GetHeader("Idempotency-Key")

	orderID, err := h.svc.Order().CreateOrder(c.Request.Context(), userID, lines, req.Address, idemKey)
	if err != nil {
		h.log.Error("create order failed", logger.Int64("user_id", userID), logger.Error(err))
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order_id": orderID})
}

func (h *handler) getOrder(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "invalid order id"))
		return
	}

	order, err := h.svc.Order().GetOrder(c.Request.Context(), orderID, currentUserID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}

func (h *handler) getUserOrders(c *gin.Context) {
	orders, err := h.svc.Order().GetUserOrders(c.Request.Context(), currentUserID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	if orders == nil {
		orders = []*models.Order{}
	}

	c.JSON(http.StatusOK, gin.H{"user_orders": orders})
}

func (h *handler) getOrderItems(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "invalid order id"))
		return
	}

	items, err := h.svc.Order().GetOrderItems(c.Request.Context(), orderID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
