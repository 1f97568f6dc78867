package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Keoroanthony/go-crm/internal/service"
)

// CustomerID is not required at bind time: an unknown or zero id is reported
// as an invalid customer rather than a bad request.
type CreateOrderRequest struct {
	CustomerID uint       `json:"customer_id"`
	ProductIDs []uint     `json:"product_ids" binding:"required"`
	OrderDate  *time.Time `json:"order_date"`
}

func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.querier.ListOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	res, err := h.creator.CreateOrder(c.Request.Context(), service.OrderInput{
		CustomerID: req.CustomerID,
		ProductIDs: req.ProductIDs,
		OrderDate:  req.OrderDate,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	status := http.StatusCreated
	if res.Order == nil {
		status = http.StatusOK
	}
	c.JSON(status, gin.H{"order": res.Order, "message": res.Message})
}
