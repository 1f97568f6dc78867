package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Keoroanthony/go-crm/internal/service"
)

// Name and Email are pointers so that binding only rejects absent keys; a
// blank value is reported by customer validation as a message.
type CreateCustomerRequest struct {
	Name  *string `json:"name" binding:"required"`
	Email *string `json:"email" binding:"required"`
	Phone *string `json:"phone"`
}

// Rows are not bound individually; bad rows are reported per row.
type BulkCreateCustomersRequest struct {
	Input []CreateCustomerRequest `json:"input" binding:"required"`
}

func (r CreateCustomerRequest) toInput() service.CustomerInput {
	return service.CustomerInput{Name: deref(r.Name), Email: deref(r.Email), Phone: r.Phone}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (h *Handler) ListCustomers(c *gin.Context) {
	customers, err := h.querier.ListCustomers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

func (h *Handler) CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.creator.CreateCustomer(c.Request.Context(), req.toInput())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	status := http.StatusCreated
	if res.Customer == nil {
		status = http.StatusOK
	}
	c.JSON(status, gin.H{"customer": res.Customer, "message": res.Message})
}

func (h *Handler) BulkCreateCustomers(c *gin.Context) {
	var req BulkCreateCustomersRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inputs := make([]service.CustomerInput, 0, len(req.Input))
	for _, row := range req.Input {
		inputs = append(inputs, row.toInput())
	}

	res, err := h.creator.BulkCreateCustomers(c.Request.Context(), inputs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"customers": res.Customers, "errors": res.Errors})
}
