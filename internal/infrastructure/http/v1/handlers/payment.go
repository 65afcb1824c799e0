package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradebill/internal/core/apperror"
	"tradebill/internal/core/id"
	"tradebill/internal/domain/documents/payment"
	"tradebill/internal/infrastructure/http/v1/dto"
)

// PaymentHandler provides HTTP handlers for the payment document.
type PaymentHandler struct {
	*BaseHandler
	service *payment.Service
}

// NewPaymentHandler creates a payment handler.
func NewPaymentHandler(base *BaseHandler, service *payment.Service) *PaymentHandler {
	return &PaymentHandler{BaseHandler: base, service: service}
}

// List handles GET /payments - list with client and date filters.
func (h *PaymentHandler) List(c *gin.Context) {
	filter := payment.ListFilter{
		Limit:  h.ParseIntQuery(c, "limit", 50),
		Offset: h.ParseIntQuery(c, "offset", 0),
	}

	if clientStr := c.Query("clientId"); clientStr != "" {
		clientID, err := id.Parse(clientStr)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid client id").
				WithDetail("field", "clientId"))
			return
		}
		filter.ClientID = &clientID
	}

	if from, ok := h.parseDateQuery(c, "dateFrom"); !ok {
		return
	} else if from != nil {
		filter.DateFrom = from
	}

	if to, ok := h.parseDateQuery(c, "dateTo"); !ok {
		return
	} else if to != nil {
		filter.DateTo = to
	}

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, p := range result.Items {
		items[i] = dto.FromPayment(p)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Get handles GET /payments/:id
func (h *PaymentHandler) Get(c *gin.Context) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromPayment(p))
}

// Create handles POST /payments
func (h *PaymentHandler) Create(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	p, err := req.ToEntity()
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Create(c.Request.Context(), p); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromPayment(p))
}

// Update handles PUT /payments/:id
func (h *PaymentHandler) Update(c *gin.Context) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.UpdatePaymentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	existing, err := h.service.GetByID(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	req.ApplyTo(existing)

	if err := h.service.Update(c.Request.Context(), existing); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromPayment(existing))
}

// Delete handles DELETE /payments/:id - soft delete.
func (h *PaymentHandler) Delete(c *gin.Context) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), docID); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
