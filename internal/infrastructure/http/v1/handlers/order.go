package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tradebill/internal/core/apperror"
	"tradebill/internal/core/id"
	"tradebill/internal/domain/documents/order"
	"tradebill/internal/infrastructure/http/v1/dto"
)

// OrderHandler provides HTTP handlers for the order document.
type OrderHandler struct {
	*BaseHandler
	service *order.Service
}

// NewOrderHandler creates an order handler.
func NewOrderHandler(base *BaseHandler, service *order.Service) *OrderHandler {
	return &OrderHandler{BaseHandler: base, service: service}
}

// List handles GET /orders - list with client and date filters.
func (h *OrderHandler) List(c *gin.Context) {
	filter, ok := h.parseListFilter(c)
	if !ok {
		return
	}

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, o := range result.Items {
		items[i] = dto.FromOrder(o)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Get handles GET /orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	o, err := h.service.GetByID(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromOrder(o))
}

// Create handles POST /orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	o, err := req.ToEntity()
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Create(c.Request.Context(), o); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromOrder(o))
}

// Update handles PUT /orders/:id
func (h *OrderHandler) Update(c *gin.Context) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.UpdateOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	existing, err := h.service.GetByID(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := req.ApplyTo(existing); err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Update(c.Request.Context(), existing); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromOrder(existing))
}

// Delete handles DELETE /orders/:id - soft delete.
func (h *OrderHandler) Delete(c *gin.Context) {
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

func (h *OrderHandler) parseListFilter(c *gin.Context) (order.ListFilter, bool) {
	filter := order.ListFilter{
		Limit:  h.ParseIntQuery(c, "limit", 50),
		Offset: h.ParseIntQuery(c, "offset", 0),
	}

	if clientStr := c.Query("clientId"); clientStr != "" {
		clientID, err := id.Parse(clientStr)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid client id").
				WithDetail("field", "clientId"))
			return filter, false
		}
		filter.ClientID = &clientID
	}

	if from, ok := h.parseDateQuery(c, "dateFrom"); !ok {
		return filter, false
	} else if from != nil {
		filter.DateFrom = from
	}

	if to, ok := h.parseDateQuery(c, "dateTo"); !ok {
		return filter, false
	} else if to != nil {
		filter.DateTo = to
	}

	return filter, true
}

// parseDateQuery reads a "YYYY-MM-DD" query parameter.
func (h *BaseHandler) parseDateQuery(c *gin.Context, key string) (*time.Time, bool) {
	val := c.Query(key)
	if val == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", val)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid date, expected YYYY-MM-DD").
			WithDetail("field", key).
			WithDetail("value", val))
		return nil, false
	}
	return &t, true
}
