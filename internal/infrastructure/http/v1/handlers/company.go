package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradebill/internal/domain/company"
	"tradebill/internal/infrastructure/http/v1/dto"
)

// CompanyHandler provides HTTP handlers for company settings.
type CompanyHandler struct {
	*BaseHandler
	service *company.Service
}

// NewCompanyHandler creates a company settings handler.
func NewCompanyHandler(base *BaseHandler, service *company.Service) *CompanyHandler {
	return &CompanyHandler{BaseHandler: base, service: service}
}

// Get handles GET /company - current company settings.
func (h *CompanyHandler) Get(c *gin.Context) {
	settings, err := h.service.Get(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromSettings(settings))
}

// Update handles PUT /company - update company settings.
func (h *CompanyHandler) Update(c *gin.Context) {
	var req dto.UpdateCompanyRequest
	if !h.BindJSON(c, &req) {
		return
	}

	settings, err := h.service.Get(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	req.ApplyTo(settings)

	if err := h.service.Update(c.Request.Context(), settings); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromSettings(settings))
}
