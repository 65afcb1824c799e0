package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradebill/internal/core/apperror"
	"tradebill/internal/domain/catalogs/client"
	"tradebill/internal/infrastructure/http/v1/dto"
)

// ClientHandler provides HTTP handlers for the client catalog.
type ClientHandler struct {
	*CatalogHandler[*client.Client, dto.CreateClientRequest, dto.UpdateClientRequest]
	service *client.Service
}

// NewClientHandler creates a client handler.
func NewClientHandler(base *BaseHandler, service *client.Service) *ClientHandler {
	catalogHandler := NewCatalogHandler(base, CatalogHandlerConfig[*client.Client, dto.CreateClientRequest, dto.UpdateClientRequest]{
		Service:    service.CatalogService,
		EntityName: "client",
		MapCreateDTO: func(req dto.CreateClientRequest) (*client.Client, error) {
			return req.ToEntity(), nil
		},
		MapUpdateDTO: func(req dto.UpdateClientRequest, existing *client.Client) (*client.Client, error) {
			req.ApplyTo(existing)
			return existing, nil
		},
		MapToDTO: func(cl *client.Client) any {
			return dto.FromClient(cl)
		},
	})

	return &ClientHandler{
		CatalogHandler: catalogHandler,
		service:        service,
	}
}

// FindByGST handles GET /clients/by-gst/:gst - lookup by GST number.
func (h *ClientHandler) FindByGST(c *gin.Context) {
	gst := c.Param("gst")
	if gst == "" {
		h.Error(c, apperror.NewValidation("gst number is required"))
		return
	}

	cl, err := h.service.FindByGST(c.Request.Context(), gst)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromClient(cl))
}
