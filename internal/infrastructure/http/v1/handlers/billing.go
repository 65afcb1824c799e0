package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradebill/internal/core/apperror"
	"tradebill/internal/core/id"
	"tradebill/internal/core/types"
	"tradebill/internal/domain/billing"
	"tradebill/internal/domain/documents/invoice"
	"tradebill/internal/domain/render"
	"tradebill/internal/infrastructure/http/v1/dto"
)

// BillingHandler provides HTTP handlers for balance inquiry and
// invoice generation.
type BillingHandler struct {
	*BaseHandler
	service   *billing.Service
	renderers *render.Registry
}

// NewBillingHandler creates a billing handler.
func NewBillingHandler(base *BaseHandler, service *billing.Service, renderers *render.Registry) *BillingHandler {
	return &BillingHandler{
		BaseHandler: base,
		service:     service,
		renderers:   renderers,
	}
}

// Balance handles GET /clients/:id/balance?period=YYYY-MM
func (h *BillingHandler) Balance(c *gin.Context) {
	clientID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	period, ok := h.parsePeriodQuery(c)
	if !ok {
		return
	}

	balance, err := h.service.Balance(c.Request.Context(), clientID, period)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromBalance(balance, period))
}

// Preview handles POST /invoices/preview - assemble without persisting.
func (h *BillingHandler) Preview(c *gin.Context) {
	var req dto.GenerateInvoiceRequest
	if !h.BindJSON(c, &req) {
		return
	}

	clientID, period, err := req.Parse()
	if err != nil {
		h.Error(c, err)
		return
	}

	view, err := h.service.Preview(c.Request.Context(), clientID, period)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromInvoiceView(view))
}

// Generate handles POST /invoices/generate - allocate a number and
// persist the snapshot.
func (h *BillingHandler) Generate(c *gin.Context) {
	var req dto.GenerateInvoiceRequest
	if !h.BindJSON(c, &req) {
		return
	}

	clientID, period, err := req.Parse()
	if err != nil {
		h.Error(c, err)
		return
	}

	_, inv, err := h.service.Generate(c.Request.Context(), clientID, period)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromInvoice(inv))
}

// List handles GET /invoices - list stored invoices.
func (h *BillingHandler) List(c *gin.Context) {
	filter := invoice.ListFilter{
		PeriodKey: c.Query("period"),
		Limit:     h.ParseIntQuery(c, "limit", 50),
		Offset:    h.ParseIntQuery(c, "offset", 0),
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

	invoices, total, err := h.service.ListInvoices(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(invoices))
	for i, inv := range invoices {
		items[i] = dto.FromInvoice(inv)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: total,
		Limit:      filter.Limit,
		Offset:     filter.Offset,
	})
}

// Get handles GET /invoices/:id - stored invoice with items.
func (h *BillingHandler) Get(c *gin.Context) {
	invoiceID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	inv, err := h.service.GetInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromInvoice(inv))
}

// Document handles GET /invoices/:id/document?format=html|xlsx.
// Renders the stored snapshot through the requested renderer; the
// HTML document is the print-and-save-as-PDF path.
func (h *BillingHandler) Document(c *gin.Context) {
	invoiceID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	format := render.Format(c.DefaultQuery("format", "html"))
	renderer, ok := h.renderers.Get(format)
	if !ok {
		h.Error(c, apperror.NewValidation("unsupported format").
			WithDetail("format", string(format)))
		return
	}

	inv, err := h.service.GetInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		h.Error(c, err)
		return
	}

	view, err := h.service.ViewFromStored(c.Request.Context(), inv)
	if err != nil {
		h.Error(c, err)
		return
	}

	data, contentType, err := renderer.Render(c.Request.Context(), view)
	if err != nil {
		h.Error(c, err)
		return
	}

	if format == render.FormatXLSX {
		c.Header("Content-Disposition", `attachment; filename="`+inv.Number+`.xlsx"`)
	}
	c.Data(http.StatusOK, contentType, data)
}

func (h *BillingHandler) parsePeriodQuery(c *gin.Context) (types.Period, bool) {
	raw := c.Query("period")
	if raw == "" {
		h.Error(c, apperror.NewValidation("period is required").
			WithDetail("field", "period"))
		return types.Period{}, false
	}
	period, err := types.ParsePeriod(raw)
	if err != nil {
		h.Error(c, apperror.NewValidation("period must be YYYY-MM").
			WithDetail("field", "period").
			WithDetail("value", raw))
		return types.Period{}, false
	}
	return period, true
}
