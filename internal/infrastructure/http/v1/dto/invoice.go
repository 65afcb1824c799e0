package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"tradebill/internal/core/apperror"
	"tradebill/internal/core/id"
	"tradebill/internal/core/types"
	"tradebill/internal/domain/billing"
	"tradebill/internal/domain/documents/invoice"
)

// GenerateInvoiceRequest asks for an invoice for one client and month.
// Period is "YYYY-MM". Shared by generate and preview.
type GenerateInvoiceRequest struct {
	ClientID string `json:"clientId" binding:"required,uuid"`
	Period   string `json:"period" binding:"required"`
}

// Parse validates and converts the request parameters.
func (r *GenerateInvoiceRequest) Parse() (id.ID, types.Period, error) {
	clientID, err := id.Parse(r.ClientID)
	if err != nil {
		return id.ID{}, types.Period{}, apperror.NewValidation("invalid client id").
			WithDetail("field", "clientId")
	}
	period, err := types.ParsePeriod(r.Period)
	if err != nil {
		return id.ID{}, types.Period{}, apperror.NewValidation("period must be YYYY-MM").
			WithDetail("field", "period").
			WithDetail("value", r.Period)
	}
	return clientID, period, nil
}

// BalanceResponse is the reconciled balance for one client and period.
type BalanceResponse struct {
	Period                string          `json:"period"`
	OrdersTotal           decimal.Decimal `json:"ordersTotal"`
	PaymentsTotal         decimal.Decimal `json:"paymentsTotal"`
	PreviousOrdersTotal   decimal.Decimal `json:"previousOrdersTotal"`
	PreviousPaymentsTotal decimal.Decimal `json:"previousPaymentsTotal"`
	PreviousBalance       decimal.Decimal `json:"previousBalance"`
	FinalPayable          decimal.Decimal `json:"finalPayable"`
}

// FromBalance creates response DTO from computed balance.
func FromBalance(b billing.Balance, period types.Period) *BalanceResponse {
	return &BalanceResponse{
		Period:                period.String(),
		OrdersTotal:           b.OrdersTotal,
		PaymentsTotal:         b.PaymentsTotal,
		PreviousOrdersTotal:   b.PreviousOrdersTotal,
		PreviousPaymentsTotal: b.PreviousPaymentsTotal,
		PreviousBalance:       b.PreviousBalance,
		FinalPayable:          b.FinalPayable,
	}
}

// InvoiceItemResponse is one invoice line.
type InvoiceItemResponse struct {
	LineNo   int             `json:"lineNo"`
	OrderID  string          `json:"orderId"`
	Date     time.Time       `json:"date"`
	Material string          `json:"material"`
	Weight   decimal.Decimal `json:"weight"`
	Rate     decimal.Decimal `json:"rate"`
	Amount   decimal.Decimal `json:"amount"`
}

// InvoiceResponse is the response body for a stored invoice.
type InvoiceResponse struct {
	ID              string                `json:"id"`
	Number          string                `json:"number"`
	Date            time.Time             `json:"date"`
	ClientID        string                `json:"clientId"`
	PeriodKey       string                `json:"periodKey"`
	OrdersTotal     decimal.Decimal       `json:"ordersTotal"`
	PreviousBalance decimal.Decimal       `json:"previousBalance"`
	PaymentsTotal   decimal.Decimal       `json:"paymentsTotal"`
	FinalPayable    decimal.Decimal       `json:"finalPayable"`
	AmountInWords   string                `json:"amountInWords"`
	Items           []InvoiceItemResponse `json:"items,omitempty"`
	DeletionMark    bool                  `json:"deletionMark"`
	Version         int                   `json:"version"`
}

// FromInvoice creates response DTO from a stored invoice.
func FromInvoice(inv *invoice.Invoice) *InvoiceResponse {
	items := make([]InvoiceItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, InvoiceItemResponse{
			LineNo:   it.LineNo,
			OrderID:  it.OrderID.String(),
			Date:     it.Date,
			Material: it.Material,
			Weight:   it.Weight,
			Rate:     it.Rate,
			Amount:   it.Amount,
		})
	}

	return &InvoiceResponse{
		ID:              inv.ID.String(),
		Number:          inv.Number,
		Date:            inv.Date,
		ClientID:        inv.ClientID.String(),
		PeriodKey:       inv.PeriodKey,
		OrdersTotal:     inv.OrdersTotal,
		PreviousBalance: inv.PreviousBalance,
		PaymentsTotal:   inv.PaymentsTotal,
		FinalPayable:    inv.FinalPayable,
		AmountInWords:   inv.AmountInWords,
		Items:           items,
		DeletionMark:    inv.DeletionMark,
		Version:         inv.Version,
	}
}

// InvoicePreviewResponse is an assembled invoice that has not been
// persisted. The number shown is the next one the sequence would
// hand out.
type InvoicePreviewResponse struct {
	InvoiceNumber string                `json:"invoiceNumber"`
	InvoiceDate   time.Time             `json:"invoiceDate"`
	Period        string                `json:"period"`
	PeriodLabel   string                `json:"periodLabel"`
	ClientName    string                `json:"clientName"`
	Items         []InvoiceItemResponse `json:"items"`
	Balance       *BalanceResponse      `json:"balance"`
	GrandTotal    decimal.Decimal       `json:"grandTotal"`
	AmountInWords string                `json:"amountInWords"`
}

// FromInvoiceView creates preview response from an assembled view.
func FromInvoiceView(view *billing.InvoiceView) *InvoicePreviewResponse {
	items := make([]InvoiceItemResponse, 0, len(view.Items))
	for i, it := range view.Items {
		items = append(items, InvoiceItemResponse{
			LineNo:   i + 1,
			OrderID:  it.OrderID.String(),
			Date:     it.Date,
			Material: it.Material,
			Weight:   it.Weight,
			Rate:     it.Rate,
			Amount:   it.Amount,
		})
	}

	return &InvoicePreviewResponse{
		InvoiceNumber: view.InvoiceNumber,
		InvoiceDate:   view.InvoiceDate,
		Period:        view.Period.String(),
		PeriodLabel:   view.PeriodLabel,
		ClientName:    view.Client.Name,
		Items:         items,
		Balance:       FromBalance(view.Balance, view.Period),
		GrandTotal:    view.GrandTotal,
		AmountInWords: view.AmountInWords,
	}
}
