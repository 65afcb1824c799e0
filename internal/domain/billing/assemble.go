package billing

import (
	"time"

	"tradebill/internal/core/apperror"
	"tradebill/internal/core/types"
	"tradebill/internal/domain/company"
)

// Assemble combines company metadata, client metadata, line items,
// and a computed balance into an immutable InvoiceView.
//
// It fails when company, client, or line items are absent: a partial
// model must never reach a renderer. It copies and derives display
// fields only; all figures come from the Balance as computed. Line
// items keep the order they were given in (the ledger's natural
// ascending-date order).
func Assemble(
	co *company.Settings,
	cl ClientInfo,
	period types.Period,
	items []LineItem,
	balance Balance,
	invoiceNumber string,
	invoiceDate time.Time,
) (*InvoiceView, error) {
	if co == nil {
		return nil, apperror.NewIncompleteInvoice("company")
	}
	if cl.Name == "" {
		return nil, apperror.NewIncompleteInvoice("client")
	}
	if items == nil {
		return nil, apperror.NewIncompleteInvoice("lineItems")
	}
	if invoiceNumber == "" {
		return nil, apperror.NewIncompleteInvoice("invoiceNumber")
	}

	view := &InvoiceView{
		Company:       co,
		Client:        cl,
		Period:        period,
		PeriodLabel:   period.Label(),
		InvoiceNumber: invoiceNumber,
		InvoiceDate:   invoiceDate,
		Items:         append([]LineItem(nil), items...),
		Balance:       balance,
		GrandTotal:    balance.FinalPayable,
		AmountInWords: RupeesInWords(balance.FinalPayable),
	}

	return view, nil
}
