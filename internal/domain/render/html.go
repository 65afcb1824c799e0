package render

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"tradebill/internal/core/types"
	"tradebill/internal/domain/billing"
)

// HTMLRenderer renders the invoice as a self-contained printable
// HTML page. Printing this page to PDF is the download path; there
// is no separate PDF backend.
type HTMLRenderer struct {
	tmpl *template.Template
}

// NewHTMLRenderer compiles the invoice template.
func NewHTMLRenderer() (*HTMLRenderer, error) {
	tmpl, err := template.New("invoice").Funcs(template.FuncMap{
		"inr":    types.FormatINR,
		"weight": types.FormatWeight,
		"date": func(t time.Time) string {
			return t.Format("02-01-2006")
		},
		"add1": func(i int) int { return i + 1 },
	}).Parse(invoiceTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse invoice template: %w", err)
	}
	return &HTMLRenderer{tmpl: tmpl}, nil
}

// Render implements Renderer.
func (r *HTMLRenderer) Render(ctx context.Context, view *billing.InvoiceView) ([]byte, string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, view); err != nil {
		return nil, "", fmt.Errorf("render invoice %s: %w", view.InvoiceNumber, err)
	}
	return buf.Bytes(), "text/html; charset=utf-8", nil
}

const invoiceTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Invoice {{.InvoiceNumber}}</title>
<style>
  body { font-family: Arial, sans-serif; font-size: 12px; color: #111; margin: 24px; }
  .header { text-align: center; border-bottom: 2px solid #111; padding-bottom: 8px; }
  .header h1 { margin: 0; font-size: 20px; text-transform: uppercase; }
  .header p { margin: 2px 0; }
  .meta { display: flex; justify-content: space-between; margin: 12px 0; }
  .title { text-align: center; font-size: 16px; font-weight: bold; letter-spacing: 2px; margin: 8px 0; }
  table.items { width: 100%; border-collapse: collapse; margin-top: 8px; }
  table.items th, table.items td { border: 1px solid #444; padding: 4px 6px; }
  table.items th { background: #eee; text-transform: uppercase; font-size: 11px; }
  td.num { text-align: right; }
  table.summary { margin-top: 10px; margin-left: auto; border-collapse: collapse; }
  table.summary td { padding: 3px 8px; }
  table.summary td.label { text-align: right; }
  table.summary tr.final td { font-weight: bold; border-top: 2px solid #111; font-size: 13px; }
  .words { margin-top: 10px; font-style: italic; }
  .bank { margin-top: 16px; border-top: 1px solid #999; padding-top: 8px; font-size: 11px; }
  @media print { body { margin: 0; } }
</style>
</head>
<body>
<div class="header">
  <h1>{{.Company.CompanyName}}</h1>
  {{with .Company.Address}}<p>{{.}}</p>{{end}}
  <p>
    {{with .Company.Phone}}Phone: {{.}}{{end}}
    {{with .Company.Email}} | Email: {{.}}{{end}}
  </p>
</div>

<div class="title">INVOICE</div>

<div class="meta">
  <div>
    <strong>Bill To:</strong><br>
    {{.Client.Name}}<br>
    {{with .Client.Address}}{{.}}<br>{{end}}
    {{.Client.City}}{{with .Client.State}}, {{.}}{{end}} {{.Client.Pincode}}<br>
    {{with .Client.Phone}}Phone: {{.}}<br>{{end}}
    {{with .Client.GSTNumber}}GSTIN: {{.}}{{end}}
  </div>
  <div>
    <strong>Invoice No:</strong> {{.InvoiceNumber}}<br>
    <strong>Date:</strong> {{date .InvoiceDate}}<br>
    <strong>Billing Period:</strong> {{.PeriodLabel}}
  </div>
</div>

<table class="items">
  <thead>
    <tr>
      <th>No.</th><th>Date</th><th>Weight</th><th>Place</th><th>Rate</th><th>Total</th>
    </tr>
  </thead>
  <tbody>
    {{range $i, $item := .Items}}
    <tr>
      <td>{{add1 $i}}</td>
      <td>{{date $item.Date}}</td>
      <td class="num">{{weight $item.Weight}} MT</td>
      <td>{{$item.Material}}</td>
      <td class="num">{{inr $item.Rate}}</td>
      <td class="num">{{inr $item.Amount}}</td>
    </tr>
    {{end}}
  </tbody>
</table>

<table class="summary">
  <tr><td class="label">Orders Total (This Month)</td><td class="num">{{inr .Balance.OrdersTotal}}</td></tr>
  <tr><td class="label">Previous Balance</td><td class="num">{{inr .Balance.PreviousBalance}}</td></tr>
  <tr><td class="label">Subtotal</td><td class="num">{{inr .Subtotal}}</td></tr>
  <tr><td class="label">Payments Received</td><td class="num">{{inr .Balance.PaymentsTotal}}</td></tr>
  <tr class="final"><td class="label">FINAL PAYABLE</td><td class="num">{{inr .GrandTotal}}</td></tr>
</table>

<p class="words">Amount in Words: <strong>{{.AmountInWords}}</strong></p>

<div class="bank">
  {{with .Company.BankName}}<strong>Bank:</strong> {{.}}<br>{{end}}
  {{with .Company.BankAccount}}<strong>A/C No:</strong> {{.}}<br>{{end}}
  {{with .Company.BankIFSC}}<strong>IFSC:</strong> {{.}}<br>{{end}}
  {{with .Company.UPIID}}<strong>UPI:</strong> {{.}}{{end}}
</div>
</body>
</html>`
