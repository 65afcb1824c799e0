package render

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"tradebill/internal/core/types"
	"tradebill/internal/domain/billing"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExcelRenderer renders the invoice as an XLSX workbook with the
// same content as the printable page.
type ExcelRenderer struct{}

// NewExcelRenderer creates an Excel renderer.
func NewExcelRenderer() *ExcelRenderer {
	return &ExcelRenderer{}
}

// Render implements Renderer.
func (r *ExcelRenderer) Render(ctx context.Context, view *billing.InvoiceView) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, "", fmt.Errorf("create style: %w", err)
	}

	set := func(cell string, value any) {
		_ = f.SetCellValue(sheet, cell, value)
	}
	bold := func(cell string) {
		_ = f.SetCellStyle(sheet, cell, cell, boldStyle)
	}

	// Header
	set("A1", view.Company.CompanyName)
	bold("A1")
	if view.Company.Address != nil {
		set("A2", *view.Company.Address)
	}
	set("A4", "INVOICE")
	bold("A4")

	set("A5", "Invoice No")
	set("B5", view.InvoiceNumber)
	set("A6", "Date")
	set("B6", view.InvoiceDate.Format("02-01-2006"))
	set("A7", "Billing Period")
	set("B7", view.PeriodLabel)

	set("A9", "Bill To")
	bold("A9")
	set("B9", view.Client.Name)
	set("B10", view.Client.Address)
	set("B11", fmt.Sprintf("%s %s %s", view.Client.City, view.Client.State, view.Client.Pincode))
	if view.Client.GSTNumber != "" {
		set("A12", "GSTIN")
		set("B12", view.Client.GSTNumber)
	}

	// Item table
	headerRow := 14
	headers := []string{"No.", "Date", "Weight (MT)", "Place", "Rate", "Total"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		set(cell, h)
		bold(cell)
	}

	row := headerRow + 1
	for i, item := range view.Items {
		values := []any{
			i + 1,
			item.Date.Format("02-01-2006"),
			types.FormatWeight(item.Weight),
			item.Material,
			item.Rate.StringFixed(2),
			item.Amount.StringFixed(2),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			set(cell, v)
		}
		row++
	}

	// Summary
	row++
	summary := []struct {
		label string
		value types.Money
		final bool
	}{
		{"Orders Total (This Month)", view.Balance.OrdersTotal, false},
		{"Previous Balance", view.Balance.PreviousBalance, false},
		{"Subtotal", view.Subtotal(), false},
		{"Payments Received", view.Balance.PaymentsTotal, false},
		{"FINAL PAYABLE", view.GrandTotal, true},
	}
	for _, s := range summary {
		labelCell, _ := excelize.CoordinatesToCellName(5, row)
		valueCell, _ := excelize.CoordinatesToCellName(6, row)
		set(labelCell, s.label)
		set(valueCell, s.value.StringFixed(2))
		if s.final {
			bold(labelCell)
			bold(valueCell)
		}
		row++
	}

	row++
	wordsCell, _ := excelize.CoordinatesToCellName(1, row)
	set(wordsCell, "Amount in Words: "+view.AmountInWords)

	_ = f.SetColWidth(sheet, "A", "A", 12)
	_ = f.SetColWidth(sheet, "B", "F", 18)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("write workbook for %s: %w", view.InvoiceNumber, err)
	}
	return buf.Bytes(), xlsxContentType, nil
}
