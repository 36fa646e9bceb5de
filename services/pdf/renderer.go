package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"swiftbill/models"
)

// Renderer turns a fully-resolved invoice into PDF bytes. Totals must
// already be computed; the renderer never recomputes them.
type Renderer interface {
	RenderInvoice(inv *models.Invoice) ([]byte, error)
}

// GofpdfRenderer renders the standard SwiftBill A4 layout.
type GofpdfRenderer struct{}

// NewRenderer returns the default invoice renderer.
func NewRenderer() Renderer {
	return &GofpdfRenderer{}
}

const dateLayout = "02/01/2006"

// money prefixes an already-formatted amount with the currency marker.
// The core PDF fonts have no rupee glyph, so "Rs." stands in.
func money(amount string) string {
	return "Rs. " + amount
}

// RenderInvoice lays out the invoice on a single A4 page: header with
// invoice number and business block, bill-to block with dates, line item
// table, totals box, then notes and terms.
func (r *GofpdfRenderer) RenderInvoice(inv *models.Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	// Header: title and number on the left, business details on the right.
	pdf.SetFont("Arial", "B", 28)
	pdf.SetTextColor(37, 99, 235)
	pdf.CellFormat(95, 12, "INVOICE", "", 0, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(85, 12, inv.BusinessName, "", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(95, 6, "#"+inv.InvoiceNumber, "", 0, "L", false, 0, "")
	right := ""
	if inv.BusinessGST != "" {
		right = "GST: " + inv.BusinessGST
	}
	pdf.CellFormat(85, 6, right, "", 1, "R", false, 0, "")
	if inv.BusinessAddress != "" {
		pdf.CellFormat(95, 6, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(85, 6, inv.BusinessAddress, "", 1, "R", false, 0, "")
	}
	pdf.Ln(8)

	// Bill-to block and dates.
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(95, 6, "Bill To:", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(85, 6, "Invoice Date: "+inv.Date.Format(dateLayout), "", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(95, 6, inv.ClientName, "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(85, 6, "Due Date: "+inv.DueDate.Format(dateLayout), "", 1, "R", false, 0, "")

	for _, line := range clientLines(inv) {
		pdf.CellFormat(95, 5, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(8)

	// Line item table.
	colW := []float64{80, 20, 30, 20, 30}
	headers := []string{"Description", "Qty", "Rate", "Tax %", "Amount"}
	aligns := []string{"L", "C", "R", "C", "R"}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(249, 249, 249)
	for i, h := range headers {
		pdf.CellFormat(colW[i], 8, h, "1", 0, aligns[i], true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, item := range inv.Items {
		cells := []string{
			item.Description,
			item.Quantity,
			money(item.Rate),
			fmt.Sprintf("%d%%", item.TaxPercent),
			money(item.Amount),
		}
		for i, cell := range cells {
			pdf.CellFormat(colW[i], 7, cell, "1", 0, aligns[i], false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)

	// Totals box, right aligned.
	totals := [][2]string{
		{"Subtotal:", money(inv.Subtotal)},
		{"Tax Amount:", money(inv.TaxAmount)},
		{"Total:", money(inv.Total)},
	}
	for i, row := range totals {
		if i == len(totals)-1 {
			pdf.SetFont("Arial", "B", 12)
		} else {
			pdf.SetFont("Arial", "", 10)
		}
		pdf.CellFormat(110, 7, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(35, 7, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 7, row[1], "1", 1, "R", false, 0, "")
	}

	if inv.Notes != "" {
		pdf.Ln(8)
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 6, "Notes:", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, inv.Notes, "", "L", false)
	}
	if inv.Terms != "" {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 6, "Terms & Conditions:", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, inv.Terms, "", "L", false)
	}

	pdf.Ln(10)
	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(102, 102, 102)
	pdf.CellFormat(0, 5, "Generated by SwiftBill - Professional Invoice Generator", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: failed to render invoice %s: %w", inv.InvoiceNumber, err)
	}
	return buf.Bytes(), nil
}

func clientLines(inv *models.Invoice) []string {
	var lines []string
	if inv.ClientEmail != "" {
		lines = append(lines, inv.ClientEmail)
	}
	if inv.ClientPhone != "" {
		lines = append(lines, inv.ClientPhone)
	}
	if inv.ClientGST != "" {
		lines = append(lines, "GST: "+inv.ClientGST)
	}
	if inv.ClientAddress != "" {
		lines = append(lines, inv.ClientAddress)
	}
	return lines
}
