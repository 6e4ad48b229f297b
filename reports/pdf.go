package reports

import (
	"bytes"
	"fmt"
	"time"

	"billease-backend/models"
	"billease-backend/tax"

	"github.com/jung-kurt/gofpdf/v2"
)

// InvoicePDF renders a printable tax invoice with the tenant's letterhead,
// the line-item table, the GST split and bank details.
func InvoicePDF(company models.Company, inv models.Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Letterhead
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, company.CompanyName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 5, fmt.Sprintf("%s, %s, %s - %s", company.Address, company.City, company.State, company.Pincode), "", 1, "C", false, 0, "")
	if company.GSTIN != "" {
		pdf.CellFormat(190, 5, fmt.Sprintf("GSTIN: %s", company.GSTIN), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(190, 8, "TAX INVOICE", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// Invoice & client block
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(190, 7, fmt.Sprintf("Invoice %s", inv.InvoiceNumber), "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(95, 6, fmt.Sprintf("Date: %s", inv.InvoiceDate.Format("02-Jan-2006")), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("Due: %s", inv.DueDate.Format("02-Jan-2006")), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("Billed To: %s", inv.Client.Name), "LB", 0, "L", false, 0, "")
	buyerGSTIN := inv.Client.GSTIN
	if buyerGSTIN == "" {
		buyerGSTIN = "Unregistered"
	}
	pdf.CellFormat(95, 6, fmt.Sprintf("Client GSTIN: %s", buyerGSTIN), "RB", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Item table
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(80, 7, "Description", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "HSN/SAC", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Rate", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Amount", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, it := range inv.Items {
		desc := it.Description
		if len(desc) > 45 {
			desc = desc[:42] + "..."
		}
		pdf.CellFormat(80, 6, desc, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, it.HSNSAC, "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%.2f", it.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", it.Rate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", it.Amount), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(3)

	// Tax split + totals
	totalRow := func(label string, value float64, bold bool) {
		if bold {
			pdf.SetFont("Arial", "B", 11)
		} else {
			pdf.SetFont("Arial", "", 10)
		}
		pdf.CellFormat(130, 6, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", value), "1", 1, "R", false, 0, "")
	}
	totalRow("Subtotal", inv.Amount, false)
	if inv.IGST > 0 {
		totalRow(fmt.Sprintf("IGST %g%%", inv.GSTRate), inv.IGST, false)
	} else {
		totalRow(fmt.Sprintf("CGST %g%%", inv.GSTRate/2), inv.CGST, false)
		totalRow(fmt.Sprintf("SGST %g%%", inv.GSTRate/2), inv.SGST, false)
	}
	if inv.Discount != 0 {
		totalRow("Discount", -inv.Discount, false)
	}
	if inv.Advance != 0 {
		totalRow("Advance", -inv.Advance, false)
	}
	if inv.Roundoff != 0 {
		totalRow("Roundoff", inv.Roundoff, false)
	}
	totalRow("Total", inv.Total, true)
	pdf.Ln(6)

	// Bank details footer
	if company.AccountNo != "" {
		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(190, 7, "Payment Details", "1", 1, "L", true, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(63, 6, fmt.Sprintf("Bank: %s", company.BankName), "LB", 0, "L", false, 0, "")
		pdf.CellFormat(63, 6, fmt.Sprintf("A/C: %s", company.AccountNo), "B", 0, "L", false, 0, "")
		pdf.CellFormat(64, 6, fmt.Sprintf("IFSC: %s", company.IFSC), "RB", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GST3BPDF renders the return summary in the form's section layout.
func GST3BPDF(company models.Company, ret tax.Return) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "GSTR-3B Summary", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("%s  |  GSTIN: %s  |  Period: %s", company.CompanyName, company.GSTIN, ret.Period), "", 1, "C", false, 0, "")
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", time.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(190, 8, "3.1 Outward supplies", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(70, 7, "Nature of supplies", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Taxable Value", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Integrated Tax", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Central Tax", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "State/UT Tax", "1", 1, "C", true, 0, "")

	row := func(name string, sec tax.Section, bold bool) {
		if bold {
			pdf.SetFont("Arial", "B", 9)
		} else {
			pdf.SetFont("Arial", "", 9)
		}
		pdf.CellFormat(70, 6, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", sec.TaxableValue), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", sec.IntegratedTax), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", sec.CentralTax), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", sec.StateUTTax), "1", 1, "R", false, 0, "")
	}
	row("(a) Taxable supplies (other than zero rated)", ret.OutwardTaxableOther, false)
	row("(b) Zero rated supplies", ret.OutwardTaxableZero, false)
	row("(c) Nil rated / exempted", ret.OutwardExempt, false)
	row("Total", ret.Totals, true)
	pdf.Ln(5)

	if len(ret.InterstateByState) > 0 {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(190, 8, "3.2 Interstate supplies by place of supply", "1", 1, "L", true, 0, "")
		pdf.SetFont("Arial", "", 9)
		for code, sec := range ret.InterstateByState {
			pdf.CellFormat(70, 6, fmt.Sprintf("State code %s", code), "1", 0, "L", false, 0, "")
			pdf.CellFormat(60, 6, fmt.Sprintf("Taxable %.2f", sec.TaxableValue), "1", 0, "R", false, 0, "")
			pdf.CellFormat(60, 6, fmt.Sprintf("IGST %.2f", sec.IntegratedTax), "1", 1, "R", false, 0, "")
		}
		pdf.Ln(5)
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(190, 8, "4. Eligible ITC", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(190, 6, ret.ITC.Note, "1", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
