package reports

import (
	"strings"
	"testing"
	"time"

	"billease-backend/models"
	"billease-backend/tax"
)

func TestInvoiceRegisterCSVQuoting(t *testing.T) {
	invoices := []models.Invoice{
		{
			InvoiceNumber: "INV-001",
			Client:        models.Client{Name: `Sharma & Sons, "Pune"`},
			InvoiceDate:   time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			DueDate:       time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC),
			Status:        models.InvoiceStatusPaid,
			Amount:        1000,
			GSTRate:       18,
			GSTAmount:     180,
			CGST:          90,
			SGST:          90,
			Total:         1180,
		},
	}

	out, err := InvoiceRegisterCSV(invoices)
	if err != nil {
		t.Fatal(err)
	}
	text := string(out)

	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want header + 1 row", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Invoice No,Client,Date") {
		t.Errorf("unexpected header: %s", lines[0])
	}
	// Fields with commas/quotes must be wrapped, internal quotes doubled.
	if !strings.Contains(text, `"Sharma & Sons, ""Pune"""`) {
		t.Errorf("client name not RFC4180-quoted: %s", lines[1])
	}
	if !strings.Contains(lines[1], "1180.00") {
		t.Errorf("total missing from row: %s", lines[1])
	}
}

func TestGST3BCSVHasTotalsRow(t *testing.T) {
	ret := tax.Return{
		OutwardTaxableOther: tax.Section{TaxableValue: 820, CentralTax: 90, StateUTTax: 90},
		OutwardTaxableZero:  tax.Section{TaxableValue: 500},
		Totals:              tax.Section{TaxableValue: 1320, CentralTax: 90, StateUTTax: 90},
	}
	out, err := GST3BCSV(ret)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want header + 3 sections + total", len(lines))
	}
	if !strings.HasPrefix(lines[4], "Total,1320.00") {
		t.Errorf("totals row = %s", lines[4])
	}
}
