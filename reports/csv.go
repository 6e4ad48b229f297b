package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"billease-backend/cashflow"
	"billease-backend/models"
	"billease-backend/tax"
)

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// InvoiceRegisterCSV renders the invoice register as RFC4180 CSV.
func InvoiceRegisterCSV(invoices []models.Invoice) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Invoice No", "Client", "Date", "Due Date", "Status",
		"Amount", "GST Rate", "GST", "CGST", "SGST", "IGST", "Discount", "Advance", "Roundoff", "Total"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, inv := range invoices {
		row := []string{
			inv.InvoiceNumber,
			inv.Client.Name,
			inv.InvoiceDate.Format("02-01-2006"),
			inv.DueDate.Format("02-01-2006"),
			inv.Status,
			money(inv.Amount),
			money(inv.GSTRate),
			money(inv.GSTAmount),
			money(inv.CGST),
			money(inv.SGST),
			money(inv.IGST),
			money(inv.Discount),
			money(inv.Advance),
			money(inv.Roundoff),
			money(inv.Total),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// ExpenseRegisterCSV renders the expense register as RFC4180 CSV.
func ExpenseRegisterCSV(expenses []models.Expense) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Date", "Vendor", "Category", "Amount", "Tax", "TDS", "Total", "Payment Mode", "Status"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, e := range expenses {
		row := []string{
			e.ExpenseDate.Format("02-01-2006"),
			e.Vendor.Name,
			e.Category,
			money(e.Amount),
			money(e.TaxAmount),
			money(e.TDSAmount),
			money(e.Total),
			e.PaymentMode,
			e.Status,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// GST3BCSV renders the return sections plus the totals cross-check row.
func GST3BCSV(ret tax.Return) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Section", "Taxable Value", "Integrated Tax", "Central Tax", "State/UT Tax", "Cess"}); err != nil {
		return nil, err
	}
	rows := []struct {
		name string
		sec  tax.Section
	}{
		{"3.1(a) Outward taxable (other than zero rated)", ret.OutwardTaxableOther},
		{"3.1(b) Outward taxable (zero rated)", ret.OutwardTaxableZero},
		{"3.1(c) Other outward (nil rated, exempted)", ret.OutwardExempt},
		{"Total", ret.Totals},
	}
	for _, r := range rows {
		row := []string{
			r.name,
			money(r.sec.TaxableValue),
			money(r.sec.IntegratedTax),
			money(r.sec.CentralTax),
			money(r.sec.StateUTTax),
			money(r.sec.Cess),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// CashFlowCSV renders historical months followed by the forecast.
func CashFlowCSV(history, forecast []cashflow.Month) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Month", "Kind", "Opening", "Inflow", "Outflow", "Closing"}); err != nil {
		return nil, err
	}
	write := func(kind string, months []cashflow.Month) error {
		for _, m := range months {
			row := []string{m.Label, kind, money(m.Opening), money(m.Inflow), money(m.Outflow), money(m.Closing)}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	}
	if err := write("actual", history); err != nil {
		return nil, err
	}
	if err := write("forecast", forecast); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
