package tax

import (
	"reflect"
	"testing"
	"time"

	"billease-backend/models"
)

const sellerGSTIN = "27AAPFU0939F1ZV"

func paidInvoice(number string, total, gstAmount, rate float64, clientGSTIN string) models.Invoice {
	return models.Invoice{
		InvoiceNumber: number,
		Amount:        total - gstAmount,
		GSTRate:       rate,
		GSTAmount:     gstAmount,
		Total:         total,
		Status:        models.InvoiceStatusPaid,
		InvoiceDate:   time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC),
		Client:        models.Client{GSTIN: clientGSTIN},
	}
}

func april() Period {
	return Period{
		From: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 4, 30, 23, 59, 59, 0, time.UTC),
	}
}

func TestBuildGST3BTwoInvoices(t *testing.T) {
	// One taxed invoice totalling 1000 at 18% and one zero-rated at 500.
	invoices := []models.Invoice{
		paidInvoice("INV-1", 1000, 180, 18, "27AABCU9603R1ZM"),
		paidInvoice("INV-2", 500, 0, 0, "27AABCU9603R1ZM"),
	}

	ret := BuildGST3B(invoices, sellerGSTIN, april())

	if got := ret.OutwardTaxableOther.TaxableValue; got != 820 {
		t.Errorf("3.1(a) taxable value = %v, want 820", got)
	}
	if ret.OutwardTaxableOther.CentralTax != 90 || ret.OutwardTaxableOther.StateUTTax != 90 {
		t.Errorf("central/state tax = %v/%v, want 90/90",
			ret.OutwardTaxableOther.CentralTax, ret.OutwardTaxableOther.StateUTTax)
	}
	if ret.OutwardTaxableOther.IntegratedTax != 0 {
		t.Errorf("integrated tax = %v, want 0 for intrastate buyer", ret.OutwardTaxableOther.IntegratedTax)
	}
	if got := ret.OutwardTaxableZero.TaxableValue; got != 500 {
		t.Errorf("3.1(b) taxable value = %v, want 500", got)
	}
	if ret.InvoiceCount != 2 {
		t.Errorf("invoice count = %d, want 2", ret.InvoiceCount)
	}
}

func TestBuildGST3BInterstate(t *testing.T) {
	invoices := []models.Invoice{
		paidInvoice("INV-1", 1180, 180, 18, "29AABCU9603R1ZM"), // Karnataka buyer
	}
	ret := BuildGST3B(invoices, sellerGSTIN, april())

	sec := ret.OutwardTaxableOther
	if sec.TaxableValue != 1000 {
		t.Errorf("taxable value = %v, want 1000", sec.TaxableValue)
	}
	if sec.IntegratedTax != 180 || sec.CentralTax != 0 || sec.StateUTTax != 0 {
		t.Errorf("igst/cgst/sgst = %v/%v/%v, want 180/0/0",
			sec.IntegratedTax, sec.CentralTax, sec.StateUTTax)
	}
	bucket, ok := ret.InterstateByState["29"]
	if !ok {
		t.Fatal("expected state bucket for code 29")
	}
	if bucket.TaxableValue != 1000 || bucket.IntegratedTax != 180 {
		t.Errorf("bucket = %+v, want taxable 1000, igst 180", bucket)
	}
}

func TestBuildGST3BOnlyPaidContribute(t *testing.T) {
	pending := paidInvoice("INV-2", 2360, 360, 18, "")
	pending.Status = models.InvoiceStatusPending
	overdue := paidInvoice("INV-3", 590, 90, 18, "")
	overdue.Status = models.InvoiceStatusOverdue

	invoices := []models.Invoice{
		paidInvoice("INV-1", 1180, 180, 18, ""),
		pending,
		overdue,
	}
	ret := BuildGST3B(invoices, sellerGSTIN, april())

	if ret.InvoiceCount != 1 {
		t.Errorf("invoice count = %d, want 1 (paid only)", ret.InvoiceCount)
	}
	if ret.OutwardTaxableOther.TaxableValue != 1000 {
		t.Errorf("taxable value = %v, want 1000", ret.OutwardTaxableOther.TaxableValue)
	}

	// Flipping paid -> pending removes the contribution on recompute.
	invoices[0].Status = models.InvoiceStatusPending
	ret = BuildGST3B(invoices, sellerGSTIN, april())
	if ret.InvoiceCount != 0 || ret.Totals.TaxableValue != 0 {
		t.Errorf("after status flip: count=%d totals=%v, want 0/0",
			ret.InvoiceCount, ret.Totals.TaxableValue)
	}
}

func TestBuildGST3BPeriodFilter(t *testing.T) {
	outside := paidInvoice("INV-2", 1180, 180, 18, "")
	outside.InvoiceDate = time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)

	ret := BuildGST3B([]models.Invoice{
		paidInvoice("INV-1", 1180, 180, 18, ""),
		outside,
	}, sellerGSTIN, april())

	if ret.InvoiceCount != 1 {
		t.Errorf("invoice count = %d, want 1 inside the period", ret.InvoiceCount)
	}
}

func TestBuildGST3BTotalsCrossCheck(t *testing.T) {
	invoices := []models.Invoice{
		paidInvoice("INV-1", 1180, 180, 18, "27AABCU9603R1ZM"),
		paidInvoice("INV-2", 560, 60, 12, "29AABCU9603R1ZM"),
		paidInvoice("INV-3", 500, 0, 0, ""),
	}
	ret := BuildGST3B(invoices, sellerGSTIN, april())

	want := sumSections(ret.OutwardTaxableOther, ret.OutwardTaxableZero, ret.OutwardExempt)
	if !reflect.DeepEqual(ret.Totals, want) {
		t.Errorf("totals = %+v, want sum of subsections %+v", ret.Totals, want)
	}
	if ret.Totals.TaxableValue != 2000 {
		t.Errorf("totals taxable = %v, want 2000", ret.Totals.TaxableValue)
	}
}

func TestBuildGST3BIdempotent(t *testing.T) {
	invoices := []models.Invoice{
		paidInvoice("INV-1", 1180, 180, 18, "29AABCU9603R1ZM"),
		paidInvoice("INV-2", 500, 0, 0, ""),
	}
	first := BuildGST3B(invoices, sellerGSTIN, april())
	second := BuildGST3B(invoices, sellerGSTIN, april())
	if !reflect.DeepEqual(first, second) {
		t.Error("recompute with unchanged input must yield identical output")
	}
}

func TestBuildGST3BEmpty(t *testing.T) {
	ret := BuildGST3B(nil, sellerGSTIN, april())
	if ret.Totals.TaxableValue != 0 || ret.InvoiceCount != 0 {
		t.Errorf("empty input: totals=%v count=%d, want zeros", ret.Totals.TaxableValue, ret.InvoiceCount)
	}
	if ret.ITC.Note == "" {
		t.Error("ITC section must carry its not-tracked note")
	}
}
