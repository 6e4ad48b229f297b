package cashflow

import (
	"math"
	"testing"
	"time"

	"billease-backend/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func TestForecastGrowthCompounding(t *testing.T) {
	// growth 5%, expense increase 2%, 3 months, avg 10000/7000, balance 5000.
	h := History{
		AvgInflow:      10000,
		AvgOutflow:     7000,
		CurrentBalance: 5000,
	}
	a := Assumptions{GrowthRate: 5, ExpenseIncrease: 2, ForecastMonths: 3}

	out := Forecast(h, a, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	if len(out) != 3 {
		t.Fatalf("got %d months, want 3", len(out))
	}

	want := []Month{
		{Opening: 5000, Inflow: 10000, Outflow: 7000, Closing: 8000},
		{Opening: 8000, Inflow: 10500, Outflow: 7140, Closing: 11360},
		{Opening: 11360, Inflow: 11025, Outflow: 7282.8, Closing: 15102.2},
	}
	for i, m := range out {
		w := want[i]
		if !almostEqual(m.Opening, w.Opening) || !almostEqual(m.Inflow, w.Inflow) ||
			!almostEqual(m.Outflow, w.Outflow) || !almostEqual(m.Closing, w.Closing) {
			t.Errorf("month %d = %+v, want %+v", i, m, w)
		}
	}
}

func TestForecastBalanceIdentity(t *testing.T) {
	h := History{
		AvgInflow:      12345.67,
		AvgOutflow:     9876.54,
		CurrentBalance: 1000,
		Receivables:    5000,
		Payables:       3000,
	}
	a := Assumptions{GrowthRate: 7, ExpenseIncrease: 3, ForecastMonths: 6}

	out := Forecast(h, a, time.Now())
	prev := h.CurrentBalance
	for i, m := range out {
		if !almostEqual(m.Opening, prev) {
			t.Errorf("month %d opens at %v, want previous close %v", i, m.Opening, prev)
		}
		if !almostEqual(m.Closing, m.Opening+m.Inflow-m.Outflow) {
			t.Errorf("month %d: closing %v != opening %v + inflow %v - outflow %v",
				i, m.Closing, m.Opening, m.Inflow, m.Outflow)
		}
		prev = m.Closing
	}
}

func TestForecastReceivablePayableSchedules(t *testing.T) {
	h := History{Receivables: 1000, Payables: 500}
	a := Assumptions{ForecastMonths: 4}

	out := Forecast(h, a, time.Now())

	// AR releases 60/30/10 in months 0-2; AP releases 80/20 in months 0-1.
	wantIn := []float64{600, 300, 100, 0}
	wantOut := []float64{400, 100, 0, 0}
	for i := range out {
		if !almostEqual(out[i].Inflow, wantIn[i]) {
			t.Errorf("month %d inflow = %v, want %v", i, out[i].Inflow, wantIn[i])
		}
		if !almostEqual(out[i].Outflow, wantOut[i]) {
			t.Errorf("month %d outflow = %v, want %v", i, out[i].Outflow, wantOut[i])
		}
	}
}

func TestForecastMonthsClamped(t *testing.T) {
	if got := len(Forecast(History{}, Assumptions{ForecastMonths: 1}, time.Now())); got != 3 {
		t.Errorf("forecast months below range: got %d, want 3", got)
	}
	if got := len(Forecast(History{}, Assumptions{ForecastMonths: 12}, time.Now())); got != 6 {
		t.Errorf("forecast months above range: got %d, want 6", got)
	}
}

func TestForecastEmptyHistoryIsFlat(t *testing.T) {
	out := Forecast(History{}, Assumptions{GrowthRate: 10, ExpenseIncrease: 5, ForecastMonths: 3}, time.Now())
	for i, m := range out {
		if m.Inflow != 0 || m.Outflow != 0 || m.Opening != 0 || m.Closing != 0 {
			t.Errorf("month %d = %+v, want all zeros for empty history", i, m)
		}
	}
}

func fixedNow() time.Time {
	return time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
}

func journalEntry(date time.Time, lines ...models.JournalLine) models.JournalEntry {
	return models.JournalEntry{EntryDate: date, Lines: lines}
}

func TestBuildHistoryClassifiesByRole(t *testing.T) {
	accounts := []models.Account{
		{Id: 1, Name: "HDFC Current", Role: models.RoleBank},
		{Id: 2, Name: "Petty Cash", Role: models.RoleCash},
		{Id: 3, Name: "Trade Debtors", Role: models.RoleReceivable},
		{Id: 4, Name: "Trade Creditors", Role: models.RolePayable},
		{Id: 5, Name: "Sales", Role: models.RoleIncome},
	}
	aug := time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC)
	jul := time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC)

	entries := []models.JournalEntry{
		// Bank receipt this month.
		journalEntry(aug,
			models.JournalLine{AccountId: 1, Debit: 2000},
			models.JournalLine{AccountId: 5, Credit: 2000},
		),
		// Cash payment last month.
		journalEntry(jul,
			models.JournalLine{AccountId: 2, Credit: 800},
			models.JournalLine{AccountId: 4, Debit: 800},
		),
		// Outstanding receivable and payable.
		journalEntry(aug,
			models.JournalLine{AccountId: 3, Debit: 1500},
			models.JournalLine{AccountId: 5, Credit: 1500},
		),
		journalEntry(aug,
			models.JournalLine{AccountId: 4, Credit: 900},
		),
	}

	h := BuildHistory(fixedNow(), nil, entries, accounts)

	if !almostEqual(h.CurrentBalance, 1200) { // 2000 in - 800 out
		t.Errorf("current balance = %v, want 1200", h.CurrentBalance)
	}
	if !almostEqual(h.Receivables, 1500) {
		t.Errorf("receivables = %v, want 1500", h.Receivables)
	}
	if !almostEqual(h.Payables, 100) { // 900 owed - 800 paid off
		t.Errorf("payables = %v, want 100", h.Payables)
	}

	last := h.Months[len(h.Months)-1] // current month
	if !almostEqual(last.Inflow, 2000) || !almostEqual(last.Outflow, 0) {
		t.Errorf("current month flows = %v/%v, want 2000/0", last.Inflow, last.Outflow)
	}
}

func TestBuildHistoryPaidInvoicesAreInflows(t *testing.T) {
	paidAt := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	invoices := []models.Invoice{
		{Total: 1180, Status: models.InvoiceStatusPaid, InvoiceDate: paidAt},
		{Total: 999, Status: models.InvoiceStatusPending, InvoiceDate: paidAt},
	}

	h := BuildHistory(fixedNow(), invoices, nil, nil)

	last := h.Months[len(h.Months)-1]
	if !almostEqual(last.Inflow, 1180) {
		t.Errorf("inflow = %v, want 1180 (paid invoice only)", last.Inflow)
	}
	if !almostEqual(h.AvgInflow, 1180.0/6) {
		t.Errorf("avg inflow = %v, want %v", h.AvgInflow, 1180.0/6)
	}
}

func TestBuildHistoryOpeningReconstruction(t *testing.T) {
	accounts := []models.Account{{Id: 1, Name: "Bank", Role: models.RoleBank}}
	entries := []models.JournalEntry{
		journalEntry(time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC),
			models.JournalLine{AccountId: 1, Debit: 500}),
		journalEntry(time.Date(2026, 7, 2, 0, 0, 0, 0, time.UTC),
			models.JournalLine{AccountId: 1, Debit: 300}),
	}

	h := BuildHistory(fixedNow(), nil, entries, accounts)

	// Walking back: current 800, current month net +500 opens at 300,
	// previous month net +300 opens at 0.
	n := len(h.Months)
	if !almostEqual(h.Months[n-1].Opening, 300) {
		t.Errorf("current month opening = %v, want 300", h.Months[n-1].Opening)
	}
	if !almostEqual(h.Months[n-2].Opening, 0) {
		t.Errorf("previous month opening = %v, want 0", h.Months[n-2].Opening)
	}
	for i := 1; i < n; i++ {
		if !almostEqual(h.Months[i].Opening, h.Months[i-1].Closing) {
			t.Errorf("month %d opening %v != month %d closing %v",
				i, h.Months[i].Opening, i-1, h.Months[i-1].Closing)
		}
	}
	if !almostEqual(h.CurrentBalance, 800) {
		t.Errorf("current balance = %v, want 800", h.CurrentBalance)
	}
}

func TestBuildHistoryEmpty(t *testing.T) {
	h := BuildHistory(fixedNow(), nil, nil, nil)
	if h.AvgInflow != 0 || h.AvgOutflow != 0 || h.CurrentBalance != 0 {
		t.Errorf("empty history = %+v, want zero averages and balance", h)
	}
	if len(h.Months) != 6 {
		t.Errorf("history months = %d, want 6", len(h.Months))
	}
}
