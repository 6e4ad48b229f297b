package cashflow

import (
	"math"
	"time"

	"billease-backend/models"
	"billease-backend/utils"
)

// Assumptions are the user-tunable knobs of a forecast run.
type Assumptions struct {
	GrowthRate      float64 `json:"growth_rate"`      // % applied to inflows per month
	ExpenseIncrease float64 `json:"expense_increase"` // % applied to outflows per month
	ForecastMonths  int     `json:"forecast_months"`  // clamped to [3,6]
}

// Month is one projected (or historical) monthly row.
type Month struct {
	Label   string  `json:"label"` // YYYY-MM
	Opening float64 `json:"opening_balance"`
	Inflow  float64 `json:"inflow"`
	Outflow float64 `json:"outflow"`
	Closing float64 `json:"closing_balance"`
}

// History is the reconstructed view of recent ledger activity that the
// forecast extrapolates from.
type History struct {
	Months         []Month `json:"months"`
	AvgInflow      float64 `json:"avg_inflow"`
	AvgOutflow     float64 `json:"avg_outflow"`
	CurrentBalance float64 `json:"current_balance"` // cash + bank today
	Receivables    float64 `json:"receivables"`
	Payables       float64 `json:"payables"`
}

// Receivable/payable release schedules: fractions of the current AR/AP
// balance assumed to land in forecast months 0, 1, 2.
var (
	arSchedule = []float64{0.6, 0.3, 0.1}
	apSchedule = []float64{0.8, 0.2}
)

const historyMonths = 6

// monthKey truncates t to its calendar month.
func monthKey(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// BuildHistory buckets the last six calendar months of invoice and journal
// activity. An inflow is a paid invoice's total or a debit to a cash/bank
// role account; an outflow is a credit to the same account set. Missing or
// empty data yields zero averages and is not an error.
func BuildHistory(now time.Time, invoices []models.Invoice, entries []models.JournalEntry, accounts []models.Account) History {
	roles := make(map[uint]models.AccountRole, len(accounts))
	for _, a := range accounts {
		roles[a.Id] = a.Role
	}

	type flows struct{ in, out float64 }
	buckets := make(map[time.Time]*flows, historyMonths)
	current := monthKey(now)
	for i := 0; i < historyMonths; i++ {
		buckets[current.AddDate(0, -i, 0)] = &flows{}
	}

	for _, inv := range invoices {
		if inv.Status != models.InvoiceStatusPaid {
			continue
		}
		at := inv.InvoiceDate
		if inv.PaidAt != nil {
			at = *inv.PaidAt
		}
		if b, ok := buckets[monthKey(at)]; ok {
			b.in += inv.Total
		}
	}

	var receivables, payables, cashBank float64
	for _, e := range entries {
		b := buckets[monthKey(e.EntryDate)]
		for _, line := range e.Lines {
			switch roles[line.AccountId] {
			case models.RoleCash, models.RoleBank:
				cashBank += line.Debit - line.Credit
				if b != nil {
					b.in += line.Debit
					b.out += line.Credit
				}
			case models.RoleReceivable:
				receivables += line.Debit - line.Credit
			case models.RolePayable:
				payables += line.Credit - line.Debit
			}
		}
	}

	h := History{
		CurrentBalance: utils.Round2(cashBank),
		Receivables:    utils.Round2(receivables),
		Payables:       utils.Round2(payables),
	}

	// Walk backward from the current balance to infer each month's opening.
	// These are derived figures, not recorded snapshots.
	closing := h.CurrentBalance
	months := make([]Month, historyMonths)
	for i := 0; i < historyMonths; i++ {
		key := current.AddDate(0, -i, 0)
		b := buckets[key]
		m := Month{
			Label:   key.Format("2006-01"),
			Inflow:  utils.Round2(b.in),
			Outflow: utils.Round2(b.out),
			Closing: utils.Round2(closing),
		}
		m.Opening = utils.Round2(closing - b.in + b.out)
		closing = m.Opening
		months[historyMonths-1-i] = m

		h.AvgInflow += b.in
		h.AvgOutflow += b.out
	}
	h.Months = months
	h.AvgInflow = utils.Round2(h.AvgInflow / historyMonths)
	h.AvgOutflow = utils.Round2(h.AvgOutflow / historyMonths)
	return h
}

// Forecast projects the monthly cash position forward. For each month i:
//
//	inflow(i)  = avgInflow  * (1+growth/100)^i    + AR released per schedule
//	outflow(i) = avgOutflow * (1+increase/100)^i  + AP released per schedule
//	closing(i) = opening(i) + inflow(i) - outflow(i)
//
// and the next month opens at this month's close. Empty history produces a
// flat forecast; there are no error paths.
func Forecast(h History, a Assumptions, from time.Time) []Month {
	n := a.ForecastMonths
	if n < 3 {
		n = 3
	}
	if n > 6 {
		n = 6
	}

	start := monthKey(from)
	out := make([]Month, 0, n)
	opening := h.CurrentBalance
	for i := 0; i < n; i++ {
		inflow := h.AvgInflow * math.Pow(1+a.GrowthRate/100, float64(i))
		outflow := h.AvgOutflow * math.Pow(1+a.ExpenseIncrease/100, float64(i))
		if i < len(arSchedule) {
			inflow += h.Receivables * arSchedule[i]
		}
		if i < len(apSchedule) {
			outflow += h.Payables * apSchedule[i]
		}

		m := Month{
			Label:   start.AddDate(0, i, 0).Format("2006-01"),
			Opening: utils.Round2(opening),
			Inflow:  utils.Round2(inflow),
			Outflow: utils.Round2(outflow),
		}
		m.Closing = utils.Round2(m.Opening + m.Inflow - m.Outflow)
		opening = m.Closing
		out = append(out, m)
	}
	return out
}
