package tax

import (
	"time"

	"billease-backend/models"
	"billease-backend/utils"
)

// Section is one row of the GST-3B outward-supply table (3.1).
type Section struct {
	TaxableValue  float64 `json:"taxableValue"`
	IntegratedTax float64 `json:"integratedTax"`
	CentralTax    float64 `json:"centralTax"`
	StateUTTax    float64 `json:"stateUTTax"`
	Cess          float64 `json:"cess"`
}

// ITCSection mirrors table 4 of the form. Input tax credit is not tracked
// by this system; the section is emitted with zeros and a note so the
// return never claims completeness it doesn't have.
type ITCSection struct {
	ITCAvailable float64 `json:"itcAvailable"`
	ITCReversed  float64 `json:"itcReversed"`
	NetITC       float64 `json:"netITC"`
	Note         string  `json:"note"`
}

// Return is the GST-3B summary for one period, derived on every request
// from the current invoice set and never persisted.
type Return struct {
	Period              string             `json:"period"`
	OutwardTaxableOther Section            `json:"outwardTaxableOther"`  // 3.1(a)
	OutwardTaxableZero  Section            `json:"outwardTaxableZero"`   // 3.1(b)
	OutwardExempt       Section            `json:"outwardExempt"`        // 3.1(c), not tracked
	InterstateByState   map[string]Section `json:"interstateByState"`    // buyer state code -> totals
	ITC                 ITCSection         `json:"itc"`
	Totals              Section            `json:"totals"`
	InvoiceCount        int                `json:"invoiceCount"`
}

// Period bounds a return by invoice date, [From, To] inclusive.
type Period struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls inside the period. A zero-valued bound
// is open on that side.
func (p Period) Contains(t time.Time) bool {
	if !p.From.IsZero() && t.Before(p.From) {
		return false
	}
	if !p.To.IsZero() && t.After(p.To) {
		return false
	}
	return true
}

// BuildGST3B rolls the paid invoices of a period into GST-3B sections.
//
// Only invoices with status exactly "paid" count as supplied; everything
// else is excluded outright, with no pro-rata handling. Rate 0 invoices go
// to 3.1(b) at full value; everything else lands in 3.1(a) with taxable
// value = total - gst. Interstate supplies (buyer GSTIN state differs from
// sellerGSTIN's) accumulate integrated tax; intrastate supplies split the
// gst evenly between central and state tax.
func BuildGST3B(invoices []models.Invoice, sellerGSTIN string, period Period) Return {
	ret := Return{
		Period:            period.From.Format("2006-01"),
		InterstateByState: map[string]Section{},
		ITC: ITCSection{
			Note: "input tax credit is not tracked; file ITC from purchase records",
		},
	}

	for _, inv := range invoices {
		if inv.Status != models.InvoiceStatusPaid {
			continue
		}
		if !period.Contains(inv.InvoiceDate) {
			continue
		}
		ret.InvoiceCount++

		if inv.GSTRate == 0 {
			ret.OutwardTaxableZero.TaxableValue = utils.Round2(ret.OutwardTaxableZero.TaxableValue + inv.Total)
			continue
		}

		taxable := utils.Round2(inv.Total - inv.GSTAmount)
		sec := &ret.OutwardTaxableOther
		sec.TaxableValue = utils.Round2(sec.TaxableValue + taxable)

		if Interstate(sellerGSTIN, inv.Client.GSTIN) {
			sec.IntegratedTax = utils.Round2(sec.IntegratedTax + inv.GSTAmount)

			code := StateCode(inv.Client.GSTIN)
			bucket := ret.InterstateByState[code]
			bucket.TaxableValue = utils.Round2(bucket.TaxableValue + taxable)
			bucket.IntegratedTax = utils.Round2(bucket.IntegratedTax + inv.GSTAmount)
			ret.InterstateByState[code] = bucket
		} else {
			half := utils.Round2(inv.GSTAmount / 2)
			sec.CentralTax = utils.Round2(sec.CentralTax + half)
			sec.StateUTTax = utils.Round2(sec.StateUTTax + half)
		}
	}

	ret.Totals = sumSections(ret.OutwardTaxableOther, ret.OutwardTaxableZero, ret.OutwardExempt)
	return ret
}

func sumSections(sections ...Section) Section {
	var total Section
	for _, s := range sections {
		total.TaxableValue = utils.Round2(total.TaxableValue + s.TaxableValue)
		total.IntegratedTax = utils.Round2(total.IntegratedTax + s.IntegratedTax)
		total.CentralTax = utils.Round2(total.CentralTax + s.CentralTax)
		total.StateUTTax = utils.Round2(total.StateUTTax + s.StateUTTax)
		total.Cess = utils.Round2(total.Cess + s.Cess)
	}
	return total
}
