package tax

import "billease-backend/utils"

// Split is the GST breakup of a single taxable amount. Exactly one of the
// two halves is populated: intrastate supplies carry CGST+SGST, interstate
// supplies carry IGST.
type Split struct {
	GSTAmount float64 `json:"gst_amount"`
	CGST      float64 `json:"cgst"`
	SGST      float64 `json:"sgst"`
	IGST      float64 `json:"igst"`
}

// ComputeSplit derives the GST split for a base amount at the given rate.
// The rate is taken as-is; the UI offers {0,5,12,18,28} but nothing here
// enforces that set. A zero amount yields a zero split, no error.
func ComputeSplit(amount, rate float64, interstate bool) Split {
	gst := utils.Round2(amount * rate / 100)
	if interstate {
		return Split{GSTAmount: gst, IGST: gst}
	}
	half := utils.Round2(gst / 2)
	return Split{GSTAmount: gst, CGST: half, SGST: half}
}

// StateCode extracts the two-digit state code prefix of a GSTIN.
// Returns "" for missing or malformed values.
func StateCode(gstin string) string {
	if len(gstin) < 2 {
		return ""
	}
	return gstin[:2]
}

// Interstate reports whether a supply from the seller's registered state to
// the buyer is interstate, by comparing GSTIN state codes. Buyers without a
// usable GSTIN are treated as intrastate, matching the local-walk-in default.
func Interstate(sellerGSTIN, buyerGSTIN string) bool {
	seller := StateCode(sellerGSTIN)
	buyer := StateCode(buyerGSTIN)
	if seller == "" || buyer == "" {
		return false
	}
	return seller != buyer
}

// TDSAmount computes the withholding on a vendor payment. Callers pass the
// rate from the vendor's linked rule; absent a rule the caller uses zero.
func TDSAmount(amount, ratePercentage float64) float64 {
	return utils.Round2(amount * ratePercentage / 100)
}

// InvoiceTotal applies the document-level adjustments to a taxed amount:
//
//	total = amount + gst - discount - advance + roundoff
//
// This identity is recomputed on every invoice write so stored totals can
// be trusted downstream.
func InvoiceTotal(amount, gstAmount, discount, advance, roundoff float64) float64 {
	return utils.Round2(amount + gstAmount - discount - advance + roundoff)
}
