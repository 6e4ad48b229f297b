package tax

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.005
}

func TestComputeSplitIntrastate(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		rate   float64
		gst    float64
		half   float64
	}{
		{"standard 18 percent", 1000, 18, 180, 90},
		{"five percent", 2000, 5, 100, 50},
		{"twelve percent", 999.99, 12, 120, 60},
		{"twenty eight percent", 100, 28, 28, 14},
		{"zero rate", 1000, 0, 0, 0},
		{"zero amount", 0, 18, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := ComputeSplit(tc.amount, tc.rate, false)
			if !almostEqual(s.GSTAmount, tc.gst) {
				t.Errorf("gst = %v, want %v", s.GSTAmount, tc.gst)
			}
			if !almostEqual(s.CGST, tc.half) || !almostEqual(s.SGST, tc.half) {
				t.Errorf("cgst/sgst = %v/%v, want %v each", s.CGST, s.SGST, tc.half)
			}
			if s.IGST != 0 {
				t.Errorf("igst = %v, want 0 for intrastate", s.IGST)
			}
			if !almostEqual(s.CGST+s.SGST, s.GSTAmount) {
				t.Errorf("cgst+sgst = %v, want gst %v", s.CGST+s.SGST, s.GSTAmount)
			}
		})
	}
}

func TestComputeSplitInterstate(t *testing.T) {
	s := ComputeSplit(1000, 18, true)
	if !almostEqual(s.GSTAmount, 180) || !almostEqual(s.IGST, 180) {
		t.Errorf("gst/igst = %v/%v, want 180/180", s.GSTAmount, s.IGST)
	}
	if s.CGST != 0 || s.SGST != 0 {
		t.Errorf("cgst/sgst = %v/%v, want 0/0 for interstate", s.CGST, s.SGST)
	}
}

func TestComputeSplitRateNotEnumerated(t *testing.T) {
	// Nothing restricts the rate to the UI's set.
	s := ComputeSplit(1000, 7.5, false)
	if !almostEqual(s.GSTAmount, 75) {
		t.Errorf("gst = %v, want 75", s.GSTAmount)
	}
}

func TestStateCode(t *testing.T) {
	tests := []struct {
		gstin string
		want  string
	}{
		{"27AAPFU0939F1ZV", "27"},
		{"29", "29"},
		{"2", ""},
		{"", ""},
	}
	for _, tc := range tests {
		if got := StateCode(tc.gstin); got != tc.want {
			t.Errorf("StateCode(%q) = %q, want %q", tc.gstin, got, tc.want)
		}
	}
}

func TestInterstate(t *testing.T) {
	seller := "27AAPFU0939F1ZV" // Maharashtra
	tests := []struct {
		name  string
		buyer string
		want  bool
	}{
		{"same state", "27AABCU9603R1ZM", false},
		{"different state", "29AABCU9603R1ZM", true},
		{"unregistered buyer", "", false},
		{"malformed buyer", "2", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Interstate(seller, tc.buyer); got != tc.want {
				t.Errorf("Interstate(%q, %q) = %v, want %v", seller, tc.buyer, got, tc.want)
			}
		})
	}
	if Interstate("", "29AABCU9603R1ZM") {
		t.Error("missing seller GSTIN must default to intrastate")
	}
}

func TestTDSAmount(t *testing.T) {
	// 10% professional-fee withholding on a 5000 payment.
	if got := TDSAmount(5000, 10); !almostEqual(got, 500) {
		t.Errorf("TDSAmount(5000, 10) = %v, want 500", got)
	}
	if got := TDSAmount(5000, 0); got != 0 {
		t.Errorf("TDSAmount with zero rate = %v, want 0", got)
	}
	if got := TDSAmount(0, 10); got != 0 {
		t.Errorf("TDSAmount with zero amount = %v, want 0", got)
	}
	if got := TDSAmount(1234.56, 2); !almostEqual(got, 24.69) {
		t.Errorf("TDSAmount(1234.56, 2) = %v, want 24.69", got)
	}
}

func TestInvoiceTotal(t *testing.T) {
	// amount=1000, gst=180 at 18%: total 1180 with no adjustments.
	if got := InvoiceTotal(1000, 180, 0, 0, 0); !almostEqual(got, 1180) {
		t.Errorf("total = %v, want 1180", got)
	}
	// Full identity: amount + gst - discount - advance + roundoff.
	if got := InvoiceTotal(1000, 180, 50, 200, 0.4); !almostEqual(got, 930.4) {
		t.Errorf("total = %v, want 930.4", got)
	}
}
