package services

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestBuildQuote(t *testing.T) {
	tests := []struct {
		name           string
		servicePrice   string
		numberOfWorker int
		workHours      int
		discount       string
		taxRate        string
		wantBase       string
		wantDiscount   string
		wantTaxes      string
		wantFinal      string
	}{
		{
			name:         "two workers three hours with tax",
			servicePrice: "50.00", numberOfWorker: 2, workHours: 3,
			discount: "0", taxRate: "0.05",
			wantBase: "300", wantDiscount: "0", wantTaxes: "15", wantFinal: "315",
		},
		{
			name:         "flat discount applied before tax",
			servicePrice: "100.00", numberOfWorker: 1, workHours: 2,
			discount: "20.00", taxRate: "0.05",
			wantBase: "200", wantDiscount: "20", wantTaxes: "9", wantFinal: "189",
		},
		{
			name:         "zero tax rate",
			servicePrice: "75.50", numberOfWorker: 1, workHours: 1,
			discount: "0", taxRate: "0",
			wantBase: "75.5", wantDiscount: "0", wantTaxes: "0", wantFinal: "75.5",
		},
		{
			name:         "discount larger than base is clamped to base",
			servicePrice: "10.00", numberOfWorker: 1, workHours: 1,
			discount: "50.00", taxRate: "0.05",
			wantBase: "10", wantDiscount: "10", wantTaxes: "0", wantFinal: "0",
		},
		{
			name:         "negative discount is treated as zero",
			servicePrice: "10.00", numberOfWorker: 1, workHours: 1,
			discount: "-5.00", taxRate: "0",
			wantBase: "10", wantDiscount: "0", wantTaxes: "0", wantFinal: "10",
		},
		{
			name:         "odd amounts round to cents",
			servicePrice: "33.33", numberOfWorker: 1, workHours: 1,
			discount: "0", taxRate: "0.07",
			wantBase: "33.33", wantDiscount: "0", wantTaxes: "2.33", wantFinal: "35.66",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := BuildQuote(dec(tc.servicePrice), tc.numberOfWorker, tc.workHours, dec(tc.discount), dec(tc.taxRate))

			if !q.BaseAmount.Equal(dec(tc.wantBase)) {
				t.Errorf("BaseAmount = %s, want %s", q.BaseAmount, tc.wantBase)
			}
			if !q.DiscountAmount.Equal(dec(tc.wantDiscount)) {
				t.Errorf("DiscountAmount = %s, want %s", q.DiscountAmount, tc.wantDiscount)
			}
			if !q.TaxesAndFees.Equal(dec(tc.wantTaxes)) {
				t.Errorf("TaxesAndFees = %s, want %s", q.TaxesAndFees, tc.wantTaxes)
			}
			if !q.FinalAmount.Equal(dec(tc.wantFinal)) {
				t.Errorf("FinalAmount = %s, want %s", q.FinalAmount, tc.wantFinal)
			}
		})
	}
}

// FinalAmount must be reproducible from the other persisted fields, so that
// auditing a stored booking never disagrees with what was charged.
func TestBuildQuoteRoundTrip(t *testing.T) {
	prices := []string{"50.00", "33.33", "19.99", "120.75", "0.01"}
	rates := []string{"0", "0.05", "0.07", "0.18"}

	for _, p := range prices {
		for _, r := range rates {
			q := BuildQuote(dec(p), 2, 3, dec("7.77"), dec(r))

			recomputed := q.BaseAmount.Sub(q.DiscountAmount).Add(q.TaxesAndFees)
			if !recomputed.Equal(q.FinalAmount) {
				t.Errorf("price %s rate %s: base-discount+taxes = %s, FinalAmount = %s",
					p, r, recomputed, q.FinalAmount)
			}
			if q.FinalAmount.Exponent() < -2 {
				t.Errorf("price %s rate %s: FinalAmount %s has sub-cent precision", p, r, q.FinalAmount)
			}
		}
	}
}

func TestClampDiscount(t *testing.T) {
	base := dec("100")

	if got := ClampDiscount(dec("-1"), base); !got.IsZero() {
		t.Errorf("negative discount clamped to %s, want 0", got)
	}
	if got := ClampDiscount(dec("150"), base); !got.Equal(base) {
		t.Errorf("oversized discount clamped to %s, want %s", got, base)
	}
	if got := ClampDiscount(dec("40"), base); !got.Equal(dec("40")) {
		t.Errorf("in-range discount changed to %s, want 40", got)
	}
}
