package services

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCommissionSplit(t *testing.T) {
	tests := []struct {
		name           string
		amount         string
		rate           string
		wantShare      string
		wantCommission string
	}{
		{"even split at 80 percent", "100", "0.8", "80", "20"},
		{"odd cents", "100.01", "0.8", "80.01", "20"},
		{"single cent", "0.01", "0.8", "0.01", "0"},
		{"repeating fraction", "33.33", "0.8", "26.66", "6.67"},
		{"full share", "250", "1", "250", "0"},
		{"zero amount", "0", "0.8", "0", "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			share, commission := CommissionSplit(dec(tc.amount), dec(tc.rate))

			if !share.Equal(dec(tc.wantShare)) {
				t.Errorf("providerShare = %s, want %s", share, tc.wantShare)
			}
			if !commission.Equal(dec(tc.wantCommission)) {
				t.Errorf("commission = %s, want %s", commission, tc.wantCommission)
			}
		})
	}
}

// The two halves of a split must always reconstruct the original amount, no
// matter how the rounding falls.
func TestCommissionSplitConserves(t *testing.T) {
	amounts := []string{"100.01", "33.33", "19.99", "0.07", "12345.67", "0.01"}
	rates := []string{"0.8", "0.75", "0.9", "0.333", "0.5"}

	for _, a := range amounts {
		for _, r := range rates {
			share, commission := CommissionSplit(dec(a), dec(r))

			if sum := share.Add(commission); !sum.Equal(dec(a)) {
				t.Errorf("amount %s rate %s: %s + %s = %s, want %s", a, r, share, commission, sum, a)
			}
			if share.Exponent() < -2 {
				t.Errorf("amount %s rate %s: share %s has sub-cent precision", a, r, share)
			}
		}
	}
}

func TestCommissionSplitDefaultRate(t *testing.T) {
	amount := decimal.RequireFromString("157.43")

	share, commission := CommissionSplit(amount, decimal.RequireFromString("0.8"))
	if !share.Equal(decimal.RequireFromString("125.94")) {
		t.Errorf("providerShare = %s, want 125.94", share)
	}
	if !commission.Equal(decimal.RequireFromString("31.49")) {
		t.Errorf("commission = %s, want 31.49", commission)
	}
}
