package services

import (
	"testing"

	"github.com/deepak4044/service_marketplace/models"
)

func TestComputeDiscount(t *testing.T) {
	tests := []struct {
		name          string
		discountType  string
		discountValue string
		baseAmount    string
		want          string
	}{
		{"ten percent off", models.DiscountTypePercentage, "10", "300", "30"},
		{"percentage rounds to cents", models.DiscountTypePercentage, "15", "33.33", "5"},
		{"flat discount", models.DiscountTypeFlat, "25", "300", "25"},
		{"flat discount above base is clamped", models.DiscountTypeFlat, "500", "300", "300"},
		{"full percentage discount", models.DiscountTypePercentage, "100", "120.50", "120.5"},
		{"zero value", models.DiscountTypeFlat, "0", "300", "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			offer := &models.PromoOffer{
				DiscountType:  tc.discountType,
				DiscountValue: dec(tc.discountValue),
			}

			got := ComputeDiscount(offer, dec(tc.baseAmount))
			if !got.Equal(dec(tc.want)) {
				t.Errorf("ComputeDiscount = %s, want %s", got, tc.want)
			}
		})
	}
}
