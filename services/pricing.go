package services

import (
	"github.com/shopspring/decimal"

	config "github.com/deepak4044/service_marketplace/configs"
)

// Quote is the priced breakdown of a booking request. FinalAmount is the only
// rounded figure; TaxesAndFees is derived from it so that recomputing
// (BaseAmount - DiscountAmount) * (1 + taxRate) from persisted fields always
// reproduces FinalAmount exactly.
type Quote struct {
	BaseAmount     decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxesAndFees   decimal.Decimal
	FinalAmount    decimal.Decimal
}

func BuildQuote(servicePrice decimal.Decimal, numberOfWorker, workHours int, discount, taxRate decimal.Decimal) Quote {
	base := servicePrice.
		Mul(decimal.NewFromInt(int64(numberOfWorker))).
		Mul(decimal.NewFromInt(int64(workHours)))

	discount = ClampDiscount(discount, base)
	afterDiscount := base.Sub(discount)

	final := afterDiscount.Mul(decimal.NewFromInt(1).Add(taxRate)).Round(2)
	taxes := final.Sub(afterDiscount)

	return Quote{
		BaseAmount:     base,
		DiscountAmount: discount,
		TaxesAndFees:   taxes,
		FinalAmount:    final,
	}
}

// ClampDiscount keeps a discount inside [0, base]. A flat coupon larger than
// the base amount makes the booking free, never negative.
func ClampDiscount(discount, base decimal.Decimal) decimal.Decimal {
	if discount.IsNegative() {
		return decimal.Zero
	}
	if discount.GreaterThan(base) {
		return base
	}
	return discount
}

// TaxRate reads BOOKING_TAXES, defaulting to zero on a missing or bad value.
func TaxRate() decimal.Decimal {
	rate, err := decimal.NewFromString(config.Config("BOOKING_TAXES"))
	if err != nil {
		return decimal.Zero
	}
	return rate
}

// ProviderShareRate reads PROVIDER_COMMISSION, the fraction of a payment paid
// out to the provider. The remainder is the platform commission.
func ProviderShareRate() decimal.Decimal {
	rate, err := decimal.NewFromString(config.Config("PROVIDER_COMMISSION"))
	if err != nil {
		return decimal.NewFromFloat(0.8)
	}
	return rate
}
