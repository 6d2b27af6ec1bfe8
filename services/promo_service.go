package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/deepak4044/service_marketplace/models"
)

// ComputeDiscount resolves an offer against a base amount, clamped to
// [0, baseAmount].
func ComputeDiscount(offer *models.PromoOffer, baseAmount decimal.Decimal) decimal.Decimal {
	var discount decimal.Decimal
	if offer.DiscountType == models.DiscountTypePercentage {
		discount = baseAmount.Mul(offer.DiscountValue).Div(decimal.NewFromInt(100)).Round(2)
	} else {
		discount = offer.DiscountValue
	}
	return ClampDiscount(discount, baseAmount)
}

// ReservePromo validates a coupon for a user and returns the discount it
// grants. It must run inside the booking transaction: the caller persists the
// PromoRedemption row alongside the booking, so a failed booking leaves no
// redemption behind. The unique (user_id, promo_offer_id) index catches
// concurrent double redemptions the pre-check cannot see.
func ReservePromo(tx *gorm.DB, userID, offerID uuid.UUID, baseAmount decimal.Decimal, now time.Time) (decimal.Decimal, *models.PromoOffer, error) {
	var existing models.PromoRedemption
	err := tx.Where("user_id = ? AND promo_offer_id = ?", userID, offerID).First(&existing).Error
	if err == nil {
		return decimal.Zero, nil, ErrPromoAlreadyRedeemed
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, nil, err
	}

	var offer models.PromoOffer
	if err := tx.First(&offer, "id = ?", offerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, nil, ErrPromoNotFound
		}
		return decimal.Zero, nil, err
	}

	if offer.ExpiresAt != nil && offer.ExpiresAt.Before(now) {
		return decimal.Zero, nil, ErrPromoExpired
	}

	return ComputeDiscount(&offer, baseAmount), &offer, nil
}
