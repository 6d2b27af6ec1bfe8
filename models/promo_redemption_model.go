package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// A user can redeem a given offer once; the composite unique index backs the
// application-level check under concurrent bookings.
type PromoRedemption struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID       `gorm:"not null;uniqueIndex:idx_user_offer" json:"user_id"`
	PromoOfferID   uuid.UUID       `gorm:"not null;uniqueIndex:idx_user_offer" json:"promo_offer_id"`
	BookingID      uuid.UUID       `gorm:"not null" json:"booking_id"`
	DiscountAmount decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"discount_amount"`

	PromoOffer PromoOffer `gorm:"foreignkey:PromoOfferID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
