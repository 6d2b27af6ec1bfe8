package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/deepak4044/service_marketplace/models"
)

// Every balance mutation goes through Credit or Debit: the wallet row is read
// FOR UPDATE and exactly one WalletTransaction row is appended in the same
// transaction. Callers must already be inside tx.

func Credit(tx *gorm.DB, userID uuid.UUID, amount decimal.Decimal, description string) error {
	var wallet models.Wallet
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("user_id = ?", userID).First(&wallet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		wallet = models.Wallet{UserID: userID, Balance: decimal.Zero}
		if err := tx.Create(&wallet).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	wallet.Balance = wallet.Balance.Add(amount).Round(2)
	if err := tx.Save(&wallet).Error; err != nil {
		return err
	}

	return tx.Create(&models.WalletTransaction{
		UserID:      userID,
		Amount:      amount,
		Type:        models.TransactionTypeCredit,
		Description: description,
	}).Error
}

func Debit(tx *gorm.DB, userID uuid.UUID, amount decimal.Decimal, description string) error {
	var wallet models.Wallet
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("user_id = ?", userID).First(&wallet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrInsufficientFunds
	} else if err != nil {
		return err
	}

	if wallet.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}

	wallet.Balance = wallet.Balance.Sub(amount).Round(2)
	if err := tx.Save(&wallet).Error; err != nil {
		return err
	}

	return tx.Create(&models.WalletTransaction{
		UserID:      userID,
		Amount:      amount,
		Type:        models.TransactionTypeDebit,
		Description: description,
	}).Error
}

// CommissionSplit divides a payment into the provider share and the platform
// commission. The two parts always sum to exactly the original amount.
func CommissionSplit(amount, providerShareRate decimal.Decimal) (providerShare, commission decimal.Decimal) {
	providerShare = amount.Mul(providerShareRate).Round(2)
	commission = amount.Sub(providerShare)
	return providerShare, commission
}

// PayBookingWithWallet settles a wallet-paid booking: the user is debited the
// full amount, the provider is credited their share and the platform wallet is
// credited the retained commission, all inside one transaction.
func PayBookingWithWallet(tx *gorm.DB, userID, providerID uuid.UUID, amount decimal.Decimal) error {
	if err := Debit(tx, userID, amount, "Service booking payment via wallet"); err != nil {
		return err
	}

	providerShare, commission := CommissionSplit(amount, ProviderShareRate())

	if err := Credit(tx, providerID, providerShare, "Service payment received"); err != nil {
		return err
	}

	adminID, err := platformAccountID(tx)
	if err != nil {
		return err
	}
	return Credit(tx, adminID, commission, fmt.Sprintf("Commission retained from provider ID %s", providerID))
}

// SettleCashPayment ledgers a confirmed cash collection: the provider is
// credited the full amount, then debited the commission, which is credited to
// the platform wallet.
func SettleCashPayment(tx *gorm.DB, booking *models.Booking) error {
	total := booking.FinalAmount
	_, commission := CommissionSplit(total, ProviderShareRate())

	if err := Credit(tx, booking.ProviderID, total,
		fmt.Sprintf("Cash payment received for booking ID %s", booking.ID)); err != nil {
		return err
	}
	if err := Debit(tx, booking.ProviderID, commission,
		fmt.Sprintf("Commission deducted for booking ID %s", booking.ID)); err != nil {
		return err
	}

	adminID, err := platformAccountID(tx)
	if err != nil {
		return err
	}
	return Credit(tx, adminID, commission,
		fmt.Sprintf("Commission received from provider ID %s for booking ID %s", booking.ProviderID, booking.ID))
}

// RefundBooking credits the full paid amount back to the booking's user.
func RefundBooking(tx *gorm.DB, booking *models.Booking) error {
	return Credit(tx, booking.UserID, booking.FinalAmount, "Refund for cancelled booking")
}

func platformAccountID(tx *gorm.DB) (uuid.UUID, error) {
	var admin models.User
	if err := tx.Where("role = ?", models.RoleAdmin).First(&admin).Error; err != nil {
		return uuid.Nil, fmt.Errorf("platform account lookup failed: %w", err)
	}
	return admin.ID, nil
}
