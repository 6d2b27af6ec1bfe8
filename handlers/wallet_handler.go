package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/deepak4044/service_marketplace/database"
	"github.com/deepak4044/service_marketplace/middleware"
	"github.com/deepak4044/service_marketplace/models"
	"github.com/deepak4044/service_marketplace/payments"
	"github.com/deepak4044/service_marketplace/services"
)

type AddToWalletRequest struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Token       string  `json:"token" validate:"required"`
	Description string  `json:"description"`
}

func AddToWallet(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req AddToWalletRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, "Invalid amount")
	}

	amount := decimal.NewFromFloat(req.Amount).Round(2)

	charge, err := payments.ChargeAdminStripeAccount(amount, req.Token)
	if err != nil {
		log.Printf("🔥 Stripe charge failed for user %s: %v", userID, err)
		return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
			"status":  false,
			"message": "Stripe charge failed",
			"error":   err.Error(),
		})
	}

	description := req.Description
	if description == "" {
		description = "Wallet recharge via Stripe"
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		return services.Credit(tx, userID, amount, description)
	})
	if err != nil {
		return fail(c, err)
	}

	var wallet models.Wallet
	if err := database.DB.Where("user_id = ?", userID).First(&wallet).Error; err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"status":          true,
		"message":         "Wallet recharged successfully",
		"balance":         wallet.Balance,
		"paymentIntentId": charge.ID,
	})
}

func GetWallet(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var wallet models.Wallet
	if err := database.DB.Preload("User").Where("user_id = ?", userID).First(&wallet).Error; err != nil {
		return fail(c, services.ErrWalletNotFound)
	}

	return c.JSON(fiber.Map{
		"status": true,
		"wallet": wallet,
	})
}

func GetWalletTransactions(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var transactions []models.WalletTransaction
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&transactions).Error; err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"status":       true,
		"message":      "Latest wallet transactions fetched successfully",
		"transactions": transactions,
	})
}

// TransactionSummary is the admin view of any user's ledger history.
func TransactionSummary(c *fiber.Ctx) error {
	targetID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return badRequest(c, "User ID is required.")
	}

	var transactions []models.WalletTransaction
	if err := database.DB.
		Preload("User").
		Where("user_id = ?", targetID).
		Order("created_at DESC").
		Find(&transactions).Error; err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"status":       true,
		"message":      "Transactions summary fetched successfully",
		"transactions": transactions,
	})
}
