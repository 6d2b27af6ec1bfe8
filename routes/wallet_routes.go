package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/deepak4044/service_marketplace/handlers"
	"github.com/deepak4044/service_marketplace/middleware"
)

func WalletRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	wallet := api.Group("/wallet", middleware.Protected())
	wallet.Post("/add", handlers.AddToWallet)
	wallet.Get("", handlers.GetWallet)
	wallet.Get("/transactions", handlers.GetWalletTransactions)

	admin := api.Group("/admin/wallet", middleware.Protected(), middleware.AdminRequired())
	admin.Get("/transactions/:userId", handlers.TransactionSummary)
}
