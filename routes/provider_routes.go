package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/deepak4044/service_marketplace/handlers"
	"github.com/deepak4044/service_marketplace/middleware"
)

func ProviderRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	providerBooking := api.Group("/provider/bookings", middleware.Protected(), middleware.ProviderRequired())
	providerBooking.Get("", handlers.GetProviderBookings)
	providerBooking.Get("/:bookingId", handlers.GetProviderBookingDetails)
	providerBooking.Post("/:bookingId/approve", handlers.ApproveBooking)
	providerBooking.Post("/:bookingId/assign-workers", handlers.AssignWorkersToBooking)
	providerBooking.Post("/:bookingId/assign-worker", handlers.AssignSingleWorker)
	providerBooking.Post("/:bookingId/confirm-cash-payment", handlers.ConfirmCashPayment)

	workers := api.Group("/provider/workers", middleware.Protected(), middleware.ProviderRequired())
	workers.Post("", handlers.AddWorker)
	workers.Get("", handlers.GetMyWorkers)
	workers.Put("/:workerId", handlers.UpdateWorker)
	workers.Delete("/:workerId", handlers.DeleteWorker)
}
