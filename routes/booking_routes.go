package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/deepak4044/service_marketplace/handlers"
	"github.com/deepak4044/service_marketplace/middleware"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	booking := api.Group("/bookings", middleware.Protected())
	booking.Get("", handlers.GetMyBookings)
	booking.Post("/:serviceId", handlers.CreateBooking)
	booking.Get("/:bookingId", handlers.GetBookingDetails)
	booking.Get("/:bookingId/status", handlers.GetBookingStatus)
	booking.Get("/:bookingId/workers", handlers.GetAssignedWorkers)
	booking.Patch("/:bookingId/action", handlers.BookingAction)
	booking.Post("/:bookingId/cancel", handlers.CancelBooking)
}
