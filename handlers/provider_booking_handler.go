package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/deepak4044/service_marketplace/database"
	"github.com/deepak4044/service_marketplace/middleware"
	"github.com/deepak4044/service_marketplace/models"
	"github.com/deepak4044/service_marketplace/notifications"
	"github.com/deepak4044/service_marketplace/services"
	"github.com/deepak4044/service_marketplace/websocket"
)

func GetProviderBookings(c *fiber.Ctx) error {
	providerID := middleware.UserID(c)

	query := database.DB.
		Preload("Service").
		Preload("Location").
		Where("provider_id = ?", providerID).
		Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		upper := strings.ToUpper(status)
		switch upper {
		case "REQUEST":
			// REQUEST means active bookings awaiting provider confirmation.
			query = query.Where("approved = ? AND booking_status = ?", false, models.BookingStatusActive)
		case models.BookingStatusActive:
			query = query.Where("approved = ? AND booking_status = ?", true, models.BookingStatusActive)
		case models.BookingStatusCompleted, models.BookingStatusCancelled:
			query = query.Where("booking_status = ?", upper)
		default:
			return badRequest(c, "Invalid status provided. Allowed statuses: ACTIVE, COMPLETED, CANCELLED, REQUEST.")
		}
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"status":  true,
		"message": "Provider's bookings fetched successfully.",
		"data":    bookings,
	})
}

func GetProviderBookingDetails(c *fiber.Ctx) error {
	providerID := middleware.UserID(c)
	bookingID := c.Params("bookingId")

	var booking models.Booking
	err := database.DB.
		Preload("User").
		Preload("Service").
		Preload("Location").
		Preload("AssignedWorkers.Worker").
		First(&booking, "id = ? AND provider_id = ?", bookingID, providerID).Error
	if err != nil {
		return fail(c, services.ErrBookingNotFound)
	}

	return c.JSON(fiber.Map{
		"status":  true,
		"message": "Booking details fetched successfully.",
		"data":    booking,
	})
}

func ApproveBooking(c *fiber.Ctx) error {
	providerID := middleware.UserID(c)
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return badRequest(c, "Booking ID is required.")
	}

	var booking models.Booking
	if err := database.DB.Preload("Service").First(&booking, "id = ?", bookingID).Error; err != nil {
		return fail(c, services.ErrBookingNotFound)
	}

	if booking.ProviderID != providerID {
		return fail(c, services.ErrNotYourBooking)
	}

	if err := services.ApproveBooking(&booking); err != nil {
		return fail(c, err)
	}
	if err := database.DB.Save(&booking).Error; err != nil {
		return fail(c, err)
	}

	userMessage := fmt.Sprintf("Your booking for %s has been approved.", booking.Service.ServiceName)

	websocket.EmitToUser(booking.UserID, "booking_approved", fiber.Map{
		"message":   userMessage,
		"bookingId": booking.ID,
	})

	go func() {
		var bookingUser models.User
		if err := database.DB.First(&bookingUser, "id = ?", booking.UserID).Error; err != nil {
			return
		}
		notifications.SendNotificationToUsers([]notifications.PushTarget{{
			User:    &bookingUser,
			Title:   "Booking Approved!",
			Message: userMessage,
			Type:    "BOOKING",
		}})
	}()

	return c.JSON(fiber.Map{
		"status":  true,
		"message": "Booking request accepted successfully",
		"data":    booking,
	})
}

type AssignWorkersRequest struct {
	WorkerIDs []string `json:"workerIds" validate:"required,min=1,dive,uuid"`
}

func AssignWorkersToBooking(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return badRequest(c, "Booking ID is required.")
	}

	var req AssignWorkersRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Worker IDs are required in an array")
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, "Worker IDs are required in an array")
	}

	workerIDs := make([]uuid.UUID, 0, len(req.WorkerIDs))
	for _, raw := range req.WorkerIDs {
		id, _ := uuid.Parse(raw)
		workerIDs = append(workerIDs, id)
	}

	booking, err := assignWorkers(c, bookingID, workerIDs)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"status":  true,
		"message": "Workers assigned successfully",
		"data": fiber.Map{
			"bookingId":         booking.ID,
			"assignedWorkerIds": workerIDs,
		},
	})
}

type AssignSingleWorkerRequest struct {
	WorkerID string `json:"workerId" validate:"required,uuid"`
}

func AssignSingleWorker(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return badRequest(c, "Booking ID is required.")
	}

	var req AssignSingleWorkerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Worker ID is required")
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, "Worker ID is required")
	}

	workerID, _ := uuid.Parse(req.WorkerID)

	booking, err := assignWorkers(c, bookingID, []uuid.UUID{workerID})
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"status":  true,
		"message": "Worker assigned successfully",
		"data": fiber.Map{
			"bookingId": booking.ID,
			"workerId":  workerID,
		},
	})
}

// assignWorkers runs the shared assignment path under one transaction.
func assignWorkers(c *fiber.Ctx, bookingID uuid.UUID, workerIDs []uuid.UUID) (*models.Booking, error) {
	providerID := middleware.UserID(c)

	var booking *models.Booking
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		booking, err = services.AssignWorkers(tx, providerID, bookingID, workerIDs)
		return err
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

func ConfirmCashPayment(c *fiber.Ctx) error {
	providerID := middleware.UserID(c)
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return badRequest(c, "Booking ID is required.")
	}

	var booking models.Booking
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&booking, "id = ? AND provider_id = ?", bookingID, providerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return services.ErrBookingNotFound
			}
			return err
		}

		if booking.PaymentMethod != models.PaymentMethodCash {
			return services.ErrPaymentNotCash
		}
		if booking.PaymentStatus == models.PaymentStatusCompleted {
			return services.ErrPaymentAlreadyCompleted
		}

		if err := services.SettleCashPayment(tx, &booking); err != nil {
			return err
		}

		booking.PaymentStatus = models.PaymentStatusCompleted
		return tx.Save(&booking).Error
	})
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"status":  true,
		"message": "Cash payment processed, wallet updated, commission transferred",
		"data":    booking,
	})
}
