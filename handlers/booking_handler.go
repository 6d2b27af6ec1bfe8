package handlers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/deepak4044/service_marketplace/database"
	"github.com/deepak4044/service_marketplace/middleware"
	"github.com/deepak4044/service_marketplace/models"
	"github.com/deepak4044/service_marketplace/notifications"
	"github.com/deepak4044/service_marketplace/services"
)

type CreateBookingRequest struct {
	ServiceDate    string `json:"serviceDate" validate:"required"`
	StartTime      string `json:"startTime" validate:"required"`
	NumberOfWorker int    `json:"numberOfWorker" validate:"required,min=1"`
	WorkHours      int    `json:"workHours" validate:"required,min=1"`
	LocationID     string `json:"locationId" validate:"required,uuid"`
	OfferID        string `json:"offerId" validate:"omitempty,uuid"`
	PaymentMethod  string `json:"paymentMethod" validate:"required,oneof=WALLET CASH"`
	NotificationID string `json:"notificationId" validate:"omitempty,uuid"`
}

var serviceDateLayouts = []string{"2006-01-02", "1/2/2006"}
var startTimeLayouts = []string{"15:04", "03:04 PM"}

func parseServiceDate(value string) (time.Time, error) {
	for _, layout := range serviceDateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid service date format")
}

func parseStartTime(value string) (string, error) {
	for _, layout := range startTimeLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.Format("15:04:05"), nil
		}
	}
	return "", fmt.Errorf("invalid start time format")
}

func CreateBooking(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	serviceID, err := uuid.Parse(c.Params("serviceId"))
	if err != nil {
		return badRequest(c, "Service ID is required")
	}

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	serviceDate, err := parseServiceDate(req.ServiceDate)
	if err != nil {
		return badRequest(c, "Invalid service date format")
	}
	startTime, err := parseStartTime(req.StartTime)
	if err != nil {
		return badRequest(c, "Invalid start time format")
	}

	var service models.SubCategoryService
	if err := database.DB.First(&service, "id = ?", serviceID).Error; err != nil {
		return fail(c, services.ErrServiceNotFound)
	}
	var location models.UserLocation
	if err := database.DB.Where("id = ? AND user_id = ?", req.LocationID, userID).First(&location).Error; err != nil {
		return fail(c, services.ErrLocationNotFound)
	}

	var activeCount int64
	err = database.DB.Model(&models.Booking{}).
		Where("user_id = ? AND service_id = ? AND service_date = ? AND booking_status NOT IN ?",
			userID, serviceID, serviceDate,
			[]string{models.BookingStatusCompleted, models.BookingStatusCancelled}).
		Count(&activeCount).Error
	if err != nil {
		return fail(c, err)
	}
	if activeCount > 0 {
		return fail(c, services.ErrDuplicateBooking)
	}

	var booking models.Booking
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		discount := decimal.Zero
		var offer *models.PromoOffer
		if req.OfferID != "" {
			offerID, _ := uuid.Parse(req.OfferID)
			base := service.ServicePrice.
				Mul(decimal.NewFromInt(int64(req.NumberOfWorker))).
				Mul(decimal.NewFromInt(int64(req.WorkHours)))

			discount, offer, err = services.ReservePromo(tx, userID, offerID, base, time.Now())
			if err != nil {
				return err
			}
		}

		quote := services.BuildQuote(service.ServicePrice, req.NumberOfWorker, req.WorkHours, discount, services.TaxRate())

		paymentStatus := models.PaymentStatusPending
		if req.PaymentMethod == models.PaymentMethodWallet {
			if err := services.PayBookingWithWallet(tx, userID, service.ProviderID, quote.FinalAmount); err != nil {
				return err
			}
			paymentStatus = models.PaymentStatusCompleted
		}

		booking = models.Booking{
			UserID:             userID,
			ProviderID:         service.ProviderID,
			ServiceID:          service.ID,
			LocationID:         location.ID,
			ServiceDate:        serviceDate,
			StartTime:          startTime,
			NumberOfWorker:     req.NumberOfWorker,
			WorkHours:          req.WorkHours,
			Amount:             service.ServicePrice,
			DiscountAmount:     quote.DiscountAmount,
			TaxesAndFees:       quote.TaxesAndFees,
			FinalAmount:        quote.FinalAmount,
			PaymentMethod:      req.PaymentMethod,
			PaymentStatus:      paymentStatus,
			BookingStatus:      models.BookingStatusActive,
			WorkingStatus:      models.WorkingStatusNotStarted,
			WorkerAssignStatus: models.WorkerAssignStatusUnassigned,
		}
		if offer != nil {
			booking.OfferID = &offer.ID
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		if offer != nil {
			redemption := models.PromoRedemption{
				UserID:         userID,
				PromoOfferID:   offer.ID,
				BookingID:      booking.ID,
				DiscountAmount: quote.DiscountAmount,
			}
			if err := tx.Create(&redemption).Error; err != nil {
				return err
			}
		}

		if req.NotificationID != "" {
			if err := tx.Model(&models.UserNotification{}).
				Where("id = ? AND user_id = ?", req.NotificationID, userID).
				Update("converted", true).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return fail(c, err)
	}

	go notifyBookingCreated(booking.ID, userID, service.ProviderID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  true,
		"message": "Booking created successfully",
		"data":    booking,
	})
}

func notifyBookingCreated(bookingID, userID, providerID uuid.UUID) {
	var currentUser, providerUser, adminUser models.User
	if err := database.DB.First(&currentUser, "id = ?", userID).Error; err != nil {
		return
	}
	database.DB.First(&providerUser, "id = ?", providerID)
	database.DB.Where("role = ?", models.RoleAdmin).First(&adminUser)

	notifications.SendNotificationToUsers([]notifications.PushTarget{
		{
			User:    &currentUser,
			Title:   "Booking Created!",
			Message: fmt.Sprintf("Your Booking has been successfully created. Booking ID: %s", bookingID),
			Type:    "BOOKING",
		},
		{
			User:    &adminUser,
			Title:   "New Booking Received!",
			Message: fmt.Sprintf("A new booking has been created by %s.", currentUser.Name),
			Type:    "BOOKING",
		},
		{
			User:    &providerUser,
			Title:   "New Booking Received!",
			Message: fmt.Sprintf("A new booking has been created by %s.", currentUser.Name),
			Type:    "BOOKING",
		},
	})
}

type BookingActionRequest struct {
	Action string `json:"action" validate:"required,oneof=START COMPLETE"`
}

func BookingAction(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return badRequest(c, "Invalid booking ID or action")
	}

	var req BookingActionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid booking ID or action")
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, "Invalid booking ID or action")
	}

	var booking models.Booking
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, "id = ?", bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return services.ErrBookingNotFound
			}
			return err
		}
		if err := services.ApplyAction(&booking, req.Action, time.Now()); err != nil {
			return err
		}
		return tx.Save(&booking).Error
	})
	if err != nil {
		return fail(c, err)
	}

	verb := "started"
	if req.Action == services.ActionComplete {
		verb = "completed"
	}
	return c.JSON(fiber.Map{
		"status":  true,
		"message": fmt.Sprintf("Booking %s successfully", verb),
	})
}

func CancelBooking(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return badRequest(c, "Booking ID is required.")
	}

	var booking models.Booking
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&booking, "id = ? AND user_id = ?", bookingID, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return services.ErrBookingNotFound
			}
			return err
		}

		refundDue, err := services.CancelBooking(&booking)
		if err != nil {
			return err
		}
		if refundDue {
			if err := services.RefundBooking(tx, &booking); err != nil {
				return err
			}
		}
		return tx.Save(&booking).Error
	})
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"status":  true,
		"message": "Booking cancelled successfully.",
	})
}

func GetMyBookings(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	query := database.DB.Preload("Service").Where("user_id = ?", userID).Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		upper := strings.ToUpper(status)
		switch upper {
		case models.BookingStatusActive, models.BookingStatusCompleted, models.BookingStatusCancelled:
			query = query.Where("booking_status = ?", upper)
		default:
			return badRequest(c, "Invalid status provided. Allowed statuses: ACTIVE, COMPLETED, CANCELLED.")
		}
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"status":  true,
		"message": "Bookings fetched successfully.",
		"data":    bookings,
	})
}

func GetBookingDetails(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	bookingID := c.Params("bookingId")

	var booking models.Booking
	err := database.DB.
		Preload("Service.Provider").
		Preload("Location").
		Preload("AssignedWorkers.Worker").
		First(&booking, "id = ? AND user_id = ?", bookingID, userID).Error
	if err != nil {
		return fail(c, services.ErrBookingNotFound)
	}

	return c.JSON(fiber.Map{
		"status":  true,
		"message": "Booking details fetched successfully.",
		"data":    booking,
	})
}

func GetBookingStatus(c *fiber.Ctx) error {
	bookingID := c.Params("bookingId")

	var booking models.Booking
	if err := database.DB.First(&booking, "id = ?", bookingID).Error; err != nil {
		return fail(c, services.ErrBookingNotFound)
	}

	return c.JSON(fiber.Map{
		"status": true,
		"data": fiber.Map{
			"bookingConfirmed": true,
			"workerAssigned":   booking.WorkerAssignStatus == models.WorkerAssignStatusAssigned,
			"amountPaid":       booking.PaymentStatus == models.PaymentStatusCompleted,
			"serviceCompleted": booking.BookingStatus == models.BookingStatusCompleted,
		},
	})
}

func GetAssignedWorkers(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return badRequest(c, "Booking ID is required")
	}

	var assigned []models.BookingWorker
	if err := database.DB.
		Preload("Worker").
		Where("booking_id = ?", bookingID).
		Order("assigned_at DESC").
		Find(&assigned).Error; err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"status":  true,
		"message": "Assigned workers fetched successfully",
		"data":    assigned,
	})
}
