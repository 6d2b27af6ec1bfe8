package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/deepak4044/service_marketplace/database"
	"github.com/deepak4044/service_marketplace/models"
	"github.com/deepak4044/service_marketplace/notifications"
)

// SendServiceDayReminders pushes a reminder to every user with an approved
// booking scheduled for today that has not started yet.
func SendServiceDayReminders() {
	log.Println("Running job: SendServiceDayReminders...")

	today := time.Now().Format("2006-01-02")

	var upcomingBookings []models.Booking
	err := database.DB.
		Preload("User").
		Preload("Service").
		Where("service_date = ? AND booking_status = ? AND working_status = ? AND approved = ?",
			today, models.BookingStatusActive, models.WorkingStatusNotStarted, true).
		Find(&upcomingBookings).Error
	if err != nil {
		log.Printf("Error checking for upcoming bookings: %v", err)
		return
	}

	if len(upcomingBookings) == 0 {
		return
	}

	for _, booking := range upcomingBookings {
		log.Printf("Sending reminder for booking ID: %s", booking.ID)

		bookingUser := booking.User
		notifications.SendNotificationToUsers([]notifications.PushTarget{{
			User:  &bookingUser,
			Title: "Service Reminder",
			Message: fmt.Sprintf("Your %s booking is scheduled today at %s.",
				booking.Service.ServiceName, booking.StartTime),
			Type: "BOOKING",
		}})
	}
}
