package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/deepak4044/service_marketplace/models"
)

// AssignWorkers attaches workers to a booking. Single and bulk assignment both
// go through here so capacity and ownership rules cannot diverge. The booking
// row is locked for the whole count-then-insert window, and the batch insert
// is all-or-nothing under the caller's transaction.
func AssignWorkers(tx *gorm.DB, providerID, bookingID uuid.UUID, workerIDs []uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, "id = ?", bookingID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookingNotFound
	} else if err != nil {
		return nil, err
	}

	if booking.ProviderID != providerID {
		return nil, ErrNotYourBooking
	}
	if err := ensureOpen(&booking); err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]bool, len(workerIDs))
	for _, id := range workerIDs {
		if seen[id] {
			return nil, ErrWorkerAlreadyAssigned
		}
		seen[id] = true
	}

	var assignedCount int64
	if err := tx.Model(&models.BookingWorker{}).Where("booking_id = ?", booking.ID).Count(&assignedCount).Error; err != nil {
		return nil, err
	}

	remaining := booking.NumberOfWorker - int(assignedCount)
	if len(workerIDs) > remaining {
		return nil, CapacityError(remaining, int(assignedCount))
	}

	var duplicates int64
	if err := tx.Model(&models.BookingWorker{}).
		Where("booking_id = ? AND worker_id IN ?", booking.ID, workerIDs).
		Count(&duplicates).Error; err != nil {
		return nil, err
	}
	if duplicates > 0 {
		return nil, ErrWorkerAlreadyAssigned
	}

	var validWorkers int64
	if err := tx.Model(&models.Worker{}).
		Where("id IN ? AND provider_id = ?", workerIDs, booking.ProviderID).
		Count(&validWorkers).Error; err != nil {
		return nil, err
	}
	if int(validWorkers) != len(workerIDs) {
		return nil, ErrInvalidWorker
	}

	rows := make([]models.BookingWorker, 0, len(workerIDs))
	for _, workerID := range workerIDs {
		rows = append(rows, models.BookingWorker{BookingID: booking.ID, WorkerID: workerID})
	}
	if err := tx.Create(&rows).Error; err != nil {
		return nil, err
	}

	if int(assignedCount)+len(workerIDs) == booking.NumberOfWorker {
		booking.WorkerAssignStatus = models.WorkerAssignStatusAssigned
		if err := tx.Save(&booking).Error; err != nil {
			return nil, err
		}
	}

	return &booking, nil
}
