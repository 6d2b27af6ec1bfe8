package services

import (
	"time"

	"github.com/deepak4044/service_marketplace/models"
)

const (
	ActionStart    = "START"
	ActionComplete = "COMPLETE"
)

// The booking lifecycle is driven exclusively through the functions below so
// every status combination is checked in one place before any field changes.

func ensureOpen(b *models.Booking) error {
	if b.BookingStatus == models.BookingStatusCancelled || b.BookingStatus == models.BookingStatusCompleted {
		return BookingClosedError(b.BookingStatus)
	}
	return nil
}

// ApplyAction drives the START/COMPLETE transitions. On error the booking is
// left untouched.
func ApplyAction(b *models.Booking, action string, now time.Time) error {
	switch action {
	case ActionStart:
		return startBooking(b, now)
	case ActionComplete:
		return completeBooking(b, now)
	default:
		return &Error{Status: 400, Message: "Invalid booking ID or action"}
	}
}

func startBooking(b *models.Booking, now time.Time) error {
	if err := ensureOpen(b); err != nil {
		return err
	}
	if b.WorkingStatus != models.WorkingStatusNotStarted {
		return ErrAlreadyStarted
	}
	if b.WorkerAssignStatus != models.WorkerAssignStatusAssigned {
		return ErrWorkerNotAssigned
	}
	if b.PaymentStatus != models.PaymentStatusCompleted {
		return ErrPaymentIncomplete
	}

	b.WorkingStatus = models.WorkingStatusStarted
	b.StartTimestamp = &now
	return nil
}

func completeBooking(b *models.Booking, now time.Time) error {
	if err := ensureOpen(b); err != nil {
		return err
	}
	if b.WorkingStatus != models.WorkingStatusStarted {
		return ErrNotStarted
	}

	b.WorkingStatus = models.WorkingStatusCompleted
	b.BookingStatus = models.BookingStatusCompleted
	b.CompletedAt = &now
	return nil
}

// CancelBooking marks the booking cancelled and reports whether a wallet
// refund is due. The caller issues the ledger credit in the same transaction;
// PaymentStatus flips to REFUNDED only when a refund actually happens.
func CancelBooking(b *models.Booking) (refundDue bool, err error) {
	if b.BookingStatus == models.BookingStatusCancelled {
		return false, ErrAlreadyCancelled
	}

	refundDue = b.PaymentMethod == models.PaymentMethodWallet && b.PaymentStatus == models.PaymentStatusCompleted

	b.BookingStatus = models.BookingStatusCancelled
	if refundDue {
		b.PaymentStatus = models.PaymentStatusRefunded
	}
	return refundDue, nil
}

// ApproveBooking is the provider confirmation gate.
func ApproveBooking(b *models.Booking) error {
	if err := ensureOpen(b); err != nil {
		return err
	}
	if b.Approved {
		return ErrAlreadyApproved
	}
	b.Approved = true
	return nil
}
