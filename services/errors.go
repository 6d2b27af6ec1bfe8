package services

import (
	"fmt"
	"net/http"
	"strings"
)

// Error is a domain failure that already knows its HTTP status. Handlers map
// anything else to a 500.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	ErrServiceNotFound  = &Error{http.StatusNotFound, "Service not found"}
	ErrLocationNotFound = &Error{http.StatusNotFound, "Location not found"}
	ErrBookingNotFound  = &Error{http.StatusNotFound, "Booking not found"}
	ErrWalletNotFound   = &Error{http.StatusNotFound, "Wallet not found"}

	ErrDuplicateBooking = &Error{http.StatusBadRequest, "You already have an active booking for this service."}

	ErrInsufficientFunds = &Error{http.StatusBadRequest, "Insufficient wallet balance"}

	ErrPromoAlreadyRedeemed = &Error{http.StatusBadRequest, "You have already used this promo code."}
	ErrPromoNotFound        = &Error{http.StatusNotFound, "Promo offer not found"}
	ErrPromoExpired         = &Error{http.StatusBadRequest, "Promo offer has expired"}

	ErrAlreadyStarted    = &Error{http.StatusBadRequest, "Booking already started"}
	ErrNotStarted        = &Error{http.StatusBadRequest, "Booking not started"}
	ErrWorkerNotAssigned = &Error{http.StatusBadRequest, "Worker not yet assigned"}
	ErrPaymentIncomplete = &Error{http.StatusBadRequest, "Payment not completed"}
	ErrAlreadyCancelled  = &Error{http.StatusBadRequest, "Booking is already cancelled."}
	ErrAlreadyApproved   = &Error{http.StatusBadRequest, "Booking is already approved"}

	ErrNotYourBooking = &Error{http.StatusForbidden, "You are not authorized to act on this booking"}

	ErrInvalidWorker         = &Error{http.StatusBadRequest, "Some workers are invalid or do not belong to the provider"}
	ErrWorkerAlreadyAssigned = &Error{http.StatusBadRequest, "Worker already assigned to this booking"}

	ErrPaymentNotCash          = &Error{http.StatusBadRequest, "Payment method is not cash"}
	ErrPaymentAlreadyCompleted = &Error{http.StatusBadRequest, "Payment already completed"}
)

// BookingClosedError reports an action attempted against a terminal booking.
func BookingClosedError(bookingStatus string) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf("Booking is %s. Action not allowed.", strings.ToLower(bookingStatus)),
	}
}

// CapacityError reports a worker-assignment request exceeding remaining slots.
func CapacityError(remaining int, alreadyAssigned int) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf("Only %d worker(s) can be assigned. %d already assigned.", remaining, alreadyAssigned),
	}
}
