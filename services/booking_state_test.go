package services

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/deepak4044/service_marketplace/models"
)

func newBooking() *models.Booking {
	return &models.Booking{
		BookingStatus:      models.BookingStatusActive,
		WorkingStatus:      models.WorkingStatusNotStarted,
		WorkerAssignStatus: models.WorkerAssignStatusAssigned,
		PaymentStatus:      models.PaymentStatusCompleted,
		PaymentMethod:      models.PaymentMethodWallet,
		FinalAmount:        decimal.NewFromInt(100),
	}
}

func TestApplyActionStart(t *testing.T) {
	now := time.Now()

	t.Run("starts an assigned paid booking", func(t *testing.T) {
		b := newBooking()

		if err := ApplyAction(b, ActionStart, now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.WorkingStatus != models.WorkingStatusStarted {
			t.Errorf("WorkingStatus = %s, want STARTED", b.WorkingStatus)
		}
		if b.StartTimestamp == nil || !b.StartTimestamp.Equal(now) {
			t.Errorf("StartTimestamp = %v, want %v", b.StartTimestamp, now)
		}
	})

	t.Run("rejects start without assigned workers and leaves booking untouched", func(t *testing.T) {
		b := newBooking()
		b.WorkerAssignStatus = models.WorkerAssignStatusUnassigned

		err := ApplyAction(b, ActionStart, now)
		if !errors.Is(err, ErrWorkerNotAssigned) {
			t.Fatalf("error = %v, want ErrWorkerNotAssigned", err)
		}
		if b.WorkingStatus != models.WorkingStatusNotStarted {
			t.Errorf("WorkingStatus changed to %s on failed start", b.WorkingStatus)
		}
		if b.StartTimestamp != nil {
			t.Error("StartTimestamp set on failed start")
		}
	})

	t.Run("rejects start with pending payment", func(t *testing.T) {
		b := newBooking()
		b.PaymentStatus = models.PaymentStatusPending

		if err := ApplyAction(b, ActionStart, now); !errors.Is(err, ErrPaymentIncomplete) {
			t.Fatalf("error = %v, want ErrPaymentIncomplete", err)
		}
	})

	t.Run("rejects a second start", func(t *testing.T) {
		b := newBooking()
		b.WorkingStatus = models.WorkingStatusStarted

		if err := ApplyAction(b, ActionStart, now); !errors.Is(err, ErrAlreadyStarted) {
			t.Fatalf("error = %v, want ErrAlreadyStarted", err)
		}
	})

	t.Run("rejects start on a cancelled booking", func(t *testing.T) {
		b := newBooking()
		b.BookingStatus = models.BookingStatusCancelled

		err := ApplyAction(b, ActionStart, now)
		var svcErr *Error
		if !errors.As(err, &svcErr) || svcErr.Status != 400 {
			t.Fatalf("error = %v, want 400 closed-booking error", err)
		}
	})

	t.Run("rejects unknown action", func(t *testing.T) {
		b := newBooking()

		err := ApplyAction(b, "PAUSE", now)
		var svcErr *Error
		if !errors.As(err, &svcErr) || svcErr.Status != 400 {
			t.Fatalf("error = %v, want 400 invalid-action error", err)
		}
	})
}

func TestApplyActionComplete(t *testing.T) {
	now := time.Now()

	t.Run("completes a started booking", func(t *testing.T) {
		b := newBooking()
		b.WorkingStatus = models.WorkingStatusStarted

		if err := ApplyAction(b, ActionComplete, now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.WorkingStatus != models.WorkingStatusCompleted {
			t.Errorf("WorkingStatus = %s, want COMPLETED", b.WorkingStatus)
		}
		if b.BookingStatus != models.BookingStatusCompleted {
			t.Errorf("BookingStatus = %s, want COMPLETED", b.BookingStatus)
		}
		if b.CompletedAt == nil || !b.CompletedAt.Equal(now) {
			t.Errorf("CompletedAt = %v, want %v", b.CompletedAt, now)
		}
	})

	t.Run("rejects complete before start", func(t *testing.T) {
		b := newBooking()

		if err := ApplyAction(b, ActionComplete, now); !errors.Is(err, ErrNotStarted) {
			t.Fatalf("error = %v, want ErrNotStarted", err)
		}
		if b.BookingStatus != models.BookingStatusActive {
			t.Errorf("BookingStatus changed to %s on failed complete", b.BookingStatus)
		}
	})
}

func TestCancelBooking(t *testing.T) {
	t.Run("wallet-paid booking is refunded", func(t *testing.T) {
		b := newBooking()

		refundDue, err := CancelBooking(b)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !refundDue {
			t.Error("refundDue = false for a completed wallet payment")
		}
		if b.BookingStatus != models.BookingStatusCancelled {
			t.Errorf("BookingStatus = %s, want CANCELLED", b.BookingStatus)
		}
		if b.PaymentStatus != models.PaymentStatusRefunded {
			t.Errorf("PaymentStatus = %s, want REFUNDED", b.PaymentStatus)
		}
	})

	t.Run("cash booking cancels without refund", func(t *testing.T) {
		b := newBooking()
		b.PaymentMethod = models.PaymentMethodCash
		b.PaymentStatus = models.PaymentStatusPending

		refundDue, err := CancelBooking(b)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if refundDue {
			t.Error("refundDue = true for an unpaid cash booking")
		}
		if b.PaymentStatus != models.PaymentStatusPending {
			t.Errorf("PaymentStatus = %s, want PENDING unchanged", b.PaymentStatus)
		}
	})

	t.Run("second cancel fails and state is unchanged", func(t *testing.T) {
		b := newBooking()
		if _, err := CancelBooking(b); err != nil {
			t.Fatalf("first cancel: %v", err)
		}

		if _, err := CancelBooking(b); !errors.Is(err, ErrAlreadyCancelled) {
			t.Fatalf("error = %v, want ErrAlreadyCancelled", err)
		}
		if b.BookingStatus != models.BookingStatusCancelled {
			t.Errorf("BookingStatus = %s after double cancel", b.BookingStatus)
		}
	})
}

func TestApproveBooking(t *testing.T) {
	t.Run("approves an open booking once", func(t *testing.T) {
		b := newBooking()

		if err := ApproveBooking(b); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !b.Approved {
			t.Error("Approved = false after approval")
		}

		if err := ApproveBooking(b); !errors.Is(err, ErrAlreadyApproved) {
			t.Fatalf("second approve error = %v, want ErrAlreadyApproved", err)
		}
	})

	t.Run("rejects approve on a cancelled booking", func(t *testing.T) {
		b := newBooking()
		b.BookingStatus = models.BookingStatusCancelled

		err := ApproveBooking(b)
		var svcErr *Error
		if !errors.As(err, &svcErr) || svcErr.Status != 400 {
			t.Fatalf("error = %v, want 400 closed-booking error", err)
		}
	})
}
