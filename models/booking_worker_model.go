package models

import (
	"time"

	"github.com/google/uuid"
)

type BookingWorker struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BookingID  uuid.UUID `gorm:"not null;uniqueIndex:idx_booking_worker" json:"booking_id"`
	WorkerID   uuid.UUID `gorm:"not null;uniqueIndex:idx_booking_worker" json:"worker_id"`
	AssignedAt time.Time `gorm:"not null;autoCreateTime" json:"assigned_at"`

	Booking Booking `gorm:"foreignkey:BookingID" json:"-"`
	Worker  Worker  `gorm:"foreignkey:WorkerID" json:"worker,omitempty"`
}
