package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	BookingStatusActive    = "ACTIVE"
	BookingStatusCompleted = "COMPLETED"
	BookingStatusCancelled = "CANCELLED"

	WorkingStatusNotStarted = "NOT_STARTED"
	WorkingStatusStarted    = "STARTED"
	WorkingStatusCompleted  = "COMPLETED"

	WorkerAssignStatusUnassigned = "UNASSIGNED"
	WorkerAssignStatusAssigned   = "ASSIGNED"

	PaymentStatusPending   = "PENDING"
	PaymentStatusCompleted = "COMPLETED"
	PaymentStatusRefunded  = "REFUNDED"

	PaymentMethodWallet = "WALLET"
	PaymentMethodCash   = "CASH"
)

type Booking struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID  `gorm:"not null;index" json:"user_id"`
	ProviderID uuid.UUID  `gorm:"not null;index" json:"provider_id"`
	ServiceID  uuid.UUID  `gorm:"not null" json:"service_id"`
	LocationID uuid.UUID  `gorm:"not null" json:"location_id"`
	OfferID    *uuid.UUID `json:"offer_id"`

	ServiceDate    time.Time `gorm:"type:date;not null" json:"service_date"`
	StartTime      string    `gorm:"size:8;not null" json:"start_time"`
	NumberOfWorker int       `gorm:"not null" json:"number_of_worker"`
	WorkHours      int       `gorm:"not null" json:"work_hours"`

	Amount         decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	DiscountAmount decimal.Decimal `gorm:"type:numeric(10,2);default:0" json:"discount_amount"`
	TaxesAndFees   decimal.Decimal `gorm:"type:numeric(10,2);default:0" json:"taxes_and_fees"`
	FinalAmount    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"final_amount"`

	PaymentMethod      string `gorm:"size:10;not null" json:"payment_method"`
	PaymentStatus      string `gorm:"size:20;not null;default:'PENDING'" json:"payment_status"`
	BookingStatus      string `gorm:"size:20;not null;default:'ACTIVE'" json:"booking_status"`
	WorkingStatus      string `gorm:"size:20;not null;default:'NOT_STARTED'" json:"working_status"`
	WorkerAssignStatus string `gorm:"size:20;not null;default:'UNASSIGNED'" json:"worker_assign_status"`
	Approved           bool   `gorm:"default:false" json:"approved"`

	StartTimestamp *time.Time `json:"start_timestamp"`
	CompletedAt    *time.Time `json:"completed_at"`

	User            User               `gorm:"foreignkey:UserID" json:"user,omitempty"`
	Provider        User               `gorm:"foreignkey:ProviderID" json:"-"`
	Service         SubCategoryService `gorm:"foreignkey:ServiceID" json:"service,omitempty"`
	Location        UserLocation       `gorm:"foreignkey:LocationID" json:"location,omitempty"`
	AssignedWorkers []BookingWorker    `gorm:"foreignkey:BookingID" json:"assigned_workers,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
