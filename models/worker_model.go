package models

import (
	"time"

	"github.com/google/uuid"
)

type Worker struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ProviderID     uuid.UUID `gorm:"not null;index" json:"provider_id"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	Email          string    `gorm:"size:255;not null" json:"email"`
	Phone          *string   `gorm:"size:20" json:"phone"`
	CompanyAddress *string   `gorm:"size:255" json:"company_address"`
	ProfileImage   *string   `gorm:"size:255" json:"profile_image"`

	Provider User `gorm:"foreignkey:ProviderID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
