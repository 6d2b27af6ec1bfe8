package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser     = "User"
	RoleProvider = "Provider"
	RoleAdmin    = "Admin"
)

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	Email          string    `gorm:"size:255;not null;unique" json:"email"`
	Password       string    `gorm:"not null" json:"-"`
	Role           string    `gorm:"size:20;not null;default:'User'" json:"role"`
	Phone          *string   `gorm:"size:20" json:"phone"`
	CompanyAddress *string   `gorm:"size:255" json:"company_address"`
	ProfileImage   *string   `gorm:"size:255" json:"profile_image"`
	DeviceToken    *string   `gorm:"size:255" json:"-"`
	IsActive       bool      `gorm:"default:true" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
