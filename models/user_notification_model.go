package models

import (
	"time"

	"github.com/google/uuid"
)

type UserNotification struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"not null;index" json:"user_id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Message   string    `gorm:"type:text" json:"message"`
	Type      string    `gorm:"size:30" json:"type"`
	Converted bool      `gorm:"default:false" json:"converted"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`

	CreatedAt time.Time `json:"created_at"`
}
