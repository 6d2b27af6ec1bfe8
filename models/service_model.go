package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SubCategoryService struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ProviderID         uuid.UUID       `gorm:"not null;index" json:"provider_id"`
	ServiceName        string          `gorm:"size:255;not null" json:"service_name"`
	ServiceDescription *string         `gorm:"type:text" json:"service_description"`
	ServicePrice       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"service_price"`
	ServiceImages      *string         `gorm:"size:255" json:"service_images"`
	IsActive           bool            `gorm:"default:true" json:"is_active"`

	Provider User `gorm:"foreignkey:ProviderID" json:"provider,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
