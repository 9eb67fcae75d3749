package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Service struct {
	ID                   uint `gorm:"primaryKey" json:"id"`
	HairdresserProfileID uint `gorm:"not null;index" json:"hairdresser_profile_id"`

	Name        string          `gorm:"size:100;not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	DurationMin int             `json:"duration_min"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Active      bool            `gorm:"default:true" json:"active"`

	Category string `gorm:"size:50;default:'autre'" json:"category"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
