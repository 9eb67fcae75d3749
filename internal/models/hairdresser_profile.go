package models

import "time"

type HairdresserProfile struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	Bio          string `gorm:"type:text" json:"bio"`
	City         string `gorm:"size:100;not null" json:"city"`
	Neighborhood string `gorm:"size:100" json:"neighborhood"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
