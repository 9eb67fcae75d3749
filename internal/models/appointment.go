package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/haircut-scheduler/internal/domain/schedule"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint `gorm:"not null;index" json:"client_id"`
	Client   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	HairdresserProfileID uint               `gorm:"not null;index" json:"hairdresser_profile_id"`
	HairdresserProfile   HairdresserProfile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"hairdresser_profile"`

	ServiceID uint    `gorm:"not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service"`

	AppointmentDate schedule.Date  `gorm:"type:date;not null" json:"appointment_date"`
	AppointmentTime schedule.Clock `gorm:"type:time;not null" json:"appointment_time"`

	Status string `gorm:"size:20;not null;default:'pending'" json:"status"`

	// snapshot of Service.Price at booking time
	TotalPrice decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_price"`

	Notes              string `gorm:"type:text" json:"notes"`
	CancellationReason string `gorm:"type:text" json:"cancellation_reason"`

	PaymentMethod string  `gorm:"size:20;not null;default:'cash'" json:"payment_method"`
	PaymentStatus string  `gorm:"size:20;not null;default:'pending'" json:"payment_status"`
	TransactionID *string `gorm:"size:100" json:"transaction_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
