package dto

import (
	"time"

	"github.com/BruksfildServices01/haircut-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/haircut-scheduler/internal/models"
)

type UserSummaryDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ProviderUserDTO leaves out the hairdresser's email.
type ProviderUserDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type ProviderSummaryDTO struct {
	ID           uint            `json:"id"`
	City         string          `json:"city"`
	Neighborhood string          `json:"neighborhood"`
	User         ProviderUserDTO `json:"user"`
}

type ServiceSummaryDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	DurationMin int    `json:"duration_min"`
	Category    string `json:"category"`
}

// AppointmentDTO is the enriched view returned by every appointment
// endpoint. Money is rendered with two decimals.
type AppointmentDTO struct {
	ID                   uint           `json:"id"`
	ClientID             uint           `json:"client_id"`
	HairdresserProfileID uint           `json:"hairdresser_profile_id"`
	ServiceID            uint           `json:"service_id"`
	AppointmentDate      schedule.Date  `json:"appointment_date"`
	AppointmentTime      schedule.Clock `json:"appointment_time"`
	Status               string         `json:"status"`
	TotalPrice           string         `json:"total_price"`
	Notes                string         `json:"notes,omitempty"`
	CancellationReason   string         `json:"cancellation_reason,omitempty"`
	PaymentMethod        string         `json:"payment_method"`
	PaymentStatus        string         `json:"payment_status"`
	TransactionID        *string        `json:"transaction_id,omitempty"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`

	Client             UserSummaryDTO     `json:"client"`
	HairdresserProfile ProviderSummaryDTO `json:"hairdresser_profile"`
	Service            ServiceSummaryDTO  `json:"service"`
}

func userSummary(u models.User) UserSummaryDTO {
	return UserSummaryDTO{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
	}
}

func FromAppointment(ap *models.Appointment) AppointmentDTO {
	return AppointmentDTO{
		ID:                   ap.ID,
		ClientID:             ap.ClientID,
		HairdresserProfileID: ap.HairdresserProfileID,
		ServiceID:            ap.ServiceID,
		AppointmentDate:      ap.AppointmentDate,
		AppointmentTime:      ap.AppointmentTime,
		Status:               ap.Status,
		TotalPrice:           ap.TotalPrice.StringFixed(2),
		Notes:                ap.Notes,
		CancellationReason:   ap.CancellationReason,
		PaymentMethod:        ap.PaymentMethod,
		PaymentStatus:        ap.PaymentStatus,
		TransactionID:        ap.TransactionID,
		CreatedAt:            ap.CreatedAt,
		UpdatedAt:            ap.UpdatedAt,

		Client: userSummary(ap.Client),
		HairdresserProfile: ProviderSummaryDTO{
			ID:           ap.HairdresserProfile.ID,
			City:         ap.HairdresserProfile.City,
			Neighborhood: ap.HairdresserProfile.Neighborhood,
			User: ProviderUserDTO{
				ID:    ap.HairdresserProfile.User.ID,
				Name:  ap.HairdresserProfile.User.Name,
				Phone: ap.HairdresserProfile.User.Phone,
			},
		},
		Service: ServiceSummaryDTO{
			ID:          ap.Service.ID,
			Name:        ap.Service.Name,
			Price:       ap.Service.Price.StringFixed(2),
			DurationMin: ap.Service.DurationMin,
			Category:    ap.Service.Category,
		},
	}
}

func FromAppointments(list []models.Appointment) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(list))
	for i := range list {
		out = append(out, FromAppointment(&list[i]))
	}
	return out
}
