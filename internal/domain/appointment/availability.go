package appointment

import "github.com/BruksfildServices01/haircut-scheduler/internal/domain/schedule"

type AvailabilityInput struct {
	ProviderID uint
	Date       schedule.Date
}

type Availability struct {
	Date       schedule.Date    `json:"date"`
	ProviderID uint             `json:"hairdresser_profile_id"`
	Slots      []schedule.Clock `json:"slots"`
}
