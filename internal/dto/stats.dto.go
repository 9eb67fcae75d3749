package dto

type AppointmentStatsDTO struct {
	TotalAppointments  int64            `json:"total_appointments"`
	RecentAppointments int64            `json:"recent_appointments"`
	ByStatus           map[string]int64 `json:"by_status"`
	Revenue            string           `json:"revenue"`
}

type SlotsDTO struct {
	Date                 string   `json:"date"`
	HairdresserProfileID uint     `json:"hairdresser_profile_id"`
	Slots                []string `json:"slots"`
}
