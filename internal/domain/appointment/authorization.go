package appointment

import "github.com/BruksfildServices01/haircut-scheduler/internal/models"

type Role string

const (
	RoleClient      Role = "client"
	RoleHairdresser Role = "hairdresser"
	RoleAdmin       Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleHairdresser, RoleAdmin:
		return true
	}
	return false
}

// Requester is the authenticated caller of every core operation.
type Requester struct {
	UserID uint
	Role   Role
}

func (r Requester) IsAdmin() bool {
	return r.Role == RoleAdmin
}

// CanAccess reports whether r may read or transition ap. The appointment
// must have its HairdresserProfile loaded.
func CanAccess(ap *models.Appointment, r Requester) bool {
	if r.IsAdmin() {
		return true
	}
	if ap.ClientID == r.UserID {
		return true
	}
	return ap.HairdresserProfile.UserID != 0 && ap.HairdresserProfile.UserID == r.UserID
}
