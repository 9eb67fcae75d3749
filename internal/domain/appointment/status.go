package appointment

import "github.com/BruksfildServices01/haircut-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// transitions lists every legal move. completed and cancelled are terminal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// ===============================
// Validations
// ===============================

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return st, nil
	}
	return "", httperr.Validation("invalid_status")
}

// IsLive reports whether the status occupies its slot.
func (s Status) IsLive() bool {
	return s == StatusPending || s == StatusConfirmed
}

func CanTransition(from, to Status) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.InvalidTransition("invalid_transition")
}

func InitialStatus() Status {
	return StatusPending
}

// LiveStatuses matches the predicate of idx_appointments_live_slot.
func LiveStatuses() []string {
	return []string{string(StatusPending), string(StatusConfirmed)}
}
