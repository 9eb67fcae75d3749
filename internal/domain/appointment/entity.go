package appointment

import (
	"github.com/BruksfildServices01/haircut-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition moves ap to the target status. The reason is only kept when
// cancelling.
func Transition(ap *models.Appointment, to Status, reason string) error {
	if err := CanTransition(Status(ap.Status), to); err != nil {
		return err
	}

	ap.Status = string(to)
	if to == StatusCancelled && reason != "" {
		ap.CancellationReason = reason
	}
	return nil
}
