package appointment

import (
	"context"

	"github.com/BruksfildServices01/haircut-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/haircut-scheduler/internal/domain/appointment"
)

// DeleteAppointment removes a row in any status. It is admin only and
// skips the status machine.
type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	requester domain.Requester,
	id uint,
) error {

	if err := uc.repo.Delete(ctx, id); err != nil {
		return lookupErr(err, "appointment_not_found", "appointment")
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   &requester.UserID,
		ActorRole: string(requester.Role),
		Action:    audit.ActionAppointmentDeleted,
		Entity:    "appointment",
		EntityID:  &id,
	})

	return nil
}
