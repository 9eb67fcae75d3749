package appointment

import (
	"context"

	"github.com/BruksfildServices01/haircut-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/haircut-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/haircut-scheduler/internal/httperr"
	"github.com/BruksfildServices01/haircut-scheduler/internal/models"
)

type UpdateStatusInput struct {
	Requester          domain.Requester
	AppointmentID      uint
	Status             string
	CancellationReason string
}

// UpdateAppointmentStatus is the only path that changes an appointment's
// status. Clients, hairdressers and admins all go through it.
type UpdateAppointmentStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*models.Appointment, error) {

	target, err := domain.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, lookupErr(err, "appointment_not_found", "appointment")
	}

	if !domain.CanAccess(ap, in.Requester) {
		return nil, httperr.Forbidden("forbidden")
	}

	from := ap.Status
	if err := domain.Transition(ap, target, in.CancellationReason); err != nil {
		return nil, err
	}

	// the write only lands if nobody changed the row since GetByID
	if err := uc.repo.UpdateStatus(ctx, ap, domain.Status(from)); err != nil {
		return nil, lookupErr(err, "appointment_not_found", "appointment")
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   &in.Requester.UserID,
		ActorRole: string(in.Requester.Role),
		Action:    audit.ActionAppointmentStatusChanged,
		Entity:    "appointment",
		EntityID:  &ap.ID,
		Metadata: map[string]any{
			"from": from,
			"to":   ap.Status,
		},
	})

	return ap, nil
}
