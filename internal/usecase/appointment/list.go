package appointment

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/BruksfildServices01/haircut-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/haircut-scheduler/internal/dto"
	"github.com/BruksfildServices01/haircut-scheduler/internal/httperr"
)

// ListAppointments returns the requester's own view: a client's bookings,
// a hairdresser's schedule, or everything for an admin.
type ListAppointments struct {
	repo    domain.Repository
	catalog domain.Catalog
}

func NewListAppointments(
	repo domain.Repository,
	catalog domain.Catalog,
) *ListAppointments {
	return &ListAppointments{
		repo:    repo,
		catalog: catalog,
	}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	requester domain.Requester,
) ([]dto.AppointmentDTO, error) {

	var f domain.ListFilter

	switch requester.Role {
	case domain.RoleClient:
		f.ClientID = &requester.UserID

	case domain.RoleHairdresser:
		profile, err := uc.catalog.GetProviderByUserID(ctx, requester.UserID)
		if errors.Is(err, domain.ErrNotFound) {
			return []dto.AppointmentDTO{}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("load provider for user %d: %w", requester.UserID, err)
		}
		f.ProviderID = &profile.ID

	case domain.RoleAdmin:

	default:
		return nil, httperr.Forbidden("forbidden")
	}

	list, _, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	return dto.FromAppointments(list), nil
}
