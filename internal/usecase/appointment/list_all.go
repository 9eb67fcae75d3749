package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/haircut-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/haircut-scheduler/internal/dto"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

type ListAllInput struct {
	Status string
	Page   int
	Limit  int
}

type AppointmentPage struct {
	Appointments []dto.AppointmentDTO
	Total        int64
	Page         int
	TotalPages   int
}

// ListAllAppointments is the admin listing. Out of range paging values are
// clamped rather than rejected.
type ListAllAppointments struct {
	repo domain.Repository
}

func NewListAllAppointments(repo domain.Repository) *ListAllAppointments {
	return &ListAllAppointments{repo: repo}
}

func (uc *ListAllAppointments) Execute(
	ctx context.Context,
	in ListAllInput,
) (*AppointmentPage, error) {

	page := in.Page
	if page < 1 {
		page = 1
	}

	limit := in.Limit
	switch {
	case limit < 1:
		limit = DefaultPageLimit
	case limit > MaxPageLimit:
		limit = MaxPageLimit
	}

	f := domain.ListFilter{
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	if in.Status != "" {
		st, err := domain.ParseStatus(in.Status)
		if err != nil {
			return nil, err
		}
		f.Status = &st
	}

	list, total, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	return &AppointmentPage{
		Appointments: dto.FromAppointments(list),
		Total:        total,
		Page:         page,
		TotalPages:   int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}
