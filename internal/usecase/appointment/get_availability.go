package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/haircut-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/haircut-scheduler/internal/domain/schedule"
)

// GetAvailability computes the free slots of a provider on a date. It
// reads fresh data on every call and has no side effects.
type GetAvailability struct {
	repo    domain.Repository
	catalog domain.Catalog
	grid    schedule.Grid
}

func NewGetAvailability(
	repo domain.Repository,
	catalog domain.Catalog,
	grid schedule.Grid,
) *GetAvailability {
	return &GetAvailability{
		repo:    repo,
		catalog: catalog,
		grid:    grid,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*domain.Availability, error) {

	if _, err := uc.catalog.GetProvider(ctx, in.ProviderID); err != nil {
		return nil, lookupErr(err, "provider_not_found", "provider")
	}

	booked, err := uc.repo.ListBookedTimes(ctx, in.ProviderID, in.Date)
	if err != nil {
		return nil, err
	}

	return &domain.Availability{
		Date:       in.Date,
		ProviderID: in.ProviderID,
		Slots:      uc.grid.Available(booked),
	}, nil
}
