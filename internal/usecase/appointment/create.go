package appointment

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/haircut-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/haircut-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/haircut-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/haircut-scheduler/internal/httperr"
	"github.com/BruksfildServices01/haircut-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	Requester domain.Requester

	ProviderID uint
	ServiceID  uint

	Date  string
	Time  string
	Notes string

	PaymentMethod string
	TransactionID string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo    domain.Repository
	catalog domain.Catalog
	grid    schedule.Grid
	audit   *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	catalog domain.Catalog,
	grid schedule.Grid,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:    repo,
		catalog: catalog,
		grid:    grid,
		audit:   audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Input
	// --------------------------------------------------
	date, err := schedule.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.Validation("invalid_date")
	}

	clock, err := schedule.ParseClock(in.Time)
	if err != nil {
		return nil, httperr.Validation("invalid_time")
	}
	if !uc.grid.Contains(clock) {
		return nil, httperr.Validation("time_outside_grid")
	}

	method, err := domain.ParsePaymentMethod(in.PaymentMethod)
	if err != nil {
		return nil, err
	}

	txID := strings.TrimSpace(in.TransactionID)
	if method == domain.PaymentOnline && txID == "" {
		return nil, httperr.Validation("transaction_id_required")
	}

	// --------------------------------------------------
	// 2. Service, then provider
	// --------------------------------------------------
	service, err := uc.catalog.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, lookupErr(err, "service_not_found", "service")
	}

	provider, err := uc.catalog.GetProvider(ctx, in.ProviderID)
	if err != nil {
		return nil, lookupErr(err, "provider_not_found", "provider")
	}

	if service.HairdresserProfileID != provider.ID {
		return nil, httperr.Validation("service_provider_mismatch")
	}

	// --------------------------------------------------
	// 3. Booking (slot check + insert)
	// --------------------------------------------------
	ap := &models.Appointment{
		ClientID:             in.Requester.UserID,
		HairdresserProfileID: provider.ID,
		ServiceID:            service.ID,
		AppointmentDate:      date,
		AppointmentTime:      clock,
		Status:               string(domain.InitialStatus()),
		TotalPrice:           service.Price,
		Notes:                strings.TrimSpace(in.Notes),
		PaymentMethod:        string(method),
		PaymentStatus:        string(domain.InitialPaymentStatus(method)),
	}
	if method == domain.PaymentOnline {
		ap.TransactionID = &txID
	}

	if err := uc.repo.Book(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		ActorID:   &in.Requester.UserID,
		ActorRole: string(in.Requester.Role),
		Action:    audit.ActionAppointmentCreated,
		Entity:    "appointment",
		EntityID:  &ap.ID,
		Metadata: map[string]any{
			"hairdresser_profile_id": ap.HairdresserProfileID,
			"date":                   ap.AppointmentDate.String(),
			"time":                   ap.AppointmentTime.String(),
			"payment_method":         ap.PaymentMethod,
		},
	})

	return uc.repo.GetByID(ctx, ap.ID)
}
