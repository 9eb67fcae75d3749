package appointment

import (
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/haircut-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/haircut-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/haircut-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/haircut-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/haircut-scheduler/internal/models"
)

const (
	clientUserID      uint = 10
	otherClientUserID uint = 11
	hairdresserUserID uint = 20
	otherHairdresser  uint = 21
	adminUserID       uint = 1

	providerID      uint = 3
	otherProviderID uint = 4
	serviceID       uint = 7
	foreignService  uint = 8
)

var (
	client      = domain.Requester{UserID: clientUserID, Role: domain.RoleClient}
	otherClient = domain.Requester{UserID: otherClientUserID, Role: domain.RoleClient}
	hairdresser = domain.Requester{UserID: hairdresserUserID, Role: domain.RoleHairdresser}
	admin       = domain.Requester{UserID: adminUserID, Role: domain.RoleAdmin}
)

type fixture struct {
	mem   *repository.Memory
	audit *audit.Dispatcher
	grid  schedule.Grid
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	mem := repository.NewMemory()
	mem.PutUser(models.User{ID: clientUserID, Name: "Alice", Role: "client"})
	mem.PutUser(models.User{ID: otherClientUserID, Name: "Bob", Role: "client"})
	mem.PutUser(models.User{ID: hairdresserUserID, Name: "Chloe", Role: "hairdresser"})
	mem.PutUser(models.User{ID: otherHairdresser, Name: "Dan", Role: "hairdresser"})
	mem.PutProvider(models.HairdresserProfile{ID: providerID, UserID: hairdresserUserID, City: "Lyon"})
	mem.PutProvider(models.HairdresserProfile{ID: otherProviderID, UserID: otherHairdresser, City: "Paris"})
	mem.PutService(models.Service{
		ID:                   serviceID,
		HairdresserProfileID: providerID,
		Name:                 "Coupe femme",
		Price:                decimal.RequireFromString("150"),
		DurationMin:          60,
	})
	mem.PutService(models.Service{
		ID:                   foreignService,
		HairdresserProfileID: otherProviderID,
		Name:                 "Barbe",
		Price:                decimal.RequireFromString("25"),
	})

	return &fixture{
		mem:   mem,
		audit: audit.NewDispatcher(zap.NewNop(), 100),
		grid:  schedule.DefaultGrid(),
	}
}

func (f *fixture) create() *CreateAppointment {
	return NewCreateAppointment(f.mem, f.mem, f.grid, f.audit)
}

func (f *fixture) updateStatus() *UpdateAppointmentStatus {
	return NewUpdateAppointmentStatus(f.mem, f.audit)
}

func bookingInput(date, clock string) CreateAppointmentInput {
	return CreateAppointmentInput{
		Requester:  client,
		ProviderID: providerID,
		ServiceID:  serviceID,
		Date:       date,
		Time:       clock,
	}
}

func mustDate(s string) schedule.Date {
	d, err := schedule.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// seed stores an appointment for the default client and provider.
func (f *fixture) seed(id uint, date string, hour, minute int, status domain.Status) {
	f.mem.PutAppointment(models.Appointment{
		ID:                   id,
		ClientID:             clientUserID,
		HairdresserProfileID: providerID,
		ServiceID:            serviceID,
		AppointmentDate:      mustDate(date),
		AppointmentTime:      schedule.NewClock(hour, minute),
		Status:               string(status),
		TotalPrice:           decimal.RequireFromString("150"),
		PaymentMethod:        "cash",
		PaymentStatus:        "pending",
	})
}
