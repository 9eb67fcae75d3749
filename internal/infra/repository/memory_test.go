package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/haircut-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/haircut-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/haircut-scheduler/internal/httperr"
	"github.com/BruksfildServices01/haircut-scheduler/internal/models"
)

func booking(provider uint, date string, hour, minute int) *models.Appointment {
	d, _ := schedule.ParseDate(date)
	return &models.Appointment{
		ClientID:             1,
		HairdresserProfileID: provider,
		ServiceID:            1,
		AppointmentDate:      d,
		AppointmentTime:      schedule.NewClock(hour, minute),
		Status:               string(domain.StatusPending),
		TotalPrice:           decimal.RequireFromString("40.00"),
	}
}

func TestMemoryBookEnforcesLiveSlot(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	first := booking(1, "2024-06-01", 10, 0)
	require.NoError(t, m.Book(ctx, first))
	assert.Equal(t, uint(1), first.ID)

	err := m.Book(ctx, booking(1, "2024-06-01", 10, 0))
	assert.True(t, httperr.IsBusiness(err, "slot_taken"))

	// another provider, another time or another day are all free
	require.NoError(t, m.Book(ctx, booking(2, "2024-06-01", 10, 0)))
	require.NoError(t, m.Book(ctx, booking(1, "2024-06-01", 10, 30)))
	require.NoError(t, m.Book(ctx, booking(1, "2024-06-02", 10, 0)))

	// cancelling frees the slot
	first.Status = string(domain.StatusCancelled)
	require.NoError(t, m.UpdateStatus(ctx, first, domain.StatusPending))
	require.NoError(t, m.Book(ctx, booking(1, "2024-06-01", 10, 0)))
}

func TestMemoryUpdateStatusComparesPreviousStatus(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	ap := booking(1, "2024-06-01", 10, 0)
	require.NoError(t, m.Book(ctx, ap))

	cancelled := *ap
	cancelled.Status = string(domain.StatusCancelled)
	require.NoError(t, m.UpdateStatus(ctx, &cancelled, domain.StatusPending))

	// a writer that still believes the row is pending loses
	stale := *ap
	stale.Status = string(domain.StatusConfirmed)
	err := m.UpdateStatus(ctx, &stale, domain.StatusPending)
	assert.Equal(t, httperr.KindInvalidTransition, httperr.KindOf(err))

	got, err := m.GetByID(ctx, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), got.Status)

	missing := booking(1, "2024-06-01", 11, 0)
	missing.ID = 99
	assert.ErrorIs(t, m.UpdateStatus(ctx, missing, domain.StatusPending), domain.ErrNotFound)
}

func TestMemoryUpdateStatusKeepsLiveSlotUnique(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	m.PutAppointment(models.Appointment{ID: 1, HairdresserProfileID: 1, AppointmentDate: mustParseDate(t, "2024-06-01"), AppointmentTime: schedule.NewClock(10, 0), Status: string(domain.StatusCancelled)})
	m.PutAppointment(models.Appointment{ID: 2, HairdresserProfileID: 1, AppointmentDate: mustParseDate(t, "2024-06-01"), AppointmentTime: schedule.NewClock(10, 0), Status: string(domain.StatusPending)})

	revived := &models.Appointment{ID: 1, Status: string(domain.StatusPending)}
	err := m.UpdateStatus(ctx, revived, domain.StatusCancelled)
	assert.True(t, httperr.IsBusiness(err, "slot_taken"))

	// moving between live statuses does not collide with itself
	confirmed := &models.Appointment{ID: 2, Status: string(domain.StatusConfirmed)}
	require.NoError(t, m.UpdateStatus(ctx, confirmed, domain.StatusPending))
}

func mustParseDate(t *testing.T, s string) schedule.Date {
	t.Helper()
	d, err := schedule.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestMemoryListOrderAndPaging(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Book(ctx, booking(1, "2024-06-01", 9, 0)))
	require.NoError(t, m.Book(ctx, booking(1, "2024-06-02", 9, 0)))
	require.NoError(t, m.Book(ctx, booking(1, "2024-06-01", 11, 0)))

	list, total, err := m.List(ctx, domain.ListFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, list, 3)
	assert.Equal(t, []uint{2, 3, 1}, []uint{list[0].ID, list[1].ID, list[2].ID})

	page, total, err := m.List(ctx, domain.ListFilter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, page, 1)
	assert.Equal(t, uint(1), page[0].ID)
}

func TestMemoryStats(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	now := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)

	m.PutAppointment(models.Appointment{ID: 1, Status: "completed", TotalPrice: decimal.RequireFromString("150.00"), CreatedAt: now.AddDate(0, -2, 0)})
	m.PutAppointment(models.Appointment{ID: 2, Status: "completed", TotalPrice: decimal.RequireFromString("49.50"), CreatedAt: now})
	m.PutAppointment(models.Appointment{ID: 3, Status: "cancelled", TotalPrice: decimal.RequireFromString("80.00"), CreatedAt: now})

	stats, err := m.Stats(ctx, now.AddDate(0, 0, -30))
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.Total)
	assert.EqualValues(t, 2, stats.CreatedSince)
	assert.EqualValues(t, 2, stats.ByStatus[domain.StatusCompleted])
	assert.Equal(t, "199.50", stats.CompletedTotal.StringFixed(2))
}
