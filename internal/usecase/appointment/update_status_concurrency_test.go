package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/haircut-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/haircut-scheduler/internal/httperr"
	"github.com/BruksfildServices01/haircut-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/haircut-scheduler/internal/models"
)

// interleavingRepo runs beforeWrite once, between the usecase's read and
// its status write.
type interleavingRepo struct {
	*repository.Memory
	beforeWrite func()
}

func (r *interleavingRepo) UpdateStatus(ctx context.Context, ap *models.Appointment, from domain.Status) error {
	if hook := r.beforeWrite; hook != nil {
		r.beforeWrite = nil
		hook()
	}
	return r.Memory.UpdateStatus(ctx, ap, from)
}

func TestUpdateStatusStaleConfirmDoesNotReviveCancelledSlot(t *testing.T) {
	f := newFixture(t)
	f.seed(1, "2024-06-01", 10, 0, domain.StatusPending)
	ctx := context.Background()

	repo := &interleavingRepo{Memory: f.mem}
	repo.beforeWrite = func() {
		// the client cancels and someone else takes the freed slot
		_, err := f.updateStatus().Execute(ctx, UpdateStatusInput{
			Requester:     client,
			AppointmentID: 1,
			Status:        "cancelled",
		})
		require.NoError(t, err)

		in := bookingInput("2024-06-01", "10:00")
		in.Requester = otherClient
		_, err = f.create().Execute(ctx, in)
		require.NoError(t, err)
	}

	_, err := NewUpdateAppointmentStatus(repo, f.audit).Execute(ctx, UpdateStatusInput{
		Requester:     hairdresser,
		AppointmentID: 1,
		Status:        "confirmed",
	})
	require.Error(t, err)
	assert.Equal(t, httperr.KindInvalidTransition, httperr.KindOf(err))
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))

	stored, err := f.mem.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), stored.Status)

	times, err := f.mem.ListBookedTimes(ctx, providerID, mustDate("2024-06-01"))
	require.NoError(t, err)
	assert.Len(t, times, 1)
}

func TestUpdateStatusRowDeletedMidway(t *testing.T) {
	f := newFixture(t)
	f.seed(1, "2024-06-01", 10, 0, domain.StatusPending)
	ctx := context.Background()

	repo := &interleavingRepo{Memory: f.mem}
	repo.beforeWrite = func() {
		require.NoError(t, f.mem.Delete(ctx, 1))
	}

	_, err := NewUpdateAppointmentStatus(repo, f.audit).Execute(ctx, UpdateStatusInput{
		Requester:     hairdresser,
		AppointmentID: 1,
		Status:        "confirmed",
	})
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}
