package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/haircut-scheduler/internal/httperr"
	"github.com/BruksfildServices01/haircut-scheduler/internal/models"
)

var allStatuses = []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

func TestCanTransitionTable(t *testing.T) {
	legal := map[[2]Status]bool{
		{StatusPending, StatusConfirmed}:   true,
		{StatusPending, StatusCancelled}:   true,
		{StatusConfirmed, StatusCompleted}: true,
		{StatusConfirmed, StatusCancelled}: true,
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			err := CanTransition(from, to)
			if legal[[2]Status{from, to}] {
				assert.NoError(t, err, "%s -> %s", from, to)
				continue
			}
			assert.Equal(t, httperr.KindInvalidTransition, httperr.KindOf(err), "%s -> %s", from, to)
		}
	}
}

func TestParseStatus(t *testing.T) {
	st, err := ParseStatus("confirmed")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, st)

	_, err = ParseStatus("archived")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
	assert.Equal(t, httperr.KindValidation, httperr.KindOf(err))
}

func TestIsLive(t *testing.T) {
	assert.True(t, StatusPending.IsLive())
	assert.True(t, StatusConfirmed.IsLive())
	assert.False(t, StatusCompleted.IsLive())
	assert.False(t, StatusCancelled.IsLive())
}

func TestTransitionKeepsReasonOnlyOnCancel(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusPending)}
	require.NoError(t, Transition(ap, StatusConfirmed, "ignored"))
	assert.Empty(t, ap.CancellationReason)

	require.NoError(t, Transition(ap, StatusCancelled, "client sick"))
	assert.Equal(t, string(StatusCancelled), ap.Status)
	assert.Equal(t, "client sick", ap.CancellationReason)

	err := Transition(ap, StatusConfirmed, "")
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))
	assert.Equal(t, string(StatusCancelled), ap.Status)
}

func TestParsePaymentMethod(t *testing.T) {
	m, err := ParsePaymentMethod("")
	require.NoError(t, err)
	assert.Equal(t, PaymentCash, m)

	m, err = ParsePaymentMethod("online")
	require.NoError(t, err)
	assert.Equal(t, PaymentOnline, m)
	assert.Equal(t, PaymentCompleted, InitialPaymentStatus(m))
	assert.Equal(t, PaymentPending, InitialPaymentStatus(PaymentCash))

	_, err = ParsePaymentMethod("card")
	assert.True(t, httperr.IsBusiness(err, "invalid_payment_method"))
}
