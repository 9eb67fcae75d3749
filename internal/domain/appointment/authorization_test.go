package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/haircut-scheduler/internal/models"
)

func TestCanAccess(t *testing.T) {
	ap := &models.Appointment{
		ClientID:             10,
		HairdresserProfileID: 3,
		HairdresserProfile:   models.HairdresserProfile{ID: 3, UserID: 20},
	}

	cases := []struct {
		name string
		req  Requester
		want bool
	}{
		{"owning client", Requester{UserID: 10, Role: RoleClient}, true},
		{"other client", Requester{UserID: 11, Role: RoleClient}, false},
		{"owning hairdresser", Requester{UserID: 20, Role: RoleHairdresser}, true},
		{"other hairdresser", Requester{UserID: 21, Role: RoleHairdresser}, false},
		{"admin", Requester{UserID: 99, Role: RoleAdmin}, true},
		// the profile id is not a user id
		{"profile id as user", Requester{UserID: 3, Role: RoleHairdresser}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanAccess(ap, tc.req))
		})
	}
}

func TestCanAccessWithoutLoadedProfile(t *testing.T) {
	ap := &models.Appointment{ClientID: 10}
	assert.False(t, CanAccess(ap, Requester{UserID: 0, Role: RoleHairdresser}))
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleHairdresser.Valid())
	assert.False(t, Role("guest").Valid())
}
