package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGridSlots(t *testing.T) {
	slots := DefaultGrid().Slots()

	require.Len(t, slots, 18)
	assert.Equal(t, "09:00:00", slots[0].String())
	assert.Equal(t, "09:30:00", slots[1].String())
	assert.Equal(t, "17:30:00", slots[17].String())

	for i := 1; i < len(slots); i++ {
		assert.Less(t, slots[i-1], slots[i])
	}
}

func TestGridContains(t *testing.T) {
	g := DefaultGrid()

	assert.True(t, g.Contains(NewClock(9, 0)))
	assert.True(t, g.Contains(NewClock(17, 30)))
	assert.False(t, g.Contains(NewClock(18, 0)))
	assert.False(t, g.Contains(NewClock(8, 30)))
	assert.False(t, g.Contains(NewClock(10, 15)))
	assert.False(t, g.Contains(NewClock(10, 0)+1))
}

func TestGridAvailableExcludesBooked(t *testing.T) {
	g := DefaultGrid()
	booked := []Clock{NewClock(10, 0), NewClock(14, 30)}

	free := g.Available(booked)

	assert.Len(t, free, 16)
	assert.NotContains(t, free, NewClock(10, 0))
	assert.NotContains(t, free, NewClock(14, 30))
	assert.Contains(t, free, NewClock(10, 30))
}

func TestGridAvailablePartitionsTheGrid(t *testing.T) {
	g := DefaultGrid()
	all := g.Slots()

	// every subset selected by a bitmask over a few positions
	for mask := 0; mask < 1<<5; mask++ {
		var booked []Clock
		for bit := 0; bit < 5; bit++ {
			if mask&(1<<bit) != 0 {
				booked = append(booked, all[bit*3])
			}
		}

		free := g.Available(booked)

		for _, b := range booked {
			assert.NotContains(t, free, b)
		}
		assert.Equal(t, len(all), len(free)+len(booked))

		union := append(append([]Clock{}, free...), booked...)
		assert.ElementsMatch(t, all, union)
	}
}

func TestGridAvailableIgnoresOffGridBookings(t *testing.T) {
	g := DefaultGrid()

	free := g.Available([]Clock{NewClock(7, 0), NewClock(19, 0)})

	assert.Equal(t, g.Slots(), free)
}

func TestNewGridValidation(t *testing.T) {
	_, err := NewGrid(NewClock(9, 0), NewClock(9, 0), 30*time.Minute)
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = NewGrid(NewClock(9, 0), NewClock(18, 0), 0)
	assert.ErrorIs(t, err, ErrInvalidStep)

	g, err := NewGrid(NewClock(8, 0), NewClock(12, 0), time.Hour)
	require.NoError(t, err)
	assert.Len(t, g.Slots(), 4)
}
