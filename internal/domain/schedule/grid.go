package schedule

import (
	"errors"
	"time"
)

var (
	ErrInvalidStep   = errors.New("schedule: step must be at least one minute")
	ErrInvalidWindow = errors.New("schedule: window start must be before end")
)

// Grid is the bookable working window of a day, cut into fixed steps.
// Start is inclusive, End is exclusive.
type Grid struct {
	Start Clock
	End   Clock
	Step  time.Duration
}

func DefaultGrid() Grid {
	return Grid{
		Start: NewClock(9, 0),
		End:   NewClock(18, 0),
		Step:  30 * time.Minute,
	}
}

func NewGrid(start, end Clock, step time.Duration) (Grid, error) {
	g := Grid{Start: start, End: end, Step: step}
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}
	return g, nil
}

func (g Grid) Validate() error {
	if g.Step < time.Minute {
		return ErrInvalidStep
	}
	if g.Start >= g.End {
		return ErrInvalidWindow
	}
	return nil
}

// Slots returns every candidate slot of the grid in chronological order.
func (g Grid) Slots() []Clock {
	step := Clock(g.Step / time.Second)

	slots := make([]Clock, 0, int((g.End-g.Start)/step)+1)
	for cur := g.Start; cur < g.End; cur += step {
		slots = append(slots, cur)
	}
	return slots
}

// Contains reports whether c falls exactly on a grid slot.
func (g Grid) Contains(c Clock) bool {
	if c < g.Start || c >= g.End {
		return false
	}
	step := Clock(g.Step / time.Second)
	return (c-g.Start)%step == 0
}

// Available removes the booked times from the candidate slots.
// Order of the grid is preserved.
func (g Grid) Available(booked []Clock) []Clock {
	taken := make(map[Clock]struct{}, len(booked))
	for _, b := range booked {
		taken[b] = struct{}{}
	}

	slots := g.Slots()
	out := make([]Clock, 0, len(slots))
	for _, s := range slots {
		if _, ok := taken[s]; ok {
			continue
		}
		out = append(out, s)
	}
	return out
}
