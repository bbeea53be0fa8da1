package availability

import (
	"fmt"
	"radiox-service/internal/pkg/constvars"
	"time"
)

// Interval is a half-open busy window [Start, End) on the slot grid.
type Interval struct {
	Start time.Time
	End   time.Time
}

// SlotGrid expands a working day into slot start times, e.g. "9:00 AM".."5:00 PM"
// with a 30 minute step. Start times are clock times with a zero date.
func SlotGrid(dayStart, dayEnd string, stepMinutes int) ([]time.Time, error) {
	start, err := time.Parse(constvars.AppointmentTimeLayout, dayStart)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(constvars.AppointmentTimeLayout, dayEnd)
	if err != nil {
		return nil, err
	}
	if stepMinutes <= 0 {
		return nil, fmt.Errorf("slot grid step must be positive, got %d", stepMinutes)
	}
	if !end.After(start) {
		return nil, fmt.Errorf("slot grid end %q must be after start %q", dayEnd, dayStart)
	}

	step := time.Duration(stepMinutes) * time.Minute
	var grid []time.Time
	for t := start; t.Before(end); t = t.Add(step) {
		grid = append(grid, t)
	}
	return grid, nil
}

// FreeSlots filters the grid down to start times whose slot would not overlap any
// busy interval. Slots are half-open: a booking ending at 10:00 AM does not block
// the 10:00 AM slot.
func FreeSlots(grid []time.Time, slotDuration time.Duration, busy []Interval) []string {
	var free []string
	for _, t := range grid {
		if !overlapsAny(t, t.Add(slotDuration), busy) {
			free = append(free, t.Format(constvars.AppointmentTimeLayout))
		}
	}
	return free
}

func overlapsAny(start, end time.Time, busy []Interval) bool {
	for _, b := range busy {
		if start.Before(b.End) && b.Start.Before(end) {
			return true
		}
	}
	return false
}
