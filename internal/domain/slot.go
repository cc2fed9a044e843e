package domain

import "time"

// FreeSlot represents a candidate free time range offered for booking
type FreeSlot struct {
	Start           time.Time
	End             time.Time
	DurationMinutes int
}

// NewFreeSlot builds a slot of the given duration starting at start
func NewFreeSlot(start time.Time, durationMinutes int) FreeSlot {
	return FreeSlot{
		Start:           start,
		End:             start.Add(time.Duration(durationMinutes) * time.Minute),
		DurationMinutes: durationMinutes,
	}
}

// AvailabilityParams represents the resolved, clamped parameter set of one availability request
// Все числовые поля уже зажаты в безопасные границы (см. constants.go)
type AvailabilityParams struct {
	DurationMinutes int
	SlotMinutes     int
	HorizonDays     int
	SlotLimit       int
	MinLeadMinutes  int
	WorkStartHour   int
	WorkEndHour     int
}
