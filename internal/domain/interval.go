package domain

import "time"

// IntervalSource identifies which collaborator produced a busy interval
type IntervalSource string

const (
	SourceMeeting  IntervalSource = "meeting"
	SourceCalendar IntervalSource = "calendar"
)

// BusyInterval represents a time range during which no slot may be offered
// Инвариант: Start < End, проверяется на границе адаптера
type BusyInterval struct {
	Start  time.Time
	End    time.Time
	Title  string
	Source IntervalSource
}

// IsValid returns true if the interval satisfies Start < End
func (i BusyInterval) IsValid() bool {
	return i.Start.Before(i.End)
}

// Overlaps reports whether the half-open interval [s, e) intersects the busy interval.
// Используются строгие неравенства: соприкасающиеся границы пересечением НЕ считаются.
//
// Примеры:
// - Слот 11:30-12:00, интервал 11:20-11:40 → ЕСТЬ пересечение (11:30-11:40)
// - Слот 11:30-12:00, интервал 11:00-11:30 → НЕТ пересечения (граничат)
// - Слот 11:30-12:00, интервал 12:00-12:30 → НЕТ пересечения (граничат)
func (i BusyInterval) Overlaps(s, e time.Time) bool {
	return s.Before(i.End) && e.After(i.Start)
}

// DayKey returns the local calendar-day key of the interval's start (YYYY-MM-DD)
func (i BusyInterval) DayKey() string {
	return i.Start.Format(DateFormat)
}
