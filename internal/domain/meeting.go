package domain

import "time"

// Meeting represents a booked meeting backing the availability engine
type Meeting struct {
	ID        string
	LeadID    *string // nil = встреча создана вручную, не из обзвона
	Title     string
	StartTime time.Time
	EndTime   *time.Time // nil = конец не указан, адаптер подставит start + 60 минут
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasExplicitEnd returns true if the meeting carries an explicit end time
func (m *Meeting) HasExplicitEnd() bool {
	return m.EndTime != nil && m.EndTime.After(m.StartTime)
}

// EffectiveEnd returns the meeting end, defaulting to start + DefaultIntervalMinutes
func (m *Meeting) EffectiveEnd() time.Time {
	if m.HasExplicitEnd() {
		return *m.EndTime
	}
	return m.StartTime.Add(DefaultIntervalMinutes * time.Minute)
}
