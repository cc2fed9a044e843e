package domain

import "time"

// CallStatus represents the outbound-call state of a lead
type CallStatus string

const (
	StatusNotCalled     CallStatus = "not_called"
	StatusCalling       CallStatus = "calling"
	StatusCompleted     CallStatus = "completed"
	StatusFailed        CallStatus = "failed"
	StatusMeetingBooked CallStatus = "meeting_booked"
	StatusNotInterested CallStatus = "not_interested"
)

// Lead represents a local business without a real website, found by an area scan
type Lead struct {
	ID      string
	PlaceID string // ID бизнеса в справочнике (уникальный ключ хранилища)
	Name    string
	Address string
	Phone   *string
	Website *string // nil или пусто = настоящего сайта нет
	Category string
	City     string
	Rating   *float64

	CallStatus   CallStatus
	CallAttempts int
	LastCallID   *string
	LastCalledAt *time.Time
	Notes        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCallable returns true if a new outbound call may be started for the lead
func (l *Lead) IsCallable() bool {
	return l.CallStatus != StatusCalling &&
		l.CallStatus != StatusMeetingBooked &&
		l.CallStatus != StatusNotInterested
}

// IsCallInProgress returns true if an outbound call is currently running
func (l *Lead) IsCallInProgress() bool {
	return l.CallStatus == StatusCalling
}

// HasPhone returns true if the lead exposes a dialable phone number
func (l *Lead) HasPhone() bool {
	return l.Phone != nil && *l.Phone != ""
}

// LeadsFilter фильтр для выборки лидов
type LeadsFilter struct {
	City   *string     // Фильтр по городу (опционально)
	Status *CallStatus // Фильтр по статусу обзвона (опционально)
}
