package domain

// Default availability parameters
const (
	DefaultDurationMinutes = 30
	DefaultSlotMinutes     = 30
	DefaultHorizonDays     = 7
	DefaultSlotLimit       = 20
	DefaultMinLeadMinutes  = 60 // 1 hour
	DefaultWorkStartHour   = 9
	DefaultWorkEndHour     = 18

	// DefaultIntervalMinutes длительность занятого интервала, когда у записи нет конца
	DefaultIntervalMinutes = 60
)

// Clamp bounds for caller-supplied availability parameters
const (
	MinDurationMinutes = 15
	MaxDurationMinutes = 240 // 4 hours

	MinSlotMinutes = 5
	MaxSlotMinutes = 120 // 2 hours

	MinHorizonDays = 1
	MaxHorizonDays = 30

	MinSlotLimit = 1
	MaxSlotLimit = 200

	MinLeadMinutesBound = 0
	MaxLeadMinutesBound = 1440 // 1 day
)

// Business validation constants
const (
	MaxNotesLength       = 500
	MaxMeetingTitleLength = 200
	MinScanRadiusMeters  = 100
	MaxScanRadiusMeters  = 50000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveCallStatuses список статусов, при которых лид исключается из обзвона
// Используется при отборе лидов для автоматического прозвона
var InactiveCallStatuses = []CallStatus{
	StatusMeetingBooked,
	StatusNotInterested,
}
