package get_availability

import (
	"time"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
	"github.com/m04kA/SMC-OutreachService/internal/integrations/calendar"
)

// meetingsToIntervals конвертирует встречи хранилища в занятые интервалы
// Конец без значения или не позже начала заменяется на start + 60 минут
func meetingsToIntervals(meetings []*domain.Meeting) []domain.BusyInterval {
	intervals := make([]domain.BusyInterval, 0, len(meetings))

	for _, m := range meetings {
		if m.StartTime.IsZero() {
			continue
		}

		intervals = append(intervals, domain.BusyInterval{
			Start:  m.StartTime,
			End:    m.EffectiveEnd(),
			Title:  m.Title,
			Source: domain.SourceMeeting,
		})
	}

	return intervals
}

// eventsToIntervals конвертирует события календаря в занятые интервалы
// Записи с нечитаемым началом отбрасываются и в индекс не попадают.
// Нечитаемый или отсутствующий конец заменяется на start + 60 минут.
func eventsToIntervals(events []calendar.Event) []domain.BusyInterval {
	intervals := make([]domain.BusyInterval, 0, len(events))

	for _, ev := range events {
		start, ok := parseInstant(ev.Start)
		if !ok {
			continue
		}

		end := start.Add(domain.DefaultIntervalMinutes * time.Minute)
		if ev.End != nil {
			if parsed, ok := parseInstant(*ev.End); ok && parsed.After(start) {
				end = parsed
			}
		}

		intervals = append(intervals, domain.BusyInterval{
			Start:  start,
			End:    end,
			Title:  ev.Title,
			Source: domain.SourceCalendar,
		})
	}

	return intervals
}

// parseInstant парсит ISO-8601 метку времени
// Поддерживает полную форму с зоной и дату без времени (событие "весь день",
// трактуется как локальная полночь)
func parseInstant(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.Local(), true
	}
	if t, err := time.ParseInLocation(domain.DateFormat, raw, time.Local); err == nil {
		return t, true
	}

	return time.Time{}, false
}

// buildDayIndex группирует интервалы по локальным календарным дням
// Интервал регистрируется под КАЖДЫМ днём, который он затрагивает:
// хвост интервала через полночь виден при генерации слотов следующего дня.
// Сам тест пересечения всегда работает с абсолютными моментами.
func buildDayIndex(intervals []domain.BusyInterval) map[string][]domain.BusyInterval {
	index := make(map[string][]domain.BusyInterval)

	for _, iv := range intervals {
		if !iv.IsValid() {
			continue
		}

		day := startOfDay(iv.Start)
		for day.Before(iv.End) {
			key := day.Format(domain.DateFormat)
			index[key] = append(index[key], iv)
			day = day.AddDate(0, 0, 1)
		}
	}

	return index
}

// startOfDay возвращает локальную полночь дня, в котором лежит t
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
