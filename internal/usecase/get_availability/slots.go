package get_availability

import (
	"time"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
)

// generateSlots перебирает горизонт день за днём и возвращает свободные слоты
// Порядок результата строго по возрастанию начала: дни идут по возрастанию,
// курсор внутри дня монотонный.
func generateSlots(
	params domain.AvailabilityParams,
	index map[string][]domain.BusyInterval,
	now time.Time,
) []domain.FreeSlot {
	slots := make([]domain.FreeSlot, 0, params.SlotLimit)

	// Минимально допустимое начало слота
	earliestAllowedStart := now.Add(time.Duration(params.MinLeadMinutes) * time.Minute)

	for offset := 0; offset < params.HorizonDays; offset++ {
		if len(slots) >= params.SlotLimit {
			break
		}

		day := startOfDay(now).AddDate(0, 0, offset)
		workStart := day.Add(time.Duration(params.WorkStartHour) * time.Hour)
		workEnd := day.Add(time.Duration(params.WorkEndHour) * time.Hour)

		// Рабочее окно целиком раньше минимально допустимого начала - день пуст,
		// кандидатов можно не перебирать
		if !workEnd.After(earliestAllowedStart) {
			continue
		}

		busy := index[day.Format(domain.DateFormat)]
		slots = appendDaySlots(slots, params, busy, workStart, workEnd, earliestAllowedStart)
	}

	return slots
}

// appendDaySlots добавляет свободные слоты одного дня, не превышая лимит
func appendDaySlots(
	slots []domain.FreeSlot,
	params domain.AvailabilityParams,
	busy []domain.BusyInterval,
	workStart, workEnd, earliestAllowedStart time.Time,
) []domain.FreeSlot {
	duration := time.Duration(params.DurationMinutes) * time.Minute
	step := time.Duration(params.SlotMinutes) * time.Minute

	for cursor := workStart; cursor.Before(workEnd); cursor = cursor.Add(step) {
		candidateEnd := cursor.Add(duration)

		// Курсор монотонный: если кандидат не помещается до конца рабочего дня,
		// не поместится и ни один следующий
		if candidateEnd.After(workEnd) {
			break
		}

		if cursor.Before(earliestAllowedStart) {
			continue
		}

		if overlapsAny(cursor, candidateEnd, busy) {
			continue
		}

		slots = append(slots, domain.NewFreeSlot(cursor, params.DurationMinutes))
		if len(slots) >= params.SlotLimit {
			break
		}
	}

	return slots
}

// overlapsAny проверяет пересечение кандидата [s, e) с занятыми интервалами дня
func overlapsAny(s, e time.Time, busy []domain.BusyInterval) bool {
	for _, iv := range busy {
		if iv.Overlaps(s, e) {
			return true
		}
	}
	return false
}
