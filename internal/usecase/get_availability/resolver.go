package get_availability

import (
	"strconv"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
)

// resolveParams строит итоговый набор параметров запроса:
// клиентские значения поверх дефолтов окружения, каждое число зажато в границы.
// Рабочие часы берутся только из дефолтов - клиент их переопределить не может.
func resolveParams(req *Request, defaults domain.AvailabilityParams) (domain.AvailabilityParams, error) {
	if defaults.WorkEndHour <= defaults.WorkStartHour {
		return domain.AvailabilityParams{}, ErrWorkHoursMisconfigured
	}

	return domain.AvailabilityParams{
		DurationMinutes: clampParam(req.DurationMinutes, domain.MinDurationMinutes, domain.MaxDurationMinutes, defaults.DurationMinutes),
		SlotMinutes:     clampParam(req.SlotMinutes, domain.MinSlotMinutes, domain.MaxSlotMinutes, defaults.SlotMinutes),
		HorizonDays:     clampParam(req.HorizonDays, domain.MinHorizonDays, domain.MaxHorizonDays, defaults.HorizonDays),
		SlotLimit:       clampParam(req.SlotLimit, domain.MinSlotLimit, domain.MaxSlotLimit, defaults.SlotLimit),
		MinLeadMinutes:  clampParam(req.MinLeadMinutes, domain.MinLeadMinutesBound, domain.MaxLeadMinutesBound, defaults.MinLeadMinutes),
		WorkStartHour:   defaults.WorkStartHour,
		WorkEndHour:     defaults.WorkEndHour,
	}, nil
}

// clampParam парсит сырое значение и зажимает его в [min, max]
// Пустая строка или не-число заменяются fallback (fallback тоже зажимается)
func clampParam(raw string, min, max, fallback int) int {
	value := fallback
	if raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			value = parsed
		}
	}

	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
