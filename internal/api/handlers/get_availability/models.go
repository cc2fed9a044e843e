package get_availability

import (
	"net/url"
	"time"

	getAvailability "github.com/m04kA/SMC-OutreachService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	GeneratedAt     string     `json:"generatedAt"`
	DurationMinutes int        `json:"durationMinutes"`
	SlotMinutes     int        `json:"slotMinutes"`
	HorizonDays     int        `json:"horizonDays"`
	Slots           []FreeSlot `json:"slots"`
}

// FreeSlot модель свободного слота
type FreeSlot struct {
	Start           string `json:"start"`
	End             string `json:"end"`
	DurationMinutes int    `json:"durationMinutes"`
}

// ToUseCaseRequest создает запрос use case из query параметров
// Все параметры опциональны, валидация и зажимание выполняются в usecase
func ToUseCaseRequest(query url.Values) *getAvailability.Request {
	return &getAvailability.Request{
		DurationMinutes: query.Get("durationMinutes"),
		SlotMinutes:     query.Get("slotMinutes"),
		HorizonDays:     query.Get("horizonDays"),
		SlotLimit:       query.Get("limit"),
		MinLeadMinutes:  query.Get("minLeadMinutes"),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]FreeSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = FreeSlot{
			Start:           slot.Start.Format(time.RFC3339),
			End:             slot.End.Format(time.RFC3339),
			DurationMinutes: slot.DurationMinutes,
		}
	}

	return &AvailabilityResponse{
		GeneratedAt:     resp.GeneratedAt.Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
		SlotMinutes:     resp.SlotMinutes,
		HorizonDays:     resp.HorizonDays,
		Slots:           slots,
	}
}
