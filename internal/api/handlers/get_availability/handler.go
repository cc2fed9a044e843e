package get_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-OutreachService/internal/api/handlers"
	getAvailability "github.com/m04kA/SMC-OutreachService/internal/usecase/get_availability"
)

const (
	msgWorkHoursMisconfigured = "некорректная конфигурация рабочих часов"
	msgMeetingsUnavailable    = "хранилище встреч недоступно"
)

type Handler struct {
	useCase  GetAvailabilityUseCase
	observer SlotsObserver
	logger   Logger
}

// NewHandler создает новый экземпляр handler
// observer может быть nil, если метрики выключены
func NewHandler(useCase GetAvailabilityUseCase, observer SlotsObserver, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		observer: observer,
		logger:   logger,
	}
}

// Handle GET /api/v1/availability
// Query params (все опциональны): durationMinutes, slotMinutes, horizonDays, limit, minLeadMinutes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq := ToUseCaseRequest(r.URL.Query())

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, getAvailability.ErrWorkHoursMisconfigured):
			h.logger.Error("GET /availability - Work hours misconfigured: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgWorkHoursMisconfigured)

		case errors.Is(err, getAvailability.ErrMeetingSourceUnavailable):
			h.logger.Error("GET /availability - Meeting store unavailable: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgMeetingsUnavailable)

		default:
			h.logger.Error("GET /availability - Failed to compute availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	if h.observer != nil {
		h.observer.ObserveSlotsGenerated(len(result.Slots))
	}

	h.logger.Info("GET /availability - Availability computed successfully: slots_count=%d", len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
