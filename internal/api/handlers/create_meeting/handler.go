package create_meeting

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-OutreachService/internal/api/handlers"
	meetingsService "github.com/m04kA/SMC-OutreachService/internal/service/meetings"
	"github.com/m04kA/SMC-OutreachService/internal/service/meetings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidMeetingData = "некорректные данные встречи"
	msgInvalidTimeRange   = "конец встречи должен быть позже начала"
)

type Handler struct {
	service MeetingsService
	logger  Logger
}

func NewHandler(service MeetingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/meetings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMeetingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /meetings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, meetingsService.ErrInvalidTimeRange):
			h.logger.Warn("POST /meetings - Invalid time range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, meetingsService.ErrInvalidInput):
			h.logger.Warn("POST /meetings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMeetingData)

		default:
			h.logger.Error("POST /meetings - Failed to create meeting: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /meetings - Meeting created successfully: meeting_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
