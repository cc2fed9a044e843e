package update_meeting

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-OutreachService/internal/api/handlers"
	meetingsService "github.com/m04kA/SMC-OutreachService/internal/service/meetings"
	"github.com/m04kA/SMC-OutreachService/internal/service/meetings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidMeetingData = "некорректные данные встречи"
	msgInvalidTimeRange   = "конец встречи должен быть позже начала"
	msgMeetingNotFound    = "встреча не найдена"
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

// Handle PUT /api/v1/meetings/{meetingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	meetingID := mux.Vars(r)["meetingId"]

	var req models.UpdateMeetingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /meetings/{id} - Invalid request body: meeting_id=%s, error=%v", meetingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), meetingID, &req)
	if err != nil {
		switch {
		case errors.Is(err, meetingsService.ErrMeetingNotFound):
			h.logger.Warn("PUT /meetings/{id} - Meeting not found: meeting_id=%s", meetingID)
			handlers.RespondNotFound(w, msgMeetingNotFound)

		case errors.Is(err, meetingsService.ErrInvalidTimeRange):
			h.logger.Warn("PUT /meetings/{id} - Invalid time range: meeting_id=%s, error=%v", meetingID, err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, meetingsService.ErrInvalidInput):
			h.logger.Warn("PUT /meetings/{id} - Invalid input: meeting_id=%s, error=%v", meetingID, err)
			handlers.RespondBadRequest(w, msgInvalidMeetingData)

		default:
			h.logger.Error("PUT /meetings/{id} - Failed to update meeting: meeting_id=%s, error=%v", meetingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /meetings/{id} - Meeting updated successfully: meeting_id=%s", meetingID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
