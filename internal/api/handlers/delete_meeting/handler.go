package delete_meeting

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-OutreachService/internal/api/handlers"
	meetingsService "github.com/m04kA/SMC-OutreachService/internal/service/meetings"
)

const (
	msgMeetingNotFound = "встреча не найдена"
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

// Handle DELETE /api/v1/meetings/{meetingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	meetingID := mux.Vars(r)["meetingId"]

	if err := h.service.Delete(r.Context(), meetingID); err != nil {
		switch {
		case errors.Is(err, meetingsService.ErrMeetingNotFound):
			h.logger.Warn("DELETE /meetings/{id} - Meeting not found: meeting_id=%s", meetingID)
			handlers.RespondNotFound(w, msgMeetingNotFound)
		default:
			h.logger.Error("DELETE /meetings/{id} - Failed to delete meeting: meeting_id=%s, error=%v", meetingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /meetings/{id} - Meeting deleted successfully: meeting_id=%s", meetingID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
