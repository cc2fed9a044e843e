package list_meetings

import (
	"net/http"

	"github.com/m04kA/SMC-OutreachService/internal/api/handlers"
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

// Handle GET /api/v1/meetings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /meetings - Failed to list meetings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /meetings - Meetings listed successfully: total=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
