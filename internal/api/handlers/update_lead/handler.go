package update_lead

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-OutreachService/internal/api/handlers"
	leadsService "github.com/m04kA/SMC-OutreachService/internal/service/leads"
	"github.com/m04kA/SMC-OutreachService/internal/service/leads/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные лида"
	msgLeadNotFound       = "лид не найден"
)

type Handler struct {
	service LeadsService
	logger  Logger
}

func NewHandler(service LeadsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/leads/{leadId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	leadID := mux.Vars(r)["leadId"]

	var req models.UpdateLeadRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /leads/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateCallState(r.Context(), leadID, &req)
	if err != nil {
		switch {
		case errors.Is(err, leadsService.ErrLeadNotFound):
			h.logger.Warn("PATCH /leads/{id} - Lead not found: lead_id=%s", leadID)
			handlers.RespondNotFound(w, msgLeadNotFound)

		case errors.Is(err, leadsService.ErrInvalidInput):
			h.logger.Warn("PATCH /leads/{id} - Invalid input: lead_id=%s, error=%v", leadID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /leads/{id} - Failed to update lead: lead_id=%s, error=%v", leadID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /leads/{id} - Lead updated successfully: lead_id=%s, status=%s", leadID, result.CallStatus)
	handlers.RespondJSON(w, http.StatusOK, result)
}
