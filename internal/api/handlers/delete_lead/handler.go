package delete_lead

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-OutreachService/internal/api/handlers"
	leadsService "github.com/m04kA/SMC-OutreachService/internal/service/leads"
)

const (
	msgLeadNotFound = "лид не найден"
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

// Handle DELETE /api/v1/leads/{leadId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	leadID := mux.Vars(r)["leadId"]

	if err := h.service.Delete(r.Context(), leadID); err != nil {
		switch {
		case errors.Is(err, leadsService.ErrLeadNotFound):
			h.logger.Warn("DELETE /leads/{id} - Lead not found: lead_id=%s", leadID)
			handlers.RespondNotFound(w, msgLeadNotFound)
		default:
			h.logger.Error("DELETE /leads/{id} - Failed to delete lead: lead_id=%s, error=%v", leadID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /leads/{id} - Lead deleted successfully: lead_id=%s", leadID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
