package list_leads

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-OutreachService/internal/api/handlers"
	leadsService "github.com/m04kA/SMC-OutreachService/internal/service/leads"
	"github.com/m04kA/SMC-OutreachService/internal/service/leads/models"
)

const (
	msgInvalidStatus = "некорректный статус обзвона"
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

// Handle GET /api/v1/leads
// Query params: city (опционально), status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListLeadsRequest{}

	if city := r.URL.Query().Get("city"); city != "" {
		req.City = &city
	}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, leadsService.ErrInvalidInput):
			h.logger.Warn("GET /leads - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)
		default:
			h.logger.Error("GET /leads - Failed to list leads: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /leads - Leads retrieved successfully: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
