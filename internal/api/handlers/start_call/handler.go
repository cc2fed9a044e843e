package start_call

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-OutreachService/internal/api/handlers"
	startCall "github.com/m04kA/SMC-OutreachService/internal/usecase/start_call"
)

const (
	msgLeadNotFound        = "лид не найден"
	msgLeadNotCallable     = "лиду нельзя позвонить в текущем статусе"
	msgNoPhoneNumber       = "у лида нет номера телефона"
	msgQuotaExceeded       = "исчерпана квота голосовых звонков"
	msgProviderUnavailable = "провайдер голосовых звонков недоступен"
)

// CallResponse HTTP response model
type CallResponse struct {
	LeadID       string `json:"leadId"`
	CallID       string `json:"callId"`
	CallStatus   string `json:"callStatus"`
	LeadStatus   string `json:"leadStatus"`
	CallAttempts int    `json:"callAttempts"`
	StartedAt    string `json:"startedAt"`
}

type Handler struct {
	useCase StartCallUseCase
	logger  Logger
}

func NewHandler(useCase StartCallUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/leads/{leadId}/call
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	leadID := mux.Vars(r)["leadId"]

	result, err := h.useCase.Execute(r.Context(), &startCall.Request{LeadID: leadID})
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, startCall.ErrLeadNotFound):
			h.logger.Warn("POST /leads/{id}/call - Lead not found: lead_id=%s", leadID)
			handlers.RespondNotFound(w, msgLeadNotFound)

		case errors.Is(err, startCall.ErrLeadNotCallable):
			h.logger.Warn("POST /leads/{id}/call - Lead not callable: lead_id=%s", leadID)
			handlers.RespondError(w, http.StatusConflict, msgLeadNotCallable)

		case errors.Is(err, startCall.ErrNoPhoneNumber):
			h.logger.Warn("POST /leads/{id}/call - Lead has no phone: lead_id=%s", leadID)
			handlers.RespondBadRequest(w, msgNoPhoneNumber)

		case errors.Is(err, startCall.ErrQuotaExceeded):
			h.logger.Error("POST /leads/{id}/call - Quota exceeded: lead_id=%s", leadID)
			handlers.RespondError(w, http.StatusTooManyRequests, msgQuotaExceeded)

		case errors.Is(err, startCall.ErrProviderUnavailable):
			h.logger.Error("POST /leads/{id}/call - Provider unavailable: lead_id=%s, error=%v", leadID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgProviderUnavailable)

		default:
			h.logger.Error("POST /leads/{id}/call - Failed to start call: lead_id=%s, error=%v", leadID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := CallResponse{
		LeadID:       result.LeadID,
		CallID:       result.CallID,
		CallStatus:   result.CallStatus,
		LeadStatus:   result.LeadStatus,
		CallAttempts: result.CallAttempts,
		StartedAt:    result.StartedAt.Format(time.RFC3339),
	}

	h.logger.Info("POST /leads/{id}/call - Call started successfully: lead_id=%s, call_id=%s",
		result.LeadID, result.CallID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
