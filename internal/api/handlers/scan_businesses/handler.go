package scan_businesses

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-OutreachService/internal/api/handlers"
	scanBusinesses "github.com/m04kA/SMC-OutreachService/internal/usecase/scan_businesses"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidScanArea      = "некорректная область сканирования"
	msgDirectoryUnavailable = "справочник бизнесов недоступен"
	msgDirectoryQuota       = "исчерпана квота справочника бизнесов"
)

type Handler struct {
	useCase ScanBusinessesUseCase
	logger  Logger
}

func NewHandler(useCase ScanBusinessesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/scans
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ScanRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /scans - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, scanBusinesses.ErrInvalidInput):
			h.logger.Warn("POST /scans - Invalid scan area: %v", err)
			handlers.RespondBadRequest(w, msgInvalidScanArea)

		case errors.Is(err, scanBusinesses.ErrDirectoryQuota):
			h.logger.Warn("POST /scans - Directory quota exceeded")
			handlers.RespondError(w, http.StatusTooManyRequests, msgDirectoryQuota)

		case errors.Is(err, scanBusinesses.ErrDirectoryUnavailable):
			h.logger.Error("POST /scans - Directory unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgDirectoryUnavailable)

		default:
			h.logger.Error("POST /scans - Failed to scan businesses: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /scans - Scan completed: total=%d, new=%d, known=%d",
		result.TotalFound, result.NewLeads, result.KnownLeads)
	handlers.RespondJSON(w, http.StatusOK, response)
}
