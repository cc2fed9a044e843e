package search_cities

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-OutreachService/internal/api/handlers"
	directoryClient "github.com/m04kA/SMC-OutreachService/internal/integrations/directory"
)

const (
	msgMissingQuery         = "поисковый запрос обязателен"
	msgDirectoryUnavailable = "справочник бизнесов недоступен"
)

// CityModel город в HTTP ответе
type CityModel struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CitiesResponse HTTP response model
type CitiesResponse struct {
	Cities []CityModel `json:"cities"`
}

type Handler struct {
	directory DirectoryClient
	logger    Logger
}

func NewHandler(directory DirectoryClient, logger Logger) *Handler {
	return &Handler{
		directory: directory,
		logger:    logger,
	}
}

// Handle GET /api/v1/cities
// Query params: q (required) - название города или его часть
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		h.logger.Warn("GET /cities - Missing search query")
		handlers.RespondBadRequest(w, msgMissingQuery)
		return
	}

	cities, err := h.directory.SearchCities(r.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, directoryClient.ErrQuotaExceeded):
			h.logger.Warn("GET /cities - Directory quota exceeded")
			handlers.RespondError(w, http.StatusTooManyRequests, msgDirectoryUnavailable)
		default:
			h.logger.Error("GET /cities - Directory search failed: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgDirectoryUnavailable)
		}
		return
	}

	response := CitiesResponse{Cities: make([]CityModel, len(cities))}
	for i, city := range cities {
		response.Cities[i] = CityModel{
			Name:      city.Name,
			Latitude:  city.Latitude,
			Longitude: city.Longitude,
		}
	}

	h.logger.Info("GET /cities - Found %d cities for query %q", len(cities), query)
	handlers.RespondJSON(w, http.StatusOK, response)
}
