package scan_businesses

import (
	"time"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
	scanBusinesses "github.com/m04kA/SMC-OutreachService/internal/usecase/scan_businesses"
)

// ScanRequest HTTP request model
type ScanRequest struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radiusMeters"`
	Category     string  `json:"category,omitempty"`
	City         string  `json:"city,omitempty"`
}

// ScanResponse HTTP response model
type ScanResponse struct {
	TotalFound int         `json:"totalFound"`
	NewLeads   int         `json:"newLeads"`
	KnownLeads int         `json:"knownLeads"`
	Leads      []LeadModel `json:"leads"`
}

// LeadModel модель лида в ответе сканирования
type LeadModel struct {
	ID           string   `json:"id"`
	PlaceID      string   `json:"placeId"`
	Name         string   `json:"name"`
	Address      string   `json:"address,omitempty"`
	Phone        *string  `json:"phone,omitempty"`
	Category     string   `json:"category,omitempty"`
	City         string   `json:"city,omitempty"`
	Rating       *float64 `json:"rating,omitempty"`
	CallStatus   string   `json:"callStatus"`
	CreatedAt    string   `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ScanRequest) ToUseCaseRequest() *scanBusinesses.Request {
	return &scanBusinesses.Request{
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		RadiusMeters: r.RadiusMeters,
		Category:     r.Category,
		City:         r.City,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *scanBusinesses.Response) *ScanResponse {
	leads := make([]LeadModel, len(resp.Leads))
	for i, lead := range resp.Leads {
		leads[i] = fromDomainLead(lead)
	}

	return &ScanResponse{
		TotalFound: resp.TotalFound,
		NewLeads:   resp.NewLeads,
		KnownLeads: resp.KnownLeads,
		Leads:      leads,
	}
}

func fromDomainLead(lead *domain.Lead) LeadModel {
	return LeadModel{
		ID:         lead.ID,
		PlaceID:    lead.PlaceID,
		Name:       lead.Name,
		Address:    lead.Address,
		Phone:      lead.Phone,
		Category:   lead.Category,
		City:       lead.City,
		Rating:     lead.Rating,
		CallStatus: string(lead.CallStatus),
		CreatedAt:  lead.CreatedAt.Format(time.RFC3339),
	}
}
