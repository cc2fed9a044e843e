package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе обзвона
	ErrInvalidStatus = errors.New("invalid call status")
)

// Request модели

// ListLeadsRequest запрос на получение списка лидов
type ListLeadsRequest struct {
	City   *string // Фильтр по городу (опционально)
	Status *string // Фильтр по статусу обзвона (опционально)
}

// UpdateLeadRequest запрос на обновление состояния обзвона лида
type UpdateLeadRequest struct {
	CallStatus *string `json:"callStatus,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// Response модели

// LeadResponse модель лида для вызывающей стороны
type LeadResponse struct {
	ID           string     `json:"id"`
	PlaceID      string     `json:"placeId"`
	Name         string     `json:"name"`
	Address      string     `json:"address,omitempty"`
	Phone        *string    `json:"phone,omitempty"`
	Website      *string    `json:"website,omitempty"`
	Category     string     `json:"category,omitempty"`
	City         string     `json:"city,omitempty"`
	Rating       *float64   `json:"rating,omitempty"`
	CallStatus   string     `json:"callStatus"`
	CallAttempts int        `json:"callAttempts"`
	LastCallID   *string    `json:"lastCallId,omitempty"`
	LastCalledAt *time.Time `json:"lastCalledAt,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// LeadListResponse список лидов
type LeadListResponse struct {
	Leads []*LeadResponse `json:"leads"`
	Total int             `json:"total"`
}

// ToDomainFilter конвертирует запрос списка в domain фильтр
func (r *ListLeadsRequest) ToDomainFilter() (domain.LeadsFilter, error) {
	filter := domain.LeadsFilter{City: r.City}

	if r.Status != nil {
		status, err := ToDomainCallStatus(*r.Status)
		if err != nil {
			return domain.LeadsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// ToDomainCallStatus валидирует и конвертирует строковый статус обзвона
func ToDomainCallStatus(raw string) (domain.CallStatus, error) {
	status := domain.CallStatus(raw)
	switch status {
	case domain.StatusNotCalled,
		domain.StatusCalling,
		domain.StatusCompleted,
		domain.StatusFailed,
		domain.StatusMeetingBooked,
		domain.StatusNotInterested:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}

// FromDomainLead конвертирует domain модель лида в response
func FromDomainLead(l *domain.Lead) *LeadResponse {
	return &LeadResponse{
		ID:           l.ID,
		PlaceID:      l.PlaceID,
		Name:         l.Name,
		Address:      l.Address,
		Phone:        l.Phone,
		Website:      l.Website,
		Category:     l.Category,
		City:         l.City,
		Rating:       l.Rating,
		CallStatus:   string(l.CallStatus),
		CallAttempts: l.CallAttempts,
		LastCallID:   l.LastCallID,
		LastCalledAt: l.LastCalledAt,
		Notes:        l.Notes,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

// FromDomainLeadList конвертирует список domain лидов в response
func FromDomainLeadList(leads []*domain.Lead) *LeadListResponse {
	result := make([]*LeadResponse, len(leads))
	for i, l := range leads {
		result[i] = FromDomainLead(l)
	}
	return &LeadListResponse{
		Leads: result,
		Total: len(result),
	}
}
