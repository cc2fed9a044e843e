package models

import (
	"time"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
)

// Request модели

// CreateMeetingRequest запрос на создание встречи
type CreateMeetingRequest struct {
	LeadID    *string    `json:"leadId,omitempty"`
	Title     string     `json:"title"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
}

// UpdateMeetingRequest запрос на обновление встречи
type UpdateMeetingRequest struct {
	Title     *string    `json:"title,omitempty"`
	StartTime *time.Time `json:"startTime,omitempty"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
}

// Response модели

// MeetingResponse модель встречи для вызывающей стороны
type MeetingResponse struct {
	ID        string     `json:"id"`
	LeadID    *string    `json:"leadId,omitempty"`
	Title     string     `json:"title"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// MeetingListResponse список встреч
type MeetingListResponse struct {
	Meetings []*MeetingResponse `json:"meetings"`
	Total    int                `json:"total"`
}

// ToDomainMeeting конвертирует запрос создания в domain модель
func (r *CreateMeetingRequest) ToDomainMeeting() *domain.Meeting {
	return &domain.Meeting{
		LeadID:    r.LeadID,
		Title:     r.Title,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Notes:     r.Notes,
	}
}

// FromDomainMeeting конвертирует domain модель встречи в response
func FromDomainMeeting(m *domain.Meeting) *MeetingResponse {
	return &MeetingResponse{
		ID:        m.ID,
		LeadID:    m.LeadID,
		Title:     m.Title,
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomainMeetingList конвертирует список domain встреч в response
func FromDomainMeetingList(meetings []*domain.Meeting) *MeetingListResponse {
	result := make([]*MeetingResponse, len(meetings))
	for i, m := range meetings {
		result[i] = FromDomainMeeting(m)
	}
	return &MeetingListResponse{
		Meetings: result,
		Total:    len(result),
	}
}
