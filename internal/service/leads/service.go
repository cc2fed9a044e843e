package leads

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
	leadsRepo "github.com/m04kA/SMC-OutreachService/internal/infra/storage/leads"
	"github.com/m04kA/SMC-OutreachService/internal/service/leads/models"
)

// Service сервис для работы с лидами
type Service struct {
	leadRepo LeadRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса лидов
func NewService(leadRepo LeadRepository, logger Logger) *Service {
	return &Service{
		leadRepo: leadRepo,
		logger:   logger,
	}
}

// List возвращает лидов с фильтрацией по городу и статусу обзвона
func (s *Service) List(ctx context.Context, req *models.ListLeadsRequest) (*models.LeadListResponse, error) {
	s.logger.Info("List: fetching leads, city=%v, status=%v", req.City, req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	leads, err := s.leadRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d leads", len(leads))
	return models.FromDomainLeadList(leads), nil
}

// UpdateCallState обновляет статус обзвона и заметки лида
func (s *Service) UpdateCallState(ctx context.Context, leadID string, req *models.UpdateLeadRequest) (*models.LeadResponse, error) {
	s.logger.Info("UpdateCallState: updating lead id=%s", leadID)

	// Получаем лида
	lead, err := s.leadRepo.GetByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, leadsRepo.ErrLeadNotFound) {
			s.logger.Warn("UpdateCallState: lead id=%s not found", leadID)
			return nil, ErrLeadNotFound
		}
		s.logger.Error("UpdateCallState: repository error for lead id=%s: %v", leadID, err)
		return nil, fmt.Errorf("%w: UpdateCallState - repository error: %v", ErrInternal, err)
	}

	// Применяем изменения
	if req.CallStatus != nil {
		status, err := models.ToDomainCallStatus(*req.CallStatus)
		if err != nil {
			s.logger.Warn("UpdateCallState: invalid status=%s for lead id=%s", *req.CallStatus, leadID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		lead.CallStatus = status
	}

	if req.Notes != nil {
		if len(*req.Notes) > domain.MaxNotesLength {
			s.logger.Warn("UpdateCallState: notes too long for lead id=%s", leadID)
			return nil, fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
		}
		lead.Notes = req.Notes
	}

	updated, err := s.leadRepo.Update(ctx, lead)
	if err != nil {
		if errors.Is(err, leadsRepo.ErrLeadNotFound) {
			s.logger.Warn("UpdateCallState: lead id=%s not found during update", leadID)
			return nil, ErrLeadNotFound
		}
		s.logger.Error("UpdateCallState: repository error for lead id=%s: %v", leadID, err)
		return nil, fmt.Errorf("%w: UpdateCallState - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateCallState: successfully updated lead id=%s, status=%s", leadID, updated.CallStatus)
	return models.FromDomainLead(updated), nil
}

// Delete удаляет лида
func (s *Service) Delete(ctx context.Context, leadID string) error {
	s.logger.Info("Delete: deleting lead id=%s", leadID)

	if err := s.leadRepo.Delete(ctx, leadID); err != nil {
		if errors.Is(err, leadsRepo.ErrLeadNotFound) {
			s.logger.Warn("Delete: lead id=%s not found", leadID)
			return ErrLeadNotFound
		}
		s.logger.Error("Delete: repository error for lead id=%s: %v", leadID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted lead id=%s", leadID)
	return nil
}
