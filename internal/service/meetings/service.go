package meetings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
	meetingsRepo "github.com/m04kA/SMC-OutreachService/internal/infra/storage/meetings"
	"github.com/m04kA/SMC-OutreachService/internal/service/meetings/models"
)

// Service сервис для работы со встречами
type Service struct {
	meetingRepo MeetingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса встреч
func NewService(meetingRepo MeetingRepository, logger Logger) *Service {
	return &Service{
		meetingRepo: meetingRepo,
		logger:      logger,
	}
}

// Create создает новую встречу
func (s *Service) Create(ctx context.Context, req *models.CreateMeetingRequest) (*models.MeetingResponse, error) {
	s.logger.Info("Create: creating meeting title=%q, start=%s", req.Title, req.StartTime)

	if err := s.validateMeetingData(req.Title, req.StartTime, req.EndTime); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	meeting, err := s.meetingRepo.Create(ctx, req.ToDomainMeeting())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created meeting id=%s", meeting.ID)
	return models.FromDomainMeeting(meeting), nil
}

// List возвращает все встречи, отсортированные по времени начала
func (s *Service) List(ctx context.Context) (*models.MeetingListResponse, error) {
	s.logger.Info("List: fetching meetings")

	meetings, err := s.meetingRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d meetings", len(meetings))
	return models.FromDomainMeetingList(meetings), nil
}

// Update обновляет встречу
func (s *Service) Update(ctx context.Context, meetingID string, req *models.UpdateMeetingRequest) (*models.MeetingResponse, error) {
	s.logger.Info("Update: updating meeting id=%s", meetingID)

	// Получаем встречу
	meeting, err := s.meetingRepo.GetByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, meetingsRepo.ErrMeetingNotFound) {
			s.logger.Warn("Update: meeting id=%s not found", meetingID)
			return nil, ErrMeetingNotFound
		}
		s.logger.Error("Update: repository error for meeting id=%s: %v", meetingID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// Применяем изменения
	if req.Title != nil {
		meeting.Title = *req.Title
	}
	if req.StartTime != nil {
		meeting.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		meeting.EndTime = req.EndTime
	}
	if req.Notes != nil {
		meeting.Notes = req.Notes
	}

	if err := s.validateMeetingData(meeting.Title, meeting.StartTime, meeting.EndTime); err != nil {
		s.logger.Warn("Update: validation failed for meeting id=%s: %v", meetingID, err)
		return nil, err
	}

	updated, err := s.meetingRepo.Update(ctx, meeting)
	if err != nil {
		if errors.Is(err, meetingsRepo.ErrMeetingNotFound) {
			s.logger.Warn("Update: meeting id=%s not found during update", meetingID)
			return nil, ErrMeetingNotFound
		}
		s.logger.Error("Update: repository error for meeting id=%s: %v", meetingID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated meeting id=%s", meetingID)
	return models.FromDomainMeeting(updated), nil
}

// Delete удаляет встречу
func (s *Service) Delete(ctx context.Context, meetingID string) error {
	s.logger.Info("Delete: deleting meeting id=%s", meetingID)

	if err := s.meetingRepo.Delete(ctx, meetingID); err != nil {
		if errors.Is(err, meetingsRepo.ErrMeetingNotFound) {
			s.logger.Warn("Delete: meeting id=%s not found", meetingID)
			return ErrMeetingNotFound
		}
		s.logger.Error("Delete: repository error for meeting id=%s: %v", meetingID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted meeting id=%s", meetingID)
	return nil
}

// validateMeetingData проверяет бизнес-правила встречи
func (s *Service) validateMeetingData(title string, start time.Time, end *time.Time) error {
	if title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if len(title) > domain.MaxMeetingTitleLength {
		return fmt.Errorf("%w: title must not exceed %d characters", ErrInvalidInput, domain.MaxMeetingTitleLength)
	}
	if start.IsZero() {
		return fmt.Errorf("%w: start time is required", ErrInvalidInput)
	}
	if end != nil && !end.After(start) {
		return fmt.Errorf("%w: end time must be after start time", ErrInvalidTimeRange)
	}
	return nil
}
