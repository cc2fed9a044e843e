package start_call

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
	leadsRepo "github.com/m04kA/SMC-OutreachService/internal/infra/storage/leads"
	voiceClient "github.com/m04kA/SMC-OutreachService/internal/integrations/voicecall"
	"github.com/m04kA/SMC-OutreachService/pkg/ptr"
)

// UseCase use case инициации исходящего звонка лиду
type UseCase struct {
	leadRepo     LeadRepository
	voiceClient  VoiceCallClient
	mailer       AlertMailer
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	leadRepo LeadRepository,
	voiceClient VoiceCallClient,
	mailer AlertMailer,
	logger Logger,
) *UseCase {
	return &UseCase{
		leadRepo:     leadRepo,
		voiceClient:  voiceClient,
		mailer:       mailer,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case инициации звонка
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("StartCall: lead=%s", req.LeadID)

	// 1. Получаем лида
	lead, err := uc.leadRepo.GetByID(ctx, req.LeadID)
	if err != nil {
		if errors.Is(err, leadsRepo.ErrLeadNotFound) {
			uc.logger.Warn("StartCall: lead id=%s not found", req.LeadID)
			return nil, ErrLeadNotFound
		}
		uc.logger.Error("StartCall: failed to get lead id=%s: %v", req.LeadID, err)
		return nil, fmt.Errorf("%w: failed to get lead: %v", ErrInternal, err)
	}

	// 2. Проверяем, что лиду можно звонить
	if !lead.IsCallable() {
		uc.logger.Warn("StartCall: lead id=%s is not callable, status=%s", lead.ID, lead.CallStatus)
		return nil, ErrLeadNotCallable
	}
	if !lead.HasPhone() {
		uc.logger.Warn("StartCall: lead id=%s has no phone number", lead.ID)
		return nil, ErrNoPhoneNumber
	}

	// 3. Инициируем звонок у провайдера
	call, err := uc.voiceClient.StartCall(ctx, &voiceClient.StartCallRequest{
		PhoneNumber:  *lead.Phone,
		BusinessName: lead.Name,
		City:         lead.City,
	})
	if err != nil {
		if errors.Is(err, voiceClient.ErrQuotaExceeded) {
			// Алерт best-effort: отказ почты логируется, но не меняет ответ
			uc.logger.Error("StartCall: provider quota exceeded for lead id=%s: %v", lead.ID, err)
			if mailErr := uc.mailer.SendQuotaAlert(err.Error()); mailErr != nil {
				uc.logger.Warn("StartCall: failed to send quota alert: %v", mailErr)
			}
			return nil, ErrQuotaExceeded
		}
		uc.logger.Error("StartCall: provider failed for lead id=%s: %v", lead.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	// 4. Фиксируем состояние обзвона в лиде
	now := uc.timeProvider.Now()
	lead.CallStatus = domain.StatusCalling
	lead.CallAttempts++
	lead.LastCallID = ptr.Ptr(call.ID)
	lead.LastCalledAt = ptr.Ptr(now)

	if _, err := uc.leadRepo.Update(ctx, lead); err != nil {
		// Звонок уже запущен - ошибку сохранения не превращаем в отказ вызова
		uc.logger.Error("StartCall: call started but failed to update lead id=%s: %v", lead.ID, err)
	}

	uc.logger.Info("StartCall: call started for lead id=%s, call_id=%s, attempt=%d",
		lead.ID, call.ID, lead.CallAttempts)

	return &Response{
		LeadID:       lead.ID,
		CallID:       call.ID,
		CallStatus:   call.Status,
		LeadStatus:   string(lead.CallStatus),
		CallAttempts: lead.CallAttempts,
		StartedAt:    now,
	}, nil
}
