package start_call

import (
	"context"
	"time"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
	"github.com/m04kA/SMC-OutreachService/internal/integrations/voicecall"
)

// LeadRepository интерфейс хранилища лидов
type LeadRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Lead, error)
	Update(ctx context.Context, lead *domain.Lead) (*domain.Lead, error)
}

// VoiceCallClient интерфейс клиента провайдера голосовых звонков
type VoiceCallClient interface {
	StartCall(ctx context.Context, req *voicecall.StartCallRequest) (*voicecall.Call, error)
}

// AlertMailer интерфейс почтовых уведомлений о квоте
type AlertMailer interface {
	SendQuotaAlert(reason string) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
