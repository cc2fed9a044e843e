package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
	"github.com/m04kA/SMC-OutreachService/internal/integrations/calendar"
)

// MeetingRepository интерфейс хранилища встреч (обязательный источник занятости)
type MeetingRepository interface {
	// List возвращает все встречи хранилища
	List(ctx context.Context) ([]*domain.Meeting, error)
}

// CalendarClient интерфейс клиента внешнего календаря (опциональный источник занятости)
type CalendarClient interface {
	// FetchEventsWithGracefulDegradation оборачивает любую ошибку в calendar.ErrServiceDegraded
	FetchEventsWithGracefulDegradation(ctx context.Context, maxEvents int) ([]calendar.Event, error)
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
