package meetings

import (
	"context"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
)

// MeetingRepository интерфейс хранилища встреч
type MeetingRepository interface {
	Create(ctx context.Context, meeting *domain.Meeting) (*domain.Meeting, error)
	List(ctx context.Context) ([]*domain.Meeting, error)
	GetByID(ctx context.Context, id string) (*domain.Meeting, error)
	Update(ctx context.Context, meeting *domain.Meeting) (*domain.Meeting, error)
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
