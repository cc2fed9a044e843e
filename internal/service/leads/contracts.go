package leads

import (
	"context"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
)

// LeadRepository интерфейс хранилища лидов
type LeadRepository interface {
	List(ctx context.Context, filter domain.LeadsFilter) ([]*domain.Lead, error)
	GetByID(ctx context.Context, id string) (*domain.Lead, error)
	Update(ctx context.Context, lead *domain.Lead) (*domain.Lead, error)
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
