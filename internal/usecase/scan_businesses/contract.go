package scan_businesses

import (
	"context"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
	"github.com/m04kA/SMC-OutreachService/internal/integrations/directory"
)

// DirectoryClient интерфейс клиента справочника бизнесов
type DirectoryClient interface {
	SearchNearby(ctx context.Context, lat, lng, radiusMeters float64, category string) ([]directory.Place, error)
}

// LeadRepository интерфейс хранилища лидов
type LeadRepository interface {
	GetByPlaceID(ctx context.Context, placeID string) (*domain.Lead, error)
	Upsert(ctx context.Context, lead *domain.Lead) (*domain.Lead, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
