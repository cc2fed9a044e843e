package search_cities

import (
	"context"

	"github.com/m04kA/SMC-OutreachService/internal/integrations/directory"
)

// DirectoryClient интерфейс клиента справочника (текстовый поиск городов)
type DirectoryClient interface {
	SearchCities(ctx context.Context, query string) ([]directory.City, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
