package scan_businesses

import (
	"context"

	scanBusinesses "github.com/m04kA/SMC-OutreachService/internal/usecase/scan_businesses"
)

type ScanBusinessesUseCase interface {
	Execute(ctx context.Context, req *scanBusinesses.Request) (*scanBusinesses.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
