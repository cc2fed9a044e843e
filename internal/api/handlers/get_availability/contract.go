package get_availability

import (
	"context"

	getAvailability "github.com/m04kA/SMC-OutreachService/internal/usecase/get_availability"
)

type GetAvailabilityUseCase interface {
	Execute(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error)
}

// SlotsObserver принимает наблюдения о количестве выданных слотов
type SlotsObserver interface {
	ObserveSlotsGenerated(count int)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
