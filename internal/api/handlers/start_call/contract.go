package start_call

import (
	"context"

	startCall "github.com/m04kA/SMC-OutreachService/internal/usecase/start_call"
)

type StartCallUseCase interface {
	Execute(ctx context.Context, req *startCall.Request) (*startCall.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
