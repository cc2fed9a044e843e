package delete_lead

import "context"

type LeadsService interface {
	Delete(ctx context.Context, leadID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
