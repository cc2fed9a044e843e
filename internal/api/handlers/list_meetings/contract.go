package list_meetings

import (
	"context"

	"github.com/m04kA/SMC-OutreachService/internal/service/meetings/models"
)

type MeetingsService interface {
	List(ctx context.Context) (*models.MeetingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
