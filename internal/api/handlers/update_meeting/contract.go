package update_meeting

import (
	"context"

	"github.com/m04kA/SMC-OutreachService/internal/service/meetings/models"
)

type MeetingsService interface {
	Update(ctx context.Context, meetingID string, req *models.UpdateMeetingRequest) (*models.MeetingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
